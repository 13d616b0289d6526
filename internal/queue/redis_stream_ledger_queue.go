package queue

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charile1/golf-reservation/internal/model"
	"github.com/charile1/golf-reservation/pkg/logger"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const (
	StreamKey          = "ledger:sync:stream"
	ConsumerGroupName  = "ledger-workers"
	ConsumerNamePrefix = "worker"

	jobField    = "job"
	batchSize   = 10
	readBackoff = time.Second
)

// RedisStreamConfig 可注入的逾時與重試設定；零值欄位使用預設
type RedisStreamConfig struct {
	ClaimMinIdleTime   time.Duration // pending 中閒置超過此時間才領回重試
	MaxRetryCount      int           // 投遞次數達到此值的工作直接丟棄
	ReadGroupBlockTime time.Duration
}

func (c RedisStreamConfig) withDefaults() RedisStreamConfig {
	if c.ClaimMinIdleTime <= 0 {
		c.ClaimMinIdleTime = 30 * time.Second
	}
	if c.MaxRetryCount <= 0 {
		c.MaxRetryCount = 5
	}
	if c.ReadGroupBlockTime <= 0 {
		c.ReadGroupBlockTime = 2 * time.Second
	}
	return c
}

// RedisStreamLedgerQueueImpl 以 consumer group 消費帳目同步工作。
// 新工作由 XREADGROUP 取得；未 ack 的工作留在 pending，閒置逾時後以 XCLAIM 領回。
type RedisStreamLedgerQueueImpl struct {
	client   *redis.Client
	consumer string
	cfg      RedisStreamConfig
	log      *zap.Logger
}

// NewRedisStreamLedgerQueue consumerID 為空時產生隨機 id
func NewRedisStreamLedgerQueue(ctx context.Context, client *redis.Client, consumerID string, cfg RedisStreamConfig) (LedgerQueue, error) {
	if consumerID == "" {
		consumerID = uuid.NewString()
	}

	err := client.XGroupCreateMkStream(ctx, StreamKey, ConsumerGroupName, "0").Err()
	if err != nil && !strings.HasPrefix(err.Error(), "BUSYGROUP") {
		return nil, fmt.Errorf("ensure consumer group: %w", err)
	}

	consumer := ConsumerNamePrefix + ":" + consumerID
	return &RedisStreamLedgerQueueImpl{
		client:   client,
		consumer: consumer,
		cfg:      cfg.withDefaults(),
		log:      logger.WithComponent("mq").With(zap.String("consumer", consumer)),
	}, nil
}

func (q *RedisStreamLedgerQueueImpl) Publish(ctx context.Context, job *model.LedgerSyncJob) error {
	payload, err := json.Marshal(job)
	if err != nil {
		return fmt.Errorf("marshal ledger job: %w", err)
	}
	err = q.client.XAdd(ctx, &redis.XAddArgs{
		Stream: StreamKey,
		Values: map[string]interface{}{jobField: string(payload)},
	}).Err()
	if err != nil {
		return fmt.Errorf("xadd: %w", err)
	}
	return nil
}

// Subscribe 的 channel 在 ctx 結束且兩個來源都停止後關閉
func (q *RedisStreamLedgerQueueImpl) Subscribe(ctx context.Context) (<-chan Delivery, error) {
	return fanIn(ctx,
		q.producer(q.readNew),
		q.producer(q.reclaimStale),
	), nil
}

// producer 反覆向 fetch 取一批訊息，轉成 Delivery 後送出
func (q *RedisStreamLedgerQueueImpl) producer(fetch func(ctx context.Context) []redis.XMessage) func(ctx context.Context, out chan<- Delivery) {
	return func(ctx context.Context, out chan<- Delivery) {
		for ctx.Err() == nil {
			for _, msg := range fetch(ctx) {
				d, ok := q.delivery(ctx, msg)
				if !ok {
					continue
				}
				select {
				case out <- d:
				case <-ctx.Done():
					return
				}
			}
		}
	}
}

// readNew 只讀從未投遞過的工作（">"）
func (q *RedisStreamLedgerQueueImpl) readNew(ctx context.Context) []redis.XMessage {
	streams, err := q.client.XReadGroup(ctx, &redis.XReadGroupArgs{
		Group:    ConsumerGroupName,
		Consumer: q.consumer,
		Streams:  []string{StreamKey, ">"},
		Count:    batchSize,
		Block:    q.cfg.ReadGroupBlockTime,
	}).Result()
	if err != nil {
		if !errors.Is(err, redis.Nil) && ctx.Err() == nil {
			q.log.Error("XReadGroup failed", zap.Error(err))
			sleep(ctx, readBackoff)
		}
		return nil
	}

	var msgs []redis.XMessage
	for _, s := range streams {
		msgs = append(msgs, s.Messages...)
	}
	return msgs
}

// reclaimStale 每隔 ClaimMinIdleTime 檢查 pending；投遞次數已達上限的直接 ack 丟棄，其餘領回重試
func (q *RedisStreamLedgerQueueImpl) reclaimStale(ctx context.Context) []redis.XMessage {
	if !sleep(ctx, q.cfg.ClaimMinIdleTime) {
		return nil
	}

	pending, err := q.client.XPendingExt(ctx, &redis.XPendingExtArgs{
		Stream: StreamKey,
		Group:  ConsumerGroupName,
		Idle:   q.cfg.ClaimMinIdleTime,
		Start:  "-",
		End:    "+",
		Count:  batchSize,
	}).Result()
	if err != nil {
		if !errors.Is(err, redis.Nil) && ctx.Err() == nil {
			q.log.Error("XPending failed", zap.Error(err))
		}
		return nil
	}

	ids := make([]string, 0, len(pending))
	for _, p := range pending {
		if int(p.RetryCount) >= q.cfg.MaxRetryCount {
			q.log.Warn("Drop ledger job after max deliveries",
				zap.String("message_id", p.ID),
				zap.Int64("deliveries", p.RetryCount),
			)
			q.ack(ctx, p.ID)
			continue
		}
		ids = append(ids, p.ID)
	}
	if len(ids) == 0 {
		return nil
	}

	msgs, err := q.client.XClaim(ctx, &redis.XClaimArgs{
		Stream:   StreamKey,
		Group:    ConsumerGroupName,
		Consumer: q.consumer,
		MinIdle:  q.cfg.ClaimMinIdleTime,
		Messages: ids,
	}).Result()
	if err != nil && ctx.Err() == nil {
		q.log.Error("XClaim failed", zap.Error(err))
		return nil
	}
	return msgs
}

// delivery 解析工作；格式錯誤的訊息 ack 掉，不再重試
func (q *RedisStreamLedgerQueueImpl) delivery(ctx context.Context, msg redis.XMessage) (Delivery, bool) {
	job, err := decodeLedgerJob(msg)
	if err != nil {
		q.log.Warn("Discard malformed ledger job", zap.String("message_id", msg.ID), zap.Error(err))
		q.ack(ctx, msg.ID)
		return Delivery{}, false
	}

	id := msg.ID
	return Delivery{
		Data: job,
		Ack:  func() { q.ack(ctx, id) },
		Nack: func(requeue bool) {
			if requeue {
				// 留在 pending，閒置逾時後由 reclaimStale 領回
				return
			}
			q.ack(ctx, id)
		},
	}, true
}

// ack 不受 ctx 取消影響，關機途中處理完的工作仍能確認
func (q *RedisStreamLedgerQueueImpl) ack(ctx context.Context, id string) {
	if err := q.client.XAck(context.WithoutCancel(ctx), StreamKey, ConsumerGroupName, id).Err(); err != nil {
		q.log.Error("XAck failed", zap.String("message_id", id), zap.Error(err))
	}
}

func decodeLedgerJob(msg redis.XMessage) (*model.LedgerSyncJob, error) {
	payload, ok := msg.Values[jobField].(string)
	if !ok {
		return nil, errors.New("missing job field")
	}
	var job model.LedgerSyncJob
	if err := json.Unmarshal([]byte(payload), &job); err != nil {
		return nil, err
	}
	return &job, nil
}

// sleep 回傳 false 表示 ctx 已結束
func sleep(ctx context.Context, d time.Duration) bool {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}
