package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

type WebhookDeduplicator interface {
	// 佔用：第一次看到此事件時回傳 true
	Acquire(ctx context.Context, eventKey string) (bool, error)
	// 釋放：處理失敗時刪除 key，讓付款服務的重送可以再次處理
	Release(ctx context.Context, eventKey string) error
}

type RedisWebhookDeduplicator struct {
	client *redis.Client
	ttl    time.Duration
	token  string
}

func NewRedisWebhookDeduplicator(client *redis.Client, ttl time.Duration) WebhookDeduplicator {
	return &RedisWebhookDeduplicator{
		client: client,
		ttl:    ttl,
		token:  uuid.NewString(),
	}
}

// 事件 key
func (d *RedisWebhookDeduplicator) getEventKey(eventKey string) string {
	return fmt.Sprintf("webhook:toss:%s", eventKey)
}

func (d *RedisWebhookDeduplicator) Acquire(ctx context.Context, eventKey string) (bool, error) {
	return d.client.SetNX(ctx, d.getEventKey(eventKey), d.token, d.ttl).Result()
}

/*
*

	釋放事件 key (使用Lua腳本確保原子性)
	只刪除本程序寫入的 key，避免刪掉其他實例正在處理的事件
*/
func (d *RedisWebhookDeduplicator) Release(ctx context.Context, eventKey string) error {
	script := `
		if redis.call('GET', KEYS[1]) == ARGV[1] then
			return redis.call('DEL', KEYS[1])
		end
		return 0
	`

	_, err := d.client.Eval(ctx, script, []string{d.getEventKey(eventKey)}, d.token).Result()
	return err
}
