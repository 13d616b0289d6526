package queue

import (
	"context"
	"sync"

	"github.com/charile1/golf-reservation/internal/model"
)

type Delivery struct {
	Data *model.LedgerSyncJob
	Ack  func()
	Nack func(requeue bool)
}

type LedgerQueue interface {
	// 發送帳目同步工作
	Publish(ctx context.Context, job *model.LedgerSyncJob) error
	// 訂閱帳目同步工作
	Subscribe(ctx context.Context) (<-chan Delivery, error)
}

// MemoryLedgerQueueImpl 單一進程內的佇列，測試與未啟用 Redis Stream 時使用
type MemoryLedgerQueueImpl struct {
	ch chan *model.LedgerSyncJob
}

func NewMemoryLedgerQueue(bufferSize int) LedgerQueue {
	return &MemoryLedgerQueueImpl{
		ch: make(chan *model.LedgerSyncJob, bufferSize),
	}
}

func (q *MemoryLedgerQueueImpl) Publish(ctx context.Context, job *model.LedgerSyncJob) error {
	select {
	case q.ch <- job:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (q *MemoryLedgerQueueImpl) Subscribe(ctx context.Context) (<-chan Delivery, error) {
	return fanIn(ctx, q.produce), nil
}

func (q *MemoryLedgerQueueImpl) produce(ctx context.Context, out chan<- Delivery) {
	for {
		select {
		case <-ctx.Done():
			return
		case job, ok := <-q.ch:
			if !ok {
				return
			}

			d := Delivery{
				Data: job,
				Ack:  func() {},
				Nack: func(requeue bool) {
					if requeue {
						// 佇列已滿時丟棄，避免卡住消費者
						select {
						case q.ch <- job:
						default:
						}
					}
				},
			}
			select {
			case out <- d:
			case <-ctx.Done():
				return
			}
		}
	}
}

// fanIn 讓多個 producer 共用一個輸出 channel；全部 producer 返回後才關閉，
// 不會有 producer 對已關閉的 channel 送值
func fanIn(ctx context.Context, producers ...func(ctx context.Context, out chan<- Delivery)) <-chan Delivery {
	out := make(chan Delivery)

	var wg sync.WaitGroup
	wg.Add(len(producers))
	for _, produce := range producers {
		go func() {
			defer wg.Done()
			produce(ctx, out)
		}()
	}

	go func() {
		wg.Wait()
		close(out)
	}()
	return out
}
