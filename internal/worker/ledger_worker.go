package worker

import (
	"context"

	"github.com/charile1/golf-reservation/internal/queue"
	"github.com/charile1/golf-reservation/internal/service"
	"github.com/charile1/golf-reservation/pkg/logger"

	"go.uber.org/zap"
)

type LedgerWorker interface {
	// 訂閱帳目同步佇列，ctx 結束時停止
	Start(ctx context.Context) error
}

type LedgerWorkerImpl struct {
	service service.TransactionService
	queue   queue.LedgerQueue
}

func NewLedgerWorker(service service.TransactionService, queue queue.LedgerQueue) LedgerWorker {
	return &LedgerWorkerImpl{
		service: service,
		queue:   queue,
	}
}

func (w *LedgerWorkerImpl) Start(ctx context.Context) error {
	msgs, err := w.queue.Subscribe(ctx)
	if err != nil {
		return err
	}

	go func() {
		for msg := range msgs {
			if msg.Data == nil {
				msg.Ack()
				continue
			}

			// Reconcile 以預約目前狀態為準，重複執行結果相同
			if err := w.service.Reconcile(ctx, msg.Data.BookingID, msg.Data.Reason); err != nil {
				logger.WithComponent("worker").Warn("Ledger reconcile failed",
					zap.String("booking_id", msg.Data.BookingID.String()),
					zap.String("reason", msg.Data.Reason),
					zap.Error(err),
				)
				msg.Nack(true)
				continue
			}
			msg.Ack()
		}
	}()
	return nil
}
