package worker_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/charile1/golf-reservation/internal/model"
	"github.com/charile1/golf-reservation/internal/queue"
	serviceMocks "github.com/charile1/golf-reservation/internal/service/mocks"
	"github.com/charile1/golf-reservation/internal/worker"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestLedgerWorker_ReconcilesPublishedJob(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	q := queue.NewMemoryLedgerQueue(10)
	svc := serviceMocks.NewMockTransactionService(t)

	bookingID := uuid.New()
	called := make(chan uuid.UUID, 1)
	svc.On("Reconcile", mock.Anything, bookingID, model.LedgerJobReasonEnsure).
		Run(func(args mock.Arguments) { called <- args.Get(1).(uuid.UUID) }).
		Return(nil).Once()

	require.NoError(t, worker.NewLedgerWorker(svc, q).Start(ctx))
	require.NoError(t, q.Publish(ctx, &model.LedgerSyncJob{BookingID: bookingID, Reason: model.LedgerJobReasonEnsure}))

	select {
	case got := <-called:
		require.Equal(t, bookingID, got)
	case <-time.After(time.Second):
		t.Fatal("worker did not reconcile the job in time")
	}
}

func TestLedgerWorker_FailedJobIsRequeued(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	q := queue.NewMemoryLedgerQueue(10)
	svc := serviceMocks.NewMockTransactionService(t)

	bookingID := uuid.New()
	done := make(chan struct{})
	svc.On("Reconcile", mock.Anything, bookingID, model.LedgerJobReasonCancel).Return(errors.New("db down")).Once()
	svc.On("Reconcile", mock.Anything, bookingID, model.LedgerJobReasonCancel).
		Run(func(mock.Arguments) { close(done) }).
		Return(nil).Once()

	require.NoError(t, worker.NewLedgerWorker(svc, q).Start(ctx))
	require.NoError(t, q.Publish(ctx, &model.LedgerSyncJob{BookingID: bookingID, Reason: model.LedgerJobReasonCancel}))

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("failed job was not retried")
	}
}
