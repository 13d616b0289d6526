package model

import (
	"time"

	"github.com/google/uuid"
)

const (
	LedgerJobReasonEnsure = "ensure"
	LedgerJobReasonCancel = "cancel"
	LedgerJobReasonSync   = "sync"
)

// LedgerSyncJob 帳目同步失敗後排入重試佇列的工作
type LedgerSyncJob struct {
	BookingID   uuid.UUID `json:"booking_id"`
	Reason      string    `json:"reason"`
	RequestedAt time.Time `json:"requested_at"`
}
