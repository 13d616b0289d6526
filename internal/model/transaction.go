package model

import (
	"time"

	"github.com/google/uuid"
)

// TransactionStatus 交易紀錄狀態
type TransactionStatus string

const (
	TransactionStatusPending   TransactionStatus = "pending"
	TransactionStatusConfirmed TransactionStatus = "confirmed"
	TransactionStatusCanceled  TransactionStatus = "canceled"
	TransactionStatusSettled   TransactionStatus = "settled"
)

func (s TransactionStatus) IsValid() bool {
	switch s {
	case TransactionStatusPending, TransactionStatusConfirmed, TransactionStatusCanceled, TransactionStatusSettled:
		return true
	}
	return false
}

// Transaction 已確認預約的金流帳目
type Transaction struct {
	ID                  uuid.UUID         `json:"id" db:"id"`
	BookingID           uuid.UUID         `json:"booking_id" db:"booking_id"`
	TeeTimeID           uuid.UUID         `json:"tee_time_id" db:"tee_time_id"`
	CourseName          string            `json:"course_name" db:"course_name"`
	TotalPrice          int64             `json:"total_price" db:"total_price"`
	Prepayment          int64             `json:"prepayment" db:"prepayment"`
	OnsitePayment       int64             `json:"onsite_payment" db:"onsite_payment"`
	Cost                int64             `json:"cost" db:"cost"`
	Commission          int64             `json:"commission" db:"commission"`
	CommissionPerPerson int64             `json:"commission_per_person" db:"commission_per_person"`
	RevenueType         RevenueType       `json:"revenue_type" db:"revenue_type"`
	PeopleCount         int               `json:"people_count" db:"people_count"`
	Status              TransactionStatus `json:"status" db:"status"`
	BookingDate         string            `json:"booking_date" db:"booking_date"`
	PlayDate            string            `json:"play_date" db:"play_date"`
	SettledAt           *time.Time        `json:"settled_at" db:"settled_at"`
	Memo                *string           `json:"memo" db:"memo"`
	CreatedAt           time.Time         `json:"created_at" db:"created_at"`
	UpdatedAt           time.Time         `json:"updated_at" db:"updated_at"`
}

// NewTransaction builds the ledger row for a confirmed booking from the booking's
// payment and its tee time's current pricing.
func NewTransaction(booking *Booking, teeTime *TeeTime, today time.Time) *Transaction {
	revenue := CalculateRevenue(teeTime.RevenueType, booking.PaymentAmount, teeTime.OnsitePayment, teeTime.CostPrice, booking.PeopleCount)
	return &Transaction{
		BookingID:           booking.ID,
		TeeTimeID:           teeTime.ID,
		CourseName:          teeTime.CourseName,
		TotalPrice:          revenue.TotalPrice,
		Prepayment:          booking.PaymentAmount,
		OnsitePayment:       revenue.OnsiteTotal,
		Cost:                teeTime.CostPrice,
		Commission:          revenue.Commission,
		CommissionPerPerson: revenue.CommissionPerPerson,
		RevenueType:         teeTime.RevenueType,
		PeopleCount:         booking.PeopleCount,
		Status:              TransactionStatusConfirmed,
		BookingDate:         today.Format(DateLayout),
		PlayDate:            teeTime.Date,
	}
}

// SetPrepayment replaces the prepayment and re-derives total and commission from
// the row's own snapshot (revenue type, cost, onsite total, headcount).
func (t *Transaction) SetPrepayment(prepayment int64) {
	t.Prepayment = prepayment
	t.TotalPrice = prepayment + t.OnsitePayment
	t.Commission = commissionFor(t.RevenueType, prepayment, t.OnsitePayment, t.Cost)
	t.CommissionPerPerson = PerPerson(t.Commission, t.PeopleCount)
}

// ClearCommission zeroes the margin fields; used when margin tracking is off.
func (t *Transaction) ClearCommission() {
	t.Commission = 0
	t.CommissionPerPerson = 0
}

// SetStatus keeps settled_at in step with the status: stamped when entering
// settled, cleared when leaving it, untouched otherwise.
func (t *Transaction) SetStatus(status TransactionStatus, now time.Time) {
	switch {
	case status == TransactionStatusSettled && t.Status != TransactionStatusSettled:
		settledAt := now.UTC()
		t.SettledAt = &settledAt
	case status != TransactionStatusSettled:
		t.SettledAt = nil
	}
	t.Status = status
}

type UpdateTransactionParams struct {
	Status *TransactionStatus
	Memo   *string
}

// BookingSummary 交易列表顯示用的預約摘要
type BookingSummary struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Phone string    `json:"phone"`
}

// TransactionWithBooking 交易與所屬預約；預約刪除後 Booking 為 nil
type TransactionWithBooking struct {
	Transaction
	Booking *BookingSummary `json:"booking"`
}

type TransactionFilter struct {
	Status TransactionStatus
	Month  string // YYYY-MM of the play date
}

// TransactionSummary 未取消交易的金額統計
type TransactionSummary struct {
	TotalPrepayment    int64 `json:"total_prepayment"`
	TotalOnsitePayment int64 `json:"total_onsite_payment"`
	TotalCommission    int64 `json:"total_commission"`
	Count              int   `json:"count"`
}

// Summarize totals every non-canceled transaction.
func Summarize(transactions []*TransactionWithBooking) TransactionSummary {
	var s TransactionSummary
	for _, t := range transactions {
		if t.Status == TransactionStatusCanceled {
			continue
		}
		s.TotalPrepayment += t.Prepayment
		s.TotalOnsitePayment += t.OnsitePayment
		s.TotalCommission += t.Commission
		s.Count++
	}
	return s
}
