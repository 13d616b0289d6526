package model

import (
	"fmt"
	"strings"
	"time"

	apperrors "github.com/charile1/golf-reservation/pkg/app_errors"

	"github.com/google/uuid"
)

// BookingStatus 預約狀態類型
type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "PENDING"
	BookingStatusConfirmed BookingStatus = "CONFIRMED"
	BookingStatusCanceled  BookingStatus = "CANCELED"
)

// IsValid 驗證狀態是否有效
func (s BookingStatus) IsValid() bool {
	switch s {
	case BookingStatusPending, BookingStatusConfirmed, BookingStatusCanceled:
		return true
	}
	return false
}

// BookingType TRANSFER 整組轉讓, JOIN 拼組
type BookingType string

const (
	BookingTypeTransfer BookingType = "TRANSFER"
	BookingTypeJoin     BookingType = "JOIN"
)

func (t BookingType) IsValid() bool {
	return t == BookingTypeTransfer || t == BookingTypeJoin
}

// Booking 預約模型
type Booking struct {
	ID             uuid.UUID     `json:"id" db:"id"`
	TeeTimeID      uuid.UUID     `json:"tee_time_id" db:"tee_time_id"`
	CustomerID     *uuid.UUID    `json:"customer_id" db:"customer_id"`
	Name           string        `json:"name" db:"name"`
	Phone          string        `json:"phone" db:"phone"`
	PeopleCount    int           `json:"people_count" db:"people_count"`
	CompanionNames []string      `json:"companion_names" db:"companion_names"`
	BookingType    BookingType   `json:"booking_type" db:"booking_type"`
	PaymentAmount  int64         `json:"payment_amount" db:"payment_amount"`
	Status         BookingStatus `json:"status" db:"status"`
	PaidAt         *time.Time    `json:"paid_at" db:"paid_at"`
	Memo           *string       `json:"memo" db:"memo"`
	CreatedAt      time.Time     `json:"created_at" db:"created_at"`
	UpdatedAt      time.Time     `json:"updated_at" db:"updated_at"`
}

// Validate runs the checks that must pass before a booking is written.
func (b *Booking) Validate() error {
	if b.TeeTimeID == uuid.Nil {
		return apperrors.NewValidationError("tee_time_id", "tee time is required")
	}
	if b.PeopleCount < 1 {
		return apperrors.NewValidationError("people_count", "people_count must be at least 1")
	}
	if len(b.CompanionNames) != b.PeopleCount {
		return apperrors.NewValidationError("companion_names",
			fmt.Sprintf("companion_names must list %d names, got %d", b.PeopleCount, len(b.CompanionNames)))
	}
	for i, name := range b.CompanionNames {
		if strings.TrimSpace(name) == "" {
			return apperrors.NewValidationError("companion_names",
				fmt.Sprintf("all customer names are required (entry %d is empty)", i+1))
		}
	}
	if !b.BookingType.IsValid() {
		return apperrors.NewValidationError("booking_type", "booking_type must be TRANSFER or JOIN")
	}
	if !b.Status.IsValid() {
		return apperrors.NewValidationError("status", "invalid booking status")
	}
	if b.PaymentAmount < 0 {
		return apperrors.NewValidationError("payment_amount", "payment_amount must not be negative")
	}
	return nil
}

// SetStatus moves the booking to status and keeps paid_at consistent with it:
// set when entering CONFIRMED, kept while staying CONFIRMED, cleared otherwise.
func (b *Booking) SetStatus(status BookingStatus, now time.Time) {
	switch {
	case status != BookingStatusConfirmed:
		b.PaidAt = nil
	case b.Status != BookingStatusConfirmed || b.PaidAt == nil:
		paidAt := now.UTC()
		b.PaidAt = &paidAt
	}
	b.Status = status
}

// AppendMemo 在既有備註後追加一段文字
func (b *Booking) AppendMemo(note string) {
	if note == "" {
		return
	}
	if b.Memo == nil || *b.Memo == "" {
		b.Memo = &note
		return
	}
	merged := *b.Memo + " | " + note
	b.Memo = &merged
}

// BookingWithTeeTime 預約與所屬開球時段
type BookingWithTeeTime struct {
	Booking
	TeeTime *TeeTime `json:"tee_time"`
}

// BookingFilter list 查詢條件，零值代表不篩選
type BookingFilter struct {
	Status    BookingStatus
	Month     string // YYYY-MM of the tee time's play date
	TeeTimeID *uuid.UUID
}

// BookingInput carries the staff-editable fields of a booking.
type BookingInput struct {
	TeeTimeID      uuid.UUID
	CustomerID     *uuid.UUID
	Name           string
	Phone          string
	PeopleCount    int
	CompanionNames []string
	BookingType    BookingType
	PaymentAmount  int64
	Status         BookingStatus
	Memo           *string
}

// ApplyTo copies the input onto b. Status is left to SetStatus.
func (in BookingInput) ApplyTo(b *Booking) {
	b.TeeTimeID = in.TeeTimeID
	b.CustomerID = in.CustomerID
	b.Phone = in.Phone
	b.PeopleCount = in.PeopleCount
	b.CompanionNames = in.CompanionNames
	b.BookingType = in.BookingType
	b.PaymentAmount = in.PaymentAmount
	b.Memo = in.Memo
	b.Name = in.Name
	// 第一位同行者作為代表人
	if b.Name == "" && len(in.CompanionNames) > 0 {
		b.Name = strings.TrimSpace(in.CompanionNames[0])
	}
	if b.BookingType == "" {
		b.BookingType = BookingTypeJoin
	}
}
