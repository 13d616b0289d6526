package model

import (
	"time"

	apperrors "github.com/charile1/golf-reservation/pkg/app_errors"

	"github.com/google/uuid"
)

const (
	DateLayout  = "2006-01-02"
	MonthLayout = "2006-01"
	ClockLayout = "15:04"
)

// TeeTimeStatus 開球時段狀態類型
type TeeTimeStatus string

const (
	TeeTimeStatusAvailable TeeTimeStatus = "AVAILABLE"
	TeeTimeStatusJoining   TeeTimeStatus = "JOINING"
	TeeTimeStatusConfirmed TeeTimeStatus = "CONFIRMED"
	TeeTimeStatusCanceled  TeeTimeStatus = "CANCELED"
)

func (s TeeTimeStatus) IsValid() bool {
	switch s {
	case TeeTimeStatusAvailable, TeeTimeStatusJoining, TeeTimeStatusConfirmed, TeeTimeStatusCanceled:
		return true
	}
	return false
}

// TeeTime 可預約的開球時段
type TeeTime struct {
	ID            uuid.UUID     `json:"id" db:"id"`
	Date          string        `json:"date" db:"date"`
	Time          string        `json:"time" db:"time"`
	CourseName    string        `json:"course_name" db:"course_name"`
	RevenueType   RevenueType   `json:"revenue_type" db:"revenue_type"`
	GreenFee      int64         `json:"green_fee" db:"green_fee"`
	OnsitePayment int64         `json:"onsite_payment" db:"onsite_payment"`
	CostPrice     int64         `json:"cost_price" db:"cost_price"`
	SlotsTotal    int           `json:"slots_total" db:"slots_total"`
	Status        TeeTimeStatus `json:"status" db:"status"`
	CreatedBy     *string       `json:"created_by,omitempty" db:"created_by"`
	CreatedAt     time.Time     `json:"created_at" db:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at" db:"updated_at"`
}

// Validate checks the fields staff can set on a tee time.
func (t *TeeTime) Validate() error {
	if t.CourseName == "" {
		return apperrors.NewValidationError("course_name", "course name is required")
	}
	if _, err := time.Parse(DateLayout, t.Date); err != nil {
		return apperrors.NewValidationError("date", "date must be formatted as YYYY-MM-DD")
	}
	if _, err := time.Parse(ClockLayout, t.Time); err != nil {
		return apperrors.NewValidationError("time", "time must be formatted as HH:MM")
	}
	if t.SlotsTotal < 1 {
		return apperrors.NewValidationError("slots_total", "slots_total must be at least 1")
	}
	if !t.RevenueType.IsValid() {
		return apperrors.NewValidationError("revenue_type", "revenue_type must be one of standard, package, buyout")
	}
	if !t.Status.IsValid() {
		return apperrors.NewValidationError("status", "invalid tee time status")
	}
	if t.GreenFee < 0 || t.OnsitePayment < 0 || t.CostPrice < 0 {
		return apperrors.NewValidationError("price", "prices must not be negative")
	}
	return nil
}

// TeeTimeWithSlots 附帶即時計算的佔位數
type TeeTimeWithSlots struct {
	TeeTime
	SlotsBooked  int `json:"slots_booked"`
	SlotsPending int `json:"slots_pending"`
}

type UpdateTeeTimeParams struct {
	Date          *string
	Time          *string
	CourseName    *string
	RevenueType   *RevenueType
	GreenFee      *int64
	OnsitePayment *int64
	CostPrice     *int64
	SlotsTotal    *int
	Status        *TeeTimeStatus
}

// IsEmpty reports whether no field is set.
func (p UpdateTeeTimeParams) IsEmpty() bool {
	return p.Date == nil && p.Time == nil && p.CourseName == nil && p.RevenueType == nil &&
		p.GreenFee == nil && p.OnsitePayment == nil && p.CostPrice == nil &&
		p.SlotsTotal == nil && p.Status == nil
}

// Apply 將有值的欄位套用到 tee time 上
func (p UpdateTeeTimeParams) Apply(t *TeeTime) {
	if p.Date != nil {
		t.Date = *p.Date
	}
	if p.Time != nil {
		t.Time = *p.Time
	}
	if p.CourseName != nil {
		t.CourseName = *p.CourseName
	}
	if p.RevenueType != nil {
		t.RevenueType = *p.RevenueType
	}
	if p.GreenFee != nil {
		t.GreenFee = *p.GreenFee
	}
	if p.OnsitePayment != nil {
		t.OnsitePayment = *p.OnsitePayment
	}
	if p.CostPrice != nil {
		t.CostPrice = *p.CostPrice
	}
	if p.SlotsTotal != nil {
		t.SlotsTotal = *p.SlotsTotal
	}
	if p.Status != nil {
		t.Status = *p.Status
	}
}

// TeeTimeFilter list 查詢條件，零值代表不篩選
type TeeTimeFilter struct {
	Month     string // YYYY-MM, matched against the play date
	CreatedOn string // YYYY-MM-DD, matched against created_at
	Statuses  []TeeTimeStatus
	SortDesc  bool
}
