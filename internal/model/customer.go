package model

import (
	"strings"
	"time"

	apperrors "github.com/charile1/golf-reservation/pkg/app_errors"

	"github.com/google/uuid"
)

type CustomerGroupType string

const (
	CustomerGroupNone   CustomerGroupType = "NONE"
	CustomerGroupCouple CustomerGroupType = "COUPLE"
	CustomerGroupSingle CustomerGroupType = "SINGLE"
)

func (g CustomerGroupType) IsValid() bool {
	switch g {
	case CustomerGroupNone, CustomerGroupCouple, CustomerGroupSingle:
		return true
	}
	return false
}

// Customer 常用聯絡人，預約時複製姓名與電話，不作為預約身分依據
type Customer struct {
	ID        uuid.UUID         `json:"id" db:"id"`
	Name      string            `json:"name" db:"name"`
	Phone     string            `json:"phone" db:"phone"`
	Email     *string           `json:"email" db:"email"`
	GroupType CustomerGroupType `json:"group_type" db:"group_type"`
	Memo      *string           `json:"memo" db:"memo"`
	CreatedAt time.Time         `json:"created_at" db:"created_at"`
	UpdatedAt time.Time         `json:"updated_at" db:"updated_at"`
}

func (c *Customer) Validate() error {
	if strings.TrimSpace(c.Name) == "" {
		return apperrors.NewValidationError("name", "customer name is required")
	}
	if c.GroupType == "" {
		c.GroupType = CustomerGroupNone
	}
	if !c.GroupType.IsValid() {
		return apperrors.NewValidationError("group_type", "group_type must be NONE, COUPLE or SINGLE")
	}
	return nil
}
