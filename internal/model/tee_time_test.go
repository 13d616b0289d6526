package model_test

import (
	"testing"

	"github.com/charile1/golf-reservation/internal/model"
	apperrors "github.com/charile1/golf-reservation/pkg/app_errors"

	"github.com/stretchr/testify/assert"
)

var errValidation = apperrors.ErrValidation

func validTeeTime() *model.TeeTime {
	return &model.TeeTime{
		Date:          "2025-06-15",
		Time:          "07:30",
		CourseName:    "Sky Hill",
		RevenueType:   model.RevenueTypeStandard,
		GreenFee:      100000,
		OnsitePayment: 20000,
		SlotsTotal:    4,
		Status:        model.TeeTimeStatusAvailable,
	}
}

func TestTeeTime_Validate(t *testing.T) {
	assert.NoError(t, validTeeTime().Validate())

	tests := map[string]func(tt *model.TeeTime){
		"missing course":   func(tt *model.TeeTime) { tt.CourseName = "" },
		"bad date":         func(tt *model.TeeTime) { tt.Date = "2025/06/15" },
		"bad time":         func(tt *model.TeeTime) { tt.Time = "7am" },
		"no slots":         func(tt *model.TeeTime) { tt.SlotsTotal = 0 },
		"bad revenue type": func(tt *model.TeeTime) { tt.RevenueType = "rental" },
		"bad status":       func(tt *model.TeeTime) { tt.Status = "OPEN" },
		"negative cost":    func(tt *model.TeeTime) { tt.CostPrice = -1 },
	}
	for name, mutate := range tests {
		t.Run(name, func(t *testing.T) {
			teeTime := validTeeTime()
			mutate(teeTime)
			assert.ErrorIs(t, teeTime.Validate(), errValidation)
		})
	}
}

func TestUpdateTeeTimeParams(t *testing.T) {
	assert.True(t, model.UpdateTeeTimeParams{}.IsEmpty())

	course := "Lake View"
	slots := 3
	params := model.UpdateTeeTimeParams{CourseName: &course, SlotsTotal: &slots}
	assert.False(t, params.IsEmpty())

	teeTime := validTeeTime()
	params.Apply(teeTime)
	assert.Equal(t, "Lake View", teeTime.CourseName)
	assert.Equal(t, 3, teeTime.SlotsTotal)
	assert.Equal(t, "2025-06-15", teeTime.Date)
}

func TestCustomer_Validate(t *testing.T) {
	c := &model.Customer{Name: "Kim"}
	assert.NoError(t, c.Validate())
	assert.Equal(t, model.CustomerGroupNone, c.GroupType)

	assert.ErrorIs(t, (&model.Customer{Name: " "}).Validate(), errValidation)
	assert.ErrorIs(t, (&model.Customer{Name: "Kim", GroupType: "FAMILY"}).Validate(), errValidation)
}
