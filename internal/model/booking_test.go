package model_test

import (
	"errors"
	"testing"
	"time"

	"github.com/charile1/golf-reservation/internal/model"
	apperrors "github.com/charile1/golf-reservation/pkg/app_errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validBooking() *model.Booking {
	return &model.Booking{
		TeeTimeID:      uuid.New(),
		Name:           "Kim",
		PeopleCount:    2,
		CompanionNames: []string{"Kim", "Lee"},
		BookingType:    model.BookingTypeJoin,
		PaymentAmount:  100000,
		Status:         model.BookingStatusPending,
	}
}

func TestBooking_Validate(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		assert.NoError(t, validBooking().Validate())
	})

	tests := []struct {
		name   string
		mutate func(b *model.Booking)
		field  string
	}{
		{"missing tee time", func(b *model.Booking) { b.TeeTimeID = uuid.Nil }, "tee_time_id"},
		{"zero people", func(b *model.Booking) { b.PeopleCount = 0; b.CompanionNames = nil }, "people_count"},
		{"too few names", func(b *model.Booking) { b.CompanionNames = []string{"Kim"} }, "companion_names"},
		{"too many names", func(b *model.Booking) { b.CompanionNames = []string{"Kim", "Lee", "Park"} }, "companion_names"},
		{"blank name", func(b *model.Booking) { b.CompanionNames = []string{"Kim", "  "} }, "companion_names"},
		{"bad booking type", func(b *model.Booking) { b.BookingType = "SOLO" }, "booking_type"},
		{"bad status", func(b *model.Booking) { b.Status = "DONE" }, "status"},
		{"negative amount", func(b *model.Booking) { b.PaymentAmount = -1 }, "payment_amount"},
	}

	for _, tt := range tests {
		t.Run("Failed - "+tt.name, func(t *testing.T) {
			b := validBooking()
			tt.mutate(b)

			err := b.Validate()

			require.Error(t, err)
			assert.True(t, errors.Is(err, apperrors.ErrValidation))
			var validationErr *apperrors.ValidationError
			require.True(t, errors.As(err, &validationErr))
			assert.Equal(t, tt.field, validationErr.Field)
		})
	}

	t.Run("Blank name message names the entry", func(t *testing.T) {
		b := validBooking()
		b.CompanionNames = []string{"Kim", ""}

		err := b.Validate()

		assert.EqualError(t, err, "all customer names are required (entry 2 is empty)")
	})
}

func TestBooking_SetStatus(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	t.Run("Confirm sets paid_at", func(t *testing.T) {
		b := validBooking()
		b.SetStatus(model.BookingStatusConfirmed, now)

		assert.Equal(t, model.BookingStatusConfirmed, b.Status)
		require.NotNil(t, b.PaidAt)
		assert.Equal(t, now, *b.PaidAt)
	})

	t.Run("Staying confirmed keeps paid_at", func(t *testing.T) {
		b := validBooking()
		b.SetStatus(model.BookingStatusConfirmed, now)
		b.SetStatus(model.BookingStatusConfirmed, now.Add(time.Hour))

		require.NotNil(t, b.PaidAt)
		assert.Equal(t, now, *b.PaidAt)
	})

	t.Run("Paid-at follows status for every transition", func(t *testing.T) {
		statuses := []model.BookingStatus{
			model.BookingStatusPending, model.BookingStatusConfirmed, model.BookingStatusCanceled,
		}
		for _, from := range statuses {
			for _, to := range statuses {
				b := validBooking()
				b.SetStatus(from, now)
				b.SetStatus(to, now)
				assert.Equal(t, to == model.BookingStatusConfirmed, b.PaidAt != nil, "%s -> %s", from, to)
			}
		}
	})
}

func TestBooking_AppendMemo(t *testing.T) {
	b := validBooking()
	b.AppendMemo("")
	assert.Nil(t, b.Memo)

	b.AppendMemo("payment key: pk_1")
	require.NotNil(t, b.Memo)
	assert.Equal(t, "payment key: pk_1", *b.Memo)

	b.AppendMemo("called back")
	assert.Equal(t, "payment key: pk_1 | called back", *b.Memo)
}

func TestBookingInput_ApplyTo(t *testing.T) {
	t.Run("First companion becomes representative", func(t *testing.T) {
		var b model.Booking
		model.BookingInput{PeopleCount: 2, CompanionNames: []string{" Park ", "Choi"}}.ApplyTo(&b)

		assert.Equal(t, "Park", b.Name)
		assert.Equal(t, model.BookingTypeJoin, b.BookingType)
	})

	t.Run("Explicit name wins", func(t *testing.T) {
		var b model.Booking
		model.BookingInput{Name: "Rep", CompanionNames: []string{"Park"}, BookingType: model.BookingTypeTransfer}.ApplyTo(&b)

		assert.Equal(t, "Rep", b.Name)
		assert.Equal(t, model.BookingTypeTransfer, b.BookingType)
	})
}
