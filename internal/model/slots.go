package model

import "github.com/google/uuid"

// SlotCounts 開球時段的已確認與待付款人數
type SlotCounts struct {
	Confirmed int `json:"confirmed"`
	Pending   int `json:"pending"`
}

// AggregateSlots sums people_count by status. Canceled bookings count nowhere.
func AggregateSlots(bookings []*Booking) SlotCounts {
	var counts SlotCounts
	for _, b := range bookings {
		switch b.Status {
		case BookingStatusConfirmed:
			counts.Confirmed += b.PeopleCount
		case BookingStatusPending:
			counts.Pending += b.PeopleCount
		}
	}
	return counts
}

// AggregateSlotsByTeeTime groups bookings by tee time and aggregates each group.
func AggregateSlotsByTeeTime(bookings []*Booking) map[uuid.UUID]SlotCounts {
	grouped := make(map[uuid.UUID][]*Booking)
	for _, b := range bookings {
		grouped[b.TeeTimeID] = append(grouped[b.TeeTimeID], b)
	}
	result := make(map[uuid.UUID]SlotCounts, len(grouped))
	for id, group := range grouped {
		result[id] = AggregateSlots(group)
	}
	return result
}

// WithSlots attaches freshly aggregated counts to a tee time.
func WithSlots(t *TeeTime, counts SlotCounts) *TeeTimeWithSlots {
	return &TeeTimeWithSlots{
		TeeTime:      *t,
		SlotsBooked:  counts.Confirmed,
		SlotsPending: counts.Pending,
	}
}
