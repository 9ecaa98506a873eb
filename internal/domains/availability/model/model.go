package model

import (
	"time"
)

// Slot is a bookable window as computed by the backend for one location.
type Slot struct {
	Start    time.Time `json:"slot_start"`
	End      time.Time `json:"slot_end"`
	Capacity int       `json:"capacity"`
}

// OfferableSlot is a slot that survived reconciliation against bookings.
type OfferableSlot struct {
	Slot
	Booked    int `json:"booked"`
	Remaining int `json:"remaining"`
}

// MonthAvailability maps YYYY-MM-DD to whether the day has an offerable slot.
type MonthAvailability map[string]bool

// Days returns the available dates in the month.
func (m MonthAvailability) Days() []string {
	days := make([]string, 0, len(m))
	for day, ok := range m {
		if ok {
			days = append(days, day)
		}
	}

	return days
}
