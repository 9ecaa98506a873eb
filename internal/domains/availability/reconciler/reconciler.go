// Package reconciler decides which computed slots can still be offered.
//
// Slots and bookings are matched by their local start minute, so two
// instants that render to the same wall-clock minute in the tenant zone
// count against the same slot.
package reconciler

import (
	"time"

	"github.com/NikQuila/website-gocar-sub000/internal/domains/availability/model"
	"github.com/NikQuila/website-gocar-sub000/shared/constant"
)

// SlotKey is the local start minute of t in loc.
func SlotKey(t time.Time, loc *time.Location) string {
	return t.In(loc).Format(constant.MinuteKeyFormat)
}

func minuteOfDay(t time.Time) int {
	return t.Hour()*60 + t.Minute()
}

// IsFutureSlot reports whether a slot starting at start may still be offered
// at now. Both are compared in loc: later days always qualify, earlier days
// never do, and on the same day the start minute must be after now's minute.
func IsFutureSlot(start, now time.Time, loc *time.Location) bool {
	start = start.In(loc)
	now = now.In(loc)

	startDay := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, loc)
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, loc)

	switch {
	case startDay.After(today):
		return true
	case startDay.Before(today):
		return false
	default:
		return minuteOfDay(start) > minuteOfDay(now)
	}
}

// HasOfferable reports whether any future slot has capacity left after
// subtracting booked starts.
func HasOfferable(slots []model.Slot, booked []time.Time, now time.Time, loc *time.Location) bool {
	return len(Reconcile(slots, booked, now, loc)) > 0
}

// Reconcile keeps the future slots whose booked count is below capacity,
// preserving input order.
func Reconcile(slots []model.Slot, booked []time.Time, now time.Time, loc *time.Location) []model.OfferableSlot {
	counts := make(map[string]int, len(booked))
	for _, start := range booked {
		counts[SlotKey(start, loc)]++
	}

	offerable := make([]model.OfferableSlot, 0, len(slots))

	for _, slot := range slots {
		if !IsFutureSlot(slot.Start, now, loc) {
			continue
		}

		taken := counts[SlotKey(slot.Start, loc)]
		if taken >= slot.Capacity {
			continue
		}

		offerable = append(offerable, model.OfferableSlot{
			Slot:      slot,
			Booked:    taken,
			Remaining: slot.Capacity - taken,
		})
	}

	return offerable
}
