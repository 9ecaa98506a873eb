package dto

import (
	"slices"
	"time"

	"github.com/NikQuila/website-gocar-sub000/internal/domains/availability/model"
)

type MonthResponse struct {
	LocationID    string          `json:"location_id"`
	Month         string          `json:"month"`
	Timezone      string          `json:"timezone"`
	Days          map[string]bool `json:"days"`
	AvailableDays []string        `json:"available_days"`
}

func (m *MonthResponse) FromModel(locationID, month, tz string, availability model.MonthAvailability) {
	m.LocationID = locationID
	m.Month = month
	m.Timezone = tz
	m.Days = availability
	m.AvailableDays = availability.Days()
	slices.Sort(m.AvailableDays)
}

type SlotResponse struct {
	Start     time.Time `json:"slot_start"`
	End       time.Time `json:"slot_end"`
	Capacity  int       `json:"capacity"`
	Booked    int       `json:"booked"`
	Remaining int       `json:"remaining"`
}

type SlotsResponse struct {
	LocationID string         `json:"location_id"`
	Date       string         `json:"date"`
	Timezone   string         `json:"timezone"`
	Slots      []SlotResponse `json:"slots"`
	Notice     string         `json:"notice,omitempty"`
}

func (s *SlotsResponse) FromModels(locationID, date, tz string, slots []model.OfferableSlot) {
	s.LocationID = locationID
	s.Date = date
	s.Timezone = tz
	s.Slots = make([]SlotResponse, 0, len(slots))

	for _, slot := range slots {
		s.Slots = append(s.Slots, SlotResponse{
			Start:     slot.Start,
			End:       slot.End,
			Capacity:  slot.Capacity,
			Booked:    slot.Booked,
			Remaining: slot.Remaining,
		})
	}
}
