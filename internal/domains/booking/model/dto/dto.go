package dto

import (
	"slices"
	"time"

	"github.com/NikQuila/website-gocar-sub000/internal/domains/booking/wizard"
	customerModel "github.com/NikQuila/website-gocar-sub000/internal/domains/customer/model"
	customerDto "github.com/NikQuila/website-gocar-sub000/internal/domains/customer/model/dto"
)

type StartRequest struct {
	ClientID  string  `json:"client_id"  validate:"required"`
	VehicleID *string `json:"vehicle_id" validate:"omitempty"`
	Timezone  string  `json:"timezone"   validate:"omitempty,max=64"`
}

type LocationRequest struct {
	LocationID string `json:"location_id" validate:"required"`
}

type MonthRequest struct {
	Month string `json:"month" validate:"required,datetime=2006-01"`
}

type DateRequest struct {
	Date string `json:"date" validate:"required,datetime=2006-01-02"`
}

type SlotRequest struct {
	SlotStart time.Time `json:"slot_start" validate:"required"`
}

// CustomerRequest carries the inline contact form. A customer already
// identified by a session token may omit it. The form may be partial; it is
// checked when the booking is confirmed.
type CustomerRequest struct {
	Form *customerDto.CustomerForm `json:"form,omitempty" validate:"-"`
}

// TokenCustomer is the customer named by a session token.
type TokenCustomer struct {
	ClientID string
	Ref      customerModel.Ref
}

type NoteRequest struct {
	Note string `json:"note"`
}

type SlotResponse struct {
	Start     time.Time `json:"slot_start"`
	End       time.Time `json:"slot_end"`
	Remaining int       `json:"remaining"`
}

type SessionResponse struct {
	ID            string                   `json:"id"`
	ClientID      string                   `json:"client_id"`
	VehicleID     *string                  `json:"vehicle_id,omitempty"`
	Step          int                      `json:"step"`
	StepName      string                   `json:"step_name"`
	BranchSkipped bool                     `json:"branch_skipped"`
	Locations     []string                 `json:"locations"`
	LocationID    string                   `json:"location_id,omitempty"`
	Month         string                   `json:"month"`
	AvailableDays []string                 `json:"available_days"`
	Date          string                   `json:"date,omitempty"`
	Slots         []SlotResponse           `json:"slots"`
	Slot          *SlotResponse            `json:"slot,omitempty"`
	CustomerID    string                   `json:"customer_id,omitempty"`
	Form          customerDto.CustomerForm `json:"form"`
	Note          string                   `json:"note,omitempty"`
	Notice        string                   `json:"notice,omitempty"`
	CanConfirm    bool                     `json:"can_confirm"`
	AppointmentID string                   `json:"appointment_id,omitempty"`
}

func (r *SessionResponse) FromState(state *wizard.State) {
	r.ID = state.ID
	r.ClientID = state.ClientID
	r.VehicleID = state.VehicleID
	r.Step = int(state.Step)
	r.StepName = state.Step.String()
	r.BranchSkipped = state.BranchSkipped
	r.Locations = state.Locations
	r.LocationID = state.LocationID
	r.Month = state.Month
	r.Date = state.Date
	r.Form = state.Form
	r.Note = state.Note
	r.Notice = state.Notice
	r.CanConfirm = state.CanConfirm() == nil
	r.AppointmentID = state.AppointmentID

	r.AvailableDays = state.Availability.Days()
	slices.Sort(r.AvailableDays)

	r.Slots = make([]SlotResponse, 0, len(state.Slots))
	for _, slot := range state.Slots {
		r.Slots = append(r.Slots, SlotResponse{Start: slot.Start, End: slot.End, Remaining: slot.Remaining})
	}

	if state.Slot != nil {
		r.Slot = &SlotResponse{Start: state.Slot.Start, End: state.Slot.End}
	}

	if state.Customer != nil {
		r.CustomerID = state.Customer.String()
	}
}
