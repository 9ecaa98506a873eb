// Package wizard holds the booking flow as a plain state machine. It does
// no I/O: callers fetch availability for the Ticket a transition hands out
// and feed the result back, which is dropped when the selection moved on.
package wizard

import (
	"errors"
	"slices"
	"time"

	availabilityModel "github.com/NikQuila/website-gocar-sub000/internal/domains/availability/model"
	customerModel "github.com/NikQuila/website-gocar-sub000/internal/domains/customer/model"
	customerDto "github.com/NikQuila/website-gocar-sub000/internal/domains/customer/model/dto"
	"github.com/NikQuila/website-gocar-sub000/shared"
	"github.com/NikQuila/website-gocar-sub000/shared/constant"
)

var (
	ErrGuard           = errors.New("step requirements are not met")
	ErrStaleResult     = errors.New("result belongs to an outdated selection")
	ErrUnknownLocation = errors.New("location does not belong to the tenant")
	ErrInvalidDate     = errors.New("date is not a valid YYYY-MM-DD day")
	ErrInvalidMonth    = errors.New("month is not a valid YYYY-MM month")
	ErrDateUnavailable = errors.New("date has no available slots")
	ErrSlotNotOffered  = errors.New("slot is not offered for the selected date")
	ErrNoCustomer      = errors.New("an existing customer or a valid customer form is required")
	ErrFinished        = errors.New("booking is already confirmed")
	ErrForeignCustomer = errors.New("customer belongs to another tenant")
)

type Step int

const (
	StepBranchSelect Step = iota + 1
	StepDateSelect
	StepTimeSelect
	StepCustomerDetails
	StepConfirmed
)

func (s Step) String() string {
	switch s {
	case StepBranchSelect:
		return "branch_select"
	case StepDateSelect:
		return "date_select"
	case StepTimeSelect:
		return "time_select"
	case StepCustomerDetails:
		return "customer_details"
	case StepConfirmed:
		return "confirmed"
	default:
		return "unknown"
	}
}

// SelectedSlot is the window the customer picked.
type SelectedSlot struct {
	Start time.Time `json:"slot_start"`
	End   time.Time `json:"slot_end"`
}

// State is one booking session. Every change to the location, month, date
// or slot bumps Generation.
type State struct {
	ID            string                              `json:"id"`
	ClientID      string                              `json:"client_id"`
	VehicleID     *string                             `json:"vehicle_id,omitempty"`
	Timezone      string                              `json:"timezone"`
	Step          Step                                `json:"step"`
	BranchSkipped bool                                `json:"branch_skipped"`
	Locations     []string                            `json:"locations"`
	LocationID    string                              `json:"location_id,omitempty"`
	Month         string                              `json:"month"`
	Availability  availabilityModel.MonthAvailability `json:"availability"`
	Date          string                              `json:"date,omitempty"`
	Slots         []availabilityModel.OfferableSlot   `json:"slots"`
	Slot          *SelectedSlot                       `json:"slot,omitempty"`
	Customer      *customerModel.Ref                  `json:"customer,omitempty"`
	Form          customerDto.CustomerForm            `json:"form"`
	Note          string                              `json:"note,omitempty"`
	Notice        string                              `json:"notice,omitempty"`
	AppointmentID string                              `json:"appointment_id,omitempty"`
	Generation    uint64                              `json:"generation"`
}

// Ticket identifies the selection a fetch was started for.
type Ticket struct {
	Generation uint64
	LocationID string
	Month      string
	Date       string
}

// Start opens a session. A vehicle listed at one of the tenant's
// locations, or a tenant with a single location, skips branch selection.
func Start(id, clientID string, locations []string, vehicleLocation string, today time.Time) *State {
	state := &State{
		ID:        id,
		ClientID:  clientID,
		Step:      StepBranchSelect,
		Locations: locations,
		Month:     today.Format(constant.MonthFormat),
		Form:      customerDto.CustomerForm{ClientID: clientID},
	}

	switch {
	case vehicleLocation != "" && slices.Contains(locations, vehicleLocation):
		state.LocationID = vehicleLocation
	case len(locations) == 1:
		state.LocationID = locations[0]
	}

	if state.LocationID != "" {
		state.Step = StepDateSelect
		state.BranchSkipped = true
	}

	return state
}

func (s *State) bump() {
	s.Generation++
	s.Notice = ""
}

func (s *State) clearDate() {
	s.Date = ""
	s.clearSlot()
}

func (s *State) clearSlot() {
	s.Slot = nil
	s.Slots = nil
}

func (s *State) Ticket() Ticket {
	return Ticket{
		Generation: s.Generation,
		LocationID: s.LocationID,
		Month:      s.Month,
		Date:       s.Date,
	}
}

func (s *State) current(t Ticket) bool {
	return t == s.Ticket()
}

func (s *State) editable() error {
	if s.Step == StepConfirmed {
		return ErrFinished
	}

	return nil
}

// SelectLocation picks the branch. A different branch drops the chosen
// date and slot.
func (s *State) SelectLocation(locationID string) error {
	if s.Step != StepBranchSelect {
		return ErrGuard
	}

	if !slices.Contains(s.Locations, locationID) {
		return ErrUnknownLocation
	}

	if locationID == s.LocationID {
		return nil
	}

	s.LocationID = locationID
	s.Availability = nil
	s.clearDate()
	s.bump()

	return nil
}

// SetMonth switches the displayed month, dropping the date and slot of the
// previous one. The caller reloads month availability with the new ticket.
func (s *State) SetMonth(month string) (Ticket, error) {
	if s.Step != StepDateSelect {
		return Ticket{}, ErrGuard
	}

	if _, err := time.Parse(constant.MonthFormat, month); err != nil {
		return Ticket{}, ErrInvalidMonth
	}

	s.Month = month
	s.Availability = nil
	s.clearDate()
	s.bump()

	return s.Ticket(), nil
}

// ApplyAvailability stores month flags fetched for t.
func (s *State) ApplyAvailability(t Ticket, availability availabilityModel.MonthAvailability) error {
	if !s.current(t) {
		return ErrStaleResult
	}

	s.Availability = availability

	return nil
}

// SelectDate picks a day. When month flags are loaded the day must be open.
func (s *State) SelectDate(date string) error {
	if s.Step != StepDateSelect {
		return ErrGuard
	}

	day, err := time.Parse(constant.DateOnlyFormat, date)
	if err != nil {
		return ErrInvalidDate
	}

	if s.Availability != nil && !s.Availability[date] {
		return ErrDateUnavailable
	}

	if date == s.Date {
		return nil
	}

	s.Month = day.Format(constant.MonthFormat)
	s.Date = date
	s.clearSlot()
	s.bump()

	return nil
}

// Next advances one step when the current step's selection is made. The
// returned ticket is set when the new step needs the day's slots.
func (s *State) Next() (ticket *Ticket, err error) {
	switch s.Step {
	case StepBranchSelect:
		if s.LocationID == "" {
			return nil, ErrGuard
		}

		s.Step = StepDateSelect
	case StepDateSelect:
		if s.Date == "" {
			return nil, ErrGuard
		}

		s.Step = StepTimeSelect
		s.Slots = nil
		s.bump()

		t := s.Ticket()

		return &t, nil
	case StepTimeSelect:
		if s.Slot == nil {
			return nil, ErrGuard
		}

		s.Step = StepCustomerDetails
	default:
		return nil, ErrGuard
	}

	return nil, nil
}

// Back returns to the previous step, never into a skipped branch selection.
// Selections are kept.
func (s *State) Back() error {
	switch s.Step {
	case StepDateSelect:
		if s.BranchSkipped {
			return ErrGuard
		}

		s.Step = StepBranchSelect
	case StepTimeSelect:
		s.Step = StepDateSelect
	case StepCustomerDetails:
		s.Step = StepTimeSelect
	default:
		return ErrGuard
	}

	return nil
}

// ApplySlots stores the offerable slots fetched for t.
func (s *State) ApplySlots(t Ticket, slots []availabilityModel.OfferableSlot) error {
	if !s.current(t) {
		return ErrStaleResult
	}

	if slots == nil {
		slots = []availabilityModel.OfferableSlot{}
	}

	s.Slots = slots

	if s.Slot != nil && !slices.ContainsFunc(slots, func(slot availabilityModel.OfferableSlot) bool {
		return slot.Start.Equal(s.Slot.Start)
	}) {
		s.Slot = nil
	}

	return nil
}

// ApplySlotsUnavailable records a failed slot fetch for t as a day with
// nothing to offer.
func (s *State) ApplySlotsUnavailable(t Ticket, notice string) error {
	if err := s.ApplySlots(t, nil); err != nil {
		return err
	}

	s.Notice = notice

	return nil
}

// SelectSlot picks one of the loaded offerable slots by its start.
func (s *State) SelectSlot(start time.Time) error {
	if s.Step != StepTimeSelect {
		return ErrGuard
	}

	for _, slot := range s.Slots {
		if slot.Start.Equal(start) {
			if s.Slot != nil && s.Slot.Start.Equal(start) {
				return nil
			}

			s.Slot = &SelectedSlot{Start: slot.Start, End: slot.End}
			s.bump()

			return nil
		}
	}

	return ErrSlotNotOffered
}

// SetCustomer attaches an already known customer of the session tenant.
func (s *State) SetCustomer(clientID string, ref customerModel.Ref) error {
	if err := s.editable(); err != nil {
		return err
	}

	if clientID != s.ClientID {
		return ErrForeignCustomer
	}

	s.Customer = &ref

	return nil
}

// SetCustomerForm stores the inline contact form. It is validated on confirm.
func (s *State) SetCustomerForm(form customerDto.CustomerForm) error {
	if err := s.editable(); err != nil {
		return err
	}

	form.ClientID = s.ClientID
	s.Form = form.Normalize()

	return nil
}

func (s *State) SetNote(note string, limit int) error {
	if err := s.editable(); err != nil {
		return err
	}

	s.Note = shared.ClipText(note, limit)

	return nil
}

// CanConfirm checks the confirm gate: slot, location, tenant and either
// an existing customer or a valid form.
func (s *State) CanConfirm() error {
	if s.Step != StepCustomerDetails || s.Slot == nil || s.LocationID == "" || s.ClientID == "" {
		return ErrGuard
	}

	if s.Customer != nil && !s.Customer.IsZero() {
		return nil
	}

	if err := s.Form.Validate(); err != nil {
		return errors.Join(ErrNoCustomer, err)
	}

	return nil
}

func (s *State) MarkConfirmed(appointmentID string) {
	s.AppointmentID = appointmentID
	s.Step = StepConfirmed
}

// SlotTaken sends the customer back to pick another time after the backend
// rejected the slot. The caller refetches the day with the returned ticket.
func (s *State) SlotTaken(notice string) Ticket {
	s.Step = StepTimeSelect
	s.clearSlot()
	s.bump()
	s.Notice = notice

	return s.Ticket()
}

// Day parses the selected date in loc.
func (s *State) Day(loc *time.Location) (time.Time, error) {
	day, err := time.ParseInLocation(constant.DateOnlyFormat, s.Date, loc)
	if err != nil {
		return day, ErrInvalidDate
	}

	return day, nil
}

// MonthStart parses the displayed month in loc.
func (s *State) MonthStart(loc *time.Location) (time.Time, error) {
	month, err := time.ParseInLocation(constant.MonthFormat, s.Month, loc)
	if err != nil {
		return month, ErrInvalidMonth
	}

	return month, nil
}
