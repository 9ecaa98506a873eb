package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Booking=MockBookingService

import (
	"context"
	"errors"

	"github.com/NikQuila/website-gocar-sub000/config"
	"github.com/NikQuila/website-gocar-sub000/infras/otel"
	appointmentModel "github.com/NikQuila/website-gocar-sub000/internal/domains/appointment/model"
	appointmentService "github.com/NikQuila/website-gocar-sub000/internal/domains/appointment/service"
	availabilityService "github.com/NikQuila/website-gocar-sub000/internal/domains/availability/service"
	"github.com/NikQuila/website-gocar-sub000/internal/domains/booking/model/dto"
	"github.com/NikQuila/website-gocar-sub000/internal/domains/booking/repository"
	"github.com/NikQuila/website-gocar-sub000/internal/domains/booking/wizard"
	customerModel "github.com/NikQuila/website-gocar-sub000/internal/domains/customer/model"
	customerService "github.com/NikQuila/website-gocar-sub000/internal/domains/customer/service"
	dealershipService "github.com/NikQuila/website-gocar-sub000/internal/domains/dealership/service"
	"github.com/NikQuila/website-gocar-sub000/shared"
	"github.com/NikQuila/website-gocar-sub000/shared/constant"
	"github.com/NikQuila/website-gocar-sub000/shared/failure"
	"github.com/NikQuila/website-gocar-sub000/shared/timezone"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const (
	slotTakenNotice   = "That time was just booked by someone else. Please pick another one."
	noSlotsNotice     = "We could not load the times for this day. Please try again or pick another date."
	sessionBusyReason = "booking session is being updated, please retry"
)

type Booking interface {
	Start(ctx context.Context, req dto.StartRequest) (dto.SessionResponse, error)
	Get(ctx context.Context, id string) (dto.SessionResponse, error)
	SelectLocation(ctx context.Context, id string, req dto.LocationRequest) (dto.SessionResponse, error)
	SetMonth(ctx context.Context, id string, req dto.MonthRequest) (dto.SessionResponse, error)
	SelectDate(ctx context.Context, id string, req dto.DateRequest) (dto.SessionResponse, error)
	SelectSlot(ctx context.Context, id string, req dto.SlotRequest) (dto.SessionResponse, error)
	SetCustomer(ctx context.Context, id string, customer *dto.TokenCustomer, req dto.CustomerRequest) (dto.SessionResponse, error)
	SetNote(ctx context.Context, id string, req dto.NoteRequest) (dto.SessionResponse, error)
	Next(ctx context.Context, id string) (dto.SessionResponse, error)
	Back(ctx context.Context, id string) (dto.SessionResponse, error)
	Confirm(ctx context.Context, id string) (dto.SessionResponse, error)
	Abandon(ctx context.Context, id string) error
}

type serviceImpl struct {
	sessions     repository.Session
	availability availabilityService.Availability
	appointments appointmentService.Appointment
	customers    customerService.Customer
	dealerships  dealershipService.Dealership
	cfg          *config.Config
	otel         otel.Otel
}

func New(
	sessions repository.Session,
	availability availabilityService.Availability,
	appointments appointmentService.Appointment,
	customers customerService.Customer,
	dealerships dealershipService.Dealership,
	cfg *config.Config,
	otel otel.Otel,
) Booking {
	return &serviceImpl{
		sessions:     sessions,
		availability: availability,
		appointments: appointments,
		customers:    customers,
		dealerships:  dealerships,
		cfg:          cfg,
		otel:         otel,
	}
}

// toFailure maps wizard sentinels onto API failures.
func toFailure(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, wizard.ErrGuard):
		return failure.ErrStepGuard
	case errors.Is(err, wizard.ErrFinished):
		return failure.Conflict(err.Error())
	case errors.Is(err, wizard.ErrForeignCustomer):
		return failure.Forbidden("customer session belongs to another dealership")
	default:
		return failure.BadRequest(err)
	}
}

func respond(state *wizard.State) dto.SessionResponse {
	var res dto.SessionResponse
	res.FromState(state)

	return res
}

func (s *serviceImpl) load(ctx context.Context, id string) (*wizard.State, error) {
	state, err := s.sessions.Get(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, failure.ErrSessionNotFound
	}

	if err != nil {
		return nil, failure.InternalError(errors.New("failed to load booking session")) //nolint:wrapcheck
	}

	return state, nil
}

func (s *serviceImpl) save(ctx context.Context, state *wizard.State) error {
	if err := s.sessions.Save(ctx, state); err != nil {
		log.Error().Err(err).Str("session_id", state.ID).Msg("failed to save booking session")

		return failure.InternalError(errors.New("failed to save booking session")) //nolint:wrapcheck
	}

	return nil
}

// lock holds the session against concurrent changes until unlock is called.
func (s *serviceImpl) lock(ctx context.Context, id string) (unlock func(), err error) {
	unlock, err = s.sessions.Lock(ctx, id)
	if errors.Is(err, repository.ErrBusy) {
		return nil, failure.Conflict(sessionBusyReason)
	}

	if err != nil {
		log.Error().Err(err).Str("session_id", id).Msg("failed to lock booking session")

		return nil, failure.InternalError(errors.New("failed to lock booking session")) //nolint:wrapcheck
	}

	return unlock, nil
}

// update runs change on the stored session under the session lock,
// persists it and then loads whatever the new step needs.
func (s *serviceImpl) update(ctx context.Context, id string, change func(state *wizard.State) error) (dto.SessionResponse, error) {
	unlock, err := s.lock(ctx, id)
	if err != nil {
		return dto.SessionResponse{}, err
	}

	state, err := s.change(ctx, id, change)
	unlock()

	if err != nil {
		return dto.SessionResponse{}, err
	}

	return respond(s.sync(ctx, state)), nil
}

func (s *serviceImpl) change(ctx context.Context, id string, change func(state *wizard.State) error) (*wizard.State, error) {
	state, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}

	if err = change(state); err != nil {
		return nil, toFailure(err)
	}

	if err = s.save(ctx, state); err != nil {
		return nil, err
	}

	return state, nil
}

// sync fetches month flags on the date step and day slots on the time step
// when the snapshot lacks them. Results are applied to a freshly loaded
// snapshot and dropped when the selection changed meanwhile.
func (s *serviceImpl) sync(ctx context.Context, state *wizard.State) *wizard.State {
	switch {
	case state.Step == wizard.StepDateSelect && state.LocationID != "" && state.Availability == nil:
		return s.fetchMonth(ctx, state)
	case state.Step == wizard.StepTimeSelect && state.Date != "" && state.Slots == nil:
		return s.fetchSlots(ctx, state)
	}

	return state
}

func (s *serviceImpl) fetchMonth(ctx context.Context, state *wizard.State) *wizard.State {
	ticket := state.Ticket()
	loc := timezone.Resolve(state.Timezone)

	month, err := state.MonthStart(loc)
	if err != nil {
		return state
	}

	availability, err := s.availability.MonthAvailability(ctx, state.ClientID, ticket.LocationID, month, loc.String())
	if err != nil {
		log.Warn().Err(err).Str("session_id", state.ID).Str("month", ticket.Month).Msg("failed to load month availability")

		return state
	}

	return s.apply(ctx, state, func(fresh *wizard.State) error {
		return fresh.ApplyAvailability(ticket, availability)
	})
}

func (s *serviceImpl) fetchSlots(ctx context.Context, state *wizard.State) *wizard.State {
	ticket := state.Ticket()
	loc := timezone.Resolve(state.Timezone)

	day, err := state.Day(loc)
	if err != nil {
		return state
	}

	slots, err := s.availability.DaySlots(ctx, state.ClientID, ticket.LocationID, day, loc.String())
	if err != nil {
		log.Warn().Err(err).Str("session_id", state.ID).Str("date", ticket.Date).Msg("failed to load day slots, offering none")

		return s.apply(ctx, state, func(fresh *wizard.State) error {
			return fresh.ApplySlotsUnavailable(ticket, noSlotsNotice)
		})
	}

	return s.apply(ctx, state, func(fresh *wizard.State) error {
		return fresh.ApplySlots(ticket, slots)
	})
}

// apply stores a fetch result on the latest snapshot. A session busy with
// another change keeps its snapshot and the result is only returned.
func (s *serviceImpl) apply(ctx context.Context, state *wizard.State, result func(fresh *wizard.State) error) *wizard.State {
	unlock, err := s.sessions.Lock(ctx, state.ID)
	if err != nil {
		log.Warn().Err(err).Str("session_id", state.ID).Msg("fetch result not stored, session is busy")

		// Shown once; the next read fetches again.
		_ = result(state)

		return state
	}
	defer unlock()

	fresh, err := s.sessions.Get(ctx, state.ID)
	if err != nil {
		log.Warn().Err(err).Str("session_id", state.ID).Msg("failed to reload booking session")

		return state
	}

	if err = result(fresh); err != nil {
		log.Debug().Err(err).Str("session_id", state.ID).Msg("discarding fetch result")

		return fresh
	}

	if err = s.sessions.Save(ctx, fresh); err != nil {
		log.Warn().Err(err).Str("session_id", state.ID).Msg("failed to save fetch result")
	}

	return fresh
}

// Start opens a session for the tenant, skipping branch selection when the
// vehicle's location or a single location decides it.
func (s *serviceImpl) Start(ctx context.Context, req dto.StartRequest) (res dto.SessionResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.Start")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	dealerships, err := s.dealerships.ListByTenant(ctx, req.ClientID)
	if err != nil {
		return res, err //nolint:wrapcheck
	}

	if len(dealerships.Dealerships) == 0 {
		return res, failure.NotFound("tenant has no dealerships") //nolint:wrapcheck
	}

	vehicleLocation := ""

	if req.VehicleID != nil && *req.VehicleID != "" {
		vehicle, vehicleErr := s.dealerships.Vehicle(ctx, *req.VehicleID)
		switch {
		case vehicleErr != nil:
			log.Warn().Err(vehicleErr).Str("vehicle_id", *req.VehicleID).Msg("vehicle lookup failed, asking for branch")
		case vehicle.ClientID == req.ClientID && vehicle.DealershipID != nil:
			vehicleLocation = *vehicle.DealershipID
		}
	}

	loc := s.dealerships.Location(ctx, req.ClientID)
	if req.Timezone != "" {
		loc = timezone.Resolve(req.Timezone)
	}

	state := wizard.Start(uuid.NewString(), req.ClientID, dealerships.IDs(), vehicleLocation, timezone.Now().In(loc))
	state.VehicleID = req.VehicleID
	state.Timezone = loc.String()

	if err = s.save(ctx, state); err != nil {
		return res, err
	}

	log.Info().Str("session_id", state.ID).Str("client_id", state.ClientID).Str("step", state.Step.String()).Msg("booking session started")

	return respond(s.sync(ctx, state)), nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.SessionResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	state, err := s.load(ctx, id)
	if err != nil {
		return res, err
	}

	return respond(s.sync(ctx, state)), nil
}

func (s *serviceImpl) SelectLocation(ctx context.Context, id string, req dto.LocationRequest) (dto.SessionResponse, error) {
	return s.update(ctx, id, func(state *wizard.State) error {
		return state.SelectLocation(req.LocationID)
	})
}

func (s *serviceImpl) SetMonth(ctx context.Context, id string, req dto.MonthRequest) (dto.SessionResponse, error) {
	return s.update(ctx, id, func(state *wizard.State) error {
		_, err := state.SetMonth(req.Month)

		return err
	})
}

func (s *serviceImpl) SelectDate(ctx context.Context, id string, req dto.DateRequest) (dto.SessionResponse, error) {
	return s.update(ctx, id, func(state *wizard.State) error {
		return state.SelectDate(req.Date)
	})
}

func (s *serviceImpl) SelectSlot(ctx context.Context, id string, req dto.SlotRequest) (dto.SessionResponse, error) {
	return s.update(ctx, id, func(state *wizard.State) error {
		return state.SelectSlot(req.SlotStart)
	})
}

// SetCustomer attaches the token's customer when ref is set and stores the
// inline form when the request carries one.
func (s *serviceImpl) SetCustomer(ctx context.Context, id string, customer *dto.TokenCustomer, req dto.CustomerRequest) (dto.SessionResponse, error) {
	return s.update(ctx, id, func(state *wizard.State) error {
		if customer != nil && !customer.Ref.IsZero() {
			if err := state.SetCustomer(customer.ClientID, customer.Ref); err != nil {
				return err
			}
		}

		if req.Form != nil {
			return state.SetCustomerForm(*req.Form)
		}

		return nil
	})
}

func (s *serviceImpl) SetNote(ctx context.Context, id string, req dto.NoteRequest) (dto.SessionResponse, error) {
	limit := s.cfg.Availability.NoteMaxLength
	if limit <= 0 {
		limit = constant.DefaultTextMaxLength
	}

	return s.update(ctx, id, func(state *wizard.State) error {
		return state.SetNote(req.Note, limit)
	})
}

func (s *serviceImpl) Next(ctx context.Context, id string) (dto.SessionResponse, error) {
	return s.update(ctx, id, func(state *wizard.State) error {
		_, err := state.Next()

		return err
	})
}

func (s *serviceImpl) Back(ctx context.Context, id string) (dto.SessionResponse, error) {
	return s.update(ctx, id, func(state *wizard.State) error {
		return state.Back()
	})
}

// customer resolves the session's customer, registering the inline form
// when no existing customer was attached.
func (s *serviceImpl) customer(ctx context.Context, state *wizard.State) (customerModel.Customer, error) {
	if state.Customer != nil && !state.Customer.IsZero() {
		return s.customers.Find(ctx, state.ClientID, *state.Customer) //nolint:wrapcheck
	}

	return s.customers.Ensure(ctx, state.Form) //nolint:wrapcheck
}

// create books through the customer's id variant and retries once with
// the alternate representation when the backend rejects the variant.
func (s *serviceImpl) create(ctx context.Context, customer customerModel.Customer, params appointmentModel.CreateParams) (string, error) {
	id, err := s.appointments.Create(ctx, params)
	if !errors.Is(err, appointmentModel.ErrIDMismatch) {
		return id, err //nolint:wrapcheck
	}

	alternate, altErr := s.customers.Alternate(ctx, customer)
	if altErr != nil {
		log.Warn().Err(altErr).Str("customer_id", customer.Ref.String()).Msg("no alternate customer id to retry with")

		return "", err
	}

	log.Info().
		Str("customer_id", customer.Ref.String()).
		Str("alternate_kind", string(alternate.Kind())).
		Msg("retrying appointment with alternate customer id")

	params.Customer = alternate

	return s.appointments.Create(ctx, params) //nolint:wrapcheck
}

// Confirm books the selected slot once per session. The session lock keeps
// concurrent confirms apart and the session id doubles as the backend's
// idempotency key, so a retry after a lost save gets the same appointment.
// A slot taken meanwhile sends the session back to the time step with fresh
// slots and reports ErrSlotUnavailable.
func (s *serviceImpl) Confirm(ctx context.Context, id string) (res dto.SessionResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.Confirm")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	unlock, err := s.lock(ctx, id)
	if err != nil {
		return res, err
	}

	state, booked, err := s.confirm(ctx, id)
	unlock()

	switch {
	case errors.Is(err, failure.ErrSlotUnavailable):
		s.sync(ctx, state)

		return res, err
	case err != nil:
		return res, err
	}

	if booked != nil {
		s.appointments.Announce(ctx, state.AppointmentID, *booked)
	}

	return respond(state), nil
}

// confirm runs under the session lock. booked is nil when the session was
// already confirmed by an earlier call.
func (s *serviceImpl) confirm(ctx context.Context, id string) (state *wizard.State, booked *appointmentModel.CreateParams, err error) {
	state, err = s.load(ctx, id)
	if err != nil {
		return nil, nil, err
	}

	if state.Step == wizard.StepConfirmed {
		return state, nil, nil
	}

	if err = state.CanConfirm(); err != nil {
		return nil, nil, toFailure(err)
	}

	customer, err := s.customer(ctx, state)
	if err != nil {
		return nil, nil, err
	}

	params := appointmentModel.CreateParams{
		ClientID:     state.ClientID,
		DealershipID: state.LocationID,
		VehicleID:    state.VehicleID,
		Customer:     customer.Ref,
		SlotStart:    state.Slot.Start,
		SlotEnd:      state.Slot.End,
		Channel:      s.cfg.Availability.BookingChannel,
		Notes:        shared.OptionalText(state.Note),
		Contact: appointmentModel.ContactSnapshot{
			Name:  customer.FullName(),
			Email: customer.Email,
			Phone: customer.Phone,
		},
		BookingRef: state.ID,
	}

	appointmentID, err := s.create(ctx, customer, params)

	switch {
	case errors.Is(err, appointmentModel.ErrSlotTaken):
		state.SlotTaken(slotTakenNotice)

		if saveErr := s.save(ctx, state); saveErr != nil {
			return nil, nil, saveErr
		}

		return state, nil, failure.ErrSlotUnavailable
	case err != nil:
		return nil, nil, failure.InternalError(errors.New("failed to create appointment")) //nolint:wrapcheck
	}

	state.Customer = &customer.Ref
	state.MarkConfirmed(appointmentID)

	if err = s.save(ctx, state); err != nil {
		log.Error().Err(err).Str("appointment_id", appointmentID).Msg("appointment created but session not updated")
	}

	return state, &params, nil
}

// Abandon drops a session the customer walked away from.
func (s *serviceImpl) Abandon(ctx context.Context, id string) error {
	unlock, err := s.lock(ctx, id)
	if err != nil {
		return err
	}
	defer unlock()

	if _, err = s.load(ctx, id); err != nil {
		return err
	}

	if err = s.sessions.Delete(ctx, id); err != nil {
		log.Error().Err(err).Str("session_id", id).Msg("failed to delete booking session")

		return failure.InternalError(errors.New("failed to delete booking session")) //nolint:wrapcheck
	}

	return nil
}
