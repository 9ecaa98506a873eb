package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Appointment=MockAppointmentService

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/NikQuila/website-gocar-sub000/config"
	"github.com/NikQuila/website-gocar-sub000/infras/otel"
	"github.com/NikQuila/website-gocar-sub000/infras/s3"
	"github.com/NikQuila/website-gocar-sub000/internal/domains/appointment/model"
	"github.com/NikQuila/website-gocar-sub000/internal/domains/appointment/model/dto"
	"github.com/NikQuila/website-gocar-sub000/internal/domains/appointment/repository"
	availabilityService "github.com/NikQuila/website-gocar-sub000/internal/domains/availability/service"
	customerService "github.com/NikQuila/website-gocar-sub000/internal/domains/customer/service"
	dealershipService "github.com/NikQuila/website-gocar-sub000/internal/domains/dealership/service"
	notificationService "github.com/NikQuila/website-gocar-sub000/internal/domains/notification/service"
	"github.com/NikQuila/website-gocar-sub000/shared"
	"github.com/NikQuila/website-gocar-sub000/shared/constant"
	"github.com/NikQuila/website-gocar-sub000/shared/failure"
	"github.com/NikQuila/website-gocar-sub000/shared/timezone"

	"github.com/rs/zerolog/log"
)

const inviteDirectory = "invites"

type Appointment interface {
	Create(ctx context.Context, params model.CreateParams) (string, error)
	Announce(ctx context.Context, appointmentID string, params model.CreateParams)
	ListUpcoming(ctx context.Context, clientID string, refs ...model.CustomerRef) (dto.AppointmentsResponse, error)
	Cancel(ctx context.Context, clientID string, customer model.CustomerRef, appointmentID, reason string) (dto.AppointmentsResponse, error)
}

type serviceImpl struct {
	repo         repository.Appointment
	availability availabilityService.Availability
	customers    customerService.Customer
	dealerships  dealershipService.Dealership
	notifier     notificationService.Notifier
	s3           s3.S3
	cfg          *config.Config
	otel         otel.Otel
}

func New(
	repo repository.Appointment,
	availability availabilityService.Availability,
	customers customerService.Customer,
	dealerships dealershipService.Dealership,
	notifier notificationService.Notifier,
	s3 s3.S3,
	cfg *config.Config,
	otel otel.Otel,
) Appointment {
	return &serviceImpl{
		repo:         repo,
		availability: availability,
		customers:    customers,
		dealerships:  dealerships,
		notifier:     notifier,
		s3:           s3,
		cfg:          cfg,
		otel:         otel,
	}
}

func (s *serviceImpl) textLimit(limit int) int {
	if limit <= 0 {
		return constant.DefaultTextMaxLength
	}

	return limit
}

// Create books the slot through the procedure variant of params.Customer.
// ErrSlotTaken and ErrIDMismatch are returned wrapped for the caller to act on.
func (s *serviceImpl) Create(ctx context.Context, params model.CreateParams) (id string, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".appointment.Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if params.Notes != nil {
		params.Notes = shared.OptionalText(shared.ClipText(*params.Notes, s.textLimit(s.cfg.Availability.NoteMaxLength)))
	}

	id, err = s.repo.Create(ctx, params)
	if err != nil {
		log.Error().Err(err).
			Str("dealership_id", params.DealershipID).
			Str("customer_kind", string(params.Customer.Kind())).
			Time("slot_start", params.SlotStart).
			Msg("failed to create appointment")

		return "", err //nolint:wrapcheck
	}

	loc := s.dealerships.Location(ctx, params.ClientID)
	s.availability.Invalidate(params.ClientID, params.DealershipID, params.SlotStart, loc.String())

	log.Info().Str("appointment_id", id).Str("dealership_id", params.DealershipID).Msg("appointment created")

	return id, nil
}

func (s *serviceImpl) resolveRefs(ctx context.Context, clientID string, refs []model.CustomerRef) []model.CustomerRef {
	all := make([]model.CustomerRef, 0, len(refs)+1)

	add := func(ref model.CustomerRef) {
		for _, known := range all {
			if known == ref {
				return
			}
		}

		all = append(all, ref)
	}

	for _, ref := range refs {
		known, err := s.customers.Refs(ctx, clientID, ref)
		if err != nil {
			add(ref)

			continue
		}

		for _, k := range known {
			add(k)
		}
	}

	return all
}

// upcoming tries each query profile in order, moving on only when the view
// lacks a column of the current one.
func (s *serviceImpl) upcoming(ctx context.Context, clientID string, refs []model.CustomerRef, loc *time.Location) ([]model.Appointment, error) {
	filter := model.ListFilter{
		ClientID:  clientID,
		Customers: refs,
		From:      timezone.StartOfDay(timezone.Now(), loc),
	}

	var lastErr error

	for _, profile := range model.ListProfiles {
		res, err := s.repo.List(ctx, filter, profile)
		if err == nil {
			return res, nil
		}

		if !errors.Is(err, model.ErrMissingColumn) {
			log.Error().Err(err).Str("profile", profile.Name).Msg("failed to list appointments")

			return nil, failure.InternalError(errors.New("failed to list appointments")) //nolint:wrapcheck
		}

		log.Warn().Err(err).Str("profile", profile.Name).Msg("listing profile unavailable, trying the next one")

		lastErr = err
	}

	log.Error().Err(lastErr).Msg("no listing profile matches the appointments view")

	return nil, failure.InternalError(errors.New("failed to list appointments")) //nolint:wrapcheck
}

func (s *serviceImpl) ListUpcoming(ctx context.Context, clientID string, refs ...model.CustomerRef) (res dto.AppointmentsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".appointment.ListUpcoming")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	loc := s.dealerships.Location(ctx, clientID)

	models, err := s.upcoming(ctx, clientID, s.resolveRefs(ctx, clientID, refs), loc)
	if err != nil {
		return res, err
	}

	res.FromModels(models, timezone.Now(), loc)

	return res, nil
}

// Cancel cancels one of the customer's own upcoming appointments, then
// notifies and returns the refreshed list. Notification outcomes never
// affect the result.
func (s *serviceImpl) Cancel(ctx context.Context, clientID string, customer model.CustomerRef, appointmentID, reason string) (res dto.AppointmentsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".appointment.Cancel")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	loc := s.dealerships.Location(ctx, clientID)
	refs := s.resolveRefs(ctx, clientID, []model.CustomerRef{customer})

	list, err := s.upcoming(ctx, clientID, refs, loc)
	if err != nil {
		return res, err
	}

	var (
		appt  model.Appointment
		found bool
	)

	for _, candidate := range list {
		if candidate.ID == appointmentID {
			appt, found = candidate, true

			break
		}
	}

	if !found {
		return res, failure.NotFound("appointment not found") //nolint:wrapcheck
	}

	if !appt.CanCancel(timezone.Now(), loc) {
		return res, failure.ErrNotCancellable
	}

	reason = shared.ClipText(reason, s.textLimit(s.cfg.Availability.CancelReasonMax))

	if err = s.repo.Cancel(ctx, appt.ID, reason); err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return res, failure.NotFound("appointment not found") //nolint:wrapcheck
		}

		log.Error().Err(err).Str("appointment_id", appt.ID).Msg("failed to cancel appointment")

		return res, failure.InternalError(errors.New("failed to cancel appointment")) //nolint:wrapcheck
	}

	log.Info().Str("appointment_id", appt.ID).Msg("appointment canceled")

	s.availability.Invalidate(clientID, appt.DealershipID, appt.SlotStart, loc.String())

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.s3.Delete(c, s.cfg.Availability.InviteBucketName, inviteKey(appt.ID)); err != nil {
			log.Warn().Err(err).Str("appointment_id", appt.ID).Msg("failed to delete calendar invite")
		}
	}()

	s.notifyCancellation(ctx, clientID, appt, reason, loc)

	list, err = s.upcoming(ctx, clientID, refs, loc)
	if err != nil {
		return res, fmt.Errorf("appointment canceled but the list could not be refreshed: %w", err)
	}

	res.FromModels(list, timezone.Now(), loc)

	return res, nil
}
