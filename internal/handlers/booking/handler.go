package booking

import (
	"context"
	"net/http"

	"github.com/NikQuila/website-gocar-sub000/infras/otel"
	"github.com/NikQuila/website-gocar-sub000/internal/domains/booking/model/dto"
	"github.com/NikQuila/website-gocar-sub000/internal/domains/booking/service"
	"github.com/NikQuila/website-gocar-sub000/shared/constant"
	"github.com/NikQuila/website-gocar-sub000/shared/validator"
	"github.com/NikQuila/website-gocar-sub000/transport/http/middleware"
	"github.com/NikQuila/website-gocar-sub000/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Booking
	auth    middleware.Auth
	otel    otel.Otel
}

func New(service service.Booking, auth middleware.Auth, otel otel.Otel) Handler {
	return Handler{
		service: service,
		auth:    auth,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/booking/sessions", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.Start)

		routerGroup.Route("/{id}", func(session chi.Router) {
			session.Get("/", handler.Get)
			session.Delete("/", handler.Abandon)
			session.Post("/location", handler.SelectLocation)
			session.Post("/month", handler.SetMonth)
			session.Post("/date", handler.SelectDate)
			session.Post("/slot", handler.SelectSlot)
			session.With(handler.auth.OptionalCustomer).Post("/customer", handler.SetCustomer)
			session.Post("/note", handler.SetNote)
			session.Post("/next", handler.Next)
			session.Post("/back", handler.Back)
			session.Post("/confirm", handler.Confirm)
		})
	})
}

// respond runs a session operation and writes the resulting session.
func (handler *Handler) respond(
	w http.ResponseWriter,
	r *http.Request,
	name string,
	operation func(ctx context.Context, id string) (dto.SessionResponse, error),
) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+"."+name)
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	res, err := operation(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("session_id", id).Str("operation", name).Msg("booking session operation failed")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// decode validates the request body before handing it to a session operation.
func decode[T any](
	r *http.Request,
	operation func(ctx context.Context, id string, req T) (dto.SessionResponse, error),
) func(ctx context.Context, id string) (dto.SessionResponse, error) {
	return func(ctx context.Context, id string) (dto.SessionResponse, error) {
		var req T

		if err := validator.Validate(r.Body, &req); err != nil {
			return dto.SessionResponse{}, err //nolint:wrapcheck
		}

		return operation(ctx, id, req)
	}
}

// Start opens a booking session for a tenant.
// @Summary Start booking session
// @Description Opens a wizard session. A single-location tenant, or a vehicle tied to a location, skips the branch step.
// @Tags Booking
// @Accept json
// @Produce json
// @Param request body dto.StartRequest true "Tenant and optional vehicle"
// @Success 201 {object} response.Data[dto.SessionResponse]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/booking/sessions [post]
func (handler *Handler) Start(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".StartBooking")
	defer scope.End()

	req := dto.StartRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.Start(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("client_id", req.ClientID).Msg("failed to start booking session")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("booking session started " + res.ID)

	response.WithJSON(w, http.StatusCreated, res)
}

// Get returns the current state of a session.
// @Summary Get booking session
// @Tags Booking
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} response.Data[dto.SessionResponse]
// @Failure 404 {object} response.Error
// @Router /v1/booking/sessions/{id} [get]
func (handler *Handler) Get(w http.ResponseWriter, r *http.Request) {
	handler.respond(w, r, "GetBooking", handler.service.Get)
}

// Abandon drops a session.
// @Summary Abandon booking session
// @Tags Booking
// @Param id path string true "Session ID"
// @Success 204
// @Failure 404 {object} response.Error
// @Router /v1/booking/sessions/{id} [delete]
func (handler *Handler) Abandon(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".AbandonBooking")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Abandon(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("session_id", id).Msg("failed to abandon booking session")

		response.WithError(w, err)

		return
	}

	response.WithNoContent(w)
}

// SelectLocation picks the dealership on the branch step.
// @Summary Select location
// @Tags Booking
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param request body dto.LocationRequest true "Location"
// @Success 200 {object} response.Data[dto.SessionResponse]
// @Failure 400 {object} response.Error
// @Failure 409 {object} response.Error
// @Router /v1/booking/sessions/{id}/location [post]
func (handler *Handler) SelectLocation(w http.ResponseWriter, r *http.Request) {
	handler.respond(w, r, "SelectLocation", decode(r, handler.service.SelectLocation))
}

// SetMonth navigates the calendar and reloads its availability.
// @Summary Change month
// @Tags Booking
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param request body dto.MonthRequest true "Month"
// @Success 200 {object} response.Data[dto.SessionResponse]
// @Failure 400 {object} response.Error
// @Failure 409 {object} response.Error
// @Router /v1/booking/sessions/{id}/month [post]
func (handler *Handler) SetMonth(w http.ResponseWriter, r *http.Request) {
	handler.respond(w, r, "SetMonth", decode(r, handler.service.SetMonth))
}

// SelectDate picks a day with offerable slots.
// @Summary Select date
// @Tags Booking
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param request body dto.DateRequest true "Date"
// @Success 200 {object} response.Data[dto.SessionResponse]
// @Failure 400 {object} response.Error
// @Failure 409 {object} response.Error
// @Router /v1/booking/sessions/{id}/date [post]
func (handler *Handler) SelectDate(w http.ResponseWriter, r *http.Request) {
	handler.respond(w, r, "SelectDate", decode(r, handler.service.SelectDate))
}

// SelectSlot picks one of the listed slots.
// @Summary Select slot
// @Tags Booking
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param request body dto.SlotRequest true "Slot start"
// @Success 200 {object} response.Data[dto.SessionResponse]
// @Failure 400 {object} response.Error
// @Failure 409 {object} response.Error
// @Router /v1/booking/sessions/{id}/slot [post]
func (handler *Handler) SelectSlot(w http.ResponseWriter, r *http.Request) {
	handler.respond(w, r, "SelectSlot", decode(r, handler.service.SelectSlot))
}

// SetCustomer fills the customer step. A bearer token identifies an
// existing customer and makes the form optional.
// @Summary Set customer
// @Tags Booking
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param request body dto.CustomerRequest false "Contact form"
// @Success 200 {object} response.Data[dto.SessionResponse]
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 409 {object} response.Error
// @Router /v1/booking/sessions/{id}/customer [post]
// @Security BearerAuth
func (handler *Handler) SetCustomer(w http.ResponseWriter, r *http.Request) {
	handler.respond(w, r, "SetCustomer", func(ctx context.Context, id string) (dto.SessionResponse, error) {
		req := dto.CustomerRequest{}

		if r.ContentLength != 0 {
			if err := validator.Validate(r.Body, &req); err != nil {
				return dto.SessionResponse{}, err //nolint:wrapcheck
			}
		}

		var token *dto.TokenCustomer

		if customer, ok := middleware.CustomerFromContext(ctx); ok {
			token = &dto.TokenCustomer{ClientID: customer.ClientID, Ref: customer.Ref}
		}

		return handler.service.SetCustomer(ctx, id, token, req)
	})
}

// SetNote records the optional note for the dealership.
// @Summary Set note
// @Tags Booking
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param request body dto.NoteRequest true "Note"
// @Success 200 {object} response.Data[dto.SessionResponse]
// @Failure 400 {object} response.Error
// @Router /v1/booking/sessions/{id}/note [post]
func (handler *Handler) SetNote(w http.ResponseWriter, r *http.Request) {
	handler.respond(w, r, "SetNote", decode(r, handler.service.SetNote))
}

// Next advances the wizard when the current step is complete.
// @Summary Next step
// @Tags Booking
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} response.Data[dto.SessionResponse]
// @Failure 409 {object} response.Error
// @Router /v1/booking/sessions/{id}/next [post]
func (handler *Handler) Next(w http.ResponseWriter, r *http.Request) {
	handler.respond(w, r, "NextStep", handler.service.Next)
}

// Back returns to the previous step, skipping the branch step when it was skipped on the way in.
// @Summary Previous step
// @Tags Booking
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} response.Data[dto.SessionResponse]
// @Failure 409 {object} response.Error
// @Router /v1/booking/sessions/{id}/back [post]
func (handler *Handler) Back(w http.ResponseWriter, r *http.Request) {
	handler.respond(w, r, "PreviousStep", handler.service.Back)
}

// Confirm books the selected slot.
// @Summary Confirm booking
// @Description Creates the appointment. When the slot was taken meanwhile the session returns to the time step with a notice.
// @Tags Booking
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} response.Data[dto.SessionResponse]
// @Failure 400 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/booking/sessions/{id}/confirm [post]
func (handler *Handler) Confirm(w http.ResponseWriter, r *http.Request) {
	handler.respond(w, r, "ConfirmBooking", handler.service.Confirm)
}
