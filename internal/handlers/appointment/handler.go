package appointment

import (
	"net/http"

	"github.com/NikQuila/website-gocar-sub000/infras/otel"
	"github.com/NikQuila/website-gocar-sub000/internal/domains/appointment/model/dto"
	"github.com/NikQuila/website-gocar-sub000/internal/domains/appointment/service"
	"github.com/NikQuila/website-gocar-sub000/shared/constant"
	"github.com/NikQuila/website-gocar-sub000/shared/failure"
	"github.com/NikQuila/website-gocar-sub000/shared/validator"
	"github.com/NikQuila/website-gocar-sub000/transport/http/middleware"
	"github.com/NikQuila/website-gocar-sub000/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Appointment
	auth    middleware.Auth
	otel    otel.Otel
}

func New(service service.Appointment, auth middleware.Auth, otel otel.Otel) Handler {
	return Handler{
		service: service,
		auth:    auth,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/appointments", func(routerGroup chi.Router) {
		routerGroup.Use(handler.auth.Customer)

		routerGroup.Get("/", handler.ListUpcoming)
		routerGroup.Post("/{id}/cancel", handler.Cancel)
	})
}

// ListUpcoming lists the customer's active appointments from today on.
// @Summary List upcoming appointments
// @Tags Appointment
// @Produce json
// @Success 200 {object} response.Data[dto.AppointmentsResponse]
// @Failure 401 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/appointments [get]
// @Security BearerAuth
func (handler *Handler) ListUpcoming(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ListUpcoming")
	defer scope.End()

	customer, ok := middleware.CustomerFromContext(ctx)
	if !ok {
		scope.TraceError(failure.ErrCustomerRequired)
		response.WithError(w, failure.ErrCustomerRequired)

		return
	}

	var (
		res dto.AppointmentsResponse
		err error
	)

	res, err = handler.service.ListUpcoming(ctx, customer.ClientID, customer.Ref)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("customer_id", customer.Ref.String()).Msg("failed to list appointments")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// Cancel cancels one of the customer's appointments that has not started
// and returns the refreshed list.
// @Summary Cancel appointment
// @Tags Appointment
// @Accept json
// @Produce json
// @Param id path string true "Appointment ID"
// @Param request body dto.CancelRequest false "Cancellation reason"
// @Success 200 {object} response.Data[dto.AppointmentsResponse]
// @Failure 401 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 422 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/appointments/{id}/cancel [post]
// @Security BearerAuth
func (handler *Handler) Cancel(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CancelAppointment")
	defer scope.End()

	customer, ok := middleware.CustomerFromContext(ctx)
	if !ok {
		scope.TraceError(failure.ErrCustomerRequired)
		response.WithError(w, failure.ErrCustomerRequired)

		return
	}

	req := dto.CancelRequest{}

	if r.ContentLength != 0 {
		if err := validator.Validate(r.Body, &req); err != nil {
			scope.TraceError(err)
			log.Error().Err(err).Msg("failed to validate request body")

			response.WithError(w, err)

			return
		}
	}

	appointmentID := chi.URLParam(r, constant.RequestParamID)

	res, err := handler.service.Cancel(ctx, customer.ClientID, customer.Ref, appointmentID, req.Reason)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("appointment_id", appointmentID).Msg("failed to cancel appointment")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("appointment cancelled " + appointmentID)

	response.WithJSON(w, http.StatusOK, res)
}
