package customer

import (
	"net/http"

	"github.com/NikQuila/website-gocar-sub000/infras/otel"
	"github.com/NikQuila/website-gocar-sub000/internal/domains/customer/model/dto"
	"github.com/NikQuila/website-gocar-sub000/internal/domains/customer/service"
	"github.com/NikQuila/website-gocar-sub000/shared/constant"
	"github.com/NikQuila/website-gocar-sub000/shared/validator"
	"github.com/NikQuila/website-gocar-sub000/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Customer
	otel    otel.Otel
}

func New(service service.Customer, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/customers", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.Initialize)
	})
}

// Initialize registers a customer, or finds the existing one by email, and
// returns a session token for listing and cancelling appointments.
// @Summary Initialize customer
// @Tags Customer
// @Accept json
// @Produce json
// @Param request body dto.InitializeRequest true "Customer contact data"
// @Success 201 {object} response.Data[dto.CustomerResponse]
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/customers [post]
func (handler *Handler) Initialize(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".InitializeCustomer")
	defer scope.End()

	req := dto.InitializeRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.Initialize(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to initialize customer")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("customer initialized")

	response.WithJSON(w, http.StatusCreated, res)
}
