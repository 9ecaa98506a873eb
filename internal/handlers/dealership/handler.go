package dealership

import (
	"context"
	"net/http"
	"time"

	"github.com/NikQuila/website-gocar-sub000/infras/otel"
	availabilityDto "github.com/NikQuila/website-gocar-sub000/internal/domains/availability/model/dto"
	availabilityService "github.com/NikQuila/website-gocar-sub000/internal/domains/availability/service"
	"github.com/NikQuila/website-gocar-sub000/internal/domains/dealership/model/dto"
	"github.com/NikQuila/website-gocar-sub000/internal/domains/dealership/service"
	"github.com/NikQuila/website-gocar-sub000/shared/constant"
	"github.com/NikQuila/website-gocar-sub000/shared/failure"
	"github.com/NikQuila/website-gocar-sub000/shared/timezone"
	"github.com/NikQuila/website-gocar-sub000/shared/validator"
	"github.com/NikQuila/website-gocar-sub000/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

const slotsUnavailableNotice = "Times for this day could not be loaded. Please try again later."

type Handler struct {
	service      service.Dealership
	availability availabilityService.Availability
	otel         otel.Otel
}

func New(service service.Dealership, availability availabilityService.Availability, otel otel.Otel) Handler {
	return Handler{
		service:      service,
		availability: availability,
		otel:         otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/tenants/{tenantID}/dealerships", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.ListDealerships)
		routerGroup.Get("/{locationID}/availability", handler.MonthAvailability)
		routerGroup.Get("/{locationID}/slots", handler.DaySlots)
	})
}

// ListDealerships lists the tenant's locations.
// @Summary List dealerships
// @Description List the locations of a tenant where appointments can be booked.
// @Tags Dealership
// @Produce json
// @Param tenantID path string true "Tenant ID"
// @Success 200 {object} response.Data[dto.DealershipsResponse]
// @Failure 500 {object} response.Error
// @Router /v1/tenants/{tenantID}/dealerships [get]
func (handler *Handler) ListDealerships(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ListDealerships")
	defer scope.End()

	var (
		res dto.DealershipsResponse
		err error
	)

	res, err = handler.service.ListByTenant(ctx, chi.URLParam(r, constant.RequestParamTenantID))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to list dealerships")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// location checks that the location belongs to the tenant and resolves the
// timezone to answer in.
func (handler *Handler) location(ctx context.Context, r *http.Request) (tenantID, locationID string, loc *time.Location, err error) {
	tenantID = chi.URLParam(r, constant.RequestParamTenantID)
	locationID = chi.URLParam(r, constant.RequestParamLocationID)

	ok, err := handler.service.BelongsToTenant(ctx, tenantID, locationID)
	if err != nil {
		return tenantID, locationID, nil, err //nolint:wrapcheck
	}

	if !ok {
		return tenantID, locationID, nil, failure.NotFound("dealership not found") //nolint:wrapcheck
	}

	if tz := r.URL.Query().Get(constant.RequestParamTimezone); tz != "" {
		return tenantID, locationID, timezone.Resolve(tz), nil
	}

	return tenantID, locationID, handler.service.Location(ctx, tenantID), nil
}

// MonthAvailability flags which days of a month have offerable slots.
// @Summary Month availability
// @Description Per-day availability for a calendar month. Past days are always closed.
// @Tags Dealership
// @Produce json
// @Param tenantID path string true "Tenant ID"
// @Param locationID path string true "Dealership ID"
// @Param month query string true "Month (YYYY-MM)"
// @Param tz query string false "IANA timezone, defaults to the tenant's"
// @Success 200 {object} response.Data[availabilityDto.MonthResponse]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/tenants/{tenantID}/dealerships/{locationID}/availability [get]
func (handler *Handler) MonthAvailability(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".MonthAvailability")
	defer scope.End()

	month := r.URL.Query().Get(constant.RequestParamMonth)
	if err := validator.ValidateVar(constant.RequestParamMonth, month, "required,yearmonth"); err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	tenantID, locationID, loc, err := handler.location(ctx, r)
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	start, _ := time.ParseInLocation(constant.MonthFormat, month, loc)

	availability, err := handler.availability.MonthAvailability(ctx, tenantID, locationID, start, loc.String())
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("location_id", locationID).Msg("failed to compute month availability")

		response.WithError(w, err)

		return
	}

	var res availabilityDto.MonthResponse
	res.FromModel(locationID, month, loc.String(), availability)

	response.WithJSON(w, http.StatusOK, res)
}

// DaySlots lists the slots of a day that can still be booked.
// @Summary Day slots
// @Description Offerable slots of a day with their remaining capacity.
// @Tags Dealership
// @Produce json
// @Param tenantID path string true "Tenant ID"
// @Param locationID path string true "Dealership ID"
// @Param date query string true "Date (YYYY-MM-DD)"
// @Param tz query string false "IANA timezone, defaults to the tenant's"
// @Success 200 {object} response.Data[availabilityDto.SlotsResponse]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/tenants/{tenantID}/dealerships/{locationID}/slots [get]
func (handler *Handler) DaySlots(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DaySlots")
	defer scope.End()

	date := r.URL.Query().Get(constant.RequestParamDate)
	if err := validator.ValidateVar(constant.RequestParamDate, date, "required,civildate"); err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	tenantID, locationID, loc, err := handler.location(ctx, r)
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	day, _ := time.ParseInLocation(constant.DateOnlyFormat, date, loc)

	var res availabilityDto.SlotsResponse

	slots, err := handler.availability.DaySlots(ctx, tenantID, locationID, day, loc.String())
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("location_id", locationID).Str("date", date).Msg("failed to load day slots, offering none")

		// A day that cannot be computed offers nothing.
		slots = nil
		res.Notice = slotsUnavailableNotice
	}

	res.FromModels(locationID, date, loc.String(), slots)

	response.WithJSON(w, http.StatusOK, res)
}
