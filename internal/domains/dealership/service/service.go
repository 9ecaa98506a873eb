package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Dealership=MockDealershipService

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/NikQuila/website-gocar-sub000/config"
	"github.com/NikQuila/website-gocar-sub000/infras/otel"
	"github.com/NikQuila/website-gocar-sub000/internal/domains/dealership/model"
	"github.com/NikQuila/website-gocar-sub000/internal/domains/dealership/model/dto"
	"github.com/NikQuila/website-gocar-sub000/internal/domains/dealership/repository"
	"github.com/NikQuila/website-gocar-sub000/shared"
	"github.com/NikQuila/website-gocar-sub000/shared/cache"
	"github.com/NikQuila/website-gocar-sub000/shared/constant"
	gDto "github.com/NikQuila/website-gocar-sub000/shared/dto"
	"github.com/NikQuila/website-gocar-sub000/shared/failure"
	"github.com/NikQuila/website-gocar-sub000/shared/timezone"

	"github.com/rs/zerolog/log"
)

const (
	cacheListDealerships = "dealership:list"
	cacheGetClient       = "dealership:client"
)

type Dealership interface {
	ListByTenant(ctx context.Context, clientID string) (dto.DealershipsResponse, error)
	BelongsToTenant(ctx context.Context, clientID, dealershipID string) (bool, error)
	Tenant(ctx context.Context, clientID string) (model.Client, error)
	Vehicle(ctx context.Context, vehicleID string) (model.Vehicle, error)
	Find(ctx context.Context, clientID, dealershipID string) (dto.DealershipResponse, error)
	Location(ctx context.Context, clientID string) *time.Location
}

type serviceImpl struct {
	repo  repository.Dealership
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(repo repository.Dealership, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Dealership {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

func byTenant(clientID string) gDto.FilterGroup {
	return shared.FilterByID(clientID, model.FieldClientID, model.TableName)
}

func (s *serviceImpl) ListByTenant(ctx context.Context, clientID string) (res dto.DealershipsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ListByTenant")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKey(cacheListDealerships, clientID)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Debug().Str("cacheKey", cacheKey).Msg("cache hit for dealerships")

		return res, nil
	}

	params := gDto.QueryParams{SortBy: model.FieldName, SortDir: gDto.SortDirAsc}

	models, err := s.repo.GetAll(ctx, params, byTenant(clientID))
	if err != nil {
		log.Error().Err(err).Str("client_id", clientID).Msg("failed to list dealerships")

		return res, fmt.Errorf("failed to list dealerships: %w", err)
	}

	res.FromModels(models)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cacheTTL()); err != nil {
			log.Error().Err(err).Msg("failed to save dealerships to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) BelongsToTenant(ctx context.Context, clientID, dealershipID string) (ok bool, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".BelongsToTenant")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{Field: model.FieldID, Value: dealershipID, Operator: gDto.FilterOperatorEq, Table: model.TableName},
			gDto.Filter{Field: model.FieldClientID, Value: clientID, Operator: gDto.FilterOperatorEq, Table: model.TableName},
		},
	}

	ok, err = s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Str("dealership_id", dealershipID).Msg("failed to check dealership")

		return false, fmt.Errorf("failed to check dealership: %w", err)
	}

	return ok, nil
}

func (s *serviceImpl) Tenant(ctx context.Context, clientID string) (res model.Client, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Tenant")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKey(cacheGetClient, clientID)

	if err = s.cache.Get(ctx, cacheKey, &res); err == nil {
		return res, nil
	}

	res, err = s.repo.GetClient(ctx, clientID)
	if errors.Is(err, repository.ErrNotFound) {
		return res, failure.NotFound("tenant not found") //nolint:wrapcheck
	}

	if err != nil {
		log.Error().Err(err).Str("client_id", clientID).Msg("failed to get tenant")

		return res, fmt.Errorf("failed to get tenant: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cacheTTL()); err != nil {
			log.Error().Err(err).Msg("failed to save tenant to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Vehicle(ctx context.Context, vehicleID string) (res model.Vehicle, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Vehicle")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	res, err = s.repo.GetVehicle(ctx, vehicleID)
	if errors.Is(err, repository.ErrNotFound) {
		return res, failure.NotFound("vehicle not found") //nolint:wrapcheck
	}

	if err != nil {
		log.Error().Err(err).Str("vehicle_id", vehicleID).Msg("failed to get vehicle")

		return res, fmt.Errorf("failed to get vehicle: %w", err)
	}

	return res, nil
}

// Find returns one of the tenant's dealerships from the cached listing.
func (s *serviceImpl) Find(ctx context.Context, clientID, dealershipID string) (res dto.DealershipResponse, err error) {
	list, err := s.ListByTenant(ctx, clientID)
	if err != nil {
		return res, err
	}

	for _, dealership := range list.Dealerships {
		if dealership.ID == dealershipID {
			return dealership, nil
		}
	}

	return res, failure.NotFound("dealership not found") //nolint:wrapcheck
}

// Location is the tenant's timezone, or the configured default when the
// tenant has none or cannot be read.
func (s *serviceImpl) Location(ctx context.Context, clientID string) *time.Location {
	tenant, err := s.Tenant(ctx, clientID)
	if err == nil && tenant.Timezone != nil && *tenant.Timezone != "" {
		return timezone.Resolve(*tenant.Timezone)
	}

	return timezone.Resolve(s.cfg.Availability.DefaultTimezone)
}

func (s *serviceImpl) cacheTTL() time.Duration {
	return time.Duration(s.cfg.Cache.TTL) * time.Second
}
