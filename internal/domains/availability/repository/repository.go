package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"
	"time"

	"github.com/NikQuila/website-gocar-sub000/config"
	"github.com/NikQuila/website-gocar-sub000/infras/otel"
	"github.com/NikQuila/website-gocar-sub000/infras/supabase"
	"github.com/NikQuila/website-gocar-sub000/internal/domains/availability/model"
	"github.com/NikQuila/website-gocar-sub000/shared/constant"
)

const rpcComputeAvailability = "compute_availability"

// Availability is the backend's slot computation for a single date.
type Availability interface {
	Compute(ctx context.Context, clientID, dealershipID string, date time.Time, tz string) ([]model.Slot, error)
}

type repositoryImpl struct {
	rpc     supabase.Client
	service string
	otel    otel.Otel
}

func New(rpc supabase.Client, cfg *config.Config, otel otel.Otel) Availability {
	service := cfg.Availability.ServiceName
	if service == "" {
		service = constant.DefaultServiceName
	}

	return &repositoryImpl{
		rpc:     rpc,
		service: service,
		otel:    otel,
	}
}

type computeParams struct {
	ClientID     string `json:"p_client_id"`
	DealershipID string `json:"p_dealership_id"`
	Date         string `json:"p_date"`
	Timezone     string `json:"p_tz"`
	Service      string `json:"p_service"`
}

func (r *repositoryImpl) Compute(ctx context.Context, clientID, dealershipID string, date time.Time, tz string) (slots []model.Slot, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".availability.Compute")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	params := computeParams{
		ClientID:     clientID,
		DealershipID: dealershipID,
		Date:         date.Format(constant.DateOnlyFormat),
		Timezone:     tz,
		Service:      r.service,
	}

	if err = r.rpc.Call(ctx, rpcComputeAvailability, params, &slots); err != nil {
		return nil, fmt.Errorf("failed to compute availability for %s: %w", params.Date, err)
	}

	return slots, nil
}
