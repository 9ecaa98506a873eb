package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"database/sql"
	"errors"

	"github.com/NikQuila/website-gocar-sub000/infras/otel"
	"github.com/NikQuila/website-gocar-sub000/infras/postgres"
	"github.com/NikQuila/website-gocar-sub000/internal/domains/dealership/model"
	"github.com/NikQuila/website-gocar-sub000/shared"
	gDto "github.com/NikQuila/website-gocar-sub000/shared/dto"
	gRepo "github.com/NikQuila/website-gocar-sub000/shared/repository"
)

var ErrNotFound = errors.New("not found")

type Dealership interface {
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Dealership, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	GetClient(ctx context.Context, clientID string) (model.Client, error)
	GetVehicle(ctx context.Context, vehicleID string) (model.Vehicle, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Dealership]
	clients  gRepo.Repository[model.Client]
	vehicles gRepo.Repository[model.Vehicle]
}

func New(db *postgres.Connection, otel otel.Otel) Dealership {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Dealership](model.EntityName, model.TableName, db, otel),
		clients:    gRepo.NewRepository[model.Client](model.ClientEntityName, model.ClientTableName, db, otel),
		vehicles:   gRepo.NewRepository[model.Vehicle](model.VehicleEntityName, model.VehicleTableName, db, otel),
	}
}

func (r *repositoryImpl) GetClient(ctx context.Context, clientID string) (model.Client, error) {
	client, err := r.clients.Get(ctx, shared.FilterByID(clientID, model.FieldID, model.ClientTableName))
	if errors.Is(err, sql.ErrNoRows) {
		return client, ErrNotFound
	}

	return client, err //nolint:wrapcheck
}

func (r *repositoryImpl) GetVehicle(ctx context.Context, vehicleID string) (model.Vehicle, error) {
	vehicle, err := r.vehicles.Get(ctx, shared.FilterByID(vehicleID, model.FieldID, model.VehicleTableName))
	if errors.Is(err, sql.ErrNoRows) {
		return vehicle, ErrNotFound
	}

	return vehicle, err //nolint:wrapcheck
}
