package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Customer=MockCustomerService

import (
	"context"
	"errors"
	"fmt"

	"github.com/NikQuila/website-gocar-sub000/infras/jwt"
	"github.com/NikQuila/website-gocar-sub000/infras/otel"
	"github.com/NikQuila/website-gocar-sub000/internal/domains/customer/model"
	"github.com/NikQuila/website-gocar-sub000/internal/domains/customer/model/dto"
	"github.com/NikQuila/website-gocar-sub000/internal/domains/customer/repository"
	"github.com/NikQuila/website-gocar-sub000/shared/constant"
	"github.com/NikQuila/website-gocar-sub000/shared/failure"

	"github.com/rs/zerolog/log"
)

var ErrNoAlternateRef = errors.New("customer has no alternate id representation")

type Customer interface {
	Initialize(ctx context.Context, req dto.InitializeRequest) (dto.CustomerResponse, error)
	Ensure(ctx context.Context, form dto.CustomerForm) (model.Customer, error)
	Alternate(ctx context.Context, customer model.Customer) (model.Ref, error)
	Refs(ctx context.Context, clientID string, ref model.Ref) ([]model.Ref, error)
	Find(ctx context.Context, clientID string, ref model.Ref) (model.Customer, error)
}

type serviceImpl struct {
	repo repository.Customer
	jwt  jwt.JWT
	otel otel.Otel
}

func New(repo repository.Customer, jwt jwt.JWT, otel otel.Otel) Customer {
	return &serviceImpl{
		repo: repo,
		jwt:  jwt,
		otel: otel,
	}
}

// Initialize registers (or finds) the customer and issues a session token.
func (s *serviceImpl) Initialize(ctx context.Context, req dto.InitializeRequest) (res dto.CustomerResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Initialize")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	customer, err := s.Ensure(ctx, req.CustomerForm)
	if err != nil {
		return res, err
	}

	token, err := s.jwt.GenerateCustomerToken(customer.Ref.String(), string(customer.Ref.Kind()), customer.ClientID)
	if err != nil {
		log.Error().Err(err).Msg("failed to issue customer token")

		return res, fmt.Errorf("failed to issue customer token: %w", err)
	}

	res.FromModel(customer)
	res.Token = token

	return res, nil
}

// Ensure validates the form, reuses an existing customer with the same
// email in the tenant and otherwise initializes a new one.
func (s *serviceImpl) Ensure(ctx context.Context, form dto.CustomerForm) (res model.Customer, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Ensure")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	form = form.Normalize()
	if err = form.Validate(); err != nil {
		return res, err
	}

	row, err := s.repo.FindByEmail(ctx, form.ClientID, form.Email)
	switch {
	case err == nil:
		if refs := row.Refs(); len(refs) > 0 {
			return form.ToModel(refs[0]), nil
		}
	case !errors.Is(err, repository.ErrNotFound):
		log.Error().Err(err).Msg("failed to look up customer")

		return res, fmt.Errorf("failed to look up customer: %w", err)
	}

	res, err = s.repo.Initialize(ctx, form)
	if err != nil {
		log.Error().Err(err).Msg("failed to initialize customer")

		return res, fmt.Errorf("failed to initialize customer: %w", err)
	}

	return res, nil
}

// Alternate returns the other id representation of the same customer.
func (s *serviceImpl) Alternate(ctx context.Context, customer model.Customer) (ref model.Ref, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Alternate")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	refs, err := s.Refs(ctx, customer.ClientID, customer.Ref)
	if err != nil {
		return ref, err
	}

	for _, candidate := range refs {
		if candidate.Kind() != customer.Ref.Kind() {
			return candidate, nil
		}
	}

	return ref, ErrNoAlternateRef
}

// Refs lists every id representation known for the customer, including ref itself.
func (s *serviceImpl) Refs(ctx context.Context, clientID string, ref model.Ref) (refs []model.Ref, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Refs")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	row, err := s.repo.FindByRef(ctx, clientID, ref)
	if errors.Is(err, repository.ErrNotFound) {
		return []model.Ref{ref}, nil
	}

	if err != nil {
		log.Error().Err(err).Str("customer", ref.String()).Msg("failed to resolve customer ids")

		return nil, fmt.Errorf("failed to resolve customer ids: %w", err)
	}

	refs = row.Refs()
	for _, known := range refs {
		if known == ref {
			return refs, nil
		}
	}

	return append(refs, ref), nil
}

// Find loads the customer addressed by ref, keeping ref as its identity.
func (s *serviceImpl) Find(ctx context.Context, clientID string, ref model.Ref) (res model.Customer, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Find")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	row, err := s.repo.FindByRef(ctx, clientID, ref)
	if errors.Is(err, repository.ErrNotFound) {
		return res, failure.NotFound("customer not found") //nolint:wrapcheck
	}

	if err != nil {
		log.Error().Err(err).Str("customer", ref.String()).Msg("failed to find customer")

		return res, fmt.Errorf("failed to find customer: %w", err)
	}

	return row.ToModel(ref), nil
}
