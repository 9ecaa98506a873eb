package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/NikQuila/website-gocar-sub000/infras/jwt"
	jwtMocks "github.com/NikQuila/website-gocar-sub000/infras/jwt/mocks"
	"github.com/NikQuila/website-gocar-sub000/infras/otel/mocks"
	customerMocks "github.com/NikQuila/website-gocar-sub000/internal/domains/customer/mocks"
	"github.com/NikQuila/website-gocar-sub000/internal/domains/customer/model"
	"github.com/NikQuila/website-gocar-sub000/internal/domains/customer/model/dto"
	"github.com/NikQuila/website-gocar-sub000/internal/domains/customer/repository"
	"github.com/NikQuila/website-gocar-sub000/internal/domains/customer/service"
	"github.com/NikQuila/website-gocar-sub000/shared/failure"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

const tenantID = "tenant-1"

var (
	customerUUID = uuid.MustParse("6f1c0a3e-1111-4a2b-9c3d-222233334444")
	legacyID     = int64(42)
)

func ptr[T any](v T) *T {
	return &v
}

func validForm() dto.CustomerForm {
	return dto.CustomerForm{
		ClientID:  tenantID,
		FirstName: " Ana ",
		LastName:  "Soto",
		Email:     "Ana@B.cl",
		Phone:     "+56 9 1234 5678",
	}
}

func row() model.Row {
	return model.Row{
		ID:        customerUUID.String(),
		LegacyID:  ptr(legacyID),
		ClientID:  tenantID,
		FirstName: "Ana",
		LastName:  "Soto",
		Email:     "ana@b.cl",
		Phone:     "+56 9 1234 5678",
	}
}

func TestEnsure(t *testing.T) {
	tests := []struct {
		name     string
		form     dto.CustomerForm
		mock     func(r *customerMocks.MockCustomer)
		wantRef  model.Ref
		wantErr  bool
		wantCode int
	}{
		{
			name: "reuses the customer found by email",
			form: validForm(),
			mock: func(r *customerMocks.MockCustomer) {
				r.EXPECT().FindByEmail(gomock.Any(), tenantID, "ana@b.cl").Return(row(), nil)
			},
			wantRef: model.UUIDRef(customerUUID),
		},
		{
			name: "initializes an unknown customer",
			form: validForm(),
			mock: func(r *customerMocks.MockCustomer) {
				r.EXPECT().FindByEmail(gomock.Any(), tenantID, "ana@b.cl").Return(model.Row{}, repository.ErrNotFound)
				r.EXPECT().Initialize(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, form dto.CustomerForm) (model.Customer, error) {
						assert.Equal(t, "Ana", form.FirstName)

						return form.ToModel(model.IntegerRef(legacyID)), nil
					})
			},
			wantRef: model.IntegerRef(legacyID),
		},
		{
			name:     "invalid form never reaches the backend",
			form:     dto.CustomerForm{ClientID: tenantID, FirstName: "A", LastName: "B", Email: "bad", Phone: "123"},
			mock:     func(_ *customerMocks.MockCustomer) {},
			wantErr:  true,
			wantCode: http.StatusBadRequest,
		},
		{
			name: "lookup failure",
			form: validForm(),
			mock: func(r *customerMocks.MockCustomer) {
				r.EXPECT().FindByEmail(gomock.Any(), gomock.Any(), gomock.Any()).Return(model.Row{}, errors.New("db down"))
			},
			wantErr:  true,
			wantCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := customerMocks.NewMockCustomer(ctrl)
			tt.mock(repo)

			res, err := service.New(repo, jwtMocks.NewMockJWT(ctrl), mocks.NewOtel()).Ensure(context.Background(), tt.form)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.wantRef, res.Ref)
			assert.Equal(t, "ana@b.cl", res.Email)
		})
	}
}

func TestInitialize(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := customerMocks.NewMockCustomer(ctrl)
	tokens := jwtMocks.NewMockJWT(ctrl)

	repo.EXPECT().FindByEmail(gomock.Any(), tenantID, "ana@b.cl").Return(row(), nil)
	tokens.EXPECT().GenerateCustomerToken(customerUUID.String(), "uuid", tenantID).Return(&jwt.Token{AccessToken: "t", TokenType: "Bearer"}, nil)

	res, err := service.New(repo, tokens, mocks.NewOtel()).Initialize(context.Background(), dto.InitializeRequest{CustomerForm: validForm()})

	assert.NoError(t, err)
	assert.Equal(t, customerUUID.String(), res.ID)
	assert.Equal(t, "uuid", res.IDKind)
	assert.Equal(t, "t", res.Token.AccessToken)
}

func TestAlternateAndRefs(t *testing.T) {
	tests := []struct {
		name     string
		ref      model.Ref
		found    model.Row
		findErr  error
		wantRefs []model.Ref
		wantAlt  model.Ref
		altErr   error
	}{
		{
			name:     "uuid customer with a legacy id",
			ref:      model.UUIDRef(customerUUID),
			found:    row(),
			wantRefs: []model.Ref{model.UUIDRef(customerUUID), model.IntegerRef(legacyID)},
			wantAlt:  model.IntegerRef(legacyID),
		},
		{
			name:     "integer customer resolves its uuid",
			ref:      model.IntegerRef(legacyID),
			found:    row(),
			wantRefs: []model.Ref{model.UUIDRef(customerUUID), model.IntegerRef(legacyID)},
			wantAlt:  model.UUIDRef(customerUUID),
		},
		{
			name:     "unknown customer keeps its own ref",
			ref:      model.IntegerRef(7),
			findErr:  repository.ErrNotFound,
			wantRefs: []model.Ref{model.IntegerRef(7)},
			altErr:   service.ErrNoAlternateRef,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := customerMocks.NewMockCustomer(ctrl)
			repo.EXPECT().FindByRef(gomock.Any(), tenantID, tt.ref).Return(tt.found, tt.findErr).Times(2)

			svc := service.New(repo, jwtMocks.NewMockJWT(ctrl), mocks.NewOtel())

			refs, err := svc.Refs(context.Background(), tenantID, tt.ref)
			assert.NoError(t, err)
			assert.Equal(t, tt.wantRefs, refs)

			alt, err := svc.Alternate(context.Background(), model.Customer{Ref: tt.ref, ClientID: tenantID})
			if tt.altErr != nil {
				assert.ErrorIs(t, err, tt.altErr)

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.wantAlt, alt)
		})
	}
}

func TestFind(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := customerMocks.NewMockCustomer(ctrl)
	svc := service.New(repo, jwtMocks.NewMockJWT(ctrl), mocks.NewOtel())

	ref := model.IntegerRef(legacyID)

	repo.EXPECT().FindByRef(gomock.Any(), tenantID, ref).Return(row(), nil)

	res, err := svc.Find(context.Background(), tenantID, ref)
	assert.NoError(t, err)
	assert.Equal(t, ref, res.Ref)
	assert.Equal(t, "Ana Soto", res.FullName())

	repo.EXPECT().FindByRef(gomock.Any(), tenantID, ref).Return(model.Row{}, repository.ErrNotFound)

	_, err = svc.Find(context.Background(), tenantID, ref)
	assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
}
