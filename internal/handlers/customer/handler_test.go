package customer_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/NikQuila/website-gocar-sub000/infras/otel/mocks"
	customerMocks "github.com/NikQuila/website-gocar-sub000/internal/domains/customer/mocks"
	"github.com/NikQuila/website-gocar-sub000/internal/domains/customer/model/dto"
	"github.com/NikQuila/website-gocar-sub000/internal/handlers/customer"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

const validBody = `{"client_id":"tenant-1","first_name":"Ana","last_name":"Rojas","email":"Ana@B.cl","phone":"+56 9 1234 5678"}`

func TestInitialize(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		setup    func(svc *customerMocks.MockCustomerService)
		wantCode int
		wantBody string
	}{
		{
			name: "created",
			body: validBody,
			setup: func(svc *customerMocks.MockCustomerService) {
				svc.EXPECT().Initialize(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, req dto.InitializeRequest) (dto.CustomerResponse, error) {
					return dto.CustomerResponse{ID: "42", IDKind: "integer", ClientID: req.ClientID, Email: req.Email}, nil
				})
			},
			wantCode: http.StatusCreated,
			wantBody: `"id":"42"`,
		},
		{
			name:     "missing fields",
			body:     `{"client_id":"tenant-1","first_name":"Ana"}`,
			setup:    func(*customerMocks.MockCustomerService) {},
			wantCode: http.StatusBadRequest,
		},
		{
			name:     "malformed json",
			body:     `{"client_id":`,
			setup:    func(*customerMocks.MockCustomerService) {},
			wantCode: http.StatusBadRequest,
		},
		{
			name: "backend failure is not leaked",
			body: validBody,
			setup: func(svc *customerMocks.MockCustomerService) {
				svc.EXPECT().Initialize(gomock.Any(), gomock.Any()).Return(dto.CustomerResponse{}, errors.New("pq: connection refused"))
			},
			wantCode: http.StatusInternalServerError,
			wantBody: `"error":"Internal Server Error"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			svc := customerMocks.NewMockCustomerService(ctrl)
			tt.setup(svc)

			router := chi.NewRouter()
			handler := customer.New(svc, mocks.NewOtel())
			handler.Router(router)

			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/customers", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantCode, rec.Code)

			if tt.wantBody != "" {
				assert.Contains(t, rec.Body.String(), tt.wantBody)
			}
		})
	}
}
