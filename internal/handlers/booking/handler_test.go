package booking_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	jwtService "github.com/NikQuila/website-gocar-sub000/infras/jwt"
	jwtMocks "github.com/NikQuila/website-gocar-sub000/infras/jwt/mocks"
	"github.com/NikQuila/website-gocar-sub000/infras/otel/mocks"
	bookingMocks "github.com/NikQuila/website-gocar-sub000/internal/domains/booking/mocks"
	"github.com/NikQuila/website-gocar-sub000/internal/domains/booking/model/dto"
	customerModel "github.com/NikQuila/website-gocar-sub000/internal/domains/customer/model"
	"github.com/NikQuila/website-gocar-sub000/internal/handlers/booking"
	"github.com/NikQuila/website-gocar-sub000/shared/failure"
	"github.com/NikQuila/website-gocar-sub000/transport/http/middleware"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type fixture struct {
	router  chi.Router
	service *bookingMocks.MockBookingService
	jwt     *jwtMocks.MockJWT
}

func newFixture(t *testing.T) fixture {
	ctrl := gomock.NewController(t)

	f := fixture{
		router:  chi.NewRouter(),
		service: bookingMocks.NewMockBookingService(ctrl),
		jwt:     jwtMocks.NewMockJWT(ctrl),
	}

	handler := booking.New(f.service, middleware.NewAuthMiddleware(f.jwt, mocks.NewOtel()), mocks.NewOtel())
	handler.Router(f.router)

	return f
}

func (f fixture) do(method, path, body string, headers ...string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
	}

	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}

	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)

	return rec
}

func decodeSession(t *testing.T, rec *httptest.ResponseRecorder) dto.SessionResponse {
	t.Helper()

	var payload struct {
		Data dto.SessionResponse `json:"data"`
	}

	require.NoError(t, json.NewDecoder(rec.Body).Decode(&payload))

	return payload.Data
}

func TestStart(t *testing.T) {
	f := newFixture(t)

	f.service.EXPECT().Start(gomock.Any(), dto.StartRequest{ClientID: "tenant-1"}).
		Return(dto.SessionResponse{ID: "session-1", StepName: "date"}, nil)

	rec := f.do(http.MethodPost, "/booking/sessions", `{"client_id":"tenant-1"}`)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "session-1", decodeSession(t, rec).ID)
}

func TestStart_MissingTenant(t *testing.T) {
	f := newFixture(t)

	rec := f.do(http.MethodPost, "/booking/sessions", `{}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSelectDate_InvalidDate(t *testing.T) {
	f := newFixture(t)

	rec := f.do(http.MethodPost, "/booking/sessions/session-1/date", `{"date":"15/03/2026"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSelectDate(t *testing.T) {
	f := newFixture(t)

	f.service.EXPECT().SelectDate(gomock.Any(), "session-1", dto.DateRequest{Date: "2026-03-15"}).
		Return(dto.SessionResponse{ID: "session-1", Date: "2026-03-15"}, nil)

	rec := f.do(http.MethodPost, "/booking/sessions/session-1/date", `{"date":"2026-03-15"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "2026-03-15", decodeSession(t, rec).Date)
}

func TestNext_IncompleteStep(t *testing.T) {
	f := newFixture(t)

	f.service.EXPECT().Next(gomock.Any(), "session-1").Return(dto.SessionResponse{}, failure.ErrStepGuard)

	rec := f.do(http.MethodPost, "/booking/sessions/session-1/next", "")

	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestGet_UnknownSession(t *testing.T) {
	f := newFixture(t)

	f.service.EXPECT().Get(gomock.Any(), "missing").Return(dto.SessionResponse{}, failure.ErrSessionNotFound)

	rec := f.do(http.MethodGet, "/booking/sessions/missing", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestSetCustomer(t *testing.T) {
	t.Run("token identifies the customer", func(t *testing.T) {
		f := newFixture(t)

		f.jwt.EXPECT().ValidateToken("token").Return(&jwtService.Claims{CustomerID: "7", CustomerKind: "integer", ClientID: "tenant-1"}, nil)
		f.service.EXPECT().SetCustomer(gomock.Any(), "session-1", gomock.Any(), dto.CustomerRequest{}).
			DoAndReturn(func(_ any, _ string, token *dto.TokenCustomer, _ dto.CustomerRequest) (dto.SessionResponse, error) {
				require.NotNil(t, token)
				assert.Equal(t, "tenant-1", token.ClientID)
				assert.Equal(t, customerModel.IntegerRef(7), token.Ref)

				return dto.SessionResponse{ID: "session-1", CanConfirm: true}, nil
			})

		rec := f.do(http.MethodPost, "/booking/sessions/session-1/customer", "", "Authorization", "Bearer token")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.True(t, decodeSession(t, rec).CanConfirm)
	})

	t.Run("anonymous form", func(t *testing.T) {
		f := newFixture(t)

		f.service.EXPECT().SetCustomer(gomock.Any(), "session-1", gomock.Nil(), gomock.Any()).
			DoAndReturn(func(_ any, _ string, _ *dto.TokenCustomer, req dto.CustomerRequest) (dto.SessionResponse, error) {
				require.NotNil(t, req.Form)
				assert.Equal(t, "ana@example.com", req.Form.Email)

				return dto.SessionResponse{ID: "session-1"}, nil
			})

		rec := f.do(http.MethodPost, "/booking/sessions/session-1/customer",
			`{"form":{"first_name":"Ana","last_name":"Rojas","email":"ana@example.com","phone":"+56911111111"}}`)

		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestSetCustomer_OtherTenant(t *testing.T) {
	f := newFixture(t)

	f.jwt.EXPECT().ValidateToken("token").Return(&jwtService.Claims{CustomerID: "7", CustomerKind: "integer", ClientID: "tenant-2"}, nil)
	f.service.EXPECT().SetCustomer(gomock.Any(), "session-1", gomock.Any(), dto.CustomerRequest{}).
		Return(dto.SessionResponse{}, failure.Forbidden("customer session belongs to another dealership"))

	rec := f.do(http.MethodPost, "/booking/sessions/session-1/customer", "", "Authorization", "Bearer token")

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestConfirm_SlotTaken(t *testing.T) {
	f := newFixture(t)

	f.service.EXPECT().Confirm(gomock.Any(), "session-1").Return(dto.SessionResponse{}, failure.ErrSlotUnavailable)

	rec := f.do(http.MethodPost, "/booking/sessions/session-1/confirm", "")

	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestAbandon(t *testing.T) {
	f := newFixture(t)

	f.service.EXPECT().Abandon(gomock.Any(), "session-1").Return(nil)

	rec := f.do(http.MethodDelete, "/booking/sessions/session-1", "")

	assert.Equal(t, http.StatusNoContent, rec.Code)
}
