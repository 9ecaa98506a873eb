package middleware

import (
	"context"
	"errors"
	"net/http"

	"github.com/NikQuila/website-gocar-sub000/infras/jwt"
	"github.com/NikQuila/website-gocar-sub000/infras/otel"
	customerModel "github.com/NikQuila/website-gocar-sub000/internal/domains/customer/model"
	"github.com/NikQuila/website-gocar-sub000/shared/constant"
	"github.com/NikQuila/website-gocar-sub000/shared/failure"
	"github.com/NikQuila/website-gocar-sub000/transport/http/response"

	"github.com/rs/zerolog/log"
)

// Auth resolves the customer session token issued on customer initialization.
type Auth interface {
	// Customer rejects requests without a valid token.
	Customer(next http.Handler) http.Handler
	// OptionalCustomer attaches the customer when a valid token is present.
	OptionalCustomer(next http.Handler) http.Handler
}

type authImpl struct {
	jwtService jwt.JWT
	otel       otel.Otel
}

func NewAuthMiddleware(jwtService jwt.JWT, otel otel.Otel) Auth {
	return &authImpl{
		jwtService: jwtService,
		otel:       otel,
	}
}

func (m *authImpl) Customer(next http.Handler) http.Handler {
	return m.handle(next, true)
}

func (m *authImpl) OptionalCustomer(next http.Handler) http.Handler {
	return m.handle(next, false)
}

func (m *authImpl) handle(next http.Handler, required bool) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		ctx, scope := m.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, "auth.middleware")

		scope.SetAttributes(map[string]any{
			"middleware.type": "auth",
			"auth.required":   required,
			"http.path":       request.URL.Path,
			"http.method":     request.Method,
		})

		authHeader := request.Header.Get(constant.RequestHeaderAuthorization)
		if authHeader == "" && !required {
			scope.End()
			next.ServeHTTP(writer, request)

			return
		}

		claims, err := m.validate(authHeader)
		if err != nil {
			scope.TraceError(err)
			scope.End()

			if !required {
				log.Debug().Err(err).Msg("ignoring invalid optional customer token")
				next.ServeHTTP(writer, request)

				return
			}

			response.WithError(writer, err)

			return
		}

		ctx = context.WithValue(ctx, constant.ContextKeyCustomerID, claims.CustomerID)
		ctx = context.WithValue(ctx, constant.ContextKeyCustomerKind, claims.CustomerKind)
		ctx = context.WithValue(ctx, constant.ContextKeyClientID, claims.ClientID)
		ctx = context.WithValue(ctx, constant.ContextKeyTokenID, claims.TokenID)

		scope.End()

		next.ServeHTTP(writer, request.WithContext(ctx))
	})
}

func (m *authImpl) validate(authHeader string) (*jwt.Claims, error) {
	if authHeader == "" {
		return nil, failure.ErrCustomerRequired
	}

	tokenString, err := jwt.ExtractTokenFromHeader(authHeader)
	if err != nil {
		return nil, failure.Unauthorized("Invalid authorization header format") //nolint:wrapcheck
	}

	claims, err := m.jwtService.ValidateToken(tokenString)
	if err != nil {
		var message string

		switch {
		case errors.Is(err, jwt.ErrExpiredToken):
			message = "Token has expired"
		case errors.Is(err, jwt.ErrInvalidClaim):
			message = "Invalid token claims"
		default:
			message = "Invalid token"
		}

		return nil, failure.Unauthorized(message) //nolint:wrapcheck
	}

	return claims, nil
}

// Customer is the session owner attached by the auth middleware.
type Customer struct {
	ClientID string
	Ref      customerModel.Ref
}

// CustomerFromContext returns the authenticated customer, if any.
func CustomerFromContext(ctx context.Context) (Customer, bool) {
	clientID, _ := ctx.Value(constant.ContextKeyClientID).(string)
	id, _ := ctx.Value(constant.ContextKeyCustomerID).(string)
	kind, _ := ctx.Value(constant.ContextKeyCustomerKind).(string)

	if clientID == "" || id == "" {
		return Customer{}, false
	}

	ref, err := customerModel.ParseTypedRef(kind, id)
	if err != nil {
		log.Warn().Err(err).Str("customer_id", id).Msg("token carries an unusable customer id")

		return Customer{}, false
	}

	return Customer{ClientID: clientID, Ref: ref}, true
}
