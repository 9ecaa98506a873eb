package jwt

//go:generate go run go.uber.org/mock/mockgen -source=./jwt.go -destination=./mocks/jwt_mock.go -package=mocks

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/NikQuila/website-gocar-sub000/config"
	"github.com/NikQuila/website-gocar-sub000/shared/timezone"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	ErrInvalidToken  = errors.New("invalid token")
	ErrExpiredToken  = errors.New("token has expired")
	ErrInvalidClaim  = errors.New("invalid token claim")
	ErrMissingHeader = errors.New("authorization header is required")
	ErrBadScheme     = errors.New("authorization header must use the Bearer scheme")
)

const (
	tokenType        = "Bearer"
	defaultExpireMin = 60
	clockLeeway      = 30 * time.Second
)

// Claims identify a booking customer within one tenant. CustomerKind tells
// whether CustomerID is a uuid or a legacy integer id.
type Claims struct {
	CustomerID   string `json:"customer_id"`
	CustomerKind string `json:"customer_kind"`
	ClientID     string `json:"client_id"`
	TokenID      string `json:"token_id"`
	jwt.RegisteredClaims
}

type Token struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int64  `json:"expires_in"`
}

type JWT interface {
	GenerateCustomerToken(customerID, customerKind, clientID string) (*Token, error)
	ValidateToken(tokenString string) (*Claims, error)
}

type Service struct {
	secret []byte
	issuer string
	ttl    time.Duration
	parser *jwt.Parser
}

func New(cfg *config.Config) JWT {
	expireMin := cfg.JWT.AccessExpireMin
	if expireMin == 0 {
		expireMin = defaultExpireMin
	}

	return &Service{
		secret: []byte(cfg.JWT.AccessSecret),
		issuer: cfg.App.Name,
		ttl:    time.Duration(expireMin) * time.Minute,
		parser: jwt.NewParser(
			jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
			jwt.WithIssuer(cfg.App.Name),
			jwt.WithIssuedAt(),
			jwt.WithLeeway(clockLeeway),
		),
	}
}

func (s *Service) GenerateCustomerToken(customerID, customerKind, clientID string) (*Token, error) {
	now := timezone.Now()
	tokenID := uuid.NewString()

	claims := Claims{
		CustomerID:   customerID,
		CustomerKind: customerKind,
		ClientID:     clientID,
		TokenID:      tokenID,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    s.issuer,
			Subject:   customerID,
			ID:        tokenID,
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return nil, fmt.Errorf("failed to sign customer token: %w", err)
	}

	return &Token{
		AccessToken: signed,
		TokenType:   tokenType,
		ExpiresIn:   int64(s.ttl.Seconds()),
	}, nil
}

func (s *Service) ValidateToken(tokenString string) (*Claims, error) {
	claims := &Claims{}

	_, err := s.parser.ParseWithClaims(tokenString, claims, func(*jwt.Token) (any, error) {
		return s.secret, nil
	})

	switch {
	case errors.Is(err, jwt.ErrTokenExpired):
		return nil, ErrExpiredToken
	case err != nil:
		return nil, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	case claims.CustomerID == "" || claims.ClientID == "" || claims.Subject != claims.CustomerID:
		return nil, ErrInvalidClaim
	}

	return claims, nil
}

// ExtractTokenFromHeader returns the credentials of a Bearer authorization
// header. The scheme is matched case-insensitively.
func ExtractTokenFromHeader(authHeader string) (string, error) {
	if authHeader == "" {
		return "", ErrMissingHeader
	}

	scheme, token, found := strings.Cut(strings.TrimSpace(authHeader), " ")
	if !found || !strings.EqualFold(scheme, tokenType) || strings.TrimSpace(token) == "" {
		return "", ErrBadScheme
	}

	return strings.TrimSpace(token), nil
}
