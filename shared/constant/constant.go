package constant

import (
	"time"
)

// Context key types to avoid collisions
type contextKey string

const (
	ContextKeyCustomerID   contextKey = "customer_id"
	ContextKeyCustomerKind contextKey = "customer_kind"
	ContextKeyClientID     contextKey = "client_id"
	ContextKeyTokenID      contextKey = "token_id"
)

const (
	RequestParamID         = "id"
	RequestParamTenantID   = "tenantID"
	RequestParamLocationID = "locationID"
	RequestParamMonth      = "month"
	RequestParamDate       = "date"
	RequestParamTimezone   = "tz"
)

const (
	DefaultAvailabilityWorkers  = 5
	DefaultAvailabilityCache    = 4096
	DefaultAvailabilityCacheTTL = 10 * time.Minute
	DefaultSessionTTL           = time.Hour
	DefaultTextMaxLength        = 300
	DefaultServiceName          = "test_drive"
	DefaultBookingChannel       = "web"
	DefaultListViewName         = "appointments_enriched"
)

const (
	PqErrorCodeUniqueViolation           = "23505"
	PqErrorCodeFkViolation               = "23503"
	PqErrorCodeCheckViolation            = "23514"
	PqErrorCodeExclusionViolation        = "23P01"
	PqErrorCodeUndefinedColumn           = "42703"
	PqErrorCodeUndefinedFunction         = "42883"
	PqErrorCodeInvalidTextRepresentation = "22P02"
	PqErrorCodeRaiseException            = "P0001"
	PqErrorCodeNoDataFound               = "P0002"
	PgrstErrorCodeFunctionNotFound       = "PGRST202"
)

const (
	DateOnlyFormat  = time.DateOnly
	MonthFormat     = "2006-01"
	MinuteKeyFormat = "2006-01-02T15:04"
)

const (
	OtelServiceScopeName    = "service"
	OtelRepositoryScopeName = "repository"
	OtelHandlerScopeName    = "handler"
	OtelEventScopeName      = "event"
	OtelExternalScopeName   = "external"

	OtelQueryAttributeKey = "query"
	OtelS3ScopeName       = "s3"
	OtelRPCScopeName      = "rpc"
)

const (
	RequestHeaderAuthorization      = "Authorization"
	RequestHeaderUserAgent          = "User-Agent"
	RequestHeaderContentType        = "Content-Type"
	RequestHeaderRateLimit          = "X-RateLimit-Limit"
	RequestHeaderRateLimitRemaining = "X-RateLimit-Remaining"
	RequestHeaderRateLimitWindow    = "X-RateLimit-Window"
	RequestHeaderForwardedFor       = "X-Forwarded-For"
	RequestHeaderRealIP             = "X-Real-IP"
	RequestHeaderRetryAfter         = "Retry-After"
)

const (
	ContentTypeJSON     = "application/json"
	ContentTypeCalendar = "text/calendar"
)

const (
	ResponseErrorPrepareShutdown      = "SERVER PREPARING TO SHUT DOWN"
	ResponseErrorUnhealthy            = "SERVER UNHEALTHY"
	ResponseErrorRequestLimitExceeded = "REQUEST LIMIT EXCEEDED"
)

const (
	ServerEnvDevelopment = "development"
	ServerEnvProduction  = "production"
)

const (
	Empty = ""
)
