package constant

import (
	"time"
)

const (
	ContextGuest = "guest"
	ContextAdmin = "admin"
)

// Context key types to avoid collisions
type contextKey string

const (
	ContextKeyIsAdmin contextKey = "is_admin"
)

const (
	RequestParamID       = "id"
	RequestParamCheckIn  = "checkIn"
	RequestParamCheckOut = "checkOut"
	RequestParamGuests   = "guests"
	RequestParamFrom     = "from"
	RequestParamTo       = "to"
	RequestParamStatus   = "status"
	RequestParamLimit    = "limit"
	RequestParamPage     = "page"
)

const (
	FieldCreatedAt  = "created_at"
	FieldCreatedBy  = "created_by"
	FieldModifiedAt = "modified_at"
	FieldModifiedBy = "modified_by"
)

const (
	PqErrorCodeUniqueViolation    = "23505"
	PqErrorCodeExclusionViolation = "23P01"
)

const (
	DateFormat   = time.RFC3339
	DayFormat    = time.DateOnly
	ExportFormat = "20060102-150405"
	HoursInDay   = 24
)

const (
	MinutesToSeconds = 60
)

const (
	OtelServiceScopeName    = "service"
	OtelRepositoryScopeName = "repository"
	OtelHandlerScopeName    = "handler"

	OtelQueryAttributeKey = "query"
	OtelS3ScopeName       = "s3"
	OtelMailScopeName     = "mail"
)

const (
	RequestHeaderUserAgent          = "User-Agent"
	RequestHeaderContentType        = "Content-Type"
	RequestHeaderContentDisposition = "Content-Disposition"
	RequestHeaderRateLimit          = "X-RateLimit-Limit"
	RequestHeaderRateLimitRemaining = "X-RateLimit-Remaining"
	RequestHeaderRateLimitWindow    = "X-RateLimit-Window"
	RequestHeaderForwardedFor       = "X-Forwarded-For"
	RequestHeaderRealIP             = "X-Real-IP"
)

const (
	ContentTypeJSON = "application/json"
	ContentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

const (
	ResponseErrorPrepareShutdown      = "SERVER PREPARING TO SHUT DOWN"
	ResponseErrorUnhealthy            = "SERVER UNHEALTHY"
	ResponseErrorRequestLimitExceeded = "REQUEST LIMIT EXCEEDED"
	ResponseErrorInternal             = "internal server error"
)

const (
	ServerEnvDevelopment = "development"
	ServerEnvProduction  = "production"
)

const (
	CacheKeyRooms   = "rooms"
	CacheKeySession = "session"
	CacheKeyLimiter = "limiter"
)

const (
	Empty = ""
	Colon = ":"
)
