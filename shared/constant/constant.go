package constant

import (
	"time"
)

const (
	ContextGuest = "guest"
)

// Context key types to avoid collisions
type contextKey string

const (
	ContextKeyUserID   contextKey = "user_id"
	ContextKeyUserName contextKey = "user_name"
	ContextKeyUserRole contextKey = "user_role"
	ContextKeyTokenID  contextKey = "token_id"
)

const (
	RolePatient      = "Patient"
	RoleDoctor       = "Doctor"
	RoleAdmin        = "Admin"
	RoleManager      = "Manager"
	RoleNurse        = "Nurse"
	RoleCleaner      = "Cleaner"
	RoleReceptionist = "Receptionist"
)

var Roles = []string{RolePatient, RoleDoctor, RoleAdmin, RoleManager, RoleNurse, RoleCleaner, RoleReceptionist}

const (
	RequestParamPage    = "page"
	RequestParamLimit   = "limit"
	RequestParamSortBy  = "sort_by"
	RequestParamSortDir = "sort_dir"
)

const (
	RequestParamID       = "id"
	RequestParamUserName = "userName"
	RequestParamLocation = "location"
	// legacy name used by older clients for the same "lon,lat" pair
	RequestParamUserLocation = "userLocation"
	RequestMaxMemory         = 10 << 20 // 10 MB
)

const (
	RequestParamHospitalID     = "hospitalId"
	RequestParamSpecialization = "specialization"
	RequestParamStatus         = "status"
	RequestParamRoomType       = "roomType"
	RequestParamRole           = "role"
)

const (
	DefaultValuePage    = 1
	DefaultValueLimit   = 10
	DefaultValueSortBy  = "created_at"
	DefaultValueSortDir = "DESC"
)

const (
	FieldCreatedAt  = "created_at"
	FieldCreatedBy  = "created_by"
	FieldModifiedAt = "modified_at"
	FieldModifiedBy = "modified_by"
)

const (
	PqErrorCodeCheckViolation  = "23514"
	PqErrorCodeUniqueViolation = "23505"
	PqErrorCodeFkViolation     = "23503"
)

const (
	DateFormat = time.RFC3339
)

const (
	MinutesToSeconds = 60
)

const (
	OtelServiceScopeName    = "service"
	OtelRepositoryScopeName = "repository"
	OtelHandlerScopeName    = "handler"
	OtelEventScopeName      = "event"
	OtelExternalScopeName   = "external"

	OtelQueryAttributeKey   = "query"
	OtelS3ScopeName         = "s3"
	OtelKafkaScopeName      = "kafka"
	OtelBroadcastScopeName  = "broadcast"
	OtelWebsocketScopeName  = "websocket"
	OtelRowsAffectedAttrKey = "rows_affected"
)

const (
	RequestHeaderAuthorization      = "Authorization"
	RequestHeaderContentType        = "Content-Type"
	RequestHeaderRateLimit          = "X-RateLimit-Limit"
	RequestHeaderRateLimitRemaining = "X-RateLimit-Remaining"
	RequestHeaderRateLimitWindow    = "X-RateLimit-Window"
	RequestHeaderRequestID          = "X-Request-ID"
	RequestHeaderAPIKey             = "X-API-Key"
)

const (
	ContentTypeJSON              = "application/json"
	ContentTypeFormURLEncoded    = "application/x-www-form-urlencoded"
	ContentTypeMultipartFormData = "multipart/form-data"
	FormFile                     = "file"
)

const (
	ResponseErrorInternal             = "internal server error"
	ResponseErrorPrepareShutdown      = "SERVER PREPARING TO SHUT DOWN"
	ResponseErrorUnhealthy            = "SERVER UNHEALTHY"
	ResponseErrorRequestLimitExceeded = "REQUEST LIMIT EXCEEDED"
)

const (
	ServerEnvDevelopment = "development"
	ServerEnvProduction  = "production"
)

const (
	Asterix = "*"
	Empty   = ""
)
