package constants

const (
	// Environment constants
	EnvDevelopment = "development"
	EnvTest        = "test"
	EnvProduction  = "production"

	// Default pagination
	DefaultPage     = 1
	DefaultPageSize = 20
	MaxPageSize     = 100

	// HTTP headers
	HeaderContentType      = "Content-Type"
	HeaderAuthorization    = "Authorization"
	HeaderXRequestID       = "X-Request-ID"
	HeaderWebhookSignature = "Aula-Webhook-Signature"

	// Content types
	ContentTypeJSON = "application/json"

	// Context keys
	ContextKeyUserID        = "user_id"
	ContextKeyUserUUID      = "user_uuid"
	ContextKeyUserRole      = "user_role"
	ContextKeyAdminOverride = "admin_override"
	ContextKeyRequestID     = "request_id"

	// Database table names
	TableUsers         = "users"
	TableSubscriptions = "subscriptions"
	TablePayments      = "payment_records"
	TableWebhookEvents = "webhook_events"
	TableNotifications = "notifications"

	// Error messages
	ErrMsgInternalServerError = "Internal server error occurred"
	ErrMsgResourceNotFound    = "Resource not found"
	ErrMsgUnauthorized        = "Unauthorized access"
	ErrMsgForbidden           = "Access forbidden"
	ErrMsgValidationFailed    = "Validation failed"
)
