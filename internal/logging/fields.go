package logging

// Field names shared by all log records.
const (
	FieldComponent  = "component"
	FieldRequestID  = "request_id"
	FieldClientIP   = "client_ip"
	FieldMethod     = "method"
	FieldPath       = "path"
	FieldStatusCode = "status_code"
	FieldDuration   = "duration_ms"
	FieldError      = "error"
	FieldOperation  = "operation"
	FieldResource   = "resource"
)

const (
	ComponentApp      = "app"
	ComponentHTTP     = "http"
	ComponentDatabase = "database"
	ComponentAdmin    = "admin"
)

const (
	OpList    = "list"
	OpCreate  = "create"
	OpUpdate  = "update"
	OpDelete  = "delete"
	OpMigrate = "migrate"
	OpSeed    = "seed"
)
