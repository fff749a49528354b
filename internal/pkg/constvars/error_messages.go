package constvars

// Validation messages mapper
var CustomValidationErrorMessages = map[string]string{
	"required": "is required",
	"min":      "must be at least %s characters long",
	"max":      "maximum at %s characters long",
	"numeric":  "must be a number",
	"oneof":    "must be one of [%s]",
	"gte":      "must be greater than or equal to %s",
	"lte":      "must be less than or equal to %s",
	"uuid":     "must be a valid UUID",
}

// Tags that require parameter substitution
var TagsWithParams = map[string]bool{
	"min":   true,
	"max":   true,
	"oneof": true,
	"gte":   true,
	"lte":   true,
}

// Error messages for clients
const (
	ErrClientCannotProcessRequest          = "failed to process your request"
	ErrClientSomethingWrongWithApplication = "there is something wrong with the application"
	ErrClientServerLongRespond             = "the app taking too long to respond"
	ErrClientInvalidResourcePayload        = "the resource payload is not valid"
	ErrClientResourceTypeMismatchFormat    = "resourceType must be %s"
	ErrClientInvalidGenderFormat           = "Invalid gender '%s' (allowed: male|female|other|unknown)"
	ErrClientInvalidDateShapeFormat        = "%s must be YYYY-MM-DD"
	ErrClientResourceNotFoundFormat        = "%s/%s is not known to this server"
	ErrClientStoreUnavailable              = "the resource store is currently unavailable"
)

// Error messages for developers
const (
	ErrDevInvalidInput               = "invalid input"
	ErrDevCannotParseJSON            = "cannot parse JSON into struct or other data types"
	ErrDevCannotMarshalJSON          = "cannot convert struct or other data types to JSON"
	ErrDevCannotParseQueryParam      = "cannot parse query parameter %s"
	ErrDevValidationFailed           = "validation failed"
	ErrDevURLParamIDValidationFailed = "parameter %s validation failed"
	ErrDevMissingRequestID           = "request id missing from request context"

	// Resource service messages
	ErrDevResourceTypeMismatch    = "payload resourceType does not match expected kind %s"
	ErrDevResourceValidationIssue = "resource validation reported issues: %s"
	ErrDevResourceNotFound        = "resource %s/%s not found in document engine"
	ErrDevEnumValueNotInSet       = "value %q is not in the administrative gender value set"
	ErrDevDateShapeRejected       = "date value for %s does not match YYYY-MM-DD"

	// Document engine messages
	ErrDevEngineUnavailable       = "document engine call failed"
	ErrDevEngineMalformedDocument = "document engine rejected or returned a malformed document"
	ErrDevEnginePutFailed         = "failed to persist document in engine"
	ErrDevEngineGetFailed         = "failed to fetch document from engine"
	ErrDevEngineSearchFailed      = "failed to search documents in engine"
	ErrDevEngineCountFailed       = "failed to count documents in engine"

	// Envelope messages
	ErrDevEnvelopeNormalization = "failed to normalize document metadata envelope"

	// Redis messages
	ErrDevRedisFailedToSetData = "redis client failed to set data"
	ErrDevRedisFailedToGetData = "redis client failed to get data with key: %s"
	ErrDevRedisFailedToDelete  = "redis client failed to delete data"

	// Messaging messages
	ErrDevRabbitMQPublishMessage = "failed to publish message to queue %s"

	// Minio messages
	ErrDevMinioFailedToCreateObject = "minio client failed to create object in bucket %s"
)
