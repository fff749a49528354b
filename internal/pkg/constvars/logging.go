package constvars

const (
	LoggingRequestIDKey    = "request_id"
	LoggingMethodKey       = "method"
	LoggingEndpointKey     = "endpoint"
	LoggingRemoteAddrKey   = "remote_addr"
	LoggingUserAgentKey    = "user_agent"
	LoggingQueryKey        = "query"
	LoggingStatusCodeKey   = "status_code"
	LoggingDurationKey     = "duration"
	LoggingSuccessKey      = "success"
	LoggingErrorTypeKey    = "error_type"
	LoggingPatientIDKey    = "patient_id"
	LoggingResourceKindKey = "resource_kind"
	LoggingFilterKey       = "filter"
	LoggingTotalKey        = "total"
	LoggingEntryCountKey   = "entry_count"
	LoggingIssueCountKey   = "issue_count"
	LoggingQueueKey        = "queue"
	LoggingBucketKey       = "bucket"
	LoggingObjectNameKey   = "object_name"
	LoggingCacheKeyKey     = "cache_key"
)
