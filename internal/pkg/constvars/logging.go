package constvars

const (
	LoggingRequestIDKey      = "request_id"
	LoggingDataKey           = "data"
	LoggingSessionDataKey    = "session_data"
	LoggingQueryParamsKey    = "query_params"
	LoggingResponseKey       = "response"
	LoggingRequestKey        = "request"
	LoggingResponseLengthKey = "response_length"
	LoggingErrorCodeKey      = "error_code"
	LoggingErrorMessageKey   = "error_message"
	LoggingOperationKey      = "operation"
	LoggingDurationKey       = "duration"
	LoggingSuccessKey        = "success"
	LoggingMethodKey         = "method"
	LoggingEndpointKey       = "endpoint"
	LoggingRemoteAddrKey     = "remote_addr"
	LoggingUserAgentKey      = "user_agent"
	LoggingQueryKey          = "query"
	LoggingStatusCodeKey     = "status_code"
	LoggingUserIDKey         = "user_id"
	LoggingPatientIDKey      = "patient_id"
	LoggingAssessmentIDKey   = "assessment_id"
	LoggingAssessmentTypeKey = "assessment_type"
	LoggingNotificationIDKey = "notification_id"
	LoggingScoreKey          = "score"
	LoggingSeverityKey       = "severity"
	LoggingCountKey          = "count"
	LoggingQueueKey          = "queue"
	LoggingObjectNameKey     = "object_name"
)
