package constvars

const (
	LoggingRequestIDKey  = "request_id"
	LoggingMethodKey     = "method"
	LoggingEndpointKey   = "endpoint"
	LoggingRemoteAddrKey = "remote_addr"
	LoggingUserAgentKey  = "user_agent"
	LoggingStatusCodeKey = "status_code"
	LoggingDurationKey   = "duration"
	LoggingSuccessKey    = "success"

	LoggingRedisKey              = "redis_key"
	LoggingLockValueKey          = "lock_value"
	LoggingLockExpirationTimeKey = "lock_expiration_time"

	LoggingUserIDKey         = "user_id"
	LoggingPatientIDKey      = "patient_id"
	LoggingDoctorIDKey       = "doctor_id"
	LoggingRequestEntityKey  = "therapy_request_id"
	LoggingFeedbackIDKey     = "feedback_id"
	LoggingPrescriptionIDKey = "prescription_id"
	LoggingNotificationIDKey = "notification_id"
)
