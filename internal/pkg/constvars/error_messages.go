package constvars

// Validation messages mapper
var CustomValidationErrorMessages = map[string]string{
	"required": "is required",
	"email":    "must be a valid email",
	"min":      "must be at least %s characters long",
	"max":      "maximum at %s characters long",
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
	ErrClientNotAuthorized                 = "you can't access this feature"
	ErrClientNotLoggedIn                   = "your session ended, please login again"
	ErrClientInvalidEmailOrPassword        = "invalid email or password"
	ErrClientEmailAlreadyExists            = "email already used"
	ErrClientUserNotFound                  = "user not found"
	ErrClientTherapyRequestNotFound        = "therapy request not found"
	ErrClientRequestNoLongerAvailable      = "Request is no longer available"
	ErrClientFeedbackNotFound              = "feedback not found"
	ErrClientNotificationNotFound          = "notification not found"
)

// Error messages for developers
const (
	ErrDevCannotParseJSON            = "cannot parse JSON into struct or other data types"
	ErrDevCannotMarshalJSON          = "cannot convert struct or other data types to JSON"
	ErrDevValidationFailed           = "request validation failed"
	ErrDevURLParamIDValidationFailed = "url param %s is missing or invalid"
	ErrDevServerDeadlineExceeded     = "server deadline exceeded while processing request"
	ErrDevFailedToHashPassword       = "failed to hash password using bcrypt"
	ErrDevInvalidCredentials         = "credentials do not match any stored record"
	ErrDevEmailAlreadyExists         = "credential record already exists for email"
	ErrDevUserNotExists              = "user record not found in store"
	ErrDevTherapyRequestNotExists    = "therapy request record not found in store"
	ErrDevTherapyRequestNotPending   = "therapy request status guard rejected transition"
	ErrDevFeedbackNotExists          = "feedback record not found in store"
	ErrDevNotificationNotExists      = "notification record not found in store"
	ErrDevAuthTokenMissing           = "authorization token is missing from request"
	ErrDevAuthTokenInvalidOrExpired  = "authorization token is invalid or expired"
	ErrDevAuthGenerateToken          = "failed to sign session token"
	ErrDevIdentityMismatch           = "authenticated identity does not match requested resource owner"

	ErrDevRedisGet    = "redis failed to get value"
	ErrDevRedisSet    = "redis failed to set value"
	ErrDevRedisDelete = "redis failed to delete value"
	ErrDevRedisSetNX  = "redis failed to set value with NX"
	ErrDevRedisUnlock = "redis failed to release lock"
)
