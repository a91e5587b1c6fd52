package constvars

// Validation messages mapper
var CustomValidationErrorMessages = map[string]string{
	"required":          "is required",
	"email":             "must be a valid email",
	"alphanum":          "must contain only alphanumeric characters",
	"min":               "must be at least %s characters long",
	"max":               "maximum at %s characters long",
	"eqfield":           "must match %s",
	"password":          "must be at least 8 characters long, contain at least one special character, and one uppercase letter",
	"numeric":           "must be a number",
	"len":               "must be %s characters long",
	"oneof":             "must be one of [%s]",
	"gte":               "must be greater than or equal to %s",
	"lte":               "must be less than or equal to %s",
	"dive":              "is invalid",
	"required_with":     "is required when %s is present",
	"role_type":         "must be either 'doctor' or 'patient'",
	"gender_type":       "must be one of [male, female, other]",
	"assessment_type":   "must be one of [preassessment, stress, anxiety, ptsd]",
	"notification_type": "must be either 'assessmentReminder' or 'resultReady'",
	"phone_number":      "phone number must be in international format, e.g. +14155552671",
	"date_of_birth":     "must be a past date in YYYY-MM-DD format",
}

// Tags that require parameter substitution
var TagsWithParams = map[string]bool{
	"min":           true,
	"max":           true,
	"len":           true,
	"eqfield":       true,
	"gte":           true,
	"lte":           true,
	"oneof":         true,
	"required_with": true,
}

// Error messages for clients
const (
	ErrClientPasswordsDoNotMatch           = "passwords do not match"
	ErrClientEmailAlreadyExists            = "email already used"
	ErrClientCannotProcessRequest          = "failed to process your request"
	ErrClientInvalidEmailOrPassword        = "incorrect email or password"
	ErrClientSomethingWrongWithApplication = "there is something wrong with the application"
	ErrClientServerLongRespond             = "the app taking too long to respond"
	ErrClientNotAuthorized                 = "you can't access this feature"
	ErrClientNotLoggedIn                   = "your session ended, please login again"
	ErrClientNotFound                      = "the requested resource was not found"
	ErrClientTooManyRequests               = "too many requests, please slow down"
	ErrClientIncompleteSubmission          = "please answer every question before submitting"
	ErrClientInvalidAnswerValue            = "one or more answers are outside the allowed scale"
	ErrClientUnknownAssessmentType         = "this assessment type is not supported"
	ErrClientConsentRequired               = "Consent is required to submit the assessment"
	ErrClientAssessmentAlreadyCompleted    = "this assessment is already completed"
	ErrClientOnlyDoctors                   = "only doctors can access this feature"
)

// Error messages for developers
const (
	ErrDevInvalidInput             = "invalid input"
	ErrDevCannotParseJSON          = "cannot parse JSON into struct or other data types"
	ErrDevCannotMarshalJSON        = "cannot convert struct or other data types to JSON"
	ErrDevInvalidFormat            = "invalid %s format"
	ErrDevFailedToHashPassword     = "failed to hash password"
	ErrDevDocumentNotFound         = "document not found"
	ErrDevInvalidCredentials       = "invalid credentials"
	ErrDevUnauthorized             = "unauthorized access"
	ErrDevServerDeadlineExceeded   = "server deadline exceeded"
	ErrDevEmailAlreadyExists       = "email already exists"
	ErrDevUserNotExists            = "user not exists in our system"
	ErrDevPatientNotExists         = "patient not exists in our system"
	ErrDevAssessmentNotExists      = "assessment not exists in our system"
	ErrDevNotificationNotExists    = "notification not exists in our system"
	ErrDevRoleTypeDoesntMatch      = "invalid role type, request done by user with different role"
	ErrDevNotResourceOwner         = "request done by user who does not own the resource"
	ErrDevAssessmentTypeMismatch   = "assessment %s belongs to type %s, not %s"
	ErrDevAssessmentCompleted      = "assessment already completed and cannot change"
	ErrDevRateLimitExceeded        = "rate limit exceeded for %s"
	ErrDevIncompleteSubmission     = "incomplete submission"
	ErrDevInvalidAnswerValue       = "invalid answer value"
	ErrDevUnknownAssessmentType    = "unknown assessment type"
	ErrDevConsentRequired          = "pre-assessment consent missing"
	ErrDevValidationFailed         = "validation failed"
	ErrDevURLParamValidationFailed = "parameter %s validation failed"

	// Authentication messages
	ErrDevAuthSigningMethod         = "unexpected signing method"
	ErrDevAuthTokenInvalidOrExpired = "invalid or expired token"
	ErrDevAuthTokenInvalid          = "invalid token"
	ErrDevAuthTokenMissing          = "token missing"
	ErrDevAuthGenerateToken         = "failed to generate token"
	ErrDevAuthSessionNotFound       = "session not found or expired"

	// MongoDB messages
	ErrDevMongoDBFindDocument   = "failed to find document in collection %s"
	ErrDevMongoDBDecodeDocument = "failed to decode document in collection %s"
	ErrDevMongoDBInsertDocument = "failed to insert document in collection %s"
	ErrDevMongoDBUpdateDocument = "failed to update document in collection %s"
	ErrDevMongoDBDeleteDocument = "failed to delete document in collection %s"
	ErrDevMongoDBCountDocument  = "failed to count documents in collection %s"
	ErrDevMongoDBNotObjectID    = "the given id is not a valid ObjectID"

	// Redis messages
	ErrDevRedisSet    = "failed to set redis key"
	ErrDevRedisGet    = "failed to get redis key"
	ErrDevRedisDelete = "failed to delete redis key"

	// RabbitMQ messages
	ErrDevRabbitMQPublishMessage = "failed to publish message to queue %s"

	// Minio messages
	ErrDevMinioCreateObject  = "failed to create object %s on bucket %s"
	ErrDevMinioPresignObject = "failed to presign object %s on bucket %s"
	ErrDevReportTooLarge     = "report of %d bytes exceeds the %d bytes upload limit"

	// OpenAI messages
	ErrDevOpenAICompletion   = "failed to create chat completion"
	ErrDevOpenAIEmptyChoices = "chat completion returned no choices"
)
