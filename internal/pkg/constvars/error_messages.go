package constvars

// Validation messages mapper
var CustomValidationErrorMessages = map[string]string{
	"required": "is required",
	"email":    "must be a valid email",
	"alphanum": "must contain only alphanumeric characters",
	"min":      "must be at least %s characters long",
	"max":      "maximum at %s characters long",
	"eqfield":  "must match %s",
	"password": "must be at least 8 characters long, contain at least one special character, and one uppercase letter",
	"numeric":  "must be a number",
	"len":      "must be %s characters long",
	"oneof":    "must be one of [%s]",
	"url":      "must be a valid URL",
	"uuid4":    "must be a valid UUID",
	"dive":     "is invalid",
}

// Tags that require parameter substitution
var TagsWithParams = map[string]bool{
	"min":     true,
	"max":     true,
	"len":     true,
	"eqfield": true,
	"oneof":   true,
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
	ErrClientAccountDisabled               = "this account has been disabled"
	ErrClientDataNotFound                  = "the data you requested was not found"
	ErrClientEmergencyTokenMalformed       = "invalid emergency token format"
	ErrClientEmergencyTokenNotFound        = "emergency information not found"
	ErrClientMissingCapability             = "your facility account does not have this capability"
	ErrClientFileTooLarge                  = "the uploaded file exceeds the allowed size"
)

// Error messages for developers
const (
	ErrDevInvalidInput               = "invalid input"
	ErrDevValidationFailed           = "request validation failed"
	ErrDevCannotParseJSON            = "cannot parse JSON into struct or other data types"
	ErrDevCannotMarshalJSON          = "cannot convert struct or other data types to JSON"
	ErrDevCannotParseMultipartForm   = "cannot parse multipart form body"
	ErrDevServerDeadlineExceeded     = "server deadline exceeded when processing the request"
	ErrDevFailedToHashPassword       = "failed to hash password"
	ErrDevInvalidCredentials         = "invalid credentials"
	ErrDevAuthTokenMissing           = "authorization token is missing"
	ErrDevAuthTokenInvalid           = "authorization token is invalid"
	ErrDevAuthTokenInvalidOrExpired  = "authorization token is invalid or already expired"
	ErrDevAuthSigningMethod          = "unexpected JWT signing method"
	ErrDevAuthGenerateToken          = "failed to generate session token"
	ErrDevAuthRoleMismatch           = "request done by a subject with a different role"
	ErrDevAuthAccountDisabled        = "account is disabled, credential rejected"
	ErrDevAuthMissingCapability      = "facility account lacks the required capability"
	ErrDevEmailAlreadyExists         = "a record with this email already exists"
	ErrDevUserNotExists              = "user does not exist"
	ErrDevFacilityNotExists          = "facility does not exist"
	ErrDevDocumentNotFound           = "document not found"
	ErrDevEmergencyTokenMalformed    = "emergency token does not match the UUIDv4 shape"
	ErrDevEmergencyTokenNotFound     = "no active emergency token matches the given value"
	ErrDevEmergencyTokenGenerate     = "failed to generate a new emergency token"
	ErrDevDBFailedToFindDocument     = "database failed to find document"
	ErrDevDBFailedToInsertDocument   = "database failed to insert document"
	ErrDevDBFailedToUpdateDocument   = "database failed to update document"
	ErrDevDBFailedToDeleteDocument   = "database failed to delete document"
	ErrDevDBFailedToIterateDocuments = "database failed to iterate over documents"
	ErrDevDBStringNotObjectID        = "given string cannot be converted to ObjectID"
	ErrDevRedisGetData               = "redis failed to get data"
	ErrDevRedisSetData               = "redis failed to set data"
	ErrDevRedisDeleteData            = "redis failed to delete data"
	ErrDevRabbitMQPublish            = "rabbitmq failed to publish message to queue %s"
	ErrDevMinioCreateObject          = "minio failed to create object in bucket %s"
	ErrDevMinioGetObject             = "minio failed to fetch object from bucket %s"
	ErrDevMinioRemoveObject          = "minio failed to remove object from bucket %s"
	ErrDevSummarizerRequest          = "summarizer model request failed"
	ErrDevSummarizerTimeout          = "summarizer model call exceeded its deadline"
	ErrDevSummarizerThrottled        = "summarizer model call rejected by the outbound rate limiter"
)
