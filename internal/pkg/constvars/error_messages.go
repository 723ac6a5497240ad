package constvars

// Client-facing messages
const (
	ErrClientCannotProcessRequest          = "failed to process your request"
	ErrClientSomethingWrongWithApplication = "there is something wrong with the application"
	ErrClientServerLongRespond             = "the app taking too long to respond"
	ErrClientNotAuthorized                 = "you can't access this feature"
	ErrClientNotLoggedIn                   = "your session ended, please login again"
	ErrClientInvalidEmailOrPassword        = "invalid email or password"
	ErrClientEmailAlreadyExists            = "email already used"
	ErrClientPatientIDAlreadyExists        = "patient ID already registered in this clinic"
	ErrClientPatientNotFound               = "patient not found"
	ErrClientCardNotUsable                 = "patient card is not currently valid"
	ErrClientCardSuspended                 = "patient card is suspended, contact an administrator"
	ErrClientRecordNotFound                = "record not found"
	ErrClientCorruptPatientRecord          = "patient record contains an invalid date, contact an administrator"
	ErrClientFileTooLarge                  = "the uploaded file exceeds the allowed size"
)

// Developer-facing messages
const (
	ErrDevInvalidInput             = "invalid input"
	ErrDevValidationFailed         = "validation failed"
	ErrDevCannotParseJSON          = "cannot parse JSON into struct or other data types"
	ErrDevCannotMarshalJSON        = "cannot convert struct or other data types to JSON"
	ErrDevCannotParseDate          = "cannot parse the requested date"
	ErrDevCannotParseMultipartForm = "cannot parse multipart form body"
	ErrDevURLParamIDMissing        = "url parameter %s is missing"
	ErrDevServerDeadlineExceeded   = "server deadline exceeded"
	ErrDevFileTooLarge             = "uploaded file exceeds the %d MB limit"

	ErrDevAuthSigningMethod         = "unexpected signing method"
	ErrDevAuthTokenMissing          = "token missing"
	ErrDevAuthTokenInvalid          = "invalid token"
	ErrDevAuthTokenInvalidOrExpired = "invalid or expired token"
	ErrDevAuthGenerateToken         = "failed to generate token"
	ErrDevAuthInvalidSession        = "invalid session"
	ErrDevInvalidCredentials        = "invalid credentials"
	ErrDevFailedToHashPassword      = "failed to hash password"
	ErrDevRoleNotAllowed            = "operation not allowed for role %s"
	ErrDevUserNotExists             = "user not exists in our system"
	ErrDevEmailAlreadyExists        = "email already exists"

	ErrDevPatientNotExists           = "patient not exists in our system"
	ErrDevCardFilterUnknown          = "unknown card state filter %q"
	ErrDevPatientIDAlreadyExists     = "clinic patient ID already exists"
	ErrDevPatientDateCorrupt         = "patient %s holds date field %q that does not parse as YYYY-MM-DD"
	ErrDevPatientCardNotUsable       = "patient card classified %s, not usable by clinical roles"
	ErrDevPatientCardSuspended       = "patient card is suspended"
	ErrDevRecordNotExists            = "requested document not exists in our system"
	ErrDevAssignedDoctorMismatch     = "patient is not assigned to the requesting doctor"
	ErrDevPrescriptionAlreadyHandled = "prescription already dispensed"
	ErrDevLabTestInvalidStateChange  = "lab test status transition not allowed"

	ErrDevDBFailedToInsertDocument   = "failed to insert document into database"
	ErrDevDBFailedToUpdateDocument   = "failed to update document into database"
	ErrDevDBFailedToFindDocument     = "failed when do find document on database"
	ErrDevDBFailedToIterateDocuments = "failed when iterating documents from database"
	ErrDevDBStringNotObjectID        = "given string cannot be converted to mongo ObjectID"

	ErrDevRedisSet       = "failed to set value on redis"
	ErrDevRedisGetNoData = "failed to get value with key %s on redis"
	ErrDevRedisDelete    = "failed to delete value on redis"

	ErrDevMinioUploadObject       = "failed to upload object to bucket %s"
	ErrDevQueuePublishMessage     = "failed to publish message to queue %s"
	ErrDevQueueChannelUnavailable = "failed to open channel on message broker"
)
