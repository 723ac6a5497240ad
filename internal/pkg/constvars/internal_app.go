package constvars

type ContextKey string

const (
	CONTEXT_REQUEST_ID_KEY   ContextKey = "request_id"
	CONTEXT_SESSION_DATA_KEY ContextKey = "session_data"
)

const (
	REQUEST_ID_PREFIX = "CLNC_SVC_"
)

const (
	AppPaginationUrlFormat = "%s?page=%d&page_size=%d"
)

const (
	URLParamPatientID      = "patientID"
	URLParamAppointmentID  = "appointmentID"
	URLParamPrescriptionID = "prescriptionID"
	URLParamLabTestID      = "labTestID"
	URLParamRole           = "role"
)

// DateOnlyLayout is the storage format for calendar-date fields
// (date_of_birth, card_expiry_date). Matches the ISO strings the
// collections were seeded with.
const DateOnlyLayout = "2006-01-02"
