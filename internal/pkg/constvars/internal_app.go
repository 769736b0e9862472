package constvars

type ContextKey string

const (
	CONTEXT_REQUEST_ID_KEY           ContextKey = "request_id"
	CONTEXT_IS_CLIENT_REQUEST_ID_KEY ContextKey = "is_client_request_id"
	CONTEXT_SUBJECT_ID_KEY           ContextKey = "subject_id"
	CONTEXT_SUBJECT_EMAIL_KEY        ContextKey = "subject_email"
	CONTEXT_SUBJECT_ROLE_KEY         ContextKey = "subject_role"
	CONTEXT_SUBJECT_CAPS_KEY         ContextKey = "subject_capabilities"
)

// Session roles. Facility covers both hospitals and pharmacies; the
// capability set on the account tells them apart functionally.
const (
	RolePatient  = "patient"
	RoleAdmin    = "admin"
	RoleFacility = "facility"
)

// Facility capabilities.
const (
	CapabilityPrescribe = "prescribe"
	CapabilityDispense  = "dispense"
)

const (
	MongoCollectionUsers           = "users"
	MongoCollectionFacilities      = "facilities"
	MongoCollectionStaff           = "staff"
	MongoCollectionMedicines       = "medicines"
	MongoCollectionPrescriptions   = "prescriptions"
	MongoCollectionDispenses       = "dispenses"
	MongoCollectionMedicalInfo     = "medical_info"
	MongoCollectionEmergencyTokens = "emergency_tokens"
	MongoCollectionLabReports      = "lab_reports"
)

const (
	SessionCookieName = "yuktah_session"
	BearerPrefix      = "Bearer "
)

const (
	EmergencyViewCachePrefix = "emergency:view:"
)

const (
	REQUEST_ID_PREFIX = "YKTH_SVC_"
)
