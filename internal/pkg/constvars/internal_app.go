package constvars

type ContextKey string

const (
	CONTEXT_REQUEST_ID_KEY           ContextKey = "request_id"
	CONTEXT_AUTH_KEY                 ContextKey = "auth"
	CONTEXT_IS_CLIENT_REQUEST_ID_KEY ContextKey = "is_client_request_id"
)

const (
	REQUEST_ID_PREFIX = "TLMD_SVC_"
)

const (
	RoleTypePatient = "patient"
	RoleTypeDoctor  = "doctor"
)

const (
	MongoCollectionAppointments = "appointments"
	MongoCollectionDoctors      = "doctors"
	MongoCollectionPatients     = "patients"
)

const (
	AppPaginationUrlFormat = "%s?page=%d&page_size=%d"
)

const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)
