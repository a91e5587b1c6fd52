package constvars

type ContextKey string

const (
	CONTEXT_REQUEST_ID_KEY           ContextKey = "request_id"
	CONTEXT_SESSION_DATA_KEY         ContextKey = "session_data"
	CONTEXT_IS_CLIENT_REQUEST_ID_KEY ContextKey = "is_client_request_id"
)

const (
	REQUEST_ID_PREFIX = "MNDCHK_SVC_"
)

const (
	RoleDoctor  = "doctor"
	RolePatient = "patient"
)

const (
	GenderMale   = "male"
	GenderFemale = "female"
	GenderOther  = "other"
)

const (
	MongoCollectionUsers                  = "users"
	MongoCollectionAssessments            = "assessments"
	MongoCollectionNotifications          = "notifications"
	MongoCollectionPreAssessmentQuestions = "pre_assessment_questions"
)

const (
	AssessmentStatusPending    = "pending"
	AssessmentStatusInProgress = "inprogress"
	AssessmentStatusCompleted  = "completed"
)

// Keys of the per-user status map, in the order patients take them.
const (
	AssessmentStatusKeyPre     = "1"
	AssessmentStatusKeyStress  = "2"
	AssessmentStatusKeyAnxiety = "3"
	AssessmentStatusKeyPTSD    = "4"
)

const (
	NotificationTypeAssessmentReminder = "assessmentReminder"
	NotificationTypeResultReady        = "resultReady"
)

const (
	PatientStatusActive   = "active"
	PatientStatusInactive = "inactive"
	NotSpecified          = "Not specified"
	NotAvailable          = "Not Available"
	UnknownPatientName    = "Unknown"
	RecentResultsLimit    = 3
	AssessmentLabelSuffix = " Assessment"
)

const (
	RedisSessionKeyPrefix   = "session:"
	RedisAISummaryKeyPrefix = "ai_summary:"
)

const (
	PreAssessmentQuestionTypeScale          = "scale"
	PreAssessmentQuestionTypeText           = "text"
	PreAssessmentQuestionTypeMultipleChoice = "multiple_choice"
)

const (
	ReportObjectPathFormat = "reports/%s/%s.json"
)
