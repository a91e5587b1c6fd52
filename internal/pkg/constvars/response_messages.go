package constvars

const (
	ResponseUnknown = "unknown"
	ResponseSuccess = "success"
	ResponseError   = "error"

	// Users
	CreateUserSuccessMessage = "user created successfully"
	UpdateUserSuccessMessage = "user updated successfully"
	DeleteUserSuccessMessage = "user deleted successfully"
	GetUserSuccessMessage    = "get user successfully"
	GetUsersSuccessMessage   = "get users successfully"
	GetProfileSuccessMessage = "get profile successfully"

	// Auth
	LoginSuccessMessage  = "successfully login"
	LogoutSuccessMessage = "successfully logout"

	// Assessments
	CreateAssessmentSuccessMessage    = "assessment started successfully"
	UpdateAssessmentSuccessMessage    = "assessment updated successfully"
	DeleteAssessmentSuccessMessage    = "assessment deleted successfully"
	GetAssessmentSuccessMessage       = "get assessment successfully"
	GetAssessmentsSuccessMessage      = "get assessments successfully"
	GetAssessmentStatusSuccessMessage = "get assessment status successfully"
	GetQuestionsSuccessMessage        = "get questions successfully"
	SubmitAssessmentSuccessMessage    = "assessment submitted successfully"

	// Notifications
	CreateNotificationSuccessMessage = "notification created successfully"
	UpdateNotificationSuccessMessage = "notification updated successfully"
	DeleteNotificationSuccessMessage = "notification deleted successfully"
	GetNotificationSuccessMessage    = "get notification successfully"
	GetNotificationsSuccessMessage   = "get notifications successfully"

	// Doctor
	GetPatientsSuccessMessage       = "get patients successfully"
	GetPatientDetailSuccessMessage  = "get patient detail successfully"
	GetPatientSummarySuccessMessage = "get patient summary successfully"
	ExportPatientReportSuccessMsg   = "patient report exported successfully"
)

const (
	NotificationMessageResultReadyFormat = "Your %s results are ready: %s"
	NotificationMessageReminderFormat    = "Please complete your %s"
	AISummaryFallbackMessage             = "Unable to generate AI summary at this time. Please try again later."
)
