package constvars

const (
	URLParamUserID         = "user_id"
	URLParamPatientID      = "patient_id"
	URLParamAssessmentID   = "assessment_id"
	URLParamAssessmentType = "assessment_type"
	URLParamNotificationID = "notification_id"
)

const (
	DateLayoutYYYYMMDD = "2006-01-02"
)
