package requests

type CreateNotification struct {
	UserID       string `json:"userId" validate:"required"`
	Type         string `json:"type" validate:"required,notification_type"`
	Message      string `json:"message" validate:"required,max=500"`
	AssessmentID string `json:"assessmentId,omitempty"`
}

type UpdateNotification struct {
	NotificationID string  `json:"-"`
	Message        *string `json:"message" validate:"omitempty,max=500"`
	Read           *bool   `json:"read"`
}
