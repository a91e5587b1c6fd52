package responses

import "time"

type Notification struct {
	ID           string    `json:"id"`
	UserID       string    `json:"userId"`
	Type         string    `json:"type"`
	Message      string    `json:"message"`
	Read         bool      `json:"read"`
	AssessmentID string    `json:"assessmentId,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
}

// NotificationEvent is the message published to the notification queue.
type NotificationEvent struct {
	NotificationID string    `json:"notificationId"`
	UserID         string    `json:"userId"`
	Type           string    `json:"type"`
	Message        string    `json:"message"`
	AssessmentID   string    `json:"assessmentId,omitempty"`
	CreatedAt      time.Time `json:"createdAt"`
}
