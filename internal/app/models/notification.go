package models

type Notification struct {
	ID           string `bson:"_id,omitempty"`
	UserID       string `bson:"userId"`
	Type         string `bson:"type"`
	Message      string `bson:"message"`
	Read         bool   `bson:"read"`
	AssessmentID string `bson:"assessmentId,omitempty"`
	TimeModel    `bson:",inline"`
}
