package requests

import "github.com/goccy/go-json"

type CreateAssessment struct {
	AssessmentType string `json:"assessmentType" validate:"required,assessment_type"`
}

type UpdateAssessment struct {
	AssessmentID string `json:"-"`
	Status       string `json:"status" validate:"required,oneof=pending inprogress"`
}

// Answer keeps Value as a raw number so a fractional value reaches the
// scoring engine as an invalid answer instead of failing the decode.
type Answer struct {
	QuestionID string       `json:"questionId"`
	Value      *json.Number `json:"value"`
}

// SubmitScreening carries a stress, anxiety or ptsd answer set. Range and
// completeness are checked by the scoring engine, so an empty set is valid
// here.
type SubmitScreening struct {
	AssessmentType string   `json:"-"`
	AssessmentID   string   `json:"assessmentId" validate:"omitempty,len=24,hexadecimal"`
	Answers        []Answer `json:"answers"`
}

type SubmitPreAssessment struct {
	Consent               string `json:"consent" validate:"required"`
	MentalHealthDiagnosis string `json:"mentalHealthDiagnosis" validate:"required"`
	PastChallenges        string `json:"pastChallenges" validate:"required"`
	CurrentTreatment      string `json:"currentTreatment" validate:"required"`
	PreviousTherapy       string `json:"previousTherapy" validate:"required"`
	Medications           string `json:"medications" validate:"required"`
	PrimaryPhysician      string `json:"primaryPhysician" validate:"required"`
	Insurance             string `json:"insurance" validate:"required"`
}
