package models

import "time"

type AssessmentQuestion struct {
	QuestionID   string `bson:"questionId"`
	Number       int    `bson:"number"`
	QuestionText string `bson:"questionText"`
	Criterion    string `bson:"criterion,omitempty"`
	Score        int    `bson:"score"`
}

type PreAssessmentResponses struct {
	Consent               string `bson:"consent"`
	MentalHealthDiagnosis string `bson:"mentalHealthDiagnosis"`
	PastChallenges        string `bson:"pastChallenges"`
	CurrentTreatment      string `bson:"currentTreatment"`
	PreviousTherapy       string `bson:"previousTherapy"`
	Medications           string `bson:"medications"`
	PrimaryPhysician      string `bson:"primaryPhysician"`
	Insurance             string `bson:"insurance"`
}

type PTSDCriteria struct {
	B bool `bson:"criteriaB"`
	C bool `bson:"criteriaC"`
	D bool `bson:"criteriaD"`
	E bool `bson:"criteriaE"`
}

// Assessment is one questionnaire taken by a user. Score related fields are
// only set once Status is completed.
type Assessment struct {
	ID                string                  `bson:"_id,omitempty"`
	UserID            string                  `bson:"userId"`
	AssessmentType    string                  `bson:"assessmentType"`
	Instrument        string                  `bson:"instrument,omitempty"`
	Status            string                  `bson:"status"`
	Questions         []AssessmentQuestion    `bson:"questions,omitempty"`
	Responses         *PreAssessmentResponses `bson:"responses,omitempty"`
	Score             *int                    `bson:"score,omitempty"`
	MaxScore          int                     `bson:"maxScore,omitempty"`
	NormalizedScore   *int                    `bson:"normalizedScore,omitempty"`
	Severity          string                  `bson:"severity,omitempty"`
	ClinicalThreshold string                  `bson:"clinicalThreshold,omitempty"`
	MeetsThreshold    *bool                   `bson:"meetsThreshold,omitempty"`
	Criteria          *PTSDCriteria           `bson:"criteria,omitempty"`
	StartedAt         time.Time               `bson:"startedAt"`
	CompletedAt       *time.Time              `bson:"completedAt,omitempty"`
	TimeModel         `bson:",inline"`
}

func (a *Assessment) IsCompleted() bool {
	return a.Status == "completed"
}

// AssessmentFilter narrows assessment queries. Empty fields match anything.
type AssessmentFilter struct {
	UserID         string
	AssessmentType string
	Status         string
	// Limit of zero returns every match.
	Limit int64
}
