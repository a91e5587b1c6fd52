package responses

import "time"

type AssessmentQuestion struct {
	QuestionID   string `json:"questionId"`
	Number       int    `json:"number"`
	QuestionText string `json:"questionText"`
	Criterion    string `json:"criterion,omitempty"`
	Score        int    `json:"score"`
}

type PTSDCriteria struct {
	CriteriaB bool `json:"criteriaB"`
	CriteriaC bool `json:"criteriaC"`
	CriteriaD bool `json:"criteriaD"`
	CriteriaE bool `json:"criteriaE"`
}

type Assessment struct {
	ID                string                 `json:"id"`
	UserID            string                 `json:"userId"`
	AssessmentType    string                 `json:"assessmentType"`
	Instrument        string                 `json:"instrument,omitempty"`
	Status            string                 `json:"status"`
	Questions         []AssessmentQuestion   `json:"questions,omitempty"`
	Responses         map[string]interface{} `json:"responses,omitempty"`
	Score             *int                   `json:"score,omitempty"`
	MaxScore          int                    `json:"maxScore,omitempty"`
	NormalizedScore   *int                   `json:"normalizedScore,omitempty"`
	Severity          string                 `json:"severity,omitempty"`
	ClinicalThreshold string                 `json:"clinicalThreshold,omitempty"`
	MeetsThreshold    *bool                  `json:"meetsThreshold,omitempty"`
	Criteria          *PTSDCriteria          `json:"criteria,omitempty"`
	StartedAt         time.Time              `json:"startedAt"`
	CompletedAt       *time.Time             `json:"completedAt,omitempty"`
}

// AssessmentStatus maps "1".."4" (pre, stress, anxiety, ptsd) to a status.
type AssessmentStatus map[string]string

type Question struct {
	QuestionID   string `json:"questionId"`
	Number       int    `json:"number"`
	QuestionText string `json:"questionText"`
	Criterion    string `json:"criterion,omitempty"`
}

type Questionnaire struct {
	AssessmentType string     `json:"assessmentType"`
	Instrument     string     `json:"instrument"`
	MinValue       int        `json:"minValue"`
	MaxValue       int        `json:"maxValue"`
	MaxScore       int        `json:"maxScore"`
	Questions      []Question `json:"questions"`
}

type PreAssessmentQuestion struct {
	ID           string   `json:"id"`
	QuestionText string   `json:"questionText"`
	QuestionType string   `json:"questionType"`
	Options      []string `json:"options,omitempty"`
	Required     bool     `json:"required"`
	Order        int      `json:"order"`
}
