package responses

import "time"

type RecentResult struct {
	Type     string     `json:"type"`
	Score    int        `json:"score"`
	Severity string     `json:"severity"`
	Date     *time.Time `json:"date"`
}

type PatientOverview struct {
	ID              string         `json:"id"`
	Name            string         `json:"name"`
	Email           string         `json:"email"`
	Gender          string         `json:"gender"`
	Phone           string         `json:"phone"`
	DateOfBirth     string         `json:"dateOfBirth"`
	LastAssessment  *time.Time     `json:"lastAssessment"`
	AssessmentCount int64          `json:"assessmentCount"`
	Status          string         `json:"status"`
	RecentResults   []RecentResult `json:"recentResults"`
}

type PatientAssessment struct {
	ID                string               `json:"id"`
	Type              string               `json:"type"`
	Score             int                  `json:"score"`
	Severity          string               `json:"severity"`
	ClinicalThreshold string               `json:"clinicalThreshold,omitempty"`
	Criteria          *PTSDCriteria        `json:"criteria,omitempty"`
	CompletedAt       *time.Time           `json:"completedAt"`
	Questions         []AssessmentQuestion `json:"questions"`
}

type PatientDetail struct {
	ID           string              `json:"id"`
	FirstName    string              `json:"firstName"`
	LastName     string              `json:"lastName"`
	Email        string              `json:"email"`
	Gender       string              `json:"gender"`
	Phone        string              `json:"phone"`
	DateOfBirth  string              `json:"dateOfBirth"`
	Status       string              `json:"status"`
	Assessments  []PatientAssessment `json:"assessments"`
	RegisteredAt *time.Time          `json:"registeredAt"`
	LastLogin    *time.Time          `json:"lastLogin"`
}

type PatientSummary struct {
	Summary string `json:"summary"`
}

type PatientReport struct {
	ObjectName string    `json:"objectName"`
	URL        string    `json:"url"`
	ExpiresAt  time.Time `json:"expiresAt"`
}
