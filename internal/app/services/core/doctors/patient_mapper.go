package doctors

import (
	"mindcheck-service/internal/app/models"
	"mindcheck-service/internal/pkg/constvars"
	"mindcheck-service/internal/pkg/dto/responses"
	"mindcheck-service/internal/pkg/utils"
)

func patientName(user *models.User) string {
	if name := user.FullName(); name != "" {
		return name
	}
	return constvars.UnknownPatientName
}

func patientGender(user *models.User) string {
	if user.Gender == "" {
		return constvars.NotSpecified
	}
	return user.Gender
}

func scoreOf(assessment *models.Assessment) int {
	if assessment.Score == nil {
		return 0
	}
	return *assessment.Score
}

func severityOf(assessment *models.Assessment) string {
	if assessment.Severity == "" {
		return constvars.NotAvailable
	}
	return assessment.Severity
}

// groupByUser keeps the input order inside every group.
func groupByUser(assessments []models.Assessment) map[string][]models.Assessment {
	grouped := make(map[string][]models.Assessment)
	for _, assessment := range assessments {
		grouped[assessment.UserID] = append(grouped[assessment.UserID], assessment)
	}
	return grouped
}

// buildPatientOverview expects completed to be sorted newest first.
func buildPatientOverview(user *models.User, completed []models.Assessment, count int64) responses.PatientOverview {
	recent := make([]responses.RecentResult, 0, constvars.RecentResultsLimit)
	for i := range completed {
		if len(recent) == constvars.RecentResultsLimit {
			break
		}
		recent = append(recent, responses.RecentResult{
			Type:     utils.CapitalizeFirst(completed[i].AssessmentType) + constvars.AssessmentLabelSuffix,
			Score:    scoreOf(&completed[i]),
			Severity: severityOf(&completed[i]),
			Date:     completed[i].CompletedAt,
		})
	}

	overview := responses.PatientOverview{
		ID:              user.ID,
		Name:            patientName(user),
		Email:           user.Email,
		Gender:          patientGender(user),
		Phone:           user.PhoneNumber,
		DateOfBirth:     user.DateOfBirth,
		AssessmentCount: count,
		Status:          constvars.PatientStatusActive,
		RecentResults:   recent,
	}
	if len(completed) > 0 {
		overview.LastAssessment = completed[0].CompletedAt
	}
	return overview
}

func buildPatientDetail(user *models.User, completed []models.Assessment) *responses.PatientDetail {
	assessments := make([]responses.PatientAssessment, 0, len(completed))
	for i := range completed {
		assessments = append(assessments, responses.PatientAssessment{
			ID:                completed[i].ID,
			Type:              completed[i].AssessmentType,
			Score:             scoreOf(&completed[i]),
			Severity:          severityOf(&completed[i]),
			ClinicalThreshold: completed[i].ClinicalThreshold,
			Criteria:          utils.BuildCriteriaResponse(completed[i].Criteria),
			CompletedAt:       completed[i].CompletedAt,
			Questions:         utils.BuildAssessmentQuestionsResponse(completed[i].Questions),
		})
	}

	status := constvars.PatientStatusInactive
	if len(assessments) > 0 {
		status = constvars.PatientStatusActive
	}

	detail := &responses.PatientDetail{
		ID:          user.ID,
		FirstName:   user.FirstName,
		LastName:    user.LastName,
		Email:       user.Email,
		Gender:      patientGender(user),
		Phone:       user.PhoneNumber,
		DateOfBirth: user.DateOfBirth,
		Status:      status,
		Assessments: assessments,
		LastLogin:   user.LastLoginAt,
	}
	if !user.CreatedAt.IsZero() {
		registeredAt := user.CreatedAt
		detail.RegisteredAt = &registeredAt
	}
	return detail
}
