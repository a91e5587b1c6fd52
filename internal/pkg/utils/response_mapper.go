package utils

import (
	"mindcheck-service/internal/app/models"
	"mindcheck-service/internal/pkg/dto/responses"
)

func BuildUserResponse(user *models.User) responses.User {
	return responses.User{
		ID:          user.ID,
		FirstName:   user.FirstName,
		LastName:    user.LastName,
		Email:       user.Email,
		Role:        user.Role,
		Gender:      user.Gender,
		DateOfBirth: user.DateOfBirth,
		PhoneNumber: user.PhoneNumber,
		CreatedAt:   user.CreatedAt,
		UpdatedAt:   user.UpdatedAt,
	}
}

func BuildUsersResponse(users []models.User) []responses.User {
	result := make([]responses.User, 0, len(users))
	for i := range users {
		result = append(result, BuildUserResponse(&users[i]))
	}
	return result
}

func BuildAssessmentQuestionsResponse(questions []models.AssessmentQuestion) []responses.AssessmentQuestion {
	if questions == nil {
		return nil
	}
	result := make([]responses.AssessmentQuestion, 0, len(questions))
	for _, q := range questions {
		result = append(result, responses.AssessmentQuestion{
			QuestionID:   q.QuestionID,
			Number:       q.Number,
			QuestionText: q.QuestionText,
			Criterion:    q.Criterion,
			Score:        q.Score,
		})
	}
	return result
}

func BuildCriteriaResponse(criteria *models.PTSDCriteria) *responses.PTSDCriteria {
	if criteria == nil {
		return nil
	}
	return &responses.PTSDCriteria{
		CriteriaB: criteria.B,
		CriteriaC: criteria.C,
		CriteriaD: criteria.D,
		CriteriaE: criteria.E,
	}
}

func buildPreAssessmentResponses(form *models.PreAssessmentResponses) map[string]interface{} {
	if form == nil {
		return nil
	}
	return map[string]interface{}{
		"consent":               form.Consent,
		"mentalHealthDiagnosis": form.MentalHealthDiagnosis,
		"pastChallenges":        form.PastChallenges,
		"currentTreatment":      form.CurrentTreatment,
		"previousTherapy":       form.PreviousTherapy,
		"medications":           form.Medications,
		"primaryPhysician":      form.PrimaryPhysician,
		"insurance":             form.Insurance,
	}
}

func BuildAssessmentResponse(assessment *models.Assessment) responses.Assessment {
	return responses.Assessment{
		ID:                assessment.ID,
		UserID:            assessment.UserID,
		AssessmentType:    assessment.AssessmentType,
		Instrument:        assessment.Instrument,
		Status:            assessment.Status,
		Questions:         BuildAssessmentQuestionsResponse(assessment.Questions),
		Responses:         buildPreAssessmentResponses(assessment.Responses),
		Score:             assessment.Score,
		MaxScore:          assessment.MaxScore,
		NormalizedScore:   assessment.NormalizedScore,
		Severity:          assessment.Severity,
		ClinicalThreshold: assessment.ClinicalThreshold,
		MeetsThreshold:    assessment.MeetsThreshold,
		Criteria:          BuildCriteriaResponse(assessment.Criteria),
		StartedAt:         assessment.StartedAt,
		CompletedAt:       assessment.CompletedAt,
	}
}

func BuildAssessmentsResponse(assessments []models.Assessment) []responses.Assessment {
	result := make([]responses.Assessment, 0, len(assessments))
	for i := range assessments {
		result = append(result, BuildAssessmentResponse(&assessments[i]))
	}
	return result
}

func BuildNotificationResponse(notification *models.Notification) responses.Notification {
	return responses.Notification{
		ID:           notification.ID,
		UserID:       notification.UserID,
		Type:         notification.Type,
		Message:      notification.Message,
		Read:         notification.Read,
		AssessmentID: notification.AssessmentID,
		CreatedAt:    notification.CreatedAt,
	}
}

func BuildNotificationsResponse(notifications []models.Notification) []responses.Notification {
	result := make([]responses.Notification, 0, len(notifications))
	for i := range notifications {
		result = append(result, BuildNotificationResponse(&notifications[i]))
	}
	return result
}

func BuildPreAssessmentQuestionsResponse(questions []models.PreAssessmentQuestion) []responses.PreAssessmentQuestion {
	result := make([]responses.PreAssessmentQuestion, 0, len(questions))
	for _, q := range questions {
		result = append(result, responses.PreAssessmentQuestion{
			ID:           q.ID,
			QuestionText: q.QuestionText,
			QuestionType: q.QuestionType,
			Options:      q.Options,
			Required:     q.Required,
			Order:        q.Order,
		})
	}
	return result
}
