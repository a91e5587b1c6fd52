package utils

import (
	"mindcheck-service/internal/pkg/dto/requests"
	"strings"
)

func sanitizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func trimPointer(value *string) {
	if value != nil {
		*value = strings.TrimSpace(*value)
	}
}

func SanitizeLoginRequest(input *requests.Login) {
	input.Email = sanitizeEmail(input.Email)
}

func SanitizeCreateUserRequest(input *requests.CreateUser) {
	input.FirstName = strings.TrimSpace(input.FirstName)
	input.LastName = strings.TrimSpace(input.LastName)
	input.Email = sanitizeEmail(input.Email)
	input.Role = strings.ToLower(strings.TrimSpace(input.Role))
	input.Gender = strings.ToLower(strings.TrimSpace(input.Gender))
	input.DateOfBirth = strings.TrimSpace(input.DateOfBirth)
	input.PhoneNumber = strings.TrimSpace(input.PhoneNumber)
}

func SanitizeUpdateUserRequest(input *requests.UpdateUser) {
	trimPointer(input.FirstName)
	trimPointer(input.LastName)
	trimPointer(input.DateOfBirth)
	trimPointer(input.PhoneNumber)
	if input.Email != nil {
		*input.Email = sanitizeEmail(*input.Email)
	}
	if input.Gender != nil {
		*input.Gender = strings.ToLower(strings.TrimSpace(*input.Gender))
	}
}

func SanitizeSubmitScreeningRequest(input *requests.SubmitScreening) {
	input.AssessmentID = strings.TrimSpace(input.AssessmentID)
	for i := range input.Answers {
		input.Answers[i].QuestionID = strings.TrimSpace(input.Answers[i].QuestionID)
	}
}

func SanitizeSubmitPreAssessmentRequest(input *requests.SubmitPreAssessment) {
	input.Consent = strings.TrimSpace(input.Consent)
	input.MentalHealthDiagnosis = strings.TrimSpace(input.MentalHealthDiagnosis)
	input.PastChallenges = strings.TrimSpace(input.PastChallenges)
	input.CurrentTreatment = strings.TrimSpace(input.CurrentTreatment)
	input.PreviousTherapy = strings.TrimSpace(input.PreviousTherapy)
	input.Medications = strings.TrimSpace(input.Medications)
	input.PrimaryPhysician = strings.TrimSpace(input.PrimaryPhysician)
	input.Insurance = strings.TrimSpace(input.Insurance)
}

func SanitizeCreateNotificationRequest(input *requests.CreateNotification) {
	input.UserID = strings.TrimSpace(input.UserID)
	input.Message = strings.TrimSpace(input.Message)
	input.AssessmentID = strings.TrimSpace(input.AssessmentID)
}

// CapitalizeFirst upper-cases the first letter, used for assessment labels.
func CapitalizeFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
