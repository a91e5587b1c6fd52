package utils

import (
	"mindcheck-service/internal/pkg/dto/requests"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeCreateUserRequest(t *testing.T) {
	t.Run("Email and role are normalized", func(t *testing.T) {
		request := &requests.CreateUser{
			FirstName: "  Ada ",
			Email:     "  ADA@EXAMPLE.COM  ",
			Role:      " Patient ",
			Gender:    "Female",
		}

		SanitizeCreateUserRequest(request)

		assert.Equal(t, "Ada", request.FirstName)
		assert.Equal(t, "ada@example.com", request.Email, "email should be lowercase and trimmed")
		assert.Equal(t, "patient", request.Role)
		assert.Equal(t, "female", request.Gender)
	})
}

func TestSanitizeUpdateUserRequest(t *testing.T) {
	email := " Someone@Example.org "
	lastName := "  Lovelace"
	request := &requests.UpdateUser{Email: &email, LastName: &lastName}

	SanitizeUpdateUserRequest(request)

	assert.Equal(t, "someone@example.org", *request.Email)
	assert.Equal(t, "Lovelace", *request.LastName)
	assert.Nil(t, request.FirstName, "absent fields stay absent")
}

func TestSanitizeSubmitScreeningRequest(t *testing.T) {
	request := &requests.SubmitScreening{
		AssessmentID: " 65f1c0ffee00000000000001 ",
		Answers:      []requests.Answer{{QuestionID: " feelingNervous "}},
	}

	SanitizeSubmitScreeningRequest(request)

	assert.Equal(t, "65f1c0ffee00000000000001", request.AssessmentID)
	assert.Equal(t, "feelingNervous", request.Answers[0].QuestionID)
}

func TestCapitalizeFirst(t *testing.T) {
	assert.Equal(t, "Stress", CapitalizeFirst("stress"))
	assert.Equal(t, "Ptsd", CapitalizeFirst("ptsd"))
	assert.Equal(t, "", CapitalizeFirst(""))
}
