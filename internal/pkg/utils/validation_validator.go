package utils

import (
	"mindcheck-service/internal/pkg/constvars"
	"reflect"
	"regexp"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

var (
	specialCharRegex = regexp.MustCompile(constvars.RegexContainAtLeastOneSpecialChar)
	uppercaseRegex   = regexp.MustCompile(constvars.RegexContainAtLeastOneUppercase)
	phoneNumberRegex = regexp.MustCompile(constvars.RegexPhoneNumberGeneral)
	dateRegex        = regexp.MustCompile(constvars.RegexDateYYYYMMDD)
)

func init() {
	validate = validator.New()
	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return field.Name
		}
		return name
	})
	validate.RegisterValidation("password", validatePassword)
	validate.RegisterValidation("role_type", validateRoleType)
	validate.RegisterValidation("gender_type", validateGenderType)
	validate.RegisterValidation("assessment_type", validateAssessmentType)
	validate.RegisterValidation("notification_type", validateNotificationType)
	validate.RegisterValidation("phone_number", validatePhoneNumber)
	validate.RegisterValidation("date_of_birth", validateDateOfBirth)
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

func validatePassword(fl validator.FieldLevel) bool {
	password := fl.Field().String()
	return len(password) >= 8 && specialCharRegex.MatchString(password) && uppercaseRegex.MatchString(password)
}

func validateRoleType(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	return value == constvars.RoleDoctor || value == constvars.RolePatient
}

func validateGenderType(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case constvars.GenderMale, constvars.GenderFemale, constvars.GenderOther:
		return true
	}
	return false
}

func validateAssessmentType(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "preassessment", "stress", "anxiety", "ptsd":
		return true
	}
	return false
}

func validateNotificationType(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	return value == constvars.NotificationTypeAssessmentReminder || value == constvars.NotificationTypeResultReady
}

func validatePhoneNumber(fl validator.FieldLevel) bool {
	return phoneNumberRegex.MatchString(fl.Field().String())
}

func validateDateOfBirth(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if !dateRegex.MatchString(value) {
		return false
	}
	date, err := time.Parse(constvars.DateLayoutYYYYMMDD, value)
	if err != nil {
		return false
	}
	return date.Before(time.Now())
}
