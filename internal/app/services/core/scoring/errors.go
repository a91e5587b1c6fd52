package scoring

import "errors"

var (
	// ErrIncompleteSubmission is returned when at least one question of the
	// definition has no answer.
	ErrIncompleteSubmission = errors.New("incomplete submission")

	// ErrInvalidAnswerValue is returned when an answer is outside the
	// definition's scale, references an unknown question or repeats a question.
	ErrInvalidAnswerValue = errors.New("invalid answer value")

	// ErrUnknownAssessmentType is returned for a type with no score table.
	ErrUnknownAssessmentType = errors.New("unknown assessment type")

	// ErrConsentRequired is returned when a pre-assessment form is submitted
	// without consent.
	ErrConsentRequired = errors.New("consent is required")
)
