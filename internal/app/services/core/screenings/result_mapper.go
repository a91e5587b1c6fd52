package screenings

import (
	"errors"
	"fmt"
	"math"
	"mindcheck-service/internal/app/models"
	"mindcheck-service/internal/app/services/core/scoring"
	"mindcheck-service/internal/pkg/constvars"
	"mindcheck-service/internal/pkg/dto/requests"
	"mindcheck-service/internal/pkg/dto/responses"
	"mindcheck-service/internal/pkg/exceptions"
)

// toScoringAnswers converts decoded numbers to the engine's integer scale.
// A value that is not a whole number is reported as an invalid answer.
func toScoringAnswers(answers []requests.Answer) ([]scoring.Answer, error) {
	result := make([]scoring.Answer, 0, len(answers))
	for _, answer := range answers {
		converted := scoring.Answer{QuestionID: answer.QuestionID}
		if answer.Value != nil {
			value, err := answer.Value.Float64()
			if err != nil || value != math.Trunc(value) || math.Abs(value) > math.MaxInt32 {
				return nil, fmt.Errorf("%w: question %q = %s is not a whole number",
					scoring.ErrInvalidAnswerValue, answer.QuestionID, answer.Value.String())
			}
			converted.Value = scoring.Int(int(value))
		}
		result = append(result, converted)
	}
	return result, nil
}

// applyResult copies a scored outcome onto the stored record and marks it
// completed.
func applyResult(assessment *models.Assessment, result scoring.Result) {
	scale := scoring.Scale(result)
	if scale == nil {
		return
	}

	score := scale.RawScore
	completedAt := scale.CompletedAt()

	assessment.AssessmentType = scale.Type
	assessment.Instrument = scale.Instrument
	assessment.Status = constvars.AssessmentStatusCompleted
	assessment.Score = &score
	assessment.MaxScore = scale.MaxScore
	assessment.NormalizedScore = scale.NormalizedScore
	assessment.Severity = scale.Severity
	assessment.CompletedAt = &completedAt

	assessment.Questions = make([]models.AssessmentQuestion, 0, len(scale.Questions))
	for _, item := range scale.Questions {
		assessment.Questions = append(assessment.Questions, models.AssessmentQuestion{
			QuestionID:   item.ID,
			Number:       item.Number,
			QuestionText: item.Text,
			Criterion:    string(item.Criterion),
			Score:        item.Value,
		})
	}

	if pcl5, ok := result.(*scoring.PCL5Result); ok {
		meets := pcl5.MeetsThreshold
		assessment.ClinicalThreshold = pcl5.ClinicalThreshold
		assessment.MeetsThreshold = &meets
		assessment.Criteria = &models.PTSDCriteria{
			B: pcl5.Criteria.B,
			C: pcl5.Criteria.C,
			D: pcl5.Criteria.D,
			E: pcl5.Criteria.E,
		}
	}
}

func buildQuestionnaire(def scoring.Definition) *responses.Questionnaire {
	questions := make([]responses.Question, 0, len(def.Questions))
	for _, q := range def.Questions {
		questions = append(questions, responses.Question{
			QuestionID:   q.ID,
			Number:       q.Number,
			QuestionText: q.Text,
			Criterion:    string(q.Criterion),
		})
	}
	return &responses.Questionnaire{
		AssessmentType: def.Type,
		Instrument:     def.Instrument,
		MinValue:       def.MinValue,
		MaxValue:       def.MaxValue,
		MaxScore:       def.MaxScore,
		Questions:      questions,
	}
}

// translateScoringError turns engine sentinels into client facing errors.
func translateScoringError(err error) error {
	switch {
	case errors.Is(err, scoring.ErrIncompleteSubmission):
		return exceptions.ErrIncompleteSubmission(err)
	case errors.Is(err, scoring.ErrInvalidAnswerValue):
		return exceptions.ErrInvalidAnswerValue(err)
	case errors.Is(err, scoring.ErrUnknownAssessmentType):
		return exceptions.ErrUnknownAssessmentType(err)
	case errors.Is(err, scoring.ErrConsentRequired):
		return exceptions.ErrConsentRequired(err)
	default:
		return err
	}
}
