package scoring

import (
	"fmt"
	"math"
)

// Answer is one (questionId, value) pair. A nil Value means the question was
// shown but not answered yet.
type Answer struct {
	QuestionID string `json:"questionId"`
	Value      *int   `json:"value"`
}

// Int returns a pointer to v, handy when building answers by hand.
func Int(v int) *int {
	return &v
}

// Answers builds an answer set from positional values in definition order.
func Answers(def Definition, values ...int) []Answer {
	answers := make([]Answer, 0, len(values))
	for i, v := range values {
		if i >= len(def.Questions) {
			break
		}
		answers = append(answers, Answer{QuestionID: def.Questions[i].ID, Value: Int(v)})
	}
	return answers
}

// QuestionScore is the per-question breakdown kept on a result.
type QuestionScore struct {
	Question
	Value int `json:"score"`
}

// Aggregate validates answers against def and returns the raw total with the
// per-question breakdown in definition order. Completeness is checked before
// any value is validated.
func Aggregate(def Definition, answers []Answer) (int, []QuestionScore, error) {
	byID := make(map[string]Answer, len(answers))
	seen := make(map[string]int, len(answers))
	for _, answer := range answers {
		seen[answer.QuestionID]++
		if answer.Value != nil {
			byID[answer.QuestionID] = answer
		}
	}

	for _, question := range def.Questions {
		if _, ok := byID[question.ID]; !ok {
			return 0, nil, fmt.Errorf("%w: question %d (%s) is unanswered", ErrIncompleteSubmission, question.Number, question.ID)
		}
	}

	known := make(map[string]struct{}, len(def.Questions))
	for _, question := range def.Questions {
		known[question.ID] = struct{}{}
	}
	for _, answer := range answers {
		if _, ok := known[answer.QuestionID]; !ok {
			return 0, nil, fmt.Errorf("%w: question %q is not part of %s", ErrInvalidAnswerValue, answer.QuestionID, def.Instrument)
		}
		if seen[answer.QuestionID] > 1 {
			return 0, nil, fmt.Errorf("%w: question %q answered more than once", ErrInvalidAnswerValue, answer.QuestionID)
		}
	}

	total := 0
	breakdown := make([]QuestionScore, 0, len(def.Questions))
	for _, question := range def.Questions {
		value := *byID[question.ID].Value
		if value < def.MinValue || value > def.MaxValue {
			return 0, nil, fmt.Errorf("%w: question %d (%s) = %d, expected %d..%d",
				ErrInvalidAnswerValue, question.Number, question.ID, value, def.MinValue, def.MaxValue)
		}
		total += value
		breakdown = append(breakdown, QuestionScore{Question: question, Value: value})
	}

	return total, breakdown, nil
}

// Normalize scales raw to 0..100 against maxScore, rounding half up.
func Normalize(raw, maxScore int) int {
	if maxScore <= 0 {
		return 0
	}
	return int(math.Floor(float64(raw)/float64(maxScore)*100 + 0.5))
}
