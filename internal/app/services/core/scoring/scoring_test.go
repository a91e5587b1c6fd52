package scoring

import (
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedTime = time.Date(2024, 3, 1, 9, 30, 0, 0, time.UTC)

func mustLookup(t *testing.T, assessmentType string) Definition {
	t.Helper()
	def, ok := Lookup(assessmentType)
	require.True(t, ok, "definition for %s", assessmentType)
	return def
}

// valuesForScore spreads total over the definition's questions in order.
func valuesForScore(def Definition, total int) []int {
	values := make([]int, len(def.Questions))
	for i := range values {
		v := def.MaxValue
		if total < v {
			v = total
		}
		values[i] = v
		total -= v
	}
	return values
}

func TestDefinitions(t *testing.T) {
	tests := []struct {
		assessmentType string
		questions      int
		maxValue       int
		maxScore       int
	}{
		{TypeStress, 9, 3, 27},
		{TypeAnxiety, 7, 3, 21},
		{TypePTSD, 20, 4, 80},
	}

	for _, tt := range tests {
		t.Run(tt.assessmentType, func(t *testing.T) {
			def := mustLookup(t, tt.assessmentType)
			assert.Len(t, def.Questions, tt.questions)
			assert.Equal(t, 0, def.MinValue)
			assert.Equal(t, tt.maxValue, def.MaxValue)
			assert.Equal(t, tt.maxScore, def.MaxScore)
			assert.Equal(t, tt.questions*tt.maxValue, def.MaxScore)

			ids := make(map[string]struct{})
			for i, q := range def.Questions {
				assert.Equal(t, i+1, q.Number)
				assert.NotEmpty(t, q.Text)
				ids[q.ID] = struct{}{}
			}
			assert.Len(t, ids, tt.questions, "question ids must be unique")

			last := -1
			for _, band := range def.Bands {
				assert.Greater(t, band.Upper, last)
				last = band.Upper
			}
			assert.Equal(t, def.MaxScore, last, "bands must cover the full range")
		})
	}

	t.Run("pre-assessment has no score table", func(t *testing.T) {
		_, ok := Lookup(TypePreAssessment)
		assert.False(t, ok)
		assert.True(t, IsKnown(TypePreAssessment))
		assert.False(t, IsScored(TypePreAssessment))
	})

	t.Run("lookup returns a copy", func(t *testing.T) {
		def := mustLookup(t, TypeStress)
		def.Questions[0].Text = "changed"
		def.Bands[0].Label = "changed"
		again := mustLookup(t, TypeStress)
		assert.Equal(t, "Little interest or pleasure in doing things", again.Questions[0].Text)
		assert.Equal(t, "Minimal or no depression", again.Bands[0].Label)
	})
}

func TestPTSDQuestionCriteria(t *testing.T) {
	def := mustLookup(t, TypePTSD)
	counts := map[Criterion]int{}
	for _, q := range def.Questions {
		counts[q.Criterion]++
	}
	assert.Equal(t, map[Criterion]int{CriterionB: 5, CriterionC: 2, CriterionD: 7, CriterionE: 6}, counts)
	assert.Equal(t, CriterionB, def.Questions[4].Criterion)
	assert.Equal(t, CriterionC, def.Questions[5].Criterion)
	assert.Equal(t, CriterionD, def.Questions[7].Criterion)
	assert.Equal(t, CriterionE, def.Questions[14].Criterion)
}

func TestSeverityBoundaries(t *testing.T) {
	tests := []struct {
		assessmentType string
		score          int
		want           string
	}{
		{TypeStress, 0, "Minimal or no depression"},
		{TypeStress, 4, "Minimal or no depression"},
		{TypeStress, 5, "Mild depression"},
		{TypeStress, 9, "Mild depression"},
		{TypeStress, 10, "Moderate depression"},
		{TypeStress, 14, "Moderate depression"},
		{TypeStress, 15, "Moderately severe depression"},
		{TypeStress, 19, "Moderately severe depression"},
		{TypeStress, 20, "Severe depression"},
		{TypeStress, 27, "Severe depression"},
		{TypeAnxiety, 4, "Minimal anxiety"},
		{TypeAnxiety, 5, "Mild anxiety"},
		{TypeAnxiety, 9, "Mild anxiety"},
		{TypeAnxiety, 10, "Moderate anxiety"},
		{TypeAnxiety, 14, "Moderate anxiety"},
		{TypeAnxiety, 15, "Severe anxiety"},
		{TypeAnxiety, 21, "Severe anxiety"},
		{TypePTSD, 20, "Minimal symptoms"},
		{TypePTSD, 21, "Mild symptoms"},
		{TypePTSD, 40, "Mild symptoms"},
		{TypePTSD, 41, "Moderate symptoms"},
		{TypePTSD, 60, "Moderate symptoms"},
		{TypePTSD, 61, "Severe symptoms"},
		{TypePTSD, 80, "Severe symptoms"},
	}

	for _, tt := range tests {
		t.Run(tt.assessmentType+" "+tt.want, func(t *testing.T) {
			got, err := Severity(tt.assessmentType, tt.score)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got, "score %d", tt.score)

			// The same score reached through a full submission must agree.
			def := mustLookup(t, tt.assessmentType)
			result, err := Score(tt.assessmentType, Answers(def, valuesForScore(def, tt.score)...), fixedTime)
			require.NoError(t, err)
			scale := Scale(result)
			require.NotNil(t, scale)
			assert.Equal(t, tt.score, scale.RawScore)
			assert.Equal(t, tt.want, scale.Severity)
		})
	}

	t.Run("out of range score", func(t *testing.T) {
		_, err := Severity(TypeAnxiety, 22)
		assert.ErrorIs(t, err, ErrInvalidAnswerValue)
		_, err = Severity(TypeStress, -1)
		assert.ErrorIs(t, err, ErrInvalidAnswerValue)
	})

	t.Run("unknown type", func(t *testing.T) {
		_, err := Severity("sleep", 3)
		assert.ErrorIs(t, err, ErrUnknownAssessmentType)
	})
}

func TestPTSDClinicalThreshold(t *testing.T) {
	def := mustLookup(t, TypePTSD)

	for _, tt := range []struct {
		score int
		label string
		met   bool
	}{
		{0, LabelBelowThreshold, false},
		{30, LabelBelowThreshold, false},
		{31, LabelPossiblePTSD, true},
		{80, LabelPossiblePTSD, true},
	} {
		result, err := Score(TypePTSD, Answers(def, valuesForScore(def, tt.score)...), fixedTime)
		require.NoError(t, err)
		pcl5, ok := result.(*PCL5Result)
		require.True(t, ok)
		assert.Equal(t, tt.label, pcl5.ClinicalThreshold, "score %d", tt.score)
		assert.Equal(t, tt.met, pcl5.MeetsThreshold, "score %d", tt.score)
	}

	_, _, ok := Threshold(mustLookup(t, TypeStress), 27)
	assert.False(t, ok, "PHQ-9 has no clinical cut-off")
}

func TestCriteria(t *testing.T) {
	def := mustLookup(t, TypePTSD)

	score := func(t *testing.T, values []int) *PCL5Result {
		t.Helper()
		result, err := Score(TypePTSD, Answers(def, values...), fixedTime)
		require.NoError(t, err)
		pcl5, ok := result.(*PCL5Result)
		require.True(t, ok)
		return pcl5
	}

	t.Run("single B question at two only meets B", func(t *testing.T) {
		values := make([]int, 20)
		values[2] = 2
		for _, i := range []int{5, 8, 14} {
			values[i] = 1
		}
		got := score(t, values)
		assert.Equal(t, Criteria{B: true}, got.Criteria)
	})

	t.Run("no D question qualifies", func(t *testing.T) {
		values := make([]int, 20)
		for i := 7; i <= 13; i++ {
			values[i] = 1
		}
		assert.False(t, score(t, values).Criteria.D)
	})

	t.Run("one D question is not enough", func(t *testing.T) {
		values := make([]int, 20)
		values[9] = 4
		assert.False(t, score(t, values).Criteria.D)
	})

	t.Run("two D questions meet D", func(t *testing.T) {
		values := make([]int, 20)
		values[7] = 2
		values[13] = 3
		got := score(t, values)
		assert.Equal(t, Criteria{D: true}, got.Criteria)
	})

	t.Run("C needs one and E needs two", func(t *testing.T) {
		values := make([]int, 20)
		values[6] = 2
		values[15] = 2
		got := score(t, values)
		assert.True(t, got.Criteria.C)
		assert.False(t, got.Criteria.E)

		values[19] = 4
		got = score(t, values)
		assert.True(t, got.Criteria.E)
	})

	t.Run("criteria ignore the raw score", func(t *testing.T) {
		values := make([]int, 20)
		for i := range values {
			values[i] = 1
		}
		got := score(t, values)
		assert.Equal(t, 20, got.RawScore)
		assert.Equal(t, Criteria{}, got.Criteria)
	})

	t.Run("detail carries labels and counts", func(t *testing.T) {
		values := make([]int, 20)
		values[0], values[1] = 2, 3
		got := score(t, values)
		require.Len(t, got.CriteriaDetail, 4)
		assert.Equal(t, "Re-experiencing Symptoms", got.CriteriaDetail[0].Label)
		assert.Equal(t, 2, got.CriteriaDetail[0].Qualifying)
		assert.Equal(t, 1, got.CriteriaDetail[0].Required)
		assert.Equal(t, "Alterations in Arousal and Reactivity", got.CriteriaDetail[3].Label)
	})
}

func TestScoreFixtures(t *testing.T) {
	t.Run("PHQ-9 seeded fixture", func(t *testing.T) {
		def := mustLookup(t, TypeStress)
		result, err := Score(TypeStress, Answers(def, 1, 2, 1, 2, 1, 1, 2, 1, 0), fixedTime)
		require.NoError(t, err)

		phq9, ok := result.(*PHQ9Result)
		require.True(t, ok)
		assert.Equal(t, 11, phq9.RawScore)
		assert.Equal(t, "Moderate depression", phq9.Severity)
		require.NotNil(t, phq9.NormalizedScore)
		assert.Equal(t, 41, *phq9.NormalizedScore)
		assert.Equal(t, TypeStress, phq9.AssessmentType())
		assert.Equal(t, fixedTime, phq9.CompletedAt())
		require.Len(t, phq9.Questions, 9)
		assert.Equal(t, "feelingDown", phq9.Questions[1].ID)
		assert.Equal(t, 2, phq9.Questions[1].Value)
	})

	t.Run("GAD-7 fixture", func(t *testing.T) {
		def := mustLookup(t, TypeAnxiety)
		result, err := Score(TypeAnxiety, Answers(def, 1, 1, 2, 1, 1, 1, 0), fixedTime)
		require.NoError(t, err)

		gad7, ok := result.(*GAD7Result)
		require.True(t, ok)
		assert.Equal(t, 7, gad7.RawScore)
		assert.Equal(t, "Mild anxiety", gad7.Severity)
		assert.Equal(t, 33, *gad7.NormalizedScore)
	})

	t.Run("PCL-5 all zero", func(t *testing.T) {
		def := mustLookup(t, TypePTSD)
		result, err := Score(TypePTSD, Answers(def, make([]int, 20)...), fixedTime)
		require.NoError(t, err)

		pcl5, ok := result.(*PCL5Result)
		require.True(t, ok)
		assert.Equal(t, 0, pcl5.RawScore)
		assert.Equal(t, "Minimal symptoms", pcl5.Severity)
		assert.Equal(t, Criteria{}, pcl5.Criteria)
		assert.Equal(t, LabelBelowThreshold, pcl5.ClinicalThreshold)
		assert.False(t, pcl5.MeetsThreshold)
	})

	t.Run("answer order does not matter", func(t *testing.T) {
		def := mustLookup(t, TypeAnxiety)
		answers := Answers(def, 3, 0, 0, 0, 0, 0, 2)
		reversed := make([]Answer, len(answers))
		for i, a := range answers {
			reversed[len(answers)-1-i] = a
		}
		result, err := Score(TypeAnxiety, reversed, fixedTime)
		require.NoError(t, err)
		gad7 := result.(*GAD7Result)
		assert.Equal(t, 5, gad7.RawScore)
		assert.Equal(t, "feelingNervous", gad7.Questions[0].ID, "breakdown follows definition order")
	})
}

func TestScoreErrors(t *testing.T) {
	t.Run("one unanswered question", func(t *testing.T) {
		for _, assessmentType := range ScoredTypes() {
			def := mustLookup(t, assessmentType)
			answers := Answers(def, make([]int, len(def.Questions))...)
			answers[len(answers)-1].Value = nil

			_, err := Score(assessmentType, answers, fixedTime)
			assert.ErrorIs(t, err, ErrIncompleteSubmission, assessmentType)
		}
	})

	t.Run("missing question wins over invalid values", func(t *testing.T) {
		def := mustLookup(t, TypeStress)
		answers := Answers(def, 9, 9, 9, 9, 9, 9, 9, 9)

		_, err := Score(TypeStress, answers, fixedTime)
		assert.ErrorIs(t, err, ErrIncompleteSubmission)
		assert.NotErrorIs(t, err, ErrInvalidAnswerValue)
	})

	t.Run("value above scale", func(t *testing.T) {
		def := mustLookup(t, TypeStress)
		answers := Answers(def, 0, 0, 0, 4, 0, 0, 0, 0, 0)

		_, err := Score(TypeStress, answers, fixedTime)
		assert.ErrorIs(t, err, ErrInvalidAnswerValue)
	})

	t.Run("negative value", func(t *testing.T) {
		def := mustLookup(t, TypePTSD)
		values := make([]int, 20)
		values[19] = -1

		_, err := Score(TypePTSD, Answers(def, values...), fixedTime)
		assert.ErrorIs(t, err, ErrInvalidAnswerValue)
	})

	t.Run("PCL-5 accepts four", func(t *testing.T) {
		def := mustLookup(t, TypePTSD)
		values := make([]int, 20)
		values[0] = 4

		_, err := Score(TypePTSD, Answers(def, values...), fixedTime)
		assert.NoError(t, err)
	})

	t.Run("unknown question id", func(t *testing.T) {
		def := mustLookup(t, TypeAnxiety)
		answers := append(Answers(def, 0, 0, 0, 0, 0, 0, 0), Answer{QuestionID: "sleepQuality", Value: Int(1)})

		_, err := Score(TypeAnxiety, answers, fixedTime)
		assert.ErrorIs(t, err, ErrInvalidAnswerValue)
	})

	t.Run("duplicate answer", func(t *testing.T) {
		def := mustLookup(t, TypeAnxiety)
		answers := append(Answers(def, 0, 0, 0, 0, 0, 0, 0), Answer{QuestionID: "troubleRelaxing", Value: Int(3)})

		_, err := Score(TypeAnxiety, answers, fixedTime)
		assert.ErrorIs(t, err, ErrInvalidAnswerValue)
	})

	t.Run("unknown assessment type", func(t *testing.T) {
		_, err := Score("insomnia", nil, fixedTime)
		assert.ErrorIs(t, err, ErrUnknownAssessmentType)

		_, err = Score(TypePreAssessment, nil, fixedTime)
		assert.ErrorIs(t, err, ErrUnknownAssessmentType)
	})
}

func TestScoreIsDeterministic(t *testing.T) {
	for _, assessmentType := range ScoredTypes() {
		def := mustLookup(t, assessmentType)
		values := valuesForScore(def, def.MaxScore/2+1)

		first, err := Score(assessmentType, Answers(def, values...), fixedTime)
		require.NoError(t, err)
		second, err := Score(assessmentType, Answers(def, values...), fixedTime)
		require.NoError(t, err)

		a, err := json.Marshal(first)
		require.NoError(t, err)
		b, err := json.Marshal(second)
		require.NoError(t, err)
		assert.Equal(t, string(a), string(b), assessmentType)
	}
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, 41, Normalize(11, 27))
	assert.Equal(t, 33, Normalize(7, 21))
	assert.Equal(t, 100, Normalize(80, 80))
	assert.Equal(t, 0, Normalize(0, 27))
	// 1/8 = 12.5, rounded half up
	assert.Equal(t, 13, Normalize(1, 8))
	assert.Equal(t, 0, Normalize(5, 0))
}

func TestComposePreAssessment(t *testing.T) {
	form := PreAssessmentForm{
		Consent:               "Yes",
		MentalHealthDiagnosis: "none",
		Medications:           "none",
	}

	t.Run("consent is case-insensitive", func(t *testing.T) {
		result, err := ComposePreAssessment(form, fixedTime)
		require.NoError(t, err)
		assert.Equal(t, TypePreAssessment, result.AssessmentType())
		assert.Equal(t, "none", result.Responses.MentalHealthDiagnosis)
		assert.Nil(t, Scale(result))
	})

	t.Run("missing consent", func(t *testing.T) {
		for _, consent := range []string{"", "no", "y"} {
			form.Consent = consent
			_, err := ComposePreAssessment(form, fixedTime)
			assert.ErrorIs(t, err, ErrConsentRequired, consent)
		}
	})
}

func TestEngineUsesClock(t *testing.T) {
	engine := NewEngine(WithClock(func() time.Time { return fixedTime }))

	def, ok := engine.Definition(TypeAnxiety)
	require.True(t, ok)

	result, err := engine.Score(TypeAnxiety, Answers(def, 0, 0, 0, 0, 0, 0, 0))
	require.NoError(t, err)
	assert.Equal(t, fixedTime, result.CompletedAt())

	pre, err := engine.ComposePreAssessment(PreAssessmentForm{Consent: "YES"})
	require.NoError(t, err)
	assert.Equal(t, fixedTime, pre.CompletedAt())
}
