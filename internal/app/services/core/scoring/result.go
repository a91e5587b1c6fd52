package scoring

import (
	"strings"
	"time"
)

// Result is the closed set of assessment outcomes. Concrete values are
// *PHQ9Result, *GAD7Result, *PCL5Result and *PreAssessmentResult.
type Result interface {
	AssessmentType() string
	CompletedAt() time.Time
	isResult()
}

// ScaleResult carries the fields shared by every numerically scored type.
type ScaleResult struct {
	Type            string          `json:"assessmentType"`
	Instrument      string          `json:"instrument"`
	RawScore        int             `json:"score"`
	MaxScore        int             `json:"maxScore"`
	NormalizedScore *int            `json:"normalizedScore,omitempty"`
	Severity        string          `json:"severity"`
	Questions       []QuestionScore `json:"questions"`
	Completed       time.Time       `json:"completedAt"`
}

func (r *ScaleResult) AssessmentType() string { return r.Type }
func (r *ScaleResult) CompletedAt() time.Time { return r.Completed }

type PHQ9Result struct {
	ScaleResult
}

type GAD7Result struct {
	ScaleResult
}

type PCL5Result struct {
	ScaleResult
	Criteria          Criteria          `json:"criteria"`
	CriteriaDetail    []CriterionResult `json:"criteriaDetail"`
	ClinicalThreshold string            `json:"clinicalThreshold"`
	MeetsThreshold    bool              `json:"meetsThreshold"`
}

// PreAssessmentForm is the free-text intake form.
type PreAssessmentForm struct {
	Consent               string `json:"consent" bson:"consent"`
	MentalHealthDiagnosis string `json:"mentalHealthDiagnosis" bson:"mentalHealthDiagnosis"`
	PastChallenges        string `json:"pastChallenges" bson:"pastChallenges"`
	CurrentTreatment      string `json:"currentTreatment" bson:"currentTreatment"`
	PreviousTherapy       string `json:"previousTherapy" bson:"previousTherapy"`
	Medications           string `json:"medications" bson:"medications"`
	PrimaryPhysician      string `json:"primaryPhysician" bson:"primaryPhysician"`
	Insurance             string `json:"insurance" bson:"insurance"`
}

// HasConsent reports whether the patient answered "yes", ignoring case and
// surrounding spaces.
func (f PreAssessmentForm) HasConsent() bool {
	return strings.EqualFold(strings.TrimSpace(f.Consent), "yes")
}

type PreAssessmentResult struct {
	Responses PreAssessmentForm `json:"responses"`
	Completed time.Time         `json:"completedAt"`
}

func (r *PreAssessmentResult) AssessmentType() string { return TypePreAssessment }
func (r *PreAssessmentResult) CompletedAt() time.Time { return r.Completed }

func (*PHQ9Result) isResult()          {}
func (*GAD7Result) isResult()          {}
func (*PCL5Result) isResult()          {}
func (*PreAssessmentResult) isResult() {}

// Scale returns the shared numeric part of r, or nil for pre-assessments.
func Scale(r Result) *ScaleResult {
	switch v := r.(type) {
	case *PHQ9Result:
		return &v.ScaleResult
	case *GAD7Result:
		return &v.ScaleResult
	case *PCL5Result:
		return &v.ScaleResult
	default:
		return nil
	}
}

func compose(def Definition, raw int, breakdown []QuestionScore, severity string, completedAt time.Time) Result {
	scale := ScaleResult{
		Type:       def.Type,
		Instrument: def.Instrument,
		RawScore:   raw,
		MaxScore:   def.MaxScore,
		Severity:   severity,
		Questions:  breakdown,
		Completed:  completedAt,
	}
	if def.Normalize {
		normalized := Normalize(raw, def.MaxScore)
		scale.NormalizedScore = &normalized
	}

	switch def.Type {
	case TypeStress:
		return &PHQ9Result{ScaleResult: scale}
	case TypeAnxiety:
		return &GAD7Result{ScaleResult: scale}
	default:
		detail := EvaluateCriteria(def, breakdown)
		label, met, _ := Threshold(def, raw)
		return &PCL5Result{
			ScaleResult:       scale,
			Criteria:          Flags(detail),
			CriteriaDetail:    detail,
			ClinicalThreshold: label,
			MeetsThreshold:    met,
		}
	}
}
