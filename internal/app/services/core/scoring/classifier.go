package scoring

import "fmt"

// Classify returns the label of the first band whose upper bound is at least
// raw. Scores outside [0, MaxScore] have no label.
func Classify(def Definition, raw int) (string, error) {
	if raw < 0 || raw > def.MaxScore {
		return "", fmt.Errorf("%w: score %d outside 0..%d for %s", ErrInvalidAnswerValue, raw, def.MaxScore, def.Instrument)
	}
	for _, band := range def.Bands {
		if raw <= band.Upper {
			return band.Label, nil
		}
	}
	return "", fmt.Errorf("%w: no band covers score %d for %s", ErrUnknownAssessmentType, raw, def.Instrument)
}

// Severity classifies a raw score for an assessment type.
func Severity(assessmentType string, raw int) (string, error) {
	def, ok := definitions[assessmentType]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownAssessmentType, assessmentType)
	}
	return Classify(*def, raw)
}

// Threshold reports the clinical cut-off verdict. ok is false when the
// definition has no cut-off.
func Threshold(def Definition, raw int) (label string, met bool, ok bool) {
	if def.ThresholdScore == 0 {
		return "", false, false
	}
	if raw >= def.ThresholdScore {
		return def.AboveThreshold, true, true
	}
	return def.BelowThreshold, false, true
}
