package scoring

// CriterionResult is the evaluation of one PTSD symptom cluster.
type CriterionResult struct {
	Criterion  Criterion `json:"criterion"`
	Label      string    `json:"label"`
	Qualifying int       `json:"qualifying"`
	Required   int       `json:"required"`
	Met        bool      `json:"met"`
}

// Criteria holds the four cluster flags.
type Criteria struct {
	B bool `json:"criteriaB" bson:"criteriaB"`
	C bool `json:"criteriaC" bson:"criteriaC"`
	D bool `json:"criteriaD" bson:"criteriaD"`
	E bool `json:"criteriaE" bson:"criteriaE"`
}

// EvaluateCriteria applies every rule of def to the breakdown. Each rule only
// sees the questions tagged with its criterion.
func EvaluateCriteria(def Definition, breakdown []QuestionScore) []CriterionResult {
	results := make([]CriterionResult, 0, len(def.Criteria))
	for _, rule := range def.Criteria {
		qualifying := 0
		for _, item := range breakdown {
			if item.Criterion == rule.Criterion && item.Value >= rule.QualifyingValue {
				qualifying++
			}
		}
		results = append(results, CriterionResult{
			Criterion:  rule.Criterion,
			Label:      rule.Label,
			Qualifying: qualifying,
			Required:   rule.MinQualifying,
			Met:        qualifying >= rule.MinQualifying,
		})
	}
	return results
}

// Flags collapses evaluated criteria into the four booleans.
func Flags(results []CriterionResult) Criteria {
	var flags Criteria
	for _, result := range results {
		switch result.Criterion {
		case CriterionB:
			flags.B = result.Met
		case CriterionC:
			flags.C = result.Met
		case CriterionD:
			flags.D = result.Met
		case CriterionE:
			flags.E = result.Met
		}
	}
	return flags
}
