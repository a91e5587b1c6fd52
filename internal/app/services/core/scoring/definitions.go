package scoring

const (
	TypePreAssessment = "preassessment"
	TypeStress        = "stress"
	TypeAnxiety       = "anxiety"
	TypePTSD          = "ptsd"
)

type Criterion string

const (
	CriterionB Criterion = "B"
	CriterionC Criterion = "C"
	CriterionD Criterion = "D"
	CriterionE Criterion = "E"
)

// Question is a single scored item. Number is the 1-based position shown to
// patients.
type Question struct {
	ID        string    `json:"questionId"`
	Number    int       `json:"number"`
	Text      string    `json:"questionText"`
	Criterion Criterion `json:"criterion,omitempty"`
}

// Band maps every raw score up to and including Upper to Label. Bands of a
// definition are ordered by Upper ascending and do not overlap.
type Band struct {
	Upper int
	Label string
}

// CriterionRule marks a criterion met when at least MinQualifying of its
// questions are answered with QualifyingValue or higher.
type CriterionRule struct {
	Criterion       Criterion
	Label           string
	MinQualifying   int
	QualifyingValue int
}

// Definition is the per-type configuration table driving aggregation and
// classification.
type Definition struct {
	Type       string
	Instrument string
	Questions  []Question
	MinValue   int
	MaxValue   int
	MaxScore   int
	Normalize  bool
	Bands      []Band
	Criteria   []CriterionRule

	// ThresholdScore is the clinical cut-off. Zero disables it.
	ThresholdScore int
	AboveThreshold string
	BelowThreshold string
}

const (
	PTSDThresholdScore   = 31
	LabelPossiblePTSD    = "Suggests possible PTSD"
	LabelBelowThreshold  = "Below clinical threshold"
	ptsdQualifyingAnswer = 2
)

var phq9 = Definition{
	Type:       TypeStress,
	Instrument: "PHQ-9",
	Questions: numbered([]Question{
		{ID: "littleInterest", Text: "Little interest or pleasure in doing things"},
		{ID: "feelingDown", Text: "Feeling down, depressed, or hopeless"},
		{ID: "troubleSleeping", Text: "Trouble falling or staying asleep, or sleeping too much"},
		{ID: "feelingTired", Text: "Feeling tired or having little energy"},
		{ID: "poorAppetite", Text: "Poor appetite or overeating"},
		{ID: "feelingBad", Text: "Feeling bad about yourself, or that you are a failure or have let yourself or your family down"},
		{ID: "troubleConcentrating", Text: "Trouble concentrating on things, such as reading the newspaper or watching television"},
		{ID: "movingSlowly", Text: "Moving or speaking so slowly that other people could have noticed? Or the opposite, being so fidgety or restless that you have been moving around a lot more than usual"},
		{ID: "selfHarmThoughts", Text: "Thoughts that you would be better off dead, or thoughts of hurting yourself in some way"},
	}),
	MinValue:  0,
	MaxValue:  3,
	MaxScore:  27,
	Normalize: true,
	Bands: []Band{
		{Upper: 4, Label: "Minimal or no depression"},
		{Upper: 9, Label: "Mild depression"},
		{Upper: 14, Label: "Moderate depression"},
		{Upper: 19, Label: "Moderately severe depression"},
		{Upper: 27, Label: "Severe depression"},
	},
}

var gad7 = Definition{
	Type:       TypeAnxiety,
	Instrument: "GAD-7",
	Questions: numbered([]Question{
		{ID: "feelingNervous", Text: "Feeling nervous, anxious, or on edge"},
		{ID: "notAbleToStopWorrying", Text: "Not being able to stop or control worrying"},
		{ID: "worryingTooMuch", Text: "Worrying too much about different things"},
		{ID: "troubleRelaxing", Text: "Trouble relaxing"},
		{ID: "beingSoRestless", Text: "Being so restless that it's hard to sit still"},
		{ID: "becomingEasilyAnnoyed", Text: "Becoming easily annoyed or irritable"},
		{ID: "feelingAfraid", Text: "Feeling afraid as if something awful might happen"},
	}),
	MinValue:  0,
	MaxValue:  3,
	MaxScore:  21,
	Normalize: true,
	Bands: []Band{
		{Upper: 4, Label: "Minimal anxiety"},
		{Upper: 9, Label: "Mild anxiety"},
		{Upper: 14, Label: "Moderate anxiety"},
		{Upper: 21, Label: "Severe anxiety"},
	},
}

var pcl5 = Definition{
	Type:       TypePTSD,
	Instrument: "PCL-5",
	Questions: numbered([]Question{
		{ID: "repeatedMemories", Criterion: CriterionB, Text: "Having repeated, disturbing memories of the stressful experience"},
		{ID: "disturbingDreams", Criterion: CriterionB, Text: "Having repeated, disturbing dreams of the stressful experience"},
		{ID: "relivingExperience", Criterion: CriterionB, Text: "Suddenly feeling or acting as if the stressful experience were happening again"},
		{ID: "upsetByReminders", Criterion: CriterionB, Text: "Feeling very upset when something reminded you of the stressful experience"},
		{ID: "physicalReactions", Criterion: CriterionB, Text: "Having strong physical reactions when something reminded you of the stressful experience"},
		{ID: "avoidMemories", Criterion: CriterionC, Text: "Avoiding memories, thoughts, or feelings related to the stressful experience"},
		{ID: "avoidExternalReminders", Criterion: CriterionC, Text: "Avoiding external reminders of the stressful experience"},
		{ID: "troubleRemembering", Criterion: CriterionD, Text: "Trouble remembering important parts of the stressful experience"},
		{ID: "negativeBeliefs", Criterion: CriterionD, Text: "Having strong negative beliefs about yourself, other people, or the world"},
		{ID: "blamingSelfOrOthers", Criterion: CriterionD, Text: "Blaming yourself or someone else for the stressful experience"},
		{ID: "negativeFeelings", Criterion: CriterionD, Text: "Having strong negative feelings such as fear, horror, anger, guilt, or shame"},
		{ID: "lossOfInterest", Criterion: CriterionD, Text: "Loss of interest in activities you used to enjoy"},
		{ID: "feelingDistant", Criterion: CriterionD, Text: "Feeling distant or cut off from other people"},
		{ID: "troublePositiveFeelings", Criterion: CriterionD, Text: "Having trouble experiencing positive feelings"},
		{ID: "irritableOrAngry", Criterion: CriterionE, Text: "Feeling irritable or having angry outbursts"},
		{ID: "recklessBehavior", Criterion: CriterionE, Text: "Taking too many risks or doing things that could cause you harm"},
		{ID: "hypervigilance", Criterion: CriterionE, Text: "Being overly alert or watchful for danger"},
		{ID: "easilyStartled", Criterion: CriterionE, Text: "Being jumpy or easily startled"},
		{ID: "difficultyConcentrating", Criterion: CriterionE, Text: "Having difficulty concentrating"},
		{ID: "troubleSleeping", Criterion: CriterionE, Text: "Having trouble falling or staying asleep"},
	}),
	MinValue:  0,
	MaxValue:  4,
	MaxScore:  80,
	Normalize: true,
	Bands: []Band{
		{Upper: 20, Label: "Minimal symptoms"},
		{Upper: 40, Label: "Mild symptoms"},
		{Upper: 60, Label: "Moderate symptoms"},
		{Upper: 80, Label: "Severe symptoms"},
	},
	Criteria: []CriterionRule{
		{Criterion: CriterionB, Label: "Re-experiencing Symptoms", MinQualifying: 1, QualifyingValue: ptsdQualifyingAnswer},
		{Criterion: CriterionC, Label: "Avoidance Symptoms", MinQualifying: 1, QualifyingValue: ptsdQualifyingAnswer},
		{Criterion: CriterionD, Label: "Negative Alterations in Cognition and Mood", MinQualifying: 2, QualifyingValue: ptsdQualifyingAnswer},
		{Criterion: CriterionE, Label: "Alterations in Arousal and Reactivity", MinQualifying: 2, QualifyingValue: ptsdQualifyingAnswer},
	},
	ThresholdScore: PTSDThresholdScore,
	AboveThreshold: LabelPossiblePTSD,
	BelowThreshold: LabelBelowThreshold,
}

var definitions = map[string]*Definition{
	TypeStress:  &phq9,
	TypeAnxiety: &gad7,
	TypePTSD:    &pcl5,
}

func numbered(questions []Question) []Question {
	for i := range questions {
		questions[i].Number = i + 1
	}
	return questions
}

// Lookup returns the definition for a scored assessment type. The returned
// value is a copy, callers may not mutate the shared tables.
func Lookup(assessmentType string) (Definition, bool) {
	def, ok := definitions[assessmentType]
	if !ok {
		return Definition{}, false
	}
	copied := *def
	copied.Questions = append([]Question(nil), def.Questions...)
	copied.Bands = append([]Band(nil), def.Bands...)
	copied.Criteria = append([]CriterionRule(nil), def.Criteria...)
	return copied, true
}

// IsScored reports whether the type has a numeric score table.
func IsScored(assessmentType string) bool {
	_, ok := definitions[assessmentType]
	return ok
}

// IsKnown reports whether the type is one of the four assessment types.
func IsKnown(assessmentType string) bool {
	return assessmentType == TypePreAssessment || IsScored(assessmentType)
}

// ScoredTypes lists the scored types in display order.
func ScoredTypes() []string {
	return []string{TypeStress, TypeAnxiety, TypePTSD}
}
