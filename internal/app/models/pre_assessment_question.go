package models

type PreAssessmentQuestion struct {
	ID           string   `bson:"_id,omitempty"`
	QuestionText string   `bson:"questionText"`
	QuestionType string   `bson:"questionType"`
	Options      []string `bson:"options,omitempty"`
	Required     bool     `bson:"required"`
	Order        int      `bson:"order"`
}

// DefaultPreAssessmentQuestions seeds an empty question collection.
func DefaultPreAssessmentQuestions() []PreAssessmentQuestion {
	return []PreAssessmentQuestion{
		{
			QuestionText: "How would you rate your overall stress level?",
			QuestionType: "scale",
			Options:      []string{"1", "2", "3", "4", "5"},
			Required:     true,
			Order:        1,
		},
		{
			QuestionText: "How many hours do you sleep on average?",
			QuestionType: "text",
			Required:     true,
			Order:        2,
		},
		{
			QuestionText: "Do you experience anxiety?",
			QuestionType: "multiple_choice",
			Options:      []string{"Never", "Sometimes", "Often", "Always"},
			Required:     true,
			Order:        3,
		},
		{
			QuestionText: "How would you describe your mood lately?",
			QuestionType: "multiple_choice",
			Options:      []string{"Very Happy", "Happy", "Neutral", "Sad", "Very Sad"},
			Required:     true,
			Order:        4,
		},
	}
}
