package summarizer

import (
	"context"
	"errors"
	"fmt"
	"mindcheck-service/internal/app/config"
	"mindcheck-service/internal/app/contracts"
	"mindcheck-service/internal/app/models"
	"mindcheck-service/internal/pkg/constvars"
	"mindcheck-service/internal/pkg/exceptions"
	"sort"
	"strings"
	"time"

	"github.com/sashabaranov/go-openai"
)

const systemPrompt = "You are a professional mental health expert providing patient summaries."

type openAISummarizer struct {
	Client      *openai.Client
	Model       string
	Temperature float32
	MaxTokens   int
	now         func() time.Time
}

func NewOpenAISummarizer(client *openai.Client, cfg config.AppAISummary) contracts.PatientSummarizer {
	return &openAISummarizer{
		Client:      client,
		Model:       cfg.Model,
		Temperature: float32(cfg.Temperature),
		MaxTokens:   cfg.MaxTokens,
		now:         time.Now,
	}
}

func (s *openAISummarizer) Summarize(ctx context.Context, patient *models.User, assessments []models.Assessment) (string, error) {
	request := openai.ChatCompletionRequest{
		Model: s.Model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: BuildPrompt(patient, assessments, s.now())},
		},
		Temperature: s.Temperature,
		MaxTokens:   s.MaxTokens,
	}

	resp, err := s.Client.CreateChatCompletion(ctx, request)
	if err != nil {
		return "", exceptions.ErrOpenAICompletion(err)
	}
	if len(resp.Choices) == 0 {
		return "", exceptions.ErrOpenAICompletion(errors.New("no choices in completion response"))
	}

	summary := strings.TrimSpace(resp.Choices[0].Message.Content)
	if summary == "" {
		return "", exceptions.ErrOpenAICompletion(errors.New("empty completion content"))
	}
	return summary, nil
}

// BuildPrompt renders the patient profile and completed assessment history
// into the user message sent to the model.
func BuildPrompt(patient *models.User, assessments []models.Assessment, now time.Time) string {
	var b strings.Builder

	b.WriteString("As a mental health professional, provide a concise summary of the patient's mental health status based on the following information:\n\n")

	b.WriteString("Patient Information:\n")
	fmt.Fprintf(&b, "- Name: %s\n", patient.FullName())
	fmt.Fprintf(&b, "- Age: %s\n", ageOrDefault(patient.DateOfBirth, now))
	fmt.Fprintf(&b, "- Gender: %s\n\n", valueOrDefault(patient.Gender, constvars.NotSpecified))

	b.WriteString("Assessment History:\n")
	for _, assessment := range assessments {
		date := now
		if assessment.CompletedAt != nil {
			date = *assessment.CompletedAt
		}
		score := "N/A"
		if assessment.Score != nil {
			score = fmt.Sprintf("%d", *assessment.Score)
		}
		fmt.Fprintf(&b, "- %s (%s):\n", assessment.AssessmentType, date.Format(constvars.DateLayoutYYYYMMDD))
		fmt.Fprintf(&b, "  Score: %s\n", score)
		fmt.Fprintf(&b, "  Severity: %s\n", valueOrDefault(assessment.Severity, "N/A"))
		fmt.Fprintf(&b, "  Responses: %s\n", formatResponses(&assessment))
	}

	b.WriteString(`
Please include:
1. Overall mental health status
2. Key observations from assessments
3. Notable patterns or trends
4. Areas of concern (if any)
5. Positive developments (if any)

Keep the summary professional and factual.
`)
	return b.String()
}

func formatResponses(assessment *models.Assessment) string {
	var lines []string
	switch {
	case assessment.Responses != nil:
		form := assessment.Responses
		pairs := map[string]string{
			"consent":               form.Consent,
			"mentalHealthDiagnosis": form.MentalHealthDiagnosis,
			"pastChallenges":        form.PastChallenges,
			"currentTreatment":      form.CurrentTreatment,
			"previousTherapy":       form.PreviousTherapy,
			"medications":           form.Medications,
			"primaryPhysician":      form.PrimaryPhysician,
			"insurance":             form.Insurance,
		}
		keys := make([]string, 0, len(pairs))
		for key := range pairs {
			keys = append(keys, key)
		}
		sort.Strings(keys)
		for _, key := range keys {
			lines = append(lines, fmt.Sprintf("%s: %s", key, pairs[key]))
		}
	case len(assessment.Questions) > 0:
		for _, q := range assessment.Questions {
			lines = append(lines, fmt.Sprintf("%s: %d", q.QuestionText, q.Score))
		}
	}

	if len(lines) == 0 {
		return "No detailed responses available"
	}
	return "\n    " + strings.Join(lines, "\n    ")
}

func ageOrDefault(dateOfBirth string, now time.Time) string {
	born, err := time.Parse(constvars.DateLayoutYYYYMMDD, dateOfBirth)
	if err != nil {
		return constvars.NotSpecified
	}
	age := now.Year() - born.Year()
	if now.Month() < born.Month() || (now.Month() == born.Month() && now.Day() < born.Day()) {
		age--
	}
	return fmt.Sprintf("%d", age)
}

func valueOrDefault(value, fallback string) string {
	if strings.TrimSpace(value) == "" {
		return fallback
	}
	return value
}
