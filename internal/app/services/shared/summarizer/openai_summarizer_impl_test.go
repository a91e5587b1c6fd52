package summarizer

import (
	"context"
	"encoding/json"
	"mindcheck-service/internal/app/config"
	"mindcheck-service/internal/app/models"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSummarizer(t *testing.T, handler http.HandlerFunc) *openAISummarizer {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	clientConfig := openai.DefaultConfig("test-key")
	clientConfig.BaseURL = server.URL + "/v1"

	s := NewOpenAISummarizer(openai.NewClientWithConfig(clientConfig), config.AppAISummary{
		Model:       "gpt-3.5-turbo",
		Temperature: 0.7,
		MaxTokens:   500,
	}).(*openAISummarizer)
	s.now = func() time.Time { return time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC) }
	return s
}

func completedStress() models.Assessment {
	score := 11
	completedAt := time.Date(2024, 5, 20, 9, 0, 0, 0, time.UTC)
	return models.Assessment{
		AssessmentType: "stress",
		Status:         "completed",
		Score:          &score,
		Severity:       "Moderate",
		CompletedAt:    &completedAt,
		Questions: []models.AssessmentQuestion{
			{QuestionID: "littleInterest", QuestionText: "Little interest or pleasure in doing things", Score: 2},
		},
	}
}

func TestOpenAISummarizer_Summarize(t *testing.T) {
	patient := &models.User{FirstName: "Ada", LastName: "Lovelace", DateOfBirth: "1990-07-15"}

	t.Run("returns trimmed completion content", func(t *testing.T) {
		var received openai.ChatCompletionRequest
		s := newTestSummarizer(t, func(w http.ResponseWriter, r *http.Request) {
			require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
			w.Header().Set("Content-Type", "application/json")
			json.NewEncoder(w).Encode(map[string]any{
				"id":     "chatcmpl-test",
				"object": "chat.completion",
				"model":  "gpt-3.5-turbo",
				"choices": []map[string]any{
					{
						"index":         0,
						"message":       map[string]any{"role": "assistant", "content": "  Stable with moderate stress.  "},
						"finish_reason": "stop",
					},
				},
			})
		})

		summary, err := s.Summarize(context.Background(), patient, []models.Assessment{completedStress()})
		require.NoError(t, err)
		assert.Equal(t, "Stable with moderate stress.", summary)
		assert.Equal(t, "gpt-3.5-turbo", received.Model)
		assert.Equal(t, 500, received.MaxTokens)
		assert.InDelta(t, 0.7, received.Temperature, 0.0001)
		require.Len(t, received.Messages, 2)
		assert.Equal(t, systemPrompt, received.Messages[0].Content)
		assert.Contains(t, received.Messages[1].Content, "- Name: Ada Lovelace")
	})

	t.Run("provider failure is returned as error", func(t *testing.T) {
		s := newTestSummarizer(t, func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(map[string]any{
				"error": map[string]any{"message": "server exploded", "type": "server_error"},
			})
		})

		summary, err := s.Summarize(context.Background(), patient, nil)
		assert.Error(t, err)
		assert.Empty(t, summary)
	})

	t.Run("no choices is an error", func(t *testing.T) {
		s := newTestSummarizer(t, func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			json.NewEncoder(w).Encode(map[string]any{"id": "chatcmpl-empty", "choices": []any{}})
		})

		_, err := s.Summarize(context.Background(), patient, nil)
		assert.Error(t, err)
	})
}

func TestBuildPrompt(t *testing.T) {
	now := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	t.Run("renders patient and history", func(t *testing.T) {
		patient := &models.User{FirstName: "Ada", LastName: "Lovelace", Gender: "female", DateOfBirth: "1990-07-15"}
		prompt := BuildPrompt(patient, []models.Assessment{completedStress()}, now)

		assert.Contains(t, prompt, "- Age: 33")
		assert.Contains(t, prompt, "- Gender: female")
		assert.Contains(t, prompt, "- stress (2024-05-20):")
		assert.Contains(t, prompt, "Score: 11")
		assert.Contains(t, prompt, "Severity: Moderate")
		assert.Contains(t, prompt, "Little interest or pleasure in doing things: 2")
		assert.Contains(t, prompt, "Keep the summary professional and factual.")
	})

	t.Run("missing profile fields fall back", func(t *testing.T) {
		prompt := BuildPrompt(&models.User{}, []models.Assessment{{AssessmentType: "anxiety"}}, now)

		assert.Contains(t, prompt, "- Age: Not specified")
		assert.Contains(t, prompt, "- Gender: Not specified")
		assert.Contains(t, prompt, "Score: N/A")
		assert.Contains(t, prompt, "No detailed responses available")
	})

	t.Run("pre-assessment responses are listed", func(t *testing.T) {
		pre := models.Assessment{
			AssessmentType: "preassessment",
			Responses:      &models.PreAssessmentResponses{Consent: "yes", Medications: "none"},
		}
		prompt := BuildPrompt(&models.User{}, []models.Assessment{pre}, now)

		assert.Contains(t, prompt, "consent: yes")
		assert.Contains(t, prompt, "medications: none")
	})
}
