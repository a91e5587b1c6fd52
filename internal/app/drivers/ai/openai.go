package ai

import (
	"log"
	"mindcheck-service/internal/app/config"

	"github.com/sashabaranov/go-openai"
)

// NewOpenAI builds the chat completion client. An empty key still yields a
// client, every call then fails and callers fall back to a fixed message.
func NewOpenAI(driverConfig *config.DriverConfig) *openai.Client {
	clientConfig := openai.DefaultConfig(driverConfig.OpenAI.APIKey)
	if driverConfig.OpenAI.BaseURL != "" {
		clientConfig.BaseURL = driverConfig.OpenAI.BaseURL
	}
	if driverConfig.OpenAI.APIKey == "" {
		log.Println("OPENAI_API_KEY is empty, AI summaries will use the fallback message")
	}
	return openai.NewClientWithConfig(clientConfig)
}
