package providers

import (
	"context"
	"errors"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"github.com/IqraS-gif/ai-career-coach-backend/internal/config"
	"github.com/IqraS-gif/ai-career-coach-backend/pkg/models"
)

// ClaudeProvider performs generation calls against Anthropic's API. Like the
// Gemini provider, the client is rebuilt per attempt so each attempt can
// carry a different credential from the pool.
type ClaudeProvider struct {
	config *config.Config
}

// NewClaudeProvider creates a new Claude provider instance.
func NewClaudeProvider(cfg *config.Config) *ClaudeProvider {
	return &ClaudeProvider{config: cfg}
}

// Generate performs one generation attempt authorized by credential.
func (cp *ClaudeProvider) Generate(ctx context.Context, credential string, req models.GenerationRequest) (string, error) {
	client := anthropic.NewClient(option.WithAPIKey(credential))

	var messages []anthropic.MessageParam
	if req.Chat {
		for _, turn := range req.History {
			block := anthropic.NewTextBlock(turn.Content)
			if turn.Role == models.RoleAssistant {
				messages = append(messages, anthropic.NewAssistantMessage(block))
			} else {
				messages = append(messages, anthropic.NewUserMessage(block))
			}
		}
	}
	messages = append(messages, anthropic.NewUserMessage(anthropic.NewTextBlock(req.Prompt)))

	response, err := client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:       anthropic.Model(cp.config.LLM.Model),
		MaxTokens:   int64(cp.config.LLM.MaxTokens),
		Temperature: anthropic.Float(float64(cp.config.LLM.Temperature)),
		Messages:    messages,
	})
	if err != nil {
		var apiErr *anthropic.Error
		if errors.As(err, &apiErr) {
			return "", &AttemptError{Kind: ClassifyStatus(apiErr.StatusCode), Err: err}
		}
		return "", &AttemptError{Kind: FailureOther, Err: err}
	}

	var responseText string
	for _, content := range response.Content {
		textContent := content.AsText()
		responseText = textContent.Text
		break
	}
	if responseText == "" {
		return "", &AttemptError{Kind: FailureOther, Err: errors.New("no text content in Claude response")}
	}
	return responseText, nil
}

// Name returns the name of the provider.
func (cp *ClaudeProvider) Name() string {
	return "claude"
}
