package providers

import (
	"context"
	"errors"
	"fmt"

	"google.golang.org/genai"

	"github.com/IqraS-gif/ai-career-coach-backend/internal/config"
	"github.com/IqraS-gif/ai-career-coach-backend/pkg/models"
)

// GeminiProvider performs generation calls against the Gemini API. The
// client is rebuilt per attempt because each attempt carries its own
// credential from the pool.
type GeminiProvider struct {
	config *config.Config
}

// NewGeminiProvider creates a new Gemini provider instance.
func NewGeminiProvider(cfg *config.Config) *GeminiProvider {
	return &GeminiProvider{config: cfg}
}

// Generate performs one generation attempt authorized by credential. A chat
// request replays the history in original order before submitting the prompt
// as the newest user turn.
func (gp *GeminiProvider) Generate(ctx context.Context, credential string, req models.GenerationRequest) (string, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  credential,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return "", gp.wrapError(fmt.Errorf("failed to create Gemini client: %w", err))
	}

	contents := buildContents(req)

	genConfig := &genai.GenerateContentConfig{
		Temperature:     genai.Ptr(gp.config.LLM.Temperature),
		MaxOutputTokens: int32(gp.config.LLM.MaxTokens),
		SafetySettings: []*genai.SafetySetting{
			{Category: genai.HarmCategoryHarassment, Threshold: genai.HarmBlockThresholdBlockNone},
			{Category: genai.HarmCategoryHateSpeech, Threshold: genai.HarmBlockThresholdBlockNone},
			{Category: genai.HarmCategorySexuallyExplicit, Threshold: genai.HarmBlockThresholdBlockNone},
			{Category: genai.HarmCategoryDangerousContent, Threshold: genai.HarmBlockThresholdBlockNone},
		},
	}

	result, err := client.Models.GenerateContent(ctx, gp.config.LLM.Model, contents, genConfig)
	if err != nil {
		return "", gp.wrapError(err)
	}

	text := result.Text()
	if text == "" {
		return "", &AttemptError{Kind: FailureOther, Err: errors.New("empty response from Gemini")}
	}
	return text, nil
}

// Name returns the name of the provider.
func (gp *GeminiProvider) Name() string {
	return "gemini"
}

// buildContents converts a generation request into the ordered content list
// the API expects.
func buildContents(req models.GenerationRequest) []*genai.Content {
	var contents []*genai.Content
	if req.Chat {
		for _, turn := range req.History {
			var role genai.Role = genai.RoleUser
			if turn.Role == models.RoleAssistant {
				role = genai.RoleModel
			}
			contents = append(contents, genai.NewContentFromText(turn.Content, role))
		}
	}
	contents = append(contents, genai.NewContentFromText(req.Prompt, genai.RoleUser))
	return contents
}

// wrapError classifies an API failure by its HTTP status code.
func (gp *GeminiProvider) wrapError(err error) error {
	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		return &AttemptError{Kind: ClassifyStatus(apiErr.Code), Err: err}
	}
	return &AttemptError{Kind: FailureOther, Err: err}
}
