package coach

import (
	"context"

	"github.com/IqraS-gif/ai-career-coach-backend/internal/llm"
	"github.com/IqraS-gif/ai-career-coach-backend/internal/logging"
	"github.com/IqraS-gif/ai-career-coach-backend/pkg/models"
)

// Engine owns every prompt-building call site. It assembles a prompt from
// caller data, sends it through the resilient invoker and defensively parses
// the textual reply back into JSON. Parsing failures degrade per operation:
// some return an error, some return the caller's input unchanged.
type Engine struct {
	gen    llm.Generator
	logger logging.Logger
}

// NewEngine creates an engine over any Generator implementation.
func NewEngine(gen llm.Generator) *Engine {
	return &Engine{
		gen:    gen,
		logger: logging.GetGlobalLogger(),
	}
}

// generate runs a plain one-shot prompt and returns the raw text.
func (e *Engine) generate(ctx context.Context, prompt string) (string, error) {
	outcome, err := e.gen.Invoke(ctx, models.GenerationRequest{Prompt: prompt})
	if err != nil {
		return "", err
	}
	return outcome.Text, nil
}

// generateChat runs a chat-mode prompt with prior turns replayed in order.
func (e *Engine) generateChat(ctx context.Context, prompt string, history []models.Turn) (string, error) {
	outcome, err := e.gen.Invoke(ctx, models.GenerationRequest{
		Prompt:  prompt,
		History: history,
		Chat:    true,
	})
	if err != nil {
		return "", err
	}
	return outcome.Text, nil
}
