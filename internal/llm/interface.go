package llm

import (
	"context"

	"github.com/IqraS-gif/ai-career-coach-backend/pkg/models"
)

// Provider performs a single generation attempt against the remote service
// using the given credential for authorization.
type Provider interface {
	// Generate submits the request authorized by credential and returns the
	// raw text payload. Failures carry a providers.AttemptError so the
	// invoker can log why an attempt was skipped.
	Generate(ctx context.Context, credential string, req models.GenerationRequest) (string, error)

	// Name returns the provider identifier ("gemini", "claude").
	Name() string
}

// Generator is the surface call sites depend on. *Invoker implements it;
// tests substitute engineered fakes.
type Generator interface {
	Invoke(ctx context.Context, req models.GenerationRequest) (*models.Outcome, error)
}
