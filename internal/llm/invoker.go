package llm

import (
	"context"
	"fmt"

	"github.com/IqraS-gif/ai-career-coach-backend/internal/logging"
	"github.com/IqraS-gif/ai-career-coach-backend/internal/llm/providers"
	"github.com/IqraS-gif/ai-career-coach-backend/pkg/models"
)

// Invoker performs generation calls with credential fallback: it tries each
// credential in pool order until one succeeds or the pool is exhausted.
// Attempts are strictly sequential; racing credentials would multiply spend
// against the same quota pool without benefit. The invoker holds no mutable
// state, so one instance serves all concurrent requests.
type Invoker struct {
	pool     *CredentialPool
	provider Provider
	logger   logging.Logger
}

// NewInvoker creates an invoker over an immutable credential pool.
func NewInvoker(pool *CredentialPool, provider Provider) *Invoker {
	return &Invoker{
		pool:     pool,
		provider: provider,
		logger:   logging.GetGlobalLogger(),
	}
}

// Invoke tries the request against each credential in ascending pool order.
// The first successful attempt wins and remaining credentials are not tried.
// A classified transient failure (quota, auth, server error) and any other
// attempt error are handled identically: log a warning and advance. When the
// whole pool has been tried without success the call returns
// ErrAllCredentialsFailed. Context cancellation is checked between attempts
// so callers can bound total latency with a deadline.
func (inv *Invoker) Invoke(ctx context.Context, req models.GenerationRequest) (*models.Outcome, error) {
	for i := 0; i < inv.pool.Size(); i++ {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("invocation canceled after %d attempt(s): %w", i, err)
		}

		text, err := inv.provider.Generate(ctx, inv.pool.At(i), req)
		if err == nil {
			inv.logger.Debug("generation attempt succeeded", map[string]interface{}{
				"credential_index": i + 1,
				"provider":         inv.provider.Name(),
				"chat":             req.Chat,
			})
			return &models.Outcome{Text: text, Attempts: i + 1, Provider: inv.provider.Name()}, nil
		}

		inv.logger.Warn("generation attempt failed, advancing to next credential", map[string]interface{}{
			"credential_index": i + 1,
			"provider":         inv.provider.Name(),
			"failure_kind":     providers.Classify(err).String(),
			"error":            err.Error(),
		})
	}

	inv.logger.Error("all credentials exhausted for generation request", map[string]interface{}{
		"pool_size": inv.pool.Size(),
		"provider":  inv.provider.Name(),
	})
	return nil, ErrAllCredentialsFailed
}
