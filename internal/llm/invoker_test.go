package llm

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/IqraS-gif/ai-career-coach-backend/internal/llm/providers"
	"github.com/IqraS-gif/ai-career-coach-backend/pkg/models"
)

// scriptedProvider fails the first failures attempts, then succeeds. It
// records every credential it was handed, in call order.
type scriptedProvider struct {
	failures int
	err      error
	calls    []string
}

func (p *scriptedProvider) Generate(_ context.Context, credential string, _ models.GenerationRequest) (string, error) {
	p.calls = append(p.calls, credential)
	if len(p.calls) <= p.failures {
		if p.err != nil {
			return "", p.err
		}
		return "", errors.New("attempt failed")
	}
	return "generated text", nil
}

func (p *scriptedProvider) Name() string { return "scripted" }

func newTestPool(t *testing.T, keys ...string) *CredentialPool {
	t.Helper()
	pool, err := NewCredentialPool(keys)
	require.NoError(t, err)
	return pool
}

func TestInvoke_FirstCredentialSucceeds(t *testing.T) {
	provider := &scriptedProvider{}
	inv := NewInvoker(newTestPool(t, "k1", "k2", "k3"), provider)

	out, err := inv.Invoke(context.Background(), models.GenerationRequest{Prompt: "hi"})
	require.NoError(t, err)
	assert.Equal(t, "generated text", out.Text)
	assert.Equal(t, 1, out.Attempts)
	assert.Equal(t, []string{"k1"}, provider.calls)
}

func TestInvoke_AdvancesInPoolOrder(t *testing.T) {
	provider := &scriptedProvider{failures: 2}
	inv := NewInvoker(newTestPool(t, "k1", "k2", "k3"), provider)

	out, err := inv.Invoke(context.Background(), models.GenerationRequest{Prompt: "hi"})
	require.NoError(t, err)
	assert.Equal(t, 3, out.Attempts)
	assert.Equal(t, []string{"k1", "k2", "k3"}, provider.calls)
}

func TestInvoke_ClassifiedFailureStillAdvances(t *testing.T) {
	provider := &scriptedProvider{
		failures: 1,
		err:      &providers.AttemptError{Kind: providers.FailureQuotaExhausted, Err: errors.New("429")},
	}
	inv := NewInvoker(newTestPool(t, "k1", "k2"), provider)

	out, err := inv.Invoke(context.Background(), models.GenerationRequest{Prompt: "hi"})
	require.NoError(t, err)
	assert.Equal(t, 2, out.Attempts)
}

func TestInvoke_AllCredentialsExhausted(t *testing.T) {
	provider := &scriptedProvider{failures: 3}
	inv := NewInvoker(newTestPool(t, "k1", "k2", "k3"), provider)

	out, err := inv.Invoke(context.Background(), models.GenerationRequest{Prompt: "hi"})
	assert.Nil(t, out)
	assert.ErrorIs(t, err, ErrAllCredentialsFailed)
	// Single pass over the pool, every credential tried exactly once.
	assert.Equal(t, []string{"k1", "k2", "k3"}, provider.calls)
}

func TestInvoke_ContextCanceledBetweenAttempts(t *testing.T) {
	provider := &scriptedProvider{failures: 10}
	inv := NewInvoker(newTestPool(t, "k1", "k2", "k3"), provider)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	out, err := inv.Invoke(ctx, models.GenerationRequest{Prompt: "hi"})
	assert.Nil(t, out)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, provider.calls)
}
