package providers

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyStatus(t *testing.T) {
	assert.Equal(t, FailureQuotaExhausted, ClassifyStatus(429))
	assert.Equal(t, FailureAuthRejected, ClassifyStatus(401))
	assert.Equal(t, FailureAuthRejected, ClassifyStatus(403))
	assert.Equal(t, FailureServerError, ClassifyStatus(500))
	assert.Equal(t, FailureServerError, ClassifyStatus(503))
	assert.Equal(t, FailureOther, ClassifyStatus(400))
	assert.Equal(t, FailureOther, ClassifyStatus(404))
}

func TestClassify(t *testing.T) {
	quota := &AttemptError{Kind: FailureQuotaExhausted, Err: errors.New("429")}
	assert.Equal(t, FailureQuotaExhausted, Classify(quota))

	wrapped := fmt.Errorf("call failed: %w", quota)
	assert.Equal(t, FailureQuotaExhausted, Classify(wrapped))

	assert.Equal(t, FailureOther, Classify(errors.New("plain")))
	assert.Equal(t, FailureOther, Classify(nil))
}

func TestAttemptError_Unwrap(t *testing.T) {
	inner := errors.New("boom")
	err := &AttemptError{Kind: FailureServerError, Err: inner}
	assert.ErrorIs(t, err, inner)
	assert.Contains(t, err.Error(), "server_error")
}
