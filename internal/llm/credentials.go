package llm

import (
	"fmt"
	"os"
)

// CredentialPool is an immutable, ordered list of interchangeable API keys.
// It is built once at startup and shared read-only across all concurrent
// invocations; a credential that fails is skipped for that call only, never
// removed.
type CredentialPool struct {
	keys []string
}

// NewCredentialPool builds a pool from an explicit key list.
func NewCredentialPool(keys []string) (*CredentialPool, error) {
	if len(keys) == 0 {
		return nil, ErrNoCredentials
	}
	copied := make([]string, len(keys))
	copy(copied, keys)
	return &CredentialPool{keys: copied}, nil
}

// LoadCredentialPool reads numbered credentials from the environment:
// GEMINI_API_KEY_1, GEMINI_API_KEY_2, ... stopping at the first missing
// index. GOOGLE_API_KEY is accepted as a legacy alias for slot 1. An empty
// result is a fatal startup condition, surfaced as ErrNoCredentials.
func LoadCredentialPool() (*CredentialPool, error) {
	var keys []string
	for i := 1; ; i++ {
		key := os.Getenv(fmt.Sprintf("GEMINI_API_KEY_%d", i))
		if i == 1 && key == "" {
			key = os.Getenv("GOOGLE_API_KEY")
		}
		if key == "" {
			break
		}
		keys = append(keys, key)
	}
	return NewCredentialPool(keys)
}

// Size returns the number of credentials in the pool.
func (p *CredentialPool) Size() int {
	return len(p.keys)
}

// At returns the credential at the given zero-based index.
func (p *CredentialPool) At(i int) string {
	return p.keys[i]
}
