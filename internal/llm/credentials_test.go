package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadCredentialPool_NumberedKeys(t *testing.T) {
	t.Setenv("GOOGLE_API_KEY", "")
	t.Setenv("GEMINI_API_KEY_1", "key-one")
	t.Setenv("GEMINI_API_KEY_2", "key-two")
	t.Setenv("GEMINI_API_KEY_3", "key-three")

	pool, err := LoadCredentialPool()
	require.NoError(t, err)
	assert.Equal(t, 3, pool.Size())
	assert.Equal(t, "key-one", pool.At(0))
	assert.Equal(t, "key-three", pool.At(2))
}

func TestLoadCredentialPool_LegacyAlias(t *testing.T) {
	t.Setenv("GEMINI_API_KEY_1", "")
	t.Setenv("GEMINI_API_KEY_2", "")
	t.Setenv("GOOGLE_API_KEY", "legacy-key")

	pool, err := LoadCredentialPool()
	require.NoError(t, err)
	assert.Equal(t, 1, pool.Size())
	assert.Equal(t, "legacy-key", pool.At(0))
}

func TestLoadCredentialPool_NumberedKeyWinsOverAlias(t *testing.T) {
	t.Setenv("GEMINI_API_KEY_1", "numbered")
	t.Setenv("GEMINI_API_KEY_2", "")
	t.Setenv("GOOGLE_API_KEY", "legacy")

	pool, err := LoadCredentialPool()
	require.NoError(t, err)
	assert.Equal(t, 1, pool.Size())
	assert.Equal(t, "numbered", pool.At(0))
}

func TestLoadCredentialPool_StopsAtFirstGap(t *testing.T) {
	t.Setenv("GOOGLE_API_KEY", "")
	t.Setenv("GEMINI_API_KEY_1", "key-one")
	t.Setenv("GEMINI_API_KEY_2", "")
	t.Setenv("GEMINI_API_KEY_3", "unreachable")

	pool, err := LoadCredentialPool()
	require.NoError(t, err)
	assert.Equal(t, 1, pool.Size())
}

func TestLoadCredentialPool_Empty(t *testing.T) {
	t.Setenv("GOOGLE_API_KEY", "")
	t.Setenv("GEMINI_API_KEY_1", "")

	pool, err := LoadCredentialPool()
	assert.Nil(t, pool)
	assert.ErrorIs(t, err, ErrNoCredentials)
}

func TestNewCredentialPool_CopiesInput(t *testing.T) {
	keys := []string{"a", "b"}
	pool, err := NewCredentialPool(keys)
	require.NoError(t, err)

	keys[0] = "mutated"
	assert.Equal(t, "a", pool.At(0))
}
