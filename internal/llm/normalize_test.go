package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize_PlainJSON(t *testing.T) {
	value, ok := Normalize(`{"name": "Ada", "score": 9}`)
	require.True(t, ok)

	obj, isMap := value.(map[string]interface{})
	require.True(t, isMap)
	assert.Equal(t, "Ada", obj["name"])
}

func TestNormalize_MarkdownFence(t *testing.T) {
	raw := "```json\n{\"status\": \"ok\"}\n```"
	value, ok := Normalize(raw)
	require.True(t, ok)
	assert.Equal(t, map[string]interface{}{"status": "ok"}, value)
}

func TestNormalize_BareFence(t *testing.T) {
	raw := "```\n{\"status\": \"ok\"}\n```"
	_, ok := Normalize(raw)
	assert.True(t, ok)
}

func TestNormalize_ProseAroundObject(t *testing.T) {
	raw := "Sure! Here is the JSON you asked for:\n{\"a\": 1}\nLet me know if you need anything else."
	value, ok := Normalize(raw)
	require.True(t, ok)
	assert.Equal(t, map[string]interface{}{"a": float64(1)}, value)
}

func TestNormalize_GreedyBraceRecovery(t *testing.T) {
	// Nested objects: recovery must span first '{' to last '}'.
	raw := "prefix {\"outer\": {\"inner\": true}} suffix"
	value, ok := Normalize(raw)
	require.True(t, ok)

	obj := value.(map[string]interface{})
	assert.Contains(t, obj, "outer")
}

func TestNormalize_Garbage(t *testing.T) {
	for _, raw := range []string{"", "   ", "not json at all", "{broken", "{{{"} {
		value, ok := Normalize(raw)
		assert.False(t, ok, "input %q", raw)
		assert.Nil(t, value)
	}
}

func TestNormalizeInto_Typed(t *testing.T) {
	var out struct {
		Rating int    `json:"rating"`
		Reason string `json:"reason"`
	}
	ok := NormalizeInto("```json\n{\"rating\": 8, \"reason\": \"solid match\"}\n```", &out)
	require.True(t, ok)
	assert.Equal(t, 8, out.Rating)
	assert.Equal(t, "solid match", out.Reason)
}

func TestNormalizeInto_TypeMismatch(t *testing.T) {
	var out []string
	ok := NormalizeInto(`{"a": 1}`, &out)
	assert.False(t, ok)
}

func TestStripFences(t *testing.T) {
	assert.Equal(t, `{"a":1}`, StripFences("```json\n{\"a\":1}\n```"))
	assert.Equal(t, `{"a":1}`, StripFences("```\n{\"a\":1}\n```"))
	assert.Equal(t, `{"a":1}`, StripFences(`{"a":1}`))
}

func TestBracketSubstring(t *testing.T) {
	sub, ok := BracketSubstring("here you go: [1, 2, 3] done")
	require.True(t, ok)
	assert.Equal(t, "[1, 2, 3]", sub)

	_, ok = BracketSubstring("no array here")
	assert.False(t, ok)

	_, ok = BracketSubstring("] reversed [")
	assert.False(t, ok)
}
