package llm

import (
	"encoding/json"
	"strings"
)

// Normalize coerces raw model output into a structured JSON value. It
// tolerates markdown code fences and surrounding prose: after fence
// stripping, a failed strict parse falls back to the greedy first-{ to
// last-} substring of the original text. Malformed input never panics; it
// degrades to (nil, false), the fallback sentinel. Only syntactic JSON
// validity is checked here; schema conformance is the caller's concern.
func Normalize(raw string) (interface{}, bool) {
	if strings.TrimSpace(raw) == "" {
		return nil, false
	}

	cleaned := StripFences(raw)

	var value interface{}
	if err := json.Unmarshal([]byte(cleaned), &value); err == nil {
		return value, true
	}

	if sub, ok := braceSubstring(raw); ok {
		if err := json.Unmarshal([]byte(sub), &value); err == nil {
			return value, true
		}
	}

	return nil, false
}

// NormalizeInto is the typed variant of Normalize: the recovered JSON is
// decoded into v. Returns false when nothing usable was recovered or the
// recovered JSON does not decode into v.
func NormalizeInto(raw string, v interface{}) bool {
	if strings.TrimSpace(raw) == "" {
		return false
	}

	cleaned := StripFences(raw)
	if err := json.Unmarshal([]byte(cleaned), v); err == nil {
		return true
	}

	if sub, ok := braceSubstring(raw); ok {
		if err := json.Unmarshal([]byte(sub), v); err == nil {
			return true
		}
	}

	return false
}

// StripFences removes a leading ```json or ``` fence marker and a trailing
// ``` marker, with whitespace trimmed on both sides of each strip.
func StripFences(s string) string {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "```json") {
		s = strings.TrimPrefix(s, "```json")
	} else if strings.HasPrefix(s, "```") {
		s = strings.TrimPrefix(s, "```")
	}
	if strings.HasSuffix(s, "```") {
		s = strings.TrimSuffix(s, "```")
	}
	return strings.TrimSpace(s)
}

// braceSubstring returns the greedy brace-delimited slice of s, from the
// first '{' to the last '}'.
func braceSubstring(s string) (string, bool) {
	start := strings.Index(s, "{")
	end := strings.LastIndex(s, "}")
	if start == -1 || end == -1 || end < start {
		return "", false
	}
	return s[start : end+1], true
}

// BracketSubstring returns the greedy bracket-delimited slice of s, from the
// first '[' to the last ']'. Used by call sites whose requested schema is a
// JSON array rather than an object.
func BracketSubstring(s string) (string, bool) {
	start := strings.Index(s, "[")
	end := strings.LastIndex(s, "]")
	if start == -1 || end == -1 || end < start {
		return "", false
	}
	return s[start : end+1], true
}
