package coach

import (
	"fmt"
	"strings"
)

// bestSectionKey fuzzy-matches a requested section name against the keys
// actually present in the resume document. "work experience" matches
// "work_experience", a substring either way counts.
func bestSectionKey(target string, available []string) string {
	if strings.TrimSpace(target) == "" {
		return ""
	}
	t := strings.ToLower(strings.TrimSpace(target))
	t = strings.ReplaceAll(t, " ", "_")
	t = strings.ReplaceAll(t, "-", "_")
	for _, k := range available {
		kNorm := strings.ReplaceAll(strings.ToLower(k), " ", "_")
		if t == kNorm || strings.Contains(kNorm, t) || strings.Contains(t, kNorm) {
			return k
		}
	}
	return ""
}

// parseOptimizationInput splits a user request into an optional section
// target and an optional instruction. "summary: make it punchier" targets
// the summary section; a single word is a bare section target; anything
// else is a whole-document instruction.
func parseOptimizationInput(input string) (section, instruction string) {
	val := strings.TrimSpace(input)
	if val == "" {
		return "", ""
	}
	if idx := strings.Index(val, ":"); idx >= 0 {
		return strings.TrimSpace(val[:idx]), strings.TrimSpace(val[idx+1:])
	}
	if len(strings.Fields(val)) == 1 {
		return val, ""
	}
	return "", val
}

// stringifyListContent flattens a loose JSON value (string, list of strings,
// list of objects) into display text for prompt embedding.
func stringifyListContent(content interface{}) string {
	list, ok := content.([]interface{})
	if !ok {
		if content == nil {
			return ""
		}
		return fmt.Sprintf("%v", content)
	}

	var parts []string
	for _, item := range list {
		switch v := item.(type) {
		case string:
			parts = append(parts, v)
		case map[string]interface{}:
			var pairs []string
			for k, val := range v {
				pairs = append(pairs, fmt.Sprintf("%s: %v", titleCase(k), val))
			}
			parts = append(parts, strings.Join(pairs, ", "))
		default:
			parts = append(parts, fmt.Sprintf("%v", v))
		}
	}
	return strings.Join(parts, "\n")
}

// titleCase converts snake_case identifiers to display labels.
func titleCase(key string) string {
	words := strings.Fields(strings.ReplaceAll(key, "_", " "))
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
