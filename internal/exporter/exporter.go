package exporter

import (
	"errors"
	"fmt"
	"strings"
)

// ErrEmptyResume is returned when the document has no renderable sections.
var ErrEmptyResume = errors.New("resume document is empty")

// sectionOrder fixes the rendering order of known sections; anything else
// is appended after them.
var sectionOrder = []string{
	"summary", "skills", "work_experience", "internships",
	"projects", "education", "certifications",
}

var sectionTitles = map[string]string{
	"summary":         "Summary",
	"skills":          "Skills",
	"work_experience": "Work Experience",
	"internships":     "Internships",
	"projects":        "Projects",
	"education":       "Education",
	"certifications":  "Certifications",
}

// RenderText renders a resume document as a plain-text file suitable for
// download.
func RenderText(resume map[string]interface{}) (string, error) {
	if len(resume) == 0 {
		return "", ErrEmptyResume
	}

	var b strings.Builder

	personalInfo, _ := resume["personal_info"].(map[string]interface{})
	if name, ok := personalInfo["name"].(string); ok && name != "" {
		b.WriteString(strings.ToUpper(name))
		b.WriteString("\n")
	}
	contact := contactLine(personalInfo)
	if contact != "" {
		b.WriteString(contact)
		b.WriteString("\n")
	}

	rendered := map[string]bool{"personal_info": true}
	for _, key := range sectionOrder {
		value, ok := resume[key]
		if !ok {
			continue
		}
		writeSection(&b, sectionTitles[key], value)
		rendered[key] = true
	}

	for key, value := range resume {
		if rendered[key] || strings.HasPrefix(key, "resume_") || key == "raw_text" {
			continue
		}
		writeSection(&b, displayTitle(key), value)
	}

	out := strings.TrimSpace(b.String())
	if out == "" {
		return "", ErrEmptyResume
	}
	return out + "\n", nil
}

func contactLine(personalInfo map[string]interface{}) string {
	var parts []string
	for _, key := range []string{"email", "phone", "linkedin", "github"} {
		if v, ok := personalInfo[key].(string); ok && v != "" {
			parts = append(parts, v)
		}
	}
	return strings.Join(parts, " | ")
}

func writeSection(b *strings.Builder, title string, value interface{}) {
	body := renderValue(value, 0)
	if strings.TrimSpace(body) == "" {
		return
	}
	b.WriteString("\n")
	b.WriteString(strings.ToUpper(title))
	b.WriteString("\n")
	b.WriteString(strings.Repeat("-", len(title)))
	b.WriteString("\n")
	b.WriteString(body)
	b.WriteString("\n")
}

// renderValue flattens loose JSON into indented plain text.
func renderValue(value interface{}, depth int) string {
	indent := strings.Repeat("  ", depth)
	switch v := value.(type) {
	case string:
		return indent + v
	case []interface{}:
		var lines []string
		for _, item := range v {
			switch entry := item.(type) {
			case string:
				lines = append(lines, indent+"- "+entry)
			case map[string]interface{}:
				lines = append(lines, renderEntry(entry, depth))
			default:
				lines = append(lines, fmt.Sprintf("%s- %v", indent, entry))
			}
		}
		return strings.Join(lines, "\n")
	case map[string]interface{}:
		var lines []string
		for key, val := range v {
			lines = append(lines, fmt.Sprintf("%s%s: %s", indent, displayTitle(key), flatten(val)))
		}
		return strings.Join(lines, "\n")
	case nil:
		return ""
	default:
		return fmt.Sprintf("%s%v", indent, v)
	}
}

// renderEntry formats one experience/project/education object as a heading
// line plus description bullets.
func renderEntry(entry map[string]interface{}, depth int) string {
	indent := strings.Repeat("  ", depth)

	var headParts []string
	for _, key := range []string{"role", "title", "name", "degree", "company", "institution", "duration"} {
		if v, ok := entry[key].(string); ok && v != "" {
			headParts = append(headParts, v)
		}
	}
	head := indent + strings.Join(headParts, " | ")

	lines := []string{head}
	if desc, ok := entry["description"]; ok {
		body := renderValue(desc, depth+1)
		if body != "" {
			lines = append(lines, body)
		}
	}
	return strings.Join(lines, "\n")
}

func flatten(value interface{}) string {
	switch v := value.(type) {
	case string:
		return v
	case []interface{}:
		var parts []string
		for _, item := range v {
			parts = append(parts, flatten(item))
		}
		return strings.Join(parts, ", ")
	default:
		return fmt.Sprintf("%v", v)
	}
}

func displayTitle(key string) string {
	words := strings.Fields(strings.ReplaceAll(key, "_", " "))
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
