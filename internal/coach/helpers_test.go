package coach

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseOptimizationInput(t *testing.T) {
	tests := []struct {
		input       string
		section     string
		instruction string
	}{
		{"summary: make it punchier", "summary", "make it punchier"},
		{"summary", "summary", ""},
		{"make the whole thing stronger", "", "make the whole thing stronger"},
		{"  projects :  add metrics ", "projects", "add metrics"},
		{"", "", ""},
		{"   ", "", ""},
	}

	for _, tt := range tests {
		section, instruction := parseOptimizationInput(tt.input)
		assert.Equal(t, tt.section, section, "input %q", tt.input)
		assert.Equal(t, tt.instruction, instruction, "input %q", tt.input)
	}
}

func TestBestSectionKey(t *testing.T) {
	keys := []string{"personal_info", "work_experience", "projects", "education"}

	assert.Equal(t, "work_experience", bestSectionKey("work experience", keys))
	assert.Equal(t, "work_experience", bestSectionKey("experience", keys))
	assert.Equal(t, "projects", bestSectionKey("Projects", keys))
	assert.Equal(t, "education", bestSectionKey("education-section", keys))
	assert.Equal(t, "", bestSectionKey("certifications", keys))
	assert.Equal(t, "", bestSectionKey("", keys))
}

func TestStringifyListContent(t *testing.T) {
	assert.Equal(t, "one\ntwo", stringifyListContent([]interface{}{"one", "two"}))
	assert.Equal(t, "plain", stringifyListContent("plain"))
	assert.Equal(t, "", stringifyListContent(nil))

	got := stringifyListContent([]interface{}{
		map[string]interface{}{"role_name": "Engineer"},
	})
	assert.Equal(t, "Role Name: Engineer", got)
}

func TestTitleCase(t *testing.T) {
	assert.Equal(t, "Work Experience", titleCase("work_experience"))
	assert.Equal(t, "Achievements", titleCase("achievements"))
}
