package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateRequestID_Unique(t *testing.T) {
	a := GenerateRequestID()
	b := GenerateRequestID()
	assert.NotEmpty(t, a)
	assert.NotEqual(t, a, b)
}

func TestGetStringOrDefault(t *testing.T) {
	assert.Equal(t, "value", GetStringOrDefault("value", "fallback"))
	assert.Equal(t, "fallback", GetStringOrDefault("", "fallback"))
}

func TestNormalizeFilename(t *testing.T) {
	assert.Equal(t, "my_resume_final.pdf", NormalizeFilename("  My Resume  Final.PDF "))
	assert.Equal(t, "resume.docx", NormalizeFilename("resume.docx"))
}
