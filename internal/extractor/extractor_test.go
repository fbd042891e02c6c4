package extractor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractText_Txt(t *testing.T) {
	text, err := ExtractText("resume.txt", []byte("Ada Lovelace\nSoftware Engineer"))
	require.NoError(t, err)
	assert.Contains(t, text, "Ada Lovelace")
}

func TestExtractText_TxtCaseInsensitiveExtension(t *testing.T) {
	_, err := ExtractText("RESUME.TXT", []byte("content"))
	assert.NoError(t, err)
}

func TestExtractText_Empty(t *testing.T) {
	_, err := ExtractText("resume.txt", []byte("   \n\t  "))
	assert.ErrorIs(t, err, ErrEmptyDocument)
}

func TestExtractText_UnsupportedType(t *testing.T) {
	_, err := ExtractText("resume.png", []byte("binary"))
	assert.ErrorIs(t, err, ErrUnsupportedFileType)

	_, err = ExtractText("noextension", []byte("text"))
	assert.ErrorIs(t, err, ErrUnsupportedFileType)
}

func TestExtractText_CorruptPDF(t *testing.T) {
	_, err := ExtractText("resume.pdf", []byte("definitely not a pdf"))
	assert.Error(t, err)
}

func TestExtractText_CorruptDocx(t *testing.T) {
	_, err := ExtractText("resume.docx", []byte("definitely not a docx"))
	assert.Error(t, err)
}
