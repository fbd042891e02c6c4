package extractor

import (
	"bytes"
	"errors"
	"fmt"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"
)

// ErrUnsupportedFileType is returned for uploads that are neither PDF, DOCX
// nor plain text.
var ErrUnsupportedFileType = errors.New("unsupported file type")

// ErrEmptyDocument is returned when extraction succeeds but yields no text.
var ErrEmptyDocument = errors.New("document contains no extractable text")

var xmlTagPattern = regexp.MustCompile(`<[^>]+>`)

// ExtractText pulls plain text out of an uploaded resume document. The
// format is chosen by file extension: .pdf, .docx, .txt.
func ExtractText(filename string, data []byte) (string, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".txt":
		return validated(string(data))
	case ".pdf":
		text, err := extractPDFText(data)
		if err != nil {
			return "", err
		}
		return validated(text)
	case ".docx":
		text, err := extractDocxText(data)
		if err != nil {
			return "", err
		}
		return validated(text)
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedFileType, filepath.Ext(filename))
	}
}

func extractPDFText(data []byte) (string, error) {
	reader := bytes.NewReader(data)
	pdfReader, err := pdf.NewReader(reader, int64(reader.Len()))
	if err != nil {
		return "", fmt.Errorf("failed to read pdf: %w", err)
	}

	var textBuilder strings.Builder
	numPages := pdfReader.NumPage()
	for i := 1; i <= numPages; i++ {
		page := pdfReader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, _ := page.GetPlainText(nil)
		textBuilder.WriteString(text)
		textBuilder.WriteString("\n")
	}
	return textBuilder.String(), nil
}

func extractDocxText(data []byte) (string, error) {
	r := bytes.NewReader(data)
	doc, err := docx.ReadDocxFromMemory(r, int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to parse docx: %w", err)
	}
	defer doc.Close()

	// GetContent returns the raw document XML; paragraph boundaries become
	// newlines and the remaining markup is stripped.
	content := doc.Editable().GetContent()
	content = strings.ReplaceAll(content, "</w:p>", "\n")
	content = xmlTagPattern.ReplaceAllString(content, "")
	return content, nil
}

func validated(text string) (string, error) {
	if strings.TrimSpace(text) == "" {
		return "", ErrEmptyDocument
	}
	return text, nil
}
