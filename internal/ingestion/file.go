// Package ingestion reads resume documents from files for analysis.
package ingestion

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ledongthuc/pdf"
)

// UnsupportedFileTypeError reports a resume file with an extension the
// reader does not handle.
type UnsupportedFileTypeError struct {
	Path      string
	Extension string
}

func (e *UnsupportedFileTypeError) Error() string {
	return fmt.Sprintf("unsupported file type %q for %s (expected .txt or .pdf)", e.Extension, e.Path)
}

// ReadResumeFile extracts resume text from a file. Plain text files are
// read directly; PDF files go through text extraction. Any other
// extension is an UnsupportedFileTypeError.
func ReadResumeFile(path string) (string, error) {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".txt":
		data, err := os.ReadFile(path)
		if err != nil {
			return "", fmt.Errorf("failed to read resume file %s: %w", path, err)
		}
		return string(data), nil
	case ".pdf":
		return extractPDFText(path)
	default:
		return "", &UnsupportedFileTypeError{Path: path, Extension: ext}
	}
}

// extractPDFText concatenates the plain text of every page in a PDF.
// Pages that fail extraction are skipped; a resume that yields no text at
// all degrades downstream into a low-completeness report.
func extractPDFText(path string) (string, error) {
	file, reader, err := pdf.Open(path)
	if err != nil {
		return "", fmt.Errorf("failed to open pdf %s: %w", path, err)
	}
	defer func() { _ = file.Close() }()

	var builder strings.Builder
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		builder.WriteString(text)
		builder.WriteString("\n")
	}
	return builder.String(), nil
}
