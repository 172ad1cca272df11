package ingestion

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadResumeFileText(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "resume.txt")
	require.NoError(t, os.WriteFile(path, []byte("plain resume text"), 0o644))

	text, err := ReadResumeFile(path)
	require.NoError(t, err)
	assert.Equal(t, "plain resume text", text)
}

func TestReadResumeFileExtensionCaseInsensitive(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "resume.TXT")
	require.NoError(t, os.WriteFile(path, []byte("upper"), 0o644))

	text, err := ReadResumeFile(path)
	require.NoError(t, err)
	assert.Equal(t, "upper", text)
}

func TestReadResumeFileUnsupported(t *testing.T) {
	_, err := ReadResumeFile("resume.docx")

	var typeErr *UnsupportedFileTypeError
	require.ErrorAs(t, err, &typeErr)
	assert.Equal(t, ".docx", typeErr.Extension)
	assert.Contains(t, err.Error(), "expected .txt or .pdf")
}

func TestReadResumeFileMissing(t *testing.T) {
	_, err := ReadResumeFile(filepath.Join(t.TempDir(), "absent.txt"))
	assert.Error(t, err)
}

func TestReadResumeFileBrokenPDF(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "broken.pdf")
	require.NoError(t, os.WriteFile(path, []byte("not actually a pdf"), 0o644))

	_, err := ReadResumeFile(path)
	assert.Error(t, err)
}
