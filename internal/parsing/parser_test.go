package parsing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/career-compass/internal/types"
)

func TestParseResume(t *testing.T) {
	parsed := ParseResume(sampleResume)

	require.Contains(t, parsed.Sections, types.SectionSkills)
	assert.Equal(t, "john.doe@example.com", parsed.Contact.Email)
	assert.Equal(t, "(555) 123-4567", parsed.Contact.Phone)

	assert.Equal(t, sampleResume, parsed.Document.RawText)
	assert.NotEmpty(t, parsed.Document.CleanedText)

	// Contact, summary, experience, and skills are present; education,
	// projects, and certifications are not.
	assert.Greater(t, parsed.Completeness.Score, 0.5)
	assert.Less(t, parsed.Completeness.Score, 1.0)
	assert.Contains(t, parsed.Completeness.MissingSections, types.SectionEducation)

	assert.Greater(t, parsed.Readability, 0.0)
	assert.LessOrEqual(t, parsed.Readability, 1.0)
}

func TestParseResumeMalformedInput(t *testing.T) {
	parsed := ParseResume("@@@@ ???? ....\n\x00\x01 garbage")

	// Malformed input degrades quality instead of failing.
	assert.NotNil(t, parsed.Sections)
	assert.Less(t, parsed.Completeness.Score, 0.5)
	assert.Empty(t, parsed.Contact.Email)
}
