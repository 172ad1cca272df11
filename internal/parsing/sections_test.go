package parsing

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/career-compass/internal/types"
)

const sampleResume = `JOHN DOE

CONTACT
john.doe@example.com
(555) 123-4567

SUMMARY
Seasoned engineer who ships reliable web services.

EXPERIENCE
Led a team of five building payment infrastructure.
Reduced deployment times from hours to minutes.

SKILLS
JavaScript, React, Node.js, SQL`

func TestExtractSections(t *testing.T) {
	sections := ExtractSections(Preprocess(sampleResume))

	require.Contains(t, sections, types.SectionContact)
	require.Contains(t, sections, types.SectionSummary)
	require.Contains(t, sections, types.SectionExperience)
	require.Contains(t, sections, types.SectionSkills)

	assert.Contains(t, sections[types.SectionContact].Content, "john.doe@example.com")
	assert.Contains(t, sections[types.SectionExperience].Content, "payment infrastructure")
	assert.Equal(t, "JavaScript, React, Node.js, SQL", sections[types.SectionSkills].Content)

	// The name line precedes the first header and lands in the unknown bucket.
	require.Contains(t, sections, types.SectionUnknown)
	assert.Contains(t, sections[types.SectionUnknown].Content, "JOHN DOE")
}

func TestExtractSectionsNoHeaders(t *testing.T) {
	text := "I enjoy hiking in the mountains.\nOn weekends I bake bread."
	sections := ExtractSections(text)

	require.Len(t, sections, 1)
	require.Contains(t, sections, types.SectionUnknown)
	assert.Contains(t, sections[types.SectionUnknown].Content, "hiking")
	assert.Contains(t, sections[types.SectionUnknown].Content, "bake bread")
}

func TestExtractSectionsEmptyInput(t *testing.T) {
	assert.Empty(t, ExtractSections(""))
}

func TestDetectSectionHeader(t *testing.T) {
	tests := []struct {
		name     string
		line     string
		expected types.SectionName
	}{
		{"all caps skills header", "SKILLS", types.SectionSkills},
		{"experience with colon", "Experience:", types.SectionExperience},
		{"education header", "Education", types.SectionEducation},
		{"licenses header", "Licenses", types.SectionCertifications},
		{"projects header", "Personal Projects", types.SectionProjects},
		{"plain prose", "I fixed the flaky integration suite last sprint", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lines := []string{"", tt.line, ""}
			match := detectSectionHeader(tt.line, 1, lines)
			if tt.expected == "" {
				assert.Empty(t, string(match.section))
				return
			}
			assert.Equal(t, tt.expected, match.section)
			assert.Greater(t, match.confidence, HeaderConfidenceThreshold)
		})
	}
}

func TestDetectSectionHeaderStandaloneBonus(t *testing.T) {
	lines := []string{"SKILLS", strings.Repeat("skills and more skills ", 4)}

	short := detectSectionHeader(lines[0], 0, lines)
	long := detectSectionHeader(lines[1], 1, lines)

	require.Equal(t, types.SectionSkills, short.section)
	require.Equal(t, types.SectionSkills, long.section)
	assert.Greater(t, short.confidence, long.confidence,
		"short standalone lines should score higher than body-length lines")
}

func TestDetectSectionHeaderTieBreak(t *testing.T) {
	// "certification" appears in both the education and certifications
	// pattern groups; education carries the higher weight, so it wins.
	lines := []string{"", "Certification", ""}
	match := detectSectionHeader(lines[1], 1, lines)
	assert.Equal(t, types.SectionEducation, match.section)
}
