package skills

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/career-compass/internal/types"
)

const extractSample = `SKILLS
JavaScript, React, PostgreSQL, Docker

EXPERIENCE
Senior JavaScript developer, 6 years experience building web applications.
Built React frontends backed by Postgres. Strong communication and leadership.`

func TestExtract(t *testing.T) {
	profile := Extract("JavaScript, React, PostgreSQL, Docker", extractSample, DefaultDatabase())

	languages := profile.Technical[types.CategoryProgrammingLanguage]
	require.NotEmpty(t, languages)
	assert.Equal(t, "JavaScript", languages[0].SkillName)
	assert.Equal(t, types.LevelExpert, languages[0].ExperienceLevel)
	assert.Equal(t, 6.0, languages[0].YearsExperience)
	assert.GreaterOrEqual(t, languages[0].MentionCount, 2)

	var frameworkNames []string
	for _, skill := range profile.Technical[types.CategoryFramework] {
		frameworkNames = append(frameworkNames, skill.SkillName)
	}
	assert.Contains(t, frameworkNames, "React")

	// "Postgres" is a known variation of PostgreSQL.
	var dbNames []string
	for _, skill := range profile.Technical[types.CategoryDatabase] {
		dbNames = append(dbNames, skill.SkillName)
	}
	assert.Contains(t, dbNames, "PostgreSQL")

	assert.Contains(t, profile.Soft, "Communication")
	assert.Contains(t, profile.Soft, "Leadership")
}

func TestExtractSortedByConfidence(t *testing.T) {
	profile := Extract("", extractSample, DefaultDatabase())

	for _, extracted := range profile.Technical {
		for i := 1; i < len(extracted); i++ {
			assert.GreaterOrEqual(t, extracted[i-1].ConfidenceScore, extracted[i].ConfidenceScore)
		}
	}
}

func TestExtractEmptyDatabase(t *testing.T) {
	profile := Extract("skills section", "full text", &Database{})

	assert.Empty(t, profile.Technical)
	assert.Empty(t, profile.Soft)

	nilProfile := Extract("skills section", "full text", nil)
	assert.Empty(t, nilProfile.Technical)
}

func TestExtractNoSkillsFound(t *testing.T) {
	profile := Extract("", "I enjoy gardening and long walks.", DefaultDatabase())

	assert.Empty(t, profile.Flatten())
}

func TestDatabaseEmpty(t *testing.T) {
	assert.True(t, (*Database)(nil).Empty())
	assert.True(t, (&Database{}).Empty())
	assert.False(t, DefaultDatabase().Empty())
}

func TestProfileFlattenOrder(t *testing.T) {
	profile := types.SkillProfile{
		Technical: map[types.SkillCategory][]types.ExtractedSkill{
			types.CategoryFramework:           {{SkillName: "React"}},
			types.CategoryProgrammingLanguage: {{SkillName: "Go"}},
		},
	}

	flat := profile.Flatten()
	require.Len(t, flat, 2)
	// Flatten walks categories in their canonical order.
	assert.Equal(t, "Go", flat[0].SkillName)
	assert.Equal(t, "React", flat[1].SkillName)
}
