package skills

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/career-compass/internal/types"
)

func mentionWithContext(context string) types.SkillMention {
	return types.SkillMention{Context: context}
}

func TestEstimateExperienceLevel(t *testing.T) {
	tests := []struct {
		name     string
		contexts []string
		expected types.ExperienceLevel
	}{
		{
			name:     "senior with years",
			contexts: []string{"Senior JavaScript developer with expert knowledge, 6 years experience"},
			expected: types.LevelExpert,
		},
		{
			name:     "basic understanding",
			contexts: []string{"Basic understanding of Python"},
			expected: types.LevelBeginner,
		},
		{
			name:     "proficient with moderate years",
			contexts: []string{"Proficient in React, 3 years experience"},
			expected: types.LevelIntermediate,
		},
		{
			name:     "no indicators at all",
			contexts: []string{"Used Redis for caching"},
			expected: types.LevelBeginner,
		},
		{
			name:     "intermediate wins tie against beginner",
			contexts: []string{"proficient but still learning"},
			expected: types.LevelIntermediate,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var mentions []types.SkillMention
			for _, ctx := range tt.contexts {
				mentions = append(mentions, mentionWithContext(ctx))
			}
			level, _ := estimateExperienceLevel(mentions)
			assert.Equal(t, tt.expected, level)
		})
	}
}

func TestExtractYearsExperience(t *testing.T) {
	tests := []struct {
		name     string
		contexts []string
		expected float64
	}{
		{"single figure", []string{"4 years of Go"}, 4},
		{"plus suffix", []string{"10+ yrs in backend work"}, 10},
		{"largest wins", []string{"2 years at Acme", "7 years total"}, 7},
		{"no figure", []string{"shipped a side project"}, 0},
		{"abbreviated", []string{"3 yr stint"}, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var mentions []types.SkillMention
			for _, ctx := range tt.contexts {
				mentions = append(mentions, mentionWithContext(ctx))
			}
			assert.Equal(t, tt.expected, ExtractYearsExperience(mentions))
		})
	}
}

func TestAnalyzeComplexity(t *testing.T) {
	mentions := []types.SkillMention{
		mentionWithContext("architected a distributed ingest pipeline"),
		mentionWithContext("attended a workshop"),
	}
	assert.InDelta(t, 0.5, analyzeComplexity(mentions), 1e-9)
	assert.Zero(t, analyzeComplexity(nil))
}

func TestComplexityPushesLevelUp(t *testing.T) {
	// No explicit level indicators, but every context describes owning
	// production systems: the complexity signal alone lifts the level.
	mentions := []types.SkillMention{
		mentionWithContext("scaled the production platform"),
		mentionWithContext("optimized a distributed cache"),
	}
	level, _ := estimateExperienceLevel(mentions)
	assert.Equal(t, types.LevelExpert, level)
}
