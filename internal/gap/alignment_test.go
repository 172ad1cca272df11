package gap

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/career-compass/internal/types"
)

func TestCalculateMarketAlignment(t *testing.T) {
	role := types.RoleRequirement{
		RoleName:       "Test Role",
		RequiredSkills: []string{"A", "B"},
	}

	strengths := []types.Strength{
		{Skill: "A", RoleRelevance: types.RelevanceRequired,
			TrendScore: 50, MarketDemand: 60, ExperienceLevel: types.LevelExpert},
		{Skill: "B", RoleRelevance: types.RelevanceRequired,
			TrendScore: 30, MarketDemand: 40, ExperienceLevel: types.LevelIntermediate},
	}

	score := CalculateMarketAlignment(strengths, role)

	// coverage 2/2, avg trend 0.4, avg demand 0.5, avg proficiency 0.85
	expected := 1.0*0.4 + 0.4*0.2 + 0.5*0.2 + 0.85*0.2
	assert.InDelta(t, expected, score, 1e-9)
}

func TestCalculateMarketAlignmentNoStrengths(t *testing.T) {
	score := CalculateMarketAlignment(nil, fullStackRole())
	assert.Zero(t, score)
}

func TestCalculateMarketAlignmentEmptyRequiredSkills(t *testing.T) {
	strengths := []types.Strength{
		{Skill: "A", RoleRelevance: types.RelevancePreferred,
			TrendScore: 50, MarketDemand: 50, ExperienceLevel: types.LevelExpert},
	}
	score := CalculateMarketAlignment(strengths, types.RoleRequirement{RoleName: "Empty"})

	assert.GreaterOrEqual(t, score, 0.0)
	assert.LessOrEqual(t, score, 1.0)
}

func TestCalculateMarketAlignmentBounded(t *testing.T) {
	// Even implausible inputs stay within [0,1].
	strengths := []types.Strength{
		{Skill: "A", RoleRelevance: types.RelevanceRequired,
			TrendScore: 1000, MarketDemand: 1000, ExperienceLevel: types.LevelExpert},
	}
	role := types.RoleRequirement{RequiredSkills: []string{"A"}}

	score := CalculateMarketAlignment(strengths, role)
	assert.LessOrEqual(t, score, 1.0)
	assert.GreaterOrEqual(t, score, 0.0)
}

func TestAlignmentPercentage(t *testing.T) {
	assert.Equal(t, 0, AlignmentPercentage(0))
	assert.Equal(t, 100, AlignmentPercentage(1))
	assert.Equal(t, 73, AlignmentPercentage(0.734))
	assert.Equal(t, 100, AlignmentPercentage(1.7))
	assert.Equal(t, 0, AlignmentPercentage(-0.2))
}
