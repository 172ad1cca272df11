package gap

import (
	"math"

	"github.com/jonathan/career-compass/internal/types"
)

// Market-alignment blend weights. Documented here so tests can assert
// exact contributions: 40% required-skill coverage, 20% average trend
// score, 20% average market demand, 20% average proficiency multiplier.
const (
	alignmentCoverageWeight    = 0.4
	alignmentTrendWeight       = 0.2
	alignmentDemandWeight      = 0.2
	alignmentProficiencyWeight = 0.2
)

// CalculateMarketAlignment blends required-skill coverage with the
// average trend, demand, and proficiency of the user's strengths into a
// [0,1] score. No strengths (or an empty required set) contributes 0 to
// the affected components rather than dividing by zero.
func CalculateMarketAlignment(strengths []types.Strength, role types.RoleRequirement) float64 {
	coverage := 0.0
	if len(role.RequiredSkills) > 0 {
		requiredCount := 0
		for _, strength := range strengths {
			if strength.RoleRelevance == types.RelevanceRequired {
				requiredCount++
			}
		}
		coverage = float64(requiredCount) / float64(len(role.RequiredSkills))
	}

	avgTrend, avgDemand, avgProficiency := 0.0, 0.0, 0.0
	if len(strengths) > 0 {
		for _, strength := range strengths {
			avgTrend += strength.TrendScore / 100
			avgDemand += strength.MarketDemand / 100
			avgProficiency += strength.ExperienceLevel.Multiplier()
		}
		n := float64(len(strengths))
		avgTrend /= n
		avgDemand /= n
		avgProficiency /= n
	}

	score := coverage*alignmentCoverageWeight +
		avgTrend*alignmentTrendWeight +
		avgDemand*alignmentDemandWeight +
		avgProficiency*alignmentProficiencyWeight

	return math.Min(math.Max(score, 0), 1)
}

// AlignmentPercentage converts a [0,1] alignment score to a rounded
// integer percentage, clamped to [0,100].
func AlignmentPercentage(score float64) int {
	pct := int(math.Round(score * 100))
	if pct < 0 {
		return 0
	}
	if pct > 100 {
		return 100
	}
	return pct
}
