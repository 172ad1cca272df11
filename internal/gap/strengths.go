package gap

import (
	"sort"

	"github.com/jonathan/career-compass/internal/types"
)

// Strength composite-score weights: role relevance dominates, trend score
// and proficiency split the rest.
const (
	strengthRelevanceWeight   = 0.4
	strengthTrendWeight       = 0.3
	strengthProficiencyWeight = 0.3

	requiredRelevanceValue  = 1.0
	preferredRelevanceValue = 0.6
)

// IdentifyStrengths returns the extracted skills that the target role
// asks for, annotated with market data and sorted by composite strength
// score descending.
func IdentifyStrengths(profile *types.SkillProfile, role types.RoleRequirement, trends TrendIndex) []types.Strength {
	var strengths []types.Strength

	for _, skill := range profile.Flatten() {
		isRequired := contains(role.RequiredSkills, skill.SkillName)
		isPreferred := contains(role.PreferredSkills, skill.SkillName)
		if !isRequired && !isPreferred {
			continue
		}

		relevance := types.RelevancePreferred
		if isRequired {
			relevance = types.RelevanceRequired
		}

		record := trends[skill.SkillName]
		strengths = append(strengths, types.Strength{
			Skill:                skill.SkillName,
			Category:             skill.Category,
			ExperienceLevel:      skill.ExperienceLevel,
			Confidence:           skill.ConfidenceScore,
			RoleRelevance:        relevance,
			MarketDemand:         marketDemand(record),
			TrendScore:           record.TrendScore,
			GrowthRate:           record.GrowthRate,
			ImprovementPotential: improvementPotential(skill),
		})
	}

	sort.SliceStable(strengths, func(i, j int) bool {
		return strengthScore(strengths[i]) > strengthScore(strengths[j])
	})
	return strengths
}

// strengthScore combines role relevance, trend score, and proficiency
// into one sortable composite.
func strengthScore(s types.Strength) float64 {
	relevance := preferredRelevanceValue
	if s.RoleRelevance == types.RelevanceRequired {
		relevance = requiredRelevanceValue
	}
	return relevance*strengthRelevanceWeight +
		(s.TrendScore/100)*strengthTrendWeight +
		s.ExperienceLevel.Multiplier()*strengthProficiencyWeight
}

// improvementPotential estimates remaining headroom: distance from expert
// proficiency plus half the confidence shortfall, capped at 1.
func improvementPotential(skill types.ExtractedSkill) float64 {
	potential := (1 - skill.ExperienceLevel.Multiplier()) + (1-skill.ConfidenceScore)*0.5
	if potential > 1 {
		potential = 1
	}
	return potential
}
