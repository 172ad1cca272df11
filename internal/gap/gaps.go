package gap

import (
	"sort"

	"github.com/jonathan/career-compass/internal/types"
)

// IdentifyGaps computes the set difference between the role's skill sets
// and the user's extracted skills, plus any required or preferred skill
// the user covers only at beginner level. Sorted by importance (critical
// > high > medium), ties broken by trend score descending.
func IdentifyGaps(profile *types.SkillProfile, role types.RoleRequirement, trends TrendIndex) []types.Gap {
	var gaps []types.Gap
	userSkills := profile.Names()

	for _, required := range role.RequiredSkills {
		if userSkills[required] {
			continue
		}
		record := trends[required]
		gaps = append(gaps, types.Gap{
			Skill:            required,
			GapType:          types.GapMissingRequired,
			Importance:       types.ImportanceCritical,
			MarketDemand:     marketDemand(record),
			TrendScore:       record.TrendScore,
			GrowthRate:       record.GrowthRate,
			LearningEstimate: EstimateLearningTime(record.Category),
		})
	}

	for _, preferred := range role.PreferredSkills {
		if userSkills[preferred] {
			continue
		}
		record := trends[preferred]
		gaps = append(gaps, types.Gap{
			Skill:            preferred,
			GapType:          types.GapMissingPreferred,
			Importance:       types.ImportanceHigh,
			MarketDemand:     marketDemand(record),
			TrendScore:       record.TrendScore,
			GrowthRate:       record.GrowthRate,
			LearningEstimate: EstimateLearningTime(record.Category),
		})
	}

	for _, skill := range profile.Flatten() {
		if skill.ExperienceLevel != types.LevelBeginner {
			continue
		}
		isRequired := contains(role.RequiredSkills, skill.SkillName)
		if !isRequired && !contains(role.PreferredSkills, skill.SkillName) {
			continue
		}

		importance := types.ImportanceMedium
		if isRequired {
			importance = types.ImportanceHigh
		}
		record := trends[skill.SkillName]
		gaps = append(gaps, types.Gap{
			Skill:        skill.SkillName,
			GapType:      types.GapNeedsImprovement,
			Importance:   importance,
			MarketDemand: marketDemand(record),
			TrendScore:   record.TrendScore,
			GrowthRate:   record.GrowthRate,
			CurrentLevel: types.LevelBeginner,
			TargetLevel:  types.LevelIntermediate,
		})
	}

	sort.SliceStable(gaps, func(i, j int) bool {
		if gaps[i].Importance.Rank() != gaps[j].Importance.Rank() {
			return gaps[i].Importance.Rank() > gaps[j].Importance.Rank()
		}
		return gaps[i].TrendScore > gaps[j].TrendScore
	})
	return gaps
}
