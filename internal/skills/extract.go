package skills

import (
	"sort"
	"strings"

	"github.com/jonathan/career-compass/internal/types"
)

// Extract scans the skills section together with the full cleaned text
// (skills mentioned outside a dedicated section still count) and returns
// the per-category skill profile. Each category list is sorted by
// confidence descending. An empty or nil database yields an empty
// profile; callers must treat "no skills detected" as a valid,
// low-quality outcome.
func Extract(skillsSection, fullText string, db *Database) types.SkillProfile {
	profile := types.SkillProfile{
		Technical: make(map[types.SkillCategory][]types.ExtractedSkill),
	}
	if db.Empty() {
		return profile
	}

	textToAnalyze := skillsSection + "\n" + fullText

	for _, category := range types.TechnicalCategories {
		for _, skill := range db.Technical[category] {
			mentions := FindMentions(textToAnalyze, skill)
			if len(mentions) == 0 {
				continue
			}

			level, scores := estimateExperienceLevel(mentions)
			contexts := make([]string, len(mentions))
			for i, m := range mentions {
				contexts[i] = m.Context
			}

			profile.Technical[category] = append(profile.Technical[category], types.ExtractedSkill{
				SkillName:       skill,
				Category:        category,
				MentionCount:    len(mentions),
				ExperienceLevel: level,
				ConfidenceScore: calculateConfidence(len(mentions), scores.total()),
				YearsExperience: ExtractYearsExperience(mentions),
				Contexts:        contexts,
			})
		}

		sort.SliceStable(profile.Technical[category], func(i, j int) bool {
			return profile.Technical[category][i].ConfidenceScore > profile.Technical[category][j].ConfidenceScore
		})
	}

	profile.Soft = ExtractSoftSkills(textToAnalyze, db)

	return profile
}

// ExtractSoftSkills matches the soft-skill vocabulary by simple presence,
// without experience-level scoring.
func ExtractSoftSkills(text string, db *Database) []string {
	if db == nil {
		return nil
	}
	lower := strings.ToLower(text)

	var found []string
	for _, skill := range db.Soft {
		if strings.Contains(lower, strings.ToLower(skill)) {
			found = append(found, skill)
		}
	}
	return found
}
