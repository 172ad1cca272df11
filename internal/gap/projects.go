package gap

import (
	"fmt"
	"sort"
	"strings"

	"github.com/jonathan/career-compass/internal/types"
)

// maxProjectRecommendations caps how many catalog projects a report
// carries.
const maxProjectRecommendations = 8

// RecommendProjects ranks the project catalog by overlap with every
// detected skill, not just the role-relevant ones. Relevance blends the
// overlap ratio with the market weight of the matched skills; projects
// with no overlap are dropped.
func RecommendProjects(detected []types.ExtractedSkill, trends TrendIndex, catalog []types.Project) []types.ProjectRecommendation {
	if len(detected) == 0 {
		return nil
	}

	var recs []types.ProjectRecommendation
	for _, project := range catalog {
		projectSkills := strings.ToLower(strings.Join(project.RequiredSkills, " "))

		var matching []string
		marketScore := 0.0
		for _, skill := range detected {
			if strings.Contains(projectSkills, strings.ToLower(skill.SkillName)) {
				matching = append(matching, skill.SkillName)
				marketScore += trends[skill.SkillName].TrendScore
			}
		}
		if len(matching) == 0 {
			continue
		}

		matchRatio := float64(len(matching)) / float64(len(detected))
		marketScore /= 100
		if marketScore > 1 {
			marketScore = 1
		}

		relevance := int((matchRatio + marketScore) * 50)
		if relevance > 100 {
			relevance = 100
		}

		recs = append(recs, types.ProjectRecommendation{
			Project:        project,
			MatchingSkills: matching,
			RelevanceScore: relevance,
			Reason:         fmt.Sprintf("Matches %d of your skills", len(matching)),
		})
	}

	sort.SliceStable(recs, func(i, j int) bool {
		return recs[i].RelevanceScore > recs[j].RelevanceScore
	})
	if len(recs) > maxProjectRecommendations {
		recs = recs[:maxProjectRecommendations]
	}
	return recs
}
