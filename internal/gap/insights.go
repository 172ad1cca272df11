package gap

import (
	"fmt"
	"strings"

	"github.com/jonathan/career-compass/internal/types"
)

// Alignment-percentage cutoffs for the headline insight.
const (
	strongAlignmentCutoff   = 70
	moderateAlignmentCutoff = 40

	// diverseCategoryCutoff is the minimum number of distinct skill
	// categories that counts as a diverse skill set.
	diverseCategoryCutoff = 3

	topSkillCount = 3
)

// GenerateInsights produces human-readable observations about the
// analysis: overall alignment, skill diversity, and top skills.
func GenerateInsights(alignmentPct int, strengths []types.Strength, profile *types.SkillProfile) []types.Insight {
	var insights []types.Insight

	switch {
	case alignmentPct >= strongAlignmentCutoff:
		insights = append(insights, types.Insight{
			Type:    types.InsightPositive,
			Title:   "Strong Market Alignment",
			Message: fmt.Sprintf("Your skills are highly aligned with current market demands (%d%%).", alignmentPct),
		})
	case alignmentPct >= moderateAlignmentCutoff:
		insights = append(insights, types.Insight{
			Type:    types.InsightWarning,
			Title:   "Moderate Market Alignment",
			Message: fmt.Sprintf("Your skills have moderate market alignment (%d%%). Consider learning trending technologies.", alignmentPct),
		})
	default:
		insights = append(insights, types.Insight{
			Type:    types.InsightInfo,
			Title:   "Skill Development Opportunity",
			Message: fmt.Sprintf("Focus on learning high-demand skills to improve market alignment (currently %d%%).", alignmentPct),
		})
	}

	categories := make(map[types.SkillCategory]bool)
	for _, skill := range profile.Flatten() {
		categories[skill.Category] = true
	}
	if len(categories) >= diverseCategoryCutoff {
		insights = append(insights, types.Insight{
			Type:    types.InsightPositive,
			Title:   "Diverse Skill Set",
			Message: fmt.Sprintf("You have skills across %d different technology categories.", len(categories)),
		})
	} else {
		insights = append(insights, types.Insight{
			Type:    types.InsightInfo,
			Title:   "Skill Diversification",
			Message: "Consider expanding your skills to other technology areas for better opportunities.",
		})
	}

	if len(strengths) > 0 {
		top := make([]string, 0, topSkillCount)
		for i, strength := range strengths {
			if i >= topSkillCount {
				break
			}
			top = append(top, strength.Skill)
		}
		insights = append(insights, types.Insight{
			Type:    types.InsightInfo,
			Title:   "Your Strongest Skills",
			Message: fmt.Sprintf("Your top market-aligned skills are: %s.", strings.Join(top, ", ")),
		})
	}

	return insights
}

// TopCategory returns the skill category with the highest summed trend
// score among the user's strengths, or "General" when there are none.
func TopCategory(strengths []types.Strength) string {
	scores := make(map[types.SkillCategory]float64)
	for _, strength := range strengths {
		scores[strength.Category] += strength.TrendScore
	}

	top := ""
	best := -1.0
	for _, category := range types.TechnicalCategories {
		if score, ok := scores[category]; ok && score > best {
			best = score
			top = string(category)
		}
	}
	if top == "" {
		return "General"
	}
	return top
}
