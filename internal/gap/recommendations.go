package gap

import (
	"fmt"
	"sort"

	"github.com/jonathan/career-compass/internal/types"
)

// Recommendation selection limits and thresholds.
const (
	maxCriticalRecommendations    = 3
	maxTrendingRecommendations    = 2
	maxEnhancementRecommendations = 2

	// trendingGrowthThreshold is the minimum growth rate for a gap to
	// count as a trending opportunity.
	trendingGrowthThreshold = 0.2
	// enhancementPotentialThreshold is the minimum improvement potential
	// for a strength to earn an enhancement recommendation.
	enhancementPotentialThreshold = 0.6
)

// Recommendation type names.
const (
	RecommendationCriticalSkill = "critical_skill_development"
	RecommendationTrending      = "trending_opportunity"
	RecommendationEnhancement   = "skill_enhancement"
)

// GenerateRecommendations produces at most a handful of prioritized
// action items: critical-gap development, trending opportunities, and
// enhancements of existing strengths. Every reason quotes the concrete
// market numbers that justified the recommendation.
func GenerateRecommendations(targetRole string, strengths []types.Strength, gaps []types.Gap, trends TrendIndex) []types.Recommendation {
	var recs []types.Recommendation

	criticalCount := 0
	for _, g := range gaps {
		if g.Importance != types.ImportanceCritical || criticalCount >= maxCriticalRecommendations {
			continue
		}
		criticalCount++
		category := trends[g.Skill].Category
		recs = append(recs, types.Recommendation{
			Type:     RecommendationCriticalSkill,
			Priority: types.ImportanceCritical,
			Skill:    g.Skill,
			Reason: fmt.Sprintf("%s is required for %s and has %.0f%% market demand (trend score %.0f)",
				g.Skill, targetRole, g.MarketDemand, g.TrendScore),
			ActionItems: []string{
				fmt.Sprintf("Complete a comprehensive course in %s", g.Skill),
				fmt.Sprintf("Build 2-3 projects showcasing %s", g.Skill),
				fmt.Sprintf("Obtain an industry certification in %s", g.Skill),
			},
			LearningPath:  LearningPath(g.Skill, category),
			EstimatedTime: g.LearningEstimate,
		})
	}

	trending := make([]types.Gap, 0, len(gaps))
	for _, g := range gaps {
		if g.GrowthRate > trendingGrowthThreshold {
			trending = append(trending, g)
		}
	}
	sort.SliceStable(trending, func(i, j int) bool {
		return trending[i].GrowthRate > trending[j].GrowthRate
	})
	for i, g := range trending {
		if i >= maxTrendingRecommendations {
			break
		}
		recs = append(recs, types.Recommendation{
			Type:     RecommendationTrending,
			Priority: types.ImportanceHigh,
			Skill:    g.Skill,
			Reason: fmt.Sprintf("%s is trending with %.1f%% growth and a trend score of %.0f",
				g.Skill, g.GrowthRate*100, g.TrendScore),
			ActionItems: []string{
				fmt.Sprintf("Start with a %s fundamentals course", g.Skill),
				fmt.Sprintf("Experiment with %s in side projects", g.Skill),
			},
			EstimatedTime: g.LearningEstimate,
		})
	}

	enhancementCount := 0
	for _, s := range strengths {
		if s.ImprovementPotential <= enhancementPotentialThreshold || enhancementCount >= maxEnhancementRecommendations {
			continue
		}
		enhancementCount++
		recs = append(recs, types.Recommendation{
			Type:     RecommendationEnhancement,
			Priority: types.ImportanceMedium,
			Skill:    s.Skill,
			Reason: fmt.Sprintf("Advancing %s from %s to %s raises your value in a market where it scores %.0f%% demand",
				s.Skill, s.ExperienceLevel, s.ExperienceLevel.Next(), s.MarketDemand),
			ActionItems: []string{
				fmt.Sprintf("Take an advanced %s course", s.Skill),
				fmt.Sprintf("Contribute to open source %s projects", s.Skill),
			},
		})
	}

	sort.SliceStable(recs, func(i, j int) bool {
		return recs[i].Priority.Rank() > recs[j].Priority.Rank()
	})
	return recs
}
