package skills

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/jonathan/career-compass/internal/types"
)

// Indicator vocabularies for experience-level estimation. Each indicator
// present in a mention's context adds one to its bucket.
var (
	expertIndicators       = []string{"expert", "senior", "lead", "architect", "principal", "advanced"}
	intermediateIndicators = []string{"intermediate", "proficient", "experienced", "solid"}
	beginnerIndicators     = []string{"beginner", "basic", "learning", "familiar", "exposure"}
)

// Years-of-experience bonuses and the complexity-signal thresholds.
const (
	expertYearsCutoff       = 5.0
	intermediateYearsCutoff = 2.0
	yearsBonusExpert        = 2
	yearsBonusIntermediate  = 2
	yearsBonusBeginner      = 1

	complexityExpertThreshold       = 0.7
	complexityIntermediateThreshold = 0.4
)

// complexitySignals mark contexts describing ownership of nontrivial
// work, a weak signal of higher proficiency.
var complexitySignals = []string{
	"architected", "designed", "built", "scaled", "led", "migrated",
	"production", "distributed", "mentored", "optimized",
}

var yearsRe = regexp.MustCompile(`(?i)(\d+)(?:\+)?\s*(?:years?|yrs?)`)

// levelScores holds the raw indicator-bucket totals for one skill.
type levelScores struct {
	expert       int
	intermediate int
	beginner     int
}

// total is the combined indicator strength, used by confidence scoring.
func (s levelScores) total() int {
	return s.expert + s.intermediate + s.beginner
}

// estimateExperienceLevel scores indicator buckets across all mention
// contexts and picks a level. Expert wins only with a strictly highest
// score; intermediate wins ties against beginner; zero indicators in
// every bucket defaults to beginner.
func estimateExperienceLevel(mentions []types.SkillMention) (types.ExperienceLevel, levelScores) {
	var scores levelScores

	for _, mention := range mentions {
		context := strings.ToLower(mention.Context)
		scores.expert += countIndicators(context, expertIndicators)
		scores.intermediate += countIndicators(context, intermediateIndicators)
		scores.beginner += countIndicators(context, beginnerIndicators)
	}

	years := ExtractYearsExperience(mentions)
	switch {
	case years >= expertYearsCutoff:
		scores.expert += yearsBonusExpert
	case years >= intermediateYearsCutoff:
		scores.intermediate += yearsBonusIntermediate
	case years > 0:
		scores.beginner += yearsBonusBeginner
	}

	complexity := analyzeComplexity(mentions)
	switch {
	case complexity > complexityExpertThreshold:
		scores.expert++
	case complexity > complexityIntermediateThreshold:
		scores.intermediate++
	}

	switch {
	case scores.total() == 0:
		return types.LevelBeginner, scores
	case scores.expert > scores.intermediate && scores.expert > scores.beginner:
		return types.LevelExpert, scores
	case scores.intermediate >= scores.beginner:
		return types.LevelIntermediate, scores
	default:
		return types.LevelBeginner, scores
	}
}

func countIndicators(context string, indicators []string) int {
	count := 0
	for _, indicator := range indicators {
		if strings.Contains(context, indicator) {
			count++
		}
	}
	return count
}

// ExtractYearsExperience returns the largest years figure mentioned in
// any mention context, or 0 when none is stated.
func ExtractYearsExperience(mentions []types.SkillMention) float64 {
	best := 0.0
	for _, mention := range mentions {
		for _, match := range yearsRe.FindAllStringSubmatch(mention.Context, -1) {
			if years, err := strconv.ParseFloat(match[1], 64); err == nil && years > best {
				best = years
			}
		}
	}
	return best
}

// analyzeComplexity returns the fraction of mention contexts that carry
// at least one complexity signal.
func analyzeComplexity(mentions []types.SkillMention) float64 {
	if len(mentions) == 0 {
		return 0
	}
	hits := 0
	for _, mention := range mentions {
		context := strings.ToLower(mention.Context)
		for _, signal := range complexitySignals {
			if strings.Contains(context, signal) {
				hits++
				break
			}
		}
	}
	return float64(hits) / float64(len(mentions))
}
