package gap

import (
	"strings"

	"github.com/jonathan/career-compass/internal/types"
)

// trendGapCutoff filters the snapshot down to technologies popular enough
// to be worth flagging when absent from a resume.
const trendGapCutoff = 30.0

// IdentifyTrendGaps lists popular technologies the resume never mentions,
// independent of any target role. Coverage is case-insensitive containment
// in either direction, so "Node.js" covers "Node" and vice versa.
func IdentifyTrendGaps(profile *types.SkillProfile, trends []types.TrendRecord) []types.TrendGap {
	var detected []string
	for _, skill := range profile.Flatten() {
		detected = append(detected, strings.ToLower(skill.SkillName))
	}

	var gaps []types.TrendGap
	for _, record := range trends {
		if record.TrendScore <= trendGapCutoff {
			continue
		}
		if covered(detected, strings.ToLower(record.Technology)) {
			continue
		}
		gaps = append(gaps, types.TrendGap{
			Technology:  record.Technology,
			Category:    record.Category,
			TrendScore:  record.TrendScore,
			GrowthRate:  record.GrowthRate,
			DemandLevel: string(ClassifyDemand(record.TrendScore, record.Category)),
		})
	}
	return gaps
}

func covered(detected []string, technology string) bool {
	for _, skill := range detected {
		if strings.Contains(skill, technology) || strings.Contains(technology, skill) {
			return true
		}
	}
	return false
}
