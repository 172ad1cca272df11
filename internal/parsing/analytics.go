package parsing

import (
	"strings"

	"github.com/jonathan/career-compass/internal/types"
)

// Completeness scoring weights: required sections count three times as
// much as optional ones.
const (
	requiredSectionWeight = 3
	optionalSectionWeight = 1
)

var (
	requiredSections = []types.SectionName{
		types.SectionContact,
		types.SectionExperience,
		types.SectionSkills,
	}
	optionalSections = []types.SectionName{
		types.SectionSummary,
		types.SectionEducation,
		types.SectionProjects,
		types.SectionCertifications,
	}
)

// CalculateCompleteness scores how much of a conventional resume the
// detected sections cover. A header-free resume scores 0.
func CalculateCompleteness(sections types.SectionMap) types.Completeness {
	score := 0
	maxScore := 0
	var missing []types.SectionName

	for _, name := range requiredSections {
		maxScore += requiredSectionWeight
		if hasContent(sections, name) {
			score += requiredSectionWeight
		} else {
			missing = append(missing, name)
		}
	}
	for _, name := range optionalSections {
		maxScore += optionalSectionWeight
		if hasContent(sections, name) {
			score += optionalSectionWeight
		} else {
			missing = append(missing, name)
		}
	}

	return types.Completeness{
		Score:           float64(score) / float64(maxScore),
		MissingSections: missing,
		Recommendations: completenessRecommendations(missing),
	}
}

func hasContent(sections types.SectionMap, name types.SectionName) bool {
	section, ok := sections[name]
	return ok && strings.TrimSpace(section.Content) != ""
}

func completenessRecommendations(missing []types.SectionName) []string {
	var recs []string
	for _, name := range missing {
		switch name {
		case types.SectionContact:
			recs = append(recs, "Add contact details (email and phone) so recruiters can reach you")
		case types.SectionExperience:
			recs = append(recs, "Add a work experience section with concrete accomplishments")
		case types.SectionSkills:
			recs = append(recs, "Add a dedicated skills section listing your technologies")
		case types.SectionSummary:
			recs = append(recs, "Consider a short professional summary at the top")
		}
	}
	return recs
}

// Readability bounds: sentences in this range read comfortably for
// resume-style text.
const (
	readabilityIdealMin = 8.0
	readabilityIdealMax = 20.0
)

// CalculateReadability estimates readability in [0,1] from average words
// per sentence. Short fragments and run-on sentences both score lower.
func CalculateReadability(text string) float64 {
	sentences := splitSentences(text)
	if len(sentences) == 0 {
		return 0
	}

	totalWords := 0
	for _, sentence := range sentences {
		totalWords += len(strings.Fields(sentence))
	}
	avg := float64(totalWords) / float64(len(sentences))

	switch {
	case avg >= readabilityIdealMin && avg <= readabilityIdealMax:
		return 1.0
	case avg < readabilityIdealMin:
		return avg / readabilityIdealMin
	default:
		return readabilityIdealMax / avg
	}
}

func splitSentences(text string) []string {
	var sentences []string
	for _, chunk := range strings.FieldsFunc(text, func(r rune) bool {
		return r == '.' || r == '!' || r == '?' || r == '\n'
	}) {
		if strings.TrimSpace(chunk) != "" {
			sentences = append(sentences, strings.TrimSpace(chunk))
		}
	}
	return sentences
}
