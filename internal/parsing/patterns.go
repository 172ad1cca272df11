package parsing

import (
	"regexp"

	"github.com/jonathan/career-compass/internal/types"
)

// Scoring constants for header detection. Kept together so tests can
// assert exact threshold behavior.
const (
	// HeaderConfidenceThreshold is the minimum confidence for a line to
	// be accepted as a section header.
	HeaderConfidenceThreshold = 0.7

	// standaloneHeaderBonus applies to short lines that look like a
	// standalone header rather than body text.
	standaloneHeaderBonus = 0.2
	// standaloneMaxChars and standaloneMaxWords bound what counts as a
	// standalone header line.
	standaloneMaxChars = 50
	standaloneMaxWords = 4

	// formattingBonus applies to lines with header formatting markers:
	// all caps, a trailing colon, or a dashed separator.
	formattingBonus = 0.1

	// contextBlankBonus applies when a blank line follows or precedes
	// the candidate header.
	contextBlankBonus = 0.05
	// contextTopBonus applies to lines near the top of the document,
	// where contact blocks and summaries usually live.
	contextTopBonus = 0.05
	// contextTopLines is how many leading lines count as "near the top".
	contextTopLines = 5
)

// sectionPattern is one pattern group from the header table: the section
// it detects, its regular expressions, and the base confidence weight.
type sectionPattern struct {
	name     types.SectionName
	patterns []*regexp.Regexp
	weight   float64
}

// sectionPatterns is the fixed header-pattern table, in declaration order.
// Order matters: equal-confidence matches resolve to the earliest group.
var sectionPatterns = []sectionPattern{
	{
		name: types.SectionContact,
		patterns: []*regexp.Regexp{
			regexp.MustCompile(`(?i)(?:contact|personal\s+information|details|reach\s+me)`),
			regexp.MustCompile(`(?i)(?:phone|email|address|linkedin|github)`),
		},
		weight: 1.0,
	},
	{
		name: types.SectionSummary,
		patterns: []*regexp.Regexp{
			regexp.MustCompile(`(?i)(?:summary|objective|profile|about\s+me|career\s+objective)`),
			regexp.MustCompile(`(?i)(?:professional\s+summary|executive\s+summary)`),
		},
		weight: 0.9,
	},
	{
		name: types.SectionExperience,
		patterns: []*regexp.Regexp{
			regexp.MustCompile(`(?i)(?:experience|employment|work\s+history|professional\s+experience)`),
			regexp.MustCompile(`(?i)(?:career\s+history|work\s+experience|employment\s+history)`),
		},
		weight: 1.0,
	},
	{
		name: types.SectionEducation,
		patterns: []*regexp.Regexp{
			regexp.MustCompile(`(?i)(?:education|academic|qualifications|degrees|schooling)`),
			regexp.MustCompile(`(?i)(?:university|college|school|certification)`),
		},
		weight: 0.8,
	},
	{
		name: types.SectionSkills,
		patterns: []*regexp.Regexp{
			regexp.MustCompile(`(?i)(?:skills|competencies|technologies|technical\s+skills)`),
			regexp.MustCompile(`(?i)(?:programming|languages|frameworks|tools)`),
		},
		weight: 1.0,
	},
	{
		name: types.SectionProjects,
		patterns: []*regexp.Regexp{
			regexp.MustCompile(`(?i)(?:projects|portfolio|work\s+samples|personal\s+projects)`),
			regexp.MustCompile(`(?i)(?:side\s+projects|open\s+source|github\s+projects)`),
		},
		weight: 0.9,
	},
	{
		name: types.SectionCertifications,
		patterns: []*regexp.Regexp{
			regexp.MustCompile(`(?i)(?:certifications|certificates|licenses|credentials)`),
			regexp.MustCompile(`(?i)(?:professional\s+certifications|industry\s+certifications)`),
		},
		weight: 0.7,
	},
}

var (
	allCapsRe = regexp.MustCompile(`^[A-Z\s]+$`)
)
