package parsing

import (
	"github.com/jonathan/career-compass/internal/types"
)

// ParseResume runs the parsing stage: normalize the raw text, segment it
// into sections, extract contact details, and compute document analytics.
// Malformed text degrades output quality (lower completeness and
// confidence) instead of failing.
func ParseResume(rawText string) types.ParsedResume {
	cleaned := Preprocess(rawText)
	sections := ExtractSections(cleaned)

	contactContent := ""
	if section, ok := sections[types.SectionContact]; ok {
		contactContent = section.Content
	}

	return types.ParsedResume{
		Document: types.ResumeDocument{
			RawText:     rawText,
			CleanedText: cleaned,
		},
		Sections:     sections,
		Contact:      ExtractContactInfo(contactContent, cleaned),
		Completeness: CalculateCompleteness(sections),
		Readability:  CalculateReadability(cleaned),
	}
}
