// Package types provides type definitions for structured data used throughout the career-compass system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// SectionName identifies a recognized resume section.
type SectionName string

// Recognized resume sections. SectionUnknown collects lines that were not
// attributed to any recognized header.
const (
	SectionContact        SectionName = "contact"
	SectionSummary        SectionName = "summary"
	SectionExperience     SectionName = "experience"
	SectionEducation      SectionName = "education"
	SectionSkills         SectionName = "skills"
	SectionProjects       SectionName = "projects"
	SectionCertifications SectionName = "certifications"
	SectionUnknown        SectionName = "unknown"
)

// KnownSections lists every recognized section in pattern-table declaration
// order. Tie-breaks between equally scored headers follow this order.
var KnownSections = []SectionName{
	SectionContact,
	SectionSummary,
	SectionExperience,
	SectionEducation,
	SectionSkills,
	SectionProjects,
	SectionCertifications,
}

// ResumeDocument holds the raw resume text and its normalized form.
// Immutable once created; one per analysis request.
type ResumeDocument struct {
	RawText     string `json:"raw_text"`
	CleanedText string `json:"cleaned_text"`
}

// Section is a labeled, non-overlapping span of the cleaned text.
type Section struct {
	Name       SectionName `json:"name"`
	Content    string      `json:"content"`
	Confidence float64     `json:"confidence"`
	StartLine  int         `json:"start_line"`
	EndLine    int         `json:"end_line"`
}

// SectionMap maps recognized section names to their extracted content.
// Unattributed lines live under SectionUnknown for diagnostics.
type SectionMap map[SectionName]Section

// Typed returns only the recognized (non-unknown) sections.
func (m SectionMap) Typed() []Section {
	sections := make([]Section, 0, len(m))
	for name, section := range m {
		if name != SectionUnknown {
			sections = append(sections, section)
		}
	}
	return sections
}

// ContactInfo holds contact details extracted from the contact section.
type ContactInfo struct {
	Email    string `json:"email,omitempty"`
	Phone    string `json:"phone,omitempty"`
	LinkedIn string `json:"linkedin,omitempty"`
	GitHub   string `json:"github,omitempty"`
}

// Completeness scores how much of a conventional resume is present.
// Required sections (contact, experience, skills) weigh three times as
// much as optional ones.
type Completeness struct {
	Score           float64       `json:"score"`
	MissingSections []SectionName `json:"missing_sections,omitempty"`
	Recommendations []string      `json:"recommendations,omitempty"`
}

// ParsedResume is the output of the parsing stage: segmented sections plus
// document-level analytics.
type ParsedResume struct {
	Document     ResumeDocument `json:"document"`
	Sections     SectionMap     `json:"sections"`
	Contact      ContactInfo    `json:"contact"`
	Completeness Completeness   `json:"completeness"`
	Readability  float64        `json:"readability"`
}
