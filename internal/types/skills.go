//nolint:revive // types is a standard Go package name pattern
package types

// SkillCategory identifies the kind of technical skill.
type SkillCategory string

// Skill categories, matching the static skill database layout.
const (
	CategoryProgrammingLanguage SkillCategory = "programming_language"
	CategoryFramework           SkillCategory = "framework"
	CategoryDatabase            SkillCategory = "database"
	CategoryCloudPlatform       SkillCategory = "cloud_platform"
	CategoryTool                SkillCategory = "tool"
	CategoryMethodology         SkillCategory = "methodology"
	CategorySoft                SkillCategory = "soft"
)

// TechnicalCategories lists the non-soft categories in declaration order.
var TechnicalCategories = []SkillCategory{
	CategoryProgrammingLanguage,
	CategoryFramework,
	CategoryDatabase,
	CategoryCloudPlatform,
	CategoryTool,
	CategoryMethodology,
}

// ExperienceLevel is the estimated proficiency for an extracted skill.
type ExperienceLevel string

// Experience levels, ordered from lowest to highest.
const (
	LevelBeginner     ExperienceLevel = "beginner"
	LevelIntermediate ExperienceLevel = "intermediate"
	LevelExpert       ExperienceLevel = "expert"
)

// Multiplier returns the proficiency multiplier used in market alignment
// scoring (expert 1.0, intermediate 0.7, beginner 0.4).
func (l ExperienceLevel) Multiplier() float64 {
	switch l {
	case LevelExpert:
		return 1.0
	case LevelIntermediate:
		return 0.7
	default:
		return 0.4
	}
}

// Next returns the level above the receiver, capping at expert.
func (l ExperienceLevel) Next() ExperienceLevel {
	switch l {
	case LevelBeginner:
		return LevelIntermediate
	default:
		return LevelExpert
	}
}

// SkillMention is one textual occurrence of a skill name (or a lexical
// variation of it) inside the analyzed text.
type SkillMention struct {
	SkillName     string      `json:"skill_name"`
	Variation     string      `json:"variation"`
	Position      int         `json:"position"`
	Context       string      `json:"context"`
	Sentence      string      `json:"sentence"`
	SectionOrigin SectionName `json:"section_origin,omitempty"`
}

// ExtractedSkill aggregates all mentions of one skill. Derived entirely
// from mention records plus static indicator tables; never mutated after
// creation.
type ExtractedSkill struct {
	SkillName       string          `json:"skill_name"`
	Category        SkillCategory   `json:"category"`
	MentionCount    int             `json:"mention_count"`
	ExperienceLevel ExperienceLevel `json:"experience_level"`
	ConfidenceScore float64         `json:"confidence_score"`
	YearsExperience float64         `json:"years_experience,omitempty"`
	Contexts        []string        `json:"contexts,omitempty"`
}

// SkillProfile is the output of the extraction stage: technical skills
// grouped by category (each list sorted by confidence descending) plus a
// flat soft-skill list.
type SkillProfile struct {
	Technical map[SkillCategory][]ExtractedSkill `json:"technical"`
	Soft      []string                           `json:"soft"`
}

// Flatten returns every technical skill across categories, preserving
// category declaration order and the per-category confidence order.
func (p *SkillProfile) Flatten() []ExtractedSkill {
	var all []ExtractedSkill
	for _, category := range TechnicalCategories {
		all = append(all, p.Technical[category]...)
	}
	return all
}

// Names returns the set of extracted technical skill names.
func (p *SkillProfile) Names() map[string]bool {
	names := make(map[string]bool)
	for _, skill := range p.Flatten() {
		names[skill.SkillName] = true
	}
	return names
}
