//nolint:revive // types is a standard Go package name pattern
package types

// TrendRecord is a snapshot row describing one technology's current
// market popularity. Supplied by the trends collector; read-only input.
type TrendRecord struct {
	Technology string  `json:"technology"`
	Category   string  `json:"category"`
	TrendScore float64 `json:"trend_score"`
	GrowthRate float64 `json:"growth_rate"`
}

// Project is a catalog entry used to rank candidate projects by skill
// overlap during recommendation generation.
type Project struct {
	Name           string   `json:"name"`
	Description    string   `json:"description,omitempty"`
	URL            string   `json:"url,omitempty"`
	Industry       string   `json:"industry,omitempty"`
	RequiredSkills []string `json:"required_skills"`
}

// RoleRequirement is the static requirement profile for a target role.
type RoleRequirement struct {
	RoleName        string   `json:"role_name"`
	RequiredSkills  []string `json:"required_skills"`
	PreferredSkills []string `json:"preferred_skills"`
	SoftSkills      []string `json:"soft_skills,omitempty"`
}

// Relevance distinguishes required from preferred role skills.
type Relevance string

// Role relevance values.
const (
	RelevanceRequired  Relevance = "required"
	RelevancePreferred Relevance = "preferred"
)

// GapType classifies a detected skill gap.
type GapType string

// Gap types.
const (
	GapMissingRequired  GapType = "missing_required"
	GapMissingPreferred GapType = "missing_preferred"
	GapNeedsImprovement GapType = "needs_improvement"
)

// Importance ranks how urgent closing a gap is.
type Importance string

// Importance levels, ordered critical > high > medium.
const (
	ImportanceCritical Importance = "critical"
	ImportanceHigh     Importance = "high"
	ImportanceMedium   Importance = "medium"
)

// Rank returns a numeric rank for sorting (higher is more important).
func (i Importance) Rank() int {
	switch i {
	case ImportanceCritical:
		return 3
	case ImportanceHigh:
		return 2
	case ImportanceMedium:
		return 1
	default:
		return 0
	}
}

// Strength is an extracted skill that the target role asks for, annotated
// with market data.
type Strength struct {
	Skill           string          `json:"skill"`
	Category        SkillCategory   `json:"category"`
	ExperienceLevel ExperienceLevel `json:"experience_level"`
	Confidence      float64         `json:"confidence"`
	RoleRelevance   Relevance       `json:"role_relevance"`
	MarketDemand    float64         `json:"market_demand"`
	TrendScore      float64         `json:"trend_score"`
	GrowthRate      float64         `json:"growth_rate"`
	// ImprovementPotential estimates how much headroom remains at the
	// current proficiency level, 0.0 (none) to 1.0 (large).
	ImprovementPotential float64 `json:"improvement_potential"`
}

// Gap is a required or preferred role skill the user lacks, or covers
// only at beginner level.
type Gap struct {
	Skill            string          `json:"skill"`
	GapType          GapType         `json:"gap_type"`
	Importance       Importance      `json:"importance"`
	MarketDemand     float64         `json:"market_demand"`
	TrendScore       float64         `json:"trend_score"`
	GrowthRate       float64         `json:"growth_rate"`
	CurrentLevel     ExperienceLevel `json:"current_level,omitempty"`
	TargetLevel      ExperienceLevel `json:"target_level,omitempty"`
	LearningEstimate string          `json:"learning_estimate,omitempty"`
}

// TrendGap is a popular technology absent from the resume, independent of
// any target role. DemandLevel comes from the category demand thresholds.
type TrendGap struct {
	Technology  string  `json:"technology"`
	Category    string  `json:"category"`
	TrendScore  float64 `json:"trend_score"`
	GrowthRate  float64 `json:"growth_rate"`
	DemandLevel string  `json:"demand_level"`
}

// Recommendation is one prioritized action item. Reason must reference the
// concrete market numbers that justified it.
type Recommendation struct {
	Type        string     `json:"type"`
	Priority    Importance `json:"priority"`
	Skill       string     `json:"skill"`
	Reason      string     `json:"reason"`
	ActionItems []string   `json:"action_items,omitempty"`
	// LearningPath and EstimatedTime are set for learning recommendations.
	LearningPath  string `json:"learning_path,omitempty"`
	EstimatedTime string `json:"estimated_time,omitempty"`
}

// ProjectRecommendation ranks a catalog project by overlap with the
// user's detected skills.
type ProjectRecommendation struct {
	Project        Project  `json:"project"`
	MatchingSkills []string `json:"matching_skills"`
	RelevanceScore int      `json:"relevance_score"`
	Reason         string   `json:"reason"`
}

// InsightType signals how an insight should be presented.
type InsightType string

// Insight types.
const (
	InsightPositive InsightType = "positive"
	InsightWarning  InsightType = "warning"
	InsightInfo     InsightType = "info"
)

// Insight is a human-readable observation about the analysis.
type Insight struct {
	Type    InsightType `json:"type"`
	Title   string      `json:"title"`
	Message string      `json:"message"`
}

// ReportSummary holds the headline numbers of an analysis.
type ReportSummary struct {
	TotalSkillsDetected       int    `json:"total_skills_detected"`
	MarketAlignmentPercentage int    `json:"market_alignment_percentage"`
	TopCategory               string `json:"top_category"`
	TargetRole                string `json:"target_role"`
}

// AnalysisReport is the top-level output of one analysis request.
// Immutable; no lifecycle beyond the request/response cycle.
type AnalysisReport struct {
	ID                     string                  `json:"id"`
	Summary                ReportSummary           `json:"summary"`
	Resume                 ParsedResume            `json:"resume"`
	Skills                 SkillProfile            `json:"skills"`
	Strengths              []Strength              `json:"strengths"`
	Gaps                   []Gap                   `json:"gaps"`
	TrendGaps              []TrendGap              `json:"trend_gaps"`
	Recommendations        []Recommendation        `json:"recommendations"`
	ProjectRecommendations []ProjectRecommendation `json:"project_recommendations"`
	Insights               []Insight               `json:"insights"`
}
