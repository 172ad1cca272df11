// Package analyzer orchestrates the resume analysis pipeline: section
// segmentation, skill extraction, and market alignment / gap analysis.
package analyzer

import (
	"github.com/google/uuid"

	"github.com/jonathan/career-compass/internal/gap"
	"github.com/jonathan/career-compass/internal/parsing"
	"github.com/jonathan/career-compass/internal/skills"
	"github.com/jonathan/career-compass/internal/types"
)

// ReferenceData bundles the read-only inputs the analyzer needs. Trend
// records and the project catalog are per-request snapshots from an
// external store; the skill database and role table are configuration
// versioned with the code.
type ReferenceData struct {
	SkillDB  *skills.Database
	Roles    []types.RoleRequirement
	Trends   []types.TrendRecord
	Projects []types.Project
}

// Analyzer runs the analysis pipeline against one immutable reference
// snapshot. Safe for concurrent use: every call is a pure function of its
// inputs plus the snapshot.
type Analyzer struct {
	refdata ReferenceData
	trends  gap.TrendIndex
}

// Options tunes one analysis request.
type Options struct {
	// TargetRole selects the role-requirement profile. Unrecognized or
	// empty names fall back to the default role.
	TargetRole string
}

// New builds an Analyzer, failing loudly when required reference data was
// not supplied. An empty (but present) trend snapshot is valid low-quality
// input; a nil one means the caller never resolved it.
func New(refdata ReferenceData) (*Analyzer, error) {
	if refdata.Trends == nil {
		return nil, &ReferenceDataError{Missing: "trend records"}
	}
	if len(refdata.Roles) == 0 {
		return nil, &ReferenceDataError{Missing: "role requirements"}
	}
	if refdata.SkillDB == nil {
		refdata.SkillDB = skills.DefaultDatabase()
	}

	return &Analyzer{
		refdata: refdata,
		trends:  gap.IndexTrends(refdata.Trends),
	}, nil
}

// Analyze runs the full pipeline over one resume text. It performs no
// I/O and never mutates the reference snapshot; identical inputs produce
// identical reports apart from the generated report ID.
func (a *Analyzer) Analyze(resumeText string, opts Options) *types.AnalysisReport {
	parsed := parsing.ParseResume(resumeText)

	skillsSection := ""
	if section, ok := parsed.Sections[types.SectionSkills]; ok {
		skillsSection = section.Content
	}
	profile := skills.Extract(skillsSection, parsed.Document.CleanedText, a.refdata.SkillDB)

	targetRole := opts.TargetRole
	if targetRole == "" {
		targetRole = gap.DefaultRole
	}
	role := gap.LookupRole(a.refdata.Roles, targetRole)

	strengths := gap.IdentifyStrengths(&profile, role, a.trends)
	gaps := gap.IdentifyGaps(&profile, role, a.trends)
	alignment := gap.CalculateMarketAlignment(strengths, role)
	alignmentPct := gap.AlignmentPercentage(alignment)

	// Report IDs are derived from the inputs so that identical requests
	// against the same snapshot yield identical reports.
	reportID := uuid.NewSHA1(uuid.NameSpaceOID, []byte(role.RoleName+"\x00"+resumeText))

	return &types.AnalysisReport{
		ID: reportID.String(),
		Summary: types.ReportSummary{
			TotalSkillsDetected:       len(profile.Flatten()),
			MarketAlignmentPercentage: alignmentPct,
			TopCategory:               gap.TopCategory(strengths),
			TargetRole:                role.RoleName,
		},
		Resume:                 parsed,
		Skills:                 profile,
		Strengths:              strengths,
		Gaps:                   gaps,
		TrendGaps:              gap.IdentifyTrendGaps(&profile, a.refdata.Trends),
		Recommendations:        gap.GenerateRecommendations(role.RoleName, strengths, gaps, a.trends),
		ProjectRecommendations: gap.RecommendProjects(profile.Flatten(), a.trends, a.refdata.Projects),
		Insights:               gap.GenerateInsights(alignmentPct, strengths, &profile),
	}
}

// MatchKeywords is the minimal fallback variant: a case-sensitive
// substring intersection of the keyword list against the resume text,
// returned together with the full project catalog.
func (a *Analyzer) MatchKeywords(resumeText string, keywords []string) gap.KeywordMatchResult {
	if len(keywords) == 0 {
		keywords = gap.DefaultKeywords
	}
	return gap.MatchKeywords(keywords, resumeText, a.refdata.Projects)
}
