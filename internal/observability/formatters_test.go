package observability

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/career-compass/internal/types"
)

func TestPrintBox(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.printBox("TITLE", "line one\nline two")
	out := buf.String()

	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	require.Len(t, lines, 6)
	assert.True(t, strings.HasPrefix(lines[0], "┌"))
	assert.Contains(t, lines[1], "TITLE")
	assert.Contains(t, lines[3], "line one")
	assert.Contains(t, lines[4], "line two")
	assert.True(t, strings.HasPrefix(lines[5], "└"))
}

func TestPrintBoxTruncatesLongLines(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.printBox("TITLE", strings.Repeat("x", 200))
	out := buf.String()

	assert.Contains(t, out, "...")
	assert.NotContains(t, out, strings.Repeat("x", boxWidth))
}

func TestPrintParsedResume(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	parsed := &types.ParsedResume{
		Sections: types.SectionMap{
			"skills": {Content: "Go, SQL", Confidence: 0.92},
		},
		Contact:      types.ContactInfo{Email: "dev@example.com", Phone: "555-0100"},
		Completeness: types.Completeness{Score: 0.75},
	}

	p.PrintParsedResume(parsed)
	out := buf.String()

	assert.Contains(t, out, "Sections found: 1")
	assert.Contains(t, out, "skills")
	assert.Contains(t, out, "dev@example.com")
	assert.Contains(t, out, "Complete: 75%")
}

func TestPrintSkillProfileTruncatesList(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	langs := make([]types.ExtractedSkill, 7)
	for i := range langs {
		langs[i] = types.ExtractedSkill{
			SkillName:       "Skill" + string(rune('A'+i)),
			ExperienceLevel: types.LevelIntermediate,
			ConfidenceScore: 0.5,
		}
	}

	profile := &types.SkillProfile{
		Technical: map[types.SkillCategory][]types.ExtractedSkill{
			types.CategoryProgrammingLanguage: langs,
		},
		Soft: []string{"Communication", "Leadership"},
	}

	p.PrintSkillProfile(profile)
	out := buf.String()

	assert.Contains(t, out, "Total skills detected: 7")
	assert.Contains(t, out, "SkillA")
	assert.Contains(t, out, "... and 2 more")
	assert.NotContains(t, out, "SkillG")
	assert.Contains(t, out, "Communication")
}

func TestPrintGapAnalysis(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	report := &types.AnalysisReport{
		Summary: types.ReportSummary{
			TargetRole:                "Full Stack Developer",
			MarketAlignmentPercentage: 68,
			TopCategory:               "programming_language",
		},
		Strengths: []types.Strength{
			{Skill: "JavaScript", ExperienceLevel: types.LevelExpert, MarketDemand: 82},
		},
		Gaps: []types.Gap{
			{Skill: "SQL", GapType: "missing_required", Importance: "critical"},
		},
	}

	p.PrintGapAnalysis(report)
	out := buf.String()

	assert.Contains(t, out, "Full Stack Developer")
	assert.Contains(t, out, "Market alignment: 68%")
	assert.Contains(t, out, "JavaScript")
	assert.Contains(t, out, "SQL [missing_required/critical]")
}

func TestPrintRecommendations(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	report := &types.AnalysisReport{
		Recommendations: []types.Recommendation{
			{Skill: "SQL", Priority: "critical", Reason: "Required for the target role"},
		},
		ProjectRecommendations: []types.ProjectRecommendation{
			{Project: types.Project{Name: "Realtime Chat"}, RelevanceScore: 80},
		},
		Insights: []types.Insight{
			{Message: "Strong market alignment"},
		},
	}

	p.PrintRecommendations(report)
	out := buf.String()

	assert.Contains(t, out, "#1  SQL [critical]")
	assert.Contains(t, out, "Realtime Chat (80% relevant)")
	assert.Contains(t, out, "» Strong market alignment")
}

func TestPrintersIgnoreNil(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintParsedResume(nil)
	p.PrintSkillProfile(nil)
	p.PrintGapAnalysis(nil)
	p.PrintRecommendations(nil)

	assert.Empty(t, buf.String())
}
