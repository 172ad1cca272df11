// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/career-compass/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintParsedResume outputs a human-readable summary of the parsed resume.
func (p *Printer) PrintParsedResume(parsed *types.ParsedResume) {
	if parsed == nil {
		return
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Sections found: %d\n", len(parsed.Sections)))
	for _, name := range types.KnownSections {
		if section, ok := parsed.Sections[name]; ok {
			sb.WriteString(fmt.Sprintf("  • %-15s (confidence %.2f)\n", name, section.Confidence))
		}
	}
	sb.WriteString("\n")

	if parsed.Contact.Email != "" {
		sb.WriteString(fmt.Sprintf("Email:    %s\n", parsed.Contact.Email))
	}
	if parsed.Contact.Phone != "" {
		sb.WriteString(fmt.Sprintf("Phone:    %s\n", parsed.Contact.Phone))
	}
	sb.WriteString(fmt.Sprintf("Complete: %.0f%%\n", parsed.Completeness.Score*100))

	p.printBox("PARSED RESUME", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintSkillProfile outputs the detected skills grouped by category.
func (p *Printer) PrintSkillProfile(profile *types.SkillProfile) {
	if profile == nil {
		return
	}

	var sb strings.Builder
	flat := profile.Flatten()
	sb.WriteString(fmt.Sprintf("Total skills detected: %d\n\n", len(flat)))

	for _, category := range types.TechnicalCategories {
		extracted := profile.Technical[category]
		if len(extracted) == 0 {
			continue
		}
		sb.WriteString(fmt.Sprintf("%s:\n", category))
		count := min(len(extracted), maxItemsToShow)
		for i := 0; i < count; i++ {
			skill := extracted[i]
			sb.WriteString(fmt.Sprintf("  • %s (%s, %.2f)\n", skill.SkillName, skill.ExperienceLevel, skill.ConfidenceScore))
		}
		if len(extracted) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(extracted)-maxItemsToShow))
		}
	}

	if len(profile.Soft) > 0 {
		soft := strings.Join(profile.Soft, ", ")
		if len(soft) > 50 {
			soft = soft[:47] + "..."
		}
		sb.WriteString(fmt.Sprintf("\nSoft skills: %s\n", soft))
	}

	p.printBox("SKILL PROFILE", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintGapAnalysis outputs strengths and gaps against the target role.
func (p *Printer) PrintGapAnalysis(report *types.AnalysisReport) {
	if report == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Target role:      %s\n", report.Summary.TargetRole))
	sb.WriteString(fmt.Sprintf("Market alignment: %d%%\n", report.Summary.MarketAlignmentPercentage))
	sb.WriteString(fmt.Sprintf("Top category:     %s\n\n", report.Summary.TopCategory))

	if len(report.Strengths) > 0 {
		sb.WriteString("Strengths:\n")
		count := min(len(report.Strengths), maxItemsToShow)
		for i := 0; i < count; i++ {
			s := report.Strengths[i]
			sb.WriteString(fmt.Sprintf("  • %s (%s, demand %.0f)\n", s.Skill, s.ExperienceLevel, s.MarketDemand))
		}
		if len(report.Strengths) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(report.Strengths)-maxItemsToShow))
		}
		sb.WriteString("\n")
	}

	if len(report.Gaps) > 0 {
		sb.WriteString("Gaps:\n")
		count := min(len(report.Gaps), maxItemsToShow)
		for i := 0; i < count; i++ {
			g := report.Gaps[i]
			sb.WriteString(fmt.Sprintf("  • %s [%s/%s]\n", g.Skill, g.GapType, g.Importance))
		}
		if len(report.Gaps) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(report.Gaps)-maxItemsToShow))
		}
	}

	p.printBox("GAP ANALYSIS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintRecommendations outputs prioritized recommendations and insights.
func (p *Printer) PrintRecommendations(report *types.AnalysisReport) {
	if report == nil {
		return
	}

	var sb strings.Builder

	if len(report.Recommendations) > 0 {
		sb.WriteString("Recommendations:\n")
		for i, rec := range report.Recommendations {
			sb.WriteString(fmt.Sprintf("#%d  %s [%s]\n", i+1, rec.Skill, rec.Priority))
			reason := rec.Reason
			if len(reason) > 50 {
				reason = reason[:47] + "..."
			}
			sb.WriteString(fmt.Sprintf("    %s\n", reason))
		}
		sb.WriteString("\n")
	}

	if len(report.ProjectRecommendations) > 0 {
		sb.WriteString("Suggested projects:\n")
		count := min(len(report.ProjectRecommendations), 3)
		for i := 0; i < count; i++ {
			proj := report.ProjectRecommendations[i]
			sb.WriteString(fmt.Sprintf("  • %s (%d%% relevant)\n", proj.Project.Name, proj.RelevanceScore))
		}
		sb.WriteString("\n")
	}

	for _, insight := range report.Insights {
		msg := insight.Message
		if len(msg) > 52 {
			msg = msg[:49] + "..."
		}
		sb.WriteString(fmt.Sprintf("» %s\n", msg))
	}

	p.printBox("RECOMMENDATIONS", strings.TrimSuffix(sb.String(), "\n"))
}
