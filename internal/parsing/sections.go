package parsing

import (
	"strings"

	"github.com/jonathan/career-compass/internal/types"
)

// headerMatch is the best-scoring section candidate for a single line.
type headerMatch struct {
	section    types.SectionName
	confidence float64
}

// ExtractSections walks the cleaned text line by line and splits it into
// labeled sections. Lines before the first accepted header, and all lines
// when no header is accepted, end up in the unknown bucket. A resume with
// no recognizable headers yields exactly one section, SectionUnknown,
// holding the whole text.
func ExtractSections(cleanedText string) types.SectionMap {
	sections := make(types.SectionMap)
	lines := strings.Split(cleanedText, "\n")

	current := types.SectionUnknown
	currentConfidence := 0.0
	startLine := 0
	var buffer []string

	flush := func(endLine int) {
		if len(buffer) == 0 {
			return
		}
		// Unknown content accumulates across flushes rather than being
		// overwritten, so every unattributed line stays retrievable.
		if existing, ok := sections[current]; ok && current == types.SectionUnknown {
			existing.Content += "\n" + strings.Join(buffer, "\n")
			existing.EndLine = endLine
			sections[current] = existing
			return
		}
		sections[current] = types.Section{
			Name:       current,
			Content:    strings.Join(buffer, "\n"),
			Confidence: currentConfidence,
			StartLine:  startLine,
			EndLine:    endLine,
		}
	}

	for i, raw := range lines {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}

		match := detectSectionHeader(line, i, lines)
		if match.section != "" && match.confidence > HeaderConfidenceThreshold {
			flush(i)
			current = match.section
			currentConfidence = match.confidence
			startLine = i
			buffer = nil
			continue
		}
		buffer = append(buffer, line)
	}
	flush(len(lines))

	return sections
}

// detectSectionHeader scores a line against every pattern group and
// returns the best match. Declaration order breaks ties because later
// groups only win on strictly higher confidence.
func detectSectionHeader(line string, lineIndex int, allLines []string) headerMatch {
	best := headerMatch{}

	for _, group := range sectionPatterns {
		for _, pattern := range group.patterns {
			if !pattern.MatchString(line) {
				continue
			}
			confidence := group.weight

			if len(line) < standaloneMaxChars && len(strings.Fields(line)) <= standaloneMaxWords {
				confidence += standaloneHeaderBonus
			}
			if allCapsRe.MatchString(line) || strings.Contains(line, ":") || strings.Contains(line, "---") {
				confidence += formattingBonus
			}
			confidence += contextBoost(lineIndex, allLines)

			if confidence > best.confidence {
				best = headerMatch{section: group.name, confidence: confidence}
			}
		}
	}

	return best
}

// contextBoost rewards lines whose surroundings look header-like: blank
// neighbors and positions near the top of the document.
func contextBoost(lineIndex int, allLines []string) float64 {
	boost := 0.0
	if lineIndex+1 < len(allLines) && strings.TrimSpace(allLines[lineIndex+1]) == "" {
		boost += contextBlankBonus
	}
	if lineIndex > 0 && strings.TrimSpace(allLines[lineIndex-1]) == "" {
		boost += contextBlankBonus
	}
	if lineIndex < contextTopLines {
		boost += contextTopBonus
	}
	return boost
}
