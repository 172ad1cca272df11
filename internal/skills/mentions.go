package skills

import (
	"sort"
	"strings"

	"github.com/jonathan/career-compass/internal/types"
)

// contextRadius is how many characters of surrounding text each mention
// carries on each side.
const contextRadius = 100

// FindMentions scans text for every occurrence of a skill name or one of
// its lexical variations, capturing a context window and the containing
// sentence per match. Mentions whose windows cover the same underlying
// occurrence (the same name matched through two variations) are
// deduplicated.
func FindMentions(text, skill string) []types.SkillMention {
	var mentions []types.SkillMention

	for _, variation := range Variations(skill) {
		re := patternFor(variation)
		for _, loc := range re.FindAllStringIndex(text, -1) {
			// The compiled pattern may consume one trailing boundary
			// character; the variation's own length bounds the match.
			start := loc[0]
			if !wordChar(variation[0]) && start < loc[1]-len(variation) {
				start = loc[1] - len(variation)
			}
			end := start + len(variation)
			if end > len(text) {
				end = len(text)
			}

			ctxStart := max(0, start-contextRadius)
			ctxEnd := min(len(text), end+contextRadius)

			mentions = append(mentions, types.SkillMention{
				SkillName: skill,
				Variation: variation,
				Position:  start,
				Context:   strings.TrimSpace(text[ctxStart:ctxEnd]),
				Sentence:  extractSentence(text, start),
			})
		}
	}

	return deduplicateMentions(mentions)
}

// deduplicateMentions drops mentions whose positions overlap an already
// kept mention, keeping the earliest (and on equal position, the longest
// variation).
func deduplicateMentions(mentions []types.SkillMention) []types.SkillMention {
	if len(mentions) < 2 {
		return mentions
	}

	sort.Slice(mentions, func(i, j int) bool {
		if mentions[i].Position != mentions[j].Position {
			return mentions[i].Position < mentions[j].Position
		}
		return len(mentions[i].Variation) > len(mentions[j].Variation)
	})

	kept := mentions[:1]
	for _, m := range mentions[1:] {
		last := kept[len(kept)-1]
		if m.Position < last.Position+len(last.Variation) {
			continue
		}
		kept = append(kept, m)
	}
	return kept
}

// extractSentence returns the sentence containing the given position.
func extractSentence(text string, pos int) string {
	isBreak := func(r byte) bool {
		return r == '.' || r == '!' || r == '?' || r == '\n'
	}

	start := pos
	for start > 0 && !isBreak(text[start-1]) {
		start--
	}
	end := pos
	for end < len(text) && !isBreak(text[end]) {
		end++
	}
	return strings.TrimSpace(text[start:end])
}
