package gap

import (
	"strings"

	"github.com/jonathan/career-compass/internal/types"
)

// DefaultKeywords is the fixed list the plain keyword-match endpoint
// checks when the caller supplies none.
var DefaultKeywords = []string{"JavaScript", "Python", "React", "Node.js", "SQL"}

// KeywordMatchResult is the minimal fallback analysis: the keywords found
// in the text plus the full project catalog.
type KeywordMatchResult struct {
	Matches  []string        `json:"matches"`
	Projects []types.Project `json:"projects"`
}

// MatchKeywords intersects the keyword list against the resume text using
// case-sensitive substring matching, preserving keyword order.
func MatchKeywords(keywords []string, resumeText string, catalog []types.Project) KeywordMatchResult {
	matches := make([]string, 0, len(keywords))
	for _, keyword := range keywords {
		if strings.Contains(resumeText, keyword) {
			matches = append(matches, keyword)
		}
	}
	return KeywordMatchResult{Matches: matches, Projects: catalog}
}
