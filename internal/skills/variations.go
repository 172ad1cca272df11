package skills

import (
	"regexp"
	"strings"
	"sync"
)

// commonVariations maps canonical skill names to lexical variants that
// resumes commonly use. The canonical name itself is always matched.
var commonVariations = map[string][]string{
	"JavaScript":   {"JS"},
	"TypeScript":   {"TS"},
	"Go":           {"Golang"},
	"Kubernetes":   {"k8s"},
	"PostgreSQL":   {"Postgres"},
	"MongoDB":      {"Mongo"},
	"Node.js":      {"NodeJS", "Node js"},
	"Vue.js":       {"VueJS"},
	"Express.js":   {"ExpressJS"},
	"Next.js":      {"NextJS"},
	"CI/CD":        {"CICD"},
	"VS Code":      {"VSCode"},
	"AWS":          {"Amazon Web Services"},
	"Google Cloud": {"GCP"},
}

// Variations returns the canonical skill name plus its known variants.
func Variations(skill string) []string {
	return append([]string{skill}, commonVariations[skill]...)
}

// wordChar reports whether b is part of a word for boundary purposes.
func wordChar(b byte) bool {
	return b == '_' ||
		(b >= '0' && b <= '9') ||
		(b >= 'a' && b <= 'z') ||
		(b >= 'A' && b <= 'Z')
}

// compileVariation builds a case-insensitive whole-word pattern for a
// variation. \b only applies next to word characters, so names ending in
// symbols (C++, C#, Node.js) need explicit boundary handling. The trailing
// boundary may consume one character; callers must take match positions
// from the match start and the variation's own length.
func compileVariation(variation string) *regexp.Regexp {
	quoted := regexp.QuoteMeta(variation)

	prefix := ""
	if wordChar(variation[0]) {
		prefix = `\b`
	}
	suffix := `(?:[^+#]|$)`
	if wordChar(variation[len(variation)-1]) {
		suffix = `\b`
	}

	return regexp.MustCompile(`(?i)` + prefix + quoted + suffix)
}

// Pattern cache. The vocabulary is small and fixed; extraction runs may
// execute in parallel, so access is guarded.
var (
	patternMu    sync.RWMutex
	patternCache = make(map[string]*regexp.Regexp)
)

func patternFor(variation string) *regexp.Regexp {
	key := strings.ToLower(variation)

	patternMu.RLock()
	re, ok := patternCache[key]
	patternMu.RUnlock()
	if ok {
		return re
	}

	re = compileVariation(variation)
	patternMu.Lock()
	patternCache[key] = re
	patternMu.Unlock()
	return re
}
