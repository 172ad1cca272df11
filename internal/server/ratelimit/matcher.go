package ratelimit

import "strings"

// matchRule finds the rule for a path and method. Health checks are
// always unlimited. Exact matches win over prefix matches.
func matchRule(path, method string, rules []Rule) *Rule {
	if path == "/health" && method == "GET" {
		return &Rule{}
	}

	for i := range rules {
		if rules[i].Path == path && rules[i].Method == method {
			return &rules[i]
		}
	}

	for i := range rules {
		r := &rules[i]
		if r.Method == method && strings.HasSuffix(r.Path, "/") && strings.HasPrefix(path, r.Path) {
			return r
		}
	}

	return nil
}
