package collector

import (
	"context"
	"fmt"
	"net/http"
	"regexp"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// tagAliases maps watchlist names to Stack Overflow tag slugs where they
// differ from simple lowercasing.
var tagAliases = map[string]string{
	"Vue.js":  "vue.js",
	"Node.js": "node.js",
	"Go":      "go",
	"AWS":     "amazon-web-services",
}

var tagCountRe = regexp.MustCompile(`([\d,]+)\s*questions?`)

// collectStackOverflowTags scrapes the tags listing and returns question
// counts per watched technology. Tags missing from the page count as 0.
func (c *Collector) collectStackOverflowTags(ctx context.Context) (map[string]int, error) {
	endpoint := c.stackOverflowBaseURL + "/tags"

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, &Error{Source: "stackoverflow", Message: "failed to build request", Cause: err}
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, &Error{Source: "stackoverflow", Message: "request failed", Cause: err}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, &Error{Source: "stackoverflow", Message: fmt.Sprintf("unexpected status %d", resp.StatusCode)}
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, &Error{Source: "stackoverflow", Message: "failed to parse page", Cause: err}
	}

	pageCounts := make(map[string]int)
	doc.Find(".post-tag").Each(func(_ int, tag *goquery.Selection) {
		name := strings.TrimSpace(tag.Text())
		if name == "" {
			return
		}
		// The question count lives in the tag cell's sibling text.
		cellText := tag.Parent().Text()
		if match := tagCountRe.FindStringSubmatch(cellText); match != nil {
			raw := strings.ReplaceAll(match[1], ",", "")
			if count, err := strconv.Atoi(raw); err == nil {
				pageCounts[name] = count
			}
		}
	})

	counts := make(map[string]int, len(c.watchlist))
	for _, entry := range c.watchlist {
		slug, ok := tagAliases[entry.Technology]
		if !ok {
			slug = strings.ToLower(entry.Technology)
		}
		counts[entry.Technology] = pageCounts[slug]
	}
	return counts, nil
}
