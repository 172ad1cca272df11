package collector

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
)

// githubSearchResponse is the slice of the search API response we use.
type githubSearchResponse struct {
	TotalCount int `json:"total_count"`
}

// collectGitHub queries the repository search API for each watched
// technology and returns raw repository counts. A technology that fails
// individually is recorded as 0 rather than failing the whole run.
func (c *Collector) collectGitHub(ctx context.Context) (map[string]int, error) {
	counts := make(map[string]int, len(c.watchlist))

	for _, entry := range c.watchlist {
		count, err := c.githubRepoCount(ctx, entry.Technology)
		if err != nil {
			if ctx.Err() != nil {
				return nil, &Error{Source: "github", Message: "search cancelled", Cause: ctx.Err()}
			}
			counts[entry.Technology] = 0
			continue
		}
		counts[entry.Technology] = count
	}
	return counts, nil
}

func (c *Collector) githubRepoCount(ctx context.Context, technology string) (int, error) {
	endpoint := fmt.Sprintf("%s/search/repositories?q=%s&per_page=1",
		c.githubBaseURL, url.QueryEscape(technology))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return 0, &Error{Source: "github", Message: "failed to build request", Cause: err}
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/vnd.github+json")

	resp, err := c.client.Do(req)
	if err != nil {
		return 0, &Error{Source: "github", Message: "request failed", Cause: err}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return 0, &Error{Source: "github", Message: fmt.Sprintf("unexpected status %d", resp.StatusCode)}
	}

	var parsed githubSearchResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return 0, &Error{Source: "github", Message: "failed to decode response", Cause: err}
	}
	return parsed.TotalCount, nil
}
