// Package collector gathers technology popularity data from public
// sources and deposits a trend snapshot for the analyzer to consume.
// It runs as an independent ingestion step; the analysis core never
// fetches anything itself.
package collector

import (
	"context"
	"fmt"
	"net/http"
	"sort"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/jonathan/career-compass/internal/types"
)

// DefaultTimeout is the per-request HTTP timeout.
const DefaultTimeout = 30 * time.Second

// DefaultUserAgent identifies collector requests.
const DefaultUserAgent = "Mozilla/5.0 (compatible; CareerCompassCollector/1.0)"

// Error represents a failure collecting from one source.
type Error struct {
	Source  string
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("collector error from %s: %s: %v", e.Source, e.Message, e.Cause)
	}
	return fmt.Sprintf("collector error from %s: %s", e.Source, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// Options configures collection behavior.
type Options struct {
	Timeout   time.Duration
	UserAgent string
	// Technologies limits which technologies are collected. Empty means
	// the built-in watchlist.
	Technologies []watchEntry
}

// watchEntry pairs a technology with its trend category.
type watchEntry struct {
	Technology string
	Category   string
}

// defaultWatchlist is the built-in set of technologies to track, with
// the categories the demand classifier expects.
var defaultWatchlist = []watchEntry{
	{"JavaScript", "Language"},
	{"Python", "Language"},
	{"TypeScript", "Language"},
	{"Java", "Language"},
	{"Go", "Language"},
	{"Rust", "Language"},
	{"React", "Framework"},
	{"Vue.js", "Framework"},
	{"Angular", "Framework"},
	{"Django", "Framework"},
	{"Node.js", "Framework"},
	{"PostgreSQL", "Database"},
	{"MySQL", "Database"},
	{"MongoDB", "Database"},
	{"Redis", "Database"},
	{"Docker", "Cloud Platform"},
	{"Kubernetes", "Cloud Platform"},
	{"AWS", "Cloud Platform"},
	{"Git", "Developer Tool"},
	{"GraphQL", "Developer Tool"},
}

// Collector fetches popularity signals from public sources.
type Collector struct {
	client    *http.Client
	userAgent string
	watchlist []watchEntry

	githubBaseURL        string
	stackOverflowBaseURL string
}

// New creates a Collector.
func New(opts *Options) *Collector {
	if opts == nil {
		opts = &Options{}
	}
	timeout := opts.Timeout
	if timeout == 0 {
		timeout = DefaultTimeout
	}
	userAgent := opts.UserAgent
	if userAgent == "" {
		userAgent = DefaultUserAgent
	}
	watchlist := opts.Technologies
	if len(watchlist) == 0 {
		watchlist = defaultWatchlist
	}

	return &Collector{
		client:               &http.Client{Timeout: timeout},
		userAgent:            userAgent,
		watchlist:            watchlist,
		githubBaseURL:        "https://api.github.com",
		stackOverflowBaseURL: "https://stackoverflow.com",
	}
}

// Collect gathers repository counts and tag activity for the watchlist,
// querying both sources concurrently, and merges them into a normalized
// trend snapshot sorted by trend score descending.
func (c *Collector) Collect(ctx context.Context) ([]types.TrendRecord, error) {
	var (
		repoCounts map[string]int
		tagCounts  map[string]int
	)

	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() error {
		var err error
		repoCounts, err = c.collectGitHub(groupCtx)
		return err
	})
	group.Go(func() error {
		var err error
		tagCounts, err = c.collectStackOverflowTags(groupCtx)
		return err
	})
	if err := group.Wait(); err != nil {
		return nil, err
	}

	return c.merge(repoCounts, tagCounts), nil
}

// merge normalizes raw counts into 0-100 trend scores. Growth rates need
// a previous snapshot; without one they stay 0, and downstream treats
// missing growth as "no growth signal".
func (c *Collector) merge(repoCounts, tagCounts map[string]int) []types.TrendRecord {
	maxRepos := 1
	for _, count := range repoCounts {
		if count > maxRepos {
			maxRepos = count
		}
	}
	maxTags := 1
	for _, count := range tagCounts {
		if count > maxTags {
			maxTags = count
		}
	}

	records := make([]types.TrendRecord, 0, len(c.watchlist))
	for _, entry := range c.watchlist {
		repoScore := float64(repoCounts[entry.Technology]) / float64(maxRepos)
		tagScore := float64(tagCounts[entry.Technology]) / float64(maxTags)
		// Repository volume carries more signal than tag activity.
		score := (repoScore*0.7 + tagScore*0.3) * 100

		records = append(records, types.TrendRecord{
			Technology: entry.Technology,
			Category:   entry.Category,
			TrendScore: score,
		})
	}

	sort.SliceStable(records, func(i, j int) bool {
		return records[i].TrendScore > records[j].TrendScore
	})
	return records
}

// ApplyGrowthRates fills in growth rates by comparing against a previous
// snapshot of the same technologies.
func ApplyGrowthRates(current, previous []types.TrendRecord) []types.TrendRecord {
	prevScores := make(map[string]float64, len(previous))
	for _, record := range previous {
		prevScores[record.Technology] = record.TrendScore
	}

	result := make([]types.TrendRecord, len(current))
	for i, record := range current {
		result[i] = record
		if prev, ok := prevScores[record.Technology]; ok && prev > 0 {
			result[i].GrowthRate = (record.TrendScore - prev) / prev
		}
	}
	return result
}
