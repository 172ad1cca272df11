package collector

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/career-compass/internal/types"
)

func fakeGitHub(t *testing.T, counts map[string]int) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query().Get("q")
		fmt.Fprintf(w, `{"total_count": %d}`, counts[query])
	}))
	t.Cleanup(server.Close)
	return server
}

func fakeStackOverflow(t *testing.T, tags map[string]int) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, `<html><body>`)
		for tag, count := range tags {
			fmt.Fprintf(w, `<div><a class="post-tag">%s</a><span>%d questions</span></div>`, tag, count)
		}
		fmt.Fprint(w, `</body></html>`)
	}))
	t.Cleanup(server.Close)
	return server
}

func testCollector(t *testing.T, github, stackoverflow string) *Collector {
	t.Helper()
	c := New(&Options{
		Technologies: []watchEntry{
			{"JavaScript", "Language"},
			{"Python", "Language"},
		},
	})
	c.githubBaseURL = github
	c.stackOverflowBaseURL = stackoverflow
	return c
}

func TestCollect(t *testing.T) {
	github := fakeGitHub(t, map[string]int{"JavaScript": 2000, "Python": 1000})
	stackoverflow := fakeStackOverflow(t, map[string]int{"javascript": 500, "python": 250})

	c := testCollector(t, github.URL, stackoverflow.URL)

	records, err := c.Collect(context.Background())
	require.NoError(t, err)
	require.Len(t, records, 2)

	// JavaScript leads both sources and normalizes to 100.
	assert.Equal(t, "JavaScript", records[0].Technology)
	assert.Equal(t, "Language", records[0].Category)
	assert.InDelta(t, 100.0, records[0].TrendScore, 1e-9)

	// Python has half the repos and half the tag activity.
	assert.Equal(t, "Python", records[1].Technology)
	assert.InDelta(t, 50.0, records[1].TrendScore, 1e-9)

	assert.Zero(t, records[0].GrowthRate, "growth needs a previous snapshot")
}

func TestCollectStackOverflowDown(t *testing.T) {
	github := fakeGitHub(t, map[string]int{"JavaScript": 10})
	stackoverflow := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	t.Cleanup(stackoverflow.Close)

	c := testCollector(t, github.URL, stackoverflow.URL)

	_, err := c.Collect(context.Background())
	var collErr *Error
	require.ErrorAs(t, err, &collErr)
	assert.Equal(t, "stackoverflow", collErr.Source)
}

func TestCollectGitHubFailuresDegrade(t *testing.T) {
	// Per-technology GitHub failures record a zero count instead of
	// failing the run.
	github := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("q") == "Python" {
			w.WriteHeader(http.StatusForbidden)
			return
		}
		fmt.Fprint(w, `{"total_count": 100}`)
	}))
	t.Cleanup(github.Close)
	stackoverflow := fakeStackOverflow(t, map[string]int{"javascript": 10, "python": 10})

	c := testCollector(t, github.URL, stackoverflow.URL)

	records, err := c.Collect(context.Background())
	require.NoError(t, err)

	byName := make(map[string]types.TrendRecord)
	for _, record := range records {
		byName[record.Technology] = record
	}
	assert.Greater(t, byName["JavaScript"].TrendScore, byName["Python"].TrendScore)
	assert.Greater(t, byName["Python"].TrendScore, 0.0, "tag signal still counts")
}

func TestApplyGrowthRates(t *testing.T) {
	current := []types.TrendRecord{
		{Technology: "Go", TrendScore: 60},
		{Technology: "Rust", TrendScore: 30},
		{Technology: "Zig", TrendScore: 10},
	}
	previous := []types.TrendRecord{
		{Technology: "Go", TrendScore: 50},
		{Technology: "Rust", TrendScore: 40},
	}

	result := ApplyGrowthRates(current, previous)

	assert.InDelta(t, 0.2, result[0].GrowthRate, 1e-9)
	assert.InDelta(t, -0.25, result[1].GrowthRate, 1e-9)
	assert.Zero(t, result[2].GrowthRate, "technologies without history keep zero growth")
}

func TestSnapshotRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snapshot.json")
	records := []types.TrendRecord{
		{Technology: "Go", Category: "Language", TrendScore: 42.5, GrowthRate: 0.1},
	}

	require.NoError(t, WriteSnapshot(path, records))

	loaded, err := ReadSnapshot(path)
	require.NoError(t, err)
	assert.Equal(t, records, loaded)

	_, err = ReadSnapshot(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}

func TestDefaultWatchlistCategories(t *testing.T) {
	// Every watched category must have demand thresholds downstream;
	// the set here mirrors the classifier's table.
	valid := map[string]bool{
		"Language": true, "Framework": true, "Database": true,
		"Cloud Platform": true, "Developer Tool": true,
	}
	for _, entry := range defaultWatchlist {
		assert.True(t, valid[entry.Category], "unexpected category %q for %s", entry.Category, entry.Technology)
	}
}
