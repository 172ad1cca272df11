// Package refdata loads and validates the reference data snapshots the
// analyzer consumes: trend records, the project catalog, the skill
// database, and the role-requirement table.
package refdata

import (
	"embed"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/xeipuuv/gojsonschema"

	"github.com/jonathan/career-compass/internal/analyzer"
	"github.com/jonathan/career-compass/internal/gap"
	"github.com/jonathan/career-compass/internal/skills"
	"github.com/jonathan/career-compass/internal/types"
)

//go:embed *.json
var assets embed.FS

// SchemaError reports a snapshot that failed schema validation. Treated
// as missing reference data by callers: a malformed snapshot must not
// silently produce a wrong alignment score.
type SchemaError struct {
	Source   string
	Failures []string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("invalid %s snapshot: %s", e.Source, strings.Join(e.Failures, "; "))
}

// validate checks a JSON document against an embedded schema.
func validate(schemaFile, source string, document []byte) error {
	schemaBytes, err := assets.ReadFile(schemaFile)
	if err != nil {
		return fmt.Errorf("failed to read embedded schema %s: %w", schemaFile, err)
	}

	result, err := gojsonschema.Validate(
		gojsonschema.NewBytesLoader(schemaBytes),
		gojsonschema.NewBytesLoader(document),
	)
	if err != nil {
		return fmt.Errorf("schema validation failed for %s: %w", source, err)
	}
	if !result.Valid() {
		failures := make([]string, 0, len(result.Errors()))
		for _, desc := range result.Errors() {
			failures = append(failures, desc.String())
		}
		return &SchemaError{Source: source, Failures: failures}
	}
	return nil
}

// ParseTrends validates and decodes a trend snapshot document.
func ParseTrends(document []byte) ([]types.TrendRecord, error) {
	if err := validate("trends_schema.json", "trends", document); err != nil {
		return nil, err
	}
	var trends []types.TrendRecord
	if err := json.Unmarshal(document, &trends); err != nil {
		return nil, fmt.Errorf("failed to parse trend snapshot: %w", err)
	}
	return trends, nil
}

// ParseProjects validates and decodes a project catalog document.
func ParseProjects(document []byte) ([]types.Project, error) {
	if err := validate("projects_schema.json", "projects", document); err != nil {
		return nil, err
	}
	var projects []types.Project
	if err := json.Unmarshal(document, &projects); err != nil {
		return nil, fmt.Errorf("failed to parse project catalog: %w", err)
	}
	return projects, nil
}

// LoadTrendsFile reads and validates a trend snapshot from disk.
func LoadTrendsFile(path string) ([]types.TrendRecord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read trend snapshot %s: %w", path, err)
	}
	return ParseTrends(data)
}

// LoadProjectsFile reads and validates a project catalog from disk.
func LoadProjectsFile(path string) ([]types.Project, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read project catalog %s: %w", path, err)
	}
	return ParseProjects(data)
}

// DefaultTrends returns the trend snapshot shipped with the binary.
func DefaultTrends() []types.TrendRecord {
	data, err := assets.ReadFile("default_trends.json")
	if err != nil {
		panic(fmt.Sprintf("embedded default trends missing: %v", err))
	}
	trends, err := ParseTrends(data)
	if err != nil {
		panic(fmt.Sprintf("embedded default trends invalid: %v", err))
	}
	return trends
}

// DefaultProjects returns the project catalog shipped with the binary.
func DefaultProjects() []types.Project {
	data, err := assets.ReadFile("default_projects.json")
	if err != nil {
		panic(fmt.Sprintf("embedded default projects missing: %v", err))
	}
	projects, err := ParseProjects(data)
	if err != nil {
		panic(fmt.Sprintf("embedded default projects invalid: %v", err))
	}
	return projects
}

// Default assembles a complete reference-data set from the embedded
// defaults, suitable for CLI runs without an external store.
func Default() analyzer.ReferenceData {
	return analyzer.ReferenceData{
		SkillDB:  skills.DefaultDatabase(),
		Roles:    gap.DefaultRoleRequirements(),
		Trends:   DefaultTrends(),
		Projects: DefaultProjects(),
	}
}
