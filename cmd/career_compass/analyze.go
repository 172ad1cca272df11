package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/career-compass/internal/analyzer"
	"github.com/jonathan/career-compass/internal/config"
	"github.com/jonathan/career-compass/internal/gap"
	"github.com/jonathan/career-compass/internal/ingestion"
	"github.com/jonathan/career-compass/internal/observability"
	"github.com/jonathan/career-compass/internal/refdata"
	"github.com/jonathan/career-compass/internal/store"
	"github.com/jonathan/career-compass/internal/types"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Analyze a resume against a target role",
	Long:  "Parse a resume file (.txt or .pdf), extract skills, and produce a gap analysis report against the target role and current market trend data.",
	RunE:  runAnalyze,
}

var (
	analyzeInputFile  string
	analyzeOutputFile string
	analyzeRole       string
	analyzeVerbose    bool
)

func init() {
	analyzeCmd.Flags().StringVarP(&analyzeInputFile, "in", "i", "", "Path to resume file (.txt or .pdf)")
	analyzeCmd.Flags().StringVarP(&analyzeOutputFile, "out", "o", "", "Path to output JSON report (default: stdout)")
	analyzeCmd.Flags().StringVar(&analyzeRole, "role", "", "Target role name (default: "+gap.DefaultRole+")")
	analyzeCmd.Flags().BoolVarP(&analyzeVerbose, "verbose", "v", false, "Print stage summaries to stderr")

	if err := analyzeCmd.MarkFlagRequired("in"); err != nil {
		panic(err)
	}

	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if analyzeRole == "" {
		analyzeRole = cfg.TargetRole
	}

	resumeText, err := ingestion.ReadResumeFile(analyzeInputFile)
	if err != nil {
		return fmt.Errorf("failed to read resume: %w", err)
	}
	if err := analyzer.ValidateLength(resumeText); err != nil {
		return err
	}

	ctx := context.Background()
	ref, err := resolveReferenceData(ctx, cfg)
	if err != nil {
		return err
	}

	a, err := analyzer.New(ref)
	if err != nil {
		return err
	}
	report := a.Analyze(resumeText, analyzer.Options{TargetRole: analyzeRole})

	if analyzeVerbose || cfg.Verbose {
		printer := observability.NewPrinter(os.Stderr)
		printer.PrintParsedResume(&report.Resume)
		printer.PrintSkillProfile(&report.Skills)
		printer.PrintGapAnalysis(report)
		printer.PrintRecommendations(report)
	}

	return writeReport(report, analyzeOutputFile)
}

// resolveReferenceData loads trend records and the project catalog in
// priority order: database, snapshot files, embedded defaults.
func resolveReferenceData(ctx context.Context, cfg *config.Config) (analyzer.ReferenceData, error) {
	ref := analyzer.ReferenceData{
		Roles: gap.DefaultRoleRequirements(),
	}

	if cfg.DatabaseURL != "" {
		st, err := store.Connect(ctx, cfg.DatabaseURL)
		if err != nil {
			return ref, fmt.Errorf("failed to connect to database: %w", err)
		}
		defer st.Close()

		if ref.Trends, err = st.GetTrends(ctx); err != nil {
			return ref, err
		}
		if ref.Projects, err = st.GetProjects(ctx); err != nil {
			return ref, err
		}
		return ref, nil
	}

	var err error
	if cfg.TrendsPath != "" {
		ref.Trends, err = refdata.LoadTrendsFile(cfg.TrendsPath)
	} else {
		ref.Trends = refdata.DefaultTrends()
	}
	if err != nil {
		return ref, err
	}

	if cfg.ProjectsPath != "" {
		ref.Projects, err = refdata.LoadProjectsFile(cfg.ProjectsPath)
	} else {
		ref.Projects = refdata.DefaultProjects()
	}
	return ref, err
}

func writeReport(report *types.AnalysisReport, path string) error {
	jsonBytes, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	if path == "" {
		fmt.Println(string(jsonBytes))
		return nil
	}
	if err := os.WriteFile(path, jsonBytes, 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	fmt.Fprintf(os.Stderr, "Report written to %s\n", path)
	return nil
}
