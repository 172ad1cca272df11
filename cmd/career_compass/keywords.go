package main

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/career-compass/internal/analyzer"
	"github.com/jonathan/career-compass/internal/config"
	"github.com/jonathan/career-compass/internal/ingestion"
)

var keywordsCmd = &cobra.Command{
	Use:   "keywords",
	Short: "Match a keyword list against a resume",
	Long:  "Run the lightweight keyword matcher: report which of the given keywords appear verbatim in the resume text, along with the full project catalog.",
	RunE:  runKeywords,
}

var (
	keywordsInputFile string
	keywordsList      []string
)

func init() {
	keywordsCmd.Flags().StringVarP(&keywordsInputFile, "in", "i", "", "Path to resume file (.txt or .pdf)")
	keywordsCmd.Flags().StringSliceVarP(&keywordsList, "keywords", "k", nil, "Keywords to match (default: built-in list)")

	if err := keywordsCmd.MarkFlagRequired("in"); err != nil {
		panic(err)
	}

	rootCmd.AddCommand(keywordsCmd)
}

func runKeywords(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	resumeText, err := ingestion.ReadResumeFile(keywordsInputFile)
	if err != nil {
		return fmt.Errorf("failed to read resume: %w", err)
	}
	if err := analyzer.ValidateLength(resumeText); err != nil {
		return err
	}

	ref, err := resolveReferenceData(context.Background(), cfg)
	if err != nil {
		return err
	}
	a, err := analyzer.New(ref)
	if err != nil {
		return err
	}

	result := a.MatchKeywords(resumeText, keywordsList)

	jsonBytes, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	fmt.Println(string(jsonBytes))
	return nil
}
