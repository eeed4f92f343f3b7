package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Bharanieeswaran/RankRite/internal/config"
	"github.com/Bharanieeswaran/RankRite/internal/observability"
	"github.com/Bharanieeswaran/RankRite/internal/types"
)

var rankCmd = &cobra.Command{
	Use:   "rank",
	Short: "Rank resumes against a job description",
	Long:  "Scores each resume file against the job description using TF-IDF weighted cosine similarity and prints the ranked results as JSON.",
	RunE:  runRank,
}

var (
	rankJobFile string
	rankResumes []string
	rankUser    string
	rankOutput  string
	rankVerbose bool
)

func init() {
	rankCmd.Flags().StringVarP(&rankJobFile, "job", "j", "", "Path to the job description text file (required)")
	rankCmd.Flags().StringSliceVarP(&rankResumes, "resume", "r", nil, "Path to a resume text file, repeatable (required)")
	rankCmd.Flags().StringVarP(&rankUser, "user", "u", "cli", "User identifier recorded in history")
	rankCmd.Flags().StringVarP(&rankOutput, "out", "o", "", "Path to write the JSON result (default stdout)")
	rankCmd.Flags().BoolVarP(&rankVerbose, "verbose", "v", false, "Print a formatted summary to stderr")

	if err := rankCmd.MarkFlagRequired("job"); err != nil {
		panic(fmt.Sprintf("failed to mark job flag as required: %v", err))
	}
	if err := rankCmd.MarkFlagRequired("resume"); err != nil {
		panic(fmt.Sprintf("failed to mark resume flag as required: %v", err))
	}

	rootCmd.AddCommand(rankCmd)
}

func runRank(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	// 1. Load the job description
	jobText, err := os.ReadFile(rankJobFile)
	if err != nil {
		return fmt.Errorf("failed to read job description file %s: %w", rankJobFile, err)
	}

	// 2. Load every resume; the file basename becomes the resume ID
	resumes, err := loadResumeFiles(rankResumes)
	if err != nil {
		return err
	}

	// 3. Run the analysis against the in-memory backend
	cfg.HistoryBackend = config.BackendMemory
	analyzer, cleanup, err := buildAnalyzer(context.Background(), cfg, zap.NewNop())
	if err != nil {
		return err
	}
	defer cleanup()

	result, err := analyzer.Rank(context.Background(), &types.RankRequest{
		UserID:         rankUser,
		JobDescription: string(jobText),
		Resumes:        resumes,
	})
	if err != nil {
		return err
	}

	// 4. Write the result
	if rankVerbose {
		observability.NewPrinter(os.Stderr).PrintRankedResults(result.Results)
	}
	return writeJSONOutput(rankOutput, result)
}

// loadResumeFiles reads each path into a ResumeInput keyed by the file
// basename without extension. Duplicate basenames are rejected early so
// the engine's duplicate-ID check does not produce a confusing message.
func loadResumeFiles(paths []string) ([]types.ResumeInput, error) {
	resumes := make([]types.ResumeInput, 0, len(paths))
	seen := make(map[string]string, len(paths))

	for _, path := range paths {
		text, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read resume file %s: %w", path, err)
		}

		base := filepath.Base(path)
		id := strings.TrimSuffix(base, filepath.Ext(base))
		if prev, dup := seen[id]; dup {
			return nil, fmt.Errorf("resume files %s and %s share the identifier %q", prev, path, id)
		}
		seen[id] = path

		resumes = append(resumes, types.ResumeInput{ID: id, Text: string(text)})
	}
	return resumes, nil
}

func writeJSONOutput(path string, data any) error {
	encoded, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal result: %w", err)
	}

	if path == "" {
		fmt.Println(string(encoded))
		return nil
	}
	if err := os.WriteFile(path, append(encoded, '\n'), 0644); err != nil {
		return fmt.Errorf("failed to write output file %s: %w", path, err)
	}
	return nil
}
