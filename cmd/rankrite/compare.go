package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Bharanieeswaran/RankRite/internal/config"
	"github.com/Bharanieeswaran/RankRite/internal/observability"
	"github.com/Bharanieeswaran/RankRite/internal/types"
)

var compareCmd = &cobra.Command{
	Use:   "compare",
	Short: "Compare resumes pairwise",
	Long:  "Builds a symmetric similarity matrix across the given resume files, with no job description involved, and prints it as JSON.",
	RunE:  runCompare,
}

var (
	compareResumes []string
	compareUser    string
	compareOutput  string
	compareVerbose bool
)

func init() {
	compareCmd.Flags().StringSliceVarP(&compareResumes, "resume", "r", nil, "Path to a resume text file, repeatable, at least two (required)")
	compareCmd.Flags().StringVarP(&compareUser, "user", "u", "cli", "User identifier recorded in history")
	compareCmd.Flags().StringVarP(&compareOutput, "out", "o", "", "Path to write the JSON result (default stdout)")
	compareCmd.Flags().BoolVarP(&compareVerbose, "verbose", "v", false, "Print a formatted summary to stderr")

	if err := compareCmd.MarkFlagRequired("resume"); err != nil {
		panic(fmt.Sprintf("failed to mark resume flag as required: %v", err))
	}

	rootCmd.AddCommand(compareCmd)
}

func runCompare(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	resumes, err := loadResumeFiles(compareResumes)
	if err != nil {
		return err
	}

	cfg.HistoryBackend = config.BackendMemory
	analyzer, cleanup, err := buildAnalyzer(context.Background(), cfg, zap.NewNop())
	if err != nil {
		return err
	}
	defer cleanup()

	result, err := analyzer.Compare(context.Background(), &types.CompareRequest{
		UserID:  compareUser,
		Resumes: resumes,
	})
	if err != nil {
		return err
	}

	if compareVerbose {
		observability.NewPrinter(os.Stderr).PrintComparisonMatrix(result.Matrix)
	}
	return writeJSONOutput(compareOutput, result)
}
