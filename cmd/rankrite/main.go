// Package main provides the entry point for the RankRite resume
// relevance engine.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "rankrite",
	Short: "RankRite resume relevance engine",
	Long:  "RankRite ranks resumes against job descriptions using TF-IDF weighted cosine similarity, via REST API or one-shot CLI commands.",
}

var configPath string

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to a JSON config file")
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
