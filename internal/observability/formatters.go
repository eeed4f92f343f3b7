// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/Bharanieeswaran/RankRite/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintRankedResults outputs the top N ranked resumes with scores,
// match levels and matched skills.
func (p *Printer) PrintRankedResults(results []types.RankedResume) {
	if len(results) == 0 {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Total resumes ranked: %d\n\n", len(results)))

	count := min(len(results), maxItemsToShow)
	for i := 0; i < count; i++ {
		result := results[i]
		sb.WriteString(fmt.Sprintf("#%d  %s\n", result.Rank, result.ResumeID))
		sb.WriteString(fmt.Sprintf("    Score: %.4f (%s)\n", result.Score, result.MatchLevel))
		if len(result.MatchedSkills) > 0 {
			skills := strings.Join(result.MatchedSkills, ", ")
			if len(skills) > 40 {
				skills = skills[:37] + "..."
			}
			sb.WriteString(fmt.Sprintf("    Skills: %s\n", skills))
		}
		if len(result.MatchedTerms) > 0 {
			terms := make([]string, 0, len(result.MatchedTerms))
			for _, term := range result.MatchedTerms {
				terms = append(terms, term.Term)
			}
			joined := strings.Join(terms, ", ")
			if len(joined) > 40 {
				joined = joined[:37] + "..."
			}
			sb.WriteString(fmt.Sprintf("    Terms:  %s\n", joined))
		}
		if i < count-1 {
			sb.WriteString("\n")
		}
	}

	if len(results) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more resumes", len(results)-maxItemsToShow))
	}

	p.printBox("RANKED RESUMES", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintComparisonMatrix outputs the pairwise similarity matrix in a
// compact table. Resume IDs are shortened to keep rows within the box.
func (p *Printer) PrintComparisonMatrix(matrix *types.ComparisonMatrix) {
	if matrix == nil || matrix.Size() == 0 {
		return
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("%-10s", ""))
	for _, id := range matrix.ResumeIDs {
		sb.WriteString(fmt.Sprintf("%8s", shortenID(id)))
	}
	sb.WriteString("\n")

	for i, id := range matrix.ResumeIDs {
		sb.WriteString(fmt.Sprintf("%-10s", shortenID(id)))
		for j := range matrix.ResumeIDs {
			sb.WriteString(fmt.Sprintf("%8.3f", matrix.At(i, j)))
		}
		if i < matrix.Size()-1 {
			sb.WriteString("\n")
		}
	}

	p.printBox("COMPARISON MATRIX", sb.String())
}

func shortenID(id string) string {
	if len(id) > 7 {
		return id[:6] + "..."
	}
	return id
}
