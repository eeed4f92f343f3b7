package profile

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

var experiencePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(\d+)\+?\s*years?\s+(?:of\s+)?experience`),
	regexp.MustCompile(`(?i)(\d+)\+?\s*years?\s+in\b`),
	regexp.MustCompile(`(?i)experience\s*:?\s*(\d+)\+?\s*years?`),
	regexp.MustCompile(`(?i)(\d+)\+?\s*years?\s+(?:working|professional)`),
}

var (
	dateRangePattern = regexp.MustCompile(`(\d{4})\s*[-–]\s*(\d{4})`)
	openRangePattern = regexp.MustCompile(`(?i)(\d{4})\s*[-–]\s*(present|current)`)
)

// ExtractExperienceYears returns the largest number of years of
// experience stated in the text, considering both explicit "N years"
// phrases and YYYY–YYYY (or YYYY–present) date ranges. Returns 0 when
// nothing is found.
func ExtractExperienceYears(text string) int {
	years := make([]int, 0, 4)

	for _, pattern := range experiencePatterns {
		for _, match := range pattern.FindAllStringSubmatch(text, -1) {
			if n, err := strconv.Atoi(match[1]); err == nil {
				years = append(years, n)
			}
		}
	}

	currentYear := time.Now().Year()
	for _, match := range dateRangePattern.FindAllStringSubmatch(text, -1) {
		start, err1 := strconv.Atoi(match[1])
		end, err2 := strconv.Atoi(match[2])
		if err1 == nil && err2 == nil && end >= start {
			years = append(years, end-start)
		}
	}
	for _, match := range openRangePattern.FindAllStringSubmatch(text, -1) {
		if start, err := strconv.Atoi(match[1]); err == nil && currentYear >= start {
			years = append(years, currentYear-start)
		}
	}

	max := 0
	for _, y := range years {
		if y > max {
			max = y
		}
	}
	return max
}

// WordCount returns the number of whitespace-separated words in text.
func WordCount(text string) int {
	return len(strings.Fields(text))
}
