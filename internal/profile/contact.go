package profile

import (
	"regexp"

	"github.com/Bharanieeswaran/RankRite/internal/types"
)

var (
	emailPattern    = regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`)
	phonePattern    = regexp.MustCompile(`(\+\d{1,3}[-.\s]?)?\(?\d{3}\)?[-.\s]?\d{3}[-.\s]?\d{4}`)
	linkedinPattern = regexp.MustCompile(`(?i)linkedin\.com/in/[\w-]+`)
	githubPattern   = regexp.MustCompile(`(?i)github\.com/[\w-]+`)
)

// ExtractContactInfo pulls email, phone and profile links out of resume
// text. Missing fields stay empty.
func ExtractContactInfo(text string) types.ContactInfo {
	info := types.ContactInfo{}

	if email := emailPattern.FindString(text); email != "" {
		info.Email = email
	}
	if phone := phonePattern.FindString(text); phone != "" {
		info.Phone = phone
	}
	if linkedin := linkedinPattern.FindString(text); linkedin != "" {
		info.LinkedIn = "https://" + linkedin
	}
	if github := githubPattern.FindString(text); github != "" {
		info.GitHub = "https://" + github
	}

	return info
}
