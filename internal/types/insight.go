package types

// ContactInfo holds contact details detected in a resume.
type ContactInfo struct {
	Email    string `json:"email,omitempty"`
	Phone    string `json:"phone,omitempty"`
	LinkedIn string `json:"linkedin,omitempty"`
	GitHub   string `json:"github,omitempty"`
}

// Education is one detected degree and field of study.
type Education struct {
	Degree     string  `json:"degree"`
	Field      string  `json:"field"`
	Confidence float64 `json:"confidence"`
}

// ResumeStats is the per-resume profile extracted in comparison mode,
// where no job description exists to match against.
type ResumeStats struct {
	ResumeID        string      `json:"resume_id"`
	WordCount       int         `json:"word_count"`
	ExperienceYears int         `json:"experience_years"`
	Skills          []string    `json:"skills,omitempty"`
	Education       []Education `json:"education,omitempty"`
	ContactInfo     ContactInfo `json:"contact_info"`
}
