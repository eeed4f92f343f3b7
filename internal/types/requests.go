package types

import (
	"github.com/go-playground/validator/v10"
)

// ResumeInput is one resume submitted for analysis. The ID is an opaque
// identifier assigned by the caller; submission order is the position in
// the request slice.
type ResumeInput struct {
	ID   string `json:"id" validate:"required"`
	Text string `json:"text" validate:"required"`
}

// RankRequest asks for resumes to be ranked against a job description.
type RankRequest struct {
	UserID         string        `json:"user_id" validate:"required"`
	JobDescription string        `json:"job_description" validate:"required"`
	Resumes        []ResumeInput `json:"resumes" validate:"required,min=1,dive"`
}

// CompareRequest asks for a pairwise similarity matrix among resumes.
// No job description is involved.
type CompareRequest struct {
	UserID  string        `json:"user_id" validate:"required"`
	Resumes []ResumeInput `json:"resumes" validate:"required,min=2,dive"`
}

// Validate validates the RankRequest using the validator.
func (r *RankRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the CompareRequest using the validator.
func (r *CompareRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}
