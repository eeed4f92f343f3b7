// Package types provides type definitions for structured data used throughout the RankRite system.
package types

// DocumentRole identifies what a document is within a request corpus.
type DocumentRole string

const (
	// RoleJob marks the job description document.
	RoleJob DocumentRole = "job"
	// RoleResume marks a candidate resume document.
	RoleResume DocumentRole = "resume"
)

// Document is one text unit (job description or resume) inside a single
// request's corpus. Documents are created at request start and discarded
// with the request; they are never persisted verbatim.
type Document struct {
	ID     string
	Role   DocumentRole
	Order  int // submission order index, 0-based, stable within the request
	Text   string
	Tokens []string
}
