package vectorspace

import "fmt"

// EmptyCorpusError indicates the request corpus produced an empty
// vocabulary after normalization, so no meaningful vectors can be built.
type EmptyCorpusError struct {
	Documents int
}

func (e *EmptyCorpusError) Error() string {
	return fmt.Sprintf("empty corpus: no vocabulary remained across %d document(s) after normalization", e.Documents)
}
