package server

import (
	"errors"
	"net/http"

	"github.com/Bharanieeswaran/RankRite/internal/engine"
	"github.com/Bharanieeswaran/RankRite/internal/vectorspace"
)

// HTTPStatus returns the appropriate HTTP status code for an error.
// Invalid requests map to 400; a corpus with no usable terms is a
// semantically unprocessable request, so it maps to 422.
func HTTPStatus(err error) int {
	var invalidErr *engine.InvalidInputError
	var emptyErr *vectorspace.EmptyCorpusError

	switch {
	case errors.As(err, &invalidErr):
		return http.StatusBadRequest
	case errors.As(err, &emptyErr):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}
