package params

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

var ErrMissing = errors.New("url parameter is missing")

// UUID reads the named chi URL parameter and returns it in canonical uuid form.
func UUID(r *http.Request, name string) (string, error) {
	raw := chi.URLParam(r, name)
	if raw == "" {
		return "", ErrMissing
	}

	id, err := uuid.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("invalid %s: %w", name, err)
	}

	return id.String(), nil
}
