package params

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func requestWithParam(key, value string) *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/", nil)

	rctx := chi.NewRouteContext()
	if value != "" {
		rctx.URLParams.Add(key, value)
	}

	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

func TestUUID(t *testing.T) {
	t.Parallel()

	t.Run("canonicalizes", func(t *testing.T) {
		t.Parallel()

		id, err := UUID(requestWithParam("id", "6F9619FF-8B86-D011-B42D-00CF4FC964FF"), "id")
		require.NoError(t, err)
		assert.Equal(t, "6f9619ff-8b86-d011-b42d-00cf4fc964ff", id)
	})

	t.Run("missing", func(t *testing.T) {
		t.Parallel()

		_, err := UUID(requestWithParam("id", ""), "id")
		assert.ErrorIs(t, err, ErrMissing)
	})

	t.Run("malformed", func(t *testing.T) {
		t.Parallel()

		_, err := UUID(requestWithParam("id", "abc"), "id")
		require.Error(t, err)
		assert.NotErrorIs(t, err, ErrMissing)
	})
}
