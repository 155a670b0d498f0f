//go:build unit || e2e

package httptest

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func AssertHeaders(t *testing.T, w *httptest.ResponseRecorder, expected map[string]string) {
	t.Helper()
	for k, v := range expected {
		assert.Equal(t, v, w.Header().Get(k), "header %s mismatch", k)
	}
}

// LastModified parses the Last-Modified header, failing the test when it is missing.
func LastModified(t *testing.T, w *httptest.ResponseRecorder) time.Time {
	t.Helper()
	raw := w.Header().Get("Last-Modified")
	require.NotEmpty(t, raw, "Last-Modified header missing")
	ts, err := http.ParseTime(raw)
	require.NoError(t, err)
	return ts
}
