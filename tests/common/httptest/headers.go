//go:build unit || e2e

package httptest

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

// JSONContentType is what gin writes for every c.JSON response
const JSONContentType = "application/json; charset=utf-8"

// AssertJSONBody checks that a response carrying a body declares it as JSON
func AssertJSONBody(t *testing.T, w *httptest.ResponseRecorder) {
	t.Helper()
	if w.Body.Len() == 0 {
		return
	}
	assert.Equal(t, JSONContentType, w.Header().Get("Content-Type"), "body %s", w.Body.String())
}
