//go:build unit || e2e

package httptest

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

// AssertSuccessResponse checks the status and, for 2xx, decodes the body into
// out when out is non-nil.
func AssertSuccessResponse(t *testing.T, w *httptest.ResponseRecorder, expectedStatus int, out any) {
	t.Helper()

	if !assert.Equalf(t, expectedStatus, w.Code, "unexpected status, body: %s", w.Body.String()) {
		return
	}
	if out == nil || w.Code < 200 || w.Code >= 300 {
		return
	}
	assert.NoErrorf(t, json.Unmarshal(w.Body.Bytes(), out), "undecodable body: %s", w.Body.String())
}

// AssertErrorResponse checks the status and that the {"error": ...} body
// contains wantMsg. An empty wantMsg only checks the shape.
func AssertErrorResponse(t *testing.T, w *httptest.ResponseRecorder, expectedStatus int, wantMsg string) {
	t.Helper()

	assert.Equalf(t, expectedStatus, w.Code, "unexpected status, body: %s", w.Body.String())

	var body struct {
		Error string `json:"error"`
	}
	if !assert.NoErrorf(t, json.Unmarshal(w.Body.Bytes(), &body), "undecodable error body: %s", w.Body.String()) {
		return
	}
	assert.NotEmpty(t, body.Error, "error message missing")
	if wantMsg != "" {
		assert.Contains(t, body.Error, wantMsg)
	}
}
