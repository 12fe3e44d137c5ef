package handler

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
)

func newEcho() *echo.Echo {
	e := echo.New()
	e.Validator = NewValidator()
	return e
}

// newContext builds an echo context carrying an authenticated identity.
func newContext(e *echo.Echo, method, target string, body io.Reader, actorID int64, roles ...string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(method, target, body)
	if body != nil {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if actorID != 0 {
		c.Set("user_id", actorID)
		c.Set("roles", roles)
	}
	return c, rec
}

func jsonBody(s string) io.Reader {
	return strings.NewReader(s)
}

// decodeEnvelope unpacks the response wrapper and fails on malformed JSON.
func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) (result, message string, data any) {
	t.Helper()
	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	result, _ = resp["result"].(string)
	message, _ = resp["message"].(string)
	return result, message, resp["data"]
}

func assertSuccess(t *testing.T, rec *httptest.ResponseRecorder, wantStatus int) any {
	t.Helper()
	if rec.Code != wantStatus {
		t.Fatalf("expected %d, got %d (body %s)", wantStatus, rec.Code, rec.Body.String())
	}
	result, _, data := decodeEnvelope(t, rec)
	if result != "SUCCESS" {
		t.Fatalf("expected SUCCESS envelope, got %q", result)
	}
	return data
}

func httpCode(t *testing.T, err error) int {
	t.Helper()
	he, ok := err.(*echo.HTTPError)
	if !ok {
		t.Fatalf("expected *echo.HTTPError, got %T (%v)", err, err)
	}
	return he.Code
}
