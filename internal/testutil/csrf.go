package testutil

import (
	"context"
	"net/http"
)

// csrfTokenKey matches the key used by gorilla/csrf internally.
// This allows injecting a mock token for testing.
const csrfTokenKey = "gorilla.csrf.Token"

// WithCSRFToken adds a mock CSRF token to the request context.
// This prevents empty tokens when handlers call csrf.Token(r) or
// csrf.TemplateField(r) outside the CSRF middleware.
//
// Usage:
//
//	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
//	req = testutil.WithCSRFToken(req)
//	handler.ServeHTTP(rec, req)
func WithCSRFToken(r *http.Request) *http.Request {
	ctx := context.WithValue(r.Context(), csrfTokenKey, "test-csrf-token-12345")
	return r.WithContext(ctx)
}
