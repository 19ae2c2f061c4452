package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/Tripno08/innerview-backend/internal/core/token"
)

func invokeAuth(t *testing.T, tokens TokenVerifier, header string) (echo.Context, error) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	c := e.NewContext(req, httptest.NewRecorder())

	next := func(c echo.Context) error { return c.NoContent(http.StatusOK) }
	err := Auth(tokens)(next)(c)
	return c, err
}

func TestAuth_ValidToken(t *testing.T) {
	tokens := token.NewService("secret", "innerview", time.Hour)
	signed, err := tokens.Sign("user-1", "ana@x.com", "TEACHER")
	if err != nil {
		t.Fatalf("Sign: %v", err)
	}

	c, err := invokeAuth(t, tokens, "Bearer "+signed)
	if err != nil {
		t.Fatalf("valid token rejected: %v", err)
	}

	if got := c.Get(CtxUserID); got != "user-1" {
		t.Fatalf("user_id = %v", got)
	}
	if got := c.Get(CtxEmail); got != "ana@x.com" {
		t.Fatalf("email = %v", got)
	}
	if got := c.Get(CtxRole); got != "TEACHER" {
		t.Fatalf("role = %v", got)
	}
}

func TestAuth_SchemeIsCaseInsensitive(t *testing.T) {
	tokens := token.NewService("secret", "innerview", time.Hour)
	signed, _ := tokens.Sign("user-1", "ana@x.com", "TEACHER")

	if _, err := invokeAuth(t, tokens, "bearer "+signed); err != nil {
		t.Fatalf("lowercase scheme rejected: %v", err)
	}
}

func TestAuth_Rejections(t *testing.T) {
	tokens := token.NewService("secret", "innerview", time.Hour)
	expired, _ := tokens.Sign("user-1", "ana@x.com", "TEACHER", token.WithExpiry(-time.Minute))

	cases := []struct {
		name   string
		header string
	}{
		{"missing header", ""},
		{"wrong scheme", "Basic abc123"},
		{"no token", "Bearer"},
		{"garbage token", "Bearer not.a.token"},
		{"expired token", "Bearer " + expired},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := invokeAuth(t, tokens, tc.header)
			httpErr, ok := err.(*echo.HTTPError)
			if !ok {
				t.Fatalf("expected *echo.HTTPError, got %v", err)
			}
			if httpErr.Code != http.StatusUnauthorized {
				t.Fatalf("expected 401, got %d", httpErr.Code)
			}
		})
	}
}

// An expired token and a forged token must produce identical responses.
func TestAuth_UniformFailureMessage(t *testing.T) {
	tokens := token.NewService("secret", "innerview", time.Hour)
	expired, _ := tokens.Sign("user-1", "ana@x.com", "TEACHER", token.WithExpiry(-time.Minute))

	forged := token.NewService("other-secret", "innerview", time.Hour)
	wrongKey, _ := forged.Sign("user-1", "ana@x.com", "TEACHER")

	_, expiredErr := invokeAuth(t, tokens, "Bearer "+expired)
	_, forgedErr := invokeAuth(t, tokens, "Bearer "+wrongKey)

	a, ok := expiredErr.(*echo.HTTPError)
	if !ok {
		t.Fatalf("expired: expected *echo.HTTPError, got %v", expiredErr)
	}
	b, ok := forgedErr.(*echo.HTTPError)
	if !ok {
		t.Fatalf("forged: expected *echo.HTTPError, got %v", forgedErr)
	}
	if a.Code != b.Code || a.Message != b.Message {
		t.Fatalf("failure responses differ: %v vs %v", a, b)
	}
}
