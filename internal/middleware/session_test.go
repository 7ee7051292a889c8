package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

func signToken(t *testing.T, secret, sub string) string {
	t.Helper()
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": sub,
		"exp": time.Now().Add(time.Minute).Unix(),
	})
	signed, err := tok.SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("signing failed: %v", err)
	}
	return signed
}

func gatedEcho(secret string) (*echo.Echo, *bool) {
	e := echo.New()
	reached := false
	h := SessionGate(secret)(func(c echo.Context) error {
		reached = true
		return c.String(http.StatusOK, "ok")
	})
	e.GET("/v1/bookings", h)
	return e, &reached
}

func TestSessionGateAllowsValidToken(t *testing.T) {
	e, reached := gatedEcho("secret")
	req := httptest.NewRequest(http.MethodGet, "/v1/bookings", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, "secret", "user-1"))
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK || !*reached {
		t.Fatalf("expected gated handler to run, got %d", rec.Code)
	}
}

func TestSessionGateRejectsMissingToken(t *testing.T) {
	e, reached := gatedEcho("secret")
	req := httptest.NewRequest(http.MethodGet, "/v1/bookings", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
	if *reached {
		t.Fatalf("handler ran without a session")
	}
}

func TestSessionGateRejectsWrongSecret(t *testing.T) {
	e, reached := gatedEcho("secret")
	req := httptest.NewRequest(http.MethodGet, "/v1/bookings", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, "other-secret", "user-1"))
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
	if *reached {
		t.Fatalf("handler ran with a forged session")
	}
}
