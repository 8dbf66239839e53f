package middleware

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	"brickvest-backend/internal/auth"
	"brickvest-backend/internal/domain/user"
)

// withPrincipal stands in for the Auth middleware in these tests.
func withPrincipal(userID string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ctx := auth.WithPrincipal(c.Request().Context(), auth.Principal{UserID: userID, Role: user.RoleInvestor})
			c.SetRequest(c.Request().WithContext(ctx))
			return next(c)
		}
	}
}

func setupEcho(rdb *redis.Client, ttl time.Duration, handler echo.HandlerFunc) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Use(withPrincipal("bbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbb"), Idempotency(rdb, ttl))
	e.POST("/deposits", handler)
	e.GET("/deposits", handler) // for non-mutating bypass test
	return e
}

func mkJSONBody(t *testing.T, v any) io.Reader {
	t.Helper()
	b, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	return bytes.NewReader(b)
}

func doReq(t *testing.T, e *echo.Echo, method, path string, body io.Reader, hdr map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	for k, v := range hdr {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func newMiniredisClient(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("miniredis: %v", err)
	}
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	return mr, rdb
}

func okCreatedHandler(c echo.Context) error {
	return c.JSON(http.StatusCreated, map[string]any{"ok": true})
}

func validHeaders() map[string]string {
	return map[string]string{
		"X-Request-Id": "aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa",
		"X-Request-At": time.Now().UTC().Format(time.RFC3339),
	}
}

func Test_BypassOnGET_NoHeadersRequired(t *testing.T) {
	mr, rdb := newMiniredisClient(t)
	defer mr.Close()
	e := setupEcho(rdb, 30*time.Second, func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "get ok"})
	})
	rec := doReq(t, e, http.MethodGet, "/deposits", nil, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func Test_ValidationFailures(t *testing.T) {
	mr, rdb := newMiniredisClient(t)
	defer mr.Close()
	e := setupEcho(rdb, 30*time.Second, okCreatedHandler)

	// missing X-Request-Id
	h := map[string]string{"X-Request-At": time.Now().UTC().Format(time.RFC3339)}
	rec := doReq(t, e, http.MethodPost, "/deposits", mkJSONBody(t, map[string]int{"x": 1}), h)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("missing X-Request-Id => want 400, got %d", rec.Code)
	}

	// invalid X-Request-Id
	h = validHeaders()
	h["X-Request-Id"] = "NOT-VALID"
	rec = doReq(t, e, http.MethodPost, "/deposits", mkJSONBody(t, map[string]int{"x": 1}), h)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("invalid X-Request-Id => want 400, got %d", rec.Code)
	}

	// invalid X-Request-At format
	h = validHeaders()
	h["X-Request-At"] = "not-a-time"
	rec = doReq(t, e, http.MethodPost, "/deposits", mkJSONBody(t, map[string]int{"x": 1}), h)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("invalid X-Request-At => want 400, got %d", rec.Code)
	}

	// X-Request-At too skewed (past)
	h = validHeaders()
	h["X-Request-At"] = time.Now().UTC().Add(-time.Hour).Format(time.RFC3339)
	rec = doReq(t, e, http.MethodPost, "/deposits", mkJSONBody(t, map[string]int{"x": 1}), h)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("skewed X-Request-At => want 400, got %d", rec.Code)
	}
}

func Test_FirstCallRunsHandler_SecondReplays(t *testing.T) {
	mr, rdb := newMiniredisClient(t)
	defer mr.Close()

	calls := 0
	e := setupEcho(rdb, 30*time.Second, func(c echo.Context) error {
		calls++
		return c.JSON(http.StatusCreated, map[string]any{"ok": true, "n": calls})
	})

	h := validHeaders()
	body := map[string]any{"amount": 100}

	rec1 := doReq(t, e, http.MethodPost, "/deposits", mkJSONBody(t, body), h)
	if rec1.Code != http.StatusCreated {
		t.Fatalf("first call: want 201, got %d", rec1.Code)
	}
	rec2 := doReq(t, e, http.MethodPost, "/deposits", mkJSONBody(t, body), h)
	if rec2.Code != http.StatusCreated {
		t.Fatalf("replay: want 201, got %d", rec2.Code)
	}
	if calls != 1 {
		t.Fatalf("handler ran %d times, want 1", calls)
	}
	if !bytes.Equal(rec1.Body.Bytes(), rec2.Body.Bytes()) {
		t.Fatalf("replayed body differs: %s vs %s", rec1.Body.String(), rec2.Body.String())
	}
}

func Test_SameRequestIdDifferentBody_Conflicts(t *testing.T) {
	mr, rdb := newMiniredisClient(t)
	defer mr.Close()
	e := setupEcho(rdb, 30*time.Second, okCreatedHandler)

	h := validHeaders()
	rec := doReq(t, e, http.MethodPost, "/deposits", mkJSONBody(t, map[string]int{"amount": 100}), h)
	if rec.Code != http.StatusCreated {
		t.Fatalf("first call: want 201, got %d", rec.Code)
	}
	rec = doReq(t, e, http.MethodPost, "/deposits", mkJSONBody(t, map[string]int{"amount": 999}), h)
	if rec.Code != http.StatusConflict {
		t.Fatalf("reused id with new body: want 409, got %d", rec.Code)
	}
}

func Test_DifferentUsersDoNotCollide(t *testing.T) {
	mr, rdb := newMiniredisClient(t)
	defer mr.Close()

	calls := 0
	handler := func(c echo.Context) error {
		calls++
		return c.JSON(http.StatusCreated, map[string]any{"ok": true})
	}
	newApp := func(userID string) *echo.Echo {
		e := echo.New()
		e.HideBanner = true
		e.Use(withPrincipal(userID), Idempotency(rdb, 30*time.Second))
		e.POST("/deposits", handler)
		return e
	}

	h := validHeaders()
	body := map[string]int{"amount": 100}
	if rec := doReq(t, newApp("aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa"), http.MethodPost, "/deposits", mkJSONBody(t, body), h); rec.Code != http.StatusCreated {
		t.Fatalf("user A: want 201, got %d", rec.Code)
	}
	if rec := doReq(t, newApp("cccccccccccccccccccccccccccccccc"), http.MethodPost, "/deposits", mkJSONBody(t, body), h); rec.Code != http.StatusCreated {
		t.Fatalf("user B: want 201, got %d", rec.Code)
	}
	if calls != 2 {
		t.Fatalf("handler ran %d times, want 2 (one per user)", calls)
	}
}

func Test_NoPrincipal_Unauthorized(t *testing.T) {
	mr, rdb := newMiniredisClient(t)
	defer mr.Close()

	e := echo.New()
	e.HideBanner = true
	e.Use(Idempotency(rdb, 30*time.Second))
	e.POST("/deposits", okCreatedHandler)

	rec := doReq(t, e, http.MethodPost, "/deposits", mkJSONBody(t, map[string]int{"x": 1}), validHeaders())
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("want 401 without principal, got %d", rec.Code)
	}
}
