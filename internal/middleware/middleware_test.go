package middleware

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/yigit/unitutor/internal/app/models"
	"github.com/yigit/unitutor/internal/app/models/dto"
	"github.com/yigit/unitutor/internal/pkg/apperrors"
	"github.com/yigit/unitutor/internal/pkg/auth"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newJWTService() *auth.JWTService {
	return auth.NewJWTService(auth.JWTConfig{
		SecretKey:      "middleware-secret",
		AccessTokenExp: time.Hour,
		TokenIssuer:    "unitutor.test",
	})
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) dto.ErrorResponse {
	t.Helper()
	var resp dto.ErrorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode error response: %v (body %s)", err, w.Body.String())
	}
	return resp
}

func TestJWTAuthSetsEmail(t *testing.T) {
	jwtService := newJWTService()
	token, _, err := jwtService.GenerateAccessToken(&models.User{ID: 5, Email: "ana@student.hr"})
	if err != nil {
		t.Fatalf("GenerateAccessToken: %v", err)
	}

	r := gin.New()
	r.GET("/me", NewAuthMiddleware(jwtService).JWTAuth(), func(c *gin.Context) {
		email, _ := CurrentUserEmail(c)
		c.String(http.StatusOK, "%s/%d", email, c.GetInt64(ContextUserID))
	})

	for _, header := range []string{"Bearer " + token, token} {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		req.Header.Set("Authorization", header)
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
		}
		if w.Body.String() != "ana@student.hr/5" {
			t.Fatalf("body = %q", w.Body.String())
		}
	}
}

func TestJWTAuthRejects(t *testing.T) {
	jwtService := newJWTService()
	other := auth.NewJWTService(auth.JWTConfig{SecretKey: "other", AccessTokenExp: time.Hour, TokenIssuer: "unitutor.test"})
	forged, _, _ := other.GenerateAccessToken(&models.User{ID: 1, Email: "x@y.hr"})

	r := gin.New()
	r.GET("/me", NewAuthMiddleware(jwtService).JWTAuth(), func(c *gin.Context) {
		t.Error("handler must not run")
	})

	cases := map[string]string{
		"missing":   "",
		"garbage":   "Basic abc",
		"forged":    "Bearer " + forged,
		"malformed": "Bearer not-a-token",
	}
	for name, header := range cases {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		if header != "" {
			req.Header.Set("Authorization", header)
		}
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Errorf("%s: status = %d", name, w.Code)
			continue
		}
		if resp := decodeError(t, w); resp.Success {
			t.Errorf("%s: success should be false", name)
		}
	}
}

func TestJWTAuthMapsTokenErrors(t *testing.T) {
	expired := auth.NewJWTService(auth.JWTConfig{SecretKey: "middleware-secret", AccessTokenExp: -time.Minute, TokenIssuer: "unitutor.test"})
	stale, _, err := expired.GenerateAccessToken(&models.User{ID: 1, Email: "x@y.hr"})
	if err != nil {
		t.Fatalf("GenerateAccessToken: %v", err)
	}

	r := gin.New()
	r.GET("/me", NewAuthMiddleware(newJWTService()).JWTAuth(), func(c *gin.Context) {
		t.Error("handler must not run")
	})

	cases := []struct {
		header string
		code   dto.ErrorCode
	}{
		{"Bearer " + stale, dto.ErrorCodeExpiredToken},
		{"Bearer not-a-token", dto.ErrorCodeInvalidToken},
	}
	for _, tc := range cases {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		req.Header.Set("Authorization", tc.header)
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Errorf("%s: status = %d", tc.code, w.Code)
			continue
		}
		if resp := decodeError(t, w); resp.Error == nil || resp.Error.Code != tc.code {
			t.Errorf("%s: got %+v", tc.code, resp.Error)
		}
	}
}

func TestHandleAPIErrorMapping(t *testing.T) {
	cases := []struct {
		err     error
		status  int
		message string
	}{
		{apperrors.ErrSubjectNotFound, http.StatusNotFound, "Subject not found."},
		{fmt.Errorf("wrap: %w", apperrors.ErrStudentNotFound), http.StatusNotFound, "Student not found."},
		{apperrors.ErrSubjectURLExists, http.StatusConflict, "A subject with this url already exists."},
		{apperrors.ErrEmailAlreadyExists, http.StatusConflict, "Email already exists"},
		{apperrors.ErrInvalidCredentials, http.StatusUnauthorized, "Invalid credentials"},
		{apperrors.ErrTokenExpired, http.StatusUnauthorized, "Token expired"},
		{fmt.Errorf("%w: bad signature", apperrors.ErrTokenInvalid), http.StatusUnauthorized, "Invalid token"},
		{apperrors.ErrUserNotFound, http.StatusInternalServerError, "Internal server error"},
		{apperrors.NewValidationError("url", "url is required"), http.StatusBadRequest, "url is required"},
		{fmt.Errorf("insert: %w", apperrors.ErrPersistence), http.StatusInternalServerError, "Internal server error"},
		{errors.New("connection refused"), http.StatusInternalServerError, "Internal server error"},
	}

	for _, tc := range cases {
		r := gin.New()
		r.GET("/", func(c *gin.Context) { HandleAPIError(c, tc.err) })
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

		if w.Code != tc.status {
			t.Errorf("%v: status = %d, want %d", tc.err, w.Code, tc.status)
			continue
		}
		resp := decodeError(t, w)
		if resp.Success || resp.Message != tc.message {
			t.Errorf("%v: got success=%v message=%q, want %q", tc.err, resp.Success, resp.Message, tc.message)
		}
	}
}

func TestHandleAPIErrorHidesCause(t *testing.T) {
	r := gin.New()
	r.GET("/", func(c *gin.Context) {
		HandleAPIErrorWithMessage(c, errors.New("pq: password authentication failed"), "An error occurred while creating the subject.")
	})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	resp := decodeError(t, w)
	if resp.Message != "An error occurred while creating the subject." {
		t.Fatalf("message = %q", resp.Message)
	}
	if resp.Error.Code != dto.ErrorCodeInternalServer {
		t.Fatalf("code = %s", resp.Error.Code)
	}
}

func TestValidationErrorCarriesField(t *testing.T) {
	r := gin.New()
	r.GET("/", func(c *gin.Context) { HandleAPIError(c, apperrors.NewValidationError("title", "title is required")) })
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	if resp := decodeError(t, w); resp.Error.Field != "title" {
		t.Fatalf("field = %q", resp.Error.Field)
	}
}

func TestRecoveryReturnsStructured500(t *testing.T) {
	r := gin.New()
	r.Use(RequestID(), Recovery(zerolog.Nop()))
	r.GET("/boom", func(c *gin.Context) { panic("boom") })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/boom", nil))

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d", w.Code)
	}
	resp := decodeError(t, w)
	if resp.Success || resp.Error == nil || resp.Error.Code != dto.ErrorCodeInternalServer {
		t.Fatalf("unexpected body %s", w.Body.String())
	}
	if w.Header().Get(RequestIDHeader) == "" {
		t.Fatal("request id header should be set")
	}
}

func TestRequestIDReusesIncomingHeader(t *testing.T) {
	r := gin.New()
	r.Use(RequestID())
	r.GET("/", func(c *gin.Context) { c.String(http.StatusOK, c.GetString(ContextRequestID)) })

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, "abc-123")
	r.ServeHTTP(w, req)

	if w.Body.String() != "abc-123" || w.Header().Get(RequestIDHeader) != "abc-123" {
		t.Fatalf("request id not propagated: body=%q header=%q", w.Body.String(), w.Header().Get(RequestIDHeader))
	}
}

func TestRateLimiterReturns429(t *testing.T) {
	rl := NewRateLimiter(RateLimiterConfig{RequestsPerMinute: 60, Burst: 2})
	defer rl.Stop()

	r := gin.New()
	r.Use(rl.Middleware())
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.RemoteAddr = "10.0.0.1:1234"
		r.ServeHTTP(w, req)
		codes = append(codes, w.Code)
		if w.Code == http.StatusTooManyRequests && w.Header().Get("Retry-After") != "1" {
			t.Errorf("Retry-After = %q", w.Header().Get("Retry-After"))
		}
	}
	if codes[0] != http.StatusOK || codes[1] != http.StatusOK || codes[2] != http.StatusTooManyRequests {
		t.Fatalf("codes = %v", codes)
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "10.0.0.2:1234"
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("other client should have its own bucket, got %d", w.Code)
	}
}

func TestRateLimiterCleanupEvictsIdleClients(t *testing.T) {
	rl := NewRateLimiter(RateLimiterConfig{RequestsPerMinute: 60, Burst: 1, CleanupInterval: time.Minute})
	defer rl.Stop()

	rl.limiterFor("10.0.0.1")
	if rl.ClientCount() != 1 {
		t.Fatalf("ClientCount = %d", rl.ClientCount())
	}

	rl.cleanup(time.Now().Add(3 * time.Minute))
	if rl.ClientCount() != 0 {
		t.Fatalf("idle client should be evicted, ClientCount = %d", rl.ClientCount())
	}
}

type recordedRequest struct {
	method, route string
	status        int
}

type fakeRecorder struct{ requests []recordedRequest }

func (f *fakeRecorder) RecordSubjectCreated() {}
func (f *fakeRecorder) RecordSessionRequested() {}
func (f *fakeRecorder) RecordHTTPRequest(method, route string, status int, _ time.Duration) {
	f.requests = append(f.requests, recordedRequest{method, route, status})
}

func TestMetricsUsesRouteTemplate(t *testing.T) {
	rec := &fakeRecorder{}
	r := gin.New()
	r.Use(Metrics(rec))
	r.GET("/api/subject/:url", func(c *gin.Context) { c.Status(http.StatusNotFound) })

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/subject/algebra", nil))
	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/nowhere", nil))

	if len(rec.requests) != 2 {
		t.Fatalf("recorded %d requests", len(rec.requests))
	}
	if got := rec.requests[0]; got.route != "/api/subject/:url" || got.status != http.StatusNotFound {
		t.Fatalf("unexpected record %+v", got)
	}
	if rec.requests[1].route != "unmatched" {
		t.Fatalf("unmatched route recorded as %q", rec.requests[1].route)
	}
}
