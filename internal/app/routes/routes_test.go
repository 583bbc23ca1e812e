package routes

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"github.com/yigit/unitutor/internal/app/controllers"
	"github.com/yigit/unitutor/internal/app/models"
	"github.com/yigit/unitutor/internal/app/services"
	"github.com/yigit/unitutor/internal/middleware"
	"github.com/yigit/unitutor/internal/pkg/apperrors"
	"github.com/yigit/unitutor/internal/pkg/auth"
	"github.com/yigit/unitutor/internal/pkg/metrics"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type emptySubjects struct{}

func (emptySubjects) Create(context.Context, *models.Subject) error { return nil }
func (emptySubjects) GetByURL(context.Context, string) (*models.Subject, error) {
	return nil, apperrors.ErrSubjectNotFound
}
func (emptySubjects) GetAll(context.Context) ([]*models.Subject, error) {
	return []*models.Subject{}, nil
}

type emptyUsers struct{}

func (emptyUsers) GetByEmail(context.Context, string) (*models.User, error) {
	return nil, apperrors.ErrUserNotFound
}
func (emptyUsers) GetWithSubjects(context.Context) ([]*models.User, error) {
	return []*models.User{}, nil
}
func (emptyUsers) Create(context.Context, *models.User) error { return nil }
func (emptyUsers) EmailExists(context.Context, string) (bool, error) { return false, nil }

type emptySessions struct{}

func (emptySessions) Create(context.Context, *models.InstructionSession) error { return nil }
func (emptySessions) GetAll(context.Context) ([]*models.InstructionSession, error) {
	return []*models.InstructionSession{}, nil
}

type pingFunc func(ctx context.Context) error

func (f pingFunc) Ping(ctx context.Context) error { return f(ctx) }

func newRouter(health HealthChecker) (*gin.Engine, *auth.JWTService) {
	jwtService := auth.NewJWTService(auth.JWTConfig{SecretKey: "routes-secret", AccessTokenExp: time.Hour, TokenIssuer: "unitutor.test"})
	log := zerolog.Nop()

	subjectService := services.NewSubjectService(emptySubjects{}, emptyUsers{}, nil, log)
	instructionService := services.NewInstructionService(emptySessions{}, emptyUsers{}, nil, log)
	authService := services.NewAuthService(emptyUsers{}, jwtService, log)

	r := gin.New()
	SetupRouter(r,
		controllers.NewAuthController(authService),
		controllers.NewSubjectController(subjectService),
		controllers.NewInstructionController(instructionService),
		middleware.NewAuthMiddleware(jwtService),
		health,
	)
	return r, jwtService
}

func get(r http.Handler, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestSubjectsListIsPublic(t *testing.T) {
	r, _ := newRouter(nil)

	w := get(r, "/api/subjects", "")
	if w.Code != http.StatusOK || w.Body.String() != `{"success":true,"subjects":[]}` {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	r, jwtService := newRouter(nil)

	for _, path := range []string{"/api/subject/algebra", "/api/instructions"} {
		if w := get(r, path, ""); w.Code != http.StatusUnauthorized {
			t.Errorf("%s without token: status = %d", path, w.Code)
		}
	}

	token, _, err := jwtService.GenerateAccessToken(&models.User{ID: 1, Email: "ana@student.hr"})
	if err != nil {
		t.Fatalf("GenerateAccessToken: %v", err)
	}
	if w := get(r, "/api/instructions", token); w.Code != http.StatusOK {
		t.Fatalf("/api/instructions with token: status = %d", w.Code)
	}
	if w := get(r, "/api/subject/algebra", token); w.Code != http.StatusNotFound {
		t.Fatalf("/api/subject/algebra with token: status = %d", w.Code)
	}
}

func TestHealth(t *testing.T) {
	healthy, _ := newRouter(pingFunc(func(context.Context) error { return nil }))
	if w := get(healthy, "/api/health", ""); w.Code != http.StatusOK {
		t.Fatalf("healthy status = %d", w.Code)
	}

	down, _ := newRouter(pingFunc(func(context.Context) error { return errors.New("down") }))
	if w := get(down, "/api/health", ""); w.Code != http.StatusServiceUnavailable {
		t.Fatalf("down status = %d", w.Code)
	}
}

func TestMetricsEndpoint(t *testing.T) {
	reg := prometheus.NewRegistry()
	collector := metrics.NewCollector(reg)
	collector.RecordSubjectCreated()

	r := gin.New()
	SetupMetrics(r, reg)

	w := get(r, "/metrics", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "unitutor_subjects_created_total 1") {
		t.Fatalf("metric missing from body:\n%s", w.Body.String())
	}
}
