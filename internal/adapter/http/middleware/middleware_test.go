package middleware

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"assessoria_licitacoes/internal/domain/entities"
	"assessoria_licitacoes/internal/infrastructure/config"
	"assessoria_licitacoes/pkg"
	"assessoria_licitacoes/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

func init() {
	gin.SetMode(gin.TestMode)
}

var authCfg = config.AuthConfig{JWTSecret: "test-secret-key", TokenExpireHours: 12}

func captureLogs(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(logger.New(logger.Config{Level: "debug", Format: "json"}, &buf))
	t.Cleanup(func() { slog.SetDefault(prev) })
	return &buf
}

func TestRequestID(t *testing.T) {
	r := gin.New()
	r.Use(RequestID())
	var seenCtx string
	r.GET("/ping", func(c *gin.Context) {
		seenCtx, _ = c.Request.Context().Value(logger.RequestIDKey).(string)
		c.String(http.StatusOK, GetRequestID(c))
	})

	t.Run("propagates caller id", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set(HeaderRequestID, "req-123")
		r.ServeHTTP(w, req)

		if w.Header().Get(HeaderRequestID) != "req-123" || w.Body.String() != "req-123" || seenCtx != "req-123" {
			t.Fatalf("request id not propagated: header=%q body=%q ctx=%q", w.Header().Get(HeaderRequestID), w.Body.String(), seenCtx)
		}
	})

	t.Run("generates one", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
		if len(w.Header().Get(HeaderRequestID)) != 36 {
			t.Fatalf("expected a uuid, got %q", w.Header().Get(HeaderRequestID))
		}
	})
}

func TestRequestLogger(t *testing.T) {
	buf := captureLogs(t)

	r := gin.New()
	r.Use(RequestID(), RequestLogger())
	r.GET("/ok", func(c *gin.Context) { c.Status(http.StatusOK) })
	r.GET("/missing", func(c *gin.Context) { c.Status(http.StatusNotFound) })
	r.GET("/boom", func(c *gin.Context) { c.Status(http.StatusServiceUnavailable) })

	tests := []struct {
		path  string
		level string
	}{
		{"/ok", "INFO"},
		{"/missing", "WARN"},
		{"/boom", "ERROR"},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			buf.Reset()
			req := httptest.NewRequest(http.MethodGet, tt.path+"?x=1", nil)
			req.Header.Set(HeaderRequestID, "req-log")
			r.ServeHTTP(httptest.NewRecorder(), req)

			var line map[string]any
			if err := json.Unmarshal(buf.Bytes(), &line); err != nil {
				t.Fatalf("log is not json: %v (%s)", err, buf.String())
			}
			if line["level"] != tt.level || line["path"] != tt.path || line["request_id"] != "req-log" || line["query"] != "x=1" {
				t.Fatalf("unexpected log line: %v", line)
			}
		})
	}
}

func TestRecovery(t *testing.T) {
	buf := captureLogs(t)

	r := gin.New()
	r.Use(RequestID(), Recovery())
	r.GET("/panic", func(c *gin.Context) { panic("boom") })

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/panic", nil)
	req.Header.Set(HeaderRequestID, "req-panic")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", w.Code)
	}
	var body pkg.HTTPError
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("bad body: %v", err)
	}
	if body.Code != "INTERNAL_ERROR" || body.Details["request_id"] != "req-panic" {
		t.Fatalf("unexpected body: %+v", body)
	}
	if !strings.Contains(buf.String(), "panic recovered") || !strings.Contains(buf.String(), "boom") {
		t.Fatalf("panic not logged: %s", buf.String())
	}
}

func TestGenerateAndParseToken(t *testing.T) {
	now := time.Now()
	token, expiresAt, err := GenerateToken(entities.Operator{ID: "u-1", DisplayName: "Ana"}, authCfg, now)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}
	if !expiresAt.Equal(now.Add(12 * time.Hour)) {
		t.Fatalf("unexpected expiry %v", expiresAt)
	}

	op, err := ParseToken(token, authCfg)
	if err != nil {
		t.Fatalf("ParseToken: %v", err)
	}
	if op.ID != "u-1" || op.DisplayName != "Ana" {
		t.Fatalf("unexpected operator %+v", op)
	}

	if _, err := ParseToken(token, config.AuthConfig{JWTSecret: "other"}); err == nil {
		t.Fatalf("token signed with another secret must be rejected")
	}

	expired, _, _ := GenerateToken(entities.Operator{ID: "u-1"}, authCfg, now.Add(-24*time.Hour))
	if _, err := ParseToken(expired, authCfg); err == nil {
		t.Fatalf("expired token must be rejected")
	}

	anonymous, _, _ := GenerateToken(entities.Operator{}, authCfg, now)
	if _, err := ParseToken(anonymous, authCfg); err == nil {
		t.Fatalf("token without subject must be rejected")
	}

	nameless, _, _ := GenerateToken(entities.Operator{ID: "u-2"}, authCfg, now)
	if op, err := ParseToken(nameless, authCfg); err != nil || op.DisplayName != "u-2" {
		t.Fatalf("display name must fall back to the id, got %+v err=%v", op, err)
	}
}

func TestParseToken_RejectsOtherAlgorithms(t *testing.T) {
	claims := Claims{Name: "Ana", RegisteredClaims: jwt.RegisteredClaims{Subject: "u-1"}}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS512, claims).SignedString([]byte(authCfg.JWTSecret))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	if _, err := ParseToken(token, authCfg); err == nil {
		t.Fatalf("HS512 token must be rejected")
	}
}

func TestAuthMiddleware(t *testing.T) {
	token, _, err := GenerateToken(entities.Operator{ID: "u-1", DisplayName: "Ana"}, authCfg, time.Now())
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	tests := []struct {
		name           string
		authHeader     string
		expectedStatus int
	}{
		{"valid token", "Bearer " + token, http.StatusOK},
		{"missing header", "", http.StatusUnauthorized},
		{"invalid format", token, http.StatusUnauthorized},
		{"invalid token", "Bearer invalid.token.here", http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := gin.New()
			r.Use(AuthMiddleware(authCfg))
			var got entities.Operator
			var ctxOp string
			r.GET("/me", func(c *gin.Context) {
				got = GetOperator(c)
				ctxOp, _ = c.Request.Context().Value(logger.OperatorIDKey).(string)
				c.Status(http.StatusOK)
			})

			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/me", nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}
			r.ServeHTTP(w, req)

			if w.Code != tt.expectedStatus {
				t.Fatalf("expected %d, got %d", tt.expectedStatus, w.Code)
			}
			if tt.expectedStatus == http.StatusOK && (got.ID != "u-1" || ctxOp != "u-1") {
				t.Fatalf("operator not stored: %+v ctx=%q", got, ctxOp)
			}
			if tt.expectedStatus == http.StatusUnauthorized {
				var body pkg.HTTPError
				_ = json.Unmarshal(w.Body.Bytes(), &body)
				if body.Code != "UNAUTHORIZED" {
					t.Fatalf("unexpected body %s", w.Body.String())
				}
			}
		})
	}
}

func TestGetOperator_Public(t *testing.T) {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	if op := GetOperator(c); op.ID != "" {
		t.Fatalf("expected zero operator, got %+v", op)
	}
}
