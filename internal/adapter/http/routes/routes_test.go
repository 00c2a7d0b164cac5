package routes

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"assessoria_licitacoes/internal/adapter/http/handlers"
	"assessoria_licitacoes/internal/adapter/http/handlers/mocks"
	"assessoria_licitacoes/internal/adapter/http/middleware"
	"assessoria_licitacoes/internal/domain/entities"
	"assessoria_licitacoes/internal/infrastructure/config"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func testConfig() *config.Config {
	return &config.Config{Auth: config.AuthConfig{JWTSecret: "s3cret", TokenExpireHours: 1}}
}

func newTestRouter(t *testing.T) (*gin.Engine, *mocks.MockIBidUseCase) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	bids := mocks.NewMockIBidUseCase(ctrl)
	h := Handlers{
		Bid:     handlers.NewBidHandler(bids),
		Dispute: handlers.NewDisputeHandler(mocks.NewMockIDisputeUseCase(ctrl)),
		Debit:   handlers.NewDebitHandler(mocks.NewMockIDebitUseCase(ctrl)),
	}
	return NewRouter(testConfig(), h), bids
}

func TestNewRouter_Ping(t *testing.T) {
	r, _ := newTestRouter(t)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/ping", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if w.Header().Get(middleware.HeaderRequestID) == "" {
		t.Fatalf("expected request id header")
	}
}

func TestNewRouter_Protected(t *testing.T) {
	r, bids := newTestRouter(t)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/licitacoes", nil))
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without token, got %d", w.Code)
	}

	token, _, err := middleware.GenerateToken(entities.Operator{ID: "u-1", DisplayName: "Ana"}, testConfig().Auth, time.Now())
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}
	bids.EXPECT().List(gomock.Any()).Return([]entities.Bid{}, nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/licitacoes", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 with token, got %d: %s", w.Code, w.Body.String())
	}
}

func TestOpenStores_SQLite(t *testing.T) {
	stores, err := OpenStores(context.Background(), config.StoreConfig{
		Driver:     config.StoreSQLite,
		SQLitePath: filepath.Join(t.TempDir(), "licitacoes.db"),
	})
	if err != nil {
		t.Fatalf("OpenStores: %v", err)
	}
	defer stores.Close()

	ctx := context.Background()
	created, err := stores.Bids.Create(ctx, entities.Bid{ID: "bid-1", Numero: "PE 1/2025", ClienteID: "c-1", Status: entities.BidStatusEmAnalise})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	got, err := stores.Bids.Get(ctx, created.ID)
	if err != nil || got.Numero != "PE 1/2025" {
		t.Fatalf("Get: %+v, %v", got, err)
	}
}

func TestNewDocumentEmitter_Disabled(t *testing.T) {
	emitter, err := NewDocumentEmitter(context.Background(), config.MinioConfig{Disabled: true, Endpoint: "localhost:9000"})
	if err != nil || emitter != nil {
		t.Fatalf("expected no emitter, got %v, %v", emitter, err)
	}
}

func TestNewPaymentGateway(t *testing.T) {
	t.Setenv("PAYMENT_GATEWAY_MOCK", "")
	if gw := NewPaymentGateway(context.Background(), config.PaymentsConfig{}); gw != nil {
		t.Fatalf("expected no gateway without a token")
	}
	if gw := NewPaymentGateway(context.Background(), config.PaymentsConfig{Mock: true}); gw != nil {
		t.Fatalf("expected no gateway in mock mode")
	}
	if v := os.Getenv("PAYMENT_GATEWAY_MOCK"); v != "" {
		t.Fatalf("mock mode must not leak into the environment, got %q", v)
	}
}
