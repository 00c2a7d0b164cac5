package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"assessoria_licitacoes/internal/adapter/http/handlers/mocks"
	"assessoria_licitacoes/internal/domain/entities"
	"assessoria_licitacoes/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

type failingReadCloser struct{}

func (failingReadCloser) Read(_ []byte) (int, error) { return 0, errors.New("read error") }
func (failingReadCloser) Close() error               { return nil }

func newDebitRouter(t *testing.T) (*gin.Engine, *mocks.MockIDebitUseCase) {
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockIDebitUseCase(ctrl)
	h := NewDebitHandler(uc)

	r := gin.New()
	r.POST("/v1/licitacoes/:id/homologar", h.Homologate)
	r.GET("/v1/licitacoes/:id/debito", h.GetByBid)
	r.GET("/v1/debitos/:debit_id", h.GetDebit)
	r.POST("/v1/debitos/:debit_id/pagamento", h.Charge)
	return r, uc
}

func TestDebitHandler_Homologate(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{"homologated", nil, http.StatusOK},
		{"lost dispute", usecase.ErrDisputeNotWon, http.StatusConflict},
		{"still running", &usecase.TransitionError{Operation: "homologate", From: entities.BidStatusEmDisputa}, http.StatusConflict},
		{"no debit store", usecase.ErrDebitRepoNotWired, http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, uc := newDebitRouter(t)
			uc.EXPECT().Homologate(gomock.Any(), "bid-1").Return(usecase.Homologation{
				Bid:   entities.Bid{ID: "bid-1", Status: entities.BidStatusHomologada},
				Debit: entities.Debit{ID: "deb-1", LicitacaoID: "bid-1", Valor: 1500, Status: entities.DebitStatusPendente},
			}, tt.err)

			w := doRequest(r, http.MethodPost, "/v1/licitacoes/bid-1/homologar", "")
			if w.Code != tt.status {
				t.Fatalf("expected %d, got %d: %s", tt.status, w.Code, w.Body.String())
			}
			if tt.err == nil {
				debito, _ := decodeBody(t, w)["debito"].(map[string]any)
				if debito["valor_formatado"] != "R$ 1.500,00" {
					t.Fatalf("unexpected body %s", w.Body.String())
				}
			}
		})
	}
}

func TestDebitHandler_Get(t *testing.T) {
	t.Run("by licitação", func(t *testing.T) {
		r, uc := newDebitRouter(t)
		uc.EXPECT().GetByBidID(gomock.Any(), "bid-1").Return(entities.Debit{}, usecase.ErrDebitNotFound)

		w := doRequest(r, http.MethodGet, "/v1/licitacoes/bid-1/debito", "")
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("by id", func(t *testing.T) {
		r, uc := newDebitRouter(t)
		uc.EXPECT().GetByID(gomock.Any(), "deb-1").Return(entities.Debit{ID: "deb-1", Status: entities.DebitStatusPago}, nil)

		w := doRequest(r, http.MethodGet, "/v1/debitos/deb-1", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if decodeBody(t, w)["status"] != "pago" {
			t.Fatalf("unexpected body %s", w.Body.String())
		}
	})
}

func TestDebitHandler_Charge(t *testing.T) {
	t.Run("wrapped payload is unwrapped", func(t *testing.T) {
		r, uc := newDebitRouter(t)
		uc.EXPECT().Charge(gomock.Any(), "deb-1", gomock.Any()).DoAndReturn(
			func(_ context.Context, _ string, payload json.RawMessage) (entities.Debit, error) {
				if string(payload) != `{"payment_method_id":"pix","payer":{"email":"x@test.com"}}` {
					return entities.Debit{}, errors.New("unexpected payload " + string(payload))
				}
				return entities.Debit{ID: "deb-1", Status: entities.DebitStatusPago, ProviderPaymentID: "123", UpdatedAt: time.Now()}, nil
			})

		w := doRequest(r, http.MethodPost, "/v1/debitos/deb-1/pagamento",
			`{"mp_payload":{"payment_method_id":"pix","payer":{"email":"x@test.com"}}}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
		if decodeBody(t, w)["provider_payment_id"] != "123" {
			t.Fatalf("unexpected body %s", w.Body.String())
		}
	})

	t.Run("unreadable body is left to the use case", func(t *testing.T) {
		r, uc := newDebitRouter(t)
		uc.EXPECT().Charge(gomock.Any(), "deb-1", json.RawMessage(nil)).Return(entities.Debit{}, usecase.ErrInvalidPaymentPayload)

		req := httptest.NewRequest(http.MethodPost, "/v1/debitos/deb-1/pagamento", nil)
		req.Body = failingReadCloser{}
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("provider errors", func(t *testing.T) {
		tests := []struct {
			err    error
			status int
			code   string
		}{
			{usecase.ErrPaymentGatewayCustomerNotFound, http.StatusBadRequest, "PAYMENT_PROVIDER_CUSTOMER_NOT_FOUND"},
			{usecase.ErrPaymentGatewayUnauthorized, http.StatusBadGateway, "PAYMENT_PROVIDER_UNAUTHORIZED"},
			{usecase.ErrDebitAlreadyPaid, http.StatusConflict, "DEBIT_ALREADY_PAID"},
			{usecase.ErrGatewayNotWired, http.StatusServiceUnavailable, "SERVICE_UNAVAILABLE"},
		}
		for _, tt := range tests {
			r, uc := newDebitRouter(t)
			uc.EXPECT().Charge(gomock.Any(), "deb-1", gomock.Any()).Return(entities.Debit{}, tt.err)

			w := doRequest(r, http.MethodPost, "/v1/debitos/deb-1/pagamento", `{"payment_method_id":"pix"}`)
			code, _ := errorDetails(t, w)
			if w.Code != tt.status || code != tt.code {
				t.Errorf("%v: expected %d %s, got %d %s", tt.err, tt.status, tt.code, w.Code, code)
			}
		}
	})
}
