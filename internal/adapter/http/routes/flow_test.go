package routes

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"assessoria_licitacoes/internal/adapter/http/handlers"
	"assessoria_licitacoes/internal/adapter/http/middleware"
	"assessoria_licitacoes/internal/domain/entities"
	"assessoria_licitacoes/internal/infrastructure/config"
	"assessoria_licitacoes/internal/usecase"
	"assessoria_licitacoes/pkg/clock"

	"github.com/gin-gonic/gin"
)

type flowClient struct {
	t      *testing.T
	router *gin.Engine
	token  string
}

func (f flowClient) do(method, path string, body any) (int, map[string]any) {
	f.t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			f.t.Fatalf("encode: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+f.token)
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)

	out := map[string]any{}
	_ = json.Unmarshal(w.Body.Bytes(), &out)
	return w.Code, out
}

// The full dispute flow over SQLite: create, start, journal, reload, finalize, homologate.
func TestDisputeFlow_SQLite(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctx := context.Background()
	cfg := testConfig()

	stores, err := OpenStores(ctx, config.StoreConfig{Driver: config.StoreSQLite, SQLitePath: filepath.Join(t.TempDir(), "flow.db")})
	if err != nil {
		t.Fatalf("OpenStores: %v", err)
	}
	defer stores.Close()

	clk := clock.NewManual(time.Date(2025, 3, 10, 14, 0, 0, 0, time.UTC))
	disputes := usecase.NewDisputeUseCase(stores.Bids, nil, entities.CompanyConfig{}, clk)
	router := NewRouter(cfg, Handlers{
		Bid:     handlers.NewBidHandler(usecase.NewBidUseCase(stores.Bids, clk)),
		Dispute: handlers.NewDisputeHandler(disputes),
		Debit:   handlers.NewDebitHandler(usecase.NewDebitUseCase(stores.Debits, stores.Bids, nil, clk)),
	})

	token, _, err := middleware.GenerateToken(entities.Operator{ID: "u-1", DisplayName: "Ana"}, cfg.Auth, time.Now())
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}
	c := flowClient{t: t, router: router, token: token}

	status, bid := c.do(http.MethodPost, "/v1/licitacoes", map[string]any{
		"numero":                  "PE 12/2025",
		"cliente_id":              "c-1",
		"cliente_nome":            "ACME Comércio",
		"valor_cobrado":           "R$ 1.500,00",
		"valor_referencia_edital": 50000,
		"aguardando_disputa":      true,
		"itens": []map[string]any{
			{"descricao": "Notebook i5", "unidade": "UN", "quantidade": 10},
		},
	})
	if status != http.StatusCreated {
		t.Fatalf("create: %d %v", status, bid)
	}
	id := bid["id"].(string)
	itemID := bid["itens_proposta"].([]any)[0].(map[string]any)["id"].(string)
	base := "/v1/licitacoes/" + id + "/disputa"

	if status, body := c.do(http.MethodPost, base+"/iniciar", map[string]any{"limite_tipo": "valor", "limite_valor": 45000}); status != http.StatusOK {
		t.Fatalf("start: %d %v", status, body)
	}
	for _, msg := range []string{"Lance de R$ 46.000,00", "Lance de R$ 45.000,00"} {
		clk.Advance(30 * time.Second)
		if status, body := c.do(http.MethodPost, base+"/mensagens", map[string]any{"texto": msg}); status != http.StatusCreated {
			t.Fatalf("message: %d %v", status, body)
		}
	}

	// a fresh process only knows iniciadaEm
	disputes.Leave(id)
	clk.Set(time.Date(2025, 3, 10, 14, 2, 5, 0, time.UTC))
	status, session := c.do(http.MethodGet, base, nil)
	if status != http.StatusOK {
		t.Fatalf("session: %d %v", status, session)
	}
	if got := session["tempo"].(map[string]any)["formatado"]; got != "00:02:05" {
		t.Fatalf("expected 00:02:05 after reload, got %v", got)
	}

	status, result := c.do(http.MethodPost, base+"/finalizar", map[string]any{
		"cliente_venceu": true,
		"itens":          []map[string]any{{"id": itemID, "valor_unitario_final_cliente": 4500}},
	})
	if status != http.StatusOK {
		t.Fatalf("finalize: %d %v", status, result)
	}
	concluded := result["licitacao"].(map[string]any)
	if concluded["status"].(map[string]any)["code"] != string(entities.BidStatusDisputaConcluida) {
		t.Fatalf("unexpected status %v", concluded["status"])
	}
	item := concluded["itens_proposta"].([]any)[0].(map[string]any)
	if item["valor_total_final_cliente"] != 45000.0 {
		t.Fatalf("expected item total 45000, got %v", item["valor_total_final_cliente"])
	}
	log := concluded["disputa_log"].(map[string]any)
	if log["valor_final_proposta_cliente"] != 45000.0 || result["valor_final_formatado"] != "R$ 45.000,00" {
		t.Fatalf("unexpected grand total %v", result)
	}
	if _, ok := log["posicao_cliente"]; ok {
		t.Fatalf("a won dispute has no position: %v", log["posicao_cliente"])
	}

	status, hom := c.do(http.MethodPost, "/v1/licitacoes/"+id+"/homologar", nil)
	if status != http.StatusOK {
		t.Fatalf("homologate: %d %v", status, hom)
	}
	debit := hom["debito"].(map[string]any)
	if debit["valor"] != 1500.0 || debit["status"] != string(entities.DebitStatusPendente) {
		t.Fatalf("unexpected debit %v", debit)
	}

	// homologating again returns the same debit
	_, again := c.do(http.MethodPost, "/v1/licitacoes/"+id+"/homologar", nil)
	if again["debito"].(map[string]any)["id"] != debit["id"] {
		t.Fatalf("debit duplicated: %v vs %v", again["debito"], debit)
	}
}
