package response

import (
	"errors"
	"testing"
	"time"

	"assessoria_licitacoes/internal/domain/entities"
	"assessoria_licitacoes/internal/usecase"
)

func concluded() entities.Bid {
	unit, total, grand := 4500.0, 45000.0, 45000.0
	won := true
	return entities.Bid{
		ID:     "bid-1",
		Numero: "PE 12/2025",
		Status: entities.BidStatusDisputaConcluida,
		ItensProposta: []entities.ProposalItem{
			{ID: "it-1", Descricao: "Notebook", Unidade: "UN", Quantidade: 10, ValorUnitarioFinalCliente: &unit, ValorTotalFinalCliente: &total},
		},
		DisputaConfig: &entities.DisputeConfig{LimiteTipo: entities.LimitTypeValor, LimiteValor: 45000, ValorCalculadoAteOndePodeChegar: 45000},
		DisputaLog:    &entities.DisputeLog{ClienteVenceu: &won, ValorFinalPropostaCliente: &grand},
	}
}

func TestFromBid(t *testing.T) {
	res := FromBid(concluded())
	if res.Status.Code != "DISPUTA_CONCLUIDA" || res.Status.Label != "Disputa concluída" {
		t.Fatalf("unexpected status %+v", res.Status)
	}
	if len(res.ItensProposta) != 1 || res.ItensProposta[0].ValorTotalFormatado != "R$ 45.000,00" {
		t.Fatalf("unexpected items %+v", res.ItensProposta)
	}

	empty := FromBid(entities.Bid{ID: "b"})
	if empty.ItensProposta == nil {
		t.Fatalf("items must serialize as an empty list")
	}
	if len(FromBids([]entities.Bid{concluded(), {ID: "b"}})) != 2 {
		t.Fatalf("FromBids must keep every bid")
	}
}

func TestFromSession(t *testing.T) {
	res := FromSession(usecase.Session{Bid: concluded(), Elapsed: 125*time.Second + 700*time.Millisecond})
	if res.Tempo.Formatado != "00:02:05" || res.Tempo.Segundos != 125 || res.Tempo.Rodando {
		t.Fatalf("unexpected elapsed %+v", res.Tempo)
	}
	if res.Limite == nil || res.Limite.Formatado != "R$ 45.000,00" {
		t.Fatalf("unexpected ceiling %+v", res.Limite)
	}

	waiting := FromSession(usecase.Session{Bid: entities.Bid{ID: "b", Status: entities.BidStatusAguardandoDisputa}})
	if waiting.Limite != nil || waiting.Tempo.Formatado != "00:00:00" {
		t.Fatalf("unexpected waiting session %+v", waiting)
	}
}

func TestFromFinalize(t *testing.T) {
	res := FromFinalize(usecase.FinalizeResult{Bid: concluded(), DocumentsErr: errors.New("minio offline")})
	if res.ValorFinalFormatado != "R$ 45.000,00" || res.DocumentosErro != "minio offline" || res.Documentos != nil {
		t.Fatalf("unexpected finalize response %+v", res)
	}
}

func TestFromSetupAndCeiling(t *testing.T) {
	res := FromSetup(usecase.DisputeSetup{Bid: entities.Bid{ID: "b"}, Ceiling: 8500})
	if res.Limite.ValorCalculadoAteOndePodeChegar != 8500 || res.Limite.Formatado != "R$ 8.500,00" {
		t.Fatalf("unexpected ceiling %+v", res.Limite)
	}
}

func TestFromHomologation(t *testing.T) {
	now := time.Date(2025, 3, 10, 14, 0, 0, 0, time.UTC)
	d := entities.Debit{ID: "deb-1", LicitacaoID: "bid-1", Valor: 1500, Status: entities.DebitStatusPendente, CreatedAt: now, UpdatedAt: now}
	res := FromHomologation(usecase.Homologation{Bid: concluded(), Debit: d})
	if res.Debito.ValorFormatado != "R$ 1.500,00" || res.Debito.Status != "pendente" || res.Licitacao.ID != "bid-1" {
		t.Fatalf("unexpected homologation %+v", res)
	}
	if !res.Debito.CreatedAt.Equal(now) {
		t.Fatalf("unexpected dates %+v", res.Debito)
	}
}
