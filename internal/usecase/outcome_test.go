package usecase

import (
	"errors"
	"testing"

	"assessoria_licitacoes/internal/domain/entities"
)

func b(v bool) *bool { return &v }

func twoItems() []entities.ProposalItem {
	return []entities.ProposalItem{
		{ID: "it-1", Descricao: "Notebook", Unidade: "UN", Quantidade: 10},
		{ID: "it-2", Lote: "2", Descricao: "Monitor", Unidade: "UN", Quantidade: 3},
	}
}

func TestRecordOutcome_Validation(t *testing.T) {
	prices := map[string]*float64{"it-1": f(4500), "it-2": f(899.9)}

	cases := []struct {
		name  string
		in    OutcomeInput
		field string
	}{
		{name: "missing venceu", in: OutcomeInput{ItemPrices: prices}, field: "cliente_venceu"},
		{name: "lost blank position", in: OutcomeInput{ClienteVenceu: b(false), PosicaoCliente: "  ", ItemPrices: prices}, field: "posicao_cliente"},
		{name: "lost zero position", in: OutcomeInput{ClienteVenceu: b(false), PosicaoCliente: "0", ItemPrices: prices}, field: "posicao_cliente"},
		{name: "lost negative position", in: OutcomeInput{ClienteVenceu: b(false), PosicaoCliente: "-2", ItemPrices: prices}, field: "posicao_cliente"},
		{name: "lost non numeric position", in: OutcomeInput{ClienteVenceu: b(false), PosicaoCliente: "terceiro", ItemPrices: prices}, field: "posicao_cliente"},
		{name: "missing item price", in: OutcomeInput{ClienteVenceu: b(true), ItemPrices: map[string]*float64{"it-1": f(1)}}, field: "itens.it-2.valor_unitario_final_cliente"},
		{name: "nil item price", in: OutcomeInput{ClienteVenceu: b(true), ItemPrices: map[string]*float64{"it-1": f(1), "it-2": nil}}, field: "itens.it-2.valor_unitario_final_cliente"},
		{name: "negative item price", in: OutcomeInput{ClienteVenceu: b(true), ItemPrices: map[string]*float64{"it-1": f(-1), "it-2": f(1)}}, field: "itens.it-1.valor_unitario_final_cliente"},
		{name: "unknown item", in: OutcomeInput{ClienteVenceu: b(true), ItemPrices: map[string]*float64{"it-1": f(1), "it-2": f(1), "it-9": f(1)}}, field: "itens.it-9"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := RecordOutcome(twoItems(), tc.in)
			var ve *ValidationError
			if !errors.As(err, &ve) {
				t.Fatalf("expected validation error, got %v", err)
			}
			if ve.Field != tc.field {
				t.Fatalf("expected field %s, got %s", tc.field, ve.Field)
			}
		})
	}
}

func TestRecordOutcome_LostWithPosition(t *testing.T) {
	out, err := RecordOutcome(twoItems(), OutcomeInput{
		ClienteVenceu:  b(false),
		PosicaoCliente: " 3 ",
		ItemPrices:     map[string]*float64{"it-1": f(4500), "it-2": f(899.9)},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.PosicaoCliente == nil || *out.PosicaoCliente != 3 {
		t.Fatalf("expected position 3, got %v", out.PosicaoCliente)
	}
	if out.ValorFinalPropostaCliente != 47699.7 {
		t.Fatalf("expected 47699.7, got %v", out.ValorFinalPropostaCliente)
	}
	if *out.Items[1].ValorTotalFinalCliente != 2699.7 {
		t.Fatalf("unexpected item total %v", *out.Items[1].ValorTotalFinalCliente)
	}
}

func TestRecordOutcome_WonIgnoresPosition(t *testing.T) {
	out, err := RecordOutcome(twoItems(), OutcomeInput{
		ClienteVenceu:  b(true),
		PosicaoCliente: "garbage",
		ItemPrices:     map[string]*float64{"it-1": f(0), "it-2": f(0)},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.PosicaoCliente != nil {
		t.Fatalf("position must be absent when the client won")
	}
	if out.ValorFinalPropostaCliente != 0 {
		t.Fatalf("expected zero total, got %v", out.ValorFinalPropostaCliente)
	}
}

func TestRecordOutcome_GrandTotalIdempotent(t *testing.T) {
	items := []entities.ProposalItem{
		{ID: "a", Quantidade: 3},
		{ID: "b", Quantidade: 7},
		{ID: "c", Quantidade: 1},
	}
	in := OutcomeInput{ClienteVenceu: b(true), ItemPrices: map[string]*float64{"a": f(0.1), "b": f(0.2), "c": f(19.99)}}

	first, err := RecordOutcome(items, in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if first.ValorFinalPropostaCliente != 21.69 {
		t.Fatalf("expected 21.69, got %v", first.ValorFinalPropostaCliente)
	}

	var sum float64
	for _, it := range first.Items {
		sum += *it.ValorTotalFinalCliente
	}
	if diff := sum - first.ValorFinalPropostaCliente; diff > 0.001 || diff < -0.001 {
		t.Fatalf("grand total %v differs from item sum %v", first.ValorFinalPropostaCliente, sum)
	}

	for i := 0; i < 5; i++ {
		again, err := RecordOutcome(items, in)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if again.ValorFinalPropostaCliente != first.ValorFinalPropostaCliente {
			t.Fatalf("total changed between runs: %v vs %v", again.ValorFinalPropostaCliente, first.ValorFinalPropostaCliente)
		}
	}

	if items[0].ValorUnitarioFinalCliente != nil {
		t.Fatalf("RecordOutcome must not mutate the input items")
	}
}

func TestApplyOutcome(t *testing.T) {
	start := t0
	log := entities.DisputeLog{IniciadaEm: &start, Mensagens: []entities.DisputeMessage{{ID: "m1", Texto: "lance"}}}
	pos := 2
	out := applyOutcome(log, Outcome{ClienteVenceu: false, PosicaoCliente: &pos, ValorFinalPropostaCliente: 10}, entities.Operator{DisplayName: "Ana"})
	if out.PosicaoCliente == nil || *out.PosicaoCliente != 2 || *out.ClienteVenceu {
		t.Fatalf("unexpected outcome: %+v", out)
	}
	if len(out.Mensagens) != 1 || out.FinalizadoPor != "Ana" {
		t.Fatalf("messages and operator must be kept: %+v", out)
	}

	won := applyOutcome(out, Outcome{ClienteVenceu: true, ValorFinalPropostaCliente: 10}, entities.Operator{DisplayName: "Ana"})
	if won.PosicaoCliente != nil {
		t.Fatalf("position must be cleared when amended to a win")
	}
	if out.PosicaoCliente == nil {
		t.Fatalf("applyOutcome must not mutate its input")
	}
}
