package usecase

import (
	"strconv"
	"strings"

	"assessoria_licitacoes/internal/domain/entities"
	"assessoria_licitacoes/internal/domain/money"
)

// OutcomeInput is what the operator submits when closing (or amending) a dispute.
//
// PosicaoCliente is kept as raw text because the operator types it; it is only parsed
// when the client lost. ItemPrices maps proposal item id -> final unit price.
type OutcomeInput struct {
	ClienteVenceu            *bool
	PosicaoCliente           string
	ItemPrices               map[string]*float64
	ObservacoesPropostaFinal string
}

// Outcome is a validated OutcomeInput with every derived value computed.
type Outcome struct {
	ClienteVenceu             bool
	PosicaoCliente            *int
	Items                     []entities.ProposalItem
	ValorFinalPropostaCliente float64
	ObservacoesPropostaFinal  string
}

// RecordOutcome validates the outcome against the bid items and prices them.
//
// Item order follows the bid. Totals are unit × quantity rounded to cents, and the grand total
// is their exact sum, so the same input always yields the same Outcome.
func RecordOutcome(items []entities.ProposalItem, in OutcomeInput) (Outcome, error) {
	if in.ClienteVenceu == nil {
		return Outcome{}, invalid("cliente_venceu", "required")
	}
	if len(items) == 0 {
		return Outcome{}, invalid("itens_proposta", "at least one proposal item is required")
	}

	out := Outcome{
		ClienteVenceu:            *in.ClienteVenceu,
		ObservacoesPropostaFinal: strings.TrimSpace(in.ObservacoesPropostaFinal),
	}

	if !out.ClienteVenceu {
		pos, err := parsePosition(in.PosicaoCliente)
		if err != nil {
			return Outcome{}, err
		}
		out.PosicaoCliente = &pos
	}

	known := make(map[string]struct{}, len(items))
	totals := make([]float64, 0, len(items))
	out.Items = make([]entities.ProposalItem, 0, len(items))
	for _, it := range items {
		known[it.ID] = struct{}{}
		price, ok := in.ItemPrices[it.ID]
		if !ok || price == nil || !finite(*price) {
			return Outcome{}, invalid("itens."+it.ID+".valor_unitario_final_cliente", "required")
		}
		if *price < 0 {
			return Outcome{}, invalid("itens."+it.ID+".valor_unitario_final_cliente", "must be >= 0")
		}
		unit := money.Round2(*price)
		total := money.Mul(unit, it.Quantidade)
		it.ValorUnitarioFinalCliente = &unit
		it.ValorTotalFinalCliente = &total
		out.Items = append(out.Items, it)
		totals = append(totals, total)
	}
	for id := range in.ItemPrices {
		if _, ok := known[id]; !ok {
			return Outcome{}, invalid("itens."+id, "unknown proposal item")
		}
	}

	out.ValorFinalPropostaCliente = money.Sum(totals...)
	return out, nil
}

func parsePosition(raw string) (int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, invalid("posicao_cliente", "required when the client did not win")
	}
	pos, err := strconv.Atoi(raw)
	if err != nil {
		return 0, invalid("posicao_cliente", "must be an integer")
	}
	if pos < 1 {
		return 0, invalid("posicao_cliente", "must be >= 1")
	}
	return pos, nil
}

// applyOutcome writes a validated outcome onto a copy of the dispute log.
func applyOutcome(log entities.DisputeLog, o Outcome, op entities.Operator) entities.DisputeLog {
	out := log.Clone()
	won := o.ClienteVenceu
	total := o.ValorFinalPropostaCliente
	out.ClienteVenceu = &won
	out.PosicaoCliente = nil
	if !won && o.PosicaoCliente != nil {
		pos := *o.PosicaoCliente
		out.PosicaoCliente = &pos
	}
	out.ItensPropostaFinalCliente = append([]entities.ProposalItem(nil), o.Items...)
	out.ValorFinalPropostaCliente = &total
	out.FinalizadoPor = op.DisplayName
	return out
}
