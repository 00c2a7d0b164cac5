package request

import (
	"strings"

	"assessoria_licitacoes/internal/domain/entities"
	"assessoria_licitacoes/internal/usecase"
)

// DisputeConfigRequest is used by the ceiling preview, configure and start endpoints.
// limite_valor is an amount for "valor" and a percentage for "percentual".
type DisputeConfigRequest struct {
	ValorReferenciaEdital Amount `json:"valor_referencia_edital" swaggertype:"number"`
	LimiteTipo            string `json:"limite_tipo"`
	LimiteValor           Amount `json:"limite_valor" swaggertype:"number"`
}

func (r DisputeConfigRequest) ToInput() (usecase.ConfigureInput, error) {
	ref, err := r.ValorReferenciaEdital.Resolve("valor_referencia_edital")
	if err != nil {
		return usecase.ConfigureInput{}, err
	}
	limit, err := r.LimiteValor.Resolve("limite_valor")
	if err != nil {
		return usecase.ConfigureInput{}, err
	}
	return usecase.ConfigureInput{
		ValorReferenciaEdital: ref,
		LimiteTipo:            entities.LimitType(strings.ToLower(strings.TrimSpace(r.LimiteTipo))),
		LimiteValor:           limit,
	}, nil
}

type MessageRequest struct {
	Texto string `json:"texto"`
}

type FinalItemRequest struct {
	ID                        string `json:"id"`
	ValorUnitarioFinalCliente Amount `json:"valor_unitario_final_cliente" swaggertype:"number"`
}

// OutcomeRequest closes (or amends) a dispute.
type OutcomeRequest struct {
	ClienteVenceu            *bool              `json:"cliente_venceu"`
	PosicaoCliente           Position           `json:"posicao_cliente" swaggertype:"string"`
	Itens                    []FinalItemRequest `json:"itens"`
	ObservacoesPropostaFinal string             `json:"observacoes_proposta_final"`
}

func (r OutcomeRequest) ToInput() (usecase.OutcomeInput, error) {
	prices := make(map[string]*float64, len(r.Itens))
	for _, it := range r.Itens {
		id := strings.TrimSpace(it.ID)
		if id == "" {
			return usecase.OutcomeInput{}, &FieldError{Field: "itens.id", Reason: "required"}
		}
		if _, dup := prices[id]; dup {
			return usecase.OutcomeInput{}, &FieldError{Field: "itens." + id, Reason: "duplicated item"}
		}
		price, err := it.ValorUnitarioFinalCliente.Resolve("itens." + id + ".valor_unitario_final_cliente")
		if err != nil {
			return usecase.OutcomeInput{}, err
		}
		prices[id] = price
	}
	return usecase.OutcomeInput{
		ClienteVenceu:            r.ClienteVenceu,
		PosicaoCliente:           string(r.PosicaoCliente),
		ItemPrices:               prices,
		ObservacoesPropostaFinal: r.ObservacoesPropostaFinal,
	}, nil
}
