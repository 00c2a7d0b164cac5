package request

import (
	"strings"

	"assessoria_licitacoes/internal/usecase"
)

type ItemRequest struct {
	Lote                  string `json:"lote"`
	Descricao             string `json:"descricao"`
	Unidade               string `json:"unidade"`
	Quantidade            int    `json:"quantidade"`
	ValorUnitarioEstimado Amount `json:"valor_unitario_estimado" swaggertype:"number"`
}

func (r ItemRequest) ToInput() (usecase.ItemInput, error) {
	estimated, err := r.ValorUnitarioEstimado.Resolve("valor_unitario_estimado")
	if err != nil {
		return usecase.ItemInput{}, err
	}
	return usecase.ItemInput{
		Lote:                  strings.TrimSpace(r.Lote),
		Descricao:             r.Descricao,
		Unidade:               r.Unidade,
		Quantidade:            r.Quantidade,
		ValorUnitarioEstimado: estimated,
	}, nil
}

// CreateBidRequest registers a licitação handled for a client.
type CreateBidRequest struct {
	Numero                string        `json:"numero" binding:"required"`
	ClienteID             string        `json:"cliente_id" binding:"required"`
	ClienteNome           string        `json:"cliente_nome"`
	Orgao                 string        `json:"orgao"`
	Objeto                string        `json:"objeto"`
	Modalidade            string        `json:"modalidade"`
	ValorCobrado          Amount        `json:"valor_cobrado" swaggertype:"number"`
	ValorReferenciaEdital Amount        `json:"valor_referencia_edital" swaggertype:"number"`
	AguardandoDisputa     bool          `json:"aguardando_disputa"`
	Itens                 []ItemRequest `json:"itens"`
}

func (r CreateBidRequest) ToInput() (usecase.CreateBidInput, error) {
	cobrado, err := r.ValorCobrado.Resolve("valor_cobrado")
	if err != nil {
		return usecase.CreateBidInput{}, err
	}
	if cobrado == nil {
		return usecase.CreateBidInput{}, &FieldError{Field: "valor_cobrado", Reason: "required"}
	}
	ref, err := r.ValorReferenciaEdital.Resolve("valor_referencia_edital")
	if err != nil {
		return usecase.CreateBidInput{}, err
	}

	items := make([]usecase.ItemInput, 0, len(r.Itens))
	for _, it := range r.Itens {
		in, err := it.ToInput()
		if err != nil {
			return usecase.CreateBidInput{}, err
		}
		items = append(items, in)
	}

	return usecase.CreateBidInput{
		Numero:                strings.TrimSpace(r.Numero),
		ClienteID:             strings.TrimSpace(r.ClienteID),
		ClienteNome:           strings.TrimSpace(r.ClienteNome),
		Orgao:                 strings.TrimSpace(r.Orgao),
		Objeto:                strings.TrimSpace(r.Objeto),
		Modalidade:            strings.TrimSpace(r.Modalidade),
		ValorCobrado:          *cobrado,
		ValorReferenciaEdital: ref,
		AguardandoDisputa:     r.AguardandoDisputa,
		Itens:                 items,
	}, nil
}
