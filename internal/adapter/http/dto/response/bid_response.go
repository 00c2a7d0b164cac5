package response

import (
	"time"

	"assessoria_licitacoes/internal/domain/entities"
	"assessoria_licitacoes/internal/domain/money"
)

type StatusResponse struct {
	Code  string `json:"code"`
	Label string `json:"label"`
	Color string `json:"color"`
}

type ItemResponse struct {
	ID                        string   `json:"id"`
	Lote                      string   `json:"lote,omitempty"`
	Descricao                 string   `json:"descricao"`
	Unidade                   string   `json:"unidade"`
	Quantidade                int      `json:"quantidade"`
	ValorUnitarioEstimado     *float64 `json:"valor_unitario_estimado,omitempty"`
	ValorUnitarioFinalCliente *float64 `json:"valor_unitario_final_cliente,omitempty"`
	ValorTotalFinalCliente    *float64 `json:"valor_total_final_cliente,omitempty"`
	ValorTotalFormatado       string   `json:"valor_total_formatado,omitempty"`
}

type BidResponse struct {
	ID                       string                  `json:"id"`
	Numero                   string                  `json:"numero"`
	ClienteID                string                  `json:"cliente_id"`
	ClienteNome              string                  `json:"cliente_nome"`
	Orgao                    string                  `json:"orgao,omitempty"`
	Objeto                   string                  `json:"objeto,omitempty"`
	Modalidade               string                  `json:"modalidade,omitempty"`
	Status                   StatusResponse          `json:"status"`
	ValorCobrado             float64                 `json:"valor_cobrado"`
	ValorReferenciaEdital    *float64                `json:"valor_referencia_edital,omitempty"`
	ItensProposta            []ItemResponse          `json:"itens_proposta"`
	DisputaConfig            *entities.DisputeConfig `json:"disputa_config,omitempty"`
	DisputaLog               *entities.DisputeLog    `json:"disputa_log,omitempty"`
	ObservacoesPropostaFinal string                  `json:"observacoes_proposta_final,omitempty"`
	CreatedAt                time.Time               `json:"created_at"`
	UpdatedAt                time.Time               `json:"updated_at"`
}

func FromStatus(s entities.BidStatus) StatusResponse {
	meta := entities.MetadataFor(s)
	return StatusResponse{Code: string(s), Label: meta.Label, Color: meta.Color}
}

func FromBid(b entities.Bid) BidResponse {
	items := make([]ItemResponse, 0, len(b.ItensProposta))
	for _, it := range b.ItensProposta {
		item := ItemResponse{
			ID:                        it.ID,
			Lote:                      it.Lote,
			Descricao:                 it.Descricao,
			Unidade:                   it.Unidade,
			Quantidade:                it.Quantidade,
			ValorUnitarioEstimado:     it.ValorUnitarioEstimado,
			ValorUnitarioFinalCliente: it.ValorUnitarioFinalCliente,
			ValorTotalFinalCliente:    it.ValorTotalFinalCliente,
		}
		if it.ValorTotalFinalCliente != nil {
			item.ValorTotalFormatado = money.Format(*it.ValorTotalFinalCliente)
		}
		items = append(items, item)
	}

	return BidResponse{
		ID:                       b.ID,
		Numero:                   b.Numero,
		ClienteID:                b.ClienteID,
		ClienteNome:              b.ClienteNome,
		Orgao:                    b.Orgao,
		Objeto:                   b.Objeto,
		Modalidade:               b.Modalidade,
		Status:                   FromStatus(b.Status),
		ValorCobrado:             b.ValorCobrado,
		ValorReferenciaEdital:    b.ValorReferenciaEdital,
		ItensProposta:            items,
		DisputaConfig:            b.DisputaConfig,
		DisputaLog:               b.DisputaLog,
		ObservacoesPropostaFinal: b.ObservacoesPropostaFinal,
		CreatedAt:                b.CreatedAt,
		UpdatedAt:                b.UpdatedAt,
	}
}

func FromBids(bids []entities.Bid) []BidResponse {
	out := make([]BidResponse, 0, len(bids))
	for _, b := range bids {
		out = append(out, FromBid(b))
	}
	return out
}
