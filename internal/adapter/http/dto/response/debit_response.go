package response

import (
	"time"

	"assessoria_licitacoes/internal/domain/entities"
	"assessoria_licitacoes/internal/domain/money"
	"assessoria_licitacoes/internal/usecase"
)

type DebitResponse struct {
	ID                string    `json:"id"`
	LicitacaoID       string    `json:"licitacao_id"`
	ClienteID         string    `json:"cliente_id"`
	ClienteNome       string    `json:"cliente_nome"`
	Descricao         string    `json:"descricao"`
	Valor             float64   `json:"valor"`
	ValorFormatado    string    `json:"valor_formatado"`
	Status            string    `json:"status"`
	ProviderPaymentID string    `json:"provider_payment_id,omitempty"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

func FromDebit(d entities.Debit) DebitResponse {
	return DebitResponse{
		ID:                d.ID,
		LicitacaoID:       d.LicitacaoID,
		ClienteID:         d.ClienteID,
		ClienteNome:       d.ClienteNome,
		Descricao:         d.Descricao,
		Valor:             d.Valor,
		ValorFormatado:    money.Format(d.Valor),
		Status:            string(d.Status),
		ProviderPaymentID: d.ProviderPaymentID,
		CreatedAt:         d.CreatedAt,
		UpdatedAt:         d.UpdatedAt,
	}
}

type HomologationResponse struct {
	Licitacao BidResponse   `json:"licitacao"`
	Debito    DebitResponse `json:"debito"`
}

func FromHomologation(h usecase.Homologation) HomologationResponse {
	return HomologationResponse{Licitacao: FromBid(h.Bid), Debito: FromDebit(h.Debit)}
}
