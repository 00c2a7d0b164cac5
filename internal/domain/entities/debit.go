package entities

import "time"

// DebitStatus represents the lifecycle of an advisory-fee debit (débito).

type DebitStatus string

const (
	DebitStatusPendente  DebitStatus = "pendente"
	DebitStatusPago      DebitStatus = "pago"
	DebitStatusCancelado DebitStatus = "cancelado"
)

// Debit is the fee charged to the client once a won dispute is homologated.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (licitacao_id-index): licitacao_id
//
// There is at most one debit per licitação; Valor mirrors Bid.ValorCobrado at creation time.
type Debit struct {
	ID                string      `json:"id"`
	LicitacaoID       string      `json:"licitacao_id"`
	ClienteID         string      `json:"cliente_id"`
	ClienteNome       string      `json:"cliente_nome"`
	Descricao         string      `json:"descricao"`
	Valor             float64     `json:"valor"`
	Status            DebitStatus `json:"status"`
	ProviderPaymentID string      `json:"provider_payment_id,omitempty"`
	CreatedAt         time.Time   `json:"created_at"`
	UpdatedAt         time.Time   `json:"updated_at"`
}
