package entities

import "time"

// LimitType selects how DisputeConfig.LimiteValor is interpreted.
type LimitType string

const (
	LimitTypeValor      LimitType = "valor"
	LimitTypePercentual LimitType = "percentual"
)

// Valid reports whether t is one of the supported limit types.
func (t LimitType) Valid() bool {
	return t == LimitTypeValor || t == LimitTypePercentual
}

// DisputeConfig holds the negotiation limit fixed when the dispute starts.
//
// ValorCalculadoAteOndePodeChegar is the derived floor price, stored for audit/display.
type DisputeConfig struct {
	LimiteTipo                      LimitType `json:"limite_tipo" dynamodbav:"limite_tipo"`
	LimiteValor                     float64   `json:"limite_valor" dynamodbav:"limite_valor"`
	ValorCalculadoAteOndePodeChegar float64   `json:"valor_calculado_ate_onde_pode_chegar" dynamodbav:"valor_calculado_ate_onde_pode_chegar"`
}

// DisputeMessage is one entry of the session journal. Messages are never edited or removed.
type DisputeMessage struct {
	ID        string    `json:"id" dynamodbav:"id"`
	Timestamp time.Time `json:"timestamp" dynamodbav:"timestamp"`
	Texto     string    `json:"texto" dynamodbav:"texto"`
	Autor     string    `json:"autor" dynamodbav:"autor"`
	AutorID   string    `json:"autor_id,omitempty" dynamodbav:"autor_id,omitempty"`
}

// DisputeLog is the session record of a dispute.
//
// IniciadaEm is the durable source of truth for elapsed time; everything shown by a live
// timer is derived from it.
type DisputeLog struct {
	IniciadaEm   *time.Time       `json:"iniciada_em,omitempty" dynamodbav:"iniciada_em,omitempty"`
	FinalizadaEm *time.Time       `json:"finalizada_em,omitempty" dynamodbav:"finalizada_em,omitempty"`
	Duracao      string           `json:"duracao,omitempty" dynamodbav:"duracao,omitempty"`
	Mensagens    []DisputeMessage `json:"mensagens" dynamodbav:"mensagens"`

	ClienteVenceu             *bool          `json:"cliente_venceu,omitempty" dynamodbav:"cliente_venceu,omitempty"`
	PosicaoCliente            *int           `json:"posicao_cliente,omitempty" dynamodbav:"posicao_cliente,omitempty"`
	ItensPropostaFinalCliente []ProposalItem `json:"itens_proposta_final_cliente,omitempty" dynamodbav:"itens_proposta_final_cliente,omitempty"`
	ValorFinalPropostaCliente *float64       `json:"valor_final_proposta_cliente,omitempty" dynamodbav:"valor_final_proposta_cliente,omitempty"`

	FinalizadoPor string   `json:"finalizado_por,omitempty" dynamodbav:"finalizado_por,omitempty"`
	Documentos    []string `json:"documentos,omitempty" dynamodbav:"documentos,omitempty"`
}

// Clone returns a deep copy of the log so patches never alias stored slices.
func (l DisputeLog) Clone() DisputeLog {
	out := l
	if l.IniciadaEm != nil {
		t := *l.IniciadaEm
		out.IniciadaEm = &t
	}
	if l.FinalizadaEm != nil {
		t := *l.FinalizadaEm
		out.FinalizadaEm = &t
	}
	if l.ClienteVenceu != nil {
		v := *l.ClienteVenceu
		out.ClienteVenceu = &v
	}
	if l.PosicaoCliente != nil {
		v := *l.PosicaoCliente
		out.PosicaoCliente = &v
	}
	if l.ValorFinalPropostaCliente != nil {
		v := *l.ValorFinalPropostaCliente
		out.ValorFinalPropostaCliente = &v
	}
	out.Mensagens = append([]DisputeMessage{}, l.Mensagens...)
	if l.ItensPropostaFinalCliente != nil {
		out.ItensPropostaFinalCliente = append([]ProposalItem(nil), l.ItensPropostaFinalCliente...)
	}
	if l.Documentos != nil {
		out.Documentos = append([]string(nil), l.Documentos...)
	}
	return out
}

// Operator identifies the person operating the dispute room.
type Operator struct {
	ID          string `json:"id"`
	DisplayName string `json:"display_name"`
}

// CompanyConfig carries the advisory firm's identification printed on emitted documents.
type CompanyConfig struct {
	RazaoSocial string `json:"razao_social"`
	CNPJ        string `json:"cnpj"`
	Endereco    string `json:"endereco"`
	Cidade      string `json:"cidade"`
}
