package entities

import "time"

// BidStatus represents the workflow state of a licitação.
//
// Domain notes:
//   - Only AGUARDANDO_DISPUTA, EM_DISPUTA and DISPUTA_CONCLUIDA are driven by the dispute room.
//   - Upstream (EM_ANALISE) and downstream (HOMOLOGADA, CANCELADA) states belong to the
//     surrounding bid-management workflow.

type BidStatus string

const (
	BidStatusEmAnalise         BidStatus = "EM_ANALISE"
	BidStatusAguardandoDisputa BidStatus = "AGUARDANDO_DISPUTA"
	BidStatusEmDisputa         BidStatus = "EM_DISPUTA"
	BidStatusDisputaConcluida  BidStatus = "DISPUTA_CONCLUIDA"
	BidStatusHomologada        BidStatus = "HOMOLOGADA"
	BidStatusCancelada         BidStatus = "CANCELADA"
)

var bidTransitions = map[BidStatus][]BidStatus{
	BidStatusEmAnalise:         {BidStatusAguardandoDisputa, BidStatusCancelada},
	BidStatusAguardandoDisputa: {BidStatusEmDisputa, BidStatusCancelada},
	BidStatusEmDisputa:         {BidStatusDisputaConcluida},
	BidStatusDisputaConcluida:  {BidStatusDisputaConcluida, BidStatusHomologada},
}

// Valid reports whether s belongs to the closed status set.
func (s BidStatus) Valid() bool {
	switch s {
	case BidStatusEmAnalise, BidStatusAguardandoDisputa, BidStatusEmDisputa,
		BidStatusDisputaConcluida, BidStatusHomologada, BidStatusCancelada:
		return true
	}
	return false
}

// CanTransitionTo reports whether the workflow allows moving from s to next.
func (s BidStatus) CanTransitionTo(next BidStatus) bool {
	for _, allowed := range bidTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// HasDisputeStarted reports whether s is EM_DISPUTA or a later dispute-derived state.
func (s BidStatus) HasDisputeStarted() bool {
	switch s {
	case BidStatusEmDisputa, BidStatusDisputaConcluida, BidStatusHomologada:
		return true
	}
	return false
}

// ItemsEditable reports whether proposal items may still be added, edited or removed.
func (s BidStatus) ItemsEditable() bool {
	return s == BidStatusEmAnalise || s == BidStatusAguardandoDisputa
}

// ProposalItem is one line item (lote) of the tender being priced.
//
// The final-pricing fields are populated only by the dispute finalize step.
type ProposalItem struct {
	ID                        string   `json:"id" dynamodbav:"id"`
	Lote                      string   `json:"lote,omitempty" dynamodbav:"lote,omitempty"`
	Descricao                 string   `json:"descricao" dynamodbav:"descricao"`
	Unidade                   string   `json:"unidade" dynamodbav:"unidade"`
	Quantidade                int      `json:"quantidade" dynamodbav:"quantidade"`
	ValorUnitarioEstimado     *float64 `json:"valor_unitario_estimado,omitempty" dynamodbav:"valor_unitario_estimado,omitempty"`
	ValorUnitarioFinalCliente *float64 `json:"valor_unitario_final_cliente,omitempty" dynamodbav:"valor_unitario_final_cliente,omitempty"`
	ValorTotalFinalCliente    *float64 `json:"valor_total_final_cliente,omitempty" dynamodbav:"valor_total_final_cliente,omitempty"`
}

// Bid is the licitação record managed on behalf of a client.
//
// Storage model (DynamoDB):
//   - PK: id
//
// Storage model (relational): one row per bid; items, config and log are JSON columns.
//
// Invariant: DisputaConfig and DisputaLog.IniciadaEm are set iff Status.HasDisputeStarted().
type Bid struct {
	ID          string    `json:"id"`
	Numero      string    `json:"numero"`
	ClienteID   string    `json:"cliente_id"`
	ClienteNome string    `json:"cliente_nome"`
	Orgao       string    `json:"orgao,omitempty"`
	Objeto      string    `json:"objeto,omitempty"`
	Modalidade  string    `json:"modalidade,omitempty"`
	Status      BidStatus `json:"status"`

	ValorCobrado          float64  `json:"valor_cobrado"`
	ValorReferenciaEdital *float64 `json:"valor_referencia_edital,omitempty"`

	ItensProposta            []ProposalItem `json:"itens_proposta"`
	DisputaConfig            *DisputeConfig `json:"disputa_config,omitempty"`
	DisputaLog               *DisputeLog    `json:"disputa_log,omitempty"`
	ObservacoesPropostaFinal string         `json:"observacoes_proposta_final,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// FindItem returns the index of the item with the given id, or -1.
func (b Bid) FindItem(id string) int {
	for i, it := range b.ItensProposta {
		if it.ID == id {
			return i
		}
	}
	return -1
}

// BidPatch is a partial update of a Bid. Nil fields are left untouched.
//
// Patches are applied as a single write: either every field lands or none does.
type BidPatch struct {
	Status                   *BidStatus
	ValorCobrado             *float64
	ValorReferenciaEdital    *float64
	ItensProposta            *[]ProposalItem
	DisputaConfig            *DisputeConfig
	DisputaLog               *DisputeLog
	ObservacoesPropostaFinal *string
}

// IsEmpty reports whether the patch changes nothing.
func (p BidPatch) IsEmpty() bool {
	return p.Status == nil && p.ValorCobrado == nil && p.ValorReferenciaEdital == nil &&
		p.ItensProposta == nil && p.DisputaConfig == nil && p.DisputaLog == nil &&
		p.ObservacoesPropostaFinal == nil
}

// Apply returns a copy of b with the patch fields applied and UpdatedAt set to now.
func (p BidPatch) Apply(b Bid, now time.Time) Bid {
	if p.Status != nil {
		b.Status = *p.Status
	}
	if p.ValorCobrado != nil {
		b.ValorCobrado = *p.ValorCobrado
	}
	if p.ValorReferenciaEdital != nil {
		v := *p.ValorReferenciaEdital
		b.ValorReferenciaEdital = &v
	}
	if p.ItensProposta != nil {
		b.ItensProposta = append([]ProposalItem(nil), (*p.ItensProposta)...)
	}
	if p.DisputaConfig != nil {
		cfg := *p.DisputaConfig
		b.DisputaConfig = &cfg
	}
	if p.DisputaLog != nil {
		log := p.DisputaLog.Clone()
		b.DisputaLog = &log
	}
	if p.ObservacoesPropostaFinal != nil {
		b.ObservacoesPropostaFinal = *p.ObservacoesPropostaFinal
	}
	b.UpdatedAt = now
	return b
}
