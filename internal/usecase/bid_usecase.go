package usecase

import (
	"context"
	"strings"

	"assessoria_licitacoes/internal/domain/entities"
	"assessoria_licitacoes/internal/usecase/interfaces"
	"assessoria_licitacoes/pkg/clock"
	"assessoria_licitacoes/pkg/logger"

	"github.com/google/uuid"
)

// IBidUseCase exposes the licitação operations that surround the dispute room:
//   - registering a licitação for a client
//   - editing proposal items while the dispute has not started
//   - moving EM_ANALISE -> AGUARDANDO_DISPUTA
//
//go:generate mockgen -source=bid_usecase.go -destination=../adapter/http/handlers/mocks/bid_usecase_mock.go -package=mocks

type IBidUseCase interface {
	Create(ctx context.Context, in CreateBidInput) (entities.Bid, error)
	GetByID(ctx context.Context, id string) (entities.Bid, error)
	List(ctx context.Context) ([]entities.Bid, error)
	MarkAwaitingDispute(ctx context.Context, id string) (entities.Bid, error)
	AddItem(ctx context.Context, bidID string, in ItemInput) (entities.Bid, error)
	UpdateItem(ctx context.Context, bidID, itemID string, in ItemInput) (entities.Bid, error)
	RemoveItem(ctx context.Context, bidID, itemID string) (entities.Bid, error)
}

type CreateBidInput struct {
	Numero                string
	ClienteID             string
	ClienteNome           string
	Orgao                 string
	Objeto                string
	Modalidade            string
	ValorCobrado          float64
	ValorReferenciaEdital *float64
	AguardandoDisputa     bool
	Itens                 []ItemInput
}

type ItemInput struct {
	Lote                  string
	Descricao             string
	Unidade               string
	Quantidade            int
	ValorUnitarioEstimado *float64
}

type BidUseCase struct {
	repo  interfaces.IBidRepository
	clock clock.Clock
}

var _ IBidUseCase = (*BidUseCase)(nil)

func NewBidUseCase(repo interfaces.IBidRepository, clk clock.Clock) *BidUseCase {
	if clk == nil {
		clk = clock.NewReal()
	}
	return &BidUseCase{repo: repo, clock: clk}
}

func (u *BidUseCase) Create(ctx context.Context, in CreateBidInput) (entities.Bid, error) {
	numero := strings.TrimSpace(in.Numero)
	if numero == "" {
		return entities.Bid{}, invalid("numero", "required")
	}
	clienteID := strings.TrimSpace(in.ClienteID)
	if clienteID == "" {
		return entities.Bid{}, invalid("cliente_id", "required")
	}
	if in.ValorCobrado < 0 || !finite(in.ValorCobrado) {
		return entities.Bid{}, invalid("valor_cobrado", "must be >= 0")
	}
	if in.ValorReferenciaEdital != nil && (*in.ValorReferenciaEdital < 0 || !finite(*in.ValorReferenciaEdital)) {
		return entities.Bid{}, invalid("valor_referencia_edital", "must be >= 0")
	}

	items := make([]entities.ProposalItem, 0, len(in.Itens))
	for _, it := range in.Itens {
		item, err := newItem(it)
		if err != nil {
			return entities.Bid{}, err
		}
		items = append(items, item)
	}

	status := entities.BidStatusEmAnalise
	if in.AguardandoDisputa {
		status = entities.BidStatusAguardandoDisputa
	}

	now := u.clock.Now()
	bid := entities.Bid{
		ID:                    uuid.NewString(),
		Numero:                numero,
		ClienteID:             clienteID,
		ClienteNome:           strings.TrimSpace(in.ClienteNome),
		Orgao:                 strings.TrimSpace(in.Orgao),
		Objeto:                strings.TrimSpace(in.Objeto),
		Modalidade:            strings.TrimSpace(in.Modalidade),
		Status:                status,
		ValorCobrado:          in.ValorCobrado,
		ValorReferenciaEdital: in.ValorReferenciaEdital,
		ItensProposta:         items,
		CreatedAt:             now,
		UpdatedAt:             now,
	}

	created, err := u.repo.Create(ctx, bid)
	if err != nil {
		return entities.Bid{}, persistence("create licitacao", err)
	}
	logger.Info(ctx, "[bid][usecase] created", "bid_id", created.ID, "numero", created.Numero, "status", created.Status)
	return created, nil
}

func (u *BidUseCase) GetByID(ctx context.Context, id string) (entities.Bid, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Bid{}, ErrInvalidBidID
	}

	b, err := u.repo.Get(ctx, id)
	if err != nil {
		return entities.Bid{}, persistence("load licitacao", err)
	}
	if b.ID == "" {
		return entities.Bid{}, ErrBidNotFound
	}
	return b, nil
}

func (u *BidUseCase) List(ctx context.Context) ([]entities.Bid, error) {
	bids, err := u.repo.List(ctx)
	if err != nil {
		return nil, persistence("list licitacoes", err)
	}
	return bids, nil
}

func (u *BidUseCase) MarkAwaitingDispute(ctx context.Context, id string) (entities.Bid, error) {
	b, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Bid{}, err
	}
	if b.Status == entities.BidStatusAguardandoDisputa {
		return b, nil
	}
	if !b.Status.CanTransitionTo(entities.BidStatusAguardandoDisputa) {
		return entities.Bid{}, transition("await dispute", b.Status)
	}

	status := entities.BidStatusAguardandoDisputa
	return u.patch(ctx, b.ID, entities.BidPatch{Status: &status}, "await dispute")
}

func (u *BidUseCase) AddItem(ctx context.Context, bidID string, in ItemInput) (entities.Bid, error) {
	b, err := u.editable(ctx, bidID, "add proposal item")
	if err != nil {
		return entities.Bid{}, err
	}
	item, err := newItem(in)
	if err != nil {
		return entities.Bid{}, err
	}

	items := append(append([]entities.ProposalItem(nil), b.ItensProposta...), item)
	return u.patch(ctx, b.ID, entities.BidPatch{ItensProposta: &items}, "add proposal item")
}

func (u *BidUseCase) UpdateItem(ctx context.Context, bidID, itemID string, in ItemInput) (entities.Bid, error) {
	b, err := u.editable(ctx, bidID, "update proposal item")
	if err != nil {
		return entities.Bid{}, err
	}
	idx := b.FindItem(strings.TrimSpace(itemID))
	if idx < 0 {
		return entities.Bid{}, ErrItemNotFound
	}
	item, err := newItem(in)
	if err != nil {
		return entities.Bid{}, err
	}
	item.ID = b.ItensProposta[idx].ID

	items := append([]entities.ProposalItem(nil), b.ItensProposta...)
	items[idx] = item
	return u.patch(ctx, b.ID, entities.BidPatch{ItensProposta: &items}, "update proposal item")
}

func (u *BidUseCase) RemoveItem(ctx context.Context, bidID, itemID string) (entities.Bid, error) {
	b, err := u.editable(ctx, bidID, "remove proposal item")
	if err != nil {
		return entities.Bid{}, err
	}
	idx := b.FindItem(strings.TrimSpace(itemID))
	if idx < 0 {
		return entities.Bid{}, ErrItemNotFound
	}

	items := make([]entities.ProposalItem, 0, len(b.ItensProposta)-1)
	items = append(items, b.ItensProposta[:idx]...)
	items = append(items, b.ItensProposta[idx+1:]...)
	return u.patch(ctx, b.ID, entities.BidPatch{ItensProposta: &items}, "remove proposal item")
}

func (u *BidUseCase) editable(ctx context.Context, bidID, op string) (entities.Bid, error) {
	b, err := u.GetByID(ctx, bidID)
	if err != nil {
		return entities.Bid{}, err
	}
	if !b.Status.ItemsEditable() {
		return entities.Bid{}, transition(op, b.Status)
	}
	return b, nil
}

func (u *BidUseCase) patch(ctx context.Context, id string, p entities.BidPatch, op string) (entities.Bid, error) {
	updated, err := u.repo.Patch(ctx, id, p)
	if err != nil {
		return entities.Bid{}, persistence(op, err)
	}
	if updated.ID == "" {
		return entities.Bid{}, ErrBidNotFound
	}
	logger.Info(ctx, "[bid][usecase] updated", "bid_id", id, "op", op)
	return updated, nil
}

func newItem(in ItemInput) (entities.ProposalItem, error) {
	descricao := strings.TrimSpace(in.Descricao)
	if descricao == "" {
		return entities.ProposalItem{}, invalid("descricao", "required")
	}
	unidade := strings.TrimSpace(in.Unidade)
	if unidade == "" {
		return entities.ProposalItem{}, invalid("unidade", "required")
	}
	if in.Quantidade <= 0 {
		return entities.ProposalItem{}, invalid("quantidade", "must be > 0")
	}
	if in.ValorUnitarioEstimado != nil && (*in.ValorUnitarioEstimado < 0 || !finite(*in.ValorUnitarioEstimado)) {
		return entities.ProposalItem{}, invalid("valor_unitario_estimado", "must be >= 0")
	}
	return entities.ProposalItem{
		ID:                    uuid.NewString(),
		Lote:                  strings.TrimSpace(in.Lote),
		Descricao:             descricao,
		Unidade:               unidade,
		Quantidade:            in.Quantidade,
		ValorUnitarioEstimado: in.ValorUnitarioEstimado,
	}, nil
}
