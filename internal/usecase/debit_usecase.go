package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"assessoria_licitacoes/internal/domain/entities"
	"assessoria_licitacoes/internal/domain/money"
	"assessoria_licitacoes/internal/usecase/interfaces"
	"assessoria_licitacoes/pkg/clock"
	"assessoria_licitacoes/pkg/logger"

	"github.com/google/uuid"
)

var (
	ErrDebitNotFound     = errors.New("debit not found")
	ErrInvalidDebitID    = errors.New("invalid debit id")
	ErrDisputeNotWon     = errors.New("dispute was not won by the client")
	ErrDebitAlreadyPaid  = errors.New("debit already paid")
	ErrDebitCancelled    = errors.New("debit cancelled")
	ErrGatewayNotWired   = errors.New("payment gateway not configured")
	ErrDebitRepoNotWired = errors.New("debit repository not configured")
)

// IDebitUseCase handles what happens after a won dispute:
//   - homologation (DISPUTA_CONCLUIDA -> HOMOLOGADA) creates the advisory-fee debit
//   - the debit is charged through Mercado Pago
//
//go:generate mockgen -source=debit_usecase.go -destination=../adapter/http/handlers/mocks/debit_usecase_mock.go -package=mocks

type IDebitUseCase interface {
	Homologate(ctx context.Context, bidID string) (Homologation, error)
	GetByID(ctx context.Context, id string) (entities.Debit, error)
	GetByBidID(ctx context.Context, bidID string) (entities.Debit, error)
	Charge(ctx context.Context, debitID string, mpPayload json.RawMessage) (entities.Debit, error)
}

// Homologation is a homologated licitação and the debit raised for it.
type Homologation struct {
	Bid   entities.Bid
	Debit entities.Debit
}

type DebitUseCase struct {
	repo        interfaces.IDebitRepository
	bids        interfaces.IBidRepository
	gateway     interfaces.IPaymentGateway
	clock       clock.Clock
	paymentMock bool
}

var _ IDebitUseCase = (*DebitUseCase)(nil)

type DebitOption func(*DebitUseCase)

// WithPaymentMock makes Charge approve debits without calling the payment gateway.
func WithPaymentMock(enabled bool) DebitOption {
	return func(u *DebitUseCase) { u.paymentMock = enabled }
}

func NewDebitUseCase(repo interfaces.IDebitRepository, bids interfaces.IBidRepository, gateway interfaces.IPaymentGateway, clk clock.Clock, opts ...DebitOption) *DebitUseCase {
	if clk == nil {
		clk = clock.NewReal()
	}
	u := &DebitUseCase{repo: repo, bids: bids, gateway: gateway, clock: clk}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

// Homologate moves a won dispute to HOMOLOGADA and raises its debit. Calling it again on a
// homologated licitação returns the existing debit; a debit is never duplicated.
func (u *DebitUseCase) Homologate(ctx context.Context, bidID string) (Homologation, error) {
	bidID = strings.TrimSpace(bidID)
	if bidID == "" {
		return Homologation{}, ErrInvalidBidID
	}
	if u.repo == nil {
		return Homologation{}, ErrDebitRepoNotWired
	}

	bid, err := u.bids.Get(ctx, bidID)
	if err != nil {
		return Homologation{}, persistence("load licitacao", err)
	}
	if bid.ID == "" {
		return Homologation{}, ErrBidNotFound
	}
	if bid.Status != entities.BidStatusDisputaConcluida && bid.Status != entities.BidStatusHomologada {
		return Homologation{}, transition("homologate", bid.Status)
	}
	if bid.DisputaLog == nil || bid.DisputaLog.ClienteVenceu == nil || !*bid.DisputaLog.ClienteVenceu {
		return Homologation{}, ErrDisputeNotWon
	}

	debit, err := u.ensureDebit(ctx, bid)
	if err != nil {
		return Homologation{}, err
	}

	if bid.Status == entities.BidStatusHomologada {
		return Homologation{Bid: bid, Debit: debit}, nil
	}

	status := entities.BidStatusHomologada
	updated, err := u.bids.Patch(ctx, bid.ID, entities.BidPatch{Status: &status})
	if err != nil {
		logger.Error(ctx, "[debit][usecase] homologation patch failed", "bid_id", bid.ID, "err", err)
		return Homologation{}, persistence("homologate", err)
	}
	if updated.ID == "" {
		return Homologation{}, ErrBidNotFound
	}
	logger.Info(ctx, "[debit][usecase] homologated", "bid_id", updated.ID, "debit_id", debit.ID, "valor", money.Format(debit.Valor))
	return Homologation{Bid: updated, Debit: debit}, nil
}

func (u *DebitUseCase) ensureDebit(ctx context.Context, bid entities.Bid) (entities.Debit, error) {
	existing, err := u.repo.GetByBidID(ctx, bid.ID)
	if err != nil {
		return entities.Debit{}, persistence("load debit", err)
	}
	if existing.ID != "" {
		return existing, nil
	}

	now := u.clock.Now()
	d := entities.Debit{
		ID:          uuid.NewString(),
		LicitacaoID: bid.ID,
		ClienteID:   bid.ClienteID,
		ClienteNome: bid.ClienteNome,
		Descricao:   fmt.Sprintf("Assessoria licitação %s", bid.Numero),
		Valor:       money.Round2(bid.ValorCobrado),
		Status:      entities.DebitStatusPendente,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	created, err := u.repo.Create(ctx, d)
	if err != nil {
		return entities.Debit{}, persistence("create debit", err)
	}
	logger.Info(ctx, "[debit][usecase] debit created", "bid_id", bid.ID, "debit_id", created.ID)
	return created, nil
}

func (u *DebitUseCase) GetByID(ctx context.Context, id string) (entities.Debit, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Debit{}, ErrInvalidDebitID
	}
	d, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Debit{}, persistence("load debit", err)
	}
	if d.ID == "" {
		return entities.Debit{}, ErrDebitNotFound
	}
	return d, nil
}

func (u *DebitUseCase) GetByBidID(ctx context.Context, bidID string) (entities.Debit, error) {
	bidID = strings.TrimSpace(bidID)
	if bidID == "" {
		return entities.Debit{}, ErrInvalidBidID
	}
	d, err := u.repo.GetByBidID(ctx, bidID)
	if err != nil {
		return entities.Debit{}, persistence("load debit", err)
	}
	if d.ID == "" {
		return entities.Debit{}, ErrDebitNotFound
	}
	return d, nil
}

// Charge pays a pending debit through the payment gateway. The amount always comes from the
// stored debit, never from the caller's payload. Mock mode comes from WithPaymentMock, with
// PAYMENT_GATEWAY_MOCK / MERCADOPAGO_MOCK still honoured as a fallback.
func (u *DebitUseCase) Charge(ctx context.Context, debitID string, mpPayload json.RawMessage) (entities.Debit, error) {
	mockMode := u.paymentMock || paymentGatewayMockEnabled()
	debitID = strings.TrimSpace(debitID)
	if debitID == "" {
		return entities.Debit{}, ErrInvalidDebitID
	}
	if len(mpPayload) == 0 || !json.Valid(mpPayload) {
		if !mockMode {
			logger.Info(ctx, "[debit][usecase] invalid payload", "debit_id", debitID, "payload_len", len(mpPayload))
			return entities.Debit{}, ErrInvalidPaymentPayload
		}
		mpPayload = json.RawMessage("{}")
	}
	if u.gateway == nil && !mockMode {
		return entities.Debit{}, ErrGatewayNotWired
	}

	d, err := u.GetByID(ctx, debitID)
	if err != nil {
		return entities.Debit{}, err
	}
	switch d.Status {
	case entities.DebitStatusPago:
		return entities.Debit{}, ErrDebitAlreadyPaid
	case entities.DebitStatusCancelado:
		return entities.Debit{}, ErrDebitCancelled
	}

	mpPayload, err = u.enrichPayload(ctx, d, mpPayload, mockMode)
	if err != nil {
		return entities.Debit{}, err
	}

	var providerID, providerStatus string
	if mockMode {
		logger.Info(ctx, "[debit][usecase] mock mode; skipping payment gateway", "debit_id", d.ID)
		providerID = strconv.FormatInt(u.clock.Now().UnixNano(), 10)
		providerStatus = "approved"
	} else {
		providerID, providerStatus, _, err = u.gateway.CreatePayment(ctx, mpPayload)
		if err != nil {
			logger.Warn(ctx, "[debit][usecase] payment gateway failed", "debit_id", d.ID, "err", err)
			return entities.Debit{}, classifyGatewayError(err)
		}
	}

	status := entities.DebitStatusPendente
	if providerStatus == "approved" {
		status = entities.DebitStatusPago
	}
	updated, err := u.repo.UpdateStatus(ctx, d.ID, status, providerID)
	if err != nil {
		logger.Error(ctx, "[debit][usecase] status update failed", "debit_id", d.ID, "provider_payment_id", providerID, "err", err)
		return entities.Debit{}, persistence("update debit", err)
	}
	if updated.ID == "" {
		return entities.Debit{}, ErrDebitNotFound
	}
	logger.Info(ctx, "[debit][usecase] charged", "debit_id", updated.ID, "provider_payment_id", providerID,
		"provider_status", providerStatus, "status", updated.Status)
	return updated, nil
}

// enrichPayload links the provider request to the debit and forces the stored amount.
// Non-object payloads are forwarded unchanged.
func (u *DebitUseCase) enrichPayload(ctx context.Context, d entities.Debit, payload json.RawMessage, mockMode bool) (json.RawMessage, error) {
	var req map[string]any
	if err := json.Unmarshal(payload, &req); err != nil {
		logger.Debug(ctx, "[debit][usecase] payload is not an object", "debit_id", d.ID, "err", err)
		return payload, nil
	}

	if !mockMode {
		if !nonEmptyString(req, "payment_method_id") {
			return nil, ErrInvalidPaymentPayload
		}
		if mapSandboxPayer(req) {
			logger.Debug(ctx, "[debit][usecase] mapped sandbox payer id to email", "debit_id", d.ID)
		}
		fillPayerDefaults(req)
		if !hasPayer(req) {
			return nil, ErrInvalidPaymentPayload
		}
	}

	if _, ok := req["external_reference"]; !ok {
		req["external_reference"] = d.ID
	}
	if _, ok := req["description"]; !ok {
		req["description"] = d.Descricao
	}
	req["transaction_amount"] = d.Valor
	req["metadata"] = map[string]any{
		"licitacao_id": d.LicitacaoID,
		"cliente_id":   d.ClienteID,
		"charged_at":   u.clock.Now().Format(time.RFC3339),
	}

	b, err := json.Marshal(req)
	if err != nil {
		return nil, err
	}
	return b, nil
}
