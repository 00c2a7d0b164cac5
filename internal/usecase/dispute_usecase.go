package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"assessoria_licitacoes/internal/domain/entities"
	"assessoria_licitacoes/internal/usecase/interfaces"
	"assessoria_licitacoes/pkg/clock"
	"assessoria_licitacoes/pkg/logger"

	"github.com/google/uuid"
)

// IDisputeUseCase is the dispute room (sala de disputa) state machine:
//
//	AGUARDANDO_DISPUTA --Start--> EM_DISPUTA --Finalize--> DISPUTA_CONCLUIDA --AmendOutcome--> DISPUTA_CONCLUIDA
//
//go:generate mockgen -source=dispute_usecase.go -destination=../adapter/http/handlers/mocks/dispute_usecase_mock.go -package=mocks

type IDisputeUseCase interface {
	PreviewCeiling(in ConfigureInput) (float64, error)
	Configure(ctx context.Context, bidID string, in ConfigureInput) (DisputeSetup, error)
	Start(ctx context.Context, bidID string, in ConfigureInput, op entities.Operator) (entities.Bid, error)
	AppendMessage(ctx context.Context, bidID string, texto string, op entities.Operator) (entities.Bid, error)
	Finalize(ctx context.Context, bidID string, in OutcomeInput, op entities.Operator) (FinalizeResult, error)
	AmendOutcome(ctx context.Context, bidID string, in OutcomeInput, op entities.Operator) (FinalizeResult, error)
	GetSession(ctx context.Context, bidID string) (Session, error)
	Watch(ctx context.Context, bidID string, interval time.Duration, onTick func(elapsed time.Duration, running bool)) error
	Documents(ctx context.Context, bidID string) ([]DocumentLink, error)
	Leave(bidID string)
}

// ConfigureInput carries the dispute parameters chosen by the operator.
// A nil ValorReferenciaEdital means "use the value already stored on the licitação".
type ConfigureInput struct {
	ValorReferenciaEdital *float64
	LimiteTipo            entities.LimitType
	LimiteValor           *float64
}

// DisputeSetup is the result of a successful Configure.
type DisputeSetup struct {
	Bid     entities.Bid
	Ceiling float64
}

// FinalizeResult is the committed dispute plus the outcome of document emission.
// DocumentsErr is informational: the dispute is concluded regardless.
type FinalizeResult struct {
	Bid          entities.Bid
	Documents    []string
	DocumentsErr error
}

// DocumentLink is a download link for one emitted dispute document.
type DocumentLink struct {
	Key string
	URL string
}

// Session is a licitação as seen from the dispute room, with its derived elapsed time.
type Session struct {
	Bid     entities.Bid
	Elapsed time.Duration
	Running bool
}

// sessionRecheckInterval is how often a live elapsed stream re-reads its licitação.
const sessionRecheckInterval = 5 * time.Second

type DisputeUseCase struct {
	repo     interfaces.IBidRepository
	emitter  interfaces.IDocumentEmitter
	company  entities.CompanyConfig
	clock    clock.Clock
	trackers *TrackerRegistry
}

var _ IDisputeUseCase = (*DisputeUseCase)(nil)

func NewDisputeUseCase(repo interfaces.IBidRepository, emitter interfaces.IDocumentEmitter, company entities.CompanyConfig, clk clock.Clock) *DisputeUseCase {
	if clk == nil {
		clk = clock.NewReal()
	}
	return &DisputeUseCase{
		repo:     repo,
		emitter:  emitter,
		company:  company,
		clock:    clk,
		trackers: NewTrackerRegistry(clk),
	}
}

// Trackers exposes the live tracker registry (used by tests and diagnostics).
func (u *DisputeUseCase) Trackers() *TrackerRegistry {
	return u.trackers
}

func (u *DisputeUseCase) PreviewCeiling(in ConfigureInput) (float64, error) {
	return ValidateCeiling(in.ValorReferenciaEdital, in.LimiteTipo, in.LimiteValor)
}

// Configure validates the dispute parameters against the current licitação and stores the
// reference value. The DisputeConfig itself is only written by Start.
func (u *DisputeUseCase) Configure(ctx context.Context, bidID string, in ConfigureInput) (DisputeSetup, error) {
	bid, err := u.load(ctx, bidID)
	if err != nil {
		return DisputeSetup{}, err
	}
	if bid.Status != entities.BidStatusAguardandoDisputa {
		return DisputeSetup{}, transition("configure dispute", bid.Status)
	}

	ref, ceiling, err := validateSetup(bid, in)
	if err != nil {
		logger.Info(ctx, "[dispute][usecase] configure rejected", "bid_id", bid.ID, "err", err)
		return DisputeSetup{}, err
	}

	if bid.ValorReferenciaEdital == nil || *bid.ValorReferenciaEdital != ref {
		bid, err = u.patch(ctx, bid.ID, entities.BidPatch{ValorReferenciaEdital: &ref}, "configure dispute")
		if err != nil {
			return DisputeSetup{}, err
		}
	}
	logger.Info(ctx, "[dispute][usecase] configured", "bid_id", bid.ID, "limite_tipo", in.LimiteTipo, "ceiling", ceiling)
	return DisputeSetup{Bid: bid, Ceiling: ceiling}, nil
}

// Start opens the dispute. The tracker only starts after the patch is confirmed; a failed
// write leaves the licitação in AGUARDANDO_DISPUTA with no timer.
func (u *DisputeUseCase) Start(ctx context.Context, bidID string, in ConfigureInput, op entities.Operator) (entities.Bid, error) {
	bid, err := u.load(ctx, bidID)
	if err != nil {
		return entities.Bid{}, err
	}
	if bid.Status != entities.BidStatusAguardandoDisputa {
		return entities.Bid{}, transition("start dispute", bid.Status)
	}

	ref, ceiling, err := validateSetup(bid, in)
	if err != nil {
		logger.Info(ctx, "[dispute][usecase] start rejected", "bid_id", bid.ID, "err", err)
		return entities.Bid{}, err
	}

	now := u.clock.Now()
	log := entities.DisputeLog{IniciadaEm: &now, Mensagens: []entities.DisputeMessage{}}
	if bid.DisputaLog != nil {
		log.Mensagens = append(log.Mensagens, bid.DisputaLog.Mensagens...)
	}
	status := entities.BidStatusEmDisputa
	patch := entities.BidPatch{
		Status:                &status,
		ValorReferenciaEdital: &ref,
		DisputaConfig: &entities.DisputeConfig{
			LimiteTipo:                      in.LimiteTipo,
			LimiteValor:                     *in.LimiteValor,
			ValorCalculadoAteOndePodeChegar: ceiling,
		},
		DisputaLog: &log,
	}

	updated, err := u.patch(ctx, bid.ID, patch, "start dispute")
	if err != nil {
		return entities.Bid{}, err
	}

	u.trackers.Start(updated.ID, now)
	logger.Info(ctx, "[dispute][usecase] started", "bid_id", updated.ID, "operator", op.DisplayName, "ceiling", ceiling)
	return updated, nil
}

// AppendMessage adds an entry to the session journal. The journal is append-only.
func (u *DisputeUseCase) AppendMessage(ctx context.Context, bidID string, texto string, op entities.Operator) (entities.Bid, error) {
	texto = strings.TrimSpace(texto)
	if texto == "" {
		return entities.Bid{}, invalid("texto", "required")
	}

	bid, err := u.load(ctx, bidID)
	if err != nil {
		return entities.Bid{}, err
	}
	if bid.Status != entities.BidStatusEmDisputa {
		return entities.Bid{}, transition("append message", bid.Status)
	}

	log := entities.DisputeLog{}
	if bid.DisputaLog != nil {
		log = bid.DisputaLog.Clone()
	}
	log.Mensagens = append(log.Mensagens, entities.DisputeMessage{
		ID:        uuid.NewString(),
		Timestamp: u.clock.Now(),
		Texto:     texto,
		Autor:     op.DisplayName,
		AutorID:   op.ID,
	})

	updated, err := u.patch(ctx, bid.ID, entities.BidPatch{DisputaLog: &log}, "append message")
	if err != nil {
		return entities.Bid{}, err
	}
	logger.Debug(ctx, "[dispute][usecase] message appended", "bid_id", updated.ID, "count", len(log.Mensagens))
	return updated, nil
}

// Finalize closes an active dispute with the operator's outcome.
//
// Validation happens before the tracker is touched, so a rejected outcome leaves the session
// running. If the commit fails the tracker is restarted from IniciadaEm and the dispute stays
// EM_DISPUTA.
func (u *DisputeUseCase) Finalize(ctx context.Context, bidID string, in OutcomeInput, op entities.Operator) (FinalizeResult, error) {
	bid, err := u.load(ctx, bidID)
	if err != nil {
		return FinalizeResult{}, err
	}
	if bid.Status != entities.BidStatusEmDisputa {
		return FinalizeResult{}, transition("finalize dispute", bid.Status)
	}
	if bid.DisputaLog == nil || bid.DisputaLog.IniciadaEm == nil {
		return FinalizeResult{}, transition("finalize dispute without start instant", bid.Status)
	}

	outcome, err := RecordOutcome(bid.ItensProposta, in)
	if err != nil {
		logger.Info(ctx, "[dispute][usecase] finalize rejected", "bid_id", bid.ID, "err", err)
		return FinalizeResult{}, err
	}

	startedAt := *bid.DisputaLog.IniciadaEm
	u.trackers.Ensure(bid)
	u.trackers.Stop(bid.ID)

	now := u.clock.Now()
	log := applyOutcome(*bid.DisputaLog, outcome, op)
	log.FinalizadaEm = &now
	log.Duracao = FormatDuration(now.Sub(startedAt))

	status := entities.BidStatusDisputaConcluida
	updated, err := u.patch(ctx, bid.ID, entities.BidPatch{
		Status:                   &status,
		ItensProposta:            &outcome.Items,
		DisputaLog:               &log,
		ObservacoesPropostaFinal: &outcome.ObservacoesPropostaFinal,
	}, "finalize dispute")
	if err != nil {
		u.trackers.Start(bid.ID, startedAt)
		return FinalizeResult{}, err
	}

	u.trackers.Conclude(bid.ID)
	logger.Info(ctx, "[dispute][usecase] finalized", "bid_id", updated.ID, "cliente_venceu", outcome.ClienteVenceu,
		"valor_final", outcome.ValorFinalPropostaCliente, "duracao", log.Duracao)

	return u.emitDocuments(ctx, updated, op), nil
}

// AmendOutcome rewrites the outcome of a concluded dispute. It shares Finalize's validation
// and commit path but keeps IniciadaEm, FinalizadaEm and Duracao, and never touches a timer.
func (u *DisputeUseCase) AmendOutcome(ctx context.Context, bidID string, in OutcomeInput, op entities.Operator) (FinalizeResult, error) {
	bid, err := u.load(ctx, bidID)
	if err != nil {
		return FinalizeResult{}, err
	}
	if bid.Status != entities.BidStatusDisputaConcluida || bid.DisputaLog == nil {
		return FinalizeResult{}, transition("amend dispute outcome", bid.Status)
	}

	outcome, err := RecordOutcome(bid.ItensProposta, in)
	if err != nil {
		logger.Info(ctx, "[dispute][usecase] amend rejected", "bid_id", bid.ID, "err", err)
		return FinalizeResult{}, err
	}

	log := applyOutcome(*bid.DisputaLog, outcome, op)
	status := entities.BidStatusDisputaConcluida
	updated, err := u.patch(ctx, bid.ID, entities.BidPatch{
		Status:                   &status,
		ItensProposta:            &outcome.Items,
		DisputaLog:               &log,
		ObservacoesPropostaFinal: &outcome.ObservacoesPropostaFinal,
	}, "amend dispute outcome")
	if err != nil {
		return FinalizeResult{}, err
	}

	logger.Info(ctx, "[dispute][usecase] outcome amended", "bid_id", updated.ID, "cliente_venceu", outcome.ClienteVenceu,
		"valor_final", outcome.ValorFinalPropostaCliente)
	return u.emitDocuments(ctx, updated, op), nil
}

// GetSession loads a licitação and derives its elapsed time. Loading an active dispute that
// this process is not tracking rebuilds its tracker from IniciadaEm.
func (u *DisputeUseCase) GetSession(ctx context.Context, bidID string) (Session, error) {
	bid, err := u.load(ctx, bidID)
	if err != nil {
		return Session{}, err
	}
	bid, tr := u.track(ctx, bid)
	if tr != nil {
		return Session{Bid: bid, Elapsed: tr.Tick(), Running: true}, nil
	}
	elapsed, _ := ElapsedFor(bid, u.clock.Now())
	return Session{Bid: bid, Elapsed: elapsed}, nil
}

// Watch streams the elapsed time of a licitação every interval until ctx is cancelled or the
// dispute stops being active. Non-active disputes get a single reading.
//
// While streaming, the licitação is re-read every sessionRecheckInterval so a dispute
// concluded elsewhere also ends this stream.
func (u *DisputeUseCase) Watch(ctx context.Context, bidID string, interval time.Duration, onTick func(elapsed time.Duration, running bool)) error {
	bid, err := u.load(ctx, bidID)
	if err != nil {
		return err
	}
	bid, tr := u.track(ctx, bid)
	if tr == nil {
		elapsed, _ := ElapsedFor(bid, u.clock.Now())
		onTick(elapsed, false)
		return nil
	}

	if interval <= 0 {
		interval = DefaultTickInterval
	}
	every := int(sessionRecheckInterval / interval)
	if every < 1 {
		every = 1
	}
	ticks := 0
	tr.Run(ctx, interval, func(d time.Duration, running bool) {
		onTick(d, running)
		if !running {
			return
		}
		if ticks++; ticks%every == 0 {
			u.recheck(ctx, bid.ID)
		}
	})
	return nil
}

// Documents returns download links for the documents recorded on the dispute log, newest
// emission last. A licitação without emitted documents gets an empty list.
func (u *DisputeUseCase) Documents(ctx context.Context, bidID string) ([]DocumentLink, error) {
	if u.emitter == nil {
		return nil, ErrDocumentsNotWired
	}
	bid, err := u.load(ctx, bidID)
	if err != nil {
		return nil, err
	}
	if bid.DisputaLog == nil {
		return []DocumentLink{}, nil
	}

	links := make([]DocumentLink, 0, len(bid.DisputaLog.Documentos))
	for _, key := range bid.DisputaLog.Documentos {
		url, err := u.emitter.Link(ctx, key)
		if err != nil {
			logger.Warn(ctx, "[dispute][usecase] document link failed", "bid_id", bid.ID, "key", key, "err", err)
			return nil, fmt.Errorf("%w: %w", ErrDocumentStorage, err)
		}
		links = append(links, DocumentLink{Key: key, URL: url})
	}
	return links, nil
}

// Leave drops the local tracker of a licitação (view teardown). Persisted state is untouched;
// the next GetSession/Watch rebuilds the tracker from IniciadaEm.
func (u *DisputeUseCase) Leave(bidID string) {
	u.trackers.Remove(strings.TrimSpace(bidID))
}

// track returns the live tracker of bid. When this process concluded the dispute after bid
// was read, the licitação is reloaded so the caller sees the committed outcome.
func (u *DisputeUseCase) track(ctx context.Context, bid entities.Bid) (entities.Bid, *ElapsedTracker) {
	if tr := u.trackers.Ensure(bid); tr != nil {
		return bid, tr
	}
	if bid.Status == entities.BidStatusEmDisputa && u.trackers.Concluded(bid.ID) {
		if fresh, err := u.load(ctx, bid.ID); err == nil {
			return fresh, nil
		}
	}
	return bid, nil
}

// recheck concludes the local tracker of bidID once the stored licitação has left EM_DISPUTA.
func (u *DisputeUseCase) recheck(ctx context.Context, bidID string) {
	bid, err := u.repo.Get(ctx, bidID)
	if err != nil || bid.ID == "" {
		logger.Debug(ctx, "[dispute][usecase] session recheck skipped", "bid_id", bidID, "err", err)
		return
	}
	if bid.Status != entities.BidStatusEmDisputa {
		logger.Info(ctx, "[dispute][usecase] dispute no longer active; stopping timer", "bid_id", bidID, "status", bid.Status)
		u.trackers.Conclude(bidID)
	}
}

func (u *DisputeUseCase) emitDocuments(ctx context.Context, bid entities.Bid, op entities.Operator) FinalizeResult {
	res := FinalizeResult{Bid: bid}
	if u.emitter == nil {
		return res
	}

	keys, err := u.emitter.Emit(ctx, bid, u.company, op)
	if err != nil {
		logger.Warn(ctx, "[dispute][usecase] document emission failed", "bid_id", bid.ID, "err", err)
		res.DocumentsErr = err
		return res
	}
	res.Documents = keys

	log := bid.DisputaLog.Clone()
	log.Documentos = keys
	updated, err := u.repo.Patch(ctx, bid.ID, entities.BidPatch{DisputaLog: &log})
	if err != nil || updated.ID == "" {
		logger.Warn(ctx, "[dispute][usecase] document keys not recorded", "bid_id", bid.ID, "err", err)
		return res
	}
	res.Bid = updated
	return res
}

func (u *DisputeUseCase) load(ctx context.Context, bidID string) (entities.Bid, error) {
	bidID = strings.TrimSpace(bidID)
	if bidID == "" {
		return entities.Bid{}, ErrInvalidBidID
	}
	bid, err := u.repo.Get(ctx, bidID)
	if err != nil {
		return entities.Bid{}, persistence("load licitacao", err)
	}
	if bid.ID == "" {
		return entities.Bid{}, ErrBidNotFound
	}
	return bid, nil
}

func (u *DisputeUseCase) patch(ctx context.Context, bidID string, p entities.BidPatch, op string) (entities.Bid, error) {
	updated, err := u.repo.Patch(ctx, bidID, p)
	if err != nil {
		logger.Error(ctx, "[dispute][usecase] patch failed", "bid_id", bidID, "op", op, "err", err)
		return entities.Bid{}, persistence(op, err)
	}
	if updated.ID == "" {
		return entities.Bid{}, ErrBidNotFound
	}
	return updated, nil
}

// validateSetup checks the Start preconditions: at least one item, a reference value and a
// computable ceiling.
func validateSetup(bid entities.Bid, in ConfigureInput) (float64, float64, error) {
	if len(bid.ItensProposta) == 0 {
		return 0, 0, invalid("itens_proposta", "at least one proposal item is required")
	}
	ref := in.ValorReferenciaEdital
	if ref == nil {
		ref = bid.ValorReferenciaEdital
	}
	ceiling, err := ValidateCeiling(ref, in.LimiteTipo, in.LimiteValor)
	if err != nil {
		return 0, 0, err
	}
	return *ref, ceiling, nil
}
