package documents

import (
	"bytes"
	"context"
	"fmt"
	"strconv"
	"time"

	"assessoria_licitacoes/internal/domain/entities"
	"assessoria_licitacoes/internal/domain/money"
	"assessoria_licitacoes/internal/usecase/interfaces"
	"assessoria_licitacoes/pkg/logger"

	"github.com/go-pdf/fpdf"
)

const (
	KindAtaSessao     = "ata-sessao"
	KindPropostaFinal = "proposta-final"

	contentTypePDF = "application/pdf"
	dateTimeLayout = "02/01/2006 15:04:05"
	dateLayout     = "02/01/2006"
)

// PDFEmitter renders the session minutes and the final proposal of a concluded dispute and
// stores both in object storage.
type PDFEmitter struct {
	store interfaces.IObjectStorage
	loc   *time.Location
	now   func() time.Time
}

var _ interfaces.IDocumentEmitter = (*PDFEmitter)(nil)

// NewPDFEmitter builds an emitter writing to store. Dates are printed in Brasília time when the
// zone database is available.
func NewPDFEmitter(store interfaces.IObjectStorage) *PDFEmitter {
	loc, err := time.LoadLocation("America/Sao_Paulo")
	if err != nil {
		loc = time.UTC
	}
	return &PDFEmitter{store: store, loc: loc, now: func() time.Time { return time.Now().UTC() }}
}

// Emit renders and uploads both documents. Keys are versioned by emission time, so amending an
// outcome never overwrites the documents of a previous emission.
func (e *PDFEmitter) Emit(ctx context.Context, bid entities.Bid, company entities.CompanyConfig, operator entities.Operator) ([]string, error) {
	if bid.DisputaLog == nil {
		return nil, fmt.Errorf("documents: licitacao %s has no dispute log", bid.ID)
	}

	now := e.now()
	renders := []struct {
		kind   string
		render func(*fpdf.Fpdf)
	}{
		{KindAtaSessao, func(pdf *fpdf.Fpdf) { e.renderAta(pdf, bid, company, operator) }},
		{KindPropostaFinal, func(pdf *fpdf.Fpdf) { e.renderProposta(pdf, bid, company, now) }},
	}

	keys := make([]string, 0, len(renders))
	for _, r := range renders {
		body, err := e.build(r.kind, now, r.render)
		if err != nil {
			return keys, fmt.Errorf("documents: render %s: %w", r.kind, err)
		}
		key := ObjectKey(bid.ID, r.kind, now)
		if err := e.store.Put(ctx, key, body, contentTypePDF); err != nil {
			return keys, fmt.Errorf("documents: store %s: %w", r.kind, err)
		}
		logger.Debug(ctx, "[dispute][documents] stored", "bid_id", bid.ID, "key", key, "bytes", len(body))
		keys = append(keys, key)
	}

	logger.Info(ctx, "[dispute][documents] emitted", "bid_id", bid.ID, "keys", keys)
	return keys, nil
}

// Link returns a presigned download URL for an emitted document.
func (e *PDFEmitter) Link(ctx context.Context, key string) (string, error) {
	url, err := e.store.PresignedURL(ctx, key)
	if err != nil {
		return "", fmt.Errorf("documents: link %s: %w", key, err)
	}
	return url, nil
}

// ObjectKey is the storage key of a document kind emitted at t.
func ObjectKey(bidID, kind string, t time.Time) string {
	return fmt.Sprintf("licitacoes/%s/%s-%s.pdf", bidID, kind, t.UTC().Format("20060102T150405Z"))
}

func (e *PDFEmitter) build(name string, now time.Time, render func(*fpdf.Fpdf)) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(name, true)
	pdf.SetCreationDate(now)
	pdf.SetMargins(18, 18, 18)
	pdf.SetAutoPageBreak(true, 18)
	pdf.AddPage()

	render(pdf)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (e *PDFEmitter) renderAta(pdf *fpdf.Fpdf, bid entities.Bid, company entities.CompanyConfig, operator entities.Operator) {
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	log := bid.DisputaLog

	header(pdf, tr, company)
	title(pdf, tr, "ATA DA SESSÃO DE DISPUTA")
	bidSummary(pdf, tr, bid)

	field(pdf, tr, "Início", e.formatTime(log.IniciadaEm))
	field(pdf, tr, "Encerramento", e.formatTime(log.FinalizadaEm))
	field(pdf, tr, "Duração", log.Duracao)
	if bid.ValorReferenciaEdital != nil {
		field(pdf, tr, "Valor de referência", money.Format(*bid.ValorReferenciaEdital))
	}
	if cfg := bid.DisputaConfig; cfg != nil {
		limite := money.Format(cfg.LimiteValor)
		if cfg.LimiteTipo == entities.LimitTypePercentual {
			limite = strconv.FormatFloat(cfg.LimiteValor, 'f', -1, 64) + "%"
		}
		field(pdf, tr, "Limite de desconto", limite)
		field(pdf, tr, "Valor mínimo autorizado", money.Format(cfg.ValorCalculadoAteOndePodeChegar))
	}

	resultado := "Cliente não venceu"
	if log.ClienteVenceu != nil && *log.ClienteVenceu {
		resultado = "Cliente venceu"
	}
	if log.PosicaoCliente != nil {
		resultado += fmt.Sprintf(" (posição %dº)", *log.PosicaoCliente)
	}
	field(pdf, tr, "Resultado", resultado)
	if log.ValorFinalPropostaCliente != nil {
		field(pdf, tr, "Valor final da proposta", money.Format(*log.ValorFinalPropostaCliente))
	}

	pdf.Ln(4)
	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(0, 7, tr("Registro da sessão"), "B", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 9)
	if len(log.Mensagens) == 0 {
		pdf.CellFormat(0, 6, tr("Nenhuma mensagem registrada."), "", 1, "L", false, 0, "")
	}
	for _, m := range log.Mensagens {
		line := fmt.Sprintf("[%s] %s: %s", e.formatTime(&m.Timestamp), m.Autor, m.Texto)
		pdf.MultiCell(0, 5, tr(line), "", "L", false)
	}

	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 10)
	signer := log.FinalizadoPor
	if operator.DisplayName != "" {
		signer = operator.DisplayName
	}
	pdf.CellFormat(0, 6, tr("Operador: "+signer), "", 1, "L", false, 0, "")
}

func (e *PDFEmitter) renderProposta(pdf *fpdf.Fpdf, bid entities.Bid, company entities.CompanyConfig, now time.Time) {
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	header(pdf, tr, company)
	title(pdf, tr, "PROPOSTA DE PREÇOS FINAL")
	bidSummary(pdf, tr, bid)
	pdf.Ln(3)

	widths := []float64{14, 72, 14, 14, 30, 30}
	cols := []string{"Lote", "Descrição", "Unid.", "Qtd.", "Unitário", "Total"}
	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetFillColor(230, 230, 230)
	for i, c := range cols {
		pdf.CellFormat(widths[i], 7, tr(c), "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 9)
	for _, it := range bid.ItensProposta {
		unit, total := "-", "-"
		if it.ValorUnitarioFinalCliente != nil {
			unit = money.Format(*it.ValorUnitarioFinalCliente)
		}
		if it.ValorTotalFinalCliente != nil {
			total = money.Format(*it.ValorTotalFinalCliente)
		}
		row := []string{it.Lote, truncate(it.Descricao, 45), it.Unidade, strconv.Itoa(it.Quantidade), unit, total}
		aligns := []string{"C", "L", "C", "R", "R", "R"}
		for i, v := range row {
			pdf.CellFormat(widths[i], 6, tr(v), "1", 0, aligns[i], false, 0, "")
		}
		pdf.Ln(-1)
	}

	grand := "-"
	if v := bid.DisputaLog.ValorFinalPropostaCliente; v != nil {
		grand = money.Format(*v)
	}
	pdf.SetFont("Helvetica", "B", 9)
	pdf.CellFormat(widths[0]+widths[1]+widths[2]+widths[3]+widths[4], 7, tr("Valor global"), "1", 0, "R", false, 0, "")
	pdf.CellFormat(widths[5], 7, grand, "1", 1, "R", false, 0, "")

	if bid.ObservacoesPropostaFinal != "" {
		pdf.Ln(4)
		pdf.SetFont("Helvetica", "B", 10)
		pdf.CellFormat(0, 6, tr("Observações"), "", 1, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 9)
		pdf.MultiCell(0, 5, tr(bid.ObservacoesPropostaFinal), "", "L", false)
	}

	pdf.Ln(10)
	pdf.SetFont("Helvetica", "", 10)
	place := company.Cidade
	if place != "" {
		place += ", "
	}
	pdf.CellFormat(0, 6, tr(place+now.In(e.loc).Format(dateLayout)), "", 1, "R", false, 0, "")
}

func (e *PDFEmitter) formatTime(t *time.Time) string {
	if t == nil {
		return "-"
	}
	return t.In(e.loc).Format(dateTimeLayout)
}

func header(pdf *fpdf.Fpdf, tr func(string) string, company entities.CompanyConfig) {
	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(0, 6, tr(company.RazaoSocial), "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 9)
	if company.CNPJ != "" {
		pdf.CellFormat(0, 5, tr("CNPJ "+company.CNPJ), "", 1, "L", false, 0, "")
	}
	if company.Endereco != "" {
		pdf.CellFormat(0, 5, tr(company.Endereco), "", 1, "L", false, 0, "")
	}
	pdf.Ln(4)
}

func title(pdf *fpdf.Fpdf, tr func(string) string, text string) {
	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(0, 9, tr(text), "", 1, "C", false, 0, "")
	pdf.Ln(2)
}

func bidSummary(pdf *fpdf.Fpdf, tr func(string) string, bid entities.Bid) {
	field(pdf, tr, "Licitação", bid.Numero)
	field(pdf, tr, "Órgão", bid.Orgao)
	field(pdf, tr, "Modalidade", bid.Modalidade)
	field(pdf, tr, "Objeto", bid.Objeto)
	field(pdf, tr, "Cliente", bid.ClienteNome)
}

func field(pdf *fpdf.Fpdf, tr func(string) string, label, value string) {
	if value == "" {
		return
	}
	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(48, 6, tr(label+":"), "", 0, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.MultiCell(0, 6, tr(value), "", "L", false)
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
