package response

import (
	"time"

	"assessoria_licitacoes/internal/domain/money"
	"assessoria_licitacoes/internal/usecase"
)

type CeilingResponse struct {
	ValorCalculadoAteOndePodeChegar float64 `json:"valor_calculado_ate_onde_pode_chegar"`
	Formatado                       string  `json:"formatado"`
}

func FromCeiling(v float64) CeilingResponse {
	return CeilingResponse{ValorCalculadoAteOndePodeChegar: v, Formatado: money.Format(v)}
}

type SetupResponse struct {
	Licitacao BidResponse     `json:"licitacao"`
	Limite    CeilingResponse `json:"limite"`
}

func FromSetup(s usecase.DisputeSetup) SetupResponse {
	return SetupResponse{Licitacao: FromBid(s.Bid), Limite: FromCeiling(s.Ceiling)}
}

type ElapsedResponse struct {
	Segundos  int64  `json:"segundos"`
	Formatado string `json:"formatado"`
	Rodando   bool   `json:"rodando"`
}

func FromElapsed(d time.Duration, running bool) ElapsedResponse {
	return ElapsedResponse{Segundos: int64(d / time.Second), Formatado: usecase.FormatDuration(d), Rodando: running}
}

type SessionResponse struct {
	Licitacao BidResponse      `json:"licitacao"`
	Tempo     ElapsedResponse  `json:"tempo"`
	Limite    *CeilingResponse `json:"limite,omitempty"`
}

func FromSession(s usecase.Session) SessionResponse {
	out := SessionResponse{Licitacao: FromBid(s.Bid), Tempo: FromElapsed(s.Elapsed, s.Running)}
	if cfg := s.Bid.DisputaConfig; cfg != nil {
		c := FromCeiling(cfg.ValorCalculadoAteOndePodeChegar)
		out.Limite = &c
	}
	return out
}

// FinalizeResponse carries the concluded licitação. documentos_erro is set when the dispute was
// committed but its documents could not be emitted.
type FinalizeResponse struct {
	Licitacao           BidResponse `json:"licitacao"`
	ValorFinalFormatado string      `json:"valor_final_formatado,omitempty"`
	Documentos          []string    `json:"documentos,omitempty"`
	DocumentosErro      string      `json:"documentos_erro,omitempty"`
}

func FromFinalize(r usecase.FinalizeResult) FinalizeResponse {
	out := FinalizeResponse{Licitacao: FromBid(r.Bid), Documentos: r.Documents}
	if log := r.Bid.DisputaLog; log != nil && log.ValorFinalPropostaCliente != nil {
		out.ValorFinalFormatado = money.Format(*log.ValorFinalPropostaCliente)
	}
	if r.DocumentsErr != nil {
		out.DocumentosErro = r.DocumentsErr.Error()
	}
	return out
}

type DocumentLinkResponse struct {
	Chave string `json:"chave"`
	URL   string `json:"url"`
}

type DocumentsResponse struct {
	Documentos []DocumentLinkResponse `json:"documentos"`
}

func FromDocumentLinks(links []usecase.DocumentLink) DocumentsResponse {
	out := DocumentsResponse{Documentos: make([]DocumentLinkResponse, 0, len(links))}
	for _, l := range links {
		out.Documentos = append(out.Documentos, DocumentLinkResponse{Chave: l.Key, URL: l.URL})
	}
	return out
}
