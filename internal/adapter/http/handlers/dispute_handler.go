package handlers

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"assessoria_licitacoes/internal/adapter/http/dto/request"
	"assessoria_licitacoes/internal/adapter/http/dto/response"
	"assessoria_licitacoes/internal/adapter/http/middleware"
	"assessoria_licitacoes/internal/domain/entities"
	"assessoria_licitacoes/internal/usecase"
	"assessoria_licitacoes/pkg/logger"

	"github.com/gin-gonic/gin"
)

const (
	defaultStreamInterval = time.Second
	minStreamInterval     = 200 * time.Millisecond
)

// DisputeHandler serves the dispute room (sala de disputa).
type DisputeHandler struct {
	usecase usecase.IDisputeUseCase
}

func NewDisputeHandler(uc usecase.IDisputeUseCase) *DisputeHandler {
	return &DisputeHandler{usecase: uc}
}

// PreviewCeiling godoc
// @Summary      Compute the lowest authorized price
// @Description  Pure calculation; nothing is stored.
// @Tags         disputa
// @Accept       json
// @Produce      json
// @Param        body  body      request.DisputeConfigRequest  true  "Limite"
// @Success      200   {object}  response.CeilingResponse
// @Failure      422   {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /disputa/limite [post]
func (h *DisputeHandler) PreviewCeiling(c *gin.Context) {
	in, ok := bindConfig(c)
	if !ok {
		return
	}
	ceiling, err := h.usecase.PreviewCeiling(in)
	if err != nil {
		respondError(c, "dispute", err)
		return
	}
	c.JSON(http.StatusOK, response.FromCeiling(ceiling))
}

// Configure godoc
// @Summary      Validate the dispute parameters and store the reference value
// @Tags         disputa
// @Accept       json
// @Produce      json
// @Param        id    path      string                        true  "Licitação ID"
// @Param        body  body      request.DisputeConfigRequest  true  "Limite"
// @Success      200   {object}  response.SetupResponse
// @Failure      409   {object}  pkg.HTTPError
// @Failure      422   {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /licitacoes/{id}/disputa/config [put]
func (h *DisputeHandler) Configure(c *gin.Context) {
	in, ok := bindConfig(c)
	if !ok {
		return
	}
	setup, err := h.usecase.Configure(c.Request.Context(), c.Param("id"), in)
	if err != nil {
		respondError(c, "dispute", err)
		return
	}
	c.JSON(http.StatusOK, response.FromSetup(setup))
}

// Start godoc
// @Summary      Start the dispute
// @Tags         disputa
// @Accept       json
// @Produce      json
// @Param        id    path      string                        true  "Licitação ID"
// @Param        body  body      request.DisputeConfigRequest  true  "Limite"
// @Success      200   {object}  response.SessionResponse
// @Failure      409   {object}  pkg.HTTPError
// @Failure      422   {object}  pkg.HTTPError
// @Failure      503   {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /licitacoes/{id}/disputa/iniciar [post]
func (h *DisputeHandler) Start(c *gin.Context) {
	in, ok := bindConfig(c)
	if !ok {
		return
	}
	bid, err := h.usecase.Start(c.Request.Context(), c.Param("id"), in, middleware.GetOperator(c))
	if err != nil {
		respondError(c, "dispute", err)
		return
	}
	logger.Info(c.Request.Context(), "[dispute][handler] started", "bid_id", bid.ID)
	c.JSON(http.StatusOK, response.FromSession(usecase.Session{Bid: bid, Running: true}))
}

// GetSession godoc
// @Summary      Load the dispute room, rebuilding the timer from the stored start instant
// @Tags         disputa
// @Produce      json
// @Param        id   path      string  true  "Licitação ID"
// @Success      200  {object}  response.SessionResponse
// @Failure      404  {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /licitacoes/{id}/disputa [get]
func (h *DisputeHandler) GetSession(c *gin.Context) {
	session, err := h.usecase.GetSession(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, "dispute", err)
		return
	}
	c.JSON(http.StatusOK, response.FromSession(session))
}

// AppendMessage godoc
// @Summary      Append a message to the session journal
// @Tags         disputa
// @Accept       json
// @Produce      json
// @Param        id    path      string                  true  "Licitação ID"
// @Param        body  body      request.MessageRequest  true  "Mensagem"
// @Success      201   {object}  response.BidResponse
// @Failure      409   {object}  pkg.HTTPError
// @Failure      422   {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /licitacoes/{id}/disputa/mensagens [post]
func (h *DisputeHandler) AppendMessage(c *gin.Context) {
	var payload request.MessageRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondInvalidPayload(c, "dispute", err)
		return
	}
	bid, err := h.usecase.AppendMessage(c.Request.Context(), c.Param("id"), payload.Texto, middleware.GetOperator(c))
	if err != nil {
		respondError(c, "dispute", err)
		return
	}
	c.JSON(http.StatusCreated, response.FromBid(bid))
}

// Finalize godoc
// @Summary      Close the dispute with its outcome
// @Description  Documents are emitted after the commit; a failure there is reported in documentos_erro.
// @Tags         disputa
// @Accept       json
// @Produce      json
// @Param        id    path      string                  true  "Licitação ID"
// @Param        body  body      request.OutcomeRequest  true  "Resultado"
// @Success      200   {object}  response.FinalizeResponse
// @Failure      409   {object}  pkg.HTTPError
// @Failure      422   {object}  pkg.HTTPError
// @Failure      503   {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /licitacoes/{id}/disputa/finalizar [post]
func (h *DisputeHandler) Finalize(c *gin.Context) {
	h.outcome(c, h.usecase.Finalize)
}

// AmendOutcome godoc
// @Summary      Amend the outcome of a concluded dispute
// @Tags         disputa
// @Accept       json
// @Produce      json
// @Param        id    path      string                  true  "Licitação ID"
// @Param        body  body      request.OutcomeRequest  true  "Resultado"
// @Success      200   {object}  response.FinalizeResponse
// @Failure      409   {object}  pkg.HTTPError
// @Failure      422   {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /licitacoes/{id}/disputa/resultado [put]
func (h *DisputeHandler) AmendOutcome(c *gin.Context) {
	h.outcome(c, h.usecase.AmendOutcome)
}

// StreamElapsed godoc
// @Summary      Stream the elapsed dispute time (Server-Sent Events)
// @Tags         disputa
// @Produce      text/event-stream
// @Param        id           path   string  true   "Licitação ID"
// @Param        intervalo_ms query  int     false  "Tick interval in milliseconds (default 1000)"
// @Success      200
// @Failure      404  {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /licitacoes/{id}/disputa/tempo [get]
func (h *DisputeHandler) StreamElapsed(c *gin.Context) {
	ctx := c.Request.Context()
	bidID := c.Param("id")

	if _, err := h.usecase.GetSession(ctx, bidID); err != nil {
		respondError(c, "dispute", err)
		return
	}

	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	c.Header("X-Accel-Buffering", "no")
	c.Status(http.StatusOK)

	err := h.usecase.Watch(ctx, bidID, streamInterval(c), func(d time.Duration, running bool) {
		c.SSEvent("elapsed", response.FromElapsed(d, running))
		c.Writer.Flush()
	})
	if err != nil {
		logger.Warn(ctx, "[dispute][handler] elapsed stream ended with error", "bid_id", bidID, "err", err)
		c.SSEvent("error", mapError(err).ToHTTPError())
		c.Writer.Flush()
		return
	}
	if errors.Is(ctx.Err(), context.Canceled) {
		logger.Debug(ctx, "[dispute][handler] elapsed stream closed by client", "bid_id", bidID)
		return
	}
	c.SSEvent("end", gin.H{"licitacao_id": bidID})
	c.Writer.Flush()
}

// Documents godoc
// @Summary      List download links for the documents emitted by the dispute
// @Tags         disputa
// @Produce      json
// @Param        id   path      string  true  "Licitação ID"
// @Success      200  {object}  response.DocumentsResponse
// @Failure      404  {object}  pkg.HTTPError
// @Failure      502  {object}  pkg.HTTPError
// @Failure      503  {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /licitacoes/{id}/disputa/documentos [get]
func (h *DisputeHandler) Documents(c *gin.Context) {
	links, err := h.usecase.Documents(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, "dispute", err)
		return
	}
	c.JSON(http.StatusOK, response.FromDocumentLinks(links))
}

// Leave drops this process's timer for the licitação. The dispute itself is untouched.
func (h *DisputeHandler) Leave(c *gin.Context) {
	h.usecase.Leave(c.Param("id"))
	c.Status(http.StatusNoContent)
}

type outcomeFunc func(ctx context.Context, bidID string, in usecase.OutcomeInput, op entities.Operator) (usecase.FinalizeResult, error)

func (h *DisputeHandler) outcome(c *gin.Context, run outcomeFunc) {
	var payload request.OutcomeRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondInvalidPayload(c, "dispute", err)
		return
	}
	in, err := payload.ToInput()
	if err != nil {
		respondError(c, "dispute", err)
		return
	}

	res, err := run(c.Request.Context(), c.Param("id"), in, middleware.GetOperator(c))
	if err != nil {
		respondError(c, "dispute", err)
		return
	}
	if res.DocumentsErr != nil {
		logger.Warn(c.Request.Context(), "[dispute][handler] concluded without documents", "bid_id", res.Bid.ID, "err", res.DocumentsErr)
	}
	c.JSON(http.StatusOK, response.FromFinalize(res))
}

func bindConfig(c *gin.Context) (usecase.ConfigureInput, bool) {
	var payload request.DisputeConfigRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondInvalidPayload(c, "dispute", err)
		return usecase.ConfigureInput{}, false
	}
	in, err := payload.ToInput()
	if err != nil {
		respondError(c, "dispute", err)
		return usecase.ConfigureInput{}, false
	}
	return in, true
}

func streamInterval(c *gin.Context) time.Duration {
	ms, err := strconv.Atoi(c.Query("intervalo_ms"))
	if err != nil || ms <= 0 {
		return defaultStreamInterval
	}
	d := time.Duration(ms) * time.Millisecond
	if d < minStreamInterval {
		return minStreamInterval
	}
	return d
}
