package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"assessoria_licitacoes/internal/adapter/http/dto/response"
	"assessoria_licitacoes/internal/usecase"
	"assessoria_licitacoes/pkg/logger"

	"github.com/gin-gonic/gin"
)

// DebitHandler handles homologation and the advisory-fee debit.
type DebitHandler struct {
	usecase usecase.IDebitUseCase
}

func NewDebitHandler(uc usecase.IDebitUseCase) *DebitHandler {
	return &DebitHandler{usecase: uc}
}

// Homologate godoc
// @Summary      Homologate a won dispute and raise its debit
// @Tags         debitos
// @Produce      json
// @Param        id   path      string  true  "Licitação ID"
// @Success      200  {object}  response.HomologationResponse
// @Failure      409  {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /licitacoes/{id}/homologar [post]
func (h *DebitHandler) Homologate(c *gin.Context) {
	res, err := h.usecase.Homologate(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, "debit", err)
		return
	}
	c.JSON(http.StatusOK, response.FromHomologation(res))
}

// GetByBid godoc
// @Summary      Get the debit of a licitação
// @Tags         debitos
// @Produce      json
// @Param        id   path      string  true  "Licitação ID"
// @Success      200  {object}  response.DebitResponse
// @Failure      404  {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /licitacoes/{id}/debito [get]
func (h *DebitHandler) GetByBid(c *gin.Context) {
	d, err := h.usecase.GetByBidID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, "debit", err)
		return
	}
	c.JSON(http.StatusOK, response.FromDebit(d))
}

// GetDebit godoc
// @Summary      Get a debit
// @Tags         debitos
// @Produce      json
// @Param        debit_id  path      string  true  "Debit ID"
// @Success      200       {object}  response.DebitResponse
// @Failure      404       {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /debitos/{debit_id} [get]
func (h *DebitHandler) GetDebit(c *gin.Context) {
	d, err := h.usecase.GetByID(c.Request.Context(), c.Param("debit_id"))
	if err != nil {
		respondError(c, "debit", err)
		return
	}
	c.JSON(http.StatusOK, response.FromDebit(d))
}

// Charge godoc
// @Summary      Charge a debit through Mercado Pago
// @Description  The body is the Mercado Pago payment request, optionally wrapped in {"mp_payload": {...}}.
// @Tags         debitos
// @Accept       json
// @Produce      json
// @Param        debit_id  path      string  true  "Debit ID"
// @Success      200       {object}  response.DebitResponse
// @Failure      400       {object}  pkg.HTTPError
// @Failure      409       {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /debitos/{debit_id}/pagamento [post]
func (h *DebitHandler) Charge(c *gin.Context) {
	debitID := c.Param("debit_id")
	payload, err := readMPPayload(c)
	if err != nil {
		// the use case decides whether an unreadable payload is fatal (it is not in mock mode)
		logger.Info(c.Request.Context(), "[debit][handler] unreadable payment payload", "debit_id", debitID, "err", err)
		payload = nil
	}

	d, err := h.usecase.Charge(c.Request.Context(), debitID, payload)
	if err != nil {
		respondError(c, "debit", err)
		return
	}
	c.JSON(http.StatusOK, response.FromDebit(d))
}

func readMPPayload(c *gin.Context) (json.RawMessage, error) {
	raw, err := c.GetRawData()
	if err != nil {
		return nil, err
	}
	if len(strings.TrimSpace(string(raw))) == 0 {
		return json.RawMessage("{}"), nil
	}
	if !json.Valid(raw) {
		return nil, errors.New("request body is not valid json")
	}

	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(raw, &envelope); err == nil {
		if wrapped, ok := envelope["mp_payload"]; ok {
			if w := strings.TrimSpace(string(wrapped)); w == "" || w == "null" {
				return nil, errors.New("mp_payload cannot be empty")
			}
			return wrapped, nil
		}
	}
	return json.RawMessage(raw), nil
}
