package handlers

import (
	"net/http"

	"assessoria_licitacoes/internal/adapter/http/dto/request"
	"assessoria_licitacoes/internal/adapter/http/dto/response"
	"assessoria_licitacoes/internal/usecase"
	"assessoria_licitacoes/pkg/logger"

	"github.com/gin-gonic/gin"
)

// BidHandler exposes licitação registration and proposal item editing.
type BidHandler struct {
	usecase usecase.IBidUseCase
}

func NewBidHandler(uc usecase.IBidUseCase) *BidHandler {
	return &BidHandler{usecase: uc}
}

// Create godoc
// @Summary      Register a licitação
// @Tags         licitacoes
// @Accept       json
// @Produce      json
// @Param        body  body      request.CreateBidRequest  true  "Licitação"
// @Success      201   {object}  response.BidResponse
// @Failure      400   {object}  pkg.HTTPError
// @Failure      422   {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /licitacoes [post]
func (h *BidHandler) Create(c *gin.Context) {
	var payload request.CreateBidRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondInvalidPayload(c, "bid", err)
		return
	}
	in, err := payload.ToInput()
	if err != nil {
		respondError(c, "bid", err)
		return
	}

	bid, err := h.usecase.Create(c.Request.Context(), in)
	if err != nil {
		respondError(c, "bid", err)
		return
	}
	logger.Info(c.Request.Context(), "[bid][handler] created", "bid_id", bid.ID)
	c.JSON(http.StatusCreated, response.FromBid(bid))
}

// List godoc
// @Summary      List licitações
// @Tags         licitacoes
// @Produce      json
// @Success      200  {array}  response.BidResponse
// @Security     Bearer
// @Router       /licitacoes [get]
func (h *BidHandler) List(c *gin.Context) {
	bids, err := h.usecase.List(c.Request.Context())
	if err != nil {
		respondError(c, "bid", err)
		return
	}
	c.JSON(http.StatusOK, response.FromBids(bids))
}

// Get godoc
// @Summary      Get a licitação
// @Tags         licitacoes
// @Produce      json
// @Param        id   path      string  true  "Licitação ID"
// @Success      200  {object}  response.BidResponse
// @Failure      404  {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /licitacoes/{id} [get]
func (h *BidHandler) Get(c *gin.Context) {
	bid, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, "bid", err)
		return
	}
	c.JSON(http.StatusOK, response.FromBid(bid))
}

// MarkAwaitingDispute moves an analysed licitação to AGUARDANDO_DISPUTA.
func (h *BidHandler) MarkAwaitingDispute(c *gin.Context) {
	bid, err := h.usecase.MarkAwaitingDispute(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, "bid", err)
		return
	}
	c.JSON(http.StatusOK, response.FromBid(bid))
}

func (h *BidHandler) AddItem(c *gin.Context) {
	in, ok := bindItem(c)
	if !ok {
		return
	}
	bid, err := h.usecase.AddItem(c.Request.Context(), c.Param("id"), in)
	if err != nil {
		respondError(c, "bid", err)
		return
	}
	c.JSON(http.StatusCreated, response.FromBid(bid))
}

func (h *BidHandler) UpdateItem(c *gin.Context) {
	in, ok := bindItem(c)
	if !ok {
		return
	}
	bid, err := h.usecase.UpdateItem(c.Request.Context(), c.Param("id"), c.Param("item_id"), in)
	if err != nil {
		respondError(c, "bid", err)
		return
	}
	c.JSON(http.StatusOK, response.FromBid(bid))
}

func (h *BidHandler) RemoveItem(c *gin.Context) {
	bid, err := h.usecase.RemoveItem(c.Request.Context(), c.Param("id"), c.Param("item_id"))
	if err != nil {
		respondError(c, "bid", err)
		return
	}
	c.JSON(http.StatusOK, response.FromBid(bid))
}

func bindItem(c *gin.Context) (usecase.ItemInput, bool) {
	var payload request.ItemRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondInvalidPayload(c, "bid", err)
		return usecase.ItemInput{}, false
	}
	in, err := payload.ToInput()
	if err != nil {
		respondError(c, "bid", err)
		return usecase.ItemInput{}, false
	}
	return in, true
}
