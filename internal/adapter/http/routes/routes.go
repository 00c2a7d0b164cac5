package routes

import (
	"net/http"
	"time"

	_ "assessoria_licitacoes/docs"
	"assessoria_licitacoes/internal/adapter/http/handlers"
	"assessoria_licitacoes/internal/adapter/http/middleware"
	"assessoria_licitacoes/internal/infrastructure/config"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

const (
	PathLicitacoes = "/licitacoes"
	PathDisputa    = "/disputa"
	PathDebitos    = "/debitos"
)

// Handlers groups the HTTP handlers mounted under /v1.
type Handlers struct {
	Bid     *handlers.BidHandler
	Dispute *handlers.DisputeHandler
	Debit   *handlers.DebitHandler
}

// NewRouter builds the gin engine: middleware chain, swagger UI, health ping and the protected
// licitação routes.
func NewRouter(cfg *config.Config, h Handlers) *gin.Engine {
	router := gin.New()
	router.Use(middleware.RequestID())
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestLogger())

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := router.Group("/v1")
	addPingRoutes(v1)

	protected := v1.Group("")
	protected.Use(middleware.AuthMiddleware(cfg.Auth))
	addBidRoutes(protected, h.Bid)
	addDisputeRoutes(protected, h.Dispute)
	addDebitRoutes(protected, h.Debit)

	return router
}

func addPingRoutes(rg *gin.RouterGroup) {
	rg.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "ok",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
	})
}

func addBidRoutes(rg *gin.RouterGroup, h *handlers.BidHandler) {
	bids := rg.Group(PathLicitacoes)
	{
		bids.POST("", h.Create)
		bids.GET("", h.List)
		bids.GET("/:id", h.Get)
		bids.PATCH("/:id/aguardando-disputa", h.MarkAwaitingDispute)
		bids.POST("/:id/itens", h.AddItem)
		bids.PUT("/:id/itens/:item_id", h.UpdateItem)
		bids.DELETE("/:id/itens/:item_id", h.RemoveItem)
	}
}

func addDisputeRoutes(rg *gin.RouterGroup, h *handlers.DisputeHandler) {
	rg.POST(PathDisputa+"/limite", h.PreviewCeiling)

	room := rg.Group(PathLicitacoes + "/:id" + PathDisputa)
	{
		room.GET("", h.GetSession)
		room.PUT("/config", h.Configure)
		room.POST("/iniciar", h.Start)
		room.POST("/mensagens", h.AppendMessage)
		room.POST("/finalizar", h.Finalize)
		room.PUT("/resultado", h.AmendOutcome)
		room.GET("/tempo", h.StreamElapsed)
		room.GET("/documentos", h.Documents)
		room.DELETE("/sessao", h.Leave)
	}
}

func addDebitRoutes(rg *gin.RouterGroup, h *handlers.DebitHandler) {
	rg.POST(PathLicitacoes+"/:id/homologar", h.Homologate)
	rg.GET(PathLicitacoes+"/:id/debito", h.GetByBid)

	debits := rg.Group(PathDebitos)
	{
		debits.GET("/:debit_id", h.GetDebit)
		debits.POST("/:debit_id/pagamento", h.Charge)
	}
}
