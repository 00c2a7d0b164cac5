package payments

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"assessoria_licitacoes/internal/usecase/interfaces"
	"assessoria_licitacoes/pkg/logger"

	"github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/payment"
)

var ErrMissingMercadoPagoAccessToken = errors.New("missing MERCADOPAGO_ACCESS_TOKEN")
var ErrMercadoPagoGatewayNotConfigured = errors.New("mercado pago gateway not configured")

// paymentCreator is the part of the SDK payment client the gateway uses.
type paymentCreator interface {
	Create(ctx context.Context, request payment.Request) (*payment.Response, error)
}

// MercadoPagoGateway charges advisory-fee debits through Mercado Pago.
// Mock mode is handled by the debit use case, which then never calls the gateway.
type MercadoPagoGateway struct {
	client paymentCreator
}

var _ interfaces.IPaymentGateway = (*MercadoPagoGateway)(nil)

func NewMercadoPagoGateway(ctx context.Context, accessToken string) (*MercadoPagoGateway, error) {
	if accessToken == "" {
		logger.Warn(ctx, "[debit][gateway] missing MERCADOPAGO_ACCESS_TOKEN")
		return nil, ErrMissingMercadoPagoAccessToken
	}

	cfg, err := config.New(accessToken)
	if err != nil {
		logger.Error(ctx, "[debit][gateway] failed creating sdk config", "err", err)
		return nil, err
	}
	logger.Info(ctx, "[debit][gateway] Mercado Pago client initialized")

	return &MercadoPagoGateway{client: payment.NewClient(cfg)}, nil
}

func (g *MercadoPagoGateway) CreatePayment(ctx context.Context, requestPayload json.RawMessage) (string, string, json.RawMessage, error) {
	if g == nil || g.client == nil {
		logger.Error(ctx, "[debit][gateway] gateway not configured")
		return "", "", nil, ErrMercadoPagoGatewayNotConfigured
	}
	logger.Debug(ctx, "[debit][gateway] create start", "payload_len", len(requestPayload))

	var req payment.Request
	if err := json.Unmarshal(requestPayload, &req); err != nil {
		logger.Warn(ctx, "[debit][gateway] payload unmarshal failed", "err", err)
		return "", "", nil, err
	}

	resp, err := g.client.Create(ctx, req)
	if err != nil {
		logger.Warn(ctx, "[debit][gateway] sdk create failed", "err", err)
		return "", "", nil, err
	}

	raw, err := json.Marshal(resp)
	if err != nil {
		logger.Error(ctx, "[debit][gateway] response marshal failed", "err", err)
		return "", "", nil, err
	}

	id := fmt.Sprintf("%d", resp.ID)
	logger.Info(ctx, "[debit][gateway] create success", "provider_payment_id", id, "provider_status", resp.Status)
	return id, resp.Status, raw, nil
}
