package routes

import (
	"context"
	"fmt"

	"assessoria_licitacoes/internal/adapter/http/handlers"
	"assessoria_licitacoes/internal/adapter/persistence/repository"
	"assessoria_licitacoes/internal/infrastructure/config"
	"assessoria_licitacoes/internal/infrastructure/database"
	"assessoria_licitacoes/internal/infrastructure/documents"
	"assessoria_licitacoes/internal/infrastructure/payments"
	"assessoria_licitacoes/internal/usecase"
	"assessoria_licitacoes/internal/usecase/interfaces"
	"assessoria_licitacoes/pkg/clock"
	"assessoria_licitacoes/pkg/logger"

	"gorm.io/gorm"
)

// Stores are the repositories selected by cfg.Store.Driver.
type Stores struct {
	Bids   interfaces.IBidRepository
	Debits interfaces.IDebitRepository
	close  func() error
}

// Close releases the underlying connection, if any.
func (s Stores) Close() error {
	if s.close == nil {
		return nil
	}
	return s.close()
}

// OpenStores connects the configured backend. The relational drivers are migrated on open.
func OpenStores(ctx context.Context, cfg config.StoreConfig) (Stores, error) {
	switch cfg.Driver {
	case config.StoreMySQL:
		db, err := database.ConnectMySQL(cfg.MySQLDSN)
		if err != nil {
			return Stores{}, err
		}
		return gormStores(db)
	case config.StoreSQLite:
		db, err := database.ConnectSQLite(cfg.SQLitePath)
		if err != nil {
			return Stores{}, err
		}
		return gormStores(db)
	default:
		ddb, err := database.ConnectDynamoDB(ctx)
		if err != nil {
			return Stores{}, err
		}
		return Stores{
			Bids:   repository.NewBidDynamoRepository(ddb),
			Debits: repository.NewDebitDynamoRepository(ddb),
		}, nil
	}
}

func gormStores(db *gorm.DB) (Stores, error) {
	if err := repository.AutoMigrate(db); err != nil {
		return Stores{}, err
	}
	sqlDB, err := db.DB()
	if err != nil {
		return Stores{}, fmt.Errorf("routes: sql handle: %w", err)
	}
	return Stores{
		Bids:   repository.NewBidGormRepository(db),
		Debits: repository.NewDebitGormRepository(db),
		close:  sqlDB.Close,
	}, nil
}

// NewDocumentEmitter returns nil when emission is disabled; finalizing then concludes the
// dispute without documents and the documents route answers SERVICE_UNAVAILABLE.
func NewDocumentEmitter(ctx context.Context, cfg config.MinioConfig) (interfaces.IDocumentEmitter, error) {
	if cfg.Disabled || cfg.Endpoint == "" {
		logger.Warn(ctx, "[bootstrap] document emission disabled")
		return nil, nil
	}
	storage, err := documents.NewMinioStorage(cfg)
	if err != nil {
		return nil, err
	}
	if err := storage.EnsureBucket(ctx); err != nil {
		return nil, err
	}
	return documents.NewPDFEmitter(storage), nil
}

// NewPaymentGateway returns nil in mock mode or when no token is set; charging then either
// simulates approval or answers SERVICE_UNAVAILABLE.
func NewPaymentGateway(ctx context.Context, cfg config.PaymentsConfig) interfaces.IPaymentGateway {
	if cfg.Mock {
		logger.Warn(ctx, "[bootstrap] payment gateway in mock mode")
		return nil
	}
	gw, err := payments.NewMercadoPagoGateway(ctx, cfg.MercadoPagoAccessToken)
	if err != nil {
		logger.Warn(ctx, "[bootstrap] Mercado Pago gateway not configured", "err", err)
		return nil
	}
	return gw
}

// Build wires stores, use cases and handlers for cfg.
func Build(ctx context.Context, cfg *config.Config) (Handlers, Stores, error) {
	stores, err := OpenStores(ctx, cfg.Store)
	if err != nil {
		return Handlers{}, Stores{}, err
	}
	emitter, err := NewDocumentEmitter(ctx, cfg.Minio)
	if err != nil {
		_ = stores.Close()
		return Handlers{}, Stores{}, err
	}
	gateway := NewPaymentGateway(ctx, cfg.Payments)
	clk := clock.NewReal()

	bidUseCase := usecase.NewBidUseCase(stores.Bids, clk)
	disputeUseCase := usecase.NewDisputeUseCase(stores.Bids, emitter, cfg.CompanyIdentity(), clk)
	debitUseCase := usecase.NewDebitUseCase(stores.Debits, stores.Bids, gateway, clk, usecase.WithPaymentMock(cfg.Payments.Mock))

	logger.Info(ctx, "[bootstrap] wired", "store", cfg.Store.Driver, "documents", emitter != nil, "payments", gateway != nil)
	return Handlers{
		Bid:     handlers.NewBidHandler(bidUseCase),
		Dispute: handlers.NewDisputeHandler(disputeUseCase),
		Debit:   handlers.NewDebitHandler(debitUseCase),
	}, stores, nil
}
