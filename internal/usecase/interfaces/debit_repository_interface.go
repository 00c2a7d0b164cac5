package interfaces

import (
	"context"

	"assessoria_licitacoes/internal/domain/entities"
)

//go:generate mockgen -source=debit_repository_interface.go -destination=mocks/debit_repository_interface_mock.go -package=mock_interfaces

// IDebitRepository persists the advisory-fee debits created on homologation.

type IDebitRepository interface {
	Create(ctx context.Context, d entities.Debit) (entities.Debit, error)
	GetByID(ctx context.Context, id string) (entities.Debit, error)
	GetByBidID(ctx context.Context, bidID string) (entities.Debit, error)
	UpdateStatus(ctx context.Context, id string, status entities.DebitStatus, providerPaymentID string) (entities.Debit, error)
}
