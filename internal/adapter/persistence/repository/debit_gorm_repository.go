package repository

import (
	"context"
	"errors"
	"time"

	"assessoria_licitacoes/internal/domain/entities"
	"assessoria_licitacoes/internal/usecase/interfaces"

	"gorm.io/gorm"
)

// DebitGormRepository persists debits through GORM. licitacao_id is unique, so a second debit
// for the same licitação is rejected by the database.
type DebitGormRepository struct {
	db  *gorm.DB
	now func() time.Time
}

var _ interfaces.IDebitRepository = (*DebitGormRepository)(nil)

func NewDebitGormRepository(db *gorm.DB) *DebitGormRepository {
	return &DebitGormRepository{db: db, now: func() time.Time { return time.Now().UTC() }}
}

func (r *DebitGormRepository) Create(ctx context.Context, d entities.Debit) (entities.Debit, error) {
	row := toDebitRow(d)
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return entities.Debit{}, err
	}
	return d, nil
}

func (r *DebitGormRepository) GetByID(ctx context.Context, id string) (entities.Debit, error) {
	return r.first(ctx, "id = ?", id)
}

func (r *DebitGormRepository) GetByBidID(ctx context.Context, bidID string) (entities.Debit, error) {
	return r.first(ctx, "licitacao_id = ?", bidID)
}

func (r *DebitGormRepository) UpdateStatus(ctx context.Context, id string, status entities.DebitStatus, providerPaymentID string) (entities.Debit, error) {
	updates := map[string]any{
		"status":     string(status),
		"updated_at": r.now(),
	}
	if providerPaymentID != "" {
		updates["provider_payment_id"] = providerPaymentID
	}

	res := r.db.WithContext(ctx).Model(&debitRow{}).Where("id = ?", id).Updates(updates)
	if res.Error != nil {
		return entities.Debit{}, res.Error
	}
	if res.RowsAffected == 0 {
		return entities.Debit{}, nil
	}
	return r.GetByID(ctx, id)
}

func (r *DebitGormRepository) first(ctx context.Context, query string, arg string) (entities.Debit, error) {
	var row debitRow
	err := r.db.WithContext(ctx).Where(query, arg).Take(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return entities.Debit{}, nil
	}
	if err != nil {
		return entities.Debit{}, err
	}
	return fromDebitRow(row), nil
}
