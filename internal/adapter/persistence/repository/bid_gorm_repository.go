package repository

import (
	"context"
	"errors"
	"time"

	"assessoria_licitacoes/internal/domain/entities"
	"assessoria_licitacoes/internal/usecase/interfaces"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// BidGormRepository persists licitações in MySQL or SQLite through GORM.
type BidGormRepository struct {
	db  *gorm.DB
	now func() time.Time
}

var _ interfaces.IBidRepository = (*BidGormRepository)(nil)

func NewBidGormRepository(db *gorm.DB) *BidGormRepository {
	return &BidGormRepository{db: db, now: func() time.Time { return time.Now().UTC() }}
}

func (r *BidGormRepository) Create(ctx context.Context, b entities.Bid) (entities.Bid, error) {
	row := toBidRow(b)
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return entities.Bid{}, err
	}
	return b, nil
}

func (r *BidGormRepository) Get(ctx context.Context, id string) (entities.Bid, error) {
	var row bidRow
	err := r.db.WithContext(ctx).Where("id = ?", id).Take(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return entities.Bid{}, nil
	}
	if err != nil {
		return entities.Bid{}, err
	}
	return fromBidRow(row), nil
}

func (r *BidGormRepository) List(ctx context.Context) ([]entities.Bid, error) {
	var rows []bidRow
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&rows).Error; err != nil {
		return nil, err
	}
	bids := make([]entities.Bid, 0, len(rows))
	for _, row := range rows {
		bids = append(bids, fromBidRow(row))
	}
	return bids, nil
}

// Patch reads, applies and saves the row inside one transaction. On MySQL the read takes a
// row lock; SQLite serializes writers on its own. An empty patch is a plain read.
func (r *BidGormRepository) Patch(ctx context.Context, id string, patch entities.BidPatch) (entities.Bid, error) {
	if patch.IsEmpty() {
		return r.Get(ctx, id)
	}
	var out entities.Bid
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var row bidRow
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).Where("id = ?", id).Take(&row).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		if err != nil {
			return err
		}

		updated := patch.Apply(fromBidRow(row), r.now())
		next := toBidRow(updated)
		if err := tx.Save(&next).Error; err != nil {
			return err
		}
		out = updated
		return nil
	})
	if err != nil {
		return entities.Bid{}, err
	}
	return out, nil
}
