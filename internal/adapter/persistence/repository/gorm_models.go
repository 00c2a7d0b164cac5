package repository

import (
	"fmt"
	"time"

	"assessoria_licitacoes/internal/domain/entities"

	"gorm.io/gorm"
)

// bidRow is the relational shape of a licitação. Nested dispute state is stored as JSON
// columns so a patch stays a single-row write.
type bidRow struct {
	ID          string `gorm:"primaryKey;size:36"`
	Numero      string `gorm:"size:64;index"`
	ClienteID   string `gorm:"size:64;index"`
	ClienteNome string `gorm:"size:255"`
	Orgao       string `gorm:"size:255"`
	Objeto      string `gorm:"type:text"`
	Modalidade  string `gorm:"size:64"`
	Status      string `gorm:"size:32;index"`

	ValorCobrado          float64
	ValorReferenciaEdital *float64

	ItensProposta            []entities.ProposalItem `gorm:"serializer:json;type:text"`
	DisputaConfig            *entities.DisputeConfig `gorm:"serializer:json;type:text"`
	DisputaLog               *entities.DisputeLog    `gorm:"serializer:json;type:text"`
	ObservacoesPropostaFinal string                  `gorm:"type:text"`

	CreatedAt time.Time
	UpdatedAt time.Time `gorm:"autoUpdateTime:false"`
}

func (bidRow) TableName() string { return "licitacoes" }

type debitRow struct {
	ID                string `gorm:"primaryKey;size:36"`
	LicitacaoID       string `gorm:"size:36;uniqueIndex"`
	ClienteID         string `gorm:"size:64"`
	ClienteNome       string `gorm:"size:255"`
	Descricao         string `gorm:"size:255"`
	Valor             float64
	Status            string `gorm:"size:16"`
	ProviderPaymentID string `gorm:"size:64"`
	CreatedAt         time.Time
	UpdatedAt         time.Time `gorm:"autoUpdateTime:false"`
}

func (debitRow) TableName() string { return "debitos" }

// AutoMigrate creates or updates the relational tables.
func AutoMigrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&bidRow{}, &debitRow{}); err != nil {
		return fmt.Errorf("repository: auto-migrate: %w", err)
	}
	return nil
}

func toBidRow(b entities.Bid) bidRow {
	return bidRow{
		ID:                       b.ID,
		Numero:                   b.Numero,
		ClienteID:                b.ClienteID,
		ClienteNome:              b.ClienteNome,
		Orgao:                    b.Orgao,
		Objeto:                   b.Objeto,
		Modalidade:               b.Modalidade,
		Status:                   string(b.Status),
		ValorCobrado:             b.ValorCobrado,
		ValorReferenciaEdital:    b.ValorReferenciaEdital,
		ItensProposta:            b.ItensProposta,
		DisputaConfig:            b.DisputaConfig,
		DisputaLog:               b.DisputaLog,
		ObservacoesPropostaFinal: b.ObservacoesPropostaFinal,
		CreatedAt:                b.CreatedAt.UTC(),
		UpdatedAt:                b.UpdatedAt.UTC(),
	}
}

func fromBidRow(r bidRow) entities.Bid {
	items := r.ItensProposta
	if items == nil {
		items = []entities.ProposalItem{}
	}
	return entities.Bid{
		ID:                       r.ID,
		Numero:                   r.Numero,
		ClienteID:                r.ClienteID,
		ClienteNome:              r.ClienteNome,
		Orgao:                    r.Orgao,
		Objeto:                   r.Objeto,
		Modalidade:               r.Modalidade,
		Status:                   entities.BidStatus(r.Status),
		ValorCobrado:             r.ValorCobrado,
		ValorReferenciaEdital:    r.ValorReferenciaEdital,
		ItensProposta:            items,
		DisputaConfig:            r.DisputaConfig,
		DisputaLog:               r.DisputaLog,
		ObservacoesPropostaFinal: r.ObservacoesPropostaFinal,
		CreatedAt:                r.CreatedAt.UTC(),
		UpdatedAt:                r.UpdatedAt.UTC(),
	}
}

func toDebitRow(d entities.Debit) debitRow {
	return debitRow{
		ID:                d.ID,
		LicitacaoID:       d.LicitacaoID,
		ClienteID:         d.ClienteID,
		ClienteNome:       d.ClienteNome,
		Descricao:         d.Descricao,
		Valor:             d.Valor,
		Status:            string(d.Status),
		ProviderPaymentID: d.ProviderPaymentID,
		CreatedAt:         d.CreatedAt.UTC(),
		UpdatedAt:         d.UpdatedAt.UTC(),
	}
}

func fromDebitRow(r debitRow) entities.Debit {
	return entities.Debit{
		ID:                r.ID,
		LicitacaoID:       r.LicitacaoID,
		ClienteID:         r.ClienteID,
		ClienteNome:       r.ClienteNome,
		Descricao:         r.Descricao,
		Valor:             r.Valor,
		Status:            entities.DebitStatus(r.Status),
		ProviderPaymentID: r.ProviderPaymentID,
		CreatedAt:         r.CreatedAt.UTC(),
		UpdatedAt:         r.UpdatedAt.UTC(),
	}
}
