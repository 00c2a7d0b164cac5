package repository

import (
	"context"
	"testing"
	"time"

	"assessoria_licitacoes/internal/domain/entities"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	// every pooled connection would get its own :memory: database
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("sql db: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	if err := AutoMigrate(db); err != nil {
		t.Fatalf("migrate test db: %v", err)
	}
	return db
}

func TestBidGormRepository(t *testing.T) {
	db := openTestDB(t)
	repo := NewBidGormRepository(db)
	repo.now = func() time.Time { return repoT0.Add(time.Minute) }
	ctx := context.Background()

	none, err := repo.Get(ctx, "bid-1")
	if err != nil || none.ID != "" {
		t.Fatalf("expected zero bid, got %+v err=%v", none, err)
	}

	if _, err := repo.Create(ctx, sampleBid()); err != nil {
		t.Fatalf("Create: %v", err)
	}

	got, err := repo.Get(ctx, "bid-1")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.Numero != "PE 12/2025" || len(got.ItensProposta) != 1 || got.DisputaLog != nil {
		t.Fatalf("unexpected bid: %+v", got)
	}

	start := repoT0
	status := entities.BidStatusEmDisputa
	log := entities.DisputeLog{IniciadaEm: &start, Mensagens: []entities.DisputeMessage{{ID: "m1", Texto: "lance"}}}
	updated, err := repo.Patch(ctx, "bid-1", entities.BidPatch{Status: &status, DisputaLog: &log})
	if err != nil {
		t.Fatalf("Patch: %v", err)
	}
	if updated.Status != entities.BidStatusEmDisputa || !updated.UpdatedAt.Equal(repoT0.Add(time.Minute)) {
		t.Fatalf("unexpected patched bid: %+v", updated)
	}

	reloaded, err := repo.Get(ctx, "bid-1")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if reloaded.DisputaLog == nil || !reloaded.DisputaLog.IniciadaEm.Equal(repoT0) || reloaded.DisputaLog.Mensagens[0].Texto != "lance" {
		t.Fatalf("dispute log must round-trip: %+v", reloaded.DisputaLog)
	}
	if *reloaded.ValorReferenciaEdital != 10000 || reloaded.ClienteNome != "ACME" {
		t.Fatalf("untouched fields must be kept: %+v", reloaded)
	}

	missing, err := repo.Patch(ctx, "bid-9", entities.BidPatch{Status: &status})
	if err != nil || missing.ID != "" {
		t.Fatalf("missing bid must yield zero value, got %+v err=%v", missing, err)
	}

	repo.now = func() time.Time { return repoT0.Add(time.Hour) }
	same, err := repo.Patch(ctx, "bid-1", entities.BidPatch{})
	if err != nil || !same.UpdatedAt.Equal(repoT0.Add(time.Minute)) {
		t.Fatalf("empty patch must not touch the row, got %+v err=%v", same, err)
	}

	all, err := repo.List(ctx)
	if err != nil || len(all) != 1 {
		t.Fatalf("List: err=%v len=%d", err, len(all))
	}
}

func TestDebitGormRepository(t *testing.T) {
	db := openTestDB(t)
	repo := NewDebitGormRepository(db)
	ctx := context.Background()

	d := entities.Debit{ID: "deb-1", LicitacaoID: "bid-1", Valor: 1500, Status: entities.DebitStatusPendente, CreatedAt: repoT0, UpdatedAt: repoT0}
	if _, err := repo.Create(ctx, d); err != nil {
		t.Fatalf("Create: %v", err)
	}
	d.ID = "deb-2"
	if _, err := repo.Create(ctx, d); err == nil {
		t.Fatalf("second debit for the same licitacao must be rejected")
	}

	byBid, err := repo.GetByBidID(ctx, "bid-1")
	if err != nil || byBid.ID != "deb-1" {
		t.Fatalf("GetByBidID: %+v err=%v", byBid, err)
	}

	paid, err := repo.UpdateStatus(ctx, "deb-1", entities.DebitStatusPago, "pay-1")
	if err != nil || paid.Status != entities.DebitStatusPago || paid.ProviderPaymentID != "pay-1" {
		t.Fatalf("UpdateStatus: %+v err=%v", paid, err)
	}

	missing, err := repo.UpdateStatus(ctx, "deb-9", entities.DebitStatusPago, "")
	if err != nil || missing.ID != "" {
		t.Fatalf("missing debit must yield zero value, got %+v err=%v", missing, err)
	}
}
