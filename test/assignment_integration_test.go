//go:build integration

package integration

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	repo "github.com/ogurasousui/assignment-grpc-clean-arch/internal/adapters/repository/postgres"
	"github.com/ogurasousui/assignment-grpc-clean-arch/internal/core/delegation"
	"github.com/ogurasousui/assignment-grpc-clean-arch/internal/core/transfer"
	"github.com/ogurasousui/assignment-grpc-clean-arch/internal/platform/config"
	pg "github.com/ogurasousui/assignment-grpc-clean-arch/internal/platform/db/postgres"
)

const (
	migrationsDir = "assets/migrations"
	seedsDir      = "assets/seeds"
)

// シードデータの emp-1 (store-a / zone-1) を使い、委任と異動の
// ライフサイクル全体を実データベース上で通します。
func TestAssignmentWorkflowIntegration(t *testing.T) {
	t.Parallel()

	cfgPath := configPathFromEnv()
	cfg, err := config.Load(cfgPath)
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if err := resetMigrations(cfg.Database.DSN(), migrationsDir); err != nil {
		t.Fatalf("failed to migrate database: %v", err)
	}

	if err := applySeeds(cfg.Database.DSN(), seedsDir); err != nil {
		t.Fatalf("failed to apply seeds: %v", err)
	}

	ctx := context.Background()
	pool, err := pg.NewPool(ctx, cfg.Database)
	if err != nil {
		t.Fatalf("failed to create pool: %v", err)
	}
	t.Cleanup(func() { pool.Close() })

	txManager := pg.NewTransactionManager(pool)
	directoryRepo := repo.NewDirectoryRepository(pool)
	delegationRepo := repo.NewDelegationRepository(pool)
	transferRepo := repo.NewTransferRepository(pool)

	now := time.Now().UTC()
	clock := stubClock{now: now}
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	delegationSvc := delegation.NewService(delegationRepo, directoryRepo, transferRepo, clock, txManager, delegation.DefaultLimits)
	transferSvc := transfer.NewService(transferRepo, directoryRepo, delegationRepo, clock, txManager, transfer.DefaultLimits)

	// 店舗マネージャが自店舗の従業員を同エリアの店舗へ貸し出す。
	created, err := delegationSvc.Create(ctx, delegation.CreateInput{
		ActorID:    "mgr-a",
		EmployeeID: "emp-1",
		ToStoreID:  "store-b",
		ValidFrom:  today,
		ValidUntil: today.AddDate(0, 0, 7),
	})
	if err != nil {
		t.Fatalf("Create delegation error: %v", err)
	}
	if created.Status != delegation.StatusActive {
		t.Fatalf("expected active delegation, got %s", created.Status)
	}

	// 委任中の従業員は異動を申請できない。
	if _, err := transferSvc.Create(ctx, transfer.CreateInput{
		ActorID:      "hr-1",
		EmployeeID:   "emp-1",
		ToStoreID:    "store-c",
		TransferDate: today,
	}); !errors.Is(err, transfer.ErrDelegationActive) {
		t.Fatalf("expected ErrDelegationActive, got %v", err)
	}

	// 受け入れ店舗のマネージャが委任を取り消す。
	revoked, err := delegationSvc.Revoke(ctx, created.ID, "mgr-b")
	if err != nil {
		t.Fatalf("Revoke delegation error: %v", err)
	}
	if revoked.Status != delegation.StatusRevoked {
		t.Fatalf("expected revoked delegation, got %s", revoked.Status)
	}

	// 委任が消えたので異動を申請し、承認から完了まで進める。
	requested, err := transferSvc.Create(ctx, transfer.CreateInput{
		ActorID:      "hr-1",
		EmployeeID:   "emp-1",
		ToStoreID:    "store-c",
		TransferDate: today,
	})
	if err != nil {
		t.Fatalf("Create transfer error: %v", err)
	}

	if _, err := transferSvc.Approve(ctx, requested.ID, "asm-1"); err != nil {
		t.Fatalf("Approve transfer error: %v", err)
	}

	completed, err := transferSvc.Complete(ctx, requested.ID)
	if err != nil {
		t.Fatalf("Complete transfer error: %v", err)
	}
	if completed.Status != transfer.StatusCompleted {
		t.Fatalf("expected completed transfer, got %s", completed.Status)
	}

	emp, err := directoryRepo.FindEmployee(ctx, "emp-1")
	if err != nil {
		t.Fatalf("FindEmployee error: %v", err)
	}
	if emp.StoreID != "store-c" || emp.ZoneID != "zone-2" {
		t.Fatalf("expected employee at store-c/zone-2, got %s/%s", emp.StoreID, emp.ZoneID)
	}

	// 完了済みの異動は監査証跡として残る。
	history, err := transferSvc.ListByEmployee(ctx, "emp-1")
	if err != nil {
		t.Fatalf("ListByEmployee error: %v", err)
	}
	if len(history) != 1 || history[0].Status != transfer.StatusCompleted {
		t.Fatalf("unexpected transfer history: %+v", history)
	}
}

func resetMigrations(dsn, dir string) error {
	m, err := migrate.New("file://"+dir, dsn)
	if err != nil {
		return err
	}
	defer m.Close()

	if err := m.Down(); err != nil && err != migrate.ErrNoChange {
		return err
	}
	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		return err
	}
	return nil
}

func applySeeds(dsn, dir string) error {
	if _, err := os.Stat(dir); errors.Is(err, os.ErrNotExist) {
		return nil
	}

	m, err := migrate.New("file://"+dir, dsn)
	if err != nil {
		return err
	}
	defer m.Close()

	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		return err
	}
	return nil
}

func configPathFromEnv() string {
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		return v
	}
	return "assets/local.yaml"
}

type stubClock struct {
	now time.Time
}

func (s stubClock) Now() time.Time {
	return s.now
}
