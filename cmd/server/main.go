package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	repo "github.com/ogurasousui/assignment-grpc-clean-arch/internal/adapters/repository/postgres"
	"github.com/ogurasousui/assignment-grpc-clean-arch/internal/core/delegation"
	"github.com/ogurasousui/assignment-grpc-clean-arch/internal/core/directory"
	"github.com/ogurasousui/assignment-grpc-clean-arch/internal/core/transfer"
	"github.com/ogurasousui/assignment-grpc-clean-arch/internal/platform/config"
	pg "github.com/ogurasousui/assignment-grpc-clean-arch/internal/platform/db/postgres"
	"github.com/ogurasousui/assignment-grpc-clean-arch/internal/platform/server"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "assets/local.yaml"
	}

	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	dbPool, err := pg.NewPool(ctx, cfg.Database)
	if err != nil {
		log.Fatalf("failed to initialize database pool: %v", err)
	}
	defer dbPool.Close()

	txManager := pg.NewTransactionManager(dbPool)

	directoryRepo := repo.NewDirectoryRepository(dbPool)
	delegationRepo := repo.NewDelegationRepository(dbPool)
	transferRepo := repo.NewTransferRepository(dbPool)

	directorySvc := directory.NewService(directoryRepo, nil, txManager)
	delegationSvc := delegation.NewService(delegationRepo, directoryRepo, transferRepo, nil, txManager, delegation.Limits{
		MinDays:       cfg.Assignment.MinDelegationDays,
		MaxDays:       cfg.Assignment.MaxDelegationDays,
		WarnDays:      cfg.Assignment.ExpiryWarnDays,
		MaxExtensions: cfg.Assignment.MaxExtensions,
	})
	transferSvc := transfer.NewService(transferRepo, directoryRepo, delegationRepo, nil, txManager, transfer.Limits{
		MaxDays: cfg.Assignment.MaxTransferDays,
	})

	grpcServer := server.New(cfg.Server.ListenAddr, delegationSvc, transferSvc, directorySvc, cfg.Assignment.ExpiryWarnDays)

	log.Printf("gRPC server listening on %s", cfg.Server.ListenAddr)

	if err := grpcServer.Run(ctx); err != nil {
		log.Fatalf("server stopped with error: %v", err)
	}
}
