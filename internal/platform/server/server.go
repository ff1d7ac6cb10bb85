package server

import (
	"context"
	"errors"
	"fmt"
	"net"

	assignmentpb "github.com/ogurasousui/assignment-grpc-clean-arch/internal/adapters/grpc/gen/assignment/v1"
	"github.com/ogurasousui/assignment-grpc-clean-arch/internal/adapters/grpc/handler"
	"github.com/ogurasousui/assignment-grpc-clean-arch/internal/core/delegation"
	"github.com/ogurasousui/assignment-grpc-clean-arch/internal/core/directory"
	"github.com/ogurasousui/assignment-grpc-clean-arch/internal/core/transfer"
	"google.golang.org/grpc"
)

// Server は gRPC サーバーのライフサイクルを管理します。
type Server struct {
	listenAddr string
	grpcServer *grpc.Server
}

// New は指定されたアドレスで待ち受ける gRPC サーバーを構築します。
// warnDays は委任応答の expiring_soon 判定に使うしきい値です。
func New(listenAddr string, delegations delegation.UseCase, transfers transfer.UseCase, dir directory.UseCase, warnDays int, opts ...grpc.ServerOption) *Server {
	srv := grpc.NewServer(opts...)
	assignmentpb.RegisterDelegationServiceServer(srv, handler.NewDelegationGrpcHandler(delegations, nil, warnDays))
	assignmentpb.RegisterTransferServiceServer(srv, handler.NewTransferGrpcHandler(transfers, nil))
	assignmentpb.RegisterDirectoryServiceServer(srv, handler.NewDirectoryGrpcHandler(dir))

	return &Server{
		listenAddr: listenAddr,
		grpcServer: srv,
	}
}

// Run はサーバーを起動し、コンテキストがキャンセルされると GracefulStop します。
func (s *Server) Run(ctx context.Context) error {
	lis, err := net.Listen("tcp", s.listenAddr)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", s.listenAddr, err)
	}

	go func() {
		<-ctx.Done()
		s.grpcServer.GracefulStop()
	}()

	if err := s.grpcServer.Serve(lis); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
		return fmt.Errorf("serve gRPC: %w", err)
	}

	return nil
}

// GracefulStop はサーバーを安全に停止します。
func (s *Server) GracefulStop() {
	s.grpcServer.GracefulStop()
}
