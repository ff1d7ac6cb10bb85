package handler

import (
	"context"

	assignmentpb "github.com/ogurasousui/assignment-grpc-clean-arch/internal/adapters/grpc/gen/assignment/v1"
	"github.com/ogurasousui/assignment-grpc-clean-arch/internal/core/directory"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/timestamppb"
)

// DirectoryGrpcHandler は DirectoryService の gRPC 実装です。
type DirectoryGrpcHandler struct {
	svc directory.UseCase
	assignmentpb.UnimplementedDirectoryServiceServer
}

// NewDirectoryGrpcHandler は DirectoryGrpcHandler を生成します。
func NewDirectoryGrpcHandler(svc directory.UseCase) *DirectoryGrpcHandler {
	return &DirectoryGrpcHandler{svc: svc}
}

// GetEmployee は従業員の所属スナップショットを取得します。
func (h *DirectoryGrpcHandler) GetEmployee(ctx context.Context, req *assignmentpb.GetEmployeeRequest) (*assignmentpb.GetEmployeeResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	found, err := h.svc.GetEmployee(ctx, req.GetId())
	if err != nil {
		return nil, toStatusError(err)
	}

	return &assignmentpb.GetEmployeeResponse{Employee: toProtoEmployee(found)}, nil
}

// CorrectEmployeeStore は HR による従業員所属の管理的修正です。
func (h *DirectoryGrpcHandler) CorrectEmployeeStore(ctx context.Context, req *assignmentpb.CorrectEmployeeStoreRequest) (*assignmentpb.CorrectEmployeeStoreResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	corrected, err := h.svc.CorrectEmployeeStore(ctx, directory.CorrectEmployeeStoreInput{
		ActorID:         req.GetActorId(),
		EmployeeID:      req.GetEmployeeId(),
		ExpectedStoreID: req.GetExpectedStoreId(),
		NewStoreID:      req.GetNewStoreId(),
	})
	if err != nil {
		return nil, toStatusError(err)
	}

	return &assignmentpb.CorrectEmployeeStoreResponse{Employee: toProtoEmployee(corrected)}, nil
}

func toProtoEmployee(emp *directory.Employee) *assignmentpb.Employee {
	if emp == nil {
		return nil
	}

	return &assignmentpb.Employee{
		Id:        emp.ID,
		StoreId:   emp.StoreID,
		ZoneId:    emp.ZoneID,
		Status:    string(emp.Status),
		CreatedAt: timestamppb.New(emp.CreatedAt),
		UpdatedAt: timestamppb.New(emp.UpdatedAt),
	}
}
