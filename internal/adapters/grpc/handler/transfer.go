package handler

import (
	"context"
	"fmt"
	"time"

	assignmentpb "github.com/ogurasousui/assignment-grpc-clean-arch/internal/adapters/grpc/gen/assignment/v1"
	"github.com/ogurasousui/assignment-grpc-clean-arch/internal/core/transfer"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/timestamppb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

// TransferGrpcHandler は TransferService の gRPC 実装です。
type TransferGrpcHandler struct {
	svc   transfer.UseCase
	clock func() time.Time
	assignmentpb.UnimplementedTransferServiceServer
}

// NewTransferGrpcHandler は TransferGrpcHandler を生成します。
// clock は overdue 分類に使われ、nil の場合は time.Now です。
func NewTransferGrpcHandler(svc transfer.UseCase, clock func() time.Time) *TransferGrpcHandler {
	if clock == nil {
		clock = func() time.Time { return time.Now().UTC() }
	}
	return &TransferGrpcHandler{svc: svc, clock: clock}
}

// CreateTransfer は異動申請を作成します。
func (h *TransferGrpcHandler) CreateTransfer(ctx context.Context, req *assignmentpb.CreateTransferRequest) (*assignmentpb.CreateTransferResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	transferDate, err := parseDate(req.GetTransferDate())
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, fmt.Sprintf("transfer_date: %v", err))
	}

	created, err := h.svc.Create(ctx, transfer.CreateInput{
		ActorID:      req.GetActorId(),
		EmployeeID:   req.GetEmployeeId(),
		FromStoreID:  req.GetFromStoreId(),
		ToStoreID:    req.GetToStoreId(),
		TransferDate: transferDate,
	})
	if err != nil {
		return nil, toStatusError(err)
	}

	return &assignmentpb.CreateTransferResponse{Transfer: h.toProtoTransfer(created)}, nil
}

// ApproveTransfer は異動を承認します。
func (h *TransferGrpcHandler) ApproveTransfer(ctx context.Context, req *assignmentpb.ApproveTransferRequest) (*assignmentpb.ApproveTransferResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	approved, err := h.svc.Approve(ctx, req.GetId(), req.GetActorId())
	if err != nil {
		return nil, toStatusError(err)
	}

	return &assignmentpb.ApproveTransferResponse{Transfer: h.toProtoTransfer(approved)}, nil
}

// RejectTransfer は異動を却下します。
func (h *TransferGrpcHandler) RejectTransfer(ctx context.Context, req *assignmentpb.RejectTransferRequest) (*assignmentpb.RejectTransferResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	rejected, err := h.svc.Reject(ctx, req.GetId(), req.GetActorId())
	if err != nil {
		return nil, toStatusError(err)
	}

	return &assignmentpb.RejectTransferResponse{Transfer: h.toProtoTransfer(rejected)}, nil
}

// CancelTransfer は申請者による取り下げです。
func (h *TransferGrpcHandler) CancelTransfer(ctx context.Context, req *assignmentpb.CancelTransferRequest) (*assignmentpb.CancelTransferResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	cancelled, err := h.svc.Cancel(ctx, req.GetId(), req.GetActorId())
	if err != nil {
		return nil, toStatusError(err)
	}

	return &assignmentpb.CancelTransferResponse{Transfer: h.toProtoTransfer(cancelled)}, nil
}

// CompleteTransfer は承認済みの異動を実行します。
func (h *TransferGrpcHandler) CompleteTransfer(ctx context.Context, req *assignmentpb.CompleteTransferRequest) (*assignmentpb.CompleteTransferResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	completed, err := h.svc.Complete(ctx, req.GetId())
	if err != nil {
		return nil, toStatusError(err)
	}

	return &assignmentpb.CompleteTransferResponse{Transfer: h.toProtoTransfer(completed)}, nil
}

// GetTransfer は異動を取得します。
func (h *TransferGrpcHandler) GetTransfer(ctx context.Context, req *assignmentpb.GetTransferRequest) (*assignmentpb.GetTransferResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	found, err := h.svc.Get(ctx, req.GetId())
	if err != nil {
		return nil, toStatusError(err)
	}

	return &assignmentpb.GetTransferResponse{Transfer: h.toProtoTransfer(found)}, nil
}

// ListTransfers は従業員の異動履歴を取得します。
func (h *TransferGrpcHandler) ListTransfers(ctx context.Context, req *assignmentpb.ListTransfersRequest) (*assignmentpb.ListTransfersResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	transfers, err := h.svc.ListByEmployee(ctx, req.GetEmployeeId())
	if err != nil {
		return nil, toStatusError(err)
	}

	protoTransfers := make([]*assignmentpb.Transfer, 0, len(transfers))
	for _, t := range transfers {
		protoTransfers = append(protoTransfers, h.toProtoTransfer(t))
	}

	return &assignmentpb.ListTransfersResponse{Transfers: protoTransfers}, nil
}

func (h *TransferGrpcHandler) toProtoTransfer(t *transfer.Transfer) *assignmentpb.Transfer {
	if t == nil {
		return nil
	}

	proto := &assignmentpb.Transfer{
		Id:           t.ID,
		EmployeeId:   t.EmployeeID,
		FromStoreId:  t.FromStoreID,
		FromZoneId:   t.FromZoneID,
		ToStoreId:    t.ToStoreID,
		ToZoneId:     t.ToZoneID,
		InitiatedBy:  t.InitiatedBy,
		TransferDate: t.TransferDate.Format(dateLayout),
		Status:       toProtoTransferStatus(t.Status),
		CreatedAt:    timestamppb.New(t.CreatedAt),
		UpdatedAt:    timestamppb.New(t.UpdatedAt),
		Overdue:      transfer.IsOverdue(t, h.clock()),
	}

	if t.ApprovedBy != nil {
		proto.ApprovedBy = wrapperspb.String(*t.ApprovedBy)
	}
	if t.CompletedAt != nil {
		proto.CompletedAt = timestamppb.New(*t.CompletedAt)
	}

	return proto
}

func toProtoTransferStatus(s transfer.Status) assignmentpb.TransferStatus {
	switch s {
	case transfer.StatusPending:
		return assignmentpb.TransferStatus_TRANSFER_STATUS_PENDING
	case transfer.StatusApproved:
		return assignmentpb.TransferStatus_TRANSFER_STATUS_APPROVED
	case transfer.StatusRejected:
		return assignmentpb.TransferStatus_TRANSFER_STATUS_REJECTED
	case transfer.StatusCompleted:
		return assignmentpb.TransferStatus_TRANSFER_STATUS_COMPLETED
	case transfer.StatusCancelled:
		return assignmentpb.TransferStatus_TRANSFER_STATUS_CANCELLED
	default:
		return assignmentpb.TransferStatus_TRANSFER_STATUS_UNSPECIFIED
	}
}
