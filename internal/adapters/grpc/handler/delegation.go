package handler

import (
	"context"
	"fmt"
	"strings"
	"time"

	assignmentpb "github.com/ogurasousui/assignment-grpc-clean-arch/internal/adapters/grpc/gen/assignment/v1"
	"github.com/ogurasousui/assignment-grpc-clean-arch/internal/core/delegation"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/timestamppb"
)

const dateLayout = "2006-01-02"

// DelegationGrpcHandler は DelegationService の gRPC 実装です。
type DelegationGrpcHandler struct {
	svc      delegation.UseCase
	clock    func() time.Time
	warnDays int
	assignmentpb.UnimplementedDelegationServiceServer
}

// NewDelegationGrpcHandler は DelegationGrpcHandler を生成します。
// clock は expiring_soon の判定に使う現在時刻で、nil の場合は実時刻です。
// warnDays が 0 以下なら既定の警告しきい値を使います。
func NewDelegationGrpcHandler(svc delegation.UseCase, clock func() time.Time, warnDays int) *DelegationGrpcHandler {
	if clock == nil {
		clock = func() time.Time { return time.Now().UTC() }
	}
	if warnDays <= 0 {
		warnDays = delegation.DefaultLimits.WarnDays
	}
	return &DelegationGrpcHandler{svc: svc, clock: clock, warnDays: warnDays}
}

// CreateDelegation は委任を作成します。
func (h *DelegationGrpcHandler) CreateDelegation(ctx context.Context, req *assignmentpb.CreateDelegationRequest) (*assignmentpb.CreateDelegationResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	validFrom, err := parseDate(req.GetValidFrom())
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, fmt.Sprintf("valid_from: %v", err))
	}

	validUntil, err := parseDate(req.GetValidUntil())
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, fmt.Sprintf("valid_until: %v", err))
	}

	created, err := h.svc.Create(ctx, delegation.CreateInput{
		ActorID:     req.GetActorId(),
		EmployeeID:  req.GetEmployeeId(),
		FromStoreID: req.GetFromStoreId(),
		ToStoreID:   req.GetToStoreId(),
		ValidFrom:   validFrom,
		ValidUntil:  validUntil,
		AutoReturn:  req.GetAutoReturn(),
	})
	if err != nil {
		return nil, toStatusError(err)
	}

	return &assignmentpb.CreateDelegationResponse{Delegation: h.toProtoDelegation(created)}, nil
}

// RevokeDelegation は委任を取り消します。
func (h *DelegationGrpcHandler) RevokeDelegation(ctx context.Context, req *assignmentpb.RevokeDelegationRequest) (*assignmentpb.RevokeDelegationResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	revoked, err := h.svc.Revoke(ctx, req.GetId(), req.GetActorId())
	if err != nil {
		return nil, toStatusError(err)
	}

	return &assignmentpb.RevokeDelegationResponse{Delegation: h.toProtoDelegation(revoked)}, nil
}

// ExtendDelegation は委任の終了日を延長します。
func (h *DelegationGrpcHandler) ExtendDelegation(ctx context.Context, req *assignmentpb.ExtendDelegationRequest) (*assignmentpb.ExtendDelegationResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	newUntil, err := parseDate(req.GetNewValidUntil())
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, fmt.Sprintf("new_valid_until: %v", err))
	}

	extended, err := h.svc.Extend(ctx, delegation.ExtendInput{
		ID:            req.GetId(),
		ActorID:       req.GetActorId(),
		NewValidUntil: newUntil,
	})
	if err != nil {
		return nil, toStatusError(err)
	}

	return &assignmentpb.ExtendDelegationResponse{Delegation: h.toProtoDelegation(extended)}, nil
}

// GetDelegation は委任を取得します。
func (h *DelegationGrpcHandler) GetDelegation(ctx context.Context, req *assignmentpb.GetDelegationRequest) (*assignmentpb.GetDelegationResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	found, err := h.svc.Get(ctx, req.GetId())
	if err != nil {
		return nil, toStatusError(err)
	}

	return &assignmentpb.GetDelegationResponse{Delegation: h.toProtoDelegation(found)}, nil
}

// ListDelegations は従業員の委任履歴を取得します。
func (h *DelegationGrpcHandler) ListDelegations(ctx context.Context, req *assignmentpb.ListDelegationsRequest) (*assignmentpb.ListDelegationsResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	delegations, err := h.svc.ListByEmployee(ctx, req.GetEmployeeId())
	if err != nil {
		return nil, toStatusError(err)
	}

	protoDelegations := make([]*assignmentpb.Delegation, 0, len(delegations))
	for _, d := range delegations {
		protoDelegations = append(protoDelegations, h.toProtoDelegation(d))
	}

	return &assignmentpb.ListDelegationsResponse{Delegations: protoDelegations}, nil
}

// GetActiveDelegation は現在効力を持つ委任を返します。存在しない場合は
// delegation フィールドを未設定のまま返します。
func (h *DelegationGrpcHandler) GetActiveDelegation(ctx context.Context, req *assignmentpb.GetActiveDelegationRequest) (*assignmentpb.GetActiveDelegationResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	active, err := h.svc.GetActiveDelegation(ctx, req.GetEmployeeId())
	if err != nil {
		return nil, toStatusError(err)
	}

	return &assignmentpb.GetActiveDelegationResponse{Delegation: h.toProtoDelegation(active)}, nil
}

// IsDateRestricted は委任による勤務表入力制限の有無を返します。
func (h *DelegationGrpcHandler) IsDateRestricted(ctx context.Context, req *assignmentpb.IsDateRestrictedRequest) (*assignmentpb.IsDateRestrictedResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	date, err := parseDate(req.GetDate())
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, fmt.Sprintf("date: %v", err))
	}

	restricted, err := h.svc.IsDateRestricted(ctx, req.GetEmployeeId(), date)
	if err != nil {
		return nil, toStatusError(err)
	}

	return &assignmentpb.IsDateRestrictedResponse{Restricted: restricted}, nil
}

func (h *DelegationGrpcHandler) toProtoDelegation(d *delegation.Delegation) *assignmentpb.Delegation {
	if d == nil {
		return nil
	}

	return &assignmentpb.Delegation{
		Id:             d.ID,
		EmployeeId:     d.EmployeeID,
		FromStoreId:    d.FromStoreID,
		FromZoneId:     d.FromZoneID,
		ToStoreId:      d.ToStoreID,
		ToZoneId:       d.ToZoneID,
		DelegatedBy:    d.DelegatedBy,
		ValidFrom:      d.ValidFrom.Format(dateLayout),
		ValidUntil:     d.ValidUntil.Format(dateLayout),
		Status:         toProtoDelegationStatus(d.Status),
		AutoReturn:     d.AutoReturn,
		ExtensionCount: int32(d.ExtensionCount),
		CreatedAt:      timestamppb.New(d.CreatedAt),
		UpdatedAt:      timestamppb.New(d.UpdatedAt),
		ExpiringSoon:   delegation.IsExpiringSoon(d, h.clock(), h.warnDays),
	}
}

func toProtoDelegationStatus(s delegation.Status) assignmentpb.DelegationStatus {
	switch s {
	case delegation.StatusPending:
		return assignmentpb.DelegationStatus_DELEGATION_STATUS_PENDING
	case delegation.StatusActive:
		return assignmentpb.DelegationStatus_DELEGATION_STATUS_ACTIVE
	case delegation.StatusExpired:
		return assignmentpb.DelegationStatus_DELEGATION_STATUS_EXPIRED
	case delegation.StatusRevoked:
		return assignmentpb.DelegationStatus_DELEGATION_STATUS_REVOKED
	default:
		return assignmentpb.DelegationStatus_DELEGATION_STATUS_UNSPECIFIED
	}
}

func parseDate(raw string) (time.Time, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return time.Time{}, fmt.Errorf("date is required")
	}

	parsed, err := time.ParseInLocation(dateLayout, trimmed, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date format (expected %s)", dateLayout)
	}
	return parsed, nil
}
