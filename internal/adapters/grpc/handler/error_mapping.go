package handler

import (
	"errors"

	"github.com/ogurasousui/assignment-grpc-clean-arch/internal/core/delegation"
	"github.com/ogurasousui/assignment-grpc-clean-arch/internal/core/directory"
	"github.com/ogurasousui/assignment-grpc-clean-arch/internal/core/transfer"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// toStatusError はドメインエラーを gRPC ステータスに変換します。
// ルール違反は利用者に提示できるメッセージをそのまま載せ、
// 分類できないものだけを Internal として返します。
func toStatusError(err error) error {
	switch {
	case err == nil:
		return nil

	// 入力そのものの不備。
	case errors.Is(err, delegation.ErrInvalidID),
		errors.Is(err, delegation.ErrInvalidEmployeeID),
		errors.Is(err, delegation.ErrInvalidStoreID),
		errors.Is(err, delegation.ErrInvalidPeriod),
		errors.Is(err, delegation.ErrStartInPast),
		errors.Is(err, delegation.ErrTooShort),
		errors.Is(err, delegation.ErrTooLong),
		errors.Is(err, delegation.ErrSelfAssignment),
		errors.Is(err, delegation.ErrSameStore),
		errors.Is(err, delegation.ErrInvalidExtension),
		errors.Is(err, transfer.ErrInvalidID),
		errors.Is(err, transfer.ErrInvalidEmployeeID),
		errors.Is(err, transfer.ErrInvalidStoreID),
		errors.Is(err, transfer.ErrInvalidDate),
		errors.Is(err, transfer.ErrDateInPast),
		errors.Is(err, transfer.ErrDateTooFar),
		errors.Is(err, transfer.ErrSelfAssignment),
		errors.Is(err, transfer.ErrSameStore),
		errors.Is(err, directory.ErrInvalidID),
		errors.Is(err, directory.ErrSameStore):
		return status.Error(codes.InvalidArgument, err.Error())

	// スコープ外の操作と自己承認。
	case errors.Is(err, delegation.ErrPermissionDenied),
		errors.Is(err, transfer.ErrPermissionDenied),
		errors.Is(err, transfer.ErrSelfApproval),
		errors.Is(err, transfer.ErrNotInitiator),
		errors.Is(err, directory.ErrPermissionDenied):
		return status.Error(codes.PermissionDenied, err.Error())

	// 状態や他レコードとの競合。変更は一切適用されていない。
	case errors.Is(err, delegation.ErrOverlap),
		errors.Is(err, delegation.ErrTransferInProgress),
		errors.Is(err, delegation.ErrAlreadyFinished),
		errors.Is(err, delegation.ErrExtensionLimit),
		errors.Is(err, delegation.ErrStaleEmployee),
		errors.Is(err, delegation.ErrEmployeeInactive),
		errors.Is(err, transfer.ErrAlreadyInProgress),
		errors.Is(err, transfer.ErrDelegationActive),
		errors.Is(err, transfer.ErrNotPending),
		errors.Is(err, transfer.ErrNotApproved),
		errors.Is(err, transfer.ErrNotDue),
		errors.Is(err, transfer.ErrStaleEmployee),
		errors.Is(err, transfer.ErrEmployeeInactive),
		errors.Is(err, transfer.ErrStoreChanged),
		errors.Is(err, directory.ErrStoreChanged),
		errors.Is(err, directory.ErrEmployeeInactive):
		return status.Error(codes.FailedPrecondition, err.Error())

	case errors.Is(err, delegation.ErrNotFound),
		errors.Is(err, transfer.ErrNotFound),
		errors.Is(err, directory.ErrEmployeeNotFound),
		errors.Is(err, directory.ErrStoreNotFound),
		errors.Is(err, directory.ErrZoneNotFound),
		errors.Is(err, directory.ErrProfileNotFound):
		return status.Error(codes.NotFound, err.Error())

	default:
		return status.Error(codes.Internal, err.Error())
	}
}
