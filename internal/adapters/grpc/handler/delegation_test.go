package handler

import (
	"context"
	"testing"
	"time"

	assignmentpb "github.com/ogurasousui/assignment-grpc-clean-arch/internal/adapters/grpc/gen/assignment/v1"
	"github.com/ogurasousui/assignment-grpc-clean-arch/internal/core/delegation"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type stubDelegationUseCase struct {
	createInput delegation.CreateInput
	createOut   *delegation.Delegation
	createErr   error

	revokeID    string
	revokeActor string
	revokeOut   *delegation.Delegation
	revokeErr   error

	extendInput delegation.ExtendInput
	extendOut   *delegation.Delegation
	extendErr   error

	getID  string
	getOut *delegation.Delegation
	getErr error

	listEmployeeID string
	listOut        []*delegation.Delegation
	listErr        error

	activeEmployeeID string
	activeOut        *delegation.Delegation
	activeErr        error

	restrictedEmployeeID string
	restrictedDate       time.Time
	restrictedOut        bool
	restrictedErr        error
}

func (s *stubDelegationUseCase) Create(ctx context.Context, in delegation.CreateInput) (*delegation.Delegation, error) {
	s.createInput = in
	return s.createOut, s.createErr
}

func (s *stubDelegationUseCase) Revoke(ctx context.Context, id, actorID string) (*delegation.Delegation, error) {
	s.revokeID = id
	s.revokeActor = actorID
	return s.revokeOut, s.revokeErr
}

func (s *stubDelegationUseCase) Extend(ctx context.Context, in delegation.ExtendInput) (*delegation.Delegation, error) {
	s.extendInput = in
	return s.extendOut, s.extendErr
}

func (s *stubDelegationUseCase) Get(ctx context.Context, id string) (*delegation.Delegation, error) {
	s.getID = id
	return s.getOut, s.getErr
}

func (s *stubDelegationUseCase) ListByEmployee(ctx context.Context, employeeID string) ([]*delegation.Delegation, error) {
	s.listEmployeeID = employeeID
	return s.listOut, s.listErr
}

func (s *stubDelegationUseCase) GetActiveDelegation(ctx context.Context, employeeID string) (*delegation.Delegation, error) {
	s.activeEmployeeID = employeeID
	return s.activeOut, s.activeErr
}

func (s *stubDelegationUseCase) IsEmployeeDelegated(ctx context.Context, employeeID string) (bool, error) {
	return s.activeOut != nil, s.activeErr
}

func (s *stubDelegationUseCase) IsDateRestricted(ctx context.Context, employeeID string, date time.Time) (bool, error) {
	s.restrictedEmployeeID = employeeID
	s.restrictedDate = date
	return s.restrictedOut, s.restrictedErr
}

func sampleDelegation() *delegation.Delegation {
	now := time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC)
	return &delegation.Delegation{
		ID:          "dlg-1",
		EmployeeID:  "emp-1",
		FromStoreID: "store-a",
		FromZoneID:  "zone-1",
		ToStoreID:   "store-b",
		ToZoneID:    "zone-1",
		DelegatedBy: "mgr-a",
		ValidFrom:   time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC),
		ValidUntil:  time.Date(2025, 6, 12, 0, 0, 0, 0, time.UTC),
		Status:      delegation.StatusActive,
		AutoReturn:  true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

func TestDelegationGrpcHandler_CreateDelegation_Success(t *testing.T) {
	t.Parallel()

	stub := &stubDelegationUseCase{createOut: sampleDelegation()}
	h := NewDelegationGrpcHandler(stub, nil, 0)

	resp, err := h.CreateDelegation(context.Background(), &assignmentpb.CreateDelegationRequest{
		ActorId:    "mgr-a",
		EmployeeId: "emp-1",
		ToStoreId:  "store-b",
		ValidFrom:  "2025-06-02",
		ValidUntil: "2025-06-12",
		AutoReturn: true,
	})
	if err != nil {
		t.Fatalf("CreateDelegation returned error: %v", err)
	}

	if stub.createInput.ActorID != "mgr-a" || stub.createInput.EmployeeID != "emp-1" {
		t.Fatalf("unexpected input: %+v", stub.createInput)
	}
	if !stub.createInput.ValidFrom.Equal(time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("unexpected parsed valid_from: %v", stub.createInput.ValidFrom)
	}

	d := resp.GetDelegation()
	if d.GetId() != "dlg-1" {
		t.Fatalf("unexpected id: %s", d.GetId())
	}
	if d.GetStatus() != assignmentpb.DelegationStatus_DELEGATION_STATUS_ACTIVE {
		t.Fatalf("unexpected status: %s", d.GetStatus())
	}
	if d.GetValidFrom() != "2025-06-02" || d.GetValidUntil() != "2025-06-12" {
		t.Fatalf("unexpected period: %s - %s", d.GetValidFrom(), d.GetValidUntil())
	}
	if !d.GetAutoReturn() {
		t.Fatal("expected auto return flag")
	}
}

func TestDelegationGrpcHandler_CreateDelegation_InvalidDate(t *testing.T) {
	t.Parallel()

	h := NewDelegationGrpcHandler(&stubDelegationUseCase{}, nil, 0)

	_, err := h.CreateDelegation(context.Background(), &assignmentpb.CreateDelegationRequest{
		ActorId:    "mgr-a",
		EmployeeId: "emp-1",
		ToStoreId:  "store-b",
		ValidFrom:  "06/02/2025",
		ValidUntil: "2025-06-12",
	})
	if status.Code(err) != codes.InvalidArgument {
		t.Fatalf("expected InvalidArgument, got %v", err)
	}
}

func TestDelegationGrpcHandler_CreateDelegation_ErrorMapping(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name     string
		svcErr   error
		wantCode codes.Code
	}{
		{name: "overlap", svcErr: delegation.ErrOverlap, wantCode: codes.FailedPrecondition},
		{name: "transfer in progress", svcErr: delegation.ErrTransferInProgress, wantCode: codes.FailedPrecondition},
		{name: "permission denied", svcErr: delegation.ErrPermissionDenied, wantCode: codes.PermissionDenied},
		{name: "self assignment", svcErr: delegation.ErrSelfAssignment, wantCode: codes.InvalidArgument},
		{name: "too long", svcErr: delegation.ErrTooLong, wantCode: codes.InvalidArgument},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			h := NewDelegationGrpcHandler(&stubDelegationUseCase{createErr: tc.svcErr}, nil, 0)
			_, err := h.CreateDelegation(context.Background(), &assignmentpb.CreateDelegationRequest{
				ActorId:    "mgr-a",
				EmployeeId: "emp-1",
				ToStoreId:  "store-b",
				ValidFrom:  "2025-06-02",
				ValidUntil: "2025-06-12",
			})
			if status.Code(err) != tc.wantCode {
				t.Fatalf("expected %s, got %v", tc.wantCode, err)
			}
		})
	}
}

func TestDelegationGrpcHandler_RevokeDelegation(t *testing.T) {
	t.Parallel()

	revoked := sampleDelegation()
	revoked.Status = delegation.StatusRevoked
	stub := &stubDelegationUseCase{revokeOut: revoked}
	h := NewDelegationGrpcHandler(stub, nil, 0)

	resp, err := h.RevokeDelegation(context.Background(), &assignmentpb.RevokeDelegationRequest{
		Id:      "dlg-1",
		ActorId: "hr-1",
	})
	if err != nil {
		t.Fatalf("RevokeDelegation returned error: %v", err)
	}

	if stub.revokeID != "dlg-1" || stub.revokeActor != "hr-1" {
		t.Fatalf("unexpected revoke args: %s/%s", stub.revokeID, stub.revokeActor)
	}
	if resp.GetDelegation().GetStatus() != assignmentpb.DelegationStatus_DELEGATION_STATUS_REVOKED {
		t.Fatalf("unexpected status: %s", resp.GetDelegation().GetStatus())
	}
}

func TestDelegationGrpcHandler_RevokeDelegation_AlreadyFinished(t *testing.T) {
	t.Parallel()

	h := NewDelegationGrpcHandler(&stubDelegationUseCase{revokeErr: delegation.ErrAlreadyFinished}, nil, 0)

	_, err := h.RevokeDelegation(context.Background(), &assignmentpb.RevokeDelegationRequest{
		Id:      "dlg-1",
		ActorId: "hr-1",
	})
	if status.Code(err) != codes.FailedPrecondition {
		t.Fatalf("expected FailedPrecondition, got %v", err)
	}
}

func TestDelegationGrpcHandler_GetActiveDelegation_None(t *testing.T) {
	t.Parallel()

	h := NewDelegationGrpcHandler(&stubDelegationUseCase{}, nil, 0)

	resp, err := h.GetActiveDelegation(context.Background(), &assignmentpb.GetActiveDelegationRequest{
		EmployeeId: "emp-1",
	})
	if err != nil {
		t.Fatalf("GetActiveDelegation returned error: %v", err)
	}

	if resp.GetDelegation() != nil {
		t.Fatalf("expected unset delegation, got %+v", resp.GetDelegation())
	}
}

func TestDelegationGrpcHandler_IsDateRestricted(t *testing.T) {
	t.Parallel()

	stub := &stubDelegationUseCase{restrictedOut: true}
	h := NewDelegationGrpcHandler(stub, nil, 0)

	resp, err := h.IsDateRestricted(context.Background(), &assignmentpb.IsDateRestrictedRequest{
		EmployeeId: "emp-1",
		Date:       "2025-06-05",
	})
	if err != nil {
		t.Fatalf("IsDateRestricted returned error: %v", err)
	}

	if !resp.GetRestricted() {
		t.Fatal("expected restricted response")
	}
	if stub.restrictedEmployeeID != "emp-1" {
		t.Fatalf("unexpected employee id: %s", stub.restrictedEmployeeID)
	}
	if !stub.restrictedDate.Equal(time.Date(2025, 6, 5, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("unexpected parsed date: %v", stub.restrictedDate)
	}
}

func TestDelegationGrpcHandler_ListDelegations(t *testing.T) {
	t.Parallel()

	stub := &stubDelegationUseCase{listOut: []*delegation.Delegation{sampleDelegation()}}
	h := NewDelegationGrpcHandler(stub, nil, 0)

	resp, err := h.ListDelegations(context.Background(), &assignmentpb.ListDelegationsRequest{
		EmployeeId: "emp-1",
	})
	if err != nil {
		t.Fatalf("ListDelegations returned error: %v", err)
	}

	if len(resp.GetDelegations()) != 1 {
		t.Fatalf("expected 1 delegation, got %d", len(resp.GetDelegations()))
	}
	if stub.listEmployeeID != "emp-1" {
		t.Fatalf("unexpected employee id: %s", stub.listEmployeeID)
	}
}

func TestDelegationGrpcHandler_GetDelegation_ExpiringSoon(t *testing.T) {
	t.Parallel()

	// valid_until は 2025-06-12。警告しきい値 7 日で残り 3 日の時点。
	soon := time.Date(2025, 6, 9, 8, 0, 0, 0, time.UTC)
	far := time.Date(2025, 6, 2, 8, 0, 0, 0, time.UTC)

	cases := []struct {
		name string
		now  time.Time
		want bool
	}{
		{name: "inside the warning window", now: soon, want: true},
		{name: "outside the warning window", now: far, want: false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			stub := &stubDelegationUseCase{getOut: sampleDelegation()}
			h := NewDelegationGrpcHandler(stub, func() time.Time { return tc.now }, 7)

			resp, err := h.GetDelegation(context.Background(), &assignmentpb.GetDelegationRequest{Id: "dlg-1"})
			if err != nil {
				t.Fatalf("GetDelegation returned error: %v", err)
			}
			if got := resp.GetDelegation().GetExpiringSoon(); got != tc.want {
				t.Fatalf("expiring_soon = %t, want %t", got, tc.want)
			}
		})
	}
}
