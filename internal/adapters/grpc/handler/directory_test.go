package handler

import (
	"context"
	"testing"
	"time"

	assignmentpb "github.com/ogurasousui/assignment-grpc-clean-arch/internal/adapters/grpc/gen/assignment/v1"
	"github.com/ogurasousui/assignment-grpc-clean-arch/internal/core/directory"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type stubDirectoryUseCase struct {
	getID  string
	getOut *directory.Employee
	getErr error

	storeOut *directory.Store
	storeErr error

	listOut []*directory.Store
	listErr error

	correctInput directory.CorrectEmployeeStoreInput
	correctOut   *directory.Employee
	correctErr   error
}

func (s *stubDirectoryUseCase) GetEmployee(ctx context.Context, id string) (*directory.Employee, error) {
	s.getID = id
	return s.getOut, s.getErr
}

func (s *stubDirectoryUseCase) GetStore(ctx context.Context, id string) (*directory.Store, error) {
	return s.storeOut, s.storeErr
}

func (s *stubDirectoryUseCase) ListStoresByZone(ctx context.Context, zoneID string) ([]*directory.Store, error) {
	return s.listOut, s.listErr
}

func (s *stubDirectoryUseCase) CorrectEmployeeStore(ctx context.Context, in directory.CorrectEmployeeStoreInput) (*directory.Employee, error) {
	s.correctInput = in
	return s.correctOut, s.correctErr
}

func TestDirectoryGrpcHandler_GetEmployee(t *testing.T) {
	t.Parallel()

	now := time.Now().UTC()
	stub := &stubDirectoryUseCase{getOut: &directory.Employee{
		ID:        "emp-1",
		StoreID:   "store-a",
		ZoneID:    "zone-1",
		Status:    directory.EmployeeActive,
		CreatedAt: now,
		UpdatedAt: now,
	}}
	h := NewDirectoryGrpcHandler(stub)

	resp, err := h.GetEmployee(context.Background(), &assignmentpb.GetEmployeeRequest{Id: "emp-1"})
	if err != nil {
		t.Fatalf("GetEmployee returned error: %v", err)
	}

	emp := resp.GetEmployee()
	if emp.GetId() != "emp-1" || emp.GetStoreId() != "store-a" || emp.GetZoneId() != "zone-1" {
		t.Fatalf("unexpected employee: %+v", emp)
	}
	if emp.GetStatus() != string(directory.EmployeeActive) {
		t.Fatalf("unexpected status: %s", emp.GetStatus())
	}
}

func TestDirectoryGrpcHandler_GetEmployee_NotFound(t *testing.T) {
	t.Parallel()

	h := NewDirectoryGrpcHandler(&stubDirectoryUseCase{getErr: directory.ErrEmployeeNotFound})

	_, err := h.GetEmployee(context.Background(), &assignmentpb.GetEmployeeRequest{Id: "missing"})
	if status.Code(err) != codes.NotFound {
		t.Fatalf("expected NotFound, got %v", err)
	}
}

func TestDirectoryGrpcHandler_CorrectEmployeeStore(t *testing.T) {
	t.Parallel()

	now := time.Now().UTC()
	stub := &stubDirectoryUseCase{correctOut: &directory.Employee{
		ID:        "emp-1",
		StoreID:   "store-c",
		ZoneID:    "zone-2",
		Status:    directory.EmployeeActive,
		CreatedAt: now,
		UpdatedAt: now,
	}}
	h := NewDirectoryGrpcHandler(stub)

	resp, err := h.CorrectEmployeeStore(context.Background(), &assignmentpb.CorrectEmployeeStoreRequest{
		ActorId:         "hr-1",
		EmployeeId:      "emp-1",
		ExpectedStoreId: "store-a",
		NewStoreId:      "store-c",
	})
	if err != nil {
		t.Fatalf("CorrectEmployeeStore returned error: %v", err)
	}

	if stub.correctInput.ActorID != "hr-1" || stub.correctInput.ExpectedStoreID != "store-a" {
		t.Fatalf("unexpected input: %+v", stub.correctInput)
	}
	if resp.GetEmployee().GetStoreId() != "store-c" {
		t.Fatalf("unexpected store: %s", resp.GetEmployee().GetStoreId())
	}
}

func TestDirectoryGrpcHandler_CorrectEmployeeStore_ErrorMapping(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name     string
		svcErr   error
		wantCode codes.Code
	}{
		{name: "non hr denied", svcErr: directory.ErrPermissionDenied, wantCode: codes.PermissionDenied},
		{name: "store changed", svcErr: directory.ErrStoreChanged, wantCode: codes.FailedPrecondition},
		{name: "same store", svcErr: directory.ErrSameStore, wantCode: codes.InvalidArgument},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			h := NewDirectoryGrpcHandler(&stubDirectoryUseCase{correctErr: tc.svcErr})
			_, err := h.CorrectEmployeeStore(context.Background(), &assignmentpb.CorrectEmployeeStoreRequest{
				ActorId:         "mgr-a",
				EmployeeId:      "emp-1",
				ExpectedStoreId: "store-a",
				NewStoreId:      "store-b",
			})
			if status.Code(err) != tc.wantCode {
				t.Fatalf("expected %s, got %v", tc.wantCode, err)
			}
		})
	}
}
