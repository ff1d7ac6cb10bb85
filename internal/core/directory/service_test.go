package directory

import (
	"context"
	"errors"
	"testing"
	"time"
)

type fakeDirectoryRepo struct {
	employees map[string]*Employee
	stores    map[string]*Store
	zones     map[string]*Zone
	profiles  map[string]*Profile
}

func newFakeDirectoryRepo() *fakeDirectoryRepo {
	return &fakeDirectoryRepo{
		employees: map[string]*Employee{
			"emp-1": {ID: "emp-1", StoreID: "store-a", ZoneID: "zone-1", Status: EmployeeActive},
		},
		stores: map[string]*Store{
			"store-a": {ID: "store-a", ZoneID: "zone-1", Name: "Store A"},
			"store-b": {ID: "store-b", ZoneID: "zone-1", Name: "Store B"},
			"store-c": {ID: "store-c", ZoneID: "zone-2", Name: "Store C"},
		},
		zones: map[string]*Zone{
			"zone-1": {ID: "zone-1", Name: "Zone 1"},
			"zone-2": {ID: "zone-2", Name: "Zone 2"},
		},
		profiles: map[string]*Profile{
			"hr-1":  {ID: "hr-1", Role: RoleHR},
			"mgr-a": {ID: "mgr-a", Role: RoleStoreManager, StoreID: func() *string { s := "store-a"; return &s }()},
		},
	}
}

func (f *fakeDirectoryRepo) FindEmployee(_ context.Context, id string) (*Employee, error) {
	emp, ok := f.employees[id]
	if !ok {
		return nil, ErrEmployeeNotFound
	}
	clone := *emp
	return &clone, nil
}

func (f *fakeDirectoryRepo) FindEmployeeForUpdate(ctx context.Context, id string) (*Employee, error) {
	return f.FindEmployee(ctx, id)
}

func (f *fakeDirectoryRepo) FindStore(_ context.Context, id string) (*Store, error) {
	store, ok := f.stores[id]
	if !ok {
		return nil, ErrStoreNotFound
	}
	clone := *store
	return &clone, nil
}

func (f *fakeDirectoryRepo) FindZone(_ context.Context, id string) (*Zone, error) {
	zone, ok := f.zones[id]
	if !ok {
		return nil, ErrZoneNotFound
	}
	clone := *zone
	return &clone, nil
}

func (f *fakeDirectoryRepo) FindProfile(_ context.Context, id string) (*Profile, error) {
	profile, ok := f.profiles[id]
	if !ok {
		return nil, ErrProfileNotFound
	}
	clone := *profile
	return &clone, nil
}

func (f *fakeDirectoryRepo) ListStoresByZone(_ context.Context, zoneID string) ([]*Store, error) {
	var result []*Store
	for _, id := range []string{"store-a", "store-b", "store-c"} {
		store := f.stores[id]
		if store == nil || store.ZoneID != zoneID {
			continue
		}
		clone := *store
		result = append(result, &clone)
	}
	return result, nil
}

func (f *fakeDirectoryRepo) ReassignEmployee(_ context.Context, employeeID, fromStoreID, toStoreID string, at time.Time) (*Employee, error) {
	emp, ok := f.employees[employeeID]
	if !ok {
		return nil, ErrEmployeeNotFound
	}
	if emp.StoreID != fromStoreID {
		return nil, ErrStoreChanged
	}
	dest, ok := f.stores[toStoreID]
	if !ok {
		return nil, ErrStoreNotFound
	}
	emp.StoreID = dest.ID
	emp.ZoneID = dest.ZoneID
	emp.UpdatedAt = at
	clone := *emp
	return &clone, nil
}

type stubClock struct {
	now time.Time
}

func (s *stubClock) Now() time.Time {
	return s.now
}

func TestService_GetEmployee(t *testing.T) {
	t.Parallel()

	svc := NewService(newFakeDirectoryRepo(), &stubClock{now: time.Now().UTC()}, nil)

	emp, err := svc.GetEmployee(context.Background(), "emp-1")
	if err != nil {
		t.Fatalf("GetEmployee returned error: %v", err)
	}
	if emp.StoreID != "store-a" || emp.ZoneID != "zone-1" {
		t.Fatalf("unexpected employee: %+v", emp)
	}

	if _, err := svc.GetEmployee(context.Background(), "missing"); !errors.Is(err, ErrEmployeeNotFound) {
		t.Fatalf("expected ErrEmployeeNotFound, got %v", err)
	}
	if _, err := svc.GetEmployee(context.Background(), " "); !errors.Is(err, ErrInvalidID) {
		t.Fatalf("expected ErrInvalidID, got %v", err)
	}
}

func TestService_ListStoresByZone(t *testing.T) {
	t.Parallel()

	svc := NewService(newFakeDirectoryRepo(), &stubClock{now: time.Now().UTC()}, nil)

	stores, err := svc.ListStoresByZone(context.Background(), "zone-1")
	if err != nil {
		t.Fatalf("ListStoresByZone returned error: %v", err)
	}
	if len(stores) != 2 {
		t.Fatalf("expected 2 stores in zone-1, got %d", len(stores))
	}
}

func TestService_CorrectEmployeeStore_Success(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC)
	repo := newFakeDirectoryRepo()
	svc := NewService(repo, &stubClock{now: now}, nil)

	corrected, err := svc.CorrectEmployeeStore(context.Background(), CorrectEmployeeStoreInput{
		ActorID:         "hr-1",
		EmployeeID:      "emp-1",
		ExpectedStoreID: "store-a",
		NewStoreID:      "store-c",
	})
	if err != nil {
		t.Fatalf("CorrectEmployeeStore returned error: %v", err)
	}

	if corrected.StoreID != "store-c" || corrected.ZoneID != "zone-2" {
		t.Fatalf("unexpected assignment: %s/%s", corrected.StoreID, corrected.ZoneID)
	}
	if !corrected.UpdatedAt.Equal(now) {
		t.Fatalf("expected update to be stamped with the service clock, got %v", corrected.UpdatedAt)
	}
}

func TestService_CorrectEmployeeStore_Failures(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		input   CorrectEmployeeStoreInput
		wantErr error
	}{
		{
			name:    "only hr may correct",
			input:   CorrectEmployeeStoreInput{ActorID: "mgr-a", EmployeeID: "emp-1", ExpectedStoreID: "store-a", NewStoreID: "store-b"},
			wantErr: ErrPermissionDenied,
		},
		{
			name:    "same store rejected",
			input:   CorrectEmployeeStoreInput{ActorID: "hr-1", EmployeeID: "emp-1", ExpectedStoreID: "store-a", NewStoreID: "store-a"},
			wantErr: ErrSameStore,
		},
		{
			name:    "unknown destination store",
			input:   CorrectEmployeeStoreInput{ActorID: "hr-1", EmployeeID: "emp-1", ExpectedStoreID: "store-a", NewStoreID: "missing"},
			wantErr: ErrStoreNotFound,
		},
		{
			name:    "stale expected store",
			input:   CorrectEmployeeStoreInput{ActorID: "hr-1", EmployeeID: "emp-1", ExpectedStoreID: "store-b", NewStoreID: "store-c"},
			wantErr: ErrStoreChanged,
		},
		{
			name:    "missing ids rejected",
			input:   CorrectEmployeeStoreInput{ActorID: "hr-1", EmployeeID: "", ExpectedStoreID: "store-a", NewStoreID: "store-b"},
			wantErr: ErrInvalidID,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			svc := NewService(newFakeDirectoryRepo(), &stubClock{now: time.Now().UTC()}, nil)
			_, err := svc.CorrectEmployeeStore(context.Background(), tc.input)
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("expected %v, got %v", tc.wantErr, err)
			}
		})
	}
}
