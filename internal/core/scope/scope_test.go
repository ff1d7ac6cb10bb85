package scope

import (
	"context"
	"errors"
	"testing"

	"github.com/ogurasousui/assignment-grpc-clean-arch/internal/core/directory"
)

type fakeDirectory struct {
	stores      map[string]*directory.Store
	zoneStores  map[string][]*directory.Store
	storeErr    error
	zoneListErr error
}

func (f *fakeDirectory) FindStore(_ context.Context, id string) (*directory.Store, error) {
	if f.storeErr != nil {
		return nil, f.storeErr
	}
	store, ok := f.stores[id]
	if !ok {
		return nil, directory.ErrStoreNotFound
	}
	return store, nil
}

func (f *fakeDirectory) ListStoresByZone(_ context.Context, zoneID string) ([]*directory.Store, error) {
	if f.zoneListErr != nil {
		return nil, f.zoneListErr
	}
	return f.zoneStores[zoneID], nil
}

func strPtr(s string) *string {
	return &s
}

func newFakeDirectory() *fakeDirectory {
	storeA := &directory.Store{ID: "store-a", ZoneID: "zone-1", Name: "Store A"}
	storeB := &directory.Store{ID: "store-b", ZoneID: "zone-1", Name: "Store B"}
	storeC := &directory.Store{ID: "store-c", ZoneID: "zone-2", Name: "Store C"}
	storeX := &directory.Store{ID: "store-x", ZoneID: "zone-3", Name: "Store X"}
	return &fakeDirectory{
		stores: map[string]*directory.Store{"store-a": storeA, "store-b": storeB, "store-c": storeC, "store-x": storeX},
		zoneStores: map[string][]*directory.Store{
			"zone-1": {storeA, storeB},
			"zone-2": {storeC},
		},
	}
}

func TestResolver_Resolve(t *testing.T) {
	t.Parallel()

	resolver := NewResolver(newFakeDirectory())

	t.Run("hr gets company-wide scope", func(t *testing.T) {
		t.Parallel()

		scope, err := resolver.Resolve(context.Background(), &directory.Profile{ID: "hr-1", Role: directory.RoleHR})
		if err != nil {
			t.Fatalf("Resolve returned error: %v", err)
		}
		if scope.Kind != KindCompany {
			t.Fatalf("expected company scope, got %s", scope.Kind)
		}
		if !scope.CoversStore("store-c") || !scope.CoversZone("zone-2") {
			t.Fatal("company scope must cover every store and zone")
		}
	})

	t.Run("area manager gets zone scope", func(t *testing.T) {
		t.Parallel()

		scope, err := resolver.Resolve(context.Background(), &directory.Profile{
			ID: "asm-1", Role: directory.RoleAreaManager, ZoneID: strPtr("zone-1"),
		})
		if err != nil {
			t.Fatalf("Resolve returned error: %v", err)
		}
		if scope.Kind != KindZone {
			t.Fatalf("expected zone scope, got %s", scope.Kind)
		}
		if !scope.CoversStore("store-a") || !scope.CoversStore("store-b") {
			t.Fatal("zone scope must cover stores in the zone")
		}
		if scope.CoversStore("store-c") || scope.CoversZone("zone-2") {
			t.Fatal("zone scope must not leak into other zones")
		}
	})

	t.Run("store manager gets store scope", func(t *testing.T) {
		t.Parallel()

		scope, err := resolver.Resolve(context.Background(), &directory.Profile{
			ID: "mgr-a", Role: directory.RoleStoreManager, StoreID: strPtr("store-a"),
		})
		if err != nil {
			t.Fatalf("Resolve returned error: %v", err)
		}
		if scope.Kind != KindStore {
			t.Fatalf("expected store scope, got %s", scope.Kind)
		}
		if !scope.CoversStore("store-a") || scope.CoversStore("store-b") {
			t.Fatal("store scope must cover exactly the manager's store")
		}
		if !scope.CoversZone("zone-1") {
			t.Fatal("store scope carries the store's zone")
		}
	})

	t.Run("missing assignment yields empty scope", func(t *testing.T) {
		t.Parallel()

		cases := []*directory.Profile{
			nil,
			{ID: "asm-x", Role: directory.RoleAreaManager},
			{ID: "mgr-x", Role: directory.RoleStoreManager},
			{ID: "odd", Role: directory.Role("auditor")},
		}
		for _, p := range cases {
			scope, err := resolver.Resolve(context.Background(), p)
			if err != nil {
				t.Fatalf("Resolve returned error: %v", err)
			}
			if !scope.IsEmpty() {
				t.Fatalf("expected empty scope for %+v", p)
			}
		}
	})

	t.Run("directory failure surfaces", func(t *testing.T) {
		t.Parallel()

		failing := newFakeDirectory()
		failing.zoneListErr = errors.New("boom")
		r := NewResolver(failing)

		_, err := r.Resolve(context.Background(), &directory.Profile{
			ID: "asm-1", Role: directory.RoleAreaManager, ZoneID: strPtr("zone-1"),
		})
		if err == nil {
			t.Fatal("expected the directory error to surface")
		}
	})
}

func TestAllowsCreate(t *testing.T) {
	t.Parallel()

	emp := &directory.Employee{ID: "emp-1", StoreID: "store-a", ZoneID: "zone-1", Status: directory.EmployeeActive}
	sameZone := &directory.Store{ID: "store-b", ZoneID: "zone-1"}
	otherZone := &directory.Store{ID: "store-c", ZoneID: "zone-2"}

	cases := []struct {
		name    string
		profile *directory.Profile
		dest    *directory.Store
		want    bool
	}{
		{name: "hr anywhere", profile: &directory.Profile{Role: directory.RoleHR}, dest: otherZone, want: true},
		{name: "asm within zone", profile: &directory.Profile{Role: directory.RoleAreaManager, ZoneID: strPtr("zone-1")}, dest: sameZone, want: true},
		{name: "asm cross zone denied", profile: &directory.Profile{Role: directory.RoleAreaManager, ZoneID: strPtr("zone-1")}, dest: otherZone, want: false},
		{name: "asm other zone denied", profile: &directory.Profile{Role: directory.RoleAreaManager, ZoneID: strPtr("zone-2")}, dest: sameZone, want: false},
		{name: "manager own store within zone", profile: &directory.Profile{Role: directory.RoleStoreManager, StoreID: strPtr("store-a")}, dest: sameZone, want: true},
		{name: "manager cross zone denied", profile: &directory.Profile{Role: directory.RoleStoreManager, StoreID: strPtr("store-a")}, dest: otherZone, want: false},
		{name: "manager other store denied", profile: &directory.Profile{Role: directory.RoleStoreManager, StoreID: strPtr("store-b")}, dest: sameZone, want: false},
		{name: "unknown role denied", profile: &directory.Profile{Role: directory.Role("auditor")}, dest: sameZone, want: false},
		{name: "nil profile denied", profile: nil, dest: sameZone, want: false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			if got := AllowsCreate(tc.profile, emp, tc.dest); got != tc.want {
				t.Fatalf("AllowsCreate = %t, want %t", got, tc.want)
			}
		})
	}
}

func TestScope_AllowsApprove(t *testing.T) {
	t.Parallel()

	resolver := NewResolver(newFakeDirectory())

	cases := []struct {
		name    string
		profile *directory.Profile
		want    bool
	}{
		{name: "hr", profile: &directory.Profile{Role: directory.RoleHR}, want: true},
		{name: "asm of source zone", profile: &directory.Profile{Role: directory.RoleAreaManager, ZoneID: strPtr("zone-1")}, want: true},
		{name: "asm of destination zone", profile: &directory.Profile{Role: directory.RoleAreaManager, ZoneID: strPtr("zone-2")}, want: true},
		{name: "asm of unrelated zone", profile: &directory.Profile{Role: directory.RoleAreaManager, ZoneID: strPtr("zone-3")}, want: false},
		{name: "store manager never approves", profile: &directory.Profile{Role: directory.RoleStoreManager, StoreID: strPtr("store-a")}, want: false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			scope, err := resolver.Resolve(context.Background(), tc.profile)
			if err != nil {
				t.Fatalf("Resolve returned error: %v", err)
			}
			if got := scope.AllowsApprove("zone-1", "zone-2"); got != tc.want {
				t.Fatalf("AllowsApprove = %t, want %t", got, tc.want)
			}
		})
	}
}

func TestScope_AllowsRevoke(t *testing.T) {
	t.Parallel()

	resolver := NewResolver(newFakeDirectory())

	cases := []struct {
		name    string
		profile *directory.Profile
		want    bool
	}{
		{name: "hr", profile: &directory.Profile{Role: directory.RoleHR}, want: true},
		{name: "manager of source store", profile: &directory.Profile{Role: directory.RoleStoreManager, StoreID: strPtr("store-a")}, want: true},
		{name: "manager of destination store", profile: &directory.Profile{Role: directory.RoleStoreManager, StoreID: strPtr("store-b")}, want: true},
		{name: "manager of unrelated store", profile: &directory.Profile{Role: directory.RoleStoreManager, StoreID: strPtr("store-x")}, want: false},
		{name: "asm of either zone", profile: &directory.Profile{Role: directory.RoleAreaManager, ZoneID: strPtr("zone-1")}, want: true},
		{name: "asm of unrelated zone", profile: &directory.Profile{Role: directory.RoleAreaManager, ZoneID: strPtr("zone-3")}, want: false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			scope, err := resolver.Resolve(context.Background(), tc.profile)
			if err != nil {
				t.Fatalf("Resolve returned error: %v", err)
			}
			if got := scope.AllowsRevoke("store-a", "store-b", "zone-1", "zone-2"); got != tc.want {
				t.Fatalf("AllowsRevoke = %t, want %t", got, tc.want)
			}
		})
	}
}
