package postgres

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/ogurasousui/assignment-grpc-clean-arch/internal/core/directory"
	pgxmock "github.com/pashagolub/pgxmock/v4"
)

type stubEmployeeRow struct {
	scanFn func(dest ...interface{}) error
}

func (s stubEmployeeRow) Scan(dest ...interface{}) error {
	return s.scanFn(dest...)
}

func TestScanDirectoryEmployee_Success(t *testing.T) {
	t.Parallel()

	createdAt := time.Now().UTC()
	updatedAt := createdAt.Add(time.Minute)

	row := stubEmployeeRow{scanFn: func(dest ...interface{}) error {
		if len(dest) != 6 {
			return errors.New("unexpected dest length")
		}
		*(dest[0].(*string)) = "emp-1"
		*(dest[1].(*string)) = "store-a"
		*(dest[2].(*string)) = "zone-1"
		*(dest[3].(*string)) = string(directory.EmployeeActive)
		*(dest[4].(*time.Time)) = createdAt
		*(dest[5].(*time.Time)) = updatedAt
		return nil
	}}

	emp, err := scanDirectoryEmployee(row)
	if err != nil {
		t.Fatalf("scanDirectoryEmployee returned error: %v", err)
	}

	if emp.ID != "emp-1" || emp.StoreID != "store-a" || emp.ZoneID != "zone-1" {
		t.Fatalf("unexpected employee: %+v", emp)
	}
	if emp.Status != directory.EmployeeActive {
		t.Fatalf("expected active status, got %s", emp.Status)
	}
}

func TestScanDirectoryEmployee_NoRows(t *testing.T) {
	t.Parallel()

	row := stubEmployeeRow{scanFn: func(dest ...interface{}) error {
		return pgx.ErrNoRows
	}}

	_, err := scanDirectoryEmployee(row)
	if !errors.Is(err, directory.ErrEmployeeNotFound) {
		t.Fatalf("expected ErrEmployeeNotFound, got %v", err)
	}
}

func TestTranslateDirectoryPgError(t *testing.T) {
	t.Parallel()

	storeFk := &pgconn.PgError{Code: foreignKeyViolationCode, ConstraintName: "employees_store_id_fkey"}
	if !errors.Is(translateDirectoryPgError(storeFk), directory.ErrStoreNotFound) {
		t.Fatalf("expected store fk violation to map to ErrStoreNotFound")
	}

	zoneFk := &pgconn.PgError{Code: foreignKeyViolationCode, ConstraintName: "employees_zone_id_fkey"}
	if !errors.Is(translateDirectoryPgError(zoneFk), directory.ErrZoneNotFound) {
		t.Fatalf("expected zone fk violation to map to ErrZoneNotFound")
	}

	other := errors.New("other")
	if translateDirectoryPgError(other) != other {
		t.Fatalf("unexpected translation for generic error")
	}
}

func TestDirectoryRepository_FindProfile_NullableAssignments(t *testing.T) {
	t.Parallel()

	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("failed to create mock pool: %v", err)
	}
	defer mock.Close()

	repo := NewDirectoryRepository(mock)

	query := regexp.QuoteMeta(`
        SELECT id, role, zone_id, store_id
          FROM profiles
         WHERE id = $1
         LIMIT 1
    `)

	mock.ExpectQuery(query).
		WithArgs("hr-1").
		WillReturnRows(pgxmock.NewRows([]string{"id", "role", "zone_id", "store_id"}).
			AddRow("hr-1", string(directory.RoleHR), nil, nil))

	profile, err := repo.FindProfile(context.Background(), "hr-1")
	if err != nil {
		t.Fatalf("FindProfile returned error: %v", err)
	}

	if profile.Role != directory.RoleHR {
		t.Fatalf("expected hr role, got %s", profile.Role)
	}
	if profile.ZoneID != nil || profile.StoreID != nil {
		t.Fatalf("expected nil assignments for hr, got %+v", profile)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestDirectoryRepository_ReassignEmployee_StoreChanged(t *testing.T) {
	t.Parallel()

	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("failed to create mock pool: %v", err)
	}
	defer mock.Close()

	repo := NewDirectoryRepository(mock)

	updateQuery := regexp.QuoteMeta(`
        UPDATE employees e
           SET store_id = s.id,
               zone_id = s.zone_id,
               updated_at = $4
          FROM stores s
         WHERE s.id = $3
           AND e.id = $1
           AND e.store_id = $2
        RETURNING e.id, e.store_id, e.zone_id, e.status, e.created_at, e.updated_at
    `)

	// 条件付き UPDATE が 0 行更新で終わった後、現在の所属を調べて
	// ErrStoreChanged を導出します。
	mock.ExpectQuery(updateQuery).
		WithArgs("emp-1", "store-a", "store-c", pgxmock.AnyArg()).
		WillReturnError(pgx.ErrNoRows)

	findQuery := regexp.QuoteMeta(`
        SELECT ` + employeeColumns + `
          FROM employees
         WHERE id = $1
         LIMIT 1
    `)

	now := time.Now().UTC()
	mock.ExpectQuery(findQuery).
		WithArgs("emp-1").
		WillReturnRows(pgxmock.NewRows([]string{"id", "store_id", "zone_id", "status", "created_at", "updated_at"}).
			AddRow("emp-1", "store-b", "zone-1", string(directory.EmployeeActive), now, now))

	_, err = repo.ReassignEmployee(context.Background(), "emp-1", "store-a", "store-c", now)
	if !errors.Is(err, directory.ErrStoreChanged) {
		t.Fatalf("expected ErrStoreChanged, got %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestDirectoryRepository_ReassignEmployee_RaceFallsBackToStoreChanged(t *testing.T) {
	t.Parallel()

	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("failed to create mock pool: %v", err)
	}
	defer mock.Close()

	repo := NewDirectoryRepository(mock)

	updateQuery := regexp.QuoteMeta(`
        UPDATE employees e
           SET store_id = s.id,
               zone_id = s.zone_id,
               updated_at = $4
          FROM stores s
         WHERE s.id = $3
           AND e.id = $1
           AND e.store_id = $2
        RETURNING e.id, e.store_id, e.zone_id, e.status, e.created_at, e.updated_at
    `)

	now := time.Now().UTC()
	mock.ExpectQuery(updateQuery).
		WithArgs("emp-1", "store-a", "store-c", now).
		WillReturnError(pgx.ErrNoRows)

	// 再読込では所属も移動先店舗も条件を満たしている(UPDATE との間で
	// 所属が入れ替わって戻ったケース)。保守的に ErrStoreChanged を返す。
	findQuery := regexp.QuoteMeta(`
        SELECT ` + employeeColumns + `
          FROM employees
         WHERE id = $1
         LIMIT 1
    `)
	mock.ExpectQuery(findQuery).
		WithArgs("emp-1").
		WillReturnRows(pgxmock.NewRows([]string{"id", "store_id", "zone_id", "status", "created_at", "updated_at"}).
			AddRow("emp-1", "store-a", "zone-1", string(directory.EmployeeActive), now, now))

	storeQuery := regexp.QuoteMeta(`
        SELECT id, zone_id, name
          FROM stores
         WHERE id = $1
         LIMIT 1
    `)
	mock.ExpectQuery(storeQuery).
		WithArgs("store-c").
		WillReturnRows(pgxmock.NewRows([]string{"id", "zone_id", "name"}).
			AddRow("store-c", "zone-2", "Store C"))

	_, err = repo.ReassignEmployee(context.Background(), "emp-1", "store-a", "store-c", now)
	if !errors.Is(err, directory.ErrStoreChanged) {
		t.Fatalf("expected ErrStoreChanged, got %v", err)
	}
	if errors.Is(err, directory.ErrEmployeeNotFound) {
		t.Fatal("an inconclusive retry must not be reported as a missing employee")
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestDirectoryRepository_ReassignEmployee_Success(t *testing.T) {
	t.Parallel()

	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("failed to create mock pool: %v", err)
	}
	defer mock.Close()

	repo := NewDirectoryRepository(mock)

	updateQuery := regexp.QuoteMeta(`
        UPDATE employees e
           SET store_id = s.id,
               zone_id = s.zone_id,
               updated_at = $4
          FROM stores s
         WHERE s.id = $3
           AND e.id = $1
           AND e.store_id = $2
        RETURNING e.id, e.store_id, e.zone_id, e.status, e.created_at, e.updated_at
    `)

	now := time.Now().UTC()
	mock.ExpectQuery(updateQuery).
		WithArgs("emp-1", "store-a", "store-c", now).
		WillReturnRows(pgxmock.NewRows([]string{"id", "store_id", "zone_id", "status", "created_at", "updated_at"}).
			AddRow("emp-1", "store-c", "zone-2", string(directory.EmployeeActive), now, now))

	updated, err := repo.ReassignEmployee(context.Background(), "emp-1", "store-a", "store-c", now)
	if err != nil {
		t.Fatalf("ReassignEmployee returned error: %v", err)
	}

	if updated.StoreID != "store-c" || updated.ZoneID != "zone-2" {
		t.Fatalf("unexpected assignment: %s/%s", updated.StoreID, updated.ZoneID)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}
