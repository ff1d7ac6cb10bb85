package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/ogurasousui/assignment-grpc-clean-arch/internal/core/directory"
	pgdb "github.com/ogurasousui/assignment-grpc-clean-arch/internal/platform/db/postgres"
)

const (
	foreignKeyViolationCode = "23503"
	uniqueViolationCode     = "23505"
	checkViolationCode      = "23514"
)

const employeeColumns = `id, store_id, zone_id, status, created_at, updated_at`

// DirectoryRepository は PostgreSQL を利用した組織ディレクトリの実装です。
type DirectoryRepository struct {
	pool pgdb.Queryer
}

// NewDirectoryRepository は DirectoryRepository を生成します。
func NewDirectoryRepository(pool pgdb.Queryer) *DirectoryRepository {
	return &DirectoryRepository{pool: pool}
}

// FindEmployee は ID で従業員を取得します。
func (r *DirectoryRepository) FindEmployee(ctx context.Context, id string) (*directory.Employee, error) {
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	row := exec.QueryRow(ctx, `
        SELECT `+employeeColumns+`
          FROM employees
         WHERE id = $1
         LIMIT 1
    `, id)

	return scanDirectoryEmployee(row)
}

// FindEmployeeForUpdate は従業員行をロックして取得します。
// 同一従業員に対する作成・完了処理を直列化するための行ロックで、
// 書き込みトランザクション内からのみ呼ばれます。
func (r *DirectoryRepository) FindEmployeeForUpdate(ctx context.Context, id string) (*directory.Employee, error) {
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	row := exec.QueryRow(ctx, `
        SELECT `+employeeColumns+`
          FROM employees
         WHERE id = $1
           FOR UPDATE
    `, id)

	return scanDirectoryEmployee(row)
}

// FindStore は ID で店舗を取得します。
func (r *DirectoryRepository) FindStore(ctx context.Context, id string) (*directory.Store, error) {
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	row := exec.QueryRow(ctx, `
        SELECT id, zone_id, name
          FROM stores
         WHERE id = $1
         LIMIT 1
    `, id)

	var store directory.Store
	if err := row.Scan(&store.ID, &store.ZoneID, &store.Name); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, directory.ErrStoreNotFound
		}
		return nil, err
	}
	return &store, nil
}

// FindZone は ID でエリアを取得します。
func (r *DirectoryRepository) FindZone(ctx context.Context, id string) (*directory.Zone, error) {
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	row := exec.QueryRow(ctx, `
        SELECT id, name
          FROM zones
         WHERE id = $1
         LIMIT 1
    `, id)

	var zone directory.Zone
	if err := row.Scan(&zone.ID, &zone.Name); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, directory.ErrZoneNotFound
		}
		return nil, err
	}
	return &zone, nil
}

// FindProfile は ID で操作主体を取得します。
func (r *DirectoryRepository) FindProfile(ctx context.Context, id string) (*directory.Profile, error) {
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	row := exec.QueryRow(ctx, `
        SELECT id, role, zone_id, store_id
          FROM profiles
         WHERE id = $1
         LIMIT 1
    `, id)

	var (
		profile directory.Profile
		role    string
		zoneID  sql.NullString
		storeID sql.NullString
	)
	if err := row.Scan(&profile.ID, &role, &zoneID, &storeID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, directory.ErrProfileNotFound
		}
		return nil, err
	}

	profile.Role = directory.Role(role)
	if zoneID.Valid {
		z := zoneID.String
		profile.ZoneID = &z
	}
	if storeID.Valid {
		st := storeID.String
		profile.StoreID = &st
	}
	return &profile, nil
}

// ListStoresByZone はエリア内の店舗を取得します。
func (r *DirectoryRepository) ListStoresByZone(ctx context.Context, zoneID string) ([]*directory.Store, error) {
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	rows, err := exec.Query(ctx, `
        SELECT id, zone_id, name
          FROM stores
         WHERE zone_id = $1
         ORDER BY id
    `, zoneID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	stores := make([]*directory.Store, 0)
	for rows.Next() {
		var store directory.Store
		if err := rows.Scan(&store.ID, &store.ZoneID, &store.Name); err != nil {
			return nil, err
		}
		stores = append(stores, &store)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return stores, nil
}

// ReassignEmployee は従業員の所属を条件付きで書き換えます。単一の
// UPDATE 文で、現在の所属一致の検査・移動先エリアの導出・書き込みを
// まとめて行います。0 行更新の場合は原因を調べてから該当する
// エラーを返します。
func (r *DirectoryRepository) ReassignEmployee(ctx context.Context, employeeID, fromStoreID, toStoreID string, at time.Time) (*directory.Employee, error) {
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	row := exec.QueryRow(ctx, `
        UPDATE employees e
           SET store_id = s.id,
               zone_id = s.zone_id,
               updated_at = $4
          FROM stores s
         WHERE s.id = $3
           AND e.id = $1
           AND e.store_id = $2
        RETURNING e.id, e.store_id, e.zone_id, e.status, e.created_at, e.updated_at
    `, employeeID, fromStoreID, toStoreID, at.UTC())

	updated, err := scanDirectoryEmployee(row)
	if err == nil {
		return updated, nil
	}
	if !errors.Is(err, directory.ErrEmployeeNotFound) {
		return nil, translateDirectoryPgError(err)
	}

	// 条件不一致の原因を特定する。
	current, findErr := r.FindEmployee(ctx, employeeID)
	if findErr != nil {
		return nil, findErr
	}
	if current.StoreID != fromStoreID {
		return nil, directory.ErrStoreChanged
	}
	if _, storeErr := r.FindStore(ctx, toStoreID); storeErr != nil {
		return nil, storeErr
	}
	// 再読込ではどの条件も崩れていない。UPDATE と再読込の間で所属が
	// 入れ替わったとみなす。
	return nil, directory.ErrStoreChanged
}

func scanDirectoryEmployee(row pgx.Row) (*directory.Employee, error) {
	var (
		emp       directory.Employee
		status    string
		createdAt time.Time
		updatedAt time.Time
	)

	if err := row.Scan(&emp.ID, &emp.StoreID, &emp.ZoneID, &status, &createdAt, &updatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, directory.ErrEmployeeNotFound
		}
		return nil, err
	}

	emp.Status = directory.EmployeeStatus(status)
	emp.CreatedAt = createdAt
	emp.UpdatedAt = updatedAt
	return &emp, nil
}

func translateDirectoryPgError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return directory.ErrEmployeeNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code == foreignKeyViolationCode {
			switch pgErr.ConstraintName {
			case "employees_store_id_fkey":
				return directory.ErrStoreNotFound
			case "employees_zone_id_fkey":
				return directory.ErrZoneNotFound
			}
		}
	}

	return err
}
