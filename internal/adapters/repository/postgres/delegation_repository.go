package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/ogurasousui/assignment-grpc-clean-arch/internal/core/delegation"
	pgdb "github.com/ogurasousui/assignment-grpc-clean-arch/internal/platform/db/postgres"
)

const delegationColumns = `id, employee_id, from_store_id, from_zone_id, to_store_id, to_zone_id,
               delegated_by, valid_from, valid_until, status, auto_return, extension_count,
               created_at, updated_at`

// DelegationRepository は PostgreSQL を利用した委任永続化の実装です。
// transfer パッケージの DelegationGate も実装します。
type DelegationRepository struct {
	pool pgdb.Queryer
}

// NewDelegationRepository は DelegationRepository を生成します。
func NewDelegationRepository(pool pgdb.Queryer) *DelegationRepository {
	return &DelegationRepository{pool: pool}
}

// Create は委任レコードを新規作成します。
func (r *DelegationRepository) Create(ctx context.Context, d *delegation.Delegation) (*delegation.Delegation, error) {
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	row := exec.QueryRow(ctx, `
        INSERT INTO delegations (id, employee_id, from_store_id, from_zone_id, to_store_id, to_zone_id,
                                 delegated_by, valid_from, valid_until, status, auto_return, extension_count,
                                 created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
        RETURNING `+delegationColumns+`
    `,
		d.ID,
		d.EmployeeID,
		d.FromStoreID,
		d.FromZoneID,
		d.ToStoreID,
		d.ToZoneID,
		d.DelegatedBy,
		d.ValidFrom,
		d.ValidUntil,
		string(d.Status),
		d.AutoReturn,
		d.ExtensionCount,
		d.CreatedAt,
		d.UpdatedAt,
	)

	created, err := scanDelegation(row)
	if err != nil {
		return nil, translateDelegationPgError(err)
	}
	return created, nil
}

// Update は委任の状態・期間・延長回数を更新します。
func (r *DelegationRepository) Update(ctx context.Context, d *delegation.Delegation) (*delegation.Delegation, error) {
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	row := exec.QueryRow(ctx, `
        UPDATE delegations
           SET valid_until = $1,
               status = $2,
               extension_count = $3,
               updated_at = $4
         WHERE id = $5
        RETURNING `+delegationColumns+`
    `,
		d.ValidUntil,
		string(d.Status),
		d.ExtensionCount,
		d.UpdatedAt,
		d.ID,
	)

	updated, err := scanDelegation(row)
	if err != nil {
		return nil, translateDelegationPgError(err)
	}
	return updated, nil
}

// FindByID は ID で委任を取得します。
func (r *DelegationRepository) FindByID(ctx context.Context, id string) (*delegation.Delegation, error) {
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	row := exec.QueryRow(ctx, `
        SELECT `+delegationColumns+`
          FROM delegations
         WHERE id = $1
         LIMIT 1
    `, id)

	found, err := scanDelegation(row)
	if err != nil {
		return nil, translateDelegationPgError(err)
	}
	return found, nil
}

// ListByEmployee は従業員の委任履歴を新しい順に取得します。
func (r *DelegationRepository) ListByEmployee(ctx context.Context, employeeID string) ([]*delegation.Delegation, error) {
	return r.list(ctx, `
        SELECT `+delegationColumns+`
          FROM delegations
         WHERE employee_id = $1
         ORDER BY valid_from DESC, id DESC
    `, employeeID)
}

// ListOpenByEmployee は保存状態が未終了の委任を取得します。
func (r *DelegationRepository) ListOpenByEmployee(ctx context.Context, employeeID string) ([]*delegation.Delegation, error) {
	return r.list(ctx, `
        SELECT `+delegationColumns+`
          FROM delegations
         WHERE employee_id = $1
           AND status IN ('pending', 'active')
         ORDER BY valid_from, id
    `, employeeID)
}

// HasOpenDelegation は期限内かつ未終了の委任の有無を返します。
// transfer 側の競合判定(委任中の従業員は異動不可)から呼ばれます。
func (r *DelegationRepository) HasOpenDelegation(ctx context.Context, employeeID string, asOf time.Time) (bool, error) {
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	row := exec.QueryRow(ctx, `
        SELECT EXISTS (
            SELECT 1
              FROM delegations
             WHERE employee_id = $1
               AND status IN ('pending', 'active')
               AND valid_until >= $2
        )
    `, employeeID, asOf)

	var exists bool
	if err := row.Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

func (r *DelegationRepository) list(ctx context.Context, query, employeeID string) ([]*delegation.Delegation, error) {
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	rows, err := exec.Query(ctx, query, employeeID)
	if err != nil {
		return nil, translateDelegationPgError(err)
	}
	defer rows.Close()

	delegations := make([]*delegation.Delegation, 0)
	for rows.Next() {
		d, err := scanDelegation(rows)
		if err != nil {
			return nil, translateDelegationPgError(err)
		}
		delegations = append(delegations, d)
	}
	if err := rows.Err(); err != nil {
		return nil, translateDelegationPgError(err)
	}

	return delegations, nil
}

func scanDelegation(row pgx.Row) (*delegation.Delegation, error) {
	var (
		d          delegation.Delegation
		status     string
		validFrom  time.Time
		validUntil time.Time
	)

	if err := row.Scan(
		&d.ID,
		&d.EmployeeID,
		&d.FromStoreID,
		&d.FromZoneID,
		&d.ToStoreID,
		&d.ToZoneID,
		&d.DelegatedBy,
		&validFrom,
		&validUntil,
		&status,
		&d.AutoReturn,
		&d.ExtensionCount,
		&d.CreatedAt,
		&d.UpdatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, delegation.ErrNotFound
		}
		return nil, err
	}

	d.Status = delegation.Status(status)
	d.ValidFrom = delegation.DateOnly(validFrom)
	d.ValidUntil = delegation.DateOnly(validUntil)
	return &d, nil
}

func translateDelegationPgError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return delegation.ErrNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case foreignKeyViolationCode:
			return delegation.ErrInvalidEmployeeID
		case checkViolationCode:
			return delegation.ErrInvalidPeriod
		}
	}

	return err
}
