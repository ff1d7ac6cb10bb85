package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/ogurasousui/assignment-grpc-clean-arch/internal/core/transfer"
	pgdb "github.com/ogurasousui/assignment-grpc-clean-arch/internal/platform/db/postgres"
)

const transferColumns = `id, employee_id, from_store_id, from_zone_id, to_store_id, to_zone_id,
               initiated_by, approved_by, transfer_date, status, completed_at, created_at, updated_at`

// TransferRepository は PostgreSQL を利用した異動永続化の実装です。
// delegation パッケージの TransferGate も実装します。
type TransferRepository struct {
	pool pgdb.Queryer
}

// NewTransferRepository は TransferRepository を生成します。
func NewTransferRepository(pool pgdb.Queryer) *TransferRepository {
	return &TransferRepository{pool: pool}
}

// Create は異動レコードを新規作成します。
func (r *TransferRepository) Create(ctx context.Context, t *transfer.Transfer) (*transfer.Transfer, error) {
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	row := exec.QueryRow(ctx, `
        INSERT INTO transfers (id, employee_id, from_store_id, from_zone_id, to_store_id, to_zone_id,
                               initiated_by, approved_by, transfer_date, status, completed_at,
                               created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
        RETURNING `+transferColumns+`
    `,
		t.ID,
		t.EmployeeID,
		t.FromStoreID,
		t.FromZoneID,
		t.ToStoreID,
		t.ToZoneID,
		t.InitiatedBy,
		nullableString(t.ApprovedBy),
		t.TransferDate,
		string(t.Status),
		nullableTimestamp(t.CompletedAt),
		t.CreatedAt,
		t.UpdatedAt,
	)

	created, err := scanTransfer(row)
	if err != nil {
		return nil, translateTransferPgError(err)
	}
	return created, nil
}

// Update は異動の状態・承認者・完了時刻を更新します。
func (r *TransferRepository) Update(ctx context.Context, t *transfer.Transfer) (*transfer.Transfer, error) {
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	row := exec.QueryRow(ctx, `
        UPDATE transfers
           SET approved_by = $1,
               status = $2,
               completed_at = $3,
               updated_at = $4
         WHERE id = $5
        RETURNING `+transferColumns+`
    `,
		nullableString(t.ApprovedBy),
		string(t.Status),
		nullableTimestamp(t.CompletedAt),
		t.UpdatedAt,
		t.ID,
	)

	updated, err := scanTransfer(row)
	if err != nil {
		return nil, translateTransferPgError(err)
	}
	return updated, nil
}

// FindByID は ID で異動を取得します。
func (r *TransferRepository) FindByID(ctx context.Context, id string) (*transfer.Transfer, error) {
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	row := exec.QueryRow(ctx, `
        SELECT `+transferColumns+`
          FROM transfers
         WHERE id = $1
         LIMIT 1
    `, id)

	found, err := scanTransfer(row)
	if err != nil {
		return nil, translateTransferPgError(err)
	}
	return found, nil
}

// ListByEmployee は従業員の異動履歴を新しい順に取得します。
func (r *TransferRepository) ListByEmployee(ctx context.Context, employeeID string) ([]*transfer.Transfer, error) {
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	rows, err := exec.Query(ctx, `
        SELECT `+transferColumns+`
          FROM transfers
         WHERE employee_id = $1
         ORDER BY created_at DESC, id DESC
    `, employeeID)
	if err != nil {
		return nil, translateTransferPgError(err)
	}
	defer rows.Close()

	transfers := make([]*transfer.Transfer, 0)
	for rows.Next() {
		t, err := scanTransfer(rows)
		if err != nil {
			return nil, translateTransferPgError(err)
		}
		transfers = append(transfers, t)
	}
	if err := rows.Err(); err != nil {
		return nil, translateTransferPgError(err)
	}

	return transfers, nil
}

// HasOpenTransfer は pending または approved の異動の有無を返します。
// delegation 側の競合判定(異動進行中の従業員は委任不可)からも呼ばれます。
func (r *TransferRepository) HasOpenTransfer(ctx context.Context, employeeID string) (bool, error) {
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	row := exec.QueryRow(ctx, `
        SELECT EXISTS (
            SELECT 1
              FROM transfers
             WHERE employee_id = $1
               AND status IN ('pending', 'approved')
        )
    `, employeeID)

	var exists bool
	if err := row.Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

func scanTransfer(row pgx.Row) (*transfer.Transfer, error) {
	var (
		t            transfer.Transfer
		approvedBy   sql.NullString
		transferDate time.Time
		status       string
		completedAt  sql.NullTime
	)

	if err := row.Scan(
		&t.ID,
		&t.EmployeeID,
		&t.FromStoreID,
		&t.FromZoneID,
		&t.ToStoreID,
		&t.ToZoneID,
		&t.InitiatedBy,
		&approvedBy,
		&transferDate,
		&status,
		&completedAt,
		&t.CreatedAt,
		&t.UpdatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, transfer.ErrNotFound
		}
		return nil, err
	}

	t.Status = transfer.Status(status)
	day := transferDate.UTC()
	t.TransferDate = time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.UTC)
	if approvedBy.Valid {
		v := approvedBy.String
		t.ApprovedBy = &v
	}
	if completedAt.Valid {
		v := completedAt.Time.UTC()
		t.CompletedAt = &v
	}
	return &t, nil
}

func translateTransferPgError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return transfer.ErrNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case foreignKeyViolationCode:
			return transfer.ErrInvalidEmployeeID
		case uniqueViolationCode:
			// idx_transfers_employee_open に負けた側は進行中重複として扱う。
			return transfer.ErrAlreadyInProgress
		case checkViolationCode:
			return transfer.ErrInvalidDate
		}
	}

	return err
}

func nullableString(value *string) any {
	if value == nil {
		return nil
	}
	return *value
}

func nullableTimestamp(value *time.Time) any {
	if value == nil {
		return nil
	}
	return value.UTC()
}
