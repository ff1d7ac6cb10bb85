package postgres

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/ogurasousui/assignment-grpc-clean-arch/internal/core/transfer"
	pgxmock "github.com/pashagolub/pgxmock/v4"
)

type stubTransferRow struct {
	scanFn func(dest ...interface{}) error
}

func (s stubTransferRow) Scan(dest ...interface{}) error {
	return s.scanFn(dest...)
}

func TestScanTransfer_Success(t *testing.T) {
	t.Parallel()

	approver := "asm-1"
	transferDate := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)
	completedAt := time.Date(2025, 6, 15, 8, 0, 0, 0, time.UTC)
	createdAt := time.Now().UTC()
	updatedAt := createdAt.Add(time.Minute)

	row := stubTransferRow{scanFn: func(dest ...interface{}) error {
		if len(dest) != 13 {
			return errors.New("unexpected dest length")
		}
		*(dest[0].(*string)) = "trf-1"
		*(dest[1].(*string)) = "emp-1"
		*(dest[2].(*string)) = "store-a"
		*(dest[3].(*string)) = "zone-1"
		*(dest[4].(*string)) = "store-c"
		*(dest[5].(*string)) = "zone-2"
		*(dest[6].(*string)) = "hr-1"

		approvedDest := dest[7].(*sql.NullString)
		approvedDest.String = approver
		approvedDest.Valid = true

		*(dest[8].(*time.Time)) = transferDate
		*(dest[9].(*string)) = string(transfer.StatusCompleted)

		completedDest := dest[10].(*sql.NullTime)
		completedDest.Time = completedAt
		completedDest.Valid = true

		*(dest[11].(*time.Time)) = createdAt
		*(dest[12].(*time.Time)) = updatedAt
		return nil
	}}

	tr, err := scanTransfer(row)
	if err != nil {
		t.Fatalf("scanTransfer returned error: %v", err)
	}

	if tr.ApprovedBy == nil || *tr.ApprovedBy != approver {
		t.Fatalf("expected approver %s, got %+v", approver, tr.ApprovedBy)
	}
	if tr.CompletedAt == nil || !tr.CompletedAt.Equal(completedAt) {
		t.Fatalf("expected completion timestamp, got %+v", tr.CompletedAt)
	}
	if !tr.TransferDate.Equal(transferDate) {
		t.Fatalf("unexpected transfer date: %v", tr.TransferDate)
	}
	if tr.Status != transfer.StatusCompleted {
		t.Fatalf("expected completed status, got %s", tr.Status)
	}
}

func TestScanTransfer_NullableFieldsAbsent(t *testing.T) {
	t.Parallel()

	row := stubTransferRow{scanFn: func(dest ...interface{}) error {
		*(dest[0].(*string)) = "trf-1"
		*(dest[1].(*string)) = "emp-1"
		*(dest[2].(*string)) = "store-a"
		*(dest[3].(*string)) = "zone-1"
		*(dest[4].(*string)) = "store-b"
		*(dest[5].(*string)) = "zone-1"
		*(dest[6].(*string)) = "mgr-a"
		*(dest[8].(*time.Time)) = time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)
		*(dest[9].(*string)) = string(transfer.StatusPending)
		*(dest[11].(*time.Time)) = time.Now().UTC()
		*(dest[12].(*time.Time)) = time.Now().UTC()
		return nil
	}}

	tr, err := scanTransfer(row)
	if err != nil {
		t.Fatalf("scanTransfer returned error: %v", err)
	}

	if tr.ApprovedBy != nil {
		t.Fatalf("expected nil approver, got %+v", tr.ApprovedBy)
	}
	if tr.CompletedAt != nil {
		t.Fatalf("expected nil completion timestamp, got %+v", tr.CompletedAt)
	}
}

func TestScanTransfer_NoRows(t *testing.T) {
	t.Parallel()

	row := stubTransferRow{scanFn: func(dest ...interface{}) error {
		return pgx.ErrNoRows
	}}

	_, err := scanTransfer(row)
	if !errors.Is(err, transfer.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestTranslateTransferPgError(t *testing.T) {
	t.Parallel()

	fkErr := &pgconn.PgError{Code: foreignKeyViolationCode}
	if !errors.Is(translateTransferPgError(fkErr), transfer.ErrInvalidEmployeeID) {
		t.Fatalf("expected fk violation to map to ErrInvalidEmployeeID")
	}

	checkErr := &pgconn.PgError{Code: checkViolationCode}
	if !errors.Is(translateTransferPgError(checkErr), transfer.ErrInvalidDate) {
		t.Fatalf("expected check violation to map to ErrInvalidDate")
	}

	// 部分一意インデックスに弾かれた並行作成の敗者側。
	uniqueErr := &pgconn.PgError{Code: uniqueViolationCode, ConstraintName: "idx_transfers_employee_open"}
	if !errors.Is(translateTransferPgError(uniqueErr), transfer.ErrAlreadyInProgress) {
		t.Fatalf("expected unique violation to map to ErrAlreadyInProgress")
	}

	other := errors.New("other")
	if translateTransferPgError(other) != other {
		t.Fatalf("unexpected translation for generic error")
	}
}

func TestTransferRepository_HasOpenTransfer(t *testing.T) {
	t.Parallel()

	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("failed to create mock pool: %v", err)
	}
	defer mock.Close()

	repo := NewTransferRepository(mock)

	query := regexp.QuoteMeta(`
        SELECT EXISTS (
            SELECT 1
              FROM transfers
             WHERE employee_id = $1
               AND status IN ('pending', 'approved')
        )
    `)

	mock.ExpectQuery(query).
		WithArgs("emp-1").
		WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(false))

	open, err := repo.HasOpenTransfer(context.Background(), "emp-1")
	if err != nil {
		t.Fatalf("HasOpenTransfer returned error: %v", err)
	}
	if open {
		t.Fatalf("expected no open transfer")
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestTransferRepository_ListByEmployee(t *testing.T) {
	t.Parallel()

	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("failed to create mock pool: %v", err)
	}
	defer mock.Close()

	repo := NewTransferRepository(mock)

	query := regexp.QuoteMeta(`
        SELECT ` + transferColumns + `
          FROM transfers
         WHERE employee_id = $1
         ORDER BY created_at DESC, id DESC
    `)

	now := time.Now().UTC()
	rows := pgxmock.NewRows([]string{
		"id", "employee_id", "from_store_id", "from_zone_id", "to_store_id", "to_zone_id",
		"initiated_by", "approved_by", "transfer_date", "status", "completed_at", "created_at", "updated_at",
	}).
		AddRow("trf-2", "emp-1", "store-a", "zone-1", "store-b", "zone-1",
			"mgr-a", nil, now.AddDate(0, 0, 14), string(transfer.StatusPending), nil, now, now).
		AddRow("trf-1", "emp-1", "store-b", "zone-1", "store-a", "zone-1",
			"hr-1", "asm-1", now.AddDate(0, 0, -30), string(transfer.StatusCompleted), now.AddDate(0, 0, -30), now.AddDate(0, 0, -60), now.AddDate(0, 0, -30))

	mock.ExpectQuery(query).
		WithArgs("emp-1").
		WillReturnRows(rows)

	transfers, err := repo.ListByEmployee(context.Background(), "emp-1")
	if err != nil {
		t.Fatalf("ListByEmployee returned error: %v", err)
	}

	if len(transfers) != 2 {
		t.Fatalf("expected 2 transfers, got %d", len(transfers))
	}
	if transfers[0].Status != transfer.StatusPending || transfers[1].Status != transfer.StatusCompleted {
		t.Fatalf("unexpected statuses: %s, %s", transfers[0].Status, transfers[1].Status)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}
