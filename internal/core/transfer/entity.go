package transfer

import "time"

// Status は異動の状態です。rejected / completed / cancelled が終端状態です。
type Status string

const (
	StatusPending   Status = "pending"
	StatusApproved  Status = "approved"
	StatusRejected  Status = "rejected"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

// IsTerminal は終端状態かどうかを返します。
func (s Status) IsTerminal() bool {
	switch s {
	case StatusRejected, StatusCompleted, StatusCancelled:
		return true
	default:
		return false
	}
}

// Transfer は従業員の恒久的な店舗異動申請です。承認後の完了処理で
// はじめて従業員の所属が書き換わります。From 側は作成時点の所属の
// スナップショットです。
type Transfer struct {
	ID           string
	EmployeeID   string
	FromStoreID  string
	FromZoneID   string
	ToStoreID    string
	ToZoneID     string
	InitiatedBy  string
	ApprovedBy   *string
	TransferDate time.Time
	Status       Status
	CompletedAt  *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IsOverdue は承認済みのまま異動予定日を過ぎているかを返します。
// 読み取り専用の分類であり、状態遷移を妨げるものではありません。
func IsOverdue(t *Transfer, now time.Time) bool {
	if t == nil || t.Status != StatusApproved {
		return false
	}
	return dateOnly(now).After(t.TransferDate)
}

func dateOnly(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}
