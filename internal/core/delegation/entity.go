package delegation

import "time"

// Status は委任の状態です。expired と revoked が終端状態です。
type Status string

const (
	StatusPending Status = "pending"
	StatusActive  Status = "active"
	StatusExpired Status = "expired"
	StatusRevoked Status = "revoked"
)

// IsTerminal は終端状態かどうかを返します。
func (s Status) IsTerminal() bool {
	switch s {
	case StatusExpired, StatusRevoked:
		return true
	default:
		return false
	}
}

// Delegation は従業員の一時的な店舗貸し出しです。従業員の所属店舗
// そのものは変更せず、期間中「別店舗で勤務している」ことを表します。
// From 側は作成時点の所属のスナップショットです。
type Delegation struct {
	ID             string
	EmployeeID     string
	FromStoreID    string
	FromZoneID     string
	ToStoreID      string
	ToZoneID       string
	DelegatedBy    string
	ValidFrom      time.Time
	ValidUntil     time.Time
	Status         Status
	AutoReturn     bool
	ExtensionCount int
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// EffectiveStatus は now 時点の実効状態を返します。期限切れは保存時に
// 書き換えるのではなく、参照側が常にこの関数で導出します(遅延評価)。
// 終端状態はそのまま保たれます。
func EffectiveStatus(d *Delegation, now time.Time) Status {
	if d == nil {
		return ""
	}
	if d.Status.IsTerminal() {
		return d.Status
	}

	day := DateOnly(now)
	switch {
	case day.After(d.ValidUntil):
		return StatusExpired
	case day.Before(d.ValidFrom):
		return StatusPending
	default:
		return StatusActive
	}
}

// IsCurrentlyActive は now 時点で委任が効力を持つかを返します。
func IsCurrentlyActive(d *Delegation, now time.Time) bool {
	return EffectiveStatus(d, now) == StatusActive
}

// IsExpiringSoon は残り日数が warnDays 未満になった有効な委任かを返します。
func IsExpiringSoon(d *Delegation, now time.Time, warnDays int) bool {
	if !IsCurrentlyActive(d, now) {
		return false
	}
	remaining := int(d.ValidUntil.Sub(DateOnly(now)).Hours() / 24)
	return remaining < warnDays
}

// Overlaps は [start, end] が委任の有効期間と交差するかを返します。
// 判定は newStart <= existingEnd && newEnd >= existingStart です。
func Overlaps(d *Delegation, start, end time.Time) bool {
	if d == nil {
		return false
	}
	return !start.After(d.ValidUntil) && !end.Before(d.ValidFrom)
}

// DateOnly は時刻を UTC の日付(0時)に正規化します。
func DateOnly(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}

// DurationDays は期間の日数(終了日 - 開始日)を返します。
func DurationDays(from, until time.Time) int {
	return int(until.Sub(from).Hours() / 24)
}
