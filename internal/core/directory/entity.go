package directory

import "time"

// EmployeeStatus は従業員の在籍状態を表します。
type EmployeeStatus string

const (
	EmployeeActive   EmployeeStatus = "active"
	EmployeeInactive EmployeeStatus = "inactive"
)

// Zone はエリア(店舗グループ)です。所有する可変状態はありません。
type Zone struct {
	ID   string
	Name string
}

// Store は店舗です。ZoneID は作成後に変更されません。
type Store struct {
	ID     string
	ZoneID string
	Name   string
}

// Employee は従業員の所属スナップショットです。
// ZoneID は常に所属店舗の ZoneID と一致します。StoreID/ZoneID を
// 変更できるのは異動の完了処理と管理者による所属修正のみです。
type Employee struct {
	ID        string
	StoreID   string
	ZoneID    string
	Status    EmployeeStatus
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Role は呼び出し元の役割を表す閉じた列挙です。
// 判定箇所では必ず網羅的に switch し、未知の役割は拒否します。
type Role string

const (
	RoleHR           Role = "hr"
	RoleAreaManager  Role = "asm"
	RoleStoreManager Role = "store_manager"
)

// Profile は操作主体です。RoleAreaManager は ZoneID、
// RoleStoreManager は StoreID が必須です。
type Profile struct {
	ID      string
	Role    Role
	ZoneID  *string
	StoreID *string
}
