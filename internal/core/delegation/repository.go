package delegation

import "context"

// Repository は委任永続化の抽象です。レコードは削除されず、
// 終端状態のまま監査証跡として残ります。
type Repository interface {
	Create(ctx context.Context, d *Delegation) (*Delegation, error)
	Update(ctx context.Context, d *Delegation) (*Delegation, error)
	FindByID(ctx context.Context, id string) (*Delegation, error)
	ListByEmployee(ctx context.Context, employeeID string) ([]*Delegation, error)
	// ListOpenByEmployee は保存状態が pending または active の委任を返します。
	// 期限切れの遅延判定は呼び出し側が EffectiveStatus で行います。
	ListOpenByEmployee(ctx context.Context, employeeID string) ([]*Delegation, error)
}

// TransferGate は異動側の進行中レコード有無を照会する抽象です。
// 進行中(pending または approved)の異動がある従業員は委任できません。
type TransferGate interface {
	HasOpenTransfer(ctx context.Context, employeeID string) (bool, error)
}
