package transfer

import (
	"context"
	"time"
)

// Repository は異動永続化の抽象です。レコードは削除されず、
// 終端状態のまま監査証跡として残ります。
type Repository interface {
	Create(ctx context.Context, t *Transfer) (*Transfer, error)
	Update(ctx context.Context, t *Transfer) (*Transfer, error)
	FindByID(ctx context.Context, id string) (*Transfer, error)
	ListByEmployee(ctx context.Context, employeeID string) ([]*Transfer, error)
	// HasOpenTransfer は pending または approved の異動の有無を返します。
	HasOpenTransfer(ctx context.Context, employeeID string) (bool, error)
}

// DelegationGate は委任側の進行中レコード有無を照会する抽象です。
// 委任中(保存状態が未終了で期限内)の従業員は異動を申請できません。
type DelegationGate interface {
	HasOpenDelegation(ctx context.Context, employeeID string, asOf time.Time) (bool, error)
}
