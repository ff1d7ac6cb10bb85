package directory

import (
	"context"
	"time"
)

// Repository は組織ディレクトリの永続化抽象です。
// 従業員の所属以外は読み取り専用のスナップショットとして扱います。
type Repository interface {
	FindEmployee(ctx context.Context, id string) (*Employee, error)
	// FindEmployeeForUpdate は従業員行をロックして取得します。
	// 同一従業員に対する競合チェックと書き込みを直列化するために、
	// 書き込みトランザクション内から呼びます。
	FindEmployeeForUpdate(ctx context.Context, id string) (*Employee, error)
	FindStore(ctx context.Context, id string) (*Store, error)
	FindZone(ctx context.Context, id string) (*Zone, error)
	FindProfile(ctx context.Context, id string) (*Profile, error)
	ListStoresByZone(ctx context.Context, zoneID string) ([]*Store, error)
	// ReassignEmployee は従業員の所属店舗を条件付きで付け替えます。
	// 現在の所属が fromStoreID と一致しない場合は ErrStoreChanged を返し、
	// 何も書き込みません。ZoneID は移動先店舗から導出され、更新時刻は
	// 呼び出し側の時計から at で受け取ります。
	ReassignEmployee(ctx context.Context, employeeID, fromStoreID, toStoreID string, at time.Time) (*Employee, error)
}
