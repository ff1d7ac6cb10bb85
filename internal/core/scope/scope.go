package scope

import (
	"context"

	"github.com/ogurasousui/assignment-grpc-clean-arch/internal/core/directory"
)

// Kind は権限スコープの広さを表します。
type Kind string

const (
	KindNone    Kind = "none"
	KindStore   Kind = "store"
	KindZone    Kind = "zone"
	KindCompany Kind = "company"
)

// Scope は呼び出し元が操作できる店舗・エリアの集合です。
// KindCompany は無制限、KindNone は全拒否を意味します。
type Scope struct {
	Kind     Kind
	StoreIDs []string
	ZoneIDs  []string
}

// IsEmpty はスコープが空(全拒否)かどうかを返します。
func (s Scope) IsEmpty() bool {
	return s.Kind == KindNone || s.Kind == ""
}

// CoversStore は店舗がスコープに含まれるかを返します。
func (s Scope) CoversStore(storeID string) bool {
	if s.Kind == KindCompany {
		return true
	}
	for _, id := range s.StoreIDs {
		if id == storeID {
			return true
		}
	}
	return false
}

// CoversZone はエリアがスコープに含まれるかを返します。
func (s Scope) CoversZone(zoneID string) bool {
	if s.Kind == KindCompany {
		return true
	}
	for _, id := range s.ZoneIDs {
		if id == zoneID {
			return true
		}
	}
	return false
}

// DirectoryReader はスコープ解決に必要なディレクトリ参照です。
type DirectoryReader interface {
	FindStore(ctx context.Context, id string) (*directory.Store, error)
	ListStoresByZone(ctx context.Context, zoneID string) ([]*directory.Store, error)
}

// Resolver は Profile から権限スコープを導出します。副作用はありません。
type Resolver struct {
	dir DirectoryReader
}

// NewResolver は Resolver を生成します。
func NewResolver(dir DirectoryReader) *Resolver {
	return &Resolver{dir: dir}
}

// Resolve は役割と所属からスコープを計算します。役割が不明な場合や
// 必須の所属が欠けている場合は空スコープを返し、エラーにはしません。
// ディレクトリ参照そのものの失敗だけがエラーとして返ります。
func (r *Resolver) Resolve(ctx context.Context, p *directory.Profile) (Scope, error) {
	if p == nil {
		return Scope{Kind: KindNone}, nil
	}

	switch p.Role {
	case directory.RoleHR:
		return Scope{Kind: KindCompany}, nil

	case directory.RoleAreaManager:
		if p.ZoneID == nil || *p.ZoneID == "" {
			return Scope{Kind: KindNone}, nil
		}
		stores, err := r.dir.ListStoresByZone(ctx, *p.ZoneID)
		if err != nil {
			return Scope{Kind: KindNone}, err
		}
		storeIDs := make([]string, 0, len(stores))
		for _, st := range stores {
			storeIDs = append(storeIDs, st.ID)
		}
		return Scope{Kind: KindZone, StoreIDs: storeIDs, ZoneIDs: []string{*p.ZoneID}}, nil

	case directory.RoleStoreManager:
		if p.StoreID == nil || *p.StoreID == "" {
			return Scope{Kind: KindNone}, nil
		}
		store, err := r.dir.FindStore(ctx, *p.StoreID)
		if err != nil {
			return Scope{Kind: KindNone}, err
		}
		return Scope{Kind: KindStore, StoreIDs: []string{store.ID}, ZoneIDs: []string{store.ZoneID}}, nil

	default:
		return Scope{Kind: KindNone}, nil
	}
}

// AllowsCreate は委任・異動の新規作成権限を判定します。
// HR は無制限。エリアマネージャは従業員のエリアと移動先エリアの両方が
// 自エリアである場合のみ。店舗マネージャは自店舗の従業員に限り、
// かつ移動先が従業員の現在エリア内(エリア跨ぎ禁止)の場合のみです。
func AllowsCreate(p *directory.Profile, emp *directory.Employee, dest *directory.Store) bool {
	if p == nil || emp == nil || dest == nil {
		return false
	}

	switch p.Role {
	case directory.RoleHR:
		return true
	case directory.RoleAreaManager:
		if p.ZoneID == nil || *p.ZoneID == "" {
			return false
		}
		return emp.ZoneID == *p.ZoneID && dest.ZoneID == *p.ZoneID
	case directory.RoleStoreManager:
		if p.StoreID == nil || *p.StoreID == "" {
			return false
		}
		return emp.StoreID == *p.StoreID && dest.ZoneID == emp.ZoneID
	default:
		return false
	}
}

// AllowsApprove は異動の承認・却下権限を判定します。店舗スコープに
// 承認権限はありません。自分の申請を自分で承認できない制約は
// 呼び出し側が InitiatedBy と突き合わせて判定します。
func (s Scope) AllowsApprove(fromZoneID, toZoneID string) bool {
	switch s.Kind {
	case KindCompany:
		return true
	case KindZone:
		return s.CoversZone(fromZoneID) || s.CoversZone(toZoneID)
	default:
		return false
	}
}

// AllowsRevoke は委任の取り消し・延長権限を判定します。店舗スコープは
// 元店舗または受け入れ店舗を含む場合に許可されます。
func (s Scope) AllowsRevoke(fromStoreID, toStoreID, fromZoneID, toZoneID string) bool {
	switch s.Kind {
	case KindCompany:
		return true
	case KindZone:
		return s.CoversZone(fromZoneID) || s.CoversZone(toZoneID)
	case KindStore:
		return s.CoversStore(fromStoreID) || s.CoversStore(toStoreID)
	default:
		return false
	}
}
