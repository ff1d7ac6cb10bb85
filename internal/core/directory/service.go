package directory

import (
	"context"
	"strings"
	"time"
)

// Clock は現在時刻を提供します。
type Clock interface {
	Now() time.Time
}

type realClock struct{}

func (realClock) Now() time.Time {
	return time.Now().UTC()
}

// TransactionManager はトランザクション制御の抽象化です。
type TransactionManager interface {
	WithinReadOnly(ctx context.Context, fn func(context.Context) error) error
	WithinReadWrite(ctx context.Context, fn func(context.Context) error) error
}

type noopTransactionManager struct{}

func (noopTransactionManager) WithinReadOnly(ctx context.Context, fn func(context.Context) error) error {
	if fn == nil {
		return nil
	}
	return fn(ctx)
}

func (noopTransactionManager) WithinReadWrite(ctx context.Context, fn func(context.Context) error) error {
	if fn == nil {
		return nil
	}
	return fn(ctx)
}

// Service はディレクトリの参照と管理者による所属修正をまとめます。
type Service struct {
	repo  Repository
	clock Clock
	tx    TransactionManager
}

// UseCase はディレクトリユースケースの公開インターフェースです。
type UseCase interface {
	GetEmployee(ctx context.Context, id string) (*Employee, error)
	GetStore(ctx context.Context, id string) (*Store, error)
	ListStoresByZone(ctx context.Context, zoneID string) ([]*Store, error)
	CorrectEmployeeStore(ctx context.Context, in CorrectEmployeeStoreInput) (*Employee, error)
}

// NewService は Service を生成します。
func NewService(repo Repository, clock Clock, tx TransactionManager) *Service {
	if clock == nil {
		clock = realClock{}
	}
	if tx == nil {
		tx = noopTransactionManager{}
	}
	return &Service{repo: repo, clock: clock, tx: tx}
}

// GetEmployee は従業員を取得します。
func (s *Service) GetEmployee(ctx context.Context, id string) (*Employee, error) {
	if strings.TrimSpace(id) == "" {
		return nil, ErrInvalidID
	}

	var result *Employee
	if err := s.tx.WithinReadOnly(ctx, func(txCtx context.Context) error {
		found, err := s.repo.FindEmployee(txCtx, id)
		if err != nil {
			return err
		}
		result = found
		return nil
	}); err != nil {
		return nil, err
	}

	return result, nil
}

// GetStore は店舗を取得します。
func (s *Service) GetStore(ctx context.Context, id string) (*Store, error) {
	if strings.TrimSpace(id) == "" {
		return nil, ErrInvalidID
	}

	var result *Store
	if err := s.tx.WithinReadOnly(ctx, func(txCtx context.Context) error {
		found, err := s.repo.FindStore(txCtx, id)
		if err != nil {
			return err
		}
		result = found
		return nil
	}); err != nil {
		return nil, err
	}

	return result, nil
}

// ListStoresByZone はエリア内の店舗一覧を取得します。
func (s *Service) ListStoresByZone(ctx context.Context, zoneID string) ([]*Store, error) {
	if strings.TrimSpace(zoneID) == "" {
		return nil, ErrInvalidID
	}

	var stores []*Store
	if err := s.tx.WithinReadOnly(ctx, func(txCtx context.Context) error {
		found, err := s.repo.ListStoresByZone(txCtx, zoneID)
		if err != nil {
			return err
		}
		stores = found
		return nil
	}); err != nil {
		return nil, err
	}

	return stores, nil
}

// CorrectEmployeeStoreInput は管理者による所属修正の入力です。
type CorrectEmployeeStoreInput struct {
	ActorID         string
	EmployeeID      string
	ExpectedStoreID string
	NewStoreID      string
}

// CorrectEmployeeStore は HR による従業員所属の管理的修正です。
// 現在の所属が ExpectedStoreID と異なる場合は ErrStoreChanged で中断し、
// 何も変更しません。
func (s *Service) CorrectEmployeeStore(ctx context.Context, in CorrectEmployeeStoreInput) (*Employee, error) {
	if strings.TrimSpace(in.ActorID) == "" || strings.TrimSpace(in.EmployeeID) == "" ||
		strings.TrimSpace(in.ExpectedStoreID) == "" || strings.TrimSpace(in.NewStoreID) == "" {
		return nil, ErrInvalidID
	}

	var corrected *Employee
	if err := s.tx.WithinReadWrite(ctx, func(txCtx context.Context) error {
		profile, err := s.repo.FindProfile(txCtx, in.ActorID)
		if err != nil {
			return err
		}

		switch profile.Role {
		case RoleHR:
		case RoleAreaManager, RoleStoreManager:
			return ErrPermissionDenied
		default:
			return ErrPermissionDenied
		}

		if in.ExpectedStoreID == in.NewStoreID {
			return ErrSameStore
		}

		if _, err := s.repo.FindStore(txCtx, in.NewStoreID); err != nil {
			return err
		}

		result, err := s.repo.ReassignEmployee(txCtx, in.EmployeeID, in.ExpectedStoreID, in.NewStoreID, s.clock.Now())
		if err != nil {
			return err
		}
		corrected = result
		return nil
	}); err != nil {
		return nil, err
	}

	return corrected, nil
}
