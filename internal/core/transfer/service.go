package transfer

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/ogurasousui/assignment-grpc-clean-arch/internal/core/directory"
	"github.com/ogurasousui/assignment-grpc-clean-arch/internal/core/rules"
	"github.com/ogurasousui/assignment-grpc-clean-arch/internal/core/scope"
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

// DirectoryReader は異動処理に必要なディレクトリ参照と、完了時の
// 条件付き所属書き換えです。
type DirectoryReader interface {
	FindEmployee(ctx context.Context, id string) (*directory.Employee, error)
	FindEmployeeForUpdate(ctx context.Context, id string) (*directory.Employee, error)
	FindStore(ctx context.Context, id string) (*directory.Store, error)
	FindProfile(ctx context.Context, id string) (*directory.Profile, error)
	ListStoresByZone(ctx context.Context, zoneID string) ([]*directory.Store, error)
	ReassignEmployee(ctx context.Context, employeeID, fromStoreID, toStoreID string, at time.Time) (*directory.Employee, error)
}

// Limits は異動予定日の上限です。
type Limits struct {
	MaxDays int
}

// DefaultLimits は設定未指定時の上限値です。
var DefaultLimits = Limits{MaxDays: 90}

// Service は異動に関するユースケースをまとめます。
type Service struct {
	repo        Repository
	dir         DirectoryReader
	delegations DelegationGate
	scopes      *scope.Resolver
	clock       Clock
	tx          TransactionManager
	limits      Limits
}

// UseCase は異動ユースケースの公開インターフェースです。
type UseCase interface {
	Create(ctx context.Context, in CreateInput) (*Transfer, error)
	Approve(ctx context.Context, id, actorID string) (*Transfer, error)
	Reject(ctx context.Context, id, actorID string) (*Transfer, error)
	Cancel(ctx context.Context, id, actorID string) (*Transfer, error)
	Complete(ctx context.Context, id string) (*Transfer, error)
	Get(ctx context.Context, id string) (*Transfer, error)
	ListByEmployee(ctx context.Context, employeeID string) ([]*Transfer, error)
}

// NewService は Service を生成します。
func NewService(repo Repository, dir DirectoryReader, delegations DelegationGate, clock Clock, tx TransactionManager, limits Limits) *Service {
	if clock == nil {
		clock = realClock{}
	}
	if tx == nil {
		tx = noopTransactionManager{}
	}
	if limits == (Limits{}) {
		limits = DefaultLimits
	}
	return &Service{repo: repo, dir: dir, delegations: delegations, scopes: scope.NewResolver(dir), clock: clock, tx: tx, limits: limits}
}

// CreateInput は異動申請の入力です。FromStoreID は任意で、指定された
// 場合は従業員の現在所属と一致することを検証します。
type CreateInput struct {
	ActorID      string
	EmployeeID   string
	FromStoreID  string
	ToStoreID    string
	TransferDate time.Time
}

// Create は異動申請を新規作成します。検証ルールは宣言順に評価され、
// 最初の失敗で打ち切られます。
func (s *Service) Create(ctx context.Context, in CreateInput) (*Transfer, error) {
	actorID := strings.TrimSpace(in.ActorID)
	if actorID == "" {
		return nil, ErrInvalidID
	}

	employeeID := strings.TrimSpace(in.EmployeeID)
	toStoreID := strings.TrimSpace(in.ToStoreID)
	fromStoreID := strings.TrimSpace(in.FromStoreID)
	transferDate := dateOnly(in.TransferDate)

	var created *Transfer
	if err := s.tx.WithinReadWrite(ctx, func(txCtx context.Context) error {
		if employeeID == "" {
			return ErrInvalidEmployeeID
		}
		if toStoreID == "" {
			return ErrInvalidStoreID
		}
		if in.TransferDate.IsZero() {
			return ErrInvalidDate
		}

		profile, err := s.dir.FindProfile(txCtx, actorID)
		if err != nil {
			return err
		}

		emp, err := s.dir.FindEmployeeForUpdate(txCtx, employeeID)
		if err != nil {
			return err
		}

		dest, err := s.dir.FindStore(txCtx, toStoreID)
		if err != nil {
			return err
		}

		now := s.clock.Now()
		today := dateOnly(now)

		chain := []rules.Rule{
			{Name: "permission", Check: func(context.Context) error {
				if !scope.AllowsCreate(profile, emp, dest) {
					return ErrPermissionDenied
				}
				return nil
			}},
			{Name: "employee-active", Check: func(context.Context) error {
				if emp.Status != directory.EmployeeActive {
					return ErrEmployeeInactive
				}
				return nil
			}},
			{Name: "employee-store-current", Check: func(context.Context) error {
				if fromStoreID != "" && fromStoreID != emp.StoreID {
					return ErrStaleEmployee
				}
				return nil
			}},
			{Name: "store-relationship", Check: func(context.Context) error {
				if dest.ID == emp.StoreID {
					return ErrSelfAssignment
				}
				if fromStoreID != "" && fromStoreID == dest.ID {
					return ErrSameStore
				}
				return nil
			}},
			{Name: "dates", Check: func(context.Context) error {
				if transferDate.Before(today) {
					return ErrDateInPast
				}
				horizon := today.AddDate(0, 0, s.limits.MaxDays)
				if transferDate.After(horizon) {
					return ErrDateTooFar
				}
				return nil
			}},
			{Name: "conflicts", Check: func(context.Context) error {
				open, err := s.repo.HasOpenTransfer(txCtx, employeeID)
				if err != nil {
					return err
				}
				if open {
					return ErrAlreadyInProgress
				}
				delegated, err := s.delegations.HasOpenDelegation(txCtx, employeeID, today)
				if err != nil {
					return err
				}
				if delegated {
					return ErrDelegationActive
				}
				return nil
			}},
		}

		if err := rules.Run(txCtx, chain); err != nil {
			return err
		}

		t := &Transfer{
			ID:           uuid.NewString(),
			EmployeeID:   emp.ID,
			FromStoreID:  emp.StoreID,
			FromZoneID:   emp.ZoneID,
			ToStoreID:    dest.ID,
			ToZoneID:     dest.ZoneID,
			InitiatedBy:  profile.ID,
			TransferDate: transferDate,
			Status:       StatusPending,
			CreatedAt:    now,
			UpdatedAt:    now,
		}

		result, err := s.repo.Create(txCtx, t)
		if err != nil {
			return err
		}
		created = result
		return nil
	}); err != nil {
		return nil, err
	}

	return created, nil
}

// Approve は保留中の異動を承認します。申請者自身は承認できません。
func (s *Service) Approve(ctx context.Context, id, actorID string) (*Transfer, error) {
	return s.decide(ctx, id, actorID, StatusApproved)
}

// Reject は保留中の異動を却下します。承認と同じ権限が必要です。
func (s *Service) Reject(ctx context.Context, id, actorID string) (*Transfer, error) {
	return s.decide(ctx, id, actorID, StatusRejected)
}

func (s *Service) decide(ctx context.Context, id, actorID string, outcome Status) (*Transfer, error) {
	id = strings.TrimSpace(id)
	actorID = strings.TrimSpace(actorID)
	if id == "" || actorID == "" {
		return nil, ErrInvalidID
	}

	var decided *Transfer
	if err := s.tx.WithinReadWrite(ctx, func(txCtx context.Context) error {
		t, err := s.repo.FindByID(txCtx, id)
		if err != nil {
			return err
		}

		if t.Status != StatusPending {
			return ErrNotPending
		}

		profile, err := s.dir.FindProfile(txCtx, actorID)
		if err != nil {
			return err
		}
		sc, err := s.scopes.Resolve(txCtx, profile)
		if err != nil {
			return err
		}
		if !sc.AllowsApprove(t.FromZoneID, t.ToZoneID) {
			return ErrPermissionDenied
		}
		if profile.ID == t.InitiatedBy {
			return ErrSelfApproval
		}

		t.Status = outcome
		if outcome == StatusApproved {
			approver := profile.ID
			t.ApprovedBy = &approver
		}
		t.UpdatedAt = s.clock.Now()

		result, err := s.repo.Update(txCtx, t)
		if err != nil {
			return err
		}
		decided = result
		return nil
	}); err != nil {
		return nil, err
	}

	return decided, nil
}

// Cancel は申請者自身による保留中の異動の取り下げです。
func (s *Service) Cancel(ctx context.Context, id, actorID string) (*Transfer, error) {
	id = strings.TrimSpace(id)
	actorID = strings.TrimSpace(actorID)
	if id == "" || actorID == "" {
		return nil, ErrInvalidID
	}

	var cancelled *Transfer
	if err := s.tx.WithinReadWrite(ctx, func(txCtx context.Context) error {
		t, err := s.repo.FindByID(txCtx, id)
		if err != nil {
			return err
		}

		if t.Status != StatusPending {
			return ErrNotPending
		}
		if t.InitiatedBy != actorID {
			return ErrNotInitiator
		}

		t.Status = StatusCancelled
		t.UpdatedAt = s.clock.Now()

		result, err := s.repo.Update(txCtx, t)
		if err != nil {
			return err
		}
		cancelled = result
		return nil
	}); err != nil {
		return nil, err
	}

	return cancelled, nil
}

// Complete は承認済みの異動を実行します。従業員の所属書き換えと
// 異動レコードの完了は同一トランザクションで行われ、従業員が既に
// 別店舗へ移されていた場合は ErrStoreChanged で中断して何も変更
// しません(異動は approved のまま残ります)。
func (s *Service) Complete(ctx context.Context, id string) (*Transfer, error) {
	if strings.TrimSpace(id) == "" {
		return nil, ErrInvalidID
	}

	var completed *Transfer
	if err := s.tx.WithinReadWrite(ctx, func(txCtx context.Context) error {
		t, err := s.repo.FindByID(txCtx, id)
		if err != nil {
			return err
		}

		if t.Status != StatusApproved {
			return ErrNotApproved
		}

		now := s.clock.Now()
		if dateOnly(now).Before(t.TransferDate) {
			return ErrNotDue
		}

		emp, err := s.dir.FindEmployeeForUpdate(txCtx, t.EmployeeID)
		if err != nil {
			return err
		}
		if emp.StoreID != t.FromStoreID {
			return ErrStoreChanged
		}

		if _, err := s.dir.ReassignEmployee(txCtx, t.EmployeeID, t.FromStoreID, t.ToStoreID, now); err != nil {
			if errors.Is(err, directory.ErrStoreChanged) {
				return ErrStoreChanged
			}
			return err
		}

		t.Status = StatusCompleted
		t.CompletedAt = &now
		t.UpdatedAt = now

		result, err := s.repo.Update(txCtx, t)
		if err != nil {
			return err
		}
		completed = result
		return nil
	}); err != nil {
		return nil, err
	}

	return completed, nil
}

// Get は異動を取得します。
func (s *Service) Get(ctx context.Context, id string) (*Transfer, error) {
	if strings.TrimSpace(id) == "" {
		return nil, ErrInvalidID
	}

	var result *Transfer
	if err := s.tx.WithinReadOnly(ctx, func(txCtx context.Context) error {
		found, err := s.repo.FindByID(txCtx, id)
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

// ListByEmployee は従業員の異動履歴を取得します。
func (s *Service) ListByEmployee(ctx context.Context, employeeID string) ([]*Transfer, error) {
	if strings.TrimSpace(employeeID) == "" {
		return nil, ErrInvalidEmployeeID
	}

	var result []*Transfer
	if err := s.tx.WithinReadOnly(ctx, func(txCtx context.Context) error {
		found, err := s.repo.ListByEmployee(txCtx, employeeID)
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
