package delegation

import (
	"context"
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

// DirectoryReader は委任処理に必要なディレクトリ参照です。
type DirectoryReader interface {
	FindEmployee(ctx context.Context, id string) (*directory.Employee, error)
	FindEmployeeForUpdate(ctx context.Context, id string) (*directory.Employee, error)
	FindStore(ctx context.Context, id string) (*directory.Store, error)
	FindProfile(ctx context.Context, id string) (*directory.Profile, error)
	ListStoresByZone(ctx context.Context, zoneID string) ([]*directory.Store, error)
}

// Limits は委任期間と延長回数の上限です。
type Limits struct {
	MinDays       int
	MaxDays       int
	WarnDays      int
	MaxExtensions int
}

// DefaultLimits は設定未指定時の上限値です。
var DefaultLimits = Limits{MinDays: 1, MaxDays: 90, WarnDays: 7, MaxExtensions: 2}

// Service は委任に関するユースケースをまとめます。
type Service struct {
	repo      Repository
	dir       DirectoryReader
	transfers TransferGate
	scopes    *scope.Resolver
	clock     Clock
	tx        TransactionManager
	limits    Limits
}

// UseCase は委任ユースケースの公開インターフェースです。
type UseCase interface {
	Create(ctx context.Context, in CreateInput) (*Delegation, error)
	Revoke(ctx context.Context, id, actorID string) (*Delegation, error)
	Extend(ctx context.Context, in ExtendInput) (*Delegation, error)
	Get(ctx context.Context, id string) (*Delegation, error)
	ListByEmployee(ctx context.Context, employeeID string) ([]*Delegation, error)
	GetActiveDelegation(ctx context.Context, employeeID string) (*Delegation, error)
	IsEmployeeDelegated(ctx context.Context, employeeID string) (bool, error)
	IsDateRestricted(ctx context.Context, employeeID string, date time.Time) (bool, error)
}

// NewService は Service を生成します。
func NewService(repo Repository, dir DirectoryReader, transfers TransferGate, clock Clock, tx TransactionManager, limits Limits) *Service {
	if clock == nil {
		clock = realClock{}
	}
	if tx == nil {
		tx = noopTransactionManager{}
	}
	if limits == (Limits{}) {
		limits = DefaultLimits
	}
	return &Service{repo: repo, dir: dir, transfers: transfers, scopes: scope.NewResolver(dir), clock: clock, tx: tx, limits: limits}
}

// CreateInput は委任作成の入力です。FromStoreID は任意で、指定された
// 場合は従業員の現在所属と一致することを検証します(古いクライアント
// 状態の検出)。
type CreateInput struct {
	ActorID     string
	EmployeeID  string
	FromStoreID string
	ToStoreID   string
	ValidFrom   time.Time
	ValidUntil  time.Time
	AutoReturn  bool
}

// ExtendInput は委任期間延長の入力です。
type ExtendInput struct {
	ID            string
	ActorID       string
	NewValidUntil time.Time
}

// Create は委任を新規作成します。検証ルールは宣言順に評価され、
// 最初の失敗で打ち切られます。従業員行をロックした上で重複判定を行う
// ため、同一従業員に対する並行作成はどちらか一方だけが成功します。
func (s *Service) Create(ctx context.Context, in CreateInput) (*Delegation, error) {
	actorID := strings.TrimSpace(in.ActorID)
	if actorID == "" {
		return nil, ErrInvalidID
	}

	employeeID := strings.TrimSpace(in.EmployeeID)
	toStoreID := strings.TrimSpace(in.ToStoreID)
	fromStoreID := strings.TrimSpace(in.FromStoreID)
	validFrom := DateOnly(in.ValidFrom)
	validUntil := DateOnly(in.ValidUntil)

	var created *Delegation
	if err := s.tx.WithinReadWrite(ctx, func(txCtx context.Context) error {
		if employeeID == "" {
			return ErrInvalidEmployeeID
		}
		if toStoreID == "" {
			return ErrInvalidStoreID
		}
		if in.ValidFrom.IsZero() || in.ValidUntil.IsZero() {
			return ErrInvalidPeriod
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
		today := DateOnly(now)

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
				if validFrom.Before(today) {
					return ErrStartInPast
				}
				if !validUntil.After(validFrom) {
					return ErrInvalidPeriod
				}
				days := DurationDays(validFrom, validUntil)
				if days < s.limits.MinDays {
					return ErrTooShort
				}
				if days > s.limits.MaxDays {
					return ErrTooLong
				}
				return nil
			}},
			{Name: "conflicts", Check: func(ruleCtx context.Context) error {
				return s.checkConflicts(txCtx, employeeID, "", validFrom, validUntil, now)
			}},
		}

		if err := rules.Run(txCtx, chain); err != nil {
			return err
		}

		status := StatusPending
		if !validFrom.After(today) {
			status = StatusActive
		}

		d := &Delegation{
			ID:          uuid.NewString(),
			EmployeeID:  emp.ID,
			FromStoreID: emp.StoreID,
			FromZoneID:  emp.ZoneID,
			ToStoreID:   dest.ID,
			ToZoneID:    dest.ZoneID,
			DelegatedBy: profile.ID,
			ValidFrom:   validFrom,
			ValidUntil:  validUntil,
			Status:      status,
			AutoReturn:  in.AutoReturn,
			CreatedAt:   now,
			UpdatedAt:   now,
		}

		result, err := s.repo.Create(txCtx, d)
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

// Revoke は委任を取り消します。既に終端状態のレコードは拒否されます
// (取り消し済みレコードへの再取り消しは冪等に失敗します)。
func (s *Service) Revoke(ctx context.Context, id, actorID string) (*Delegation, error) {
	id = strings.TrimSpace(id)
	actorID = strings.TrimSpace(actorID)
	if id == "" || actorID == "" {
		return nil, ErrInvalidID
	}

	var revoked *Delegation
	var expired bool
	if err := s.tx.WithinReadWrite(ctx, func(txCtx context.Context) error {
		d, err := s.repo.FindByID(txCtx, id)
		if err != nil {
			return err
		}

		now := s.clock.Now()
		if d.Status.IsTerminal() {
			return ErrAlreadyFinished
		}
		if EffectiveStatus(d, now) == StatusExpired {
			// 期限切れの遅延反映をコミットするため、拒否は
			// トランザクションの外で返す。
			if _, err := s.writeBackExpiry(txCtx, d, now); err != nil {
				return err
			}
			expired = true
			return nil
		}

		profile, err := s.dir.FindProfile(txCtx, actorID)
		if err != nil {
			return err
		}
		sc, err := s.scopes.Resolve(txCtx, profile)
		if err != nil {
			return err
		}
		if !sc.AllowsRevoke(d.FromStoreID, d.ToStoreID, d.FromZoneID, d.ToZoneID) {
			return ErrPermissionDenied
		}

		d.Status = StatusRevoked
		d.UpdatedAt = now

		result, err := s.repo.Update(txCtx, d)
		if err != nil {
			return err
		}
		revoked = result
		return nil
	}); err != nil {
		return nil, err
	}
	if expired {
		return nil, ErrAlreadyFinished
	}

	return revoked, nil
}

// Extend は委任の終了日を延長します。延長回数には上限があり、
// 延長後の総日数も通常の上限に従います。
func (s *Service) Extend(ctx context.Context, in ExtendInput) (*Delegation, error) {
	id := strings.TrimSpace(in.ID)
	actorID := strings.TrimSpace(in.ActorID)
	if id == "" || actorID == "" {
		return nil, ErrInvalidID
	}
	if in.NewValidUntil.IsZero() {
		return nil, ErrInvalidExtension
	}
	newUntil := DateOnly(in.NewValidUntil)

	var extended *Delegation
	var expired bool
	if err := s.tx.WithinReadWrite(ctx, func(txCtx context.Context) error {
		d, err := s.repo.FindByID(txCtx, id)
		if err != nil {
			return err
		}

		now := s.clock.Now()
		if d.Status.IsTerminal() {
			return ErrAlreadyFinished
		}
		if EffectiveStatus(d, now) == StatusExpired {
			// Revoke と同じく書き戻しをコミットしてから拒否する。
			if _, err := s.writeBackExpiry(txCtx, d, now); err != nil {
				return err
			}
			expired = true
			return nil
		}

		profile, err := s.dir.FindProfile(txCtx, actorID)
		if err != nil {
			return err
		}
		sc, err := s.scopes.Resolve(txCtx, profile)
		if err != nil {
			return err
		}
		if !sc.AllowsRevoke(d.FromStoreID, d.ToStoreID, d.FromZoneID, d.ToZoneID) {
			return ErrPermissionDenied
		}

		if !newUntil.After(d.ValidUntil) {
			return ErrInvalidExtension
		}
		if d.ExtensionCount >= s.limits.MaxExtensions {
			return ErrExtensionLimit
		}
		if DurationDays(d.ValidFrom, newUntil) > s.limits.MaxDays {
			return ErrTooLong
		}
		if err := s.checkOverlap(txCtx, d.EmployeeID, d.ID, d.ValidFrom, newUntil, now); err != nil {
			return err
		}

		d.ValidUntil = newUntil
		d.ExtensionCount++
		d.UpdatedAt = now

		result, err := s.repo.Update(txCtx, d)
		if err != nil {
			return err
		}
		extended = result
		return nil
	}); err != nil {
		return nil, err
	}
	if expired {
		return nil, ErrAlreadyFinished
	}

	return extended, nil
}

// Get は委任を取得します。
func (s *Service) Get(ctx context.Context, id string) (*Delegation, error) {
	if strings.TrimSpace(id) == "" {
		return nil, ErrInvalidID
	}

	var result *Delegation
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

// ListByEmployee は従業員の委任履歴を取得します。
func (s *Service) ListByEmployee(ctx context.Context, employeeID string) ([]*Delegation, error) {
	if strings.TrimSpace(employeeID) == "" {
		return nil, ErrInvalidEmployeeID
	}

	var result []*Delegation
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

// GetActiveDelegation は現在効力を持つ委任を返します。存在しない場合は
// nil を返し、エラーにはしません(勤務表側が有無だけを見るため)。
func (s *Service) GetActiveDelegation(ctx context.Context, employeeID string) (*Delegation, error) {
	if strings.TrimSpace(employeeID) == "" {
		return nil, ErrInvalidEmployeeID
	}

	var active *Delegation
	if err := s.tx.WithinReadOnly(ctx, func(txCtx context.Context) error {
		open, err := s.repo.ListOpenByEmployee(txCtx, employeeID)
		if err != nil {
			return err
		}
		now := s.clock.Now()
		for _, d := range open {
			if IsCurrentlyActive(d, now) {
				active = d
				return nil
			}
		}
		return nil
	}); err != nil {
		return nil, err
	}

	return active, nil
}

// IsEmployeeDelegated は従業員が現在委任中かを返します。
func (s *Service) IsEmployeeDelegated(ctx context.Context, employeeID string) (bool, error) {
	active, err := s.GetActiveDelegation(ctx, employeeID)
	if err != nil {
		return false, err
	}
	return active != nil, nil
}

// IsDateRestricted は委任によって指定日の勤務表入力が制限されるかを
// 返します。現在効力を持つ委任の開始日以降の日付が制限対象です。
func (s *Service) IsDateRestricted(ctx context.Context, employeeID string, date time.Time) (bool, error) {
	active, err := s.GetActiveDelegation(ctx, employeeID)
	if err != nil {
		return false, err
	}
	if active == nil {
		return false, nil
	}
	return !DateOnly(date).Before(active.ValidFrom), nil
}

// checkConflicts は重複委任と進行中異動の双方を検査します。
func (s *Service) checkConflicts(ctx context.Context, employeeID, excludeID string, start, end time.Time, now time.Time) error {
	if err := s.checkOverlap(ctx, employeeID, excludeID, start, end, now); err != nil {
		return err
	}

	open, err := s.transfers.HasOpenTransfer(ctx, employeeID)
	if err != nil {
		return err
	}
	if open {
		return ErrTransferInProgress
	}
	return nil
}

// checkOverlap は従業員の未終了委任との期間交差を検査します。
// 走査中に期限切れを観測したレコードには遅延書き戻しを行います。
func (s *Service) checkOverlap(ctx context.Context, employeeID, excludeID string, start, end time.Time, now time.Time) error {
	open, err := s.repo.ListOpenByEmployee(ctx, employeeID)
	if err != nil {
		return err
	}

	for _, existing := range open {
		if existing.ID == excludeID {
			continue
		}
		if EffectiveStatus(existing, now) == StatusExpired {
			if _, err := s.writeBackExpiry(ctx, existing, now); err != nil {
				return err
			}
			continue
		}
		if Overlaps(existing, start, end) {
			return ErrOverlap
		}
	}
	return nil
}

func (s *Service) writeBackExpiry(ctx context.Context, d *Delegation, now time.Time) (*Delegation, error) {
	d.Status = StatusExpired
	d.UpdatedAt = now
	return s.repo.Update(ctx, d)
}
