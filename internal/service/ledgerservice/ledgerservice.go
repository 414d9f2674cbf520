// Package ledgerservice owns every mutation of user balances and orders.
// All balance-affecting operations run inside a single store transaction so
// that concurrent requests for the same user cannot race past the balance
// check.
package ledgerservice

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/smmpanel/backend/internal/domain"
	"github.com/smmpanel/backend/internal/store"
)

type UserRepo interface {
	GetByID(ctx context.Context, id string) (*domain.User, error)
	Save(ctx context.Context, user *domain.User) error
	UpdateUsername(ctx context.Context, id, username string, updatedAt time.Time) error
	UpdateBalance(ctx context.Context, id string, balance decimal.Decimal, updatedAt time.Time) error
	Delete(ctx context.Context, id string) error
}

type OrderRepo interface {
	Save(ctx context.Context, order *domain.Order) error
	GetByID(ctx context.Context, id string) (*domain.Order, error)
	UpdateStatus(ctx context.Context, id, status string, updatedAt time.Time) error
	Delete(ctx context.Context, id string) error
}

type Service struct {
	userRepo  UserRepo
	orderRepo OrderRepo
	txManager store.TXManager
}

func New(userRepo UserRepo, orderRepo OrderRepo, txManager store.TXManager) *Service {
	return &Service{
		userRepo:  userRepo,
		orderRepo: orderRepo,
		txManager: txManager,
	}
}

const (
	// AddBalanceAction credits the amount.
	AddBalanceAction string = "add"
	// SetBalanceAction overwrites the balance with the amount.
	SetBalanceAction string = "set"
	// DeductBalanceAction debits the amount if the balance covers it.
	DeductBalanceAction string = "deduct"
)

// bulkAddConcurrency bounds the fan-out of BulkAddBalance.
const bulkAddConcurrency = 8

var (
	ErrUserNotFound        = errors.New("user not found")
	ErrOrderNotFound       = errors.New("order not found")
	ErrUsernameAlreadySet  = errors.New("username already set")
	ErrInvalidUsername     = errors.New("username must not be empty")
	ErrInsufficientBalance = errors.New("insufficient balance")
	ErrInvalidAmount       = errors.New("amount must be non-negative")
	ErrInvalidAction       = errors.New("invalid balance action")
	ErrInvalidQuantity     = errors.New("quantity must be a positive integer")
	ErrInvalidStatus       = errors.New("invalid order status")
	ErrSelfTransfer        = errors.New("cannot transfer to the same user")
)

// CreateOrderParams carries the caller-supplied order fields. The service
// descriptor strings are stored as-is and never interpreted.
type CreateOrderParams struct {
	UserID    string
	Username  string
	Service   string
	ServiceID string
	Platform  string
	Plan      string
	Target    string
	UTR       string
	Amount    decimal.Decimal
	Quantity  int
}

// CreateUser inserts the user with a zero balance. Creating an already
// existing user is a no-op returning the stored record.
func (s *Service) CreateUser(ctx context.Context, id, email string) (*domain.User, error) {
	var user *domain.User
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		existing, err := s.userRepo.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if existing != nil {
			user = existing
			return nil
		}

		now := time.Now().UTC()
		user = &domain.User{
			ID:        id,
			Email:     email,
			Balance:   decimal.Zero,
			CreatedAt: now,
			UpdatedAt: now,
		}
		return s.userRepo.Save(ctx, user)
	})
	if err != nil {
		zap.L().Error("can't create user", zap.Error(err))
		return nil, err
	}
	return user, nil
}

func (s *Service) GetUser(ctx context.Context, id string) (*domain.User, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		zap.L().Error("failed to get user", zap.Error(err))
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

// SetUsername assigns the username exactly once. A race between two callers
// is decided inside the transaction: one wins, the other observes
// ErrUsernameAlreadySet.
func (s *Service) SetUsername(ctx context.Context, id, username string) error {
	if username == "" {
		return ErrInvalidUsername
	}
	return s.txManager.Begin(ctx, func(ctx context.Context) error {
		user, err := s.userRepo.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if user == nil {
			return ErrUserNotFound
		}
		if user.Username != "" {
			return ErrUsernameAlreadySet
		}
		return s.userRepo.UpdateUsername(ctx, id, username, time.Now().UTC())
	})
}

func (s *Service) GetBalance(ctx context.Context, id string) (decimal.Decimal, error) {
	user, err := s.GetUser(ctx, id)
	if err != nil {
		return decimal.Zero, err
	}
	return user.Balance, nil
}

// AdjustBalance applies add, set or deduct atomically and returns the new
// balance. Deduct fails with ErrInsufficientBalance without mutating.
func (s *Service) AdjustBalance(ctx context.Context, id string, amount decimal.Decimal, action string) (decimal.Decimal, error) {
	if amount.IsNegative() {
		return decimal.Zero, ErrInvalidAmount
	}
	switch action {
	case AddBalanceAction, SetBalanceAction, DeductBalanceAction:
	default:
		return decimal.Zero, ErrInvalidAction
	}

	var newBalance decimal.Decimal
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		user, err := s.userRepo.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if user == nil {
			return ErrUserNotFound
		}

		switch action {
		case AddBalanceAction:
			newBalance = user.Balance.Add(amount)
		case SetBalanceAction:
			newBalance = amount
		case DeductBalanceAction:
			if user.Balance.LessThan(amount) {
				return ErrInsufficientBalance
			}
			newBalance = user.Balance.Sub(amount)
		}
		return s.userRepo.UpdateBalance(ctx, id, newBalance, time.Now().UTC())
	})
	if err != nil {
		return decimal.Zero, err
	}
	return newBalance, nil
}

// CreateOrder debits the order amount and inserts the order in one
// transaction: both happen or neither does.
func (s *Service) CreateOrder(ctx context.Context, params CreateOrderParams) (*domain.Order, error) {
	if params.Quantity <= 0 {
		return nil, ErrInvalidQuantity
	}
	if params.Amount.IsNegative() {
		return nil, ErrInvalidAmount
	}

	var order *domain.Order
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		user, err := s.userRepo.GetByID(ctx, params.UserID)
		if err != nil {
			return err
		}
		if user == nil {
			return ErrUserNotFound
		}
		if user.Balance.LessThan(params.Amount) {
			return ErrInsufficientBalance
		}

		now := time.Now().UTC()
		if err := s.userRepo.UpdateBalance(ctx, params.UserID, user.Balance.Sub(params.Amount), now); err != nil {
			return err
		}

		order = &domain.Order{
			UserID:    params.UserID,
			Username:  params.Username,
			Service:   params.Service,
			ServiceID: params.ServiceID,
			Platform:  params.Platform,
			Plan:      params.Plan,
			Target:    params.Target,
			UTR:       params.UTR,
			Amount:    params.Amount,
			Quantity:  params.Quantity,
			Status:    domain.PendingOrderStatus,
			CreatedAt: now,
			UpdatedAt: now,
		}
		return s.orderRepo.Save(ctx, order)
	})
	if err != nil {
		return nil, err
	}
	return order, nil
}

// UpdateOrderStatus sets any of the three known statuses. Transitions are
// deliberately unrestricted and never touch the balance: a rejected order
// does not re-credit the debited amount.
func (s *Service) UpdateOrderStatus(ctx context.Context, orderID, status string) error {
	if !domain.IsValidOrderStatus(status) {
		return ErrInvalidStatus
	}
	err := s.orderRepo.UpdateStatus(ctx, orderID, status, time.Now().UTC())
	if errors.Is(err, store.ErrNotFound) {
		return ErrOrderNotFound
	}
	return err
}

// TransferBalance moves the amount between two users in one transaction, so
// a failure on the credit leg cannot lose the debited amount.
func (s *Service) TransferBalance(ctx context.Context, fromID, toID string, amount decimal.Decimal) error {
	if amount.IsNegative() {
		return ErrInvalidAmount
	}
	if fromID == toID {
		return ErrSelfTransfer
	}
	return s.txManager.Begin(ctx, func(ctx context.Context) error {
		from, err := s.userRepo.GetByID(ctx, fromID)
		if err != nil {
			return err
		}
		to, err := s.userRepo.GetByID(ctx, toID)
		if err != nil {
			return err
		}
		if from == nil || to == nil {
			return ErrUserNotFound
		}
		if from.Balance.LessThan(amount) {
			return ErrInsufficientBalance
		}

		now := time.Now().UTC()
		if err := s.userRepo.UpdateBalance(ctx, fromID, from.Balance.Sub(amount), now); err != nil {
			return err
		}
		return s.userRepo.UpdateBalance(ctx, toID, to.Balance.Add(amount), now)
	})
}

// BulkAddBalance credits the amount to every listed user, each in its own
// transaction, and reports the per-user outcome.
func (s *Service) BulkAddBalance(ctx context.Context, ids []string, amount decimal.Decimal) (map[string]bool, error) {
	if amount.IsNegative() {
		return nil, ErrInvalidAmount
	}

	var (
		mu      sync.Mutex
		results = make(map[string]bool, len(ids))
	)
	var g errgroup.Group
	g.SetLimit(bulkAddConcurrency)
	for _, id := range ids {
		id := id
		g.Go(func() error {
			_, err := s.AdjustBalance(ctx, id, amount, AddBalanceAction)
			if err != nil {
				zap.L().Warn("bulk credit failed for user", zap.String("uid", id), zap.Error(err))
			}
			mu.Lock()
			results[id] = err == nil
			mu.Unlock()
			return nil
		})
	}
	_ = g.Wait()
	return results, nil
}

// DeleteUser removes the user document. Orders referencing it are left in
// place; this is the destructive admin escape hatch, not normal lifecycle.
func (s *Service) DeleteUser(ctx context.Context, id string) error {
	err := s.userRepo.Delete(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return ErrUserNotFound
	}
	return err
}

// DeleteOrder removes the order document without reconciling the balance.
func (s *Service) DeleteOrder(ctx context.Context, id string) error {
	err := s.orderRepo.Delete(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return ErrOrderNotFound
	}
	return err
}
