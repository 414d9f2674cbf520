package ledgerservice

import (
	"context"
	"sync"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smmpanel/backend/internal/domain"
	orderrepo "github.com/smmpanel/backend/internal/repo/order-repo"
	userrepo "github.com/smmpanel/backend/internal/repo/user-repo"
	"github.com/smmpanel/backend/internal/store"
	"github.com/smmpanel/backend/internal/store/memstore"
)

func newService() (*Service, *memstore.Store) {
	st := memstore.New()
	return New(userrepo.New(st), orderrepo.New(st), st), st
}

func orderParams(uid string, amount int64) CreateOrderParams {
	return CreateOrderParams{
		UserID:    uid,
		Username:  "panda42",
		Service:   "Instagram Followers",
		ServiceID: "instagram_followers",
		Platform:  "Instagram",
		Plan:      "normal",
		Target:    "someaccount",
		UTR:       "UTR123456",
		Amount:    decimal.NewFromInt(amount),
		Quantity:  1000,
	}
}

func TestCreateUser(t *testing.T) {
	s, _ := newService()
	ctx := context.Background()

	user, err := s.CreateUser(ctx, "u1", "user@example.com")
	require.NoError(t, err)
	assert.Equal(t, "u1", user.ID)
	assert.Equal(t, "user@example.com", user.Email)
	assert.True(t, user.Balance.IsZero())
	assert.False(t, user.CreatedAt.IsZero())
}

func TestCreateUserIdempotent(t *testing.T) {
	s, _ := newService()
	ctx := context.Background()

	first, err := s.CreateUser(ctx, "u1", "user@example.com")
	require.NoError(t, err)

	_, err = s.AdjustBalance(ctx, "u1", decimal.NewFromInt(100), AddBalanceAction)
	require.NoError(t, err)

	again, err := s.CreateUser(ctx, "u1", "other@example.com")
	require.NoError(t, err)
	assert.Equal(t, first.Email, again.Email, "existing record must not be overwritten")
	assert.True(t, again.Balance.Equal(decimal.NewFromInt(100)), "existing balance must not be reset")
}

func TestGetUser(t *testing.T) {
	s, _ := newService()
	ctx := context.Background()

	_, err := s.GetUser(ctx, "missing")
	assert.ErrorIs(t, err, ErrUserNotFound)

	_, err = s.CreateUser(ctx, "u1", "user@example.com")
	require.NoError(t, err)

	user, err := s.GetUser(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, "u1", user.ID)
}

func TestSetUsername(t *testing.T) {
	s, _ := newService()
	ctx := context.Background()
	_, err := s.CreateUser(ctx, "u1", "user@example.com")
	require.NoError(t, err)

	tests := []struct {
		name        string
		uid         string
		username    string
		expectedErr error
	}{
		{name: "Empty username", uid: "u1", username: "", expectedErr: ErrInvalidUsername},
		{name: "User not found", uid: "missing", username: "panda42", expectedErr: ErrUserNotFound},
		{name: "First assignment succeeds", uid: "u1", username: "panda42"},
		{name: "Second assignment fails", uid: "u1", username: "other", expectedErr: ErrUsernameAlreadySet},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := s.SetUsername(ctx, tt.uid, tt.username)
			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}

	user, err := s.GetUser(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, "panda42", user.Username, "losing assignment must not overwrite the stored value")
}

func TestSetUsernameConcurrent(t *testing.T) {
	s, _ := newService()
	ctx := context.Background()
	_, err := s.CreateUser(ctx, "u1", "user@example.com")
	require.NoError(t, err)

	const workers = 10
	var (
		wg   sync.WaitGroup
		mu   sync.Mutex
		errs []error
	)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(name string) {
			defer wg.Done()
			err := s.SetUsername(ctx, "u1", name)
			mu.Lock()
			errs = append(errs, err)
			mu.Unlock()
		}(string(rune('a' + i)))
	}
	wg.Wait()

	wins := 0
	for _, err := range errs {
		if err == nil {
			wins++
		} else {
			assert.ErrorIs(t, err, ErrUsernameAlreadySet)
		}
	}
	assert.Equal(t, 1, wins, "exactly one concurrent assignment must win")
}

func TestAdjustBalance(t *testing.T) {
	s, _ := newService()
	ctx := context.Background()
	_, err := s.CreateUser(ctx, "u1", "user@example.com")
	require.NoError(t, err)

	tests := []struct {
		name        string
		uid         string
		amount      decimal.Decimal
		action      string
		expectedErr error
		expected    decimal.Decimal
	}{
		{name: "Add", uid: "u1", amount: decimal.NewFromInt(500), action: AddBalanceAction, expected: decimal.NewFromInt(500)},
		{name: "Deduct", uid: "u1", amount: decimal.NewFromInt(80), action: DeductBalanceAction, expected: decimal.NewFromInt(420)},
		{name: "Set", uid: "u1", amount: decimal.NewFromInt(100), action: SetBalanceAction, expected: decimal.NewFromInt(100)},
		{name: "Deduct more than balance", uid: "u1", amount: decimal.NewFromInt(1000), action: DeductBalanceAction, expectedErr: ErrInsufficientBalance},
		{name: "Negative amount", uid: "u1", amount: decimal.NewFromInt(-1), action: AddBalanceAction, expectedErr: ErrInvalidAmount},
		{name: "Unknown action", uid: "u1", amount: decimal.NewFromInt(1), action: "multiply", expectedErr: ErrInvalidAction},
		{name: "User not found", uid: "missing", amount: decimal.NewFromInt(1), action: AddBalanceAction, expectedErr: ErrUserNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			balance, err := s.AdjustBalance(ctx, tt.uid, tt.amount, tt.action)
			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				return
			}
			require.NoError(t, err)
			assert.True(t, tt.expected.Equal(balance), "expected %s, got %s", tt.expected, balance)
		})
	}
}

func TestAdjustBalanceFailedDeductKeepsBalance(t *testing.T) {
	s, _ := newService()
	ctx := context.Background()
	_, err := s.CreateUser(ctx, "u1", "user@example.com")
	require.NoError(t, err)
	_, err = s.AdjustBalance(ctx, "u1", decimal.NewFromInt(50), AddBalanceAction)
	require.NoError(t, err)

	_, err = s.AdjustBalance(ctx, "u1", decimal.NewFromInt(60), DeductBalanceAction)
	assert.ErrorIs(t, err, ErrInsufficientBalance)

	balance, err := s.GetBalance(ctx, "u1")
	require.NoError(t, err)
	assert.True(t, balance.Equal(decimal.NewFromInt(50)))
}

func TestAdjustBalanceConcurrentDeduct(t *testing.T) {
	s, _ := newService()
	ctx := context.Background()
	_, err := s.CreateUser(ctx, "u1", "user@example.com")
	require.NoError(t, err)
	_, err = s.AdjustBalance(ctx, "u1", decimal.NewFromInt(100), AddBalanceAction)
	require.NoError(t, err)

	var (
		wg   sync.WaitGroup
		mu   sync.Mutex
		errs []error
	)
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := s.AdjustBalance(ctx, "u1", decimal.NewFromInt(60), DeductBalanceAction)
			mu.Lock()
			errs = append(errs, err)
			mu.Unlock()
		}()
	}
	wg.Wait()

	wins := 0
	for _, err := range errs {
		if err == nil {
			wins++
		} else {
			assert.ErrorIs(t, err, ErrInsufficientBalance)
		}
	}
	assert.Equal(t, 1, wins, "only one of the concurrent deducts may pass the balance check")

	balance, err := s.GetBalance(ctx, "u1")
	require.NoError(t, err)
	assert.True(t, balance.Equal(decimal.NewFromInt(40)), "expected 40, got %s", balance)
}

func TestCreateOrder(t *testing.T) {
	s, _ := newService()
	ctx := context.Background()
	_, err := s.CreateUser(ctx, "u1", "user@example.com")
	require.NoError(t, err)
	_, err = s.AdjustBalance(ctx, "u1", decimal.NewFromInt(500), AddBalanceAction)
	require.NoError(t, err)

	order, err := s.CreateOrder(ctx, orderParams("u1", 80))
	require.NoError(t, err)
	assert.NotEmpty(t, order.ID)
	assert.Equal(t, domain.PendingOrderStatus, order.Status)
	assert.True(t, order.Amount.Equal(decimal.NewFromInt(80)))

	balance, err := s.GetBalance(ctx, "u1")
	require.NoError(t, err)
	assert.True(t, balance.Equal(decimal.NewFromInt(420)))
}

func TestCreateOrderValidation(t *testing.T) {
	s, _ := newService()
	ctx := context.Background()
	_, err := s.CreateUser(ctx, "u1", "user@example.com")
	require.NoError(t, err)

	tests := []struct {
		name        string
		params      CreateOrderParams
		expectedErr error
	}{
		{
			name: "Zero quantity",
			params: func() CreateOrderParams {
				p := orderParams("u1", 80)
				p.Quantity = 0
				return p
			}(),
			expectedErr: ErrInvalidQuantity,
		},
		{
			name: "Negative quantity",
			params: func() CreateOrderParams {
				p := orderParams("u1", 80)
				p.Quantity = -5
				return p
			}(),
			expectedErr: ErrInvalidQuantity,
		},
		{
			name:        "Negative amount",
			params:      orderParams("u1", -80),
			expectedErr: ErrInvalidAmount,
		},
		{
			name:        "User not found",
			params:      orderParams("missing", 80),
			expectedErr: ErrUserNotFound,
		},
		{
			name:        "Insufficient balance",
			params:      orderParams("u1", 80),
			expectedErr: ErrInsufficientBalance,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := s.CreateOrder(ctx, tt.params)
			assert.ErrorIs(t, err, tt.expectedErr)
		})
	}
}

func TestCreateOrderFailureLeavesNoTrace(t *testing.T) {
	s, st := newService()
	ctx := context.Background()
	_, err := s.CreateUser(ctx, "u1", "user@example.com")
	require.NoError(t, err)
	_, err = s.AdjustBalance(ctx, "u1", decimal.NewFromInt(50), AddBalanceAction)
	require.NoError(t, err)

	_, err = s.CreateOrder(ctx, orderParams("u1", 80))
	assert.ErrorIs(t, err, ErrInsufficientBalance)

	balance, err := s.GetBalance(ctx, "u1")
	require.NoError(t, err)
	assert.True(t, balance.Equal(decimal.NewFromInt(50)), "failed order must not debit")

	entries, err := st.Query(ctx, store.OrdersCollection, store.Query{})
	require.NoError(t, err)
	assert.Empty(t, entries, "failed order must not be stored")
}

func TestUpdateOrderStatus(t *testing.T) {
	s, _ := newService()
	ctx := context.Background()
	_, err := s.CreateUser(ctx, "u1", "user@example.com")
	require.NoError(t, err)
	_, err = s.AdjustBalance(ctx, "u1", decimal.NewFromInt(100), AddBalanceAction)
	require.NoError(t, err)
	order, err := s.CreateOrder(ctx, orderParams("u1", 80))
	require.NoError(t, err)

	err = s.UpdateOrderStatus(ctx, order.ID, "shipped")
	assert.ErrorIs(t, err, ErrInvalidStatus)

	err = s.UpdateOrderStatus(ctx, "missing", domain.CompletedOrderStatus)
	assert.ErrorIs(t, err, ErrOrderNotFound)

	err = s.UpdateOrderStatus(ctx, order.ID, domain.CompletedOrderStatus)
	require.NoError(t, err)

	// rejecting a completed order is allowed and does not re-credit
	err = s.UpdateOrderStatus(ctx, order.ID, domain.RejectedOrderStatus)
	require.NoError(t, err)

	balance, err := s.GetBalance(ctx, "u1")
	require.NoError(t, err)
	assert.True(t, balance.Equal(decimal.NewFromInt(20)), "status changes must not touch the balance")
}

func TestTransferBalance(t *testing.T) {
	s, _ := newService()
	ctx := context.Background()
	_, err := s.CreateUser(ctx, "u1", "a@example.com")
	require.NoError(t, err)
	_, err = s.CreateUser(ctx, "u2", "b@example.com")
	require.NoError(t, err)
	_, err = s.AdjustBalance(ctx, "u1", decimal.NewFromInt(300), AddBalanceAction)
	require.NoError(t, err)

	err = s.TransferBalance(ctx, "u1", "u1", decimal.NewFromInt(10))
	assert.ErrorIs(t, err, ErrSelfTransfer)

	err = s.TransferBalance(ctx, "u1", "u2", decimal.NewFromInt(-10))
	assert.ErrorIs(t, err, ErrInvalidAmount)

	err = s.TransferBalance(ctx, "u1", "u2", decimal.NewFromInt(1000))
	assert.ErrorIs(t, err, ErrInsufficientBalance)

	err = s.TransferBalance(ctx, "u1", "u2", decimal.NewFromInt(100))
	require.NoError(t, err)

	from, err := s.GetBalance(ctx, "u1")
	require.NoError(t, err)
	to, err := s.GetBalance(ctx, "u2")
	require.NoError(t, err)
	assert.True(t, from.Equal(decimal.NewFromInt(200)))
	assert.True(t, to.Equal(decimal.NewFromInt(100)))
}

func TestTransferBalanceMissingRecipientKeepsSource(t *testing.T) {
	s, _ := newService()
	ctx := context.Background()
	_, err := s.CreateUser(ctx, "u1", "a@example.com")
	require.NoError(t, err)
	_, err = s.AdjustBalance(ctx, "u1", decimal.NewFromInt(300), AddBalanceAction)
	require.NoError(t, err)

	err = s.TransferBalance(ctx, "u1", "missing", decimal.NewFromInt(100))
	assert.ErrorIs(t, err, ErrUserNotFound)

	balance, err := s.GetBalance(ctx, "u1")
	require.NoError(t, err)
	assert.True(t, balance.Equal(decimal.NewFromInt(300)), "failed transfer must not debit the source")
}

func TestBulkAddBalance(t *testing.T) {
	s, _ := newService()
	ctx := context.Background()
	_, err := s.CreateUser(ctx, "u1", "a@example.com")
	require.NoError(t, err)
	_, err = s.CreateUser(ctx, "u2", "b@example.com")
	require.NoError(t, err)

	_, err = s.BulkAddBalance(ctx, []string{"u1"}, decimal.NewFromInt(-1))
	assert.ErrorIs(t, err, ErrInvalidAmount)

	results, err := s.BulkAddBalance(ctx, []string{"u1", "u2", "missing"}, decimal.NewFromInt(50))
	require.NoError(t, err)
	assert.Equal(t, map[string]bool{"u1": true, "u2": true, "missing": false}, results)

	for _, uid := range []string{"u1", "u2"} {
		balance, err := s.GetBalance(ctx, uid)
		require.NoError(t, err)
		assert.True(t, balance.Equal(decimal.NewFromInt(50)))
	}
}

func TestDeleteUser(t *testing.T) {
	s, _ := newService()
	ctx := context.Background()
	_, err := s.CreateUser(ctx, "u1", "user@example.com")
	require.NoError(t, err)

	require.NoError(t, s.DeleteUser(ctx, "u1"))

	_, err = s.GetUser(ctx, "u1")
	assert.ErrorIs(t, err, ErrUserNotFound)

	err = s.DeleteUser(ctx, "u1")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestDeleteOrder(t *testing.T) {
	s, _ := newService()
	ctx := context.Background()
	_, err := s.CreateUser(ctx, "u1", "user@example.com")
	require.NoError(t, err)
	_, err = s.AdjustBalance(ctx, "u1", decimal.NewFromInt(100), AddBalanceAction)
	require.NoError(t, err)
	order, err := s.CreateOrder(ctx, orderParams("u1", 80))
	require.NoError(t, err)

	require.NoError(t, s.DeleteOrder(ctx, order.ID))

	err = s.DeleteOrder(ctx, order.ID)
	assert.ErrorIs(t, err, ErrOrderNotFound)

	balance, err := s.GetBalance(ctx, "u1")
	require.NoError(t, err)
	assert.True(t, balance.Equal(decimal.NewFromInt(20)), "deleting an order must not re-credit")
}

func TestOrderLifecycle(t *testing.T) {
	s, _ := newService()
	ctx := context.Background()

	_, err := s.CreateUser(ctx, "u1", "user@example.com")
	require.NoError(t, err)

	balance, err := s.AdjustBalance(ctx, "u1", decimal.NewFromInt(500), AddBalanceAction)
	require.NoError(t, err)
	assert.True(t, balance.Equal(decimal.NewFromInt(500)))

	order, err := s.CreateOrder(ctx, orderParams("u1", 80))
	require.NoError(t, err)
	assert.Equal(t, domain.PendingOrderStatus, order.Status)

	balance, err = s.GetBalance(ctx, "u1")
	require.NoError(t, err)
	assert.True(t, balance.Equal(decimal.NewFromInt(420)))

	require.NoError(t, s.UpdateOrderStatus(ctx, order.ID, domain.CompletedOrderStatus))

	balance, err = s.GetBalance(ctx, "u1")
	require.NoError(t, err)
	assert.True(t, balance.Equal(decimal.NewFromInt(420)), "completing an order must not change the balance")
}
