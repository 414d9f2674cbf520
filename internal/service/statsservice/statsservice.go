// Package statsservice is the read-only side of the panel: listings,
// aggregate statistics and data-integrity checks. It never writes.
package statsservice

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/smmpanel/backend/internal/domain"
	"github.com/smmpanel/backend/internal/store"
)

type Service struct {
	store store.Store
}

func New(st store.Store) *Service {
	return &Service{
		store: st,
	}
}

var (
	ErrUserNotFound  = errors.New("user not found")
	ErrOrderNotFound = errors.New("order not found")
)

// minOrderAmount is the smallest amount an order is expected to carry.
// Order creation does not enforce it; it only shows up as an integrity
// issue in VerifyOrder.
var minOrderAmount = decimal.NewFromInt(30)

type OrderStats struct {
	TotalOrders     int             `json:"total_orders"`
	PendingOrders   int             `json:"pending_orders"`
	CompletedOrders int             `json:"completed_orders"`
	TotalRevenue    decimal.Decimal `json:"total_revenue"`
}

type UserStats struct {
	TotalUsers   int             `json:"total_users"`
	TotalBalance decimal.Decimal `json:"total_balance"`
}

type VerificationResult struct {
	Valid  bool     `json:"valid"`
	Issues []string `json:"issues"`
}

func (s *Service) ListUsers(ctx context.Context) ([]domain.User, error) {
	entries, err := s.store.Query(ctx, store.UsersCollection, store.Query{})
	if err != nil {
		zap.L().Error("failed to list users", zap.Error(err))
		return nil, err
	}

	users := make([]domain.User, 0, len(entries))
	for _, e := range entries {
		var user domain.User
		if err := store.Unmarshal(e.Doc, &user); err != nil {
			zap.L().Error("can't decode user document", zap.String("uid", e.ID), zap.Error(err))
			return nil, err
		}
		user.ID = e.ID
		users = append(users, user)
	}
	return users, nil
}

// ListOrders returns all orders newest first, optionally narrowed to one
// status. An empty result is not an error.
func (s *Service) ListOrders(ctx context.Context, status string) ([]domain.Order, error) {
	q := store.Query{OrderBy: "created_at", Desc: true}
	if status != "" {
		q.Filters = append(q.Filters, store.Filter{Field: "status", Value: status})
	}
	return s.queryOrders(ctx, q)
}

func (s *Service) ListOrdersForUser(ctx context.Context, userID string) ([]domain.Order, error) {
	q := store.Query{
		Filters: []store.Filter{{Field: "uid", Value: userID}},
		OrderBy: "created_at",
		Desc:    true,
	}
	return s.queryOrders(ctx, q)
}

// OrderStats sums revenue over every order regardless of status, matching
// the operator dashboard's historical definition.
func (s *Service) OrderStats(ctx context.Context) (*OrderStats, error) {
	orders, err := s.ListOrders(ctx, "")
	if err != nil {
		return nil, err
	}

	stats := &OrderStats{
		TotalOrders:  len(orders),
		TotalRevenue: decimal.Zero,
	}
	for _, order := range orders {
		switch order.Status {
		case domain.PendingOrderStatus:
			stats.PendingOrders++
		case domain.CompletedOrderStatus:
			stats.CompletedOrders++
		}
		stats.TotalRevenue = stats.TotalRevenue.Add(order.Amount)
	}
	return stats, nil
}

func (s *Service) UserStats(ctx context.Context) (*UserStats, error) {
	users, err := s.ListUsers(ctx)
	if err != nil {
		return nil, err
	}

	stats := &UserStats{
		TotalUsers:   len(users),
		TotalBalance: decimal.Zero,
	}
	for _, user := range users {
		stats.TotalBalance = stats.TotalBalance.Add(user.Balance)
	}
	return stats, nil
}

// VerifyUser checks the raw document for fields a well-formed user record
// must carry. Meant for data-migration validation, not the hot path.
func (s *Service) VerifyUser(ctx context.Context, id string) (*VerificationResult, error) {
	doc, err := s.store.Get(ctx, store.UsersCollection, id)
	if errors.Is(err, store.ErrNotFound) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}

	issues := make([]string, 0)
	if v, ok := doc["email"].(string); !ok || v == "" {
		issues = append(issues, "missing email")
	}
	if _, ok := doc["balance"]; !ok {
		issues = append(issues, "missing balance")
	}
	if _, ok := doc["created_at"]; !ok {
		issues = append(issues, "missing created_at")
	}
	return &VerificationResult{Valid: len(issues) == 0, Issues: issues}, nil
}

// VerifyOrder checks the raw document for required order fields and the
// minimum amount rule.
func (s *Service) VerifyOrder(ctx context.Context, id string) (*VerificationResult, error) {
	doc, err := s.store.Get(ctx, store.OrdersCollection, id)
	if errors.Is(err, store.ErrNotFound) {
		return nil, ErrOrderNotFound
	}
	if err != nil {
		return nil, err
	}

	issues := make([]string, 0)
	for _, field := range []string{"uid", "username", "service", "amount", "quantity", "status"} {
		if _, ok := doc[field]; !ok {
			issues = append(issues, "missing "+field)
		}
	}

	var order domain.Order
	if err := store.Unmarshal(doc, &order); err == nil {
		if order.Amount.LessThan(minOrderAmount) {
			issues = append(issues, "amount less than minimum (30)")
		}
	}
	return &VerificationResult{Valid: len(issues) == 0, Issues: issues}, nil
}

func (s *Service) queryOrders(ctx context.Context, q store.Query) ([]domain.Order, error) {
	entries, err := s.store.Query(ctx, store.OrdersCollection, q)
	if err != nil {
		zap.L().Error("failed to list orders", zap.Error(err))
		return nil, err
	}

	orders := make([]domain.Order, 0, len(entries))
	for _, e := range entries {
		var order domain.Order
		if err := store.Unmarshal(e.Doc, &order); err != nil {
			zap.L().Error("can't decode order document", zap.String("order_id", e.ID), zap.Error(err))
			return nil, err
		}
		order.ID = e.ID
		orders = append(orders, order)
	}
	return orders, nil
}
