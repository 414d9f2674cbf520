package orders

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/smmpanel/backend/internal/domain"
	"github.com/smmpanel/backend/internal/dto"
	"github.com/smmpanel/backend/internal/service/ledgerservice"
	"github.com/smmpanel/backend/internal/service/statsservice"
	"github.com/smmpanel/backend/internal/store"
	"github.com/smmpanel/backend/pkg/utils"
)

type LedgerService interface {
	CreateOrder(ctx context.Context, params ledgerservice.CreateOrderParams) (*domain.Order, error)
	UpdateOrderStatus(ctx context.Context, orderID, status string) error
	DeleteOrder(ctx context.Context, id string) error
}

type StatsService interface {
	ListOrders(ctx context.Context, status string) ([]domain.Order, error)
	ListOrdersForUser(ctx context.Context, userID string) ([]domain.Order, error)
	VerifyOrder(ctx context.Context, id string) (*statsservice.VerificationResult, error)
}

type OrderHandler struct {
	ledgerService LedgerService
	statsService  StatsService
}

func New(ledgerService LedgerService, statsService StatsService) *OrderHandler {
	return &OrderHandler{
		ledgerService: ledgerService,
		statsService:  statsService,
	}
}

// CreateOrder godoc
//
//	@Summary		Create an order
//	@Description	Check the balance, debit the amount and insert the order in one transaction. The order starts in pending.
//	@Tags			Orders
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.CreateOrderRequestDTO	true	"Order payload"
//	@Success		200		{object}	dto.CreateOrderResponseDTO	"Created order"
//	@Failure		400		{object}	utils.Response				"Invalid input or insufficient balance"
//	@Failure		404		{object}	utils.Response				"User not found"
//	@Failure		409		{object}	utils.Response				"Transaction conflict"
//	@Router			/api/orders [post]
func (h *OrderHandler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateOrderRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	order, err := h.ledgerService.CreateOrder(r.Context(), ledgerservice.CreateOrderParams{
		UserID:    req.UID,
		Username:  req.Username,
		Service:   req.Service,
		ServiceID: req.ServiceID,
		Platform:  req.Platform,
		Plan:      req.Plan,
		Target:    req.Target,
		UTR:       req.UTR,
		Amount:    req.Amount,
		Quantity:  req.Quantity,
	})
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.CreateOrderResponseDTO{
		Success: true,
		OrderID: order.ID,
		Order:   toOrderDTO(order),
	})
}

// ListOrders godoc
//
//	@Summary	List all orders
//	@Tags		Orders
//	@Produce	json
//	@Param		status	query		string					false	"Status filter"	Enums(pending, completed, rejected)
//	@Success	200		{object}	dto.OrdersResponseDTO	"Orders, newest first"
//	@Failure	500		{object}	utils.Response			"Internal server error"
//	@Router		/api/orders [get]
func (h *OrderHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := h.statsService.ListOrders(r.Context(), r.URL.Query().Get("status"))
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toOrdersResponse(orders))
}

// ListUserOrders godoc
//
//	@Summary	List orders of a user
//	@Tags		Orders
//	@Produce	json
//	@Param		uid	path		string					true	"User id"
//	@Success	200	{object}	dto.OrdersResponseDTO	"Orders, newest first; empty when the user has none"
//	@Failure	500	{object}	utils.Response			"Internal server error"
//	@Router		/api/orders/user/{uid} [get]
func (h *OrderHandler) ListUserOrders(w http.ResponseWriter, r *http.Request) {
	uid := chi.URLParam(r, "uid")

	orders, err := h.statsService.ListOrdersForUser(r.Context(), uid)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toOrdersResponse(orders))
}

// UpdateStatus godoc
//
//	@Summary		Update order status
//	@Description	Set any of pending, completed or rejected. Transitions are unrestricted and never touch the balance.
//	@Tags			Orders
//	@Accept			json
//	@Produce		json
//	@Param			orderID	path		string							true	"Order id"
//	@Param			request	body		dto.UpdateOrderStatusRequestDTO	true	"Status payload"
//	@Success		200		{object}	utils.Response					"Status updated"
//	@Failure		400		{object}	utils.Response					"Unknown status value"
//	@Failure		404		{object}	utils.Response					"Order not found"
//	@Router			/api/orders/{orderID} [put]
func (h *OrderHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	orderID := chi.URLParam(r, "orderID")

	var req dto.UpdateOrderStatusRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.ledgerService.UpdateOrderStatus(r.Context(), orderID, req.Status); err != nil {
		respondWithServiceError(w, err)
		return
	}
	utils.RespondWithMessage(w, http.StatusOK, "order status updated to "+req.Status)
}

// DeleteOrder godoc
//
//	@Summary		Delete an order
//	@Description	Hard-delete the order document without reconciling the balance. Destructive admin escape hatch.
//	@Tags			Orders
//	@Produce		json
//	@Param			orderID	path		string			true	"Order id"
//	@Success		200		{object}	utils.Response	"Order deleted"
//	@Failure		404		{object}	utils.Response	"Order not found"
//	@Router			/api/orders/{orderID} [delete]
func (h *OrderHandler) DeleteOrder(w http.ResponseWriter, r *http.Request) {
	orderID := chi.URLParam(r, "orderID")

	if err := h.ledgerService.DeleteOrder(r.Context(), orderID); err != nil {
		respondWithServiceError(w, err)
		return
	}
	utils.RespondWithMessage(w, http.StatusOK, "order deleted")
}

// VerifyOrder godoc
//
//	@Summary	Verify order data integrity
//	@Tags		Orders
//	@Produce	json
//	@Param		orderID	path		string					true	"Order id"
//	@Success	200		{object}	dto.VerifyResponseDTO	"Verification result"
//	@Failure	404		{object}	utils.Response			"Order not found"
//	@Router		/api/orders/{orderID}/verify [get]
func (h *OrderHandler) VerifyOrder(w http.ResponseWriter, r *http.Request) {
	orderID := chi.URLParam(r, "orderID")

	result, err := h.statsService.VerifyOrder(r.Context(), orderID)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.VerifyResponseDTO{
		Success: true,
		Valid:   result.Valid,
		Issues:  result.Issues,
	})
}

func toOrderDTO(order *domain.Order) dto.OrderDTO {
	return dto.OrderDTO{
		ID:        order.ID,
		UID:       order.UserID,
		Username:  order.Username,
		Service:   order.Service,
		ServiceID: order.ServiceID,
		Platform:  order.Platform,
		Plan:      order.Plan,
		Target:    order.Target,
		UTR:       order.UTR,
		Amount:    order.Amount,
		Quantity:  order.Quantity,
		Status:    order.Status,
		CreatedAt: order.CreatedAt,
		UpdatedAt: order.UpdatedAt,
	}
}

func toOrdersResponse(orders []domain.Order) dto.OrdersResponseDTO {
	response := dto.OrdersResponseDTO{Success: true, Orders: make([]dto.OrderDTO, len(orders))}
	for i := range orders {
		response.Orders[i] = toOrderDTO(&orders[i])
	}
	return response
}

func respondWithServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ledgerservice.ErrUserNotFound),
		errors.Is(err, ledgerservice.ErrOrderNotFound),
		errors.Is(err, statsservice.ErrOrderNotFound):
		utils.RespondWithError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, ledgerservice.ErrInsufficientBalance),
		errors.Is(err, ledgerservice.ErrInvalidAmount),
		errors.Is(err, ledgerservice.ErrInvalidQuantity),
		errors.Is(err, ledgerservice.ErrInvalidStatus):
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, store.ErrConflict):
		utils.RespondWithError(w, http.StatusConflict, err.Error())
	case errors.Is(err, store.ErrUnavailable):
		utils.RespondWithError(w, http.StatusServiceUnavailable, "store unavailable")
	default:
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}
