package users

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/smmpanel/backend/internal/domain"
	"github.com/smmpanel/backend/internal/dto"
	"github.com/smmpanel/backend/internal/service/ledgerservice"
	"github.com/smmpanel/backend/internal/service/statsservice"
	"github.com/smmpanel/backend/internal/store"
	"github.com/smmpanel/backend/pkg/utils"
)

type LedgerService interface {
	CreateUser(ctx context.Context, id, email string) (*domain.User, error)
	GetUser(ctx context.Context, id string) (*domain.User, error)
	SetUsername(ctx context.Context, id, username string) error
	GetBalance(ctx context.Context, id string) (decimal.Decimal, error)
	AdjustBalance(ctx context.Context, id string, amount decimal.Decimal, action string) (decimal.Decimal, error)
	TransferBalance(ctx context.Context, fromID, toID string, amount decimal.Decimal) error
	BulkAddBalance(ctx context.Context, ids []string, amount decimal.Decimal) (map[string]bool, error)
	DeleteUser(ctx context.Context, id string) error
}

type StatsService interface {
	ListUsers(ctx context.Context) ([]domain.User, error)
	VerifyUser(ctx context.Context, id string) (*statsservice.VerificationResult, error)
}

type UserHandler struct {
	ledgerService LedgerService
	statsService  StatsService
}

func New(ledgerService LedgerService, statsService StatsService) *UserHandler {
	return &UserHandler{
		ledgerService: ledgerService,
		statsService:  statsService,
	}
}

// CreateUser godoc
//
//	@Summary		Create a user
//	@Description	Create a user with a zero balance. Creating an existing uid again is a no-op returning the stored record.
//	@Tags			Users
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.CreateUserRequestDTO	true	"User creation payload"
//	@Success		200		{object}	dto.UserResponseDTO			"Created or already existing user"
//	@Failure		400		{object}	utils.Response				"Invalid request body"
//	@Failure		500		{object}	utils.Response				"Internal server error"
//	@Router			/api/users [post]
func (h *UserHandler) CreateUser(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateUserRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.UID == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "uid is required")
		return
	}

	user, err := h.ledgerService.CreateUser(r.Context(), req.UID, req.Email)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.UserResponseDTO{Success: true, Data: toUserDTO(user)})
}

// GetUser godoc
//
//	@Summary	Get user data by uid
//	@Tags		Users
//	@Produce	json
//	@Param		uid	path		string				true	"User id"
//	@Success	200	{object}	dto.UserResponseDTO	"User data"
//	@Failure	404	{object}	utils.Response		"User not found"
//	@Failure	500	{object}	utils.Response		"Internal server error"
//	@Router		/api/users/{uid} [get]
func (h *UserHandler) GetUser(w http.ResponseWriter, r *http.Request) {
	uid := chi.URLParam(r, "uid")

	user, err := h.ledgerService.GetUser(r.Context(), uid)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.UserResponseDTO{Success: true, Data: toUserDTO(user)})
}

// ListUsers godoc
//
//	@Summary	List all users
//	@Tags		Users
//	@Produce	json
//	@Success	200	{object}	dto.UsersResponseDTO	"All users"
//	@Failure	500	{object}	utils.Response			"Internal server error"
//	@Router		/api/users [get]
func (h *UserHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.statsService.ListUsers(r.Context())
	if err != nil {
		respondWithServiceError(w, err)
		return
	}

	response := dto.UsersResponseDTO{Success: true, Users: make([]dto.UserDTO, len(users))}
	for i := range users {
		response.Users[i] = toUserDTO(&users[i])
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// SetUsername godoc
//
//	@Summary		Set username (one time only)
//	@Description	Assign the username once. A second assignment fails; the stored value is never overwritten.
//	@Tags			Users
//	@Accept			json
//	@Produce		json
//	@Param			uid		path		string						true	"User id"
//	@Param			request	body		dto.SetUsernameRequestDTO	true	"Username payload"
//	@Success		200		{object}	utils.Response				"Username set"
//	@Failure		400		{object}	utils.Response				"Username already set or invalid"
//	@Failure		404		{object}	utils.Response				"User not found"
//	@Failure		409		{object}	utils.Response				"Transaction conflict"
//	@Router			/api/users/{uid}/username [post]
func (h *UserHandler) SetUsername(w http.ResponseWriter, r *http.Request) {
	uid := chi.URLParam(r, "uid")

	var req dto.SetUsernameRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.ledgerService.SetUsername(r.Context(), uid, req.Username); err != nil {
		respondWithServiceError(w, err)
		return
	}
	utils.RespondWithMessage(w, http.StatusOK, "username set successfully")
}

// GetBalance godoc
//
//	@Summary	Get user balance
//	@Tags		Users
//	@Produce	json
//	@Param		uid	path		string					true	"User id"
//	@Success	200	{object}	dto.BalanceResponseDTO	"Current balance"
//	@Failure	404	{object}	utils.Response			"User not found"
//	@Router		/api/users/{uid}/balance [get]
func (h *UserHandler) GetBalance(w http.ResponseWriter, r *http.Request) {
	uid := chi.URLParam(r, "uid")

	balance, err := h.ledgerService.GetBalance(r.Context(), uid)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.BalanceResponseDTO{Success: true, Balance: balance})
}

// AdjustBalance godoc
//
//	@Summary		Modify user balance
//	@Description	Apply an add, set or deduct operation atomically and return the new balance.
//	@Tags			Users
//	@Accept			json
//	@Produce		json
//	@Param			uid		path		string							true	"User id"
//	@Param			request	body		dto.BalanceOperationRequestDTO	true	"Balance operation payload"
//	@Success		200		{object}	dto.BalanceResponseDTO			"New balance"
//	@Failure		400		{object}	utils.Response					"Invalid action, invalid amount or insufficient balance"
//	@Failure		404		{object}	utils.Response					"User not found"
//	@Failure		409		{object}	utils.Response					"Transaction conflict"
//	@Router			/api/users/{uid}/balance [post]
func (h *UserHandler) AdjustBalance(w http.ResponseWriter, r *http.Request) {
	uid := chi.URLParam(r, "uid")

	var req dto.BalanceOperationRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	balance, err := h.ledgerService.AdjustBalance(r.Context(), uid, req.Amount, req.Action)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.BalanceResponseDTO{Success: true, Balance: balance})
}

// Transfer godoc
//
//	@Summary		Transfer balance to another user
//	@Description	Move an amount between two users atomically: either both legs commit or neither does.
//	@Tags			Users
//	@Accept			json
//	@Produce		json
//	@Param			uid		path		string					true	"Source user id"
//	@Param			request	body		dto.TransferRequestDTO	true	"Transfer payload"
//	@Success		200		{object}	utils.Response			"Transfer completed"
//	@Failure		400		{object}	utils.Response			"Invalid amount or insufficient balance"
//	@Failure		404		{object}	utils.Response			"User not found"
//	@Failure		409		{object}	utils.Response			"Transaction conflict"
//	@Router			/api/users/{uid}/transfer [post]
func (h *UserHandler) Transfer(w http.ResponseWriter, r *http.Request) {
	uid := chi.URLParam(r, "uid")

	var req dto.TransferRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.ledgerService.TransferBalance(r.Context(), uid, req.ToUID, req.Amount); err != nil {
		respondWithServiceError(w, err)
		return
	}
	utils.RespondWithMessage(w, http.StatusOK, "transfer completed")
}

// BulkAddBalance godoc
//
//	@Summary	Credit multiple users
//	@Tags		Users
//	@Accept		json
//	@Produce	json
//	@Param		request	body		dto.BulkAddBalanceRequestDTO	true	"Bulk credit payload"
//	@Success	200		{object}	dto.BulkAddBalanceResponseDTO	"Per-user outcome"
//	@Failure	400		{object}	utils.Response					"Invalid amount"
//	@Router		/api/users/balance/bulk [post]
func (h *UserHandler) BulkAddBalance(w http.ResponseWriter, r *http.Request) {
	var req dto.BulkAddBalanceRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	results, err := h.ledgerService.BulkAddBalance(r.Context(), req.UIDs, req.Amount)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.BulkAddBalanceResponseDTO{Success: true, Results: results})
}

// DeleteUser godoc
//
//	@Summary		Delete a user
//	@Description	Hard-delete the user document. Destructive admin escape hatch; orders referencing the user are left in place.
//	@Tags			Users
//	@Produce		json
//	@Param			uid	path		string			true	"User id"
//	@Success		200	{object}	utils.Response	"User deleted"
//	@Failure		404	{object}	utils.Response	"User not found"
//	@Router			/api/users/{uid} [delete]
func (h *UserHandler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	uid := chi.URLParam(r, "uid")

	if err := h.ledgerService.DeleteUser(r.Context(), uid); err != nil {
		respondWithServiceError(w, err)
		return
	}
	utils.RespondWithMessage(w, http.StatusOK, "user deleted")
}

// VerifyUser godoc
//
//	@Summary	Verify user data integrity
//	@Tags		Users
//	@Produce	json
//	@Param		uid	path		string					true	"User id"
//	@Success	200	{object}	dto.VerifyResponseDTO	"Verification result"
//	@Failure	404	{object}	utils.Response			"User not found"
//	@Router		/api/users/{uid}/verify [get]
func (h *UserHandler) VerifyUser(w http.ResponseWriter, r *http.Request) {
	uid := chi.URLParam(r, "uid")

	result, err := h.statsService.VerifyUser(r.Context(), uid)
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

func toUserDTO(user *domain.User) dto.UserDTO {
	return dto.UserDTO{
		UID:       user.ID,
		Email:     user.Email,
		Username:  user.Username,
		Balance:   user.Balance,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
}

func respondWithServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ledgerservice.ErrUserNotFound), errors.Is(err, statsservice.ErrUserNotFound):
		utils.RespondWithError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, ledgerservice.ErrUsernameAlreadySet),
		errors.Is(err, ledgerservice.ErrInvalidUsername),
		errors.Is(err, ledgerservice.ErrInvalidAmount),
		errors.Is(err, ledgerservice.ErrInvalidAction),
		errors.Is(err, ledgerservice.ErrInsufficientBalance),
		errors.Is(err, ledgerservice.ErrSelfTransfer):
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, store.ErrConflict):
		utils.RespondWithError(w, http.StatusConflict, err.Error())
	case errors.Is(err, store.ErrUnavailable):
		utils.RespondWithError(w, http.StatusServiceUnavailable, "store unavailable")
	default:
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}
