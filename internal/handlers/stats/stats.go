package stats

import (
	"context"
	"net/http"

	"github.com/smmpanel/backend/internal/dto"
	"github.com/smmpanel/backend/internal/service/statsservice"
	"github.com/smmpanel/backend/pkg/utils"
)

type Service interface {
	OrderStats(ctx context.Context) (*statsservice.OrderStats, error)
	UserStats(ctx context.Context) (*statsservice.UserStats, error)
}

type StatsHandler struct {
	statsService Service
}

func New(statsService Service) *StatsHandler {
	return &StatsHandler{
		statsService: statsService,
	}
}

// OrderStats godoc
//
//	@Summary		Get order statistics
//	@Description	Counts per status plus total revenue summed over all orders regardless of status.
//	@Tags			Stats
//	@Produce		json
//	@Success		200	{object}	dto.OrderStatsResponseDTO	"Order statistics"
//	@Failure		500	{object}	utils.Response				"Internal server error"
//	@Router			/api/stats/orders [get]
func (h *StatsHandler) OrderStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.statsService.OrderStats(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.OrderStatsResponseDTO{
		Success: true,
		Stats:   toOrderStatsDTO(stats),
	})
}

// UserStats godoc
//
//	@Summary	Get user statistics
//	@Tags		Stats
//	@Produce	json
//	@Success	200	{object}	dto.UserStatsResponseDTO	"User statistics"
//	@Failure	500	{object}	utils.Response				"Internal server error"
//	@Router		/api/stats/users [get]
func (h *StatsHandler) UserStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.statsService.UserStats(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.UserStatsResponseDTO{
		Success: true,
		Stats:   toUserStatsDTO(stats),
	})
}

// CombinedStats godoc
//
//	@Summary	Get order and user statistics in one call
//	@Tags		Stats
//	@Produce	json
//	@Success	200	{object}	dto.CombinedStatsResponseDTO	"Combined statistics"
//	@Failure	500	{object}	utils.Response					"Internal server error"
//	@Router		/api/stats [get]
func (h *StatsHandler) CombinedStats(w http.ResponseWriter, r *http.Request) {
	orderStats, err := h.statsService.OrderStats(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	userStats, err := h.statsService.UserStats(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.CombinedStatsResponseDTO{
		Success: true,
		Orders:  toOrderStatsDTO(orderStats),
		Users:   toUserStatsDTO(userStats),
	})
}

func toOrderStatsDTO(stats *statsservice.OrderStats) dto.OrderStatsDTO {
	return dto.OrderStatsDTO{
		TotalOrders:     stats.TotalOrders,
		PendingOrders:   stats.PendingOrders,
		CompletedOrders: stats.CompletedOrders,
		TotalRevenue:    stats.TotalRevenue,
	}
}

func toUserStatsDTO(stats *statsservice.UserStats) dto.UserStatsDTO {
	return dto.UserStatsDTO{
		TotalUsers:   stats.TotalUsers,
		TotalBalance: stats.TotalBalance,
	}
}
