package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/smmpanel/backend/docs"
	ordershandlers "github.com/smmpanel/backend/internal/handlers/orders"
	statshandlers "github.com/smmpanel/backend/internal/handlers/stats"
	usershandlers "github.com/smmpanel/backend/internal/handlers/users"
	"github.com/smmpanel/backend/internal/service"
	"github.com/smmpanel/backend/pkg/utils"
)

type UserHandler interface {
	CreateUser(w http.ResponseWriter, r *http.Request)
	GetUser(w http.ResponseWriter, r *http.Request)
	ListUsers(w http.ResponseWriter, r *http.Request)
	SetUsername(w http.ResponseWriter, r *http.Request)
	GetBalance(w http.ResponseWriter, r *http.Request)
	AdjustBalance(w http.ResponseWriter, r *http.Request)
	Transfer(w http.ResponseWriter, r *http.Request)
	BulkAddBalance(w http.ResponseWriter, r *http.Request)
	DeleteUser(w http.ResponseWriter, r *http.Request)
	VerifyUser(w http.ResponseWriter, r *http.Request)
}

type OrderHandler interface {
	CreateOrder(w http.ResponseWriter, r *http.Request)
	ListOrders(w http.ResponseWriter, r *http.Request)
	ListUserOrders(w http.ResponseWriter, r *http.Request)
	UpdateStatus(w http.ResponseWriter, r *http.Request)
	DeleteOrder(w http.ResponseWriter, r *http.Request)
	VerifyOrder(w http.ResponseWriter, r *http.Request)
}

type StatsHandler interface {
	OrderStats(w http.ResponseWriter, r *http.Request)
	UserStats(w http.ResponseWriter, r *http.Request)
	CombinedStats(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	UserHandler  UserHandler
	OrderHandler OrderHandler
	StatsHandler StatsHandler
}

func New(s *service.Services) *Handlers {
	return &Handlers{
		UserHandler:  usershandlers.New(s.LedgerService, s.StatsService),
		OrderHandler: ordershandlers.New(s.LedgerService, s.StatsService),
		StatsHandler: statshandlers.New(s.StatsService),
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
		cors.Handler(cors.Options{
			AllowedOrigins: []string{"*"},
			AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowedHeaders: []string{"*"},
		}),
	)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))
	r.Get("/", root)
	r.Get("/health", health)

	r.Route("/api", func(r chi.Router) {
		r.Route("/users", func(r chi.Router) {
			r.Post("/", h.UserHandler.CreateUser)
			r.Get("/", h.UserHandler.ListUsers)
			r.Post("/balance/bulk", h.UserHandler.BulkAddBalance)
			r.Route("/{uid}", func(r chi.Router) {
				r.Get("/", h.UserHandler.GetUser)
				r.Delete("/", h.UserHandler.DeleteUser)
				r.Post("/username", h.UserHandler.SetUsername)
				r.Get("/balance", h.UserHandler.GetBalance)
				r.Post("/balance", h.UserHandler.AdjustBalance)
				r.Post("/transfer", h.UserHandler.Transfer)
				r.Get("/verify", h.UserHandler.VerifyUser)
			})
		})
		r.Route("/orders", func(r chi.Router) {
			r.Post("/", h.OrderHandler.CreateOrder)
			r.Get("/", h.OrderHandler.ListOrders)
			r.Get("/user/{uid}", h.OrderHandler.ListUserOrders)
			r.Route("/{orderID}", func(r chi.Router) {
				r.Put("/", h.OrderHandler.UpdateStatus)
				r.Delete("/", h.OrderHandler.DeleteOrder)
				r.Get("/verify", h.OrderHandler.VerifyOrder)
			})
		})
		r.Route("/stats", func(r chi.Router) {
			r.Get("/", h.StatsHandler.CombinedStats)
			r.Get("/orders", h.StatsHandler.OrderStats)
			r.Get("/users", h.StatsHandler.UserStats)
		})
	})

	return r
}

func root(w http.ResponseWriter, _ *http.Request) {
	utils.RespondWithMessage(w, http.StatusOK, "SMM Panel API is running")
}

func health(w http.ResponseWriter, _ *http.Request) {
	utils.RespondWithJSON(w, http.StatusOK, map[string]string{
		"status":  "healthy",
		"version": "1.0.0",
	})
}
