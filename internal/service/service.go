package service

import (
	"github.com/smmpanel/backend/internal/repo"
	"github.com/smmpanel/backend/internal/service/ledgerservice"
	"github.com/smmpanel/backend/internal/service/statsservice"
	"github.com/smmpanel/backend/internal/store"
)

type Services struct {
	LedgerService *ledgerservice.Service
	StatsService  *statsservice.Service
}

func New(repo *repo.Repositories, st store.Store, txManager store.TXManager) *Services {
	ledgerService := ledgerservice.New(repo.UserRepo, repo.OrderRepo, txManager)
	statsService := statsservice.New(st)

	return &Services{
		LedgerService: ledgerService,
		StatsService:  statsService,
	}
}
