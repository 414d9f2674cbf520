package repo

import (
	orderrepo "github.com/smmpanel/backend/internal/repo/order-repo"
	userrepo "github.com/smmpanel/backend/internal/repo/user-repo"
	"github.com/smmpanel/backend/internal/service/ledgerservice"
	"github.com/smmpanel/backend/internal/store"
)

type Repositories struct {
	UserRepo  ledgerservice.UserRepo
	OrderRepo ledgerservice.OrderRepo
}

func New(st store.Store) *Repositories {
	return &Repositories{
		UserRepo:  userrepo.New(st),
		OrderRepo: orderrepo.New(st),
	}
}
