package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/smmpanel/backend/internal/repo"
	"github.com/smmpanel/backend/internal/store/memstore"
)

func TestNew(t *testing.T) {
	st := memstore.New()
	repos := repo.New(st)

	services := New(repos, st, st)

	assert.NotNil(t, services.LedgerService)
	assert.NotNil(t, services.StatsService)
}
