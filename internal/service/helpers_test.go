package service_test

import (
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/limbo/placebetween/internal/catalog"
	"github.com/limbo/placebetween/internal/repository"
	"github.com/limbo/placebetween/internal/service"
	"github.com/limbo/placebetween/internal/service/mocks"
	"github.com/stretchr/testify/require"
)

const (
	testScope = "u42"
	monday    = "2026-10-19"
)

// Monday, day phase
var mondayMorning = time.Date(2026, 10, 19, 10, 0, 0, 0, time.UTC)

type fixture struct {
	repo    *repository.MemoryKVRepository
	catalog *catalog.Catalog
	tracker *service.CompletionService
	sets    *service.TodaySetService
	ledger  *service.PointsService
	remote  *mocks.MockRemoteClientI
	engine  *service.EngineService
	now     time.Time
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	c, err := catalog.Default()
	require.NoError(t, err)
	return newFixtureWithCatalog(t, c)
}

func newFixtureWithCatalog(t *testing.T, c *catalog.Catalog) *fixture {
	t.Helper()
	f := &fixture{
		repo:    repository.NewMemoryKVRepo(),
		catalog: c,
		remote:  mocks.NewMockRemoteClientI(gomock.NewController(t)),
		now:     mondayMorning,
	}
	f.tracker = service.NewCompletionService(f.repo, nil)
	f.sets = service.NewTodaySetService(f.repo, c, service.NewTodayBuilder(c, catalog.DefaultWeeklyPlan), f.tracker, nil)
	f.ledger = service.NewPointsService(f.repo)
	f.engine = service.NewEngineService(service.EngineDeps{
		Catalog:  c,
		Sets:     f.sets,
		Tracker:  f.tracker,
		Ledger:   f.ledger,
		Remote:   f.remote,
		Location: time.UTC,
		Now:      func() time.Time { return f.now },
	})
	return f
}
