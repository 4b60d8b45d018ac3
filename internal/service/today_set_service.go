package service

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"slices"

	"github.com/limbo/placebetween/internal/metrics"
	"github.com/limbo/placebetween/internal/repository"
	"github.com/limbo/placebetween/pkg/entity"
)

// TodaySetService freezes the built set per (scope, date, phase). A frozen set
// is only replaced when one of its ids no longer resolves in the catalog.
type TodaySetService struct {
	repo    repository.KVRepositoryI
	catalog ActivityCatalogI
	builder *TodayBuilder
	tracker CompletionTrackerI
	logger  *slog.Logger
}

func NewTodaySetService(repo repository.KVRepositoryI, c ActivityCatalogI, builder *TodayBuilder, tracker CompletionTrackerI, logger *slog.Logger) *TodaySetService {
	if repo == nil || c == nil || builder == nil || tracker == nil {
		log.Fatal("provided nil dependency to today set service")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &TodaySetService{
		repo:    repo,
		catalog: c,
		builder: builder,
		tracker: tracker,
		logger:  logger,
	}
}

func (ts *TodaySetService) GetOrCreate(ctx context.Context, scope, dateKey string, phase entity.Phase) (*entity.TodaySet, error) {
	dayIndex, err := DayIndexOf(dateKey)
	if err != nil {
		return nil, err
	}
	key := TodaySetKey(scope, dateKey, phase)
	stored, ok, err := loadJSON[entity.TodaySet](ctx, ts.repo, key)
	if err != nil {
		return nil, errors.New("loading today set error: " + err.Error())
	}
	if ok {
		if ts.valid(&stored, phase) {
			return &stored, nil
		}
		ts.logger.Info("rebuilding stale today set", slog.String("key", key))
		metrics.TodaySetRebuildsTotal.WithLabelValues(string(phase)).Inc()
	}

	completed, err := ts.tracker.ListCompleted(ctx, scope, dateKey, phase)
	if err != nil {
		return nil, err
	}
	built := ts.builder.Build(phase, dayIndex, completed)
	if built.Recommended == nil {
		// Empty phase catalog: nothing worth freezing
		return &entity.TodaySet{PillarIDs: []string{}}, nil
	}
	set := &entity.TodaySet{
		RecommendedID: built.Recommended.ID,
		PillarIDs:     make([]string, 0, PillarCount),
	}
	for _, p := range built.Pillars {
		set.PillarIDs = append(set.PillarIDs, p.ID)
	}
	ts.pad(set, phase)
	if err := saveJSON(ctx, ts.repo, key, set); err != nil {
		return nil, errors.New("saving today set error: " + err.Error())
	}
	return set, nil
}

func (ts *TodaySetService) Lookup(ctx context.Context, scope, dateKey string, phase entity.Phase) (*entity.TodaySet, error) {
	stored, ok, err := loadJSON[entity.TodaySet](ctx, ts.repo, TodaySetKey(scope, dateKey, phase))
	if err != nil {
		return nil, errors.New("loading today set error: " + err.Error())
	}
	if !ok || stored.RecommendedID == "" {
		return nil, nil
	}
	return &stored, nil
}

// pad tops pillars up to PillarCount from the phase catalog in catalog order.
func (ts *TodaySetService) pad(set *entity.TodaySet, phase entity.Phase) {
	for _, a := range ts.catalog.Phase(phase) {
		if len(set.PillarIDs) >= PillarCount {
			return
		}
		if a.ID == set.RecommendedID || slices.Contains(set.PillarIDs, a.ID) {
			continue
		}
		set.PillarIDs = append(set.PillarIDs, a.ID)
	}
}

// valid checks every persisted id against the current catalog and the pillar
// count against what the phase can provide.
func (ts *TodaySetService) valid(set *entity.TodaySet, phase entity.Phase) bool {
	if !ts.resolves(set.RecommendedID, phase) {
		return false
	}
	want := min(PillarCount, len(ts.catalog.Phase(phase))-1)
	if len(set.PillarIDs) != want {
		return false
	}
	seen := make(map[string]struct{}, len(set.PillarIDs))
	for _, id := range set.PillarIDs {
		if id == set.RecommendedID || !ts.resolves(id, phase) {
			return false
		}
		if _, dup := seen[id]; dup {
			return false
		}
		seen[id] = struct{}{}
	}
	return true
}

func (ts *TodaySetService) resolves(id string, phase entity.Phase) bool {
	if id == "" {
		return false
	}
	a, ok := ts.catalog.Get(id)
	return ok && a.Phase == phase
}
