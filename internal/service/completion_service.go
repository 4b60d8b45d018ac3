package service

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"slices"

	"github.com/limbo/placebetween/internal/repository"
	"github.com/limbo/placebetween/pkg/entity"
)

// CompletionService tracks completed activity ids per (scope, date, phase).
type CompletionService struct {
	repo   repository.KVRepositoryI
	logger *slog.Logger
}

func NewCompletionService(repo repository.KVRepositoryI, logger *slog.Logger) *CompletionService {
	if repo == nil {
		log.Fatal("provided nil kv repository")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &CompletionService{repo: repo, logger: logger}
}

func (cs *CompletionService) MarkCompleted(ctx context.Context, scope, dateKey string, phase entity.Phase, id string) error {
	state, err := cs.load(ctx, scope, dateKey, phase)
	if err != nil {
		return err
	}
	if slices.Contains(state.Completed, id) {
		return nil
	}
	state.Completed = append(state.Completed, id)
	if err := saveJSON(ctx, cs.repo, CompletionKey(scope, dateKey, phase), state); err != nil {
		return errors.New("saving completion state error: " + err.Error())
	}
	return nil
}

func (cs *CompletionService) IsCompleted(ctx context.Context, scope, dateKey string, phase entity.Phase, id string) (bool, error) {
	state, err := cs.load(ctx, scope, dateKey, phase)
	if err != nil {
		return false, err
	}
	return slices.Contains(state.Completed, id), nil
}

func (cs *CompletionService) ListCompleted(ctx context.Context, scope, dateKey string, phase entity.Phase) ([]string, error) {
	state, err := cs.load(ctx, scope, dateKey, phase)
	if err != nil {
		return nil, err
	}
	return state.Completed, nil
}

func (cs *CompletionService) CompletedToday(ctx context.Context, scope, dateKey string) ([]string, error) {
	var out []string
	for _, phase := range entity.Phases {
		ids, err := cs.ListCompleted(ctx, scope, dateKey, phase)
		if err != nil {
			return nil, err
		}
		for _, id := range ids {
			if !slices.Contains(out, id) {
				out = append(out, id)
			}
		}
	}
	if out == nil {
		out = []string{}
	}
	return out, nil
}

func (cs *CompletionService) load(ctx context.Context, scope, dateKey string, phase entity.Phase) (*entity.CompletionState, error) {
	key := CompletionKey(scope, dateKey, phase)
	state, ok, err := loadJSON[entity.CompletionState](ctx, cs.repo, key)
	if err != nil {
		return nil, errors.New("loading completion state error: " + err.Error())
	}
	if !ok {
		migrated, err := cs.migrateLegacy(ctx, dateKey, phase, key)
		if err != nil {
			return nil, err
		}
		if migrated != nil {
			state = *migrated
		}
	}
	if state.Completed == nil {
		state.Completed = []string{}
	}
	return &state, nil
}

// migrateLegacy moves a pre-namespacing completion value to key.
func (cs *CompletionService) migrateLegacy(ctx context.Context, dateKey string, phase entity.Phase, key string) (*entity.CompletionState, error) {
	legacyKey := LegacyCompletionKey(dateKey, phase)
	legacy, ok, err := loadJSON[entity.CompletionState](ctx, cs.repo, legacyKey)
	if err != nil {
		return nil, errors.New("loading legacy completion state error: " + err.Error())
	}
	if !ok {
		return nil, nil
	}
	if legacy.Completed == nil {
		legacy.Completed = []string{}
	}
	if err := saveJSON(ctx, cs.repo, key, &legacy); err != nil {
		return nil, errors.New("migrating legacy completion state error: " + err.Error())
	}
	if err := cs.repo.Delete(ctx, legacyKey); err != nil {
		return nil, errors.New("removing legacy completion state error: " + err.Error())
	}
	cs.logger.Info("migrated legacy completion state", slog.String("from", legacyKey), slog.String("to", key))
	return &legacy, nil
}
