package service

import (
	"context"
	"errors"
	"log"
	"math"

	"github.com/limbo/placebetween/internal/repository"
	"github.com/limbo/placebetween/pkg/entity"
)

const BasePoints = 10

const (
	ReasonRecommended      = "Recommended activity completed"
	ReasonCompleted        = "Activity completed"
	ReasonFromCatalog      = "Activity completed from the catalog"
	ReasonNoPoints         = "Completed without points"
	ReasonAddedToMirror    = "Added to the Mirror from the catalog"
	ReasonAlreadyCompleted = "You already completed this activity today"
)

// ComputePoints applies the context multiplier to BasePoints. Never below 1.
func ComputePoints(actx entity.AwardContext) int {
	var mult float64
	switch {
	case actx.Source == entity.SourceCatalog:
		mult = 0.5
	case actx.IsCorrectPhase && actx.IsRecommended:
		mult = 2
	case actx.IsCorrectPhase:
		mult = 1
	default:
		mult = 0.5
	}
	return max(1, int(math.Floor(BasePoints*mult+0.5)))
}

// Reason returns the notification text for an award of points.
func Reason(points int, source entity.Source) string {
	if source == entity.SourceCatalog {
		return ReasonAddedToMirror
	}
	switch points {
	case 20:
		return ReasonRecommended
	case 5:
		return ReasonFromCatalog
	case 0:
		return ReasonNoPoints
	}
	return ReasonCompleted
}

// PointsService keeps the per-day ledger: one entry per activity, write-once.
type PointsService struct {
	repo repository.KVRepositoryI
}

func NewPointsService(repo repository.KVRepositoryI) *PointsService {
	if repo == nil {
		log.Fatal("provided nil kv repository")
	}
	return &PointsService{repo: repo}
}

func (ps *PointsService) LoadPoints(ctx context.Context, scope, dateKey string) (*entity.PointsState, error) {
	state, _, err := loadJSON[entity.PointsState](ctx, ps.repo, PointsKey(scope, dateKey))
	if err != nil {
		return nil, errors.New("loading points state error: " + err.Error())
	}
	if state.Ledger == nil {
		state.Ledger = map[string]int{}
	}
	return &state, nil
}

func (ps *PointsService) AwardOnce(ctx context.Context, scope, dateKey, id string, actx entity.AwardContext) (*entity.AwardResult, error) {
	state, err := ps.LoadPoints(ctx, scope, dateKey)
	if err != nil {
		return nil, err
	}
	if _, ok := state.Ledger[id]; ok {
		return &entity.AwardResult{Awarded: false, Points: 0, Total: state.Total}, nil
	}
	points := ComputePoints(actx)
	if actx.Override != nil {
		points = *actx.Override
	}
	state.Ledger[id] = points
	state.Total += points
	if err := ps.save(ctx, scope, dateKey, state); err != nil {
		return nil, err
	}
	return &entity.AwardResult{Awarded: true, Points: points, Total: state.Total}, nil
}

func (ps *PointsService) Backfill(ctx context.Context, scope, dateKey, id string) (*entity.PointsState, error) {
	state, err := ps.LoadPoints(ctx, scope, dateKey)
	if err != nil {
		return nil, err
	}
	if _, ok := state.Ledger[id]; ok {
		return state, nil
	}
	state.Ledger[id] = 0
	if err := ps.save(ctx, scope, dateKey, state); err != nil {
		return nil, err
	}
	return state, nil
}

func (ps *PointsService) save(ctx context.Context, scope, dateKey string, state *entity.PointsState) error {
	if err := saveJSON(ctx, ps.repo, PointsKey(scope, dateKey), state); err != nil {
		return errors.New("saving points state error: " + err.Error())
	}
	return nil
}
