package service

import (
	"context"
	"time"

	"github.com/limbo/placebetween/internal/catalog"
	"github.com/limbo/placebetween/pkg/entity"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/mock_interfaces.go -package=mocks

// ActivityCatalogI is implemented by *catalog.Catalog.
type ActivityCatalogI interface {
	// Activities of phase in catalog order
	Phase(p entity.Phase) []*entity.Activity
	Get(id string) (*entity.Activity, bool)
	// Overlays local metadata on the remote activity list
	MergeRemote(remote []entity.RemoteActivity) []*entity.Activity
}

type RemoteClientI interface {
	// Reports whether a backend base url is set
	Configured() bool
	// Registers a completion. Returns the backend's verdict on points
	SubmitCompletion(ctx context.Context, token string, req *entity.RemoteCompletionRequest) (*entity.RemoteResult, error)
	ListActivities(ctx context.Context, token string) ([]entity.RemoteActivity, error)
	ListEmotions(ctx context.Context) ([]entity.Emotion, error)
	Checkin(ctx context.Context, token string, req *entity.CheckinRequest) (*entity.EmotionCheckin, error)
	DailySummary(ctx context.Context, token string) (*entity.DailySummary, error)
}

type TodaySetServiceI interface {
	// Returns the frozen set for the key, building and persisting it on first call
	GetOrCreate(ctx context.Context, scope, dateKey string, phase entity.Phase) (*entity.TodaySet, error)
	// Returns the persisted set or nil. Never creates one
	Lookup(ctx context.Context, scope, dateKey string, phase entity.Phase) (*entity.TodaySet, error)
}

type CompletionTrackerI interface {
	// Adds id to the completed set. Repeated calls are no-ops
	MarkCompleted(ctx context.Context, scope, dateKey string, phase entity.Phase, id string) error
	IsCompleted(ctx context.Context, scope, dateKey string, phase entity.Phase, id string) (bool, error)
	ListCompleted(ctx context.Context, scope, dateKey string, phase entity.Phase) ([]string, error)
	// Union of both phases
	CompletedToday(ctx context.Context, scope, dateKey string) ([]string, error)
}

type PointsLedgerI interface {
	// Awards points for id at most once per day
	AwardOnce(ctx context.Context, scope, dateKey, id string, actx entity.AwardContext) (*entity.AwardResult, error)
	// Writes a zero entry for id if none exists
	Backfill(ctx context.Context, scope, dateKey, id string) (*entity.PointsState, error)
	LoadPoints(ctx context.Context, scope, dateKey string) (*entity.PointsState, error)
}

type CompleteRequest struct {
	UserScope  string
	Token      string
	ActivityID string      `validate:"required"`
	View       entity.View `validate:"omitempty,oneof=today catalog"`
	// Session phase. Derived from the clock when empty
	Phase entity.Phase `validate:"omitempty,phase"`
}

type EngineServiceI interface {
	// Runs tracker, remote, reconcile and ledger for one completion
	Complete(ctx context.Context, req *CompleteRequest) (*entity.CompletionOutcome, error)
	// Today screen for the current (or forced) phase
	Today(ctx context.Context, scope string, forced entity.Phase) (*entity.TodayView, error)
	ListActivities(ctx context.Context, scope, token string, filter catalog.Filter) (*entity.CatalogView, error)
	// Ledger of dateKey, today when empty
	Points(ctx context.Context, scope, dateKey string) (*entity.DayPoints, error)
}

type MirrorServiceI interface {
	ListEmotions(ctx context.Context) ([]entity.Emotion, error)
	Checkin(ctx context.Context, token string, req *entity.CheckinRequest) (*entity.EmotionCheckin, error)
	DailySummary(ctx context.Context, token string) (*entity.DailySummary, error)
}

type MaintenanceServiceI interface {
	// Removes keys last written before cutoff
	Purge(ctx context.Context, cutoff time.Time) (int64, error)
}
