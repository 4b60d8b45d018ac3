package service

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"math"
	"slices"
	"time"

	"github.com/limbo/placebetween/internal/catalog"
	errorvalues "github.com/limbo/placebetween/internal/error_values"
	"github.com/limbo/placebetween/internal/metrics"
	"github.com/limbo/placebetween/pkg/entity"
)

type EngineDeps struct {
	Catalog  ActivityCatalogI
	Sets     TodaySetServiceI
	Tracker  CompletionTrackerI
	Ledger   PointsLedgerI
	Remote   RemoteClientI
	Hours    PhaseHours
	Location *time.Location
	Logger   *slog.Logger
	// Defaults to time.Now
	Now func() time.Time
}

// EngineService composes the frozen sets, tracker, ledger and remote
// reconciliation into the operations the UI calls.
type EngineService struct {
	catalog  ActivityCatalogI
	sets     TodaySetServiceI
	tracker  CompletionTrackerI
	ledger   PointsLedgerI
	remote   RemoteClientI
	hours    PhaseHours
	location *time.Location
	logger   *slog.Logger
	now      func() time.Time
	locks    *scopeLock
}

func NewEngineService(deps EngineDeps) *EngineService {
	if deps.Catalog == nil || deps.Sets == nil || deps.Tracker == nil || deps.Ledger == nil || deps.Remote == nil {
		log.Fatal("provided nil dependency to engine service")
	}
	InitValidator()
	es := &EngineService{
		catalog:  deps.Catalog,
		sets:     deps.Sets,
		tracker:  deps.Tracker,
		ledger:   deps.Ledger,
		remote:   deps.Remote,
		hours:    deps.Hours,
		location: deps.Location,
		logger:   deps.Logger,
		now:      deps.Now,
		locks:    newScopeLock(),
	}
	if es.hours == (PhaseHours{}) {
		es.hours = DefaultPhaseHours
	}
	if es.location == nil {
		es.location = time.Local
	}
	if es.logger == nil {
		es.logger = slog.Default()
	}
	if es.now == nil {
		es.now = time.Now
	}
	return es
}

func (es *EngineService) clock() time.Time {
	return es.now().In(es.location)
}

func (es *EngineService) Complete(ctx context.Context, req *CompleteRequest) (*entity.CompletionOutcome, error) {
	if err := validate.Struct(req); err != nil {
		return nil, err
	}
	activity, ok := es.catalog.Get(req.ActivityID)
	if !ok {
		return nil, errorvalues.ErrActivityNotFound
	}
	scope := req.UserScope
	if scope == "" {
		scope = AnonScope
	}
	view := req.View
	if view == "" {
		view = entity.ViewToday
	}
	now := es.clock()
	dateKey := DateKey(now)

	unlock := es.locks.Lock(scope)
	defer unlock()

	var (
		sessionPhase entity.Phase
		set          *entity.TodaySet
		err          error
	)
	if view == entity.ViewCatalog {
		sessionPhase = activity.Phase
		set, err = es.sets.Lookup(ctx, scope, dateKey, sessionPhase)
	} else {
		sessionPhase = req.Phase
		if sessionPhase == "" {
			sessionPhase = es.hours.PhaseAt(now)
		}
		set, err = es.sets.GetOrCreate(ctx, scope, dateKey, sessionPhase)
	}
	if err != nil {
		return nil, err
	}

	source := entity.SourceCatalog
	if set.Contains(activity.ID) {
		source = entity.SourceToday
	}
	actx := entity.AwardContext{
		Source:         source,
		IsRecommended:  set != nil && set.RecommendedID == activity.ID,
		IsCorrectPhase: activity.Phase == sessionPhase,
	}

	// Local writes outlive a client disconnect; only the remote call is cancelled.
	localCtx := context.WithoutCancel(ctx)
	if err := es.tracker.MarkCompleted(localCtx, scope, dateKey, sessionPhase, activity.ID); err != nil {
		return nil, err
	}

	remote := es.submitRemote(ctx, req.Token, &entity.RemoteCompletionRequest{
		ExternalID:    activity.ID,
		SessionType:   sessionPhase,
		Source:        source,
		IsRecommended: actx.IsRecommended,
	})
	final := Reconcile(ComputePoints(actx), remote)

	outcome := &entity.CompletionOutcome{
		ActivityID:    activity.ID,
		Completed:     true,
		Source:        source,
		IsRecommended: actx.IsRecommended,
	}
	metrics.CompletionsTotal.WithLabelValues(string(source), string(view)).Inc()

	if final.AlreadyCompleted {
		state, err := es.ledger.Backfill(localCtx, scope, dateKey, activity.ID)
		if err != nil {
			return nil, err
		}
		outcome.AlreadyCompleted = true
		outcome.Total = state.Total
		outcome.Reason = ReasonAlreadyCompleted
		return outcome, nil
	}

	if final.Remote {
		actx.Override = &final.Points
	}
	award, err := es.ledger.AwardOnce(localCtx, scope, dateKey, activity.ID, actx)
	if err != nil {
		return nil, err
	}
	outcome.Total = award.Total
	if !award.Awarded {
		outcome.AlreadyCompleted = true
		outcome.Reason = ReasonAlreadyCompleted
		return outcome, nil
	}
	origin := "local"
	if final.Remote {
		origin = "remote"
	}
	if award.Points > 0 {
		metrics.PointsAwardedTotal.WithLabelValues(origin).Add(float64(award.Points))
	}
	outcome.Awarded = true
	outcome.Points = award.Points
	outcome.Reason = Reason(award.Points, source)
	return outcome, nil
}

// submitRemote never fails: any error means "no remote verdict".
func (es *EngineService) submitRemote(ctx context.Context, token string, req *entity.RemoteCompletionRequest) *entity.RemoteResult {
	if token == "" || !es.remote.Configured() {
		return nil
	}
	res, err := es.remote.SubmitCompletion(ctx, token, req)
	if err != nil {
		metrics.RemoteFailuresTotal.WithLabelValues("complete").Inc()
		es.logger.Warn("remote completion failed, keeping local points",
			slog.String("activity_id", req.ExternalID),
			slog.String("error", err.Error()),
		)
		return nil
	}
	if res != nil && res.PointsAwarded != nil && *res.PointsAwarded < 0 {
		es.logger.Warn("remote returned negative points, keeping local points",
			slog.String("activity_id", req.ExternalID),
			slog.Int("points_awarded", *res.PointsAwarded),
		)
	}
	return res
}

func (es *EngineService) Today(ctx context.Context, scope string, forced entity.Phase) (*entity.TodayView, error) {
	if scope == "" {
		scope = AnonScope
	}
	now := es.clock()
	dateKey := DateKey(now)
	phase := forced
	if phase == "" {
		phase = es.hours.PhaseAt(now)
	} else if _, err := entity.ParsePhase(string(phase)); err != nil {
		return nil, err
	}

	// No scope lock: concurrent builds for one key are deterministic and write the same set.
	set, err := es.sets.GetOrCreate(ctx, scope, dateKey, phase)
	if err != nil {
		return nil, err
	}
	completed, err := es.tracker.ListCompleted(ctx, scope, dateKey, phase)
	if err != nil {
		return nil, err
	}
	points, err := es.ledger.LoadPoints(ctx, scope, dateKey)
	if err != nil {
		return nil, err
	}

	view := &entity.TodayView{
		Date:        dateKey,
		DayIndex:    int(now.Weekday()),
		Phase:       phase,
		Pillars:     make([]*entity.Activity, 0, len(set.PillarIDs)),
		Completed:   completed,
		PointsToday: points.Total,
	}
	if a, ok := es.catalog.Get(set.RecommendedID); ok {
		view.Recommended = a
	}
	for _, id := range set.PillarIDs {
		if a, ok := es.catalog.Get(id); ok {
			view.Pillars = append(view.Pillars, a)
		}
	}
	view.Progress = progressOf(set.IDs(), completed)
	return view, nil
}

func progressOf(shown, completed []string) entity.Progress {
	done := 0
	for _, id := range shown {
		if slices.Contains(completed, id) {
			done++
		}
	}
	total := max(1, len(shown))
	return entity.Progress{
		Completed: done,
		Total:     total,
		Percent:   int(math.Round(float64(done) * 100 / float64(total))),
	}
}

func (es *EngineService) ListActivities(ctx context.Context, scope, token string, filter catalog.Filter) (*entity.CatalogView, error) {
	if scope == "" {
		scope = AnonScope
	}
	var (
		list   []*entity.Activity
		remote bool
	)
	if token != "" && es.remote.Configured() {
		ras, err := es.remote.ListActivities(ctx, token)
		if err != nil {
			metrics.RemoteFailuresTotal.WithLabelValues("activities").Inc()
			return nil, err
		}
		list = es.catalog.MergeRemote(ras)
		remote = true
	} else {
		for _, p := range entity.Phases {
			list = append(list, es.catalog.Phase(p)...)
		}
	}

	branches := catalog.Branches(catalog.Filter{Phase: filter.Phase}.Apply(list))
	list = filter.Apply(list)
	catalog.Sort(list)

	done, err := es.tracker.CompletedToday(ctx, scope, DateKey(es.clock()))
	if err != nil {
		return nil, err
	}
	entries := make([]entity.CatalogEntry, 0, len(list))
	for _, a := range list {
		entries = append(entries, entity.CatalogEntry{
			Activity:       a,
			CompletedToday: slices.Contains(done, a.ID),
		})
	}
	return &entity.CatalogView{
		Activities: entries,
		Branches:   branches,
		Remote:     remote,
	}, nil
}

func (es *EngineService) Points(ctx context.Context, scope, dateKey string) (*entity.DayPoints, error) {
	if scope == "" {
		scope = AnonScope
	}
	if dateKey == "" {
		dateKey = DateKey(es.clock())
	} else if _, err := DayIndexOf(dateKey); err != nil {
		return nil, err
	}
	state, err := es.ledger.LoadPoints(ctx, scope, dateKey)
	if err != nil {
		return nil, errors.New("points ledger error: " + err.Error())
	}
	return &entity.DayPoints{
		Date:   dateKey,
		Total:  state.Total,
		Ledger: state.Ledger,
	}, nil
}
