package service

import (
	"context"
	"log"
	"log/slog"
	"time"

	errorvalues "github.com/limbo/placebetween/internal/error_values"
	"github.com/limbo/placebetween/internal/metrics"
	"github.com/limbo/placebetween/internal/repository"
	"github.com/limbo/placebetween/pkg/entity"
)

// MirrorService passes emotion and Mirror requests through to the remote API.
type MirrorService struct {
	remote RemoteClientI
	logger *slog.Logger
}

func NewMirrorService(remote RemoteClientI, logger *slog.Logger) *MirrorService {
	if remote == nil {
		log.Fatal("provided nil remote client")
	}
	if logger == nil {
		logger = slog.Default()
	}
	InitValidator()
	return &MirrorService{remote: remote, logger: logger}
}

func (ms *MirrorService) ListEmotions(ctx context.Context) ([]entity.Emotion, error) {
	emotions, err := ms.remote.ListEmotions(ctx)
	if err != nil {
		ms.failed("emotions", err)
		return nil, err
	}
	return emotions, nil
}

func (ms *MirrorService) Checkin(ctx context.Context, token string, req *entity.CheckinRequest) (*entity.EmotionCheckin, error) {
	if token == "" {
		return nil, errorvalues.ErrAuthRequired
	}
	if err := validate.Struct(req); err != nil {
		return nil, err
	}
	checkin, err := ms.remote.Checkin(ctx, token, req)
	if err != nil {
		ms.failed("checkin", err)
		return nil, err
	}
	return checkin, nil
}

func (ms *MirrorService) DailySummary(ctx context.Context, token string) (*entity.DailySummary, error) {
	if token == "" {
		return nil, errorvalues.ErrAuthRequired
	}
	summary, err := ms.remote.DailySummary(ctx, token)
	if err != nil {
		ms.failed("mirror", err)
		return nil, err
	}
	return summary, nil
}

func (ms *MirrorService) failed(op string, err error) {
	metrics.RemoteFailuresTotal.WithLabelValues(op).Inc()
	ms.logger.Warn("remote call failed", slog.String("op", op), slog.String("error", err.Error()))
}

type MaintenanceService struct {
	repo repository.KVRepositoryI
}

func NewMaintenanceService(repo repository.KVRepositoryI) *MaintenanceService {
	if repo == nil {
		log.Fatal("provided nil kv repository")
	}
	return &MaintenanceService{repo: repo}
}

func (ms *MaintenanceService) Purge(ctx context.Context, cutoff time.Time) (int64, error) {
	return ms.repo.PurgeBefore(ctx, cutoff)
}
