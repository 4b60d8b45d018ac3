package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/bytedance/sonic"
	errorvalues "github.com/limbo/placebetween/internal/error_values"
	"github.com/limbo/placebetween/internal/repository"
	"github.com/limbo/placebetween/pkg/entity"
)

const (
	AnonScope   = "anon"
	dateLayout  = "2006-01-02"
	keyPrefix   = "pb_"
	todaySetTag = "todayset"
	todayTag    = "today"
	pointsTag   = "points"
)

// UserScope returns the storage namespace of an identity. Empty subject is anonymous.
func UserScope(subject string) string {
	if subject == "" {
		return AnonScope
	}
	return "u" + subject
}

func TodaySetKey(scope, dateKey string, phase entity.Phase) string {
	return keyPrefix + scope + "_" + todaySetTag + "_" + dateKey + "_" + string(phase)
}

func CompletionKey(scope, dateKey string, phase entity.Phase) string {
	return keyPrefix + scope + "_" + todayTag + "_" + dateKey + "_" + string(phase)
}

// LegacyCompletionKey is the completion key written before user namespacing.
func LegacyCompletionKey(dateKey string, phase entity.Phase) string {
	return keyPrefix + todayTag + "_" + dateKey + "_" + string(phase)
}

func PointsKey(scope, dateKey string) string {
	return keyPrefix + scope + "_" + pointsTag + "_" + dateKey
}

// PhaseHours sets the hour boundaries of the day phase: [DayStart, NightStart).
type PhaseHours struct {
	DayStart   int
	NightStart int
}

var DefaultPhaseHours = PhaseHours{DayStart: 6, NightStart: 19}

func (ph PhaseHours) PhaseAt(t time.Time) entity.Phase {
	h := t.Hour()
	if h >= ph.NightStart || h < ph.DayStart {
		return entity.PhaseNight
	}
	return entity.PhaseDay
}

// DateKey formats t as local YYYY-MM-DD.
func DateKey(t time.Time) string {
	return t.Format(dateLayout)
}

// DayIndexOf returns the weekday of a date key, 0 = Sunday.
func DayIndexOf(dateKey string) (int, error) {
	d, err := time.Parse(dateLayout, dateKey)
	if err != nil {
		return 0, errorvalues.ErrInvalidDate
	}
	return int(d.Weekday()), nil
}

// loadJSON decodes the value under key. Undecodable values, partially
// decoded ones included, are reported as absent.
func loadJSON[T any](ctx context.Context, repo repository.KVRepositoryI, key string) (T, bool, error) {
	var zero T
	raw, ok, err := repo.Get(ctx, key)
	if err != nil {
		return zero, false, err
	}
	if !ok || raw == "" {
		return zero, false, nil
	}
	var v T
	if err := sonic.ConfigDefault.UnmarshalFromString(raw, &v); err != nil {
		slog.Default().Info("ignoring undecodable value", slog.String("key", key), slog.String("error", err.Error()))
		return zero, false, nil
	}
	return v, true, nil
}

func saveJSON(ctx context.Context, repo repository.KVRepositoryI, key string, v any) error {
	raw, err := sonic.ConfigDefault.MarshalToString(v)
	if err != nil {
		return err
	}
	return repo.Set(ctx, key, raw)
}
