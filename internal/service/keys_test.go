package service_test

import (
	"testing"
	"time"

	errorvalues "github.com/limbo/placebetween/internal/error_values"
	"github.com/limbo/placebetween/internal/service"
	"github.com/limbo/placebetween/pkg/entity"
	"github.com/stretchr/testify/assert"
)

func TestStorageKeys(t *testing.T) {
	assert.Equal(t, "u42", service.UserScope("42"))
	assert.Equal(t, "anon", service.UserScope(""))
	assert.Equal(t, "pb_u42_todayset_2026-10-19_day", service.TodaySetKey("u42", monday, entity.PhaseDay))
	assert.Equal(t, "pb_anon_today_2026-10-19_night", service.CompletionKey("anon", monday, entity.PhaseNight))
	assert.Equal(t, "pb_today_2026-10-19_night", service.LegacyCompletionKey(monday, entity.PhaseNight))
	assert.Equal(t, "pb_u42_points_2026-10-19", service.PointsKey("u42", monday))
}

func TestPhaseHours(t *testing.T) {
	at := func(h int) time.Time {
		return time.Date(2026, 10, 19, h, 30, 0, 0, time.UTC)
	}
	ph := service.DefaultPhaseHours
	assert.Equal(t, entity.PhaseNight, ph.PhaseAt(at(0)))
	assert.Equal(t, entity.PhaseNight, ph.PhaseAt(at(5)))
	assert.Equal(t, entity.PhaseDay, ph.PhaseAt(at(6)))
	assert.Equal(t, entity.PhaseDay, ph.PhaseAt(at(18)))
	assert.Equal(t, entity.PhaseNight, ph.PhaseAt(at(19)))

	custom := service.PhaseHours{DayStart: 8, NightStart: 22}
	assert.Equal(t, entity.PhaseNight, custom.PhaseAt(at(7)))
	assert.Equal(t, entity.PhaseDay, custom.PhaseAt(at(21)))
}

func TestDayIndexOf(t *testing.T) {
	idx, err := service.DayIndexOf(monday)
	assert.NoError(t, err)
	assert.Equal(t, 1, idx)
	idx, err = service.DayIndexOf("2026-10-18")
	assert.NoError(t, err)
	assert.Equal(t, 0, idx)
	_, err = service.DayIndexOf("2026-13-01")
	assert.ErrorIs(t, err, errorvalues.ErrInvalidDate)
	assert.Equal(t, monday, service.DateKey(mondayMorning))
}
