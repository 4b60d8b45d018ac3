package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/limbo/placebetween/internal/catalog"
	errorvalues "github.com/limbo/placebetween/internal/error_values"
	repomocks "github.com/limbo/placebetween/internal/repository/mocks"
	"github.com/limbo/placebetween/internal/service"
	"github.com/limbo/placebetween/pkg/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var mondayDaySet = &entity.TodaySet{
	RecommendedID: "d-rec-breath-5",
	PillarIDs:     []string{"d-soma-check", "d-tip-emotion", "d-thought-cut"},
}

func TestGetOrCreateFreezes(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	set, err := f.sets.GetOrCreate(ctx, testScope, monday, entity.PhaseDay)
	require.NoError(t, err)
	assert.Equal(t, mondayDaySet, set)

	raw, ok, err := f.repo.Get(ctx, service.TodaySetKey(testScope, monday, entity.PhaseDay))
	require.NoError(t, err)
	require.True(t, ok)
	assert.JSONEq(t, `{"recommendedId":"d-rec-breath-5","pillarIds":["d-soma-check","d-tip-emotion","d-thought-cut"]}`, raw)

	// completions would change a fresh build, the frozen set must not move
	require.NoError(t, f.tracker.MarkCompleted(ctx, testScope, monday, entity.PhaseDay, "d-soma-check"))
	require.NoError(t, f.tracker.MarkCompleted(ctx, testScope, monday, entity.PhaseDay, "d-tip-emotion"))
	again, err := f.sets.GetOrCreate(ctx, testScope, monday, entity.PhaseDay)
	require.NoError(t, err)
	assert.Equal(t, set, again)

	// another scope builds its own set
	other, err := f.sets.GetOrCreate(ctx, service.AnonScope, monday, entity.PhaseDay)
	require.NoError(t, err)
	assert.Equal(t, mondayDaySet, other)
}

func TestGetOrCreateSelfHeals(t *testing.T) {
	tests := []struct {
		Desc    string
		Stored  string
		Rebuilt bool
	}{
		{
			Desc:    "stale recommended",
			Stored:  `{"recommendedId":"d-removed","pillarIds":["d-soma-check","d-tip-emotion","d-thought-cut"]}`,
			Rebuilt: true,
		},
		{
			Desc:    "stale pillar",
			Stored:  `{"recommendedId":"d-rec-breath-5","pillarIds":["d-soma-check","d-removed","d-thought-cut"]}`,
			Rebuilt: true,
		},
		{
			Desc:    "pillar from other phase",
			Stored:  `{"recommendedId":"d-rec-breath-5","pillarIds":["d-soma-check","n-body-signal","d-thought-cut"]}`,
			Rebuilt: true,
		},
		{
			Desc:    "short pillar list",
			Stored:  `{"recommendedId":"d-rec-breath-5","pillarIds":["d-soma-check"]}`,
			Rebuilt: true,
		},
		{
			Desc:    "undecodable",
			Stored:  `{"recommendedId":`,
			Rebuilt: true,
		},
		{
			Desc:    "valid set is kept",
			Stored:  `{"recommendedId":"d-goals-review","pillarIds":["d-stretch-break","d-mirror-review","d-soma-check"]}`,
			Rebuilt: false,
		},
	}
	for _, tc := range tests {
		t.Run(tc.Desc, func(t *testing.T) {
			f := newFixture(t)
			ctx := context.Background()
			key := service.TodaySetKey(testScope, monday, entity.PhaseDay)
			require.NoError(t, f.repo.Set(ctx, key, tc.Stored))

			set, err := f.sets.GetOrCreate(ctx, testScope, monday, entity.PhaseDay)
			require.NoError(t, err)
			raw, _, _ := f.repo.Get(ctx, key)
			if tc.Rebuilt {
				assert.Equal(t, mondayDaySet, set)
				assert.NotEqual(t, tc.Stored, raw)
			} else {
				assert.Equal(t, "d-goals-review", set.RecommendedID)
				assert.Equal(t, tc.Stored, raw)
			}
		})
	}
}

func TestGetOrCreateSmallCatalogs(t *testing.T) {
	c, err := catalog.New(
		&entity.Activity{ID: "n1", Phase: entity.PhaseNight, Branch: "A"},
		&entity.Activity{ID: "n2", Phase: entity.PhaseNight, Branch: "A"},
	)
	require.NoError(t, err)
	f := newFixtureWithCatalog(t, c)
	ctx := context.Background()

	set, err := f.sets.GetOrCreate(ctx, testScope, monday, entity.PhaseNight)
	require.NoError(t, err)
	// the weekly plan names an unknown id, rotation by 1 starts at n2
	assert.Equal(t, "n2", set.RecommendedID)
	assert.Equal(t, []string{"n1"}, set.PillarIDs)
	again, err := f.sets.GetOrCreate(ctx, testScope, monday, entity.PhaseNight)
	require.NoError(t, err)
	assert.Equal(t, set, again)

	empty, err := f.sets.GetOrCreate(ctx, testScope, monday, entity.PhaseDay)
	require.NoError(t, err)
	assert.Empty(t, empty.RecommendedID)
	assert.Empty(t, empty.PillarIDs)
	_, ok, err := f.repo.Get(ctx, service.TodaySetKey(testScope, monday, entity.PhaseDay))
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestLookupTodaySet(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	set, err := f.sets.Lookup(ctx, testScope, monday, entity.PhaseDay)
	require.NoError(t, err)
	assert.Nil(t, set)
	assert.Zero(t, f.repo.Len())

	_, err = f.sets.GetOrCreate(ctx, testScope, monday, entity.PhaseDay)
	require.NoError(t, err)
	set, err = f.sets.Lookup(ctx, testScope, monday, entity.PhaseDay)
	require.NoError(t, err)
	assert.Equal(t, mondayDaySet, set)
}

func TestGetOrCreateErrors(t *testing.T) {
	c, err := catalog.Default()
	require.NoError(t, err)
	ctrl := gomock.NewController(t)
	repo := repomocks.NewMockKVRepositoryI(ctrl)
	tracker := service.NewCompletionService(repo, nil)
	sets := service.NewTodaySetService(repo, c, service.NewTodayBuilder(c, catalog.DefaultWeeklyPlan), tracker, nil)
	ctx := context.Background()

	t.Run("invalid date", func(t *testing.T) {
		_, err := sets.GetOrCreate(ctx, testScope, "19/10/2026", entity.PhaseDay)
		assert.ErrorIs(t, err, errorvalues.ErrInvalidDate)
	})
	t.Run("storage error", func(t *testing.T) {
		repo.EXPECT().Get(gomock.Any(), service.TodaySetKey(testScope, monday, entity.PhaseDay)).
			Return("", false, errors.New("disk full"))
		_, err := sets.GetOrCreate(ctx, testScope, monday, entity.PhaseDay)
		assert.ErrorContains(t, err, "disk full")
	})
	t.Run("save error", func(t *testing.T) {
		repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return("", false, nil).Times(3)
		repo.EXPECT().Set(gomock.Any(), service.TodaySetKey(testScope, monday, entity.PhaseDay), gomock.Any()).
			Return(errors.New("read only"))
		_, err := sets.GetOrCreate(ctx, testScope, monday, entity.PhaseDay)
		assert.ErrorContains(t, err, "saving today set error")
	})
}
