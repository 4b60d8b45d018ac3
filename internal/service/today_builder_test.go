package service_test

import (
	"testing"

	"github.com/limbo/placebetween/internal/catalog"
	"github.com/limbo/placebetween/internal/service"
	"github.com/limbo/placebetween/pkg/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func idsOf(list []*entity.Activity) []string {
	out := make([]string, 0, len(list))
	for _, a := range list {
		out = append(out, a.ID)
	}
	return out
}

func defaultBuilder(t *testing.T) (*service.TodayBuilder, *catalog.Catalog) {
	c, err := catalog.Default()
	require.NoError(t, err)
	return service.NewTodayBuilder(c, catalog.DefaultWeeklyPlan), c
}

func TestBuildTodaySet(t *testing.T) {
	b, _ := defaultBuilder(t)
	tests := []struct {
		Desc        string
		Phase       entity.Phase
		DayIndex    int
		Completed   []string
		Recommended string
		Pillars     []string
	}{
		{
			Desc:        "monday day",
			Phase:       entity.PhaseDay,
			DayIndex:    1,
			Recommended: "d-rec-breath-5",
			Pillars:     []string{"d-soma-check", "d-tip-emotion", "d-thought-cut"},
		},
		{
			Desc:        "planned stays recommended when completed",
			Phase:       entity.PhaseDay,
			DayIndex:    1,
			Completed:   []string{"d-rec-breath-5"},
			Recommended: "d-rec-breath-5",
			Pillars:     []string{"d-soma-check", "d-tip-emotion", "d-thought-cut"},
		},
		{
			Desc:        "completed pillars move back",
			Phase:       entity.PhaseDay,
			DayIndex:    1,
			Completed:   []string{"d-soma-check"},
			Recommended: "d-rec-breath-5",
			Pillars:     []string{"d-tip-emotion", "d-thought-cut", "d-goals-review"},
		},
		{
			Desc:        "monday night",
			Phase:       entity.PhaseNight,
			DayIndex:    1,
			Recommended: "n-rec-emotion-check",
			Pillars:     []string{"n-body-signal", "n-reframe-1", "n-journal-1"},
		},
	}
	for _, tc := range tests {
		t.Run(tc.Desc, func(t *testing.T) {
			got := b.Build(tc.Phase, tc.DayIndex, tc.Completed)
			require.NotNil(t, got.Recommended)
			assert.Equal(t, tc.Recommended, got.Recommended.ID)
			assert.Equal(t, tc.Pillars, idsOf(got.Pillars))
		})
	}
}

func TestBuildTodaySetRotation(t *testing.T) {
	c, err := catalog.New(
		&entity.Activity{ID: "a1", Phase: entity.PhaseDay, Branch: "A"},
		&entity.Activity{ID: "a2", Phase: entity.PhaseDay, Branch: "A"},
		&entity.Activity{ID: "a3", Phase: entity.PhaseDay, Branch: "B"},
		&entity.Activity{ID: "a4", Phase: entity.PhaseDay, Branch: "C"},
	)
	require.NoError(t, err)
	b := service.NewTodayBuilder(c, catalog.WeeklyPlan{})

	got := b.Build(entity.PhaseDay, 2, []string{"a3"})
	assert.Equal(t, "a4", got.Recommended.ID)
	// diversity picks a1 and a3, a2 fills the last slot
	assert.Equal(t, []string{"a1", "a3", "a2"}, idsOf(got.Pillars))

	got = b.Build(entity.PhaseDay, 2, []string{"a1", "a2", "a3", "a4"})
	assert.Equal(t, "a3", got.Recommended.ID)
	assert.Len(t, got.Pillars, 3)

	// planned id from the other phase does not resolve
	b = service.NewTodayBuilder(c, catalog.WeeklyPlan{entity.PhaseDay: {0: "n-rec-emotion-check"}})
	got = b.Build(entity.PhaseDay, 0, nil)
	assert.Equal(t, "a1", got.Recommended.ID)
}

func TestBuildTodaySetEmptyPhase(t *testing.T) {
	c, err := catalog.New(&entity.Activity{ID: "n1", Phase: entity.PhaseNight})
	require.NoError(t, err)
	b := service.NewTodayBuilder(c, catalog.DefaultWeeklyPlan)

	got := b.Build(entity.PhaseDay, 1, nil)
	assert.Nil(t, got.Recommended)
	assert.Empty(t, got.Pillars)

	got = b.Build(entity.PhaseNight, 1, nil)
	assert.Equal(t, "n1", got.Recommended.ID)
	assert.Empty(t, got.Pillars)
}

func TestBuildTodaySetInvariants(t *testing.T) {
	b, c := defaultBuilder(t)
	completedCases := [][]string{
		nil,
		{"d-soma-check", "n-body-signal"},
		{"d-rec-breath-5", "d-soma-check", "d-tip-emotion", "d-thought-cut", "d-goals-review", "d-stretch-break", "d-mirror-review"},
	}
	for _, phase := range entity.Phases {
		size := len(c.Phase(phase))
		for day := 0; day < 7; day++ {
			for _, completed := range completedCases {
				first := b.Build(phase, day, completed)
				second := b.Build(phase, day, completed)
				assert.Equal(t, idsOf(first.Pillars), idsOf(second.Pillars), "determinism %s/%d", phase, day)
				assert.Equal(t, first.Recommended.ID, second.Recommended.ID)

				assert.Len(t, first.Pillars, min(3, size-1))
				seen := map[string]bool{}
				for _, p := range first.Pillars {
					assert.NotEqual(t, first.Recommended.ID, p.ID)
					assert.False(t, seen[p.ID], "duplicate pillar %s", p.ID)
					assert.Equal(t, phase, p.Phase)
					seen[p.ID] = true
				}
				assert.Equal(t, catalog.DefaultWeeklyPlan.PlannedID(phase, day), first.Recommended.ID)
			}
		}
	}
}
