package service

import (
	"slices"

	"github.com/limbo/placebetween/internal/catalog"
	"github.com/limbo/placebetween/pkg/entity"
)

const PillarCount = 3

// BuiltSet is the builder output before padding and persistence.
type BuiltSet struct {
	Recommended *entity.Activity
	Pillars     []*entity.Activity
}

// TodayBuilder picks a recommended activity and the pillars for a phase.
// It is a pure function of catalog, plan, day index and completed ids.
type TodayBuilder struct {
	catalog ActivityCatalogI
	plan    catalog.WeeklyPlan
}

func NewTodayBuilder(c ActivityCatalogI, plan catalog.WeeklyPlan) *TodayBuilder {
	return &TodayBuilder{catalog: c, plan: plan}
}

func (b *TodayBuilder) Build(phase entity.Phase, dayIndex int, completedIDs []string) BuiltSet {
	pool := b.catalog.Phase(phase)
	if len(pool) == 0 {
		return BuiltSet{Pillars: []*entity.Activity{}}
	}
	done := func(a *entity.Activity) bool {
		return slices.Contains(completedIDs, a.ID)
	}

	var recommended *entity.Activity
	// Planned activity wins even when already completed
	if planned := b.plan.PlannedID(phase, dayIndex); planned != "" {
		if a, ok := b.catalog.Get(planned); ok && a.Phase == phase {
			recommended = a
		}
	}
	rot := rotate(pool, dayIndex)
	if recommended == nil {
		recommended = rot[0]
		for _, a := range rot {
			if !done(a) {
				recommended = a
				break
			}
		}
	}

	ordered := make([]*entity.Activity, 0, len(rot))
	var finished []*entity.Activity
	for _, a := range rot {
		switch {
		case a.ID == recommended.ID:
		case done(a):
			finished = append(finished, a)
		default:
			ordered = append(ordered, a)
		}
	}
	ordered = append(ordered, finished...)

	return BuiltSet{
		Recommended: recommended,
		Pillars:     pickWithBranchDiversity(ordered, PillarCount),
	}
}

func rotate(list []*entity.Activity, dayIndex int) []*entity.Activity {
	offset := dayIndex % len(list)
	if offset < 0 {
		offset += len(list)
	}
	out := make([]*entity.Activity, 0, len(list))
	out = append(out, list[offset:]...)
	return append(out, list[:offset]...)
}

// pickWithBranchDiversity takes at most one activity per branch, then fills
// up to count in list order.
func pickWithBranchDiversity(list []*entity.Activity, count int) []*entity.Activity {
	out := make([]*entity.Activity, 0, count)
	usedBranch := make(map[string]struct{})
	picked := make(map[string]struct{})
	for _, a := range list {
		if len(out) >= count {
			break
		}
		if _, used := usedBranch[a.Branch]; used {
			continue
		}
		usedBranch[a.Branch] = struct{}{}
		picked[a.ID] = struct{}{}
		out = append(out, a)
	}
	for _, a := range list {
		if len(out) >= count {
			break
		}
		if _, ok := picked[a.ID]; ok {
			continue
		}
		picked[a.ID] = struct{}{}
		out = append(out, a)
	}
	return out
}
