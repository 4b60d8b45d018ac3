package catalog

import "github.com/limbo/placebetween/pkg/entity"

// WeeklyPlan maps phase and weekday (0 = Sunday) to the recommended activity id.
type WeeklyPlan map[entity.Phase]map[int]string

var DefaultWeeklyPlan = WeeklyPlan{
	entity.PhaseDay: {
		0: "d-mirror-review",
		1: "d-rec-breath-5",
		2: "d-soma-check",
		3: "d-thought-cut",
		4: "d-tip-emotion",
		5: "d-goals-review",
		6: "d-stretch-break",
	},
	entity.PhaseNight: {
		0: "n-rec-emotion-check",
		1: "n-rec-emotion-check",
		2: "n-rec-emotion-check",
		3: "n-rec-emotion-check",
		4: "n-rec-emotion-check",
		5: "n-rec-emotion-check",
		6: "n-rec-emotion-check",
	},
}

// PlannedID returns the planned activity id, or "" when the plan has none.
func (wp WeeklyPlan) PlannedID(phase entity.Phase, dayIndex int) string {
	return wp[phase][dayIndex]
}
