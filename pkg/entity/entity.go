package entity

import (
	errorvalues "github.com/limbo/placebetween/internal/error_values"
)

// Phase is one of the two daily cycles.
type Phase string

const (
	PhaseDay   Phase = "day"
	PhaseNight Phase = "night"
)

var Phases = []Phase{PhaseDay, PhaseNight}

func ParsePhase(s string) (Phase, error) {
	switch Phase(s) {
	case PhaseDay, PhaseNight:
		return Phase(s), nil
	}
	return "", errorvalues.ErrInvalidPhase
}

// Source tells where a completion came from: the curated daily set or the full catalog.
type Source string

const (
	SourceToday   Source = "today"
	SourceCatalog Source = "catalog"
)

// View is the screen a completion was triggered from.
type View string

const (
	ViewToday   View = "today"
	ViewCatalog View = "catalog"
)

type Activity struct {
	ID          string        `json:"id"`
	Phase       Phase         `json:"phase"`
	Title       string        `json:"title"`
	Branch      string        `json:"branch"`
	Duration    *int          `json:"duration,omitempty"`
	Description string        `json:"description,omitempty"`
	Reason      string        `json:"reason,omitempty"`
	Image       string        `json:"image,omitempty"`
	Priority    bool          `json:"priority,omitempty"`
	Run         RunDescriptor `json:"run,omitempty"`
}

// TodaySet is the frozen pick for one (user, date, phase).
type TodaySet struct {
	RecommendedID string   `json:"recommendedId"`
	PillarIDs     []string `json:"pillarIds"`
}

// Contains reports whether id is the recommended activity or one of the pillars.
func (ts *TodaySet) Contains(id string) bool {
	if ts == nil || id == "" {
		return false
	}
	if ts.RecommendedID == id {
		return true
	}
	for _, p := range ts.PillarIDs {
		if p == id {
			return true
		}
	}
	return false
}

// IDs returns recommended first, then pillars.
func (ts *TodaySet) IDs() []string {
	if ts == nil {
		return nil
	}
	ids := make([]string, 0, len(ts.PillarIDs)+1)
	if ts.RecommendedID != "" {
		ids = append(ids, ts.RecommendedID)
	}
	return append(ids, ts.PillarIDs...)
}

type CompletionState struct {
	Completed []string `json:"completed"`
}

type PointsState struct {
	Total  int            `json:"total"`
	Ledger map[string]int `json:"ledger"`
}

// DayPoints is the ledger of one resolved date.
type DayPoints struct {
	Date   string         `json:"date"`
	Total  int            `json:"total"`
	Ledger map[string]int `json:"ledger"`
}

type AwardContext struct {
	Source         Source
	IsCorrectPhase bool
	IsRecommended  bool
	// Authoritative value, replaces the computed one when set
	Override *int
}

type AwardResult struct {
	Awarded bool `json:"awarded"`
	Points  int  `json:"points"`
	Total   int  `json:"total"`
}

type Progress struct {
	Completed int `json:"completed"`
	Total     int `json:"total"`
	Percent   int `json:"percent"`
}

type TodayView struct {
	Date        string      `json:"date"`
	DayIndex    int         `json:"day_index"`
	Phase       Phase       `json:"phase"`
	Recommended *Activity   `json:"recommended"`
	Pillars     []*Activity `json:"pillars"`
	Completed   []string    `json:"completed"`
	Progress    Progress    `json:"progress"`
	PointsToday int         `json:"points_today"`
}

type CompletionOutcome struct {
	ActivityID       string `json:"activity_id"`
	Completed        bool   `json:"completed"`
	Awarded          bool   `json:"awarded"`
	Points           int    `json:"points"`
	Total            int    `json:"total"`
	Reason           string `json:"reason"`
	AlreadyCompleted bool   `json:"already_completed"`
	Source           Source `json:"source"`
	IsRecommended    bool   `json:"is_recommended"`
}

type CatalogEntry struct {
	*Activity
	CompletedToday bool `json:"completed_today"`
}

type CatalogView struct {
	Activities []CatalogEntry `json:"activities"`
	Branches   []string       `json:"branches"`
	Remote     bool           `json:"remote"`
}
