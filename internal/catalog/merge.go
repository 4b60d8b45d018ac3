package catalog

import (
	"cmp"
	"slices"
	"strconv"
	"strings"

	"github.com/limbo/placebetween/pkg/entity"
)

const (
	DefaultBranch = "General"
	// Sort weight of activities without a duration
	missingDuration = 999
)

// Filter narrows a catalog listing. Empty fields match everything.
type Filter struct {
	Phase  entity.Phase
	Branch string
	Query  string
}

// MergeRemote overlays local metadata on the remote activity list. Local
// values win for phase, branch, duration, image, reason, run and priority.
// Inactive remote activities are dropped.
func (c *Catalog) MergeRemote(remote []entity.RemoteActivity) []*entity.Activity {
	out := make([]*entity.Activity, 0, len(remote))
	seen := make(map[string]struct{}, len(remote))
	for _, ra := range remote {
		if ra.IsActive != nil && !*ra.IsActive {
			continue
		}
		id := ra.ExternalID
		if id == "" {
			id = "remote-" + strconv.Itoa(ra.ID)
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}

		a := &entity.Activity{
			ID:          id,
			Phase:       remotePhase(ra.ActivityType),
			Title:       ra.Name,
			Description: ra.Description,
		}
		if ra.Category != nil && ra.Category.Name != "" {
			a.Branch = ra.Category.Name
		}
		if local, ok := c.Get(id); ok {
			a.Phase = local.Phase
			if local.Branch != "" {
				a.Branch = local.Branch
			}
			a.Duration = local.Duration
			a.Image = local.Image
			a.Reason = local.Reason
			a.Run = local.Run
			a.Priority = local.Priority
			if a.Title == "" {
				a.Title = local.Title
			}
			if a.Description == "" {
				a.Description = local.Description
			}
		}
		if a.Branch == "" {
			a.Branch = DefaultBranch
		}
		out = append(out, a)
	}
	return out
}

func remotePhase(activityType string) entity.Phase {
	if strings.EqualFold(activityType, string(entity.PhaseNight)) {
		return entity.PhaseNight
	}
	return entity.PhaseDay
}

// Apply returns the activities matching f. Query matches title, description,
// reason or branch, case-insensitively.
func (f Filter) Apply(list []*entity.Activity) []*entity.Activity {
	q := strings.ToLower(strings.TrimSpace(f.Query))
	out := make([]*entity.Activity, 0, len(list))
	for _, a := range list {
		if f.Phase != "" && a.Phase != f.Phase {
			continue
		}
		if f.Branch != "" && !strings.EqualFold(a.Branch, f.Branch) {
			continue
		}
		if q != "" &&
			!strings.Contains(strings.ToLower(a.Title), q) &&
			!strings.Contains(strings.ToLower(a.Description), q) &&
			!strings.Contains(strings.ToLower(a.Reason), q) &&
			!strings.Contains(strings.ToLower(a.Branch), q) {
			continue
		}
		out = append(out, a)
	}
	return out
}

// Sort orders by priority first, then shorter duration, then title. Stable.
func Sort(list []*entity.Activity) {
	slices.SortStableFunc(list, func(a, b *entity.Activity) int {
		if a.Priority != b.Priority {
			if a.Priority {
				return -1
			}
			return 1
		}
		if c := cmp.Compare(durationOf(a), durationOf(b)); c != 0 {
			return c
		}
		return strings.Compare(a.Title, b.Title)
	})
}

func durationOf(a *entity.Activity) int {
	if a.Duration == nil {
		return missingDuration
	}
	return *a.Duration
}

// Branches returns the distinct branch names of list, sorted.
func Branches(list []*entity.Activity) []string {
	set := make(map[string]struct{})
	for _, a := range list {
		if a.Branch != "" {
			set[a.Branch] = struct{}{}
		}
	}
	out := make([]string, 0, len(set))
	for b := range set {
		out = append(out, b)
	}
	slices.Sort(out)
	return out
}
