package service

import "github.com/limbo/placebetween/pkg/entity"

// Reconciled is the final verdict on a completion's points.
type Reconciled struct {
	Points           int
	AlreadyCompleted bool
	// Points came from the remote API
	Remote bool
}

// Reconcile prefers the remote verdict over the tentative local value.
// A negative points_awarded is malformed and leaves the local value.
func Reconcile(local int, remote *entity.RemoteResult) Reconciled {
	switch {
	case remote == nil:
		return Reconciled{Points: local}
	case remote.AlreadyCompleted:
		return Reconciled{Points: 0, AlreadyCompleted: true, Remote: true}
	case remote.PointsAwarded != nil && *remote.PointsAwarded >= 0:
		return Reconciled{Points: *remote.PointsAwarded, Remote: true}
	}
	return Reconciled{Points: local}
}
