// Package repository defines the activity registry interface and its
// in-memory implementation.
package repository

import (
	"context"

	"github.com/mergington/activities/internal/domain/model"
)

// Registry provides read/write access to the activity state. The activity
// set is fixed after construction; only rosters mutate.
type Registry interface {
	// List returns every activity in insertion order.
	List(ctx context.Context) (model.Catalog, error)

	// Get returns a single activity by name.
	// Returns ErrActivityNotFound if the name is unknown.
	Get(ctx context.Context, name string) (model.Activity, error)

	// Signup appends email to the named activity's roster and returns the
	// updated activity. Returns ErrActivityNotFound for an unknown name,
	// ErrAlreadySignedUp for a duplicate email, and ErrActivityFull when
	// capacity enforcement is enabled and the roster is at capacity.
	Signup(ctx context.Context, name, email string) (model.Activity, error)

	// Unregister removes email from the named activity's roster and returns
	// the updated activity. Returns ErrActivityNotFound for an unknown name
	// and ErrNotSignedUp when the email is not on the roster.
	Unregister(ctx context.Context, name, email string) (model.Activity, error)

	// Count returns the number of activities tracked.
	Count(ctx context.Context) int
}
