// Package ports defines the contracts between the order orchestration core and
// its adapters: session storage, the order journal, the order handoff and the
// order event stream.
package ports

import (
	"context"
	"time"

	"taproom/internal/core/domain/model/kernel"
	"taproom/internal/core/domain/model/session"
)

// SessionRepository stores checkout sessions and serializes every operation
// on one session.
type SessionRepository interface {
	// Add stores a new session. The id must not exist yet.
	Add(ctx context.Context, s *session.Session) error

	// Get returns a snapshot of the session. Changes to the snapshot are not stored.
	Get(ctx context.Context, id kernel.UUID) (*session.Session, error)

	// Modify runs fn on a copy of the session while holding the session's lock and
	// stores the copy only when fn returns nil. A failing fn leaves the session as it was.
	//
	// Example:
	//   err := repo.Modify(ctx, id, func(s *session.Session) error {
	//       return s.SelectLocation(kernel.FozDoIguacu)
	//   })
	Modify(ctx context.Context, id kernel.UUID, fn func(s *session.Session) error) error

	// DeleteIdle drops sessions without activity for longer than ttl and
	// returns how many were dropped.
	DeleteIdle(ctx context.Context, now time.Time, ttl time.Duration) (int, error)
}
