// Package sessionrepo keeps checkout sessions in process memory.
//
// Every operation on one session runs under that session's mutex, so commands
// on the same session are serialized while different sessions proceed in parallel.
package sessionrepo

import (
	"context"
	"errors"
	"sync"
	"time"

	"taproom/internal/core/domain/model/kernel"
	"taproom/internal/core/domain/model/session"
	"taproom/internal/pkg/errs"
)

var errSessionExists = errors.New("a session with this id already exists")

type entry struct {
	mu      sync.Mutex
	session *session.Session
	removed bool
}

// InMemorySessionRepository implements ports.SessionRepository.
type InMemorySessionRepository struct {
	mu       sync.RWMutex
	sessions map[kernel.UUID]*entry
	clock    func() time.Time
}

// NewInMemorySessionRepository creates an empty repository. clock stamps the
// activity of every successful Modify; pass time.Now outside of tests.
func NewInMemorySessionRepository(clock func() time.Time) *InMemorySessionRepository {
	return &InMemorySessionRepository{
		sessions: make(map[kernel.UUID]*entry),
		clock:    clock,
	}
}

func (r *InMemorySessionRepository) Add(_ context.Context, s *session.Session) error {
	if err := s.Validate(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.sessions[s.ID()]; ok {
		return errs.NewValueIsInvalidErrorWithCause("session", errSessionExists)
	}
	r.sessions[s.ID()] = &entry{session: s.Clone()}
	return nil
}

func (r *InMemorySessionRepository) Get(ctx context.Context, id kernel.UUID) (*session.Session, error) {
	e, err := r.lockEntry(ctx, id)
	if err != nil {
		return nil, err
	}
	defer e.mu.Unlock()

	return e.session.Clone(), nil
}

func (r *InMemorySessionRepository) Modify(
	ctx context.Context,
	id kernel.UUID,
	fn func(s *session.Session) error,
) error {
	e, err := r.lockEntry(ctx, id)
	if err != nil {
		return err
	}
	defer e.mu.Unlock()

	working := e.session.Clone()
	if err = fn(working); err != nil {
		return err
	}

	working.Touch(r.clock())
	e.session = working
	return nil
}

func (r *InMemorySessionRepository) DeleteIdle(_ context.Context, now time.Time, ttl time.Duration) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	dropped := 0
	for id, e := range r.sessions {
		e.mu.Lock()
		if e.session.IsIdle(now, ttl) {
			e.removed = true
			delete(r.sessions, id)
			dropped++
		}
		e.mu.Unlock()
	}
	return dropped, nil
}

// Len returns the number of live sessions.
func (r *InMemorySessionRepository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}

// lockEntry returns the locked entry of id. The entry may have been removed by
// DeleteIdle between the map lookup and the lock; that is reported as not found.
func (r *InMemorySessionRepository) lockEntry(ctx context.Context, id kernel.UUID) (*entry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	e, ok := r.sessions[id]
	r.mu.RUnlock()
	if !ok {
		return nil, errs.NewObjectNotFoundError("session", id.String())
	}

	e.mu.Lock()
	if e.removed {
		e.mu.Unlock()
		return nil, errs.NewObjectNotFoundError("session", id.String())
	}
	return e, nil
}
