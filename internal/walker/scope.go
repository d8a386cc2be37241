package walker

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"

	"golang.org/x/sync/errgroup"
)

// scope tracks the directory units of one run.
// At most limit units run on their own goroutine; once the limit is reached a unit
// runs inline on the goroutine that discovered it, so spawning never blocks.
// Unit errors are collected rather than cancelling sibling units.
type scope struct {
	ctx   context.Context //nolint:containedctx // shared by every unit of the run
	group errgroup.Group

	mu   sync.Mutex
	errs []error

	spawned atomic.Int64
	inlined atomic.Int64
}

func newScope(ctx context.Context, limit int) *scope {
	s := &scope{ctx: ctx}

	if limit > 0 {
		s.group.SetLimit(limit)
	}

	return s
}

// spawn runs unit concurrently when a slot is free and inline otherwise.
func (s *scope) spawn(unit func(ctx context.Context) error) {
	run := func() error {
		if err := unit(s.ctx); err != nil {
			s.record(err)
		}

		return nil
	}

	if s.group.TryGo(run) {
		s.spawned.Add(1)

		return
	}

	s.inlined.Add(1)

	_ = run() //nolint:errcheck // errors are recorded by run itself
}

func (s *scope) record(err error) {
	// Cancellation and deadlines are reported once by the caller, not per unit.
	if ctxErr := s.ctx.Err(); ctxErr != nil && errors.Is(err, ctxErr) {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.errs = append(s.errs, err)
}

// wait blocks until every unit has finished and returns their errors joined.
func (s *scope) wait() error {
	_ = s.group.Wait() //nolint:errcheck // units never return errors to the group

	s.mu.Lock()
	defer s.mu.Unlock()

	return errors.Join(s.errs...)
}
