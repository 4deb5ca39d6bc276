package petrinet

import "fmt"

// Fire is the atomic state transition described in §4.2. It evaluates
// isEnabled(t) against the current state and, if enabled, applies t's
// effect to the marking, mirrors the change into the Place descriptors,
// recomputes the enabled cache, and returns Success — all under a single
// critical section, so no other caller ever observes an intermediate
// marking.
//
// NOT_ENABLED is an ordinary outcome, not an error: Fire returns a non-nil
// error only for ErrNotInitialized or ErrInvalidArgument, both of which
// leave every piece of state untouched.
func (n *Net) Fire(t int) (Outcome, error) {
	n.mu.Lock()
	defer n.mu.Unlock()

	if !n.initialized {
		return NotEnabled, fmt.Errorf("%w: call Initialize before Fire", ErrNotInitialized)
	}
	if t < 0 || t >= len(n.transitions) {
		return NotEnabled, fmt.Errorf("%w: transition index %d out of range [0,%d)", ErrInvalidArgument, t, len(n.transitions))
	}

	if !n.strategy.IsEnabled(n, t) {
		n.log.Debug().Str("transition", n.transitions[t].Name).Msg("fire: not enabled")
		return NotEnabled, nil
	}

	for p := range n.places {
		if n.hasReset && n.reset[p][t] {
			n.marking[p] = 0
		} else {
			n.marking[p] += n.inc[p][t]
		}
		n.places[p].tokens = n.marking[p]
	}

	n.enabled = n.strategy.ComputeEnabled(n)

	n.log.Debug().Str("transition", n.transitions[t].Name).Msg("fire: success")
	return Success, nil
}

// SetGuard updates a guard entry and recomputes the enabled cache before
// returning. wasUpdated reports whether the name already existed — true
// means an existing binding was replaced, false means it was newly
// inserted. This is a replacement/insertion flag, not an error signal:
// SetGuard on an initialized net has no failure mode of its own.
func (n *Net) SetGuard(name string, value bool) (wasUpdated bool, err error) {
	n.mu.Lock()
	defer n.mu.Unlock()

	if !n.initialized {
		return false, fmt.Errorf("%w: call Initialize before SetGuard", ErrNotInitialized)
	}

	_, wasUpdated = n.guards[name]
	n.guards[name] = value
	n.enabled = n.strategy.ComputeEnabled(n)

	n.log.Debug().Str("guard", name).Bool("value", value).Bool("updated", wasUpdated).Msg("guard set")
	return wasUpdated, nil
}

// ReadGuard returns the current value of a registered guard, failing with
// ErrMissingGuard if name was never declared by any transition (or seeded
// via WithGuardDefault/WithGuardDefaults).
func (n *Net) ReadGuard(name string) (bool, error) {
	n.mu.Lock()
	defer n.mu.Unlock()

	v, ok := n.guards[name]
	if !ok {
		return false, fmt.Errorf("%w: %q", ErrMissingGuard, name)
	}
	return v, nil
}

// IsEnabled reports isEnabled(t) against the current state, taking the
// net's lock for the duration so the read is a consistent snapshot. Out of
// range indices return false rather than erroring, matching the cached
// enabled vector's shape; use Fire for the error-returning contract.
func (n *Net) IsEnabled(t int) bool {
	n.mu.Lock()
	defer n.mu.Unlock()
	if t < 0 || t >= len(n.transitions) {
		return false
	}
	return n.strategy.IsEnabled(n, t)
}
