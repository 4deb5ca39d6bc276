package petrinet

import "fmt"

// GetPlace looks up a place by name, O(|P|). Fails with ErrInvalidArgument
// if name is empty or no place with that name exists.
func (n *Net) GetPlace(name string) (Place, error) {
	if name == "" {
		return Place{}, fmt.Errorf("%w: place name must not be empty", ErrInvalidArgument)
	}
	n.mu.Lock()
	defer n.mu.Unlock()
	for _, p := range n.places {
		if p.Name == name {
			p.tokens = n.marking[p.Index]
			return p, nil
		}
	}
	return Place{}, fmt.Errorf("%w: no place named %q", ErrInvalidArgument, name)
}

// GetTransition looks up a transition by name, O(|T|). Fails with
// ErrInvalidArgument if name is empty or no transition with that name
// exists.
func (n *Net) GetTransition(name string) (Transition, error) {
	if name == "" {
		return Transition{}, fmt.Errorf("%w: transition name must not be empty", ErrInvalidArgument)
	}
	n.mu.Lock()
	defer n.mu.Unlock()
	for _, t := range n.transitions {
		if t.Name == name {
			return t, nil
		}
	}
	return Transition{}, fmt.Errorf("%w: no transition named %q", ErrInvalidArgument, name)
}

// GetPlaces returns a snapshot copy of every place, tokens filled in from
// the current marking.
func (n *Net) GetPlaces() []Place {
	n.mu.Lock()
	defer n.mu.Unlock()
	out := make([]Place, len(n.places))
	for i, p := range n.places {
		p.tokens = n.marking[i]
		out[i] = p
	}
	return out
}

// GetTransitions returns a copy of every transition descriptor.
func (n *Net) GetTransitions() []Transition {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]Transition(nil), n.transitions...)
}

// GetArcs returns a copy of every arc descriptor, retained purely for
// introspection — firing never consults them.
func (n *Net) GetArcs() []Arc {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]Arc(nil), n.arcs...)
}

// GetEnabledTransitions returns a copy of the enabled cache.
func (n *Net) GetEnabledTransitions() []bool {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]bool(nil), n.enabled...)
}

// GetAutomaticTransitions returns, for every transition index, whether its
// label marks it automatic.
func (n *Net) GetAutomaticTransitions() []bool {
	n.mu.Lock()
	defer n.mu.Unlock()
	out := make([]bool, len(n.transitions))
	for i, t := range n.transitions {
		out[i] = t.Label.Automatic
	}
	return out
}

// GetInformedTransitions returns, for every transition index, whether its
// label marks it informed.
func (n *Net) GetInformedTransitions() []bool {
	n.mu.Lock()
	defer n.mu.Unlock()
	out := make([]bool, len(n.transitions))
	for i, t := range n.transitions {
		out[i] = t.Label.Informed
	}
	return out
}

// GetCurrentMarking returns a copy of the live marking vector.
func (n *Net) GetCurrentMarking() Marking {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.marking.clone()
}

// GetInitialMarking returns a copy of the marking latched at construction
// time; it is never mutated after NewNet returns.
func (n *Net) GetInitialMarking() Marking {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.initialMarking.clone()
}

// GetPre returns a copy of the pre matrix.
func (n *Net) GetPre() [][]int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.pre.clone()
}

// GetPost returns a copy of the post matrix.
func (n *Net) GetPost() [][]int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.post.clone()
}

// GetInc returns a copy of the inc (post-pre) matrix.
func (n *Net) GetInc() [][]int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.inc.clone()
}
