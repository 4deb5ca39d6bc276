// Package petrinet implements a generalized Place/Transition net used as a
// concurrency monitor substrate: a sparse integer incidence model extended
// with inhibitor, reset, and reader arcs plus boolean transition guards.
//
// This package is THE CORE only — the net representation, the enabledness
// evaluator, and the atomic firing operator. Building a net from a text
// description lives in the sibling factory package; scheduling callers that
// block on disabled transitions is a layer above this one.
package petrinet

import (
	"fmt"
	"sync"

	"github.com/rs/zerolog"
)

// Net is a generalized Place/Transition net: immutable nodes and matrices,
// plus the mutable marking, guard table, and enabled cache described in §3
// of the spec. All mutation and externally-observed reads go through mu,
// per the single net-scoped lock discipline of §5.
type Net struct {
	mu sync.Mutex

	places      []Place
	transitions []Transition
	arcs        []Arc

	pre, post, inc, reader intMatrix
	inhibition, reset       boolMatrix

	hasInhibition bool
	hasReset      bool
	hasReader     bool

	marking        Marking
	initialMarking Marking

	guards map[string]bool

	enabled     []bool
	initialized bool

	strategy EnabledStrategy
	log      zerolog.Logger
}

// Outcome is the result of a Fire call.
type Outcome int

const (
	// Success means the transition fired and the marking changed.
	Success Outcome = iota
	// NotEnabled means the transition was not enabled; no state changed.
	NotEnabled
)

func (o Outcome) String() string {
	if o == Success {
		return "SUCCESS"
	}
	return "NOT_ENABLED"
}

// NetOption configures optional construction-time behavior of NewNet.
type NetOption func(*Net)

// WithLogger attaches a structured logger used for fire/guard diagnostics.
// The zero Net logs nothing (zerolog.Nop()).
func WithLogger(l zerolog.Logger) NetOption {
	return func(n *Net) { n.log = l }
}

// WithStrategy overrides the default Place/Transition evaluator. See
// EnabledStrategy.
func WithStrategy(s EnabledStrategy) NetOption {
	return func(n *Net) { n.strategy = s }
}

// WithGuardDefault seeds a single guard name to a starting value other than
// the package default of false. Applied after the automatic "every declared
// guard starts false" seeding, so this overrides it for that one name.
func WithGuardDefault(name string, value bool) NetOption {
	return func(n *Net) { n.guards[name] = value }
}

// WithGuardDefaults seeds multiple guard starting values in one call; see
// WithGuardDefault.
func WithGuardDefaults(defaults map[string]bool) NetOption {
	return func(n *Net) {
		for k, v := range defaults {
			n.guards[k] = v
		}
	}
}

// NewNet constructs a net from fully-formed construction input: places and
// transitions with dense 0-based indices matching their slice position,
// arcs retained only for introspection, the initial marking, the pre/post/
// inc matrices, and the optional inhibition/reset/reader matrices (pass nil
// for any arc kind the net does not use).
//
// NewNet validates shape — it is the last line of defense against a
// malformed factory or hand-built construction input — but performs no
// firing-time work; call Initialize before the first Fire or SetGuard.
func NewNet(
	places []Place,
	transitions []Transition,
	arcs []Arc,
	initialMarking Marking,
	pre, post, inc [][]int,
	reader [][]int,
	inhibition, reset [][]bool,
	opts ...NetOption,
) (*Net, error) {
	np, nt := len(places), len(transitions)

	if err := checkDensePlaceIndices(places); err != nil {
		return nil, err
	}
	if err := checkDenseTransitionIndices(transitions); err != nil {
		return nil, err
	}
	if len(initialMarking) != np {
		return nil, fmt.Errorf("%w: initial marking length %d != |P| %d", ErrPetriNet, len(initialMarking), np)
	}
	for p, v := range initialMarking {
		if v < 0 {
			return nil, fmt.Errorf("%w: negative initial marking at place %d", ErrPetriNet, p)
		}
	}

	preM, postM, incM := intMatrix(pre), intMatrix(post), intMatrix(inc)
	if !preM.dimsMatch(np, nt) || !postM.dimsMatch(np, nt) || !incM.dimsMatch(np, nt) {
		return nil, fmt.Errorf("%w: pre/post/inc dimensions must be |P|x|T| (%dx%d)", ErrPetriNet, np, nt)
	}
	for p := 0; p < np; p++ {
		for t := 0; t < nt; t++ {
			if preM[p][t] < 0 || postM[p][t] < 0 {
				return nil, fmt.Errorf("%w: pre/post must be nonnegative (place %d, transition %d)", ErrPetriNet, p, t)
			}
			if incM[p][t] != postM[p][t]-preM[p][t] {
				return nil, fmt.Errorf("%w: inc[%d][%d] must equal post-pre", ErrPetriNet, p, t)
			}
		}
	}

	readerM := intMatrix(reader)
	if readerM != nil {
		if !readerM.dimsMatch(np, nt) {
			return nil, fmt.Errorf("%w: reader dimensions must be |P|x|T| (%dx%d)", ErrPetriNet, np, nt)
		}
		for p := 0; p < np; p++ {
			for t := 0; t < nt; t++ {
				if readerM[p][t] < 0 {
					return nil, fmt.Errorf("%w: reader must be nonnegative (place %d, transition %d)", ErrPetriNet, p, t)
				}
			}
		}
	}

	inhibitionM := boolMatrix(inhibition)
	if inhibitionM != nil && !inhibitionM.dimsMatch(np, nt) {
		return nil, fmt.Errorf("%w: inhibition dimensions must be |P|x|T| (%dx%d)", ErrPetriNet, np, nt)
	}
	resetM := boolMatrix(reset)
	if resetM != nil && !resetM.dimsMatch(np, nt) {
		return nil, fmt.Errorf("%w: reset dimensions must be |P|x|T| (%dx%d)", ErrPetriNet, np, nt)
	}

	n := &Net{
		places:         append([]Place(nil), places...),
		transitions:    append([]Transition(nil), transitions...),
		arcs:           append([]Arc(nil), arcs...),
		pre:            preM,
		post:           postM,
		inc:            incM,
		reader:         readerM,
		inhibition:     inhibitionM,
		reset:          resetM,
		hasInhibition:  boolMatrixHasAny(inhibitionM),
		hasReset:       boolMatrixHasAny(resetM),
		hasReader:      intMatrixHasAny(readerM),
		marking:        initialMarking.clone(),
		initialMarking: initialMarking.clone(),
		guards:         make(map[string]bool),
		strategy:       DefaultStrategy(),
		log:            zerolog.Nop(),
	}

	for i := range n.places {
		n.places[i].tokens = n.marking[i]
	}

	for _, tr := range n.transitions {
		if tr.Guard != nil {
			if _, ok := n.guards[tr.Guard.Name]; !ok {
				n.guards[tr.Guard.Name] = false
			}
		}
	}

	for _, opt := range opts {
		opt(n)
	}

	return n, nil
}

func checkDensePlaceIndices(places []Place) error {
	for i, p := range places {
		if p.Index != i {
			return fmt.Errorf("%w: place %q has index %d, want %d (places must be dense and sorted by index)", ErrPetriNet, p.Name, p.Index, i)
		}
	}
	return nil
}

func checkDenseTransitionIndices(transitions []Transition) error {
	for i, t := range transitions {
		if t.Index != i {
			return fmt.Errorf("%w: transition %q has index %d, want %d (transitions must be dense and sorted by index)", ErrPetriNet, t.Name, t.Index, i)
		}
	}
	return nil
}

// Initialize computes the initial enabled cache and latches the
// initialized flag. Fire and SetGuard fail with ErrNotInitialized before
// this is called. Safe to call more than once — it simply re-derives the
// cache from whatever state currently holds.
func (n *Net) Initialize() {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.enabled = n.strategy.ComputeEnabled(n)
	n.initialized = true
}

// IsInitialized reports whether Initialize has been called.
func (n *Net) IsInitialized() bool {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.initialized
}

// HasInhibitionArcs reports whether the net has at least one inhibitor arc.
func (n *Net) HasInhibitionArcs() bool { return n.hasInhibition }

// HasResetArcs reports whether the net has at least one reset arc.
func (n *Net) HasResetArcs() bool { return n.hasReset }

// HasReaderArcs reports whether the net has at least one reader arc.
func (n *Net) HasReaderArcs() bool { return n.hasReader }

// GetGuardsAmount returns the number of distinct guard names registered.
func (n *Net) GetGuardsAmount() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return len(n.guards)
}
