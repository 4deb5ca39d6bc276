package factory

import (
	"fmt"

	"github.com/arcflow/petricore/core/petrinet"
)

// Compile lowers a validated Workflow into a petrinet.Net. Resources and
// channels become places; tasks become transitions with normal arcs from
// Inputs/Outputs/Requires and extension arcs from Inhibits/Resets/Reads;
// gateways become an additional signal place per awaited task plus a
// barrier place and transition.
//
// Every task referenced by a gateway's wait_for automatically gains an
// output arc to a "<task>_done" signal place — the teacher DSL this package
// is adapted from described that wiring but never actually emitted the
// arc, leaving barriers permanently starved. This closes that gap instead
// of reproducing it.
func Compile(wf *Workflow, opts ...petrinet.NetOption) (*petrinet.Net, error) {
	if err := Validate(wf); err != nil {
		return nil, err
	}

	c := &compiler{
		placeIndex:      make(map[string]int),
		transitionIndex: make(map[string]int),
	}

	for _, r := range wf.Resources {
		c.addPlace(r.ID, r.Capacity)
	}
	for _, ch := range wf.Channels {
		c.addPlace(ch.ID, ch.Capacity)
	}

	signalPlaceFor := make(map[string]string) // task ID -> signal place ID
	for _, g := range wf.Gateways {
		for _, waitID := range g.WaitFor {
			if _, ok := signalPlaceFor[waitID]; ok {
				continue
			}
			signalID := waitID + "_done"
			c.addPlace(signalID, 0)
			signalPlaceFor[waitID] = signalID
		}
	}

	for _, t := range wf.Tasks {
		c.addTransition(t.ID)
	}
	for _, g := range wf.Gateways {
		c.addTransition(g.ID)
		c.addPlace(g.ID+"_complete", 0)
	}

	np, nt := len(c.places), len(c.transitions)
	pre := zeroIntMatrix(np, nt)
	post := zeroIntMatrix(np, nt)
	reader := zeroIntMatrix(np, nt)
	inhibition := zeroBoolMatrix(np, nt)
	reset := zeroBoolMatrix(np, nt)
	var arcs []petrinet.Arc

	addArc := func(placeID string, ti int, dir petrinet.ArcDirection, kind petrinet.ArcKind, weight int) error {
		pi, ok := c.placeIndex[placeID]
		if !ok {
			return fmt.Errorf("%w: unknown place %q", ErrInvalidDocument, placeID)
		}
		switch kind {
		case petrinet.ArcNormal:
			if dir == petrinet.ArcIn {
				pre[pi][ti] += weight
			} else {
				post[pi][ti] += weight
			}
		case petrinet.ArcInhibitor:
			inhibition[pi][ti] = true
		case petrinet.ArcReset:
			reset[pi][ti] = true
			pre[pi][ti] += weight
		case petrinet.ArcReader:
			reader[pi][ti] += weight
		}
		arcs = append(arcs, petrinet.Arc{PlaceIndex: pi, TransitionIndex: ti, Direction: dir, Kind: kind, Weight: weight})
		return nil
	}

	for _, t := range wf.Tasks {
		ti := c.transitionIndex[t.ID]

		for _, in := range t.Inputs {
			if err := addArc(in, ti, petrinet.ArcIn, petrinet.ArcNormal, 1); err != nil {
				return nil, err
			}
		}
		for _, out := range t.Outputs {
			if err := addArc(out, ti, petrinet.ArcOut, petrinet.ArcNormal, 1); err != nil {
				return nil, err
			}
		}
		for resID, amount := range t.Requires {
			if err := addArc(resID, ti, petrinet.ArcIn, petrinet.ArcNormal, amount); err != nil {
				return nil, err
			}
			if err := addArc(resID, ti, petrinet.ArcOut, petrinet.ArcNormal, amount); err != nil {
				return nil, err
			}
		}
		for _, ph := range t.Inhibits {
			if err := addArc(ph, ti, petrinet.ArcIn, petrinet.ArcInhibitor, 0); err != nil {
				return nil, err
			}
		}
		for _, ph := range t.Resets {
			if err := addArc(ph, ti, petrinet.ArcIn, petrinet.ArcReset, 1); err != nil {
				return nil, err
			}
		}
		for _, ph := range t.Reads {
			if err := addArc(ph, ti, petrinet.ArcIn, petrinet.ArcReader, 1); err != nil {
				return nil, err
			}
		}
		if signalID, ok := signalPlaceFor[t.ID]; ok {
			if err := addArc(signalID, ti, petrinet.ArcOut, petrinet.ArcNormal, 1); err != nil {
				return nil, err
			}
		}
		if t.Guard != nil {
			c.guards = append(c.guards, taskGuard{index: ti, name: t.Guard.Name, value: t.Guard.Value})
		}
		c.labels = append(c.labels, taskLabel{index: ti, automatic: t.Automatic, informed: t.Informed})
	}

	for _, g := range wf.Gateways {
		ti := c.transitionIndex[g.ID]
		for _, waitID := range g.WaitFor {
			if err := addArc(signalPlaceFor[waitID], ti, petrinet.ArcIn, petrinet.ArcNormal, 1); err != nil {
				return nil, err
			}
		}
		if err := addArc(g.ID+"_complete", ti, petrinet.ArcOut, petrinet.ArcNormal, 1); err != nil {
			return nil, err
		}
	}

	places := make([]petrinet.Place, np)
	for id, idx := range c.placeIndex {
		places[idx] = petrinet.NewPlace(id, idx)
	}

	transitions := make([]petrinet.Transition, nt)
	for id, idx := range c.transitionIndex {
		transitions[idx] = petrinet.NewTransition(id, idx, petrinet.Label{})
	}
	for _, l := range c.labels {
		transitions[l.index] = petrinet.NewTransition(transitions[l.index].Name, l.index, petrinet.Label{Automatic: l.automatic, Informed: l.informed})
	}
	for _, g := range c.guards {
		transitions[g.index] = transitions[g.index].WithGuardRef(g.name, g.value)
	}

	initialMarking := make(petrinet.Marking, np)
	for id, idx := range c.placeIndex {
		if capacity, ok := c.capacity[id]; ok && capacity > 0 {
			initialMarking[idx] = capacity
		}
	}

	guardOpts := make([]petrinet.NetOption, 0, len(wf.Guards)+len(opts))
	for _, gd := range wf.Guards {
		guardOpts = append(guardOpts, petrinet.WithGuardDefault(gd.Name, gd.Default))
	}
	guardOpts = append(guardOpts, opts...)

	return petrinet.NewNet(places, transitions, arcs, initialMarking, pre, post, inc(pre, post), reader, inhibition, reset, guardOpts...)
}

func zeroIntMatrix(places, transitions int) [][]int {
	m := make([][]int, places)
	for p := range m {
		m[p] = make([]int, transitions)
	}
	return m
}

func zeroBoolMatrix(places, transitions int) [][]bool {
	m := make([][]bool, places)
	for p := range m {
		m[p] = make([]bool, transitions)
	}
	return m
}

func inc(pre, post [][]int) [][]int {
	out := make([][]int, len(pre))
	for p := range pre {
		out[p] = make([]int, len(pre[p]))
		for t := range pre[p] {
			out[p][t] = post[p][t] - pre[p][t]
		}
	}
	return out
}

type taskGuard struct {
	index int
	name  string
	value bool
}

type taskLabel struct {
	index     int
	automatic bool
	informed  bool
}

type compiler struct {
	placeIndex      map[string]int
	transitionIndex map[string]int
	places          []string
	transitions     []string
	capacity        map[string]int
	guards          []taskGuard
	labels          []taskLabel
}

func (c *compiler) addPlace(id string, capacity int) {
	if _, exists := c.placeIndex[id]; exists {
		return
	}
	c.placeIndex[id] = len(c.places)
	c.places = append(c.places, id)
	if c.capacity == nil {
		c.capacity = make(map[string]int)
	}
	c.capacity[id] = capacity
}

func (c *compiler) addTransition(id string) {
	if _, exists := c.transitionIndex[id]; exists {
		return
	}
	c.transitionIndex[id] = len(c.transitions)
	c.transitions = append(c.transitions, id)
}
