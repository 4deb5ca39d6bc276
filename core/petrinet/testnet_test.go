package petrinet

// buildNet is a small test helper assembling a net from inline matrices so
// individual test cases stay readable as tables of places/transitions
// instead of repeating NewNet boilerplate.
type netSpec struct {
	places      []string
	transitions []string
	marking     []int
	pre         [][]int
	post        [][]int
	reader      [][]int
	inhibition  [][]bool
	reset       [][]bool
	guards      map[int]GuardRef
	opts        []NetOption
}

func buildNet(spec netSpec) (*Net, error) {
	places := make([]Place, len(spec.places))
	for i, name := range spec.places {
		places[i] = NewPlace(name, i)
	}

	transitions := make([]Transition, len(spec.transitions))
	for i, name := range spec.transitions {
		tr := NewTransition(name, i, Label{Automatic: true})
		if g, ok := spec.guards[i]; ok {
			tr = tr.WithGuardRef(g.Name, g.Value)
		}
		transitions[i] = tr
	}

	np, nt := len(places), len(transitions)
	inc := newIntMatrix(np, nt)
	for p := 0; p < np; p++ {
		for t := 0; t < nt; t++ {
			inc[p][t] = spec.post[p][t] - spec.pre[p][t]
		}
	}

	var arcs []Arc
	for p := 0; p < np; p++ {
		for t := 0; t < nt; t++ {
			if spec.pre[p][t] != 0 {
				arcs = append(arcs, Arc{PlaceIndex: p, TransitionIndex: t, Direction: ArcIn, Kind: ArcNormal, Weight: spec.pre[p][t]})
			}
			if spec.post[p][t] != 0 {
				arcs = append(arcs, Arc{PlaceIndex: p, TransitionIndex: t, Direction: ArcOut, Kind: ArcNormal, Weight: spec.post[p][t]})
			}
		}
	}

	return NewNet(places, transitions, arcs, Marking(spec.marking), spec.pre, spec.post, inc, spec.reader, spec.inhibition, spec.reset, spec.opts...)
}
