package petrinet

// Place is an immutable node descriptor: a stable name and index. The token
// count is a snapshot copied out of the net's marking vector by Net's
// accessors; Place itself holds no lock and is never mutated concurrently —
// the net's single mutex is what actually serializes marking changes.
type Place struct {
	Name   string
	Index  int
	tokens int
}

// NewPlace creates a place descriptor. index must match the place's position
// in the net's place slice; callers building nets by hand (rather than
// through the factory package) are responsible for dense, sorted indices.
func NewPlace(name string, index int) Place {
	return Place{Name: name, Index: index}
}

// TokenCount returns the token count as of when this Place value was read.
func (p Place) TokenCount() int {
	return p.tokens
}
