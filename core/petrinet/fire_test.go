package petrinet

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// S1: simple producer/consumer — spec §8.
func TestFire_ProducerConsumer(t *testing.T) {
	n, err := buildNet(netSpec{
		places:      []string{"buffer"},
		transitions: []string{"produce", "consume"},
		marking:     []int{0},
		pre:         [][]int{{0, 1}},
		post:        [][]int{{1, 0}},
	})
	require.NoError(t, err)
	n.Initialize()

	outcome, err := n.Fire(1) // consume: not enabled, buffer empty
	require.NoError(t, err)
	assert.Equal(t, NotEnabled, outcome)

	outcome, err = n.Fire(0) // produce
	require.NoError(t, err)
	assert.Equal(t, Success, outcome)
	assert.Equal(t, Marking{1}, n.GetCurrentMarking())

	outcome, err = n.Fire(1) // consume
	require.NoError(t, err)
	assert.Equal(t, Success, outcome)
	assert.Equal(t, Marking{0}, n.GetCurrentMarking())
}

func TestFire_BeforeInitialize(t *testing.T) {
	n, err := buildNet(netSpec{
		places:      []string{"buffer"},
		transitions: []string{"produce"},
		marking:     []int{0},
		pre:         [][]int{{0}},
		post:        [][]int{{1}},
	})
	require.NoError(t, err)

	_, err = n.Fire(0)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNotInitialized))
}

func TestFire_OutOfRangeIndex(t *testing.T) {
	n, err := buildNet(netSpec{
		places:      []string{"buffer"},
		transitions: []string{"produce"},
		marking:     []int{0},
		pre:         [][]int{{0}},
		post:        [][]int{{1}},
	})
	require.NoError(t, err)
	n.Initialize()

	_, err = n.Fire(5)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidArgument))

	_, err = n.Fire(-1)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidArgument))
}

// S2: reset arc — firing zeroes the source place regardless of inc, and
// requires the place non-empty as a precondition.
func TestFire_ResetArc(t *testing.T) {
	n, err := buildNet(netSpec{
		places:      []string{"queue"},
		transitions: []string{"drain"},
		marking:     []int{7},
		pre:         [][]int{{1}},
		post:        [][]int{{0}},
		reset:       [][]bool{{true}},
	})
	require.NoError(t, err)
	n.Initialize()

	outcome, err := n.Fire(0)
	require.NoError(t, err)
	assert.Equal(t, Success, outcome)
	assert.Equal(t, Marking{0}, n.GetCurrentMarking())

	outcome, err = n.Fire(0) // queue already empty, reset precondition fails
	require.NoError(t, err)
	assert.Equal(t, NotEnabled, outcome)
}

// S3: inhibitor arc — transition disabled while the inhibiting place is
// non-empty, independent of that place's own pre-arc weight.
func TestFire_InhibitorArc(t *testing.T) {
	n, err := buildNet(netSpec{
		places:      []string{"lock", "out"},
		transitions: []string{"t"},
		marking:     []int{1, 0},
		pre:         [][]int{{0}, {0}},
		post:        [][]int{{0}, {1}},
		inhibition:  [][]bool{{true}, {false}},
	})
	require.NoError(t, err)
	n.Initialize()

	assert.False(t, n.IsEnabled(0))

	n.marking[0] = 0
	n.enabled = n.strategy.ComputeEnabled(n)
	assert.True(t, n.IsEnabled(0))

	outcome, err := n.Fire(0)
	require.NoError(t, err)
	assert.Equal(t, Success, outcome)
	assert.Equal(t, 1, n.GetCurrentMarking()[1])
}

// S4: reader arc — requires tokens present without consuming them.
func TestFire_ReaderArc(t *testing.T) {
	n, err := buildNet(netSpec{
		places:      []string{"sentinel", "out"},
		transitions: []string{"t"},
		marking:     []int{0, 0},
		pre:         [][]int{{0}, {0}},
		post:        [][]int{{0}, {1}},
		reader:      [][]int{{1}, {0}},
	})
	require.NoError(t, err)
	n.Initialize()

	outcome, err := n.Fire(0)
	require.NoError(t, err)
	assert.Equal(t, NotEnabled, outcome)

	n.marking[0] = 1
	n.enabled = n.strategy.ComputeEnabled(n)

	outcome, err = n.Fire(0)
	require.NoError(t, err)
	assert.Equal(t, Success, outcome)
	assert.Equal(t, 1, n.GetCurrentMarking()[0], "reader arc must not consume the token")
	assert.Equal(t, 1, n.GetCurrentMarking()[1])
}

// S5: guard — transition enabled only while a named boolean guard matches
// the value the transition depends on.
func TestFire_Guard(t *testing.T) {
	places := []Place{NewPlace("out", 0)}
	transitions := []Transition{NewTransition("t", 0, Label{}).WithGuardRef("ready", true)}
	n, err := NewNet(places, transitions, nil, Marking{0}, [][]int{{0}}, [][]int{{1}}, [][]int{{1}}, nil, nil, nil)
	require.NoError(t, err)
	n.Initialize()

	v, err := n.ReadGuard("ready")
	require.NoError(t, err)
	assert.False(t, v, "guards must default to false")
	assert.False(t, n.IsEnabled(0))

	wasUpdated, err := n.SetGuard("ready", true)
	require.NoError(t, err)
	assert.True(t, wasUpdated, "ready was seeded at construction, so this is a replacement")
	assert.True(t, n.IsEnabled(0))

	outcome, err := n.Fire(0)
	require.NoError(t, err)
	assert.Equal(t, Success, outcome)
}

func TestSetGuard_WasUpdatedReflectsInsertVsReplace(t *testing.T) {
	n, err := buildNet(netSpec{
		places:      []string{"out"},
		transitions: []string{"t"},
		marking:     []int{0},
		pre:         [][]int{{0}},
		post:        [][]int{{1}},
	})
	require.NoError(t, err)
	n.Initialize()

	wasUpdated, err := n.SetGuard("brandNew", true)
	require.NoError(t, err)
	assert.False(t, wasUpdated)

	wasUpdated, err = n.SetGuard("brandNew", false)
	require.NoError(t, err)
	assert.True(t, wasUpdated)
}

func TestReadGuard_MissingName(t *testing.T) {
	n, err := buildNet(netSpec{
		places:      []string{"out"},
		transitions: []string{"t"},
		marking:     []int{0},
		pre:         [][]int{{0}},
		post:        [][]int{{1}},
	})
	require.NoError(t, err)
	n.Initialize()

	_, err = n.ReadGuard("nope")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrMissingGuard))
}
