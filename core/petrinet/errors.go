package petrinet

import "errors"

// Sentinel error kinds. Callers match with errors.Is; wrapped context is
// added with fmt.Errorf("...: %w", ...) at the call site, same as the
// ErrNotReady convention this package grew out of.
var (
	// ErrInvalidArgument covers out-of-range transition indices and empty
	// or unknown lookup names — programmer error rather than a runtime
	// outcome. Construction-time shape problems use ErrPetriNet.
	ErrInvalidArgument = errors.New("petrinet: invalid argument")

	// ErrNotInitialized is returned by Fire and SetGuard when called
	// before Initialize.
	ErrNotInitialized = errors.New("petrinet: net not initialized")

	// ErrMissingGuard is returned by ReadGuard for an unregistered name.
	ErrMissingGuard = errors.New("petrinet: unknown guard")

	// ErrPetriNet is the catch-all for internal inconsistencies detected
	// at construction time (matrix dimension mismatches, inc not equal
	// to post-pre, and so on).
	ErrPetriNet = errors.New("petrinet: invalid net definition")
)
