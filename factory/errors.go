package factory

import "errors"

// Sentinel error kinds, matched with errors.Is; call sites wrap with extra
// context via fmt.Errorf("...: %w", ...).
var (
	// ErrDecode covers YAML syntax errors and unreadable files.
	ErrDecode = errors.New("factory: failed to decode document")

	// ErrInvalidDocument covers a syntactically valid document whose
	// contents don't describe a consistent net — duplicate IDs, dangling
	// references, and the like.
	ErrInvalidDocument = errors.New("factory: invalid workflow document")
)
