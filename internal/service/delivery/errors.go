package delivery

import (
	"fmt"

	"shegamart/internal/apperr"
)

// Lifecycle conflicts. Each wraps apperr.ErrConflict.
var (
	ErrUnavailable    = fmt.Errorf("delivery unavailable: %w", apperr.ErrConflict)
	ErrCannotStart    = fmt.Errorf("cannot start: %w", apperr.ErrConflict)
	ErrCannotComplete = fmt.Errorf("cannot complete: %w", apperr.ErrConflict)
	ErrCannotCancel   = fmt.Errorf("cannot cancel: %w", apperr.ErrConflict)
)
