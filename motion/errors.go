package motion

import "github.com/pkg/errors"

var (
	// ErrInvalidLimits is returned when any limit is zero or negative. No
	// partial trajectory is produced.
	ErrInvalidLimits = errors.New("limits must be positive")

	// ErrUnreachableTarget is returned when no phase durations exist that
	// reach the requested state under the given limits. The caller decides
	// whether to relax limits or reject the move.
	ErrUnreachableTarget = errors.New("target not reachable under limits")
)
