package interfaces

import "errors"

// ErrConflict is wrapped by repositories when a write violates a uniqueness
// constraint (a second client for the same lead, a second invoice for the same
// quote).
var ErrConflict = errors.New("unique constraint violated")
