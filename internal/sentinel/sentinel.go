package sentinel

import "errors"

// ErrNotFound is the sentinel miss error. Dependencies return it (optionally
// wrapped) so callers can translate it into a domain error exactly once.
var ErrNotFound = errors.New("not found")
