package pair

import "errors"

// ErrDelta reports a non-positive sample interval.
var ErrDelta = errors.New("sample interval must be positive")
