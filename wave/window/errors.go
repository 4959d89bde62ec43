package window

import "errors"

var (
	ErrWidth = errors.New("window width must be a positive odd sample count")
	ErrTaper = errors.New("window taper must be in [0,1]")
)
