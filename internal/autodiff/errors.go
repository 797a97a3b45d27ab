package autodiff

import (
	"errors"
	"fmt"
)

// Handle faults. They are raised as panics wrapping one of these sentinels;
// use errors.Is on the recovered value to tell them apart.
var (
	ErrInvalidValue  = errors.New("autodiff: invalid value handle")
	ErrStaleValue    = errors.New("autodiff: value handle used after graph reset")
	ErrGraphMismatch = errors.New("autodiff: operands belong to different graphs")
)

// fault panics with err wrapped with context about the offending call.
func fault(err error, format string, args ...any) {
	panic(fmt.Errorf("%w: %s", err, fmt.Sprintf(format, args...)))
}
