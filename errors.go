package geogo

import (
	"fmt"
)

// ErrInvalidMaxEntries indicates a node capacity below MinMaxEntries.
type ErrInvalidMaxEntries struct {
	MaxEntries int
}

func (e *ErrInvalidMaxEntries) Error() string {
	return fmt.Sprintf("invalid max entries: %d (minimum is %d)", e.MaxEntries, MinMaxEntries)
}
