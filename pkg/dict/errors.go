package dict

import (
	"errors"
	"fmt"
)

var ErrKeyNotFound = errors.New("key not found")

// ErrorKeyNotFound is returned by lookups and removals
// of keys that aren't stored. It matches ErrKeyNotFound.
type ErrorKeyNotFound[K comparable] struct {
	Key K
}

func (e ErrorKeyNotFound[K]) Error() string {
	return fmt.Sprintf("key '%v' not found", e.Key)
}

func (e ErrorKeyNotFound[K]) Is(target error) bool {
	return target == ErrKeyNotFound
}
