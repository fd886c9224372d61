package dict

import (
	"github.com/graph-guard/chaindict/pkg/config"
	"github.com/graph-guard/chaindict/pkg/hasher"
)

// NewFromConfig creates an empty dict from c.
// Returns an error if c names a hasher that doesn't support K.
func NewFromConfig[K comparable, V any](c *config.Config) (*Dict[K, V], error) {
	h, err := hasher.ByName[K](c.Hasher, c.Seed)
	if err != nil {
		return nil, err
	}
	return New[K, V](c.InitialCapacity, c.LoadFactor, h), nil
}
