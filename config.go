package chash

import (
	"errors"
	"fmt"

	"github.com/hashicorp/go-multierror"
)

var (
	// ErrNoHashFunc is reported when a table is configured without a hash function.
	ErrNoHashFunc = errors.New("chash: hash function is required")

	// ErrBucketCount is reported when the bucket count is not positive.
	ErrBucketCount = errors.New("chash: bucket count must be positive")

	// ErrEntriesExhausted is the fatal condition raised when a Put needs a new
	// entry and none can be allocated.
	ErrEntriesExhausted = errors.New("chash: entries exhausted")
)

// Config holds the construction parameters of a Table. Buckets and Hash are
// fixed for the table's lifetime.
type Config struct {
	// Hash selects the chain for a key.
	Hash HashFunc

	// Buckets is the number of chains.
	Buckets int

	// MaxEntries caps the number of live entries. Zero means the largest
	// count an entry link can address.
	MaxEntries uint32
}

// Validate reports every invalid field of c.
func (c Config) Validate() error {
	var result *multierror.Error
	if c.Hash == nil {
		result = multierror.Append(result, ErrNoHashFunc)
	}
	if c.Buckets < 1 {
		result = multierror.Append(result, fmt.Errorf("%w: got %d", ErrBucketCount, c.Buckets))
	}
	return result.ErrorOrNil()
}

func (c Config) maxEntries() uint32 {
	if c.MaxEntries == 0 || c.MaxEntries > maxLinks {
		return maxLinks
	}
	return c.MaxEntries
}
