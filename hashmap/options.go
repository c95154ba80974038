package hashmap

import (
	"fmt"

	"github.com/xyproto/env/v2"

	"github.com/sharedcode/dstruct"
)

const (
	// DefaultBucketCount is the initial number of buckets.
	DefaultBucketCount = 7
	// DefaultLoadFactor is the size/capacity ratio above which the map doubles its buckets.
	DefaultLoadFactor = 0.75
	// MinLoadFactor is the smallest accepted load factor. Below it the bucket count needed to honor
	// the ratio outgrows any realistic table.
	MinLoadFactor = 0.01
)

// Options holds the construction parameters of a HashMap.
type Options struct {
	// BucketCount is the initial capacity (number of buckets).
	BucketCount int `json:"bucket_count"`
	// LoadFactor is the size/capacity threshold checked after each insert.
	LoadFactor float64 `json:"load_factor"`
}

// DefaultOptions returns 7 buckets with a 0.75 load factor.
func DefaultOptions() Options {
	return Options{
		BucketCount: DefaultBucketCount,
		LoadFactor:  DefaultLoadFactor,
	}
}

// OptionsFromEnv reads DSTRUCT_BUCKET_COUNT and DSTRUCT_LOAD_FACTOR, falling back to the defaults
// for unset or unparsable values. The environment is reloaded on every call.
func OptionsFromEnv() Options {
	env.Load()
	return Options{
		BucketCount: env.Int("DSTRUCT_BUCKET_COUNT", DefaultBucketCount),
		LoadFactor:  env.Float64("DSTRUCT_LOAD_FACTOR", DefaultLoadFactor),
	}
}

// Validate checks that the bucket count is positive and the load factor is at least MinLoadFactor.
func (o Options) Validate() error {
	if o.BucketCount <= 0 {
		return dstruct.NewError(dstruct.InvalidArgument, dstruct.ErrInvalidArgument, fmt.Sprintf("bucket count %d", o.BucketCount))
	}
	if !(o.LoadFactor >= MinLoadFactor) {
		return dstruct.NewError(dstruct.InvalidArgument, dstruct.ErrInvalidArgument, fmt.Sprintf("load factor %v", o.LoadFactor))
	}
	return nil
}
