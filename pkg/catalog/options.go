package catalog

import (
	"github.com/San4eeez/Cruzak/pkg/consts"
	"github.com/pkg/errors"
)

type (
	// InvalidDatePolicy decides what happens when a product's date cell can't be
	// parsed.
	InvalidDatePolicy string

	// NumericOnlyPolicy decides whether attributes without a text value are
	// persisted.
	NumericOnlyPolicy string

	// Options configures how rows are turned into products and attributes.
	Options struct {
		// AffirmativeToken is the exact flag cell text that marks a product as
		// domestic. Defaults to consts.AffirmativeToken.
		AffirmativeToken string

		// InvalidDate defaults to InvalidDateNull.
		InvalidDate InvalidDatePolicy
	}
)

const (
	// InvalidDateNull records the date as NULL and keeps going.
	InvalidDateNull InvalidDatePolicy = "null"

	// InvalidDateFail aborts the import with ErrInvalidDate.
	InvalidDateFail InvalidDatePolicy = "fail"

	// NumericOnlyDrop persists no row for an attribute without text values.
	NumericOnlyDrop NumericOnlyPolicy = "drop"

	// NumericOnlyEmit persists one row with a NULL text value instead.
	NumericOnlyEmit NumericOnlyPolicy = "emit"
)

// ErrInvalidDate is returned for an unparseable date cell under InvalidDateFail.
var ErrInvalidDate = errors.New("invalid update date")

// DefaultOptions returns the default options.
func DefaultOptions() Options {
	return Options{
		AffirmativeToken: consts.AffirmativeToken,
		InvalidDate:      InvalidDateNull,
	}
}

func (o Options) withDefaults() Options {
	if o.AffirmativeToken == "" {
		o.AffirmativeToken = consts.AffirmativeToken
	}
	if o.InvalidDate == "" {
		o.InvalidDate = InvalidDateNull
	}
	return o
}

// ParseInvalidDatePolicy validates a policy name. An empty name selects the
// default.
func ParseInvalidDatePolicy(s string) (InvalidDatePolicy, error) {
	switch InvalidDatePolicy(s) {
	case "", InvalidDateNull:
		return InvalidDateNull, nil
	case InvalidDateFail:
		return InvalidDateFail, nil
	default:
		return "", errors.Errorf("unknown invalid date policy: %s (expected null or fail)", s)
	}
}

// ParseNumericOnlyPolicy validates a policy name. An empty name selects the
// default.
func ParseNumericOnlyPolicy(s string) (NumericOnlyPolicy, error) {
	switch NumericOnlyPolicy(s) {
	case "", NumericOnlyDrop:
		return NumericOnlyDrop, nil
	case NumericOnlyEmit:
		return NumericOnlyEmit, nil
	default:
		return "", errors.Errorf("unknown numeric-only policy: %s (expected drop or emit)", s)
	}
}
