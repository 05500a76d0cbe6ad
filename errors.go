package shortid

import "github.com/viant/shortid/radix"

// ErrInvalidArgument is returned for timestamps before the offset, malformed
// options and identifiers that cannot be parsed. It is the same value as
// radix.ErrInvalidArgument.
var ErrInvalidArgument = radix.ErrInvalidArgument
