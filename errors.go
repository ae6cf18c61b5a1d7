package bitnum

import "github.com/zeebo/errs"

var (
	// Error is the class for errors returned by this package.
	Error = errs.Class("bitnum")

	// ErrInvalidArgument is the class for rejected inputs, like a negative
	// value passed to UIntFromInt64. Check with ErrInvalidArgument.Has(err).
	ErrInvalidArgument = errs.Class("bitnum: invalid argument")
)
