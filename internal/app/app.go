// Package app holds the domain services and the rules they share.
package app

import "errors"

// ErrForbidden signals an ownership check failed: the caller is
// authenticated but is not allowed to touch the resource.
var ErrForbidden = errors.New("forbidden")

// ErrSelfFollow rejects a user following themselves.
var ErrSelfFollow = errors.New("cannot follow yourself")

// ErrInvalidRating rejects ratings outside [0.5, 5.0] or off the 0.5 grid.
var ErrInvalidRating = errors.New("rating must be between 0.5 and 5.0 in steps of 0.5")
