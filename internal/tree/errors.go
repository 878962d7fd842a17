// Package tree implements a forest stored as a flat preorder sequence. Each
// node carries its depth and subtree size instead of parent/child pointers,
// so a subtree is always a contiguous range and every structural operation
// returns a new forest without touching the receiver.
package tree

import "errors"

// Construction errors
var (
	// ErrMalformedShape indicates that a shape descriptor cannot describe a
	// preorder forest over the supplied values.
	ErrMalformedShape = errors.New("malformed forest shape")
)

// Mutation errors
var (
	// ErrInvalidPromotion indicates that a depth promotion would leave the
	// forest without a valid preorder layout.
	ErrInvalidPromotion = errors.New("invalid depth promotion")
)
