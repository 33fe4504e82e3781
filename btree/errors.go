package btree

import "errors"

var (
	// ErrInvalidConfig signals an invalid tree configuration.
	ErrInvalidConfig = errors.New("btree: invalid configuration")
	// ErrKeyNotFound signals a lookup or removal of a key not present in the tree.
	ErrKeyNotFound = errors.New("btree: key not found")
	// ErrDuplicateKey signals an insertion of a key already present in the tree.
	// The tree's content is left unchanged.
	ErrDuplicateKey = errors.New("btree: duplicate key")
	// ErrInvariant signals a violated structural invariant, reported by Check.
	ErrInvariant = errors.New("btree: invariant violated")
)
