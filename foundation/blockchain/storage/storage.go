// Package storage defines the block records the explorer tooling consumes
// and the behavior required to read them from a record source.
package storage

import "errors"

// ErrNotFound is returned when no record exists for a height.
var ErrNotFound = errors.New("block record not found")

// Reader interface represents the behavior required to be implemented by any
// package providing access to block records.
type Reader interface {
	GetBlock(height uint64) (Block, error)
	GetBlockByHash(hash string) (Block, error)
	ForEach() Iterator
	Close() error
}

// Writer interface represents the behavior required to be implemented by any
// package that accepts new block records.
type Writer interface {
	Write(block Block) error
}

// Iterator interface represents the behavior required to be implemented by any
// package providing support to iterate over the block records.
type Iterator interface {
	Next() (Block, error)
	Done() bool
}
