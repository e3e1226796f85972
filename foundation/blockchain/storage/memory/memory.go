// Package memory implements the ability to read and write block records to
// memory using a slice.
package memory

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/ardanlabs/explorer/foundation/blockchain/storage"
)

// Memory represents the implementation for reading and storing block
// records in memory using a slice. This implements the storage.Reader
// and storage.Writer interfaces.
type Memory struct {
	mu     sync.RWMutex
	blocks []storage.Block
	hashes map[string]uint64 // Lower case hash to height.
}

// New constructs a Memory value for use.
func New() *Memory {
	return &Memory{
		hashes: make(map[string]uint64),
	}
}

// Close in this implementation has nothing to do since everything
// is in memory.
func (m *Memory) Close() error {
	return nil
}

// Write takes the specified block record and stores it in memory. Records
// must be written in height order starting at 0.
func (m *Memory) Write(block storage.Block) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if uint64(len(m.blocks)) != block.Height {
		return fmt.Errorf("block is out of order, got height %d, exp %d", block.Height, len(m.blocks))
	}

	m.blocks = append(m.blocks, block)
	if _, exists := m.hashes[strings.ToLower(block.Hash)]; !exists {
		m.hashes[strings.ToLower(block.Hash)] = block.Height
	}

	return nil
}

// GetBlock returns the block record for the specified height.
func (m *Memory) GetBlock(height uint64) (storage.Block, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if height >= uint64(len(m.blocks)) {
		return storage.Block{}, fmt.Errorf("height %d: %w", height, storage.ErrNotFound)
	}

	return m.blocks[height], nil
}

// GetBlockByHash returns the lowest block record with the specified hash.
// Hashes are compared without regard to case.
func (m *Memory) GetBlockByHash(hash string) (storage.Block, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	height, exists := m.hashes[strings.ToLower(hash)]
	if !exists {
		return storage.Block{}, fmt.Errorf("hash %s: %w", hash, storage.ErrNotFound)
	}

	return m.blocks[height], nil
}

// ForEach returns an iterator to walk through all the block records
// starting with height 0.
func (m *Memory) ForEach() storage.Iterator {
	return &memoryIterator{storage: m}
}

// =============================================================================

// memoryIterator represents the iteration implementation for walking
// through the block records in memory.
type memoryIterator struct {
	storage *Memory // Access to the storage API.
	current uint64  // Current height being iterated over.
	eoc     bool    // Represents the iterator is at the end of the chain.
}

// Next retrieves the next block record.
func (mi *memoryIterator) Next() (storage.Block, error) {
	if mi.eoc {
		return storage.Block{}, errors.New("end of chain")
	}

	block, err := mi.storage.GetBlock(mi.current)
	if err != nil {
		mi.eoc = true
	}

	mi.current++

	return block, err
}

// Done returns the end of chain value.
func (mi *memoryIterator) Done() bool {
	return mi.eoc
}
