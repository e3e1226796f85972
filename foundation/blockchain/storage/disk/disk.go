// Package disk implements the ability to read and write block records
// to disk, one JSON file per height.
package disk

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"strconv"
	"strings"

	"github.com/ardanlabs/explorer/foundation/blockchain/storage"
)

// Disk represents the implementation for reading and storing block records
// in their own separate files on disk. This implements the storage.Reader
// and storage.Writer interfaces.
type Disk struct {
	dbPath string
}

// New constructs a Disk value for use.
func New(dbPath string) (*Disk, error) {
	if err := os.MkdirAll(dbPath, 0755); err != nil {
		return nil, err
	}

	return &Disk{dbPath: dbPath}, nil
}

// Open constructs a Disk value over a directory of records that must
// already exist. Read-only tooling uses Open so a mistyped path is an error
// instead of a new, empty directory.
func Open(dbPath string) (*Disk, error) {
	info, err := os.Stat(dbPath)
	if err != nil {
		return nil, err
	}

	if !info.IsDir() {
		return nil, fmt.Errorf("%s is not a directory", dbPath)
	}

	return &Disk{dbPath: dbPath}, nil
}

// Close in this implementation has nothing to do since every record is
// opened and closed as it is read or written.
func (d *Disk) Close() error {
	return nil
}

// Write takes the specified block record and stores it on disk in a file
// labeled with the block height.
func (d *Disk) Write(block storage.Block) error {

	// Marshal the block for writing to disk in a more human readable format.
	data, err := json.MarshalIndent(block, "", "  ")
	if err != nil {
		return err
	}

	// Create a new file for this block and name it based on the height.
	f, err := os.OpenFile(d.getPath(block.Height), os.O_CREATE|os.O_TRUNC|os.O_RDWR, 0600)
	if err != nil {
		return err
	}
	defer f.Close()

	// Write the new block to disk.
	if _, err := f.Write(data); err != nil {
		return err
	}

	return nil
}

// GetBlock locates and returns the block record for the specified height.
func (d *Disk) GetBlock(height uint64) (storage.Block, error) {

	// Open the block file for the specified height.
	f, err := os.OpenFile(d.getPath(height), os.O_RDONLY, 0600)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return storage.Block{}, fmt.Errorf("height %d: %w", height, storage.ErrNotFound)
		}
		return storage.Block{}, err
	}
	defer f.Close()

	// Decode the contents of the block.
	var block storage.Block
	if err := json.NewDecoder(f).Decode(&block); err != nil {
		return storage.Block{}, fmt.Errorf("decoding height %d: %w", height, err)
	}

	// The file name and the record must agree.
	if block.Height != height {
		return storage.Block{}, fmt.Errorf("file for height %d holds height %d", height, block.Height)
	}

	return block, nil
}

// GetBlockByHash walks the records from height 0 and returns the first one
// with the specified hash. Hashes are compared without regard to case.
func (d *Disk) GetBlockByHash(hash string) (storage.Block, error) {
	iter := d.ForEach()
	for block, err := iter.Next(); !iter.Done(); block, err = iter.Next() {
		if err != nil {
			return storage.Block{}, err
		}

		if strings.EqualFold(block.Hash, hash) {
			return block, nil
		}
	}

	return storage.Block{}, fmt.Errorf("hash %s: %w", hash, storage.ErrNotFound)
}

// ForEach returns an iterator to walk through all the block records
// starting with height 0.
func (d *Disk) ForEach() storage.Iterator {
	return &diskIterator{disk: d}
}

// getPath forms the path to the specified block.
func (d *Disk) getPath(height uint64) string {
	name := strconv.FormatUint(height, 10)
	return path.Join(d.dbPath, fmt.Sprintf("%s.json", name))
}

// =============================================================================

// diskIterator represents the iteration implementation for walking
// through and reading block records on disk. Iteration ends at the
// first missing height.
type diskIterator struct {
	disk    *Disk  // Access to the disk storage API.
	current uint64 // Current height being iterated over.
	eoc     bool   // Represents the iterator is at the end of the chain.
}

// Next retrieves the next block record from disk.
func (di *diskIterator) Next() (storage.Block, error) {
	if di.eoc {
		return storage.Block{}, errors.New("end of chain")
	}

	block, err := di.disk.GetBlock(di.current)
	if errors.Is(err, storage.ErrNotFound) {
		di.eoc = true
	}

	di.current++

	return block, err
}

// Done returns the end of chain value.
func (di *diskIterator) Done() bool {
	return di.eoc
}
