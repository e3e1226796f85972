// Package commands contains the functionality for the admin tool commands.
package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/ardanlabs/explorer/business/core/block"
	"github.com/ardanlabs/explorer/foundation/blockchain/consensus"
	"github.com/ardanlabs/explorer/foundation/blockchain/storage"
)

// Summaries writes one JSON line per record in height order.
func Summaries(ctx context.Context, w io.Writer, core *block.Core, reader storage.Reader) error {
	enc := json.NewEncoder(w)

	_, err := core.SummarizeAll(ctx, reader, func(sum block.Summary) error {
		return enc.Encode(sum)
	})

	return err
}

// Totals writes the totals over every record as a single JSON document.
func Totals(ctx context.Context, w io.Writer, core *block.Core, reader storage.Reader) error {
	totals, err := core.SummarizeAll(ctx, reader, func(block.Summary) error { return nil })
	if err != nil {
		return err
	}

	return json.NewEncoder(w).Encode(totals)
}

// Block writes the summary of the record at the specified height or with
// the specified hash. A 64 character argument is read as a hash.
func Block(w io.Writer, core *block.Core, reader storage.Reader, heightOrHash string) error {
	if heightOrHash == "" {
		return fmt.Errorf("height or hash required")
	}

	var sum block.Summary
	switch len(heightOrHash) {
	case consensus.HashLength:
		var err error
		if sum, err = core.BlockByHash(reader, heightOrHash); err != nil {
			return err
		}

	default:
		h, err := strconv.ParseUint(heightOrHash, 10, 64)
		if err != nil {
			return fmt.Errorf("parsing height %q: %w", heightOrHash, err)
		}

		if sum, err = core.Block(reader, h); err != nil {
			return err
		}
	}

	return json.NewEncoder(w).Encode(sum)
}
