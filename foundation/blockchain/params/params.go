// Package params maintains access to the chain parameter file.
package params

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/ardanlabs/explorer/foundation/blockchain/consensus"
)

// Params represents the chain parameter file. A loaded value is never
// modified and is passed to the code that needs it.
type Params struct {
	Name           string             `json:"name"`
	ScheduleBefore consensus.Schedule `json:"schedule_before"` // Reward schedule below the fork height.
	ScheduleAfter  consensus.Schedule `json:"schedule_after"`  // Reward schedule from the fork height on.
	ForkHeight     uint64             `json:"fork_height"`     // Zero means schedule_after covers the whole chain.
}

// Default returns the parameters used when no file is provided. The tiered
// schedule is applied at every height.
func Default() Params {
	return Params{
		Name:           "mainnet",
		ScheduleBefore: consensus.ScheduleTiered,
		ScheduleAfter:  consensus.ScheduleTiered,
	}
}

// =============================================================================

// Load opens and consumes the parameter file. Fields missing from the file
// keep their Default values.
func Load(path string) (Params, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return Params{}, err
	}

	params := Default()
	if err := json.Unmarshal(content, &params); err != nil {
		return Params{}, fmt.Errorf("decoding %s: %w", path, err)
	}

	if err := params.Policy().Validate(); err != nil {
		return Params{}, fmt.Errorf("validating %s: %w", path, err)
	}

	return params, nil
}

// Policy returns the reward policy described by the parameters.
func (p Params) Policy() consensus.Policy {
	return consensus.Policy{
		Before:     p.ScheduleBefore,
		After:      p.ScheduleAfter,
		ForkHeight: p.ForkHeight,
	}
}
