// Package block provides the business logic for turning block records into
// the difficulty and reward values the explorer displays.
package block

import (
	"context"
	"fmt"

	"github.com/ardanlabs/explorer/business/sys/validate"
	"github.com/ardanlabs/explorer/foundation/blockchain/consensus"
	"github.com/ardanlabs/explorer/foundation/blockchain/storage"
	gmath "github.com/ethereum/go-ethereum/common/math"
	"go.uber.org/zap"
)

// Summary represents the computed values for a single block.
type Summary struct {
	Height          uint64             `json:"height"`
	Hash            string             `json:"hash"`
	BitDifficulty   uint64             `json:"bit_difficulty"`
	ProofDifficulty *uint64            `json:"proof_difficulty,omitempty"` // Nil for records without edge bits.
	Schedule        consensus.Schedule `json:"schedule"`
	BaseReward      consensus.Amount   `json:"base_reward"`
	Fees            consensus.Amount   `json:"fees"`
	Reward          float64            `json:"reward"` // (base_reward + fees) in coins.
	Counts          Counts             `json:"counts"`
}

// Counts represents the size of each collection a block record carries.
type Counts struct {
	Inputs       int `json:"inputs"`
	Outputs      int `json:"outputs"`
	SpentOutputs int `json:"spent_outputs"`
	Kernels      int `json:"kernels"`
	TokenInputs  int `json:"token_inputs"`
	TokenOutputs int `json:"token_outputs"`
	TokenKernels int `json:"token_kernels"`
}

// Totals represents the aggregate of a run over many blocks.
type Totals struct {
	Blocks     uint64           `json:"blocks"`
	BaseReward consensus.Amount `json:"base_reward"`
	Fees       consensus.Amount `json:"fees"`
}

// =============================================================================

// Core manages the set of APIs for block summaries.
type Core struct {
	log    *zap.SugaredLogger
	policy consensus.Policy
}

// NewCore constructs a core for block summary api access.
func NewCore(log *zap.SugaredLogger, policy consensus.Policy) (*Core, error) {
	if err := policy.Validate(); err != nil {
		return nil, fmt.Errorf("reward policy: %w", err)
	}

	core := Core{
		log:    log,
		policy: policy,
	}

	return &core, nil
}

// Summarize validates the record and computes its difficulty and reward.
func (c *Core) Summarize(rec storage.Block) (Summary, error) {
	if err := validate.Check(rec); err != nil {
		return Summary{}, fmt.Errorf("validating height %d: %w", rec.Height, err)
	}

	if rec.Bits == 0 && rec.EdgeBits == 0 {
		return Summary{}, fmt.Errorf("height %d carries neither bits nor edge bits", rec.Height)
	}

	var bitDiff uint64
	if rec.Bits != 0 {
		var err error
		bitDiff, err = consensus.BitDifficulty(rec.Bits)
		if err != nil {
			return Summary{}, fmt.Errorf("bit difficulty for height %d: %w", rec.Height, err)
		}
	}

	// Records written before the proof-of-work migration are valued from
	// their proof. Those records may predate the pow_hash field, in which
	// case the block hash is the proof hash.
	var proofDiff *uint64
	if rec.EdgeBits != 0 {
		hash := rec.PowHash
		if hash == "" {
			hash = rec.Hash
		}

		sample := consensus.ProofOfWorkSample{
			Hash:             hash,
			EdgeBits:         rec.EdgeBits,
			SecondaryScaling: rec.SecondaryScaling,
		}

		diff, err := sample.Difficulty()
		if err != nil {
			return Summary{}, fmt.Errorf("proof difficulty for height %d: %w", rec.Height, err)
		}
		proofDiff = &diff
	}

	schedule := c.policy.Schedule(rec.Height)
	base, err := consensus.BaseReward(schedule, rec.Height)
	if err != nil {
		return Summary{}, fmt.Errorf("base reward for height %d: %w", rec.Height, err)
	}

	fees, err := consensus.Fees(rec.KernelFees())
	if err != nil {
		return Summary{}, fmt.Errorf("fees for height %d: %w", rec.Height, err)
	}

	reward, err := consensus.TotalReward(base, fees)
	if err != nil {
		return Summary{}, fmt.Errorf("reward for height %d: %w", rec.Height, err)
	}

	sum := Summary{
		Height:          rec.Height,
		Hash:            rec.Hash,
		BitDifficulty:   bitDiff,
		ProofDifficulty: proofDiff,
		Schedule:        schedule,
		BaseReward:      base,
		Fees:            fees,
		Reward:          reward,
		Counts: Counts{
			Inputs:       len(rec.Inputs),
			Outputs:      len(rec.Outputs),
			SpentOutputs: rec.SpentOutputs(),
			Kernels:      len(rec.Kernels),
			TokenInputs:  len(rec.TokenInputs),
			TokenOutputs: len(rec.TokenOutputs),
			TokenKernels: len(rec.TokenKernels),
		},
	}

	return sum, nil
}

// SummarizeAll walks every record the reader provides, calling fn with the
// summary of each. The context is checked between records. A total that
// would overflow 64 bits stops the walk with an InvalidParameterError.
func (c *Core) SummarizeAll(ctx context.Context, reader storage.Reader, fn func(Summary) error) (Totals, error) {
	var totals Totals

	iter := reader.ForEach()
	for rec, err := iter.Next(); !iter.Done(); rec, err = iter.Next() {
		if err != nil {
			return totals, err
		}

		if err := ctx.Err(); err != nil {
			return totals, err
		}

		sum, err := c.Summarize(rec)
		if err != nil {
			return totals, err
		}

		base, overflow := gmath.SafeAdd(uint64(totals.BaseReward), uint64(sum.BaseReward))
		if overflow {
			return totals, fmt.Errorf("totaling height %d: %w", sum.Height, &consensus.InvalidParameterError{Param: "base_reward", Value: sum.BaseReward, Reason: "base reward total overflows 64 bits"})
		}

		fees, overflow := gmath.SafeAdd(uint64(totals.Fees), uint64(sum.Fees))
		if overflow {
			return totals, fmt.Errorf("totaling height %d: %w", sum.Height, &consensus.InvalidParameterError{Param: "fees", Value: sum.Fees, Reason: "fee total overflows 64 bits"})
		}

		if err := fn(sum); err != nil {
			return totals, fmt.Errorf("handling height %d: %w", sum.Height, err)
		}

		totals.Blocks++
		totals.BaseReward = consensus.Amount(base)
		totals.Fees = consensus.Amount(fees)

		c.log.Debugw("summarize", "height", sum.Height, "schedule", sum.Schedule, "base_reward", sum.BaseReward, "fees", sum.Fees)
	}

	return totals, nil
}

// Block looks up a single record and summarizes it.
func (c *Core) Block(reader storage.Reader, height uint64) (Summary, error) {
	rec, err := reader.GetBlock(height)
	if err != nil {
		return Summary{}, fmt.Errorf("reading height %d: %w", height, err)
	}

	return c.Summarize(rec)
}

// BlockByHash looks up a single record by its hash and summarizes it.
func (c *Core) BlockByHash(reader storage.Reader, hash string) (Summary, error) {
	rec, err := reader.GetBlockByHash(hash)
	if err != nil {
		return Summary{}, fmt.Errorf("reading hash %s: %w", hash, err)
	}

	return c.Summarize(rec)
}
