package storage

import (
	"time"
)

// Set of output types an indexer writes. TokenIsuue is the spelling older
// indexers used for token issue outputs and is still accepted.
const (
	OutputTransaction      = "Transaction"
	OutputCoinbase         = "Coinbase"
	OutputTokenIssue       = "TokenIssue"
	OutputTokenTransaction = "TokenTransaction"
)

// Input represents a spent output commitment.
type Input struct {
	Data string `json:"data" validate:"required,max=66,hexadecimal"`
}

// Output represents an output commitment created in a block.
type Output struct {
	OutputType  string  `json:"output_type" validate:"required,oneof=Transaction Coinbase TokenIssue TokenIsuue TokenTransaction"`
	TokenType   string  `json:"token_type,omitempty" validate:"omitempty,max=64"`
	Commit      string  `json:"commit" validate:"required,max=66,hexadecimal"`
	Spent       bool    `json:"spent"`
	Proof       string  `json:"proof,omitempty" validate:"omitempty,hexadecimal"`
	ProofHash   string  `json:"proof_hash" validate:"omitempty,len=64,hexadecimal"`
	BlockHeight *uint64 `json:"block_height,omitempty"`
	MerkleProof string  `json:"merkle_proof,omitempty"`
	MMRIndex    *uint64 `json:"mmr_index,omitempty"`
}

// Kernel represents a transaction's fee bearing commitment in a block.
type Kernel struct {
	Features   string `json:"features" validate:"required"`
	Fee        uint64 `json:"fee"`
	LockHeight uint64 `json:"lock_height"`
	Excess     string `json:"excess" validate:"omitempty,max=66,hexadecimal"`
	ExcessSig  string `json:"excess_sig" validate:"omitempty,max=142,hexadecimal"`
}

// TokenInput represents a spent token output commitment.
type TokenInput struct {
	TokenType  string `json:"token_type" validate:"required,max=64"`
	Commitment string `json:"commitment" validate:"required,max=66,hexadecimal"`
}

// TokenOutput represents a token output commitment created in a block. It
// carries the same fields as Output but the token type is mandatory.
type TokenOutput struct {
	OutputType  string  `json:"output_type" validate:"required,oneof=Transaction Coinbase TokenIssue TokenIsuue TokenTransaction"`
	TokenType   string  `json:"token_type" validate:"required,max=64"`
	Commit      string  `json:"commit" validate:"required,max=66,hexadecimal"`
	Spent       bool    `json:"spent"`
	Proof       string  `json:"proof,omitempty" validate:"omitempty,hexadecimal"`
	ProofHash   string  `json:"proof_hash" validate:"omitempty,len=64,hexadecimal"`
	BlockHeight *uint64 `json:"block_height,omitempty"`
	MerkleProof string  `json:"merkle_proof,omitempty"`
	MMRIndex    *uint64 `json:"mmr_index,omitempty"`
}

// TokenKernel represents a token transaction kernel. Token kernels pay no
// fee.
type TokenKernel struct {
	Features   string `json:"features" validate:"required"`
	TokenType  string `json:"token_type" validate:"required,max=64"`
	LockHeight uint64 `json:"lock_height"`
	Excess     string `json:"excess" validate:"omitempty,max=66,hexadecimal"`
	ExcessSig  string `json:"excess_sig" validate:"omitempty,max=142,hexadecimal"`
}

// Block represents a block record as written by the chain indexer. Records
// written before the proof-of-work migration carry EdgeBits and
// SecondaryScaling, later records carry Bits and PowHash instead. The token
// roots and token collections are only present on token enabled chains.
type Block struct {
	Hash              string    `json:"hash" validate:"required,len=64,hexadecimal"`
	Version           uint32    `json:"version"`
	Height            uint64    `json:"height"`
	Previous          string    `json:"previous,omitempty" validate:"omitempty,len=64,hexadecimal"`
	PrevRoot          string    `json:"prev_root,omitempty" validate:"omitempty,len=64,hexadecimal"`
	Timestamp         time.Time `json:"timestamp"`
	OutputRoot        string    `json:"output_root,omitempty" validate:"omitempty,len=64,hexadecimal"`
	OutputMMRSize     uint64    `json:"output_mmr_size,omitempty"`
	RangeProofRoot    string    `json:"range_proof_root,omitempty" validate:"omitempty,len=64,hexadecimal"`
	KernelRoot        string    `json:"kernel_root,omitempty" validate:"omitempty,len=64,hexadecimal"`
	KernelMMRSize     uint64    `json:"kernel_mmr_size,omitempty"`
	TokenOutputRoot   string    `json:"token_output_root,omitempty" validate:"omitempty,len=64,hexadecimal"`
	TokenRangeRoot    string    `json:"token_range_proof_root,omitempty" validate:"omitempty,len=64,hexadecimal"`
	TokenIssueRoot    string    `json:"token_issue_proof_root,omitempty" validate:"omitempty,len=64,hexadecimal"`
	TokenKernelRoot   string    `json:"token_kernel_root,omitempty" validate:"omitempty,len=64,hexadecimal"`
	Bits              uint32    `json:"bits,omitempty"`
	Mask              string    `json:"mask,omitempty" validate:"omitempty,len=64,hexadecimal"`
	BTCHeaderHash     string    `json:"btc_header_hash,omitempty" validate:"omitempty,len=64,hexadecimal"`
	PowHash           string    `json:"pow_hash,omitempty" validate:"omitempty,len=64,hexadecimal"`
	Nonce             string    `json:"nonce,omitempty"`
	EdgeBits          uint      `json:"edge_bits,omitempty" validate:"omitempty,gte=24"`
	SecondaryScaling  uint64    `json:"secondary_scaling,omitempty"`
	CuckooSolution    []uint64  `json:"cuckoo_solution,omitempty"`
	TotalKernelOffset string    `json:"total_kernel_offset,omitempty" validate:"omitempty,len=64,hexadecimal"`

	Inputs       []Input       `json:"inputs,omitempty" validate:"dive"`
	Outputs      []Output      `json:"outputs,omitempty" validate:"dive"`
	Kernels      []Kernel      `json:"kernels" validate:"dive"`
	TokenInputs  []TokenInput  `json:"token_inputs,omitempty" validate:"dive"`
	TokenOutputs []TokenOutput `json:"token_outputs,omitempty" validate:"dive"`
	TokenKernels []TokenKernel `json:"token_kernels,omitempty" validate:"dive"`
}

// KernelFees returns the fee field of every kernel in the block.
func (b Block) KernelFees() []uint64 {
	fees := make([]uint64, len(b.Kernels))
	for i, k := range b.Kernels {
		fees[i] = k.Fee
	}
	return fees
}

// SpentOutputs returns the number of outputs and token outputs created in
// this block that have since been spent.
func (b Block) SpentOutputs() int {
	var n int
	for _, o := range b.Outputs {
		if o.Spent {
			n++
		}
	}
	for _, o := range b.TokenOutputs {
		if o.Spent {
			n++
		}
	}
	return n
}
