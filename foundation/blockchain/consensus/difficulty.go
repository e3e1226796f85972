package consensus

import (
	"encoding/hex"
	"fmt"
	"math"
	"strconv"

	"github.com/holiman/uint256"
)

const (
	// BaseEdgeBits is the smallest cycle graph size a graph weight is
	// defined for.
	BaseEdgeBits = 24

	// SecondPowEdgeBits identifies proofs produced by the secondary
	// proof-of-work. Those are scaled by the secondary scaling factor rather
	// than by graph weight.
	SecondPowEdgeBits = 29

	// MaxDifficulty is the value every difficulty saturates at.
	MaxDifficulty uint64 = math.MaxUint64

	// HashLength is the number of hex characters in a full proof hash.
	HashLength = 64
)

const (
	hashPrefixLength   = 16
	bitsReferenceShift = 29
	bitsMantissaMask   = 0x00ffffff
	bitsMaxMantissa    = 0x0000ffff
	difficultyCeiling  = float64(1 << 64)
)

// ProofOfWorkSample carries what is needed to value a single proof.
type ProofOfWorkSample struct {
	Hash             string `json:"hash"`
	EdgeBits         uint   `json:"edge_bits"`
	SecondaryScaling uint64 `json:"secondary_scaling"`
}

// Difficulty values the sample the way a dual proof-of-work chain does.
// Secondary proofs are scaled by the secondary scaling factor, primary
// proofs by their graph weight.
func (s ProofOfWorkSample) Difficulty() (uint64, error) {
	if len(s.Hash) != HashLength {
		return 0, invalid("hash", s.Hash, fmt.Sprintf("must be %d hex characters, got %d", HashLength, len(s.Hash)))
	}
	if _, err := hex.DecodeString(s.Hash); err != nil {
		return 0, invalid("hash", s.Hash, "must be hex encoded")
	}

	if s.EdgeBits == SecondPowEdgeBits {
		return FromProofScaled(s.Hash, s.SecondaryScaling)
	}

	return FromProofAdjusted(s.Hash, s.EdgeBits)
}

// =============================================================================

// GraphWeight computes the weight of a graph as the number of siphash bits
// defining the graph: (2 << (edgeBits - BaseEdgeBits)) * edgeBits.
func GraphWeight(edgeBits uint) (uint64, error) {
	if edgeBits < BaseEdgeBits {
		return 0, invalid("edge_bits", edgeBits, fmt.Sprintf("must be at least %d", BaseEdgeBits))
	}

	// 2 << shift must itself fit in 64 bits before the multiply.
	shift := edgeBits - BaseEdgeBits
	if shift > 62 {
		return 0, invalid("edge_bits", edgeBits, "graph weight exceeds 64 bits")
	}

	weight := new(uint256.Int).Lsh(uint256.NewInt(2), shift)
	weight.Mul(weight, uint256.NewInt(uint64(edgeBits)))
	if !weight.IsUint64() {
		return 0, invalid("edge_bits", edgeBits, "graph weight exceeds 64 bits")
	}

	return weight.Uint64(), nil
}

// ScaledDifficulty is the difficulty achieved by a proof with the given
// scaling factor. The first 16 hex characters of the hash are read as a
// 64 bit unsigned integer h and the result is (weight << 64) / h, saturated
// at MaxDifficulty. Every character of the hash must be hex, not only the
// ones that are read.
func ScaledDifficulty(hash string, weight uint64) (uint64, error) {
	h, err := hashPrefix(hash)
	if err != nil {
		return 0, err
	}

	// weight << 64 needs up to 128 bits.
	diff := new(uint256.Int).Lsh(uint256.NewInt(weight), 64)
	diff.Div(diff, uint256.NewInt(h))

	if !diff.IsUint64() {
		return MaxDifficulty, nil
	}

	return diff.Uint64(), nil
}

// FromProofAdjusted computes the difficulty from a hash, applying the
// Cuck(at)oo size adjustment factor for the given edge bits.
func FromProofAdjusted(hash string, edgeBits uint) (uint64, error) {
	weight, err := GraphWeight(edgeBits)
	if err != nil {
		return 0, err
	}

	return ScaledDifficulty(hash, weight)
}

// FromProofScaled is FromProofAdjusted with a provided scaling factor in
// place of the cycle size adjustment. Used to scale one proof-of-work
// algorithm against the other.
func FromProofScaled(hash string, secondaryScaling uint64) (uint64, error) {
	return ScaledDifficulty(hash, secondaryScaling)
}

// BitDifficulty decodes a compact "nBits" target into a difficulty relative
// to a reference exponent of 29. The arithmetic is done in float64 so results
// match values that were recorded with double precision, and the result is
// truncated toward zero.
func BitDifficulty(bits uint32) (uint64, error) {
	mantissa := bits & bitsMantissaMask
	if mantissa == 0 {
		return 0, invalid("bits", fmt.Sprintf("%#08x", bits), "zero mantissa")
	}

	shift := int((bits >> 24) & 0xff)
	diff := float64(bitsMaxMantissa) / float64(mantissa)

	for ; shift < bitsReferenceShift; shift++ {
		diff *= 256.0
	}

	for ; shift > bitsReferenceShift; shift-- {
		diff /= 256.0
	}

	if diff >= difficultyCeiling {
		return MaxDifficulty, nil
	}

	return uint64(diff), nil
}

// =============================================================================

// hashPrefix reads the leading 64 bits of a hex encoded hash.
func hashPrefix(hash string) (uint64, error) {
	if len(hash) < hashPrefixLength {
		return 0, invalid("hash", hash, fmt.Sprintf("need at least %d hex characters, got %d", hashPrefixLength, len(hash)))
	}

	h, err := strconv.ParseUint(hash[:hashPrefixLength], 16, 64)
	if err != nil {
		return 0, invalid("hash", hash, "leading characters are not hex")
	}

	for i := hashPrefixLength; i < len(hash); i++ {
		if !isHexDigit(hash[i]) {
			return 0, invalid("hash", hash, fmt.Sprintf("character %d is not hex", i))
		}
	}

	if h == 0 {
		return 0, invalid("hash", hash, "leading 64 bits are zero")
	}

	return h, nil
}

func isHexDigit(c byte) bool {
	switch {
	case '0' <= c && c <= '9':
		return true
	case 'a' <= c && c <= 'f':
		return true
	case 'A' <= c && c <= 'F':
		return true
	}
	return false
}
