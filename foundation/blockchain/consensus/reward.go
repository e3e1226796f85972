package consensus

import (
	"fmt"
	"strings"

	gmath "github.com/ethereum/go-ethereum/common/math"
)

// BaseUnitsPerCoin defines the number of base units in one coin. A coin is
// divisible to 10^9.
const BaseUnitsPerCoin uint64 = 1_000_000_000

// Amount represents a quantity in base units.
type Amount uint64

// Coins returns the display value of the amount. Never use the result for
// further arithmetic.
func (a Amount) Coins() float64 {
	return float64(a) / float64(BaseUnitsPerCoin)
}

// =============================================================================

// Set of reward schedule constants.
const (
	LegacyHalvingInterval uint64 = 210_000
	LegacyInitialReward   Amount = 50

	TieredLaunchHeight    uint64 = 80_640
	TieredLaunchReward    Amount = 50_000_000_000
	TieredFlatHeight      uint64 = 727_440
	TieredFlatReward      Amount = 10_000_000_000
	TieredHalvingInterval uint64 = 1_050_000

	maxHalvings = 64
)

// Schedule names one of the reward schedules a chain has used.
type Schedule uint8

// Set of known schedules. The zero value is not a schedule.
const (
	ScheduleLegacy Schedule = iota + 1
	ScheduleTiered
)

var scheduleNames = map[Schedule]string{
	ScheduleLegacy: "legacy",
	ScheduleTiered: "tiered",
}

// ParseSchedule converts a schedule name into a Schedule.
func ParseSchedule(name string) (Schedule, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	for s, sn := range scheduleNames {
		if sn == n {
			return s, nil
		}
	}

	return 0, invalid("schedule", name, "unknown reward schedule")
}

// String implements the fmt.Stringer interface.
func (s Schedule) String() string {
	if n, exists := scheduleNames[s]; exists {
		return n
	}
	return fmt.Sprintf("schedule(%d)", uint8(s))
}

// MarshalText implements the encoding.TextMarshaler interface.
func (s Schedule) MarshalText() ([]byte, error) {
	n, exists := scheduleNames[s]
	if !exists {
		return nil, invalid("schedule", uint8(s), "unknown reward schedule")
	}
	return []byte(n), nil
}

// UnmarshalText implements the encoding.TextUnmarshaler interface.
func (s *Schedule) UnmarshalText(data []byte) error {
	parsed, err := ParseSchedule(string(data))
	if err != nil {
		return err
	}

	*s = parsed
	return nil
}

// =============================================================================

// LegacyReward is the original schedule: 50 at launch, halving every
// 210000 blocks, nothing after 64 halvings.
func LegacyReward(height uint64) Amount {
	halving := height / LegacyHalvingInterval
	if halving >= maxHalvings {
		return 0
	}

	return LegacyInitialReward >> halving
}

// TieredReward is the post migration schedule: a launch reward, then a flat
// reward, then halvings counted from genesis every 1050000 blocks.
func TieredReward(height uint64) Amount {
	switch {
	case height < TieredLaunchHeight:
		return TieredLaunchReward

	case height < TieredFlatHeight:
		return TieredFlatReward
	}

	halving := height / TieredHalvingInterval
	if halving >= maxHalvings {
		return 0
	}

	return TieredFlatReward >> halving
}

// BaseReward returns the block subsidy at the height under the schedule.
func BaseReward(schedule Schedule, height uint64) (Amount, error) {
	switch schedule {
	case ScheduleLegacy:
		return LegacyReward(height), nil

	case ScheduleTiered:
		return TieredReward(height), nil
	}

	return 0, invalid("schedule", uint8(schedule), "unknown reward schedule")
}

// =============================================================================

// Policy selects the reward schedule by height. Blocks below ForkHeight use
// Before and the rest use After. A zero ForkHeight means After applies to
// the whole chain.
type Policy struct {
	Before     Schedule
	After      Schedule
	ForkHeight uint64
}

// SinglePolicy returns a policy that applies one schedule at every height.
func SinglePolicy(schedule Schedule) Policy {
	return Policy{
		Before: schedule,
		After:  schedule,
	}
}

// Validate checks every schedule the policy can select is known.
func (p Policy) Validate() error {
	if _, exists := scheduleNames[p.After]; !exists {
		return invalid("policy.after", uint8(p.After), "unknown reward schedule")
	}

	if p.ForkHeight > 0 {
		if _, exists := scheduleNames[p.Before]; !exists {
			return invalid("policy.before", uint8(p.Before), "unknown reward schedule")
		}
	}

	return nil
}

// Schedule returns the schedule in force at the height.
func (p Policy) Schedule(height uint64) Schedule {
	if height < p.ForkHeight {
		return p.Before
	}
	return p.After
}

// BaseReward returns the block subsidy at the height.
func (p Policy) BaseReward(height uint64) (Amount, error) {
	return BaseReward(p.Schedule(height), height)
}

// =============================================================================

// Fees sums the fee fields of the transaction kernels in a block.
func Fees(kernelFees []uint64) (Amount, error) {
	var total uint64
	for i, fee := range kernelFees {
		sum, overflow := gmath.SafeAdd(total, fee)
		if overflow {
			return 0, invalid("kernel_fees", i, "fee total overflows 64 bits")
		}
		total = sum
	}

	return Amount(total), nil
}

// TotalReward returns what the miner of a block receives, (base + fees),
// as a display value in coins.
func TotalReward(base Amount, fees Amount) (float64, error) {
	sum, overflow := gmath.SafeAdd(uint64(base), uint64(fees))
	if overflow {
		return 0, invalid("fees", fees, "reward total overflows 64 bits")
	}

	return Amount(sum).Coins(), nil
}
