package consensus_test

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/ardanlabs/explorer/foundation/blockchain/consensus"
)

func TestLegacyReward(t *testing.T) {
	type table struct {
		height uint64
		reward consensus.Amount
	}

	tt := []table{
		{height: 0, reward: 50},
		{height: 209_999, reward: 50},
		{height: 210_000, reward: 25},
		{height: 420_000, reward: 12},
		{height: 5 * 210_000, reward: 1},
		{height: 6 * 210_000, reward: 0},
		{height: 64*210_000 - 1, reward: 0},
		{height: 64 * 210_000, reward: 0},
		{height: math.MaxUint64, reward: 0},
	}

	t.Log("Given the need to compute the legacy reward schedule.")
	{
		for testID, tst := range tt {
			got := consensus.LegacyReward(tst.height)
			if got != tst.reward {
				t.Fatalf("\t%s\tTest %d:\tShould get %d at height %d: got %d", failed, testID, tst.reward, tst.height, got)
			}
			t.Logf("\t%s\tTest %d:\tShould get %d at height %d.", success, testID, tst.reward, tst.height)
		}
	}
}

func TestTieredReward(t *testing.T) {
	type table struct {
		height uint64
		reward consensus.Amount
	}

	tt := []table{
		{height: 0, reward: 50_000_000_000},
		{height: 80_639, reward: 50_000_000_000},
		{height: 80_640, reward: 10_000_000_000},
		{height: 727_439, reward: 10_000_000_000},
		{height: 727_440, reward: 10_000_000_000 >> (727_440 / 1_050_000)},
		{height: 1_049_999, reward: 10_000_000_000},
		{height: 1_050_000, reward: 5_000_000_000},
		{height: 2_100_000, reward: 2_500_000_000},
		{height: 63 * 1_050_000, reward: 0},
		{height: 64 * 1_050_000, reward: 0},
		{height: math.MaxUint64, reward: 0},
	}

	t.Log("Given the need to compute the tiered reward schedule.")
	{
		for testID, tst := range tt {
			got := consensus.TieredReward(tst.height)
			if got != tst.reward {
				t.Fatalf("\t%s\tTest %d:\tShould get %d at height %d: got %d", failed, testID, tst.reward, tst.height, got)
			}
			t.Logf("\t%s\tTest %d:\tShould get %d at height %d.", success, testID, tst.reward, tst.height)
		}
	}
}

func TestRewardNonIncreasing(t *testing.T) {
	schedules := []consensus.Schedule{consensus.ScheduleLegacy, consensus.ScheduleTiered}

	t.Log("Given the need for rewards to never grow with height.")
	{
		for _, s := range schedules {
			var prev consensus.Amount = math.MaxUint64
			for height := uint64(0); height < 80_000_000; height += 9_973 {
				got, err := consensus.BaseReward(s, height)
				if err != nil {
					t.Fatalf("\t%s\tShould compute %s reward: %v", failed, s, err)
				}
				if got > prev {
					t.Fatalf("\t%s\tShould not increase under %s at %d: got %d, prev %d", failed, s, height, got, prev)
				}
				prev = got
			}
			t.Logf("\t%s\tShould never increase under the %s schedule.", success, s)
		}
	}
}

func TestBaseRewardUnknownSchedule(t *testing.T) {
	t.Log("Given the need to reject unknown schedules.")
	{
		for _, s := range []consensus.Schedule{0, 3, 255} {
			_, err := consensus.BaseReward(s, 10)
			if !consensus.IsInvalidParameter(err) {
				t.Fatalf("\t%s\tShould reject %s: %v", failed, s, err)
			}
			t.Logf("\t%s\tShould reject %s.", success, s)
		}
	}
}

// =============================================================================

func TestPolicy(t *testing.T) {
	policy := consensus.Policy{
		Before:     consensus.ScheduleLegacy,
		After:      consensus.ScheduleTiered,
		ForkHeight: 100,
	}

	t.Log("Given the need to select a schedule by fork height.")
	{
		if err := policy.Validate(); err != nil {
			t.Fatalf("\t%s\tShould be a valid policy: %v", failed, err)
		}
		t.Logf("\t%s\tShould be a valid policy.", success)

		if s := policy.Schedule(99); s != consensus.ScheduleLegacy {
			t.Fatalf("\t%s\tShould use legacy below the fork: got %s", failed, s)
		}
		t.Logf("\t%s\tShould use legacy below the fork.", success)

		if s := policy.Schedule(100); s != consensus.ScheduleTiered {
			t.Fatalf("\t%s\tShould use tiered at the fork: got %s", failed, s)
		}
		t.Logf("\t%s\tShould use tiered at the fork.", success)

		got, err := policy.BaseReward(99)
		if err != nil || got != 50 {
			t.Fatalf("\t%s\tShould pay the legacy reward below the fork: got %d, err %v", failed, got, err)
		}

		got, err = policy.BaseReward(100)
		if err != nil || got != consensus.TieredLaunchReward {
			t.Fatalf("\t%s\tShould pay the tiered reward at the fork: got %d, err %v", failed, got, err)
		}
		t.Logf("\t%s\tShould pay the reward of the selected schedule.", success)

		single := consensus.SinglePolicy(consensus.ScheduleTiered)
		if s := single.Schedule(0); s != consensus.ScheduleTiered {
			t.Fatalf("\t%s\tShould apply a single schedule everywhere: got %s", failed, s)
		}
		t.Logf("\t%s\tShould apply a single schedule everywhere.", success)

		bad := []consensus.Policy{
			{},
			{After: consensus.ScheduleTiered, ForkHeight: 10},
			{Before: consensus.ScheduleLegacy, After: 9},
		}
		for _, p := range bad {
			if err := p.Validate(); !consensus.IsInvalidParameter(err) {
				t.Fatalf("\t%s\tShould reject policy %+v: %v", failed, p, err)
			}
		}
		t.Logf("\t%s\tShould reject policies with unknown schedules.", success)
	}
}

func TestScheduleText(t *testing.T) {
	t.Log("Given the need to read and write schedules by name.")
	{
		for _, name := range []string{"legacy", "tiered", " Tiered "} {
			if _, err := consensus.ParseSchedule(name); err != nil {
				t.Fatalf("\t%s\tShould parse %q: %v", failed, name, err)
			}
		}
		t.Logf("\t%s\tShould parse known schedule names.", success)

		if _, err := consensus.ParseSchedule("bitcoin"); !consensus.IsInvalidParameter(err) {
			t.Fatalf("\t%s\tShould reject an unknown name: %v", failed, err)
		}
		t.Logf("\t%s\tShould reject an unknown name.", success)

		var doc struct {
			Schedule consensus.Schedule `json:"schedule"`
		}
		if err := json.Unmarshal([]byte(`{"schedule":"legacy"}`), &doc); err != nil {
			t.Fatalf("\t%s\tShould decode from JSON: %v", failed, err)
		}
		if doc.Schedule != consensus.ScheduleLegacy {
			t.Fatalf("\t%s\tShould decode legacy: got %s", failed, doc.Schedule)
		}

		data, err := json.Marshal(doc)
		if err != nil {
			t.Fatalf("\t%s\tShould encode to JSON: %v", failed, err)
		}
		if string(data) != `{"schedule":"legacy"}` {
			t.Fatalf("\t%s\tShould encode the name: got %s", failed, data)
		}
		t.Logf("\t%s\tShould encode and decode by name in JSON.", success)
	}
}

// =============================================================================

func TestFees(t *testing.T) {
	t.Log("Given the need to sum kernel fees.")
	{
		got, err := consensus.Fees(nil)
		if err != nil || got != 0 {
			t.Fatalf("\t%s\tShould sum no kernels to zero: got %d, err %v", failed, got, err)
		}
		t.Logf("\t%s\tShould sum no kernels to zero.", success)

		got, err = consensus.Fees([]uint64{8_000_000, 0, 2_000_000})
		if err != nil || got != 10_000_000 {
			t.Fatalf("\t%s\tShould sum the fees: got %d, err %v", failed, got, err)
		}
		t.Logf("\t%s\tShould sum the fees.", success)

		_, err = consensus.Fees([]uint64{math.MaxUint64, 1})
		if !consensus.IsInvalidParameter(err) {
			t.Fatalf("\t%s\tShould reject an overflowing total: %v", failed, err)
		}
		t.Logf("\t%s\tShould reject an overflowing total.", success)
	}
}

func TestTotalReward(t *testing.T) {
	type table struct {
		base  consensus.Amount
		fees  consensus.Amount
		coins float64
	}

	tt := []table{
		{base: 50_000_000_000, fees: 0, coins: 50},
		{base: 10_000_000_000, fees: 8_000_000, coins: 10.008},
		{base: 50, fees: 0, coins: 0.00000005},
		{base: 0, fees: 1_500_000_000, coins: 1.5},
	}

	t.Log("Given the need to display the total block reward.")
	{
		for testID, tst := range tt {
			got, err := consensus.TotalReward(tst.base, tst.fees)
			if err != nil {
				t.Fatalf("\t%s\tTest %d:\tShould compute the total: %v", failed, testID, err)
			}
			if got != tst.coins {
				t.Fatalf("\t%s\tTest %d:\tShould get %v coins: got %v", failed, testID, tst.coins, got)
			}
			t.Logf("\t%s\tTest %d:\tShould get %v coins.", success, testID, tst.coins)
		}

		if _, err := consensus.TotalReward(math.MaxUint64, 1); !consensus.IsInvalidParameter(err) {
			t.Fatalf("\t%s\tShould reject an overflowing total: %v", failed, err)
		}
		t.Logf("\t%s\tShould reject an overflowing total.", success)
	}
}
