package consensus_test

import (
	"fmt"

	"github.com/ardanlabs/explorer/foundation/blockchain/consensus"
)

func ExampleFromProofAdjusted() {
	hash := "0000000100000000" + "abababababababababababababababababababababababab"

	diff, err := consensus.FromProofAdjusted(hash, 29)
	if err != nil {
		fmt.Println(err)
		return
	}

	fmt.Println(diff)
	// Output: 7971459301376
}

func ExampleBitDifficulty() {
	diff, err := consensus.BitDifficulty(0x1b04864c)
	if err != nil {
		fmt.Println(err)
		return
	}

	fmt.Println(diff)
	// Output: 14484
}

func ExamplePolicy_BaseReward() {
	policy := consensus.SinglePolicy(consensus.ScheduleTiered)

	for _, height := range []uint64{0, 80_640, 1_050_000} {
		base, _ := policy.BaseReward(height)
		fmt.Println(height, base.Coins())
	}
	// Output:
	// 0 50
	// 80640 10
	// 1050000 5
}
