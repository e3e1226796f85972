package cmd

import (
	"fmt"
	"strconv"

	"github.com/ardanlabs/explorer/foundation/blockchain/consensus"
	"github.com/spf13/cobra"
)

var rewardCmd = &cobra.Command{
	Use:   "reward",
	Short: "Compute block rewards.",
}

var baseCmd = &cobra.Command{
	Use:   "base <height>",
	Short: "Print the block subsidy in base units at a height.",
	Args:  cobra.ExactArgs(1),
	RunE:  baseRun,
}

var totalCmd = &cobra.Command{
	Use:   "total <base_reward> <fees>",
	Short: "Print (base_reward + fees) in coins.",
	Args:  cobra.ExactArgs(2),
	RunE:  totalRun,
}

var feesCmd = &cobra.Command{
	Use:   "fees [kernel_fee...]",
	Short: "Print the sum of the kernel fees in base units.",
	RunE:  feesRun,
}

func init() {
	rootCmd.AddCommand(rewardCmd)
	rewardCmd.AddCommand(baseCmd)
	rewardCmd.AddCommand(totalCmd)
	rewardCmd.AddCommand(feesCmd)
}

func baseRun(cmd *cobra.Command, args []string) error {
	height, err := parseUint("height", args[0])
	if err != nil {
		return err
	}

	policy, err := rewardPolicy()
	if err != nil {
		return err
	}

	base, err := policy.BaseReward(height)
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), uint64(base))
	return nil
}

func totalRun(cmd *cobra.Command, args []string) error {
	base, err := parseUint("base_reward", args[0])
	if err != nil {
		return err
	}

	fees, err := parseUint("fees", args[1])
	if err != nil {
		return err
	}

	total, err := consensus.TotalReward(consensus.Amount(base), consensus.Amount(fees))
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), strconv.FormatFloat(total, 'f', -1, 64))
	return nil
}

func feesRun(cmd *cobra.Command, args []string) error {
	kernelFees := make([]uint64, len(args))
	for i, arg := range args {
		fee, err := parseUint("kernel_fee", arg)
		if err != nil {
			return err
		}
		kernelFees[i] = fee
	}

	fees, err := consensus.Fees(kernelFees)
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), uint64(fees))
	return nil
}
