package cmd

import (
	"fmt"

	"github.com/ardanlabs/explorer/foundation/blockchain/consensus"
	"github.com/spf13/cobra"
)

var weightCmd = &cobra.Command{
	Use:   "weight <edge_bits>",
	Short: "Print the graph weight for a cycle size.",
	Args:  cobra.ExactArgs(1),
	RunE:  weightRun,
}

var difficultyCmd = &cobra.Command{
	Use:   "difficulty",
	Short: "Compute the difficulty achieved by a proof hash.",
}

var adjustedCmd = &cobra.Command{
	Use:   "adjusted <hash> <edge_bits>",
	Short: "Scale the hash by the graph weight of the cycle size.",
	Args:  cobra.ExactArgs(2),
	RunE:  adjustedRun,
}

var scaledCmd = &cobra.Command{
	Use:   "scaled <hash> <secondary_scaling>",
	Short: "Scale the hash by a secondary scaling factor.",
	Args:  cobra.ExactArgs(2),
	RunE:  scaledRun,
}

var proofCmd = &cobra.Command{
	Use:   "proof <hash> <edge_bits> [secondary_scaling]",
	Short: "Value a full proof, choosing the scaling by edge bits.",
	Args:  cobra.RangeArgs(2, 3),
	RunE:  proofRun,
}

var bitsCmd = &cobra.Command{
	Use:   "bits <compact_bits>",
	Short: "Decode a compact bits target into a difficulty.",
	Args:  cobra.ExactArgs(1),
	RunE:  bitsRun,
}

func init() {
	rootCmd.AddCommand(weightCmd)
	rootCmd.AddCommand(bitsCmd)
	rootCmd.AddCommand(difficultyCmd)
	difficultyCmd.AddCommand(adjustedCmd)
	difficultyCmd.AddCommand(scaledCmd)
	difficultyCmd.AddCommand(proofCmd)
}

func weightRun(cmd *cobra.Command, args []string) error {
	edgeBits, err := parseUint("edge_bits", args[0])
	if err != nil {
		return err
	}

	weight, err := consensus.GraphWeight(uint(edgeBits))
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), weight)
	return nil
}

func adjustedRun(cmd *cobra.Command, args []string) error {
	edgeBits, err := parseUint("edge_bits", args[1])
	if err != nil {
		return err
	}

	diff, err := consensus.FromProofAdjusted(args[0], uint(edgeBits))
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), diff)
	return nil
}

func scaledRun(cmd *cobra.Command, args []string) error {
	scaling, err := parseUint("secondary_scaling", args[1])
	if err != nil {
		return err
	}

	diff, err := consensus.FromProofScaled(args[0], scaling)
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), diff)
	return nil
}

func proofRun(cmd *cobra.Command, args []string) error {
	edgeBits, err := parseUint("edge_bits", args[1])
	if err != nil {
		return err
	}

	sample := consensus.ProofOfWorkSample{
		Hash:     args[0],
		EdgeBits: uint(edgeBits),
	}

	if len(args) == 3 {
		sample.SecondaryScaling, err = parseUint("secondary_scaling", args[2])
		if err != nil {
			return err
		}
	}

	diff, err := sample.Difficulty()
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), diff)
	return nil
}

func bitsRun(cmd *cobra.Command, args []string) error {
	bits, err := parseUint32("compact_bits", args[0])
	if err != nil {
		return err
	}

	diff, err := consensus.BitDifficulty(bits)
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), diff)
	return nil
}
