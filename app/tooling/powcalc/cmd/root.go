// Package cmd contains the powcalc app.
package cmd

import (
	"fmt"
	"math"
	"os"

	"github.com/ardanlabs/explorer/foundation/blockchain/consensus"
	"github.com/ardanlabs/explorer/foundation/blockchain/params"
	gmath "github.com/ethereum/go-ethereum/common/math"
	"github.com/spf13/cobra"
)

var (
	paramsPath   string
	scheduleName string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:           "powcalc",
	Short:         "Proof-of-work difficulty and block reward calculator",
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "ERROR:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&paramsPath, "params", "p", "", "Path to the chain parameter file.")
	rootCmd.PersistentFlags().StringVarP(&scheduleName, "schedule", "s", "", "Reward schedule to apply at every height (legacy|tiered).")
}

// rewardPolicy resolves the reward policy from the flags. An explicit
// schedule wins over the parameter file.
func rewardPolicy() (consensus.Policy, error) {
	if scheduleName != "" {
		schedule, err := consensus.ParseSchedule(scheduleName)
		if err != nil {
			return consensus.Policy{}, err
		}
		return consensus.SinglePolicy(schedule), nil
	}

	if paramsPath == "" {
		return params.Default().Policy(), nil
	}

	p, err := params.Load(paramsPath)
	if err != nil {
		return consensus.Policy{}, fmt.Errorf("loading params: %w", err)
	}

	return p.Policy(), nil
}

// parseUint reads a decimal or 0x prefixed hex argument.
func parseUint(name string, s string) (uint64, error) {
	if s == "" {
		return 0, fmt.Errorf("%s: empty value", name)
	}

	v, ok := gmath.ParseUint64(s)
	if !ok {
		return 0, fmt.Errorf("%s: %q is not an unsigned integer", name, s)
	}

	return v, nil
}

// parseUint32 reads an argument that must fit in 32 bits.
func parseUint32(name string, s string) (uint32, error) {
	v, err := parseUint(name, s)
	if err != nil {
		return 0, err
	}

	if v > math.MaxUint32 {
		return 0, fmt.Errorf("%s: %q does not fit in 32 bits", name, s)
	}

	return uint32(v), nil
}
