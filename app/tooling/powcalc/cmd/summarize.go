package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/ardanlabs/explorer/business/core/block"
	"github.com/ardanlabs/explorer/foundation/blockchain/storage"
	"github.com/ardanlabs/explorer/foundation/logger"
	"github.com/spf13/cobra"
)

var summarizeCmd = &cobra.Command{
	Use:   "summarize <record.json>",
	Short: "Print the difficulty and reward summary of a block record file.",
	Args:  cobra.ExactArgs(1),
	RunE:  summarizeRun,
}

func init() {
	rootCmd.AddCommand(summarizeCmd)
}

func summarizeRun(cmd *cobra.Command, args []string) error {
	log, err := logger.New("POWCALC", "stderr")
	if err != nil {
		return err
	}
	defer log.Sync()

	policy, err := rewardPolicy()
	if err != nil {
		return err
	}

	core, err := block.NewCore(log, policy)
	if err != nil {
		return err
	}

	content, err := os.ReadFile(args[0])
	if err != nil {
		return err
	}

	var rec storage.Block
	if err := json.Unmarshal(content, &rec); err != nil {
		return fmt.Errorf("decoding %s: %w", args[0], err)
	}

	sum, err := core.Summarize(rec)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(sum)
}
