// This program performs administrative tasks over a folder of block records.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/ardanlabs/conf/v3"
	"github.com/ardanlabs/explorer/app/tooling/admin/commands"
	"github.com/ardanlabs/explorer/business/core/block"
	"github.com/ardanlabs/explorer/foundation/blockchain/params"
	"github.com/ardanlabs/explorer/foundation/blockchain/storage/disk"
	"github.com/ardanlabs/explorer/foundation/logger"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// build is the git version of this program. It is set using build flags in the makefile.
var build = "develop"

func main() {

	// Construct the application logger. Stdout carries the command output
	// so the logs go to stderr.
	log, err := logger.New("ADMIN", "stderr")
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
	defer log.Sync()

	// Perform the startup and shutdown sequence.
	if err := run(log); err != nil {
		log.Errorw("startup", "ERROR", err)
		log.Sync()
		os.Exit(1)
	}
}

func run(log *zap.SugaredLogger) error {

	// =========================================================================
	// Configuration

	cfg := struct {
		conf.Version
		Args    conf.Args
		Records struct {
			Path string `conf:"default:zblock/blocks"`
		}
		Params struct {
			Path string `conf:"help:chain parameter file (mainnet defaults when empty)"`
		}
	}{
		Version: conf.Version{
			Build: build,
			Desc:  "copyright information here",
		},
	}

	const prefix = "ADMIN"
	help, err := conf.Parse(prefix, &cfg)
	if err != nil {
		if errors.Is(err, conf.ErrHelpWanted) {
			fmt.Println(help)
			return nil
		}
		return fmt.Errorf("parsing config: %w", err)
	}

	// Every run gets its own trace id so the log lines of one batch can be
	// pulled out of a shared log.
	log = log.With("traceid", uuid.NewString())

	out, err := conf.String(&cfg)
	if err != nil {
		return fmt.Errorf("generating config for output: %w", err)
	}
	log.Infow("startup", "version", build, "config", out)
	defer log.Infow("shutdown complete")

	// =========================================================================
	// Block Support

	chain := params.Default()
	if cfg.Params.Path != "" {
		if chain, err = params.Load(cfg.Params.Path); err != nil {
			return fmt.Errorf("loading params: %w", err)
		}
	}
	log.Infow("startup", "status", "params loaded", "name", chain.Name, "before", chain.ScheduleBefore, "after", chain.ScheduleAfter, "fork", chain.ForkHeight)

	core, err := block.NewCore(log, chain.Policy())
	if err != nil {
		return fmt.Errorf("constructing block core: %w", err)
	}

	store, err := disk.Open(cfg.Records.Path)
	if err != nil {
		return fmt.Errorf("opening records: %w", err)
	}
	defer store.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return processCommands(ctx, cfg.Args, core, store)
}

// processCommands handles the execution of the commands specified on
// the command line.
func processCommands(ctx context.Context, args conf.Args, core *block.Core, store *disk.Disk) error {
	switch args.Num(0) {
	case "summaries":
		if err := commands.Summaries(ctx, os.Stdout, core, store); err != nil {
			return fmt.Errorf("summarizing records: %w", err)
		}
	case "totals":
		if err := commands.Totals(ctx, os.Stdout, core, store); err != nil {
			return fmt.Errorf("totaling records: %w", err)
		}
	case "block":
		if err := commands.Block(os.Stdout, core, store, args.Num(1)); err != nil {
			return fmt.Errorf("summarizing block: %w", err)
		}
	default:
		fmt.Println("summaries: print one summary per record as JSON lines")
		fmt.Println("totals:    print the totals over every record")
		fmt.Println("block:     print the summary of the record at <height> or with <hash>")
		fmt.Println("provide a command to get more help.")
	}

	return nil
}
