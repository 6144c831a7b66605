package commands

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/Lgeu/santa23/kaggle"
	"github.com/Lgeu/santa23/verify"
	"github.com/google/gops/agent"
	"github.com/scott-cotton/cli"
)

type BatchConfig struct {
	*MainConfig
	Puzzles string `cli:"name=puzzles desc='path of puzzles.csv'"`
	Info    string `cli:"name=info desc='path of puzzle_info.csv'"`
	Where   string `cli:"name=where desc='expression over id, type, n, w, moves selecting puzzles'"`
	Jobs    int    `cli:"name=j desc='puzzles checked in parallel (default GOMAXPROCS)'"`
	Gops    bool   `cli:"name=gops desc='start a gops agent while checking'"`

	Batch *cli.Command
}

func BatchCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &BatchConfig{
		MainConfig: mainCfg,
		Puzzles:    "puzzles.csv",
		Info:       "puzzle_info.csv",
	}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Batch, "batch").
		WithAliases("b").
		WithSynopsis("batch [-puzzles f] [-info f] [-where expr] [-j n] <submission.csv>").
		WithDescription("check every solution of a submission file and print the total score").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return batch(cfg, cc, args)
		})
}

func batch(cfg *BatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Batch.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 1 {
		return fmt.Errorf("%w: batch requires 1 arg, got %v", cli.ErrUsage, args)
	}
	filter, err := kaggle.NewFilter(cfg.Where)
	if err != nil {
		return fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	if cfg.Gops {
		if err := agent.Listen(agent.Options{}); err != nil {
			fmt.Fprintf(cc.Err, "gops agent failed: %v\n", err)
		}
		defer agent.Close()
	}
	log := cfg.log(cc)

	puzzles, err := kaggle.LoadPuzzles(cfg.Puzzles)
	if err != nil {
		return err
	}
	info, err := kaggle.LoadInfo(cfg.Info)
	if err != nil {
		return err
	}
	entries, err := kaggle.LoadSubmission(args[0])
	if err != nil {
		return err
	}
	jobs, err := kaggle.Jobs(puzzles, info, entries, filter)
	if err != nil {
		return err
	}
	log.Debug("checking", "jobs", len(jobs), "entries", len(entries), "where", filter)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	sum, err := verify.Batch(ctx, jobs, verify.BatchOptions{Workers: cfg.Jobs})
	if err != nil {
		return err
	}
	if err := cfg.printer(cc, false).Summary(sum); err != nil {
		return err
	}
	if !sum.OK() {
		return cli.ExitCodeErr(1)
	}
	return nil
}
