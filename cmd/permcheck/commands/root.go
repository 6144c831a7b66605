package commands

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/Lgeu/santa23/report"
	"github.com/scott-cotton/cli"
)

const description = `permcheck checks solutions of permutation puzzles.

A puzzle instance lists its facelet count n, move count m and wildcard count
w, a puzzle type, the move names, the target and initial labelings and one
mapping per move. A solution is a line of move names joined by '.', where a
leading '-' applies the inverse move. The solution is valid when at most w
facelets differ from the target after applying every move in order; its
score is the number of moves.

  permcheck <instance> <solution>

is short for 'permcheck check <instance> <solution>'.`

type MainConfig struct {
	Color   bool `cli:"name=color desc='colour diagnostics'"`
	Verbose bool `cli:"name=v aliases=verbose desc='log progress to stderr'"`

	OutFormat report.Format

	Main *cli.Command
}

func (cfg *MainConfig) fmtFunc(fp *report.Format) cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		f, err := report.ParseFormat(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		*fp = f
		return f, nil
	})
}

// colorForce returns nil unless -color was given explicitly.
func (cfg *MainConfig) colorForce() *bool {
	for _, opt := range cfg.Main.Opts {
		if opt.Name != "color" {
			continue
		}
		if opt.Value == nil {
			return nil
		}
		v := cfg.Color
		return &v
	}
	return nil
}

func (cfg *MainConfig) printer(cc *cli.Context, diff bool) *report.Printer {
	return &report.Printer{
		Format: cfg.OutFormat,
		Colors: report.ColorsFor(cc.Err, cfg.colorForce()),
		Out:    cc.Out,
		Err:    cc.Err,
		Diff:   diff,
	}
}

func (cfg *MainConfig) log(cc *cli.Context) *slog.Logger {
	return newLog(cc.Err, cfg.Verbose)
}

// Root returns the permcheck command.
func Root() *cli.Command {
	cfg := &MainConfig{}
	sOpts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts := append(sOpts, &cli.Opt{
		Name:        "O",
		Aliases:     []string{"ofmt"},
		Description: "output format: text/t, json/j, yaml/y",
		Type:        cli.NamedFuncOpt(cfg.fmtFunc(&cfg.OutFormat), "(format)"),
	})
	check := CheckCommand(cfg)
	return cli.NewCommandAt(&cfg.Main, "permcheck").
		WithSynopsis("permcheck [opts] <instance> <solution> | permcheck [opts] command [opts]").
		WithDescription(description).
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return permcheckMain(cfg, check, cc, args)
		}).
		WithSubs(
			check,
			BatchCommand(cfg),
			ConvertCommand(cfg),
			CollectCommand(cfg),
			SplitCommand(cfg))
}

func permcheckMain(cfg *MainConfig, check *cli.Command, cc *cli.Context, args []string) error {
	args, err := cfg.Main.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return cli.ErrNoCommandProvided
	}
	sub := cfg.Main.FindSub(cc, args[0])
	if sub == nil {
		sub = check
	} else {
		args = args[1:]
	}
	err = sub.Run(cc, args)
	if errors.Is(err, cli.ErrUsage) {
		sub.Usage(cc, err)
		return cli.ExitCodeErr(sub.Exit(cc, err))
	}
	return err
}
