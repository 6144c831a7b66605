package commands

import (
	"errors"
	"fmt"

	"github.com/Lgeu/santa23/moves"
	"github.com/Lgeu/santa23/puzzle"
	"github.com/Lgeu/santa23/report"
	"github.com/Lgeu/santa23/verify"
	"github.com/scott-cotton/cli"
)

var errNoPrior = errors.New("instance has no merged solution")

type CheckConfig struct {
	*MainConfig
	Diff  bool `cli:"name=diff desc='show mismatched facelets of an invalid solution'"`
	Prior bool `cli:"name=prior desc='check the solution merged into the instance file'"`

	Check *cli.Command
}

func CheckCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &CheckConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Check, "check").
		WithAliases("c").
		WithSynopsis("check [-diff] <instance> <solution> | check -prior <instance>").
		WithDescription("check a solution against a puzzle instance and print its score").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return check(cfg, cc, args)
		})
}

func check(cfg *CheckConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Check.Parse(cc, args)
	if err != nil {
		return err
	}
	want := 2
	if cfg.Prior {
		want = 1
	}
	if len(args) != want {
		return fmt.Errorf("%w: check requires %d args, got %v", cli.ErrUsage, want, args)
	}
	log := cfg.log(cc)
	inst, err := puzzle.Load(args[0])
	if err != nil {
		return err
	}
	log.Debug("loaded", "instance", args[0], "type", inst.Type, "n", inst.N, "m", inst.M, "w", inst.W)

	p := cfg.printer(cc, cfg.Diff)
	seq, err := solution(cfg, inst, args)
	if err != nil {
		var uErr *moves.UnknownMoveError
		if errors.As(err, &uErr) || errors.Is(err, errNoPrior) {
			fmt.Fprintln(p.Err, p.Colors.NG("%s", err))
			return cli.ExitCodeErr(1)
		}
		return err
	}
	log.Debug("parsed", "moves", seq.Score())

	res := verify.Verify(inst, seq)
	return reportResult(p, inst, res)
}

func solution(cfg *CheckConfig, inst *puzzle.Instance, args []string) (moves.Sequence, error) {
	if cfg.Prior {
		if inst.Prior == nil {
			return nil, fmt.Errorf("%s: %w", args[0], errNoPrior)
		}
		return moves.Sequence(inst.Prior), nil
	}
	return moves.ReadFile(args[1], inst)
}

func reportResult(p *report.Printer, inst *puzzle.Instance, res *verify.Result) error {
	if err := p.Result(inst, res); err != nil {
		return err
	}
	if !res.Valid {
		return cli.ExitCodeErr(1)
	}
	return nil
}
