package commands

import (
	"bytes"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/Lgeu/santa23/kaggle"
	"github.com/Lgeu/santa23/moves"
	"github.com/Lgeu/santa23/puzzle"
	"github.com/scott-cotton/cli"
)

type ConvertConfig struct {
	*MainConfig
	Puzzles string `cli:"name=puzzles desc='path of puzzles.csv'"`
	Info    string `cli:"name=info desc='path of puzzle_info.csv'"`
	Where   string `cli:"name=where desc='expression over id, type, n, w selecting puzzles'"`
	Merge   string `cli:"name=merge desc='directory of solutions to merge into the instances'"`

	Convert *cli.Command
}

func ConvertCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ConvertConfig{
		MainConfig: mainCfg,
		Puzzles:    "puzzles.csv",
		Info:       "puzzle_info.csv",
	}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Convert, "convert").
		WithSynopsis("convert [-puzzles f] [-info f] [-where expr] [-merge dir] <outdir>").
		WithDescription("write one instance file per puzzle of puzzles.csv").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return convert(cfg, cc, args)
		})
}

func convert(cfg *ConvertConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Convert.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 1 {
		return fmt.Errorf("%w: convert requires 1 arg, got %v", cli.ErrUsage, args)
	}
	filter, err := kaggle.NewFilter(cfg.Where)
	if err != nil {
		return fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	puzzles, err := kaggle.LoadPuzzles(cfg.Puzzles)
	if err != nil {
		return err
	}
	info, err := kaggle.LoadInfo(cfg.Info)
	if err != nil {
		return err
	}
	n, err := convertPuzzles(cfg.log(cc), puzzles, info, filter, cfg.Merge, args[0])
	if err != nil {
		return err
	}
	fmt.Fprintf(cc.Out, "wrote %d instances to %s\n", n, args[0])
	return nil
}

// convertPuzzles writes the selected puzzles as instance files in outDir,
// merging the solution of the same name from mergeDir when it is set.
func convertPuzzles(log *slog.Logger, puzzles []kaggle.Puzzle, info kaggle.Info, filter *kaggle.Filter, mergeDir, outDir string) (int, error) {
	if err := os.MkdirAll(outDir, 0755); err != nil {
		return 0, fmt.Errorf("failed to create directory: %w", err)
	}
	n := 0
	for i := range puzzles {
		p := &puzzles[i]
		ok, err := filter.Match(p, "")
		if err != nil {
			return n, err
		}
		if !ok {
			continue
		}
		inst, err := p.Instance(info)
		if err != nil {
			return n, err
		}
		name := kaggle.FileName(p.ID)
		buf := bytes.NewBuffer(nil)
		if mergeDir == "" {
			err = puzzle.Write(buf, inst)
		} else {
			var seq moves.Sequence
			seq, err = moves.ReadFile(filepath.Join(mergeDir, name), inst)
			if err != nil {
				return n, fmt.Errorf("puzzle %d: %w", p.ID, err)
			}
			err = puzzle.WriteMerged(buf, inst, seq)
		}
		if err != nil {
			return n, err
		}
		if err := os.WriteFile(filepath.Join(outDir, name), buf.Bytes(), 0644); err != nil {
			return n, err
		}
		log.Debug("wrote", "id", p.ID, "type", p.Type, "n", inst.N, "m", inst.M)
		n++
	}
	return n, nil
}
