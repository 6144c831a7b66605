package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/Lgeu/santa23/kaggle"
	"github.com/scott-cotton/cli"
)

type SplitConfig struct {
	*MainConfig
	Split *cli.Command
}

func SplitCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &SplitConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Split, "split").
		WithSynopsis("split <submission.csv> <dir>").
		WithDescription("write one NNNN.txt solution file per row of a submission").
		WithRun(func(cc *cli.Context, args []string) error {
			return split(cfg, cc, args)
		})
}

func split(cfg *SplitConfig, cc *cli.Context, args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("%w: split requires 2 args, got %v", cli.ErrUsage, args)
	}
	entries, err := kaggle.LoadSubmission(args[0])
	if err != nil {
		return err
	}
	if err := splitEntries(entries, args[1]); err != nil {
		return err
	}
	cfg.log(cc).Debug("split", "submission", args[0], "solutions", len(entries))
	return nil
}

func splitEntries(entries []kaggle.Entry, dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}
	for _, e := range entries {
		path := filepath.Join(dir, kaggle.FileName(e.ID))
		if err := os.WriteFile(path, []byte(e.Moves+"\n"), 0644); err != nil {
			return err
		}
	}
	return nil
}
