package commands

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/Lgeu/santa23/kaggle"
	"github.com/scott-cotton/cli"
)

type CollectConfig struct {
	*MainConfig
	Collect *cli.Command
}

func CollectCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &CollectConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Collect, "collect").
		WithSynopsis("collect <dir>").
		WithDescription("write a submission.csv built from the NNNN.txt solutions in dir").
		WithRun(func(cc *cli.Context, args []string) error {
			return collect(cfg, cc, args)
		})
}

func collect(cfg *CollectConfig, cc *cli.Context, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("%w: collect requires 1 arg, got %v", cli.ErrUsage, args)
	}
	entries, err := collectDir(args[0])
	if err != nil {
		return err
	}
	cfg.log(cc).Debug("collected", "dir", args[0], "solutions", len(entries))
	return kaggle.WriteSubmission(cc.Out, entries)
}

// collectDir reads the first line of every solution file in dir, ordered
// by puzzle id. Other files are ignored.
func collectDir(dir string) ([]kaggle.Entry, error) {
	des, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	var res []kaggle.Entry
	for _, de := range des {
		if de.IsDir() {
			continue
		}
		id, ok := kaggle.ParseFileName(de.Name())
		if !ok {
			continue
		}
		line, err := firstLine(filepath.Join(dir, de.Name()))
		if err != nil {
			return nil, err
		}
		res = append(res, kaggle.Entry{ID: id, Moves: line})
	}
	sort.Slice(res, func(i, j int) bool {
		return res[i].ID < res[j].ID
	})
	return res, nil
}

func firstLine(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()
	sc := bufio.NewScanner(f)
	sc.Buffer(nil, 64<<20)
	if !sc.Scan() {
		return "", sc.Err()
	}
	return strings.TrimRight(sc.Text(), " \t\r"), nil
}
