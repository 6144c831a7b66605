package report

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

type Colors struct {
	OK      func(string, ...any) string
	NG      func(string, ...any) string
	Info    func(string, ...any) string
	Deleted func(string, ...any) string
	Added   func(string, ...any) string
}

func NewColors() *Colors {
	return &Colors{
		OK:      color.New(color.Bold, color.FgGreen).SprintfFunc(),
		NG:      color.New(color.Bold, color.FgRed).SprintfFunc(),
		Info:    color.New(color.Bold, color.FgBlue).SprintfFunc(),
		Deleted: color.New(color.FgRed).SprintfFunc(),
		Added:   color.New(color.FgGreen).SprintfFunc(),
	}
}

// NoColors formats without escape sequences.
func NoColors() *Colors {
	return &Colors{
		OK:      fmt.Sprintf,
		NG:      fmt.Sprintf,
		Info:    fmt.Sprintf,
		Deleted: fmt.Sprintf,
		Added:   fmt.Sprintf,
	}
}

// ColorsFor picks colours for w. A non-nil force overrides terminal
// detection.
func ColorsFor(w io.Writer, force *bool) *Colors {
	if force != nil {
		if *force {
			// fatih/color disables itself when stdout is not a terminal
			color.NoColor = false
			return NewColors()
		}
		return NoColors()
	}
	f, ok := w.(*os.File)
	if !ok {
		return NoColors()
	}
	if isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd()) {
		return NewColors()
	}
	return NoColors()
}
