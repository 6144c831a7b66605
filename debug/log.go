package debug

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
)

var out io.Writer = os.Stderr

// Logf writes a debug line to stderr. Labelings ([]int) are rendered as
// JSON arrays.
func Logf(msg string, args ...any) {
	for i, a := range args {
		xs, ok := a.([]int)
		if !ok {
			continue
		}
		d, err := json.Marshal(xs)
		if err != nil {
			continue
		}
		args[i] = string(d)
	}
	fmt.Fprintf(out, msg, args...)
}
