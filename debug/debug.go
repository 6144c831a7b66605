package debug

import (
	"os"
	"strconv"
)

type debug struct {
	Load  bool
	Parse bool
	Apply bool
	Batch bool
}

var d *debug

func init() {
	d = &debug{}
	d.Load = boolEnv("PERMCHECK_DEBUG_LOAD")
	d.Parse = boolEnv("PERMCHECK_DEBUG_PARSE")
	d.Apply = boolEnv("PERMCHECK_DEBUG_APPLY")
	d.Batch = boolEnv("PERMCHECK_DEBUG_BATCH")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Load() bool {
	return d.Load
}
func Parse() bool {
	return d.Parse
}
func Apply() bool {
	return d.Apply
}
func Batch() bool {
	return d.Batch
}
