package main

import (
	"context"

	"github.com/Lgeu/santa23/cmd/permcheck/commands"
	"github.com/scott-cotton/cli"
)

func main() {
	cli.MainContext(context.Background(), commands.Root())
}
