package main

import (
	"context"
	"flag"
	"os"

	"github.com/google/subcommands"
)

func main() {
	subcommands.Register(subcommands.HelpCommand(), "")
	subcommands.Register(subcommands.FlagsCommand(), "")
	subcommands.Register(&cmdShell{}, "")
	subcommands.Register(&cmdTraverse{}, "")
	subcommands.Register(&cmdServe{}, "")
	subcommands.Register(&cmdTcp{}, "")
	subcommands.Register(&cmdJournal{}, "")
	flag.Parse()
	ctx := context.Background()
	os.Exit(int(subcommands.Execute(ctx)))
}
