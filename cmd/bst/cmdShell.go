package main

import (
	"context"
	"flag"
	"log"
	"os"

	"github.com/fatih/color"
	"github.com/google/subcommands"

	"github.com/oahshtsua/lab/bst/internal/journal"
	"github.com/oahshtsua/lab/bst/internal/shell"
	"github.com/oahshtsua/lab/bst/internal/store"
)

type cmdShell struct {
	journalPath string
	noColor     bool
}

func (cmd *cmdShell) Name() string     { return "shell" }
func (cmd *cmdShell) Synopsis() string { return "run the interactive tree menu" }
func (cmd *cmdShell) Usage() string {
	return "shell [-journal path] [-no-color]\n"
}

func (cmd *cmdShell) SetFlags(f *flag.FlagSet) {
	f.StringVar(&cmd.journalPath, "journal", "", "append mutations to this JSON lines file")
	f.BoolVar(&cmd.noColor, "no-color", false, "disable coloured output")
}

func (cmd *cmdShell) Execute(_ context.Context,
	f *flag.FlagSet,
	args ...interface{}) subcommands.ExitStatus {
	j, err := openJournal(cmd.journalPath)
	if err != nil {
		log.Println(err)
		return subcommands.ExitFailure
	}

	sess := shell.NewSession(store.NewTreeStore(j), os.Stdin, color.Output, shell.Options{
		NoColor: cmd.noColor || color.NoColor,
	})
	runErr := sess.Run()
	if err := closeJournal(j); err != nil {
		color.Red("journal: %v", err)
		return subcommands.ExitFailure
	}
	if runErr != nil {
		log.Println(runErr)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

// closeJournal flushes j and reports the write error that stopped it, if any.
func closeJournal(j journal.Journal) error {
	closeErr := j.Close()
	select {
	case err := <-j.Err():
		if err != nil {
			return err
		}
	default:
	}
	return closeErr
}

// openJournal returns a running journal, or a no-op one when path is empty.
func openJournal(path string) (journal.Journal, error) {
	if path == "" {
		return journal.Nop{}, nil
	}
	j, err := journal.NewFileJournal(path)
	if err != nil {
		return nil, err
	}
	j.Run()
	log.Printf("Journal session %s writing to %s", j.Session(), path)
	return j, nil
}
