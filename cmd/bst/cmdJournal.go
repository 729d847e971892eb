package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/google/subcommands"

	"github.com/oahshtsua/lab/bst/internal/journal"
)

type cmdJournal struct {
}

func (cmd *cmdJournal) Name() string     { return "journal" }
func (cmd *cmdJournal) Synopsis() string { return "print the events of a journal file" }
func (cmd *cmdJournal) Usage() string {
	return "journal FILE\n"
}

func (cmd *cmdJournal) SetFlags(f *flag.FlagSet) {
}

func (cmd *cmdJournal) Execute(_ context.Context,
	f *flag.FlagSet,
	args ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		f.Usage()
		return subcommands.ExitUsageError
	}

	file, err := os.Open(f.Arg(0))
	if err != nil {
		log.Println(err)
		return subcommands.ExitFailure
	}
	defer file.Close()

	n, err := dumpJournal(file, os.Stdout)
	if err != nil {
		log.Printf("Journal is invalid after %d events: %v", n, err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

// dumpJournal writes one line per event in r to w and returns how many
// events were read before the journal ended or proved invalid.
func dumpJournal(r io.Reader, w io.Writer) (int, error) {
	events, errors := journal.ReadEvents(r)

	var err error
	count := 0
	event, ok := journal.Event{}, true
	for ok && err == nil {
		select {
		case err, ok = <-errors:
		case event, ok = <-events:
			if ok {
				count++
				fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%d\n",
					event.Sequence, event.Time.Format(time.RFC3339), event.Session, event.Type, event.Key)
			}
		}
	}
	return count, err
}
