package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/subcommands"

	"github.com/oahshtsua/lab/bst/internal/shell"
	"github.com/oahshtsua/lab/bst/internal/store"
)

type cmdTcp struct {
	port int
}

func (cmd *cmdTcp) Name() string     { return "tcp" }
func (cmd *cmdTcp) Synopsis() string { return "serve the interactive menu over TCP" }
func (cmd *cmdTcp) Usage() string {
	return "tcp [-port 20081]\n"
}

func (cmd *cmdTcp) SetFlags(f *flag.FlagSet) {
	f.IntVar(&cmd.port, "port", 20081, "Network port to listen on")
}

func (cmd *cmdTcp) Execute(ctx context.Context,
	f *flag.FlagSet,
	args ...interface{}) subcommands.ExitStatus {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv := &shell.Server{Store: store.NewTreeStore(nil)}
	if err := srv.ListenAndServe(ctx, fmt.Sprintf(":%d", cmd.port)); err != nil {
		log.Println("Unable to serve:", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
