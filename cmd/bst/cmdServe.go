package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/subcommands"
	"golang.org/x/sync/errgroup"

	"github.com/oahshtsua/lab/bst/internal/api"
	"github.com/oahshtsua/lab/bst/internal/store"
)

type cmdServe struct {
	port        int
	journalPath string
}

func (cmd *cmdServe) Name() string     { return "serve" }
func (cmd *cmdServe) Synopsis() string { return "serve the tree over HTTP" }
func (cmd *cmdServe) Usage() string {
	return "serve [-port 5000] [-journal path]\n"
}

func (cmd *cmdServe) SetFlags(f *flag.FlagSet) {
	f.IntVar(&cmd.port, "port", 5000, "HTTP port to listen on")
	f.StringVar(&cmd.journalPath, "journal", "", "append mutations to this JSON lines file")
}

func (cmd *cmdServe) Execute(ctx context.Context,
	f *flag.FlagSet,
	args ...interface{}) subcommands.ExitStatus {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	j, err := openJournal(cmd.journalPath)
	if err != nil {
		log.Println(err)
		return subcommands.ExitFailure
	}
	defer j.Close()

	app := api.Application{Store: store.NewTreeStore(j)}
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cmd.port),
		Handler: app.Routes(),
	}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Printf("Starting server on port: %d", cmd.port)
		if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})
	g.Go(func() error {
		select {
		case err := <-j.Err():
			return fmt.Errorf("journal: %w", err)
		case <-ctx.Done():
			return nil
		}
	})

	if err := g.Wait(); err != nil {
		log.Println(err)
		return subcommands.ExitFailure
	}
	log.Println("Server stopped")
	return subcommands.ExitSuccess
}
