package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"slices"
	"strconv"

	"github.com/google/subcommands"

	"github.com/oahshtsua/lab/bst/internal/shell"
	"github.com/oahshtsua/lab/bst/internal/tree"
)

type cmdTraverse struct {
	order    string
	balanced bool
}

func (cmd *cmdTraverse) Name() string     { return "traverse" }
func (cmd *cmdTraverse) Synopsis() string { return "insert keys and print a traversal" }
func (cmd *cmdTraverse) Usage() string {
	return "traverse [-order in|pre|post] [-balanced] KEY...\n"
}

func (cmd *cmdTraverse) SetFlags(f *flag.FlagSet) {
	f.StringVar(&cmd.order, "order", "in", "traversal order: in, pre or post")
	f.BoolVar(&cmd.balanced, "balanced", false, "build a height-balanced tree from the sorted keys instead of inserting them in order")
}

func (cmd *cmdTraverse) Execute(_ context.Context,
	f *flag.FlagSet,
	args ...interface{}) subcommands.ExitStatus {
	out, height, err := traverseKeys(cmd.order, cmd.balanced, f.Args())
	if err != nil {
		log.Println(err)
		return subcommands.ExitUsageError
	}
	fmt.Println(out)
	log.Printf("Tree height: %d", height)
	return subcommands.ExitSuccess
}

// traverseKeys returns the traversal of the keys in args and the height of
// the tree they formed.
func traverseKeys(orderName string, balanced bool, args []string) (string, int, error) {
	order, err := tree.ParseOrder(orderName)
	if err != nil {
		return "", 0, err
	}

	keys := make([]int, 0, len(args))
	for _, arg := range args {
		key, err := strconv.Atoi(arg)
		if err != nil {
			return "", 0, fmt.Errorf("invalid key %q: %w", arg, err)
		}
		keys = append(keys, key)
	}

	var t *tree.Tree
	if balanced {
		slices.Sort(keys)
		t = tree.Build(keys)
	} else {
		t = tree.New()
		for _, key := range keys {
			t.Insert(key)
		}
	}
	return shell.FormatKeys(t.Traverse(order)), t.Height(), nil
}
