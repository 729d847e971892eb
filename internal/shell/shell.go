// Package shell implements the interactive text menu over a tree store.
package shell

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"

	"github.com/oahshtsua/lab/bst/internal/store"
	"github.com/oahshtsua/lab/bst/internal/tree"
)

const menu = `
---------- * MENU * ----------
	1. Insert
	2. Remove
	3. Search
	4. Print in-order
	5. Print pre-order
	6. Print post-order
	7. Check structure
	8. Print min/max/height
	0. Exit

Choose an option: `

const footer = "\n-----------------------------------------\n\n"

var errInvalidInput = errors.New("invalid input")

type Options struct {
	NoColor bool
}

// Session runs the menu loop for one user. Input is read as whitespace
// separated tokens, so an option and its argument may share a line.
type Session struct {
	store store.Store
	in    *bufio.Scanner
	out   io.Writer

	found    *color.Color
	notFound *color.Color
	failure  *color.Color
}

func NewSession(s store.Store, in io.Reader, out io.Writer, opts Options) *Session {
	scanner := bufio.NewScanner(in)
	scanner.Split(bufio.ScanWords)

	sess := &Session{
		store:    s,
		in:       scanner,
		out:      out,
		found:    color.New(color.FgGreen),
		notFound: color.New(color.FgYellow),
		failure:  color.New(color.FgRed),
	}
	if opts.NoColor {
		for _, c := range []*color.Color{sess.found, sess.notFound, sess.failure} {
			c.DisableColor()
		}
	}
	return sess
}

// readInt returns io.EOF once the input is exhausted.
func (s *Session) readInt() (int, error) {
	if !s.in.Scan() {
		if err := s.in.Err(); err != nil {
			return 0, err
		}
		return 0, io.EOF
	}
	v, err := strconv.Atoi(s.in.Text())
	if err != nil {
		return 0, errInvalidInput
	}
	return v, nil
}

// Run serves the menu until the user picks 0 or the input ends.
func (s *Session) Run() error {
	for {
		fmt.Fprint(s.out, menu)
		option, err := s.readInt()
		switch {
		case errors.Is(err, io.EOF):
			fmt.Fprintln(s.out)
			return nil
		case errors.Is(err, errInvalidInput):
			s.failure.Fprintln(s.out, "Invalid input.")
			continue
		case err != nil:
			return err
		}

		switch option {
		case 0:
			fmt.Fprintln(s.out, "Exiting.")
			return nil
		case 1:
			err = s.insert()
		case 2:
			err = s.remove()
		case 3:
			err = s.search()
		case 4:
			err = s.traverse(tree.InOrder)
		case 5:
			err = s.traverse(tree.PreOrder)
		case 6:
			err = s.traverse(tree.PostOrder)
		case 7:
			s.check()
		case 8:
			s.bounds()
		default:
			s.failure.Fprintln(s.out, "Invalid option. Try again.")
		}

		switch {
		case errors.Is(err, io.EOF):
			fmt.Fprintln(s.out)
			return nil
		case errors.Is(err, errInvalidInput):
			s.failure.Fprintln(s.out, "Invalid input.")
		case err != nil:
			return err
		}
	}
}

func (s *Session) prompt(action string) (int, error) {
	fmt.Fprintf(s.out, "\nEnter the key to %s: ", action)
	return s.readInt()
}

func (s *Session) insert() error {
	key, err := s.prompt("insert")
	if err != nil {
		return err
	}
	if err := s.store.Insert(key); err != nil {
		s.failure.Fprintf(s.out, "Error inserting key %d: %v\n", key, err)
	}
	return nil
}

func (s *Session) remove() error {
	key, err := s.prompt("remove")
	if err != nil {
		return err
	}
	err = s.store.Delete(key)
	switch {
	case errors.Is(err, store.ErrKeyNotFound):
		s.notFound.Fprintf(s.out, "Key %d not found in tree.\n", key)
	case err != nil:
		s.failure.Fprintf(s.out, "Error removing key %d: %v\n", key, err)
	default:
		fmt.Fprintf(s.out, "Key %d removed.\n", key)
	}
	return nil
}

func (s *Session) search() error {
	key, err := s.prompt("search")
	if err != nil {
		return err
	}
	found, err := s.store.Search(key)
	if err != nil {
		s.failure.Fprintf(s.out, "Error searching key %d: %v\n", key, err)
		return nil
	}
	if s.store.Len() == 0 {
		fmt.Fprintln(s.out, "\nEmpty tree.")
	}
	if found {
		s.found.Fprintf(s.out, "\n\tKey %d - FOUND\n", key)
	} else {
		s.notFound.Fprintf(s.out, "\n\tKey %d - NOT FOUND\n", key)
	}
	return nil
}

func (s *Session) traverse(order tree.Order) error {
	keys, err := s.store.Traverse(order)
	if err != nil {
		s.failure.Fprintf(s.out, "Error traversing tree: %v\n", err)
		return nil
	}

	fmt.Fprintf(s.out, "\n\n---------- %s ----------\n", strings.ToUpper(order.String()))
	if len(keys) == 0 {
		fmt.Fprintln(s.out, "\nEmpty tree.")
	}
	fmt.Fprint(s.out, FormatKeys(keys))
	fmt.Fprint(s.out, footer)
	return nil
}

func (s *Session) check() {
	if err := s.store.Validate(); err != nil {
		s.failure.Fprintf(s.out, "Tree is corrupt: %v\n", err)
		return
	}
	s.found.Fprintf(s.out, "Tree is consistent (%d nodes).\n", s.store.Len())
}

func (s *Session) bounds() {
	lo, hi, ok := s.store.Bounds()
	if !ok {
		fmt.Fprintln(s.out, "\nEmpty tree.")
		return
	}
	fmt.Fprintf(s.out, "Min: %d  Max: %d  Height: %d\n", lo, hi, s.store.Height())
}

// FormatKeys renders keys separated by single spaces.
func FormatKeys(keys []int) string {
	parts := make([]string, len(keys))
	for i, key := range keys {
		parts[i] = strconv.Itoa(key)
	}
	return strings.Join(parts, " ")
}
