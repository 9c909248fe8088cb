package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/min1324/container"
	"github.com/min1324/container/list"
)

// NewListCommand returns the command that loads its arguments into a list
// and runs unique, remove-if, sort and reverse over it.
func NewListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list [int...]",
		Short: "Load the arguments into a list and reorder them",
		RunE:  runList,
	}
}

func isEven(v int) bool {
	return v%2 == 0
}

func runList(cmd *cobra.Command, args []string) error {
	vals, err := parseInts(args)
	if err != nil {
		return err
	}
	_, log, err := setup()
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	l := list.New(
		container.WithPrint[int](printInt),
		container.WithLogger[int](log),
	)
	if err := l.FromSlice(vals); err != nil {
		return err
	}
	log.Info("list created", zap.Int("size", l.Size()))

	w := cmd.OutOrStdout()
	if err := state(w, "list", l); err != nil {
		return err
	}
	if front, err := l.Front(); err == nil {
		back, _ := l.Back()
		fmt.Fprintf(w, "front: %d, back: %d\n", front, back)
	}

	n, err := l.Unique()
	if err != nil {
		return err
	}
	log.Debug("duplicates removed", zap.Int("removed", n))
	if err := state(w, "unique", l); err != nil {
		return err
	}

	n, err = l.RemoveIf(isEven)
	if err != nil {
		return err
	}
	log.Debug("even elements removed", zap.Int("removed", n))
	if err := state(w, "remove even", l); err != nil {
		return err
	}

	if err := l.Sort(container.Compare[int], container.Ascending); err != nil {
		return err
	}
	if err := state(w, "sort ascending", l); err != nil {
		return err
	}
	if err := l.Sort(container.Compare[int], container.Descending); err != nil {
		return err
	}
	if err := state(w, "sort descending", l); err != nil {
		return err
	}
	l.Reverse()
	if err := state(w, "reverse", l); err != nil {
		return err
	}

	return l.Destroy()
}
