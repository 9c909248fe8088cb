package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/min1324/container"
	"github.com/min1324/container/stack"
)

// NewStackCommand returns the command that pushes its arguments onto a stack
// and pops them back off.
func NewStackCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "stack [int...]",
		Short: "Push the arguments onto a stack and pop them back",
		RunE:  runStack,
	}
}

func runStack(cmd *cobra.Command, args []string) error {
	vals, err := parseInts(args)
	if err != nil {
		return err
	}
	config, log, err := setup()
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	s, err := stack.New(config.Capacity, config.GrowThreshold, config.ShrinkThreshold,
		container.WithPrint[int](printInt),
		container.WithLogger[int](log),
	)
	if err != nil {
		return err
	}
	log.Info("stack created", zap.Int("capacity", s.Cap()))

	w := cmd.OutOrStdout()
	for _, v := range vals {
		if err := s.Push(v); err != nil {
			return err
		}
	}
	if err := state(w, "stack", s); err != nil {
		return err
	}
	fmt.Fprintf(w, "size: %d, capacity: %d\n", s.Size(), s.Cap())

	if top, err := s.Peek(); err == nil {
		fmt.Fprintf(w, "peek: %d\n", top)
	}
	for !s.Empty() {
		v, err := s.Pop()
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "pop: %d\n", v)
	}
	fmt.Fprintf(w, "size: %d, capacity: %d\n", s.Size(), s.Cap())

	return s.Destroy(container.FlagFreeData)
}
