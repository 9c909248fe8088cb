package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/min1324/container"
	"github.com/min1324/container/queue"
)

// NewQueueCommand returns the command that enqueues its arguments
// and dequeues them again.
func NewQueueCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "queue [int...]",
		Short: "Enqueue the arguments and dequeue them again",
		RunE:  runQueue,
	}
}

func runQueue(cmd *cobra.Command, args []string) error {
	vals, err := parseInts(args)
	if err != nil {
		return err
	}
	config, log, err := setup()
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	q, err := queue.New(config.Capacity, config.GrowThreshold, config.ShrinkThreshold,
		container.WithPrint[int](printInt),
		container.WithLogger[int](log),
	)
	if err != nil {
		return err
	}
	log.Info("queue created", zap.Int("capacity", q.Cap()))

	w := cmd.OutOrStdout()
	for _, v := range vals {
		if err := q.Enqueue(v); err != nil {
			return err
		}
	}
	if err := state(w, "queue", q); err != nil {
		return err
	}
	fmt.Fprintf(w, "size: %d, capacity: %d\n", q.Size(), q.Cap())

	if front, err := q.Front(); err == nil {
		back, _ := q.Back()
		fmt.Fprintf(w, "front: %d, back: %d\n", front, back)
	}
	for !q.Empty() {
		v, err := q.Dequeue()
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "dequeue: %d\n", v)
	}
	fmt.Fprintf(w, "size: %d, capacity: %d\n", q.Size(), q.Cap())

	return q.Destroy(container.FlagFreeData)
}
