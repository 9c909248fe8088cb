package cmd

import (
	"fmt"
	"io"
	"strconv"

	"github.com/min1324/container/logger"
)

func printInt(w io.Writer, v int) {
	fmt.Fprintf(w, "%d ", v)
}

// parseInts converts the positional arguments of a subcommand.
func parseInts(args []string) ([]int, error) {
	vals := make([]int, 0, len(args))
	for _, arg := range args {
		v, err := strconv.Atoi(arg)
		if err != nil {
			return nil, fmt.Errorf("invalid argument %q: %w", arg, err)
		}
		vals = append(vals, v)
	}
	return vals, nil
}

// setup reads the configuration and builds the logger it asks for.
func setup() (*Config, *logger.ZapLogger, error) {
	config, err := ReadConfig()
	if err != nil {
		return nil, nil, err
	}
	log, err := logger.NewLogger(config.Log.Format, config.Log.Level)
	if err != nil {
		return nil, nil, err
	}
	return config, log, nil
}

type printer interface {
	Print(w io.Writer) error
}

// state writes "label: e1 e2 ...\n" using the print function of p.
func state(w io.Writer, label string, p printer) error {
	fmt.Fprintf(w, "%s: ", label)
	if err := p.Print(w); err != nil {
		return err
	}
	fmt.Fprintln(w)
	return nil
}
