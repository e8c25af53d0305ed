package susyplot

import (
	"fmt"
	"io"

	"github.com/magneticio/go-common/logging"
)

// Run fills the histogram described by cfg from the first value of
// cfg.Column in every event, scaled by cfg.Scale, and writes it to
// cfg.Output. Events with an empty column contribute nothing. A progress
// line is written to progress every cfg.ProgressEvery events.
//
// Nothing is written if the input file, tree or branch cannot be resolved.
func Run(cfg Config, progress io.Writer) (*Accumulator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	ds, err := Open(cfg.Input, cfg.Tree)
	if err != nil {
		return nil, err
	}
	defer ds.Close()

	col, err := ds.Bind(cfg.Column, cfg.Chunk)
	if err != nil {
		return nil, err
	}

	acc := NewAccumulator(cfg.HistName, cfg.HistTitle, cfg.NBins, cfg.Low, cfg.High)

	n := ds.Entries()
	for i := int64(0); i < n; i++ {
		if i%cfg.ProgressEvery == 0 {
			fmt.Fprintf(progress, "Event %d\n", i)
		}

		if err := col.Fetch(i); err != nil {
			return nil, err
		}

		if len(col.Values) > 0 {
			acc.Add(float64(col.Values[0]) * cfg.Scale)
		}
	}
	logging.Info("%d events, %d entries (%d underflow, %d overflow)\n",
		n, acc.Entries(), acc.Underflow(), acc.Overflow())

	if err := WriteROOT(cfg.Output, acc); err != nil {
		return nil, err
	}
	logging.Info("wrote %s to %s\n", acc.Name(), cfg.Output)

	if cfg.Plot != "" {
		if err := SavePlot(cfg.Plot, acc, cfg.XLabel(), cfg.YLabel()); err != nil {
			return nil, err
		}
		logging.Info("wrote plot to %s\n", cfg.Plot)
	}

	return acc, nil
}
