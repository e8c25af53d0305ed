package susyplot

import (
	"errors"
	"strings"
)

// Config holds every input of a Run. DefaultConfig reproduces the leading
// jet p_T plot of the susy ntuple.
type Config struct {
	Input  string
	Tree   string
	Column string

	Output    string
	HistName  string
	HistTitle string // ROOT style: "title;x label;y label"
	NBins     int
	Low, High float64

	Scale         float64
	ProgressEvery int64
	Chunk         int64

	Plot string // optional image file; empty disables plotting
}

func DefaultConfig() Config {
	return Config{
		Tree:          "susy",
		Column:        "jet_AntiKt4LCTopo_pt",
		Output:        "output.root",
		HistName:      "jet_pt_0",
		HistTitle:     ";Leading Jet P_{T} (GeV);Entries (per bin)",
		NBins:         100,
		Low:           0,
		High:          1000,
		Scale:         1e-3,
		ProgressEvery: 1000,
		Chunk:         10000,
	}
}

func (c Config) Validate() error {
	switch {
	case c.Input == "":
		return errors.New("no input file")
	case c.Tree == "":
		return errors.New("empty tree name")
	case c.Column == "":
		return errors.New("empty branch name")
	case c.Output == "":
		return errors.New("empty output path")
	case c.HistName == "":
		return errors.New("empty histogram name")
	case c.NBins <= 0:
		return errors.New("number of bins must be positive")
	case c.High <= c.Low:
		return errors.New("histogram range is empty")
	case c.ProgressEvery <= 0:
		return errors.New("progress interval must be positive")
	case c.Chunk <= 0:
		return errors.New("chunk size must be positive")
	}
	return nil
}

// XLabel and YLabel extract the axis titles from HistTitle.
func (c Config) XLabel() string { return titleField(c.HistTitle, 1) }
func (c Config) YLabel() string { return titleField(c.HistTitle, 2) }

func titleField(title string, i int) string {
	fields := strings.Split(title, ";")
	if i >= len(fields) {
		return ""
	}
	return fields[i]
}
