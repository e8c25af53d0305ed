package susyplot

import (
	"fmt"

	"go-hep.org/x/hep/hplot"
	"gonum.org/v1/plot/vg"
)

// SavePlot draws acc to path. The image format follows the file extension.
func SavePlot(path string, acc *Accumulator, xlabel, ylabel string) error {
	p := hplot.New()
	p.X.Label.Text = xlabel
	p.Y.Label.Text = ylabel
	p.X.Tick.Marker = PreciseTicks{NSuggestedTicks: 5}
	p.Y.Tick.Marker = PreciseTicks{NSuggestedTicks: 5}

	h := hplot.NewH1D(acc.H1D())
	h.Infos.Style = hplot.HInfoSummary
	p.Add(h)

	if err := p.Save(6*vg.Inch, 4*vg.Inch, path); err != nil {
		return fmt.Errorf("saving plot %q: %w", path, err)
	}
	return nil
}
