package susyplot

import (
	"go-hep.org/x/hep/hbook"
)

// Accumulator is a named fixed binning 1D histogram. Samples outside
// [low, high) are counted in the underflow and overflow distributions.
type Accumulator struct {
	h *hbook.H1D
}

func NewAccumulator(name, title string, nbins int, low, high float64) *Accumulator {
	h := hbook.NewH1D(nbins, low, high)
	h.Annotation()["name"] = name
	h.Annotation()["title"] = title
	return &Accumulator{h: h}
}

func (a *Accumulator) Add(v float64) {
	a.h.Fill(v, 1)
}

func (a *Accumulator) Name() string { return a.h.Name() }

// Entries counts every sample added, in range or not.
func (a *Accumulator) Entries() int64 { return a.h.Entries() }

// Len returns the number of in-range bins.
func (a *Accumulator) Len() int { return a.h.Len() }

// Bin returns the number of entries of the in-range bin i.
func (a *Accumulator) Bin(i int) int64 { return a.h.Binning.Bins[i].Entries() }

func (a *Accumulator) Underflow() int64 { return a.h.Binning.Underflow().Entries() }

func (a *Accumulator) Overflow() int64 { return a.h.Binning.Overflow().Entries() }

// H1D returns the underlying histogram.
func (a *Accumulator) H1D() *hbook.H1D { return a.h }
