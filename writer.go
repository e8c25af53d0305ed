package susyplot

import (
	"fmt"

	"go-hep.org/x/hep/groot"
	"go-hep.org/x/hep/groot/rhist"
)

// WriteROOT writes the histogram held by acc, as a TH1F under its own name,
// into a new ROOT file at path. An existing file is overwritten.
func WriteROOT(path string, acc *Accumulator) error {
	f, err := groot.Create(path)
	if err != nil {
		return fmt.Errorf("creating %q: %w", path, err)
	}

	if err := f.Put(acc.Name(), rhist.NewH1FFrom(acc.H1D())); err != nil {
		f.Close()
		return fmt.Errorf("writing %q to %q: %w", acc.Name(), path, err)
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("closing %q: %w", path, err)
	}
	return nil
}
