package susyplot_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/decibelcooper/susyplot"
)

func TestDefaultConfig(t *testing.T) {
	cfg := susyplot.DefaultConfig()
	assert.Error(t, cfg.Validate(), "no input")

	cfg.Input = "input.root"
	assert.NoError(t, cfg.Validate())
	assert.Equal(t, "Leading Jet P_{T} (GeV)", cfg.XLabel())
	assert.Equal(t, "Entries (per bin)", cfg.YLabel())
}

func TestConfigValidate(t *testing.T) {
	for name, mod := range map[string]func(*susyplot.Config){
		"tree":     func(c *susyplot.Config) { c.Tree = "" },
		"column":   func(c *susyplot.Config) { c.Column = "" },
		"output":   func(c *susyplot.Config) { c.Output = "" },
		"hist":     func(c *susyplot.Config) { c.HistName = "" },
		"nbins":    func(c *susyplot.Config) { c.NBins = -1 },
		"range":    func(c *susyplot.Config) { c.Low, c.High = 5, 5 },
		"progress": func(c *susyplot.Config) { c.ProgressEvery = 0 },
		"chunk":    func(c *susyplot.Config) { c.Chunk = 0 },
	} {
		cfg := susyplot.DefaultConfig()
		cfg.Input = "input.root"
		mod(&cfg)
		assert.Error(t, cfg.Validate(), name)
	}
}

func TestConfigLabelsWithoutAxes(t *testing.T) {
	cfg := susyplot.Config{HistTitle: "plain title"}
	assert.Empty(t, cfg.XLabel())
	assert.Empty(t, cfg.YLabel())
}
