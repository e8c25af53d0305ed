package susyplot_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/decibelcooper/susyplot"
)

func TestPreciseTicks(t *testing.T) {
	ticks := susyplot.PreciseTicks{NSuggestedTicks: 5}.Ticks(0, 1000)

	var labels []string
	for _, tk := range ticks {
		assert.True(t, tk.Value >= 0 && tk.Value <= 1000, "tick %v out of range", tk.Value)
		if tk.Label != "" {
			labels = append(labels, tk.Label)
		}
	}
	assert.Equal(t, []string{"0", "200", "400", "600", "800", "1000"}, labels)
	assert.Greater(t, len(ticks), len(labels))
}

func TestPreciseTicksNoRepeats(t *testing.T) {
	ticks := susyplot.PreciseTicks{}.Ticks(-3, 7)

	seen := make(map[float64]bool)
	for _, tk := range ticks {
		assert.False(t, seen[tk.Value], "tick %v repeated", tk.Value)
		seen[tk.Value] = true
	}
}

func TestPreciseTicksEmptyRange(t *testing.T) {
	assert.Nil(t, susyplot.PreciseTicks{}.Ticks(1, 1))
	assert.Nil(t, susyplot.PreciseTicks{}.Ticks(2, 1))
}
