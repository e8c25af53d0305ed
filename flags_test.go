package susyplot_test

import (
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/decibelcooper/susyplot"
)

func TestFloatArrayFlags(t *testing.T) {
	xr := susyplot.FloatArrayFlags{Array: []float64{0, 1000}}
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.Var(&xr, "xrange", "")

	low, high, err := xr.Range()
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 1000}, []float64{low, high})
	assert.False(t, xr.Changed())

	require.NoError(t, fs.Parse([]string{"--xrange", "10", "--xrange=250.5"}))
	assert.True(t, xr.Changed())
	assert.Equal(t, []float64{10, 250.5}, xr.Array)
	assert.Equal(t, "[10 250.5]", xr.String())
}

func TestFloatArrayFlagsErrors(t *testing.T) {
	var xr susyplot.FloatArrayFlags
	assert.Error(t, xr.Set("ten"))

	require.NoError(t, xr.Set("5"))
	_, _, err := xr.Range()
	assert.Error(t, err)

	require.NoError(t, xr.Set("1"))
	_, _, err = xr.Range()
	assert.Error(t, err)
}
