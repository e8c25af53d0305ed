package susyplot_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"go-hep.org/x/hep/groot"
	"go-hep.org/x/hep/groot/rbase"
	"go-hep.org/x/hep/groot/rtree"
)

const ptBranch = "jet_AntiKt4LCTopo_pt"

// writeNtuple writes a tree named tree holding one std::vector<float>
// branch, one event per element of events, and returns the file path.
func writeNtuple(t *testing.T, tree string, events [][]float32) string {
	t.Helper()

	fname := filepath.Join(t.TempDir(), "ntuple.root")
	f, err := groot.Create(fname)
	require.NoError(t, err)

	var pt []float32
	w, err := rtree.NewWriter(f, tree, []rtree.WriteVar{
		{Name: ptBranch, Value: &pt},
	})
	require.NoError(t, err)

	for _, evt := range events {
		pt = evt
		_, err = w.Write()
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())
	require.NoError(t, f.Close())
	return fname
}

// writeNoTree writes a valid ROOT file holding only a TObjString.
func writeNoTree(t *testing.T) string {
	t.Helper()

	fname := filepath.Join(t.TempDir(), "notree.root")
	f, err := groot.Create(fname)
	require.NoError(t, err)
	require.NoError(t, f.Put("susy_meta", rbase.NewObjString("not a tree")))
	require.NoError(t, f.Close())
	return fname
}
