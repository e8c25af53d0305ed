package susyplot

import (
	"errors"
	"fmt"

	"go-hep.org/x/hep/groot"
	"go-hep.org/x/hep/groot/riofs"
	"go-hep.org/x/hep/groot/rtree"
)

var (
	// ErrOpen is returned when the input file cannot be opened.
	ErrOpen = errors.New("cannot open input file")
	// ErrMissingStructure is returned when the input file opens but holds
	// no tree under the requested name.
	ErrMissingStructure = errors.New("missing tree")
	// ErrMissingColumn is returned when the tree has no branch with the
	// requested name.
	ErrMissingColumn = errors.New("missing branch")
)

// Dataset is one tree of an open ROOT file.
type Dataset struct {
	Name string

	f    *riofs.File
	tree rtree.Tree
}

// Open opens the ROOT file at path and resolves the tree named treeName.
func Open(path, treeName string) (*Dataset, error) {
	f, err := groot.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w %q: %v", ErrOpen, path, err)
	}

	tree, err := findTree(f, treeName)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return &Dataset{Name: treeName, f: f, tree: tree}, nil
}

func findTree(dir riofs.Directory, name string) (rtree.Tree, error) {
	found := false
	for _, k := range dir.Keys() {
		if k.Name() == name {
			found = true
			break
		}
	}
	if !found {
		return nil, fmt.Errorf("%w %q", ErrMissingStructure, name)
	}

	obj, err := dir.Get(name)
	if err != nil {
		return nil, fmt.Errorf("reading %q: %w", name, err)
	}

	tree, ok := obj.(rtree.Tree)
	if !ok {
		return nil, fmt.Errorf("%w %q: object is a %s", ErrMissingStructure, name, obj.Class())
	}
	return tree, nil
}

// Entries returns the number of events in the tree.
func (ds *Dataset) Entries() int64 {
	return ds.tree.Entries()
}

// Close closes the underlying file.
func (ds *Dataset) Close() error {
	return ds.f.Close()
}

// Bind returns a Column reading the branch named name. Only that branch is
// ever decoded. Entries are read chunk at a time.
func (ds *Dataset) Bind(name string, chunk int64) (*Column, error) {
	if ds.tree.Branch(name) == nil {
		return nil, fmt.Errorf("%w %q in tree %q", ErrMissingColumn, name, ds.Name)
	}
	if chunk < 1 {
		chunk = 1
	}

	return &Column{Name: name, tree: ds.tree, chunk: chunk}, nil
}

// Column is a buffer bound to one variable length float branch. Values
// holds the contents of the last fetched event and is overwritten by each
// call to Fetch.
type Column struct {
	Name   string
	Values []float32

	tree  rtree.Tree
	chunk int64

	// window of decoded entries, starting at entry beg
	beg  int64
	rows [][]float32
}

// Fetch fills c.Values with event i. It panics if i is not a valid entry.
func (c *Column) Fetch(i int64) error {
	n := c.tree.Entries()
	if i < 0 || i >= n {
		panic(fmt.Sprintf("susyplot: entry %d out of range [0, %d)", i, n))
	}

	if i < c.beg || i >= c.beg+int64(len(c.rows)) {
		if err := c.load(i, min(i+c.chunk, n)); err != nil {
			return err
		}
	}

	c.Values = append(c.Values[:0], c.rows[i-c.beg]...)
	return nil
}

func (c *Column) load(beg, end int64) error {
	c.beg = beg
	c.rows = c.rows[:0]

	var vs []float32
	r, err := rtree.NewReader(c.tree, []rtree.ReadVar{{Name: c.Name, Value: &vs}}, rtree.WithRange(beg, end))
	if err != nil {
		c.rows = nil
		return fmt.Errorf("binding branch %q: %w", c.Name, err)
	}
	defer r.Close()

	err = r.Read(func(rtree.RCtx) error {
		c.rows = append(c.rows, append([]float32(nil), vs...))
		return nil
	})
	if err != nil {
		c.rows = nil
		return fmt.Errorf("reading entries [%d, %d) of %q: %w", beg, end, c.Name, err)
	}
	return nil
}
