package susyplot

import (
	"fmt"
	"strconv"

	"github.com/spf13/pflag"
)

// FloatArrayFlags is a repeatable float flag. The first Set discards the
// default values.
type FloatArrayFlags struct {
	Array   []float64
	beenSet bool
}

var _ pflag.Value = (*FloatArrayFlags)(nil)

func (f *FloatArrayFlags) Set(valueStr string) error {
	value, err := strconv.ParseFloat(valueStr, 64)
	if err != nil {
		return err
	}

	if !f.beenSet {
		f.beenSet = true
		f.Array = nil
	}

	f.Array = append(f.Array, value)
	return nil
}

func (f *FloatArrayFlags) String() string {
	return fmt.Sprint(f.Array)
}

func (f *FloatArrayFlags) Type() string {
	return "float"
}

// Changed reports whether Set has been called.
func (f *FloatArrayFlags) Changed() bool {
	return f.beenSet
}

// Range interprets the flag as a [low, high) interval.
func (f *FloatArrayFlags) Range() (low, high float64, err error) {
	if len(f.Array) != 2 {
		return 0, 0, fmt.Errorf("range needs exactly 2 values, got %v", f.Array)
	}
	if f.Array[1] <= f.Array[0] {
		return 0, 0, fmt.Errorf("range %v is empty", f.Array)
	}
	return f.Array[0], f.Array[1], nil
}
