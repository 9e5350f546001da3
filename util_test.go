package potential

import (
	"math/cmplx"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

// complexComparer returns an option that treats complex numbers as equal if
// they're within epsilon of each other.
func complexComparer(epsilon float64) cmp.Option {
	return cmp.Comparer(func(a, b complex128) bool {
		return cmplx.Abs(a-b) <= epsilon
	})
}
