package ring

import (
	"fmt"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/exp/constraints"
)

// Poly is a fixed-length vector of coefficients in [0, Q) representing an
// element of R_q = Z_q[x]/(x^n+1). Poly carries no degree tracking: it is
// always zero-padded to its full length. Every operation in this package is
// value-semantic: operations return a new Poly and never alias or mutate
// their operands.
type Poly []uint64

// NewPoly allocates the zero polynomial of length n.
func NewPoly(n int) Poly {
	return make(Poly, n)
}

// Clone returns a deep copy of the receiver.
func (p Poly) Clone() Poly {
	q := make(Poly, len(p))
	copy(q, p)
	return q
}

// Equal performs a deep, order-sensitive comparison of the receiver against
// other.
func (p Poly) Equal(other Poly) bool {
	return cmp.Equal([]uint64(p), []uint64(other))
}

// HammingWeight returns the number of nonzero coefficients in p.
func (p Poly) HammingWeight() int {
	indicators := make([]int, len(p))
	for i, c := range p {
		if c != 0 {
			indicators[i] = 1
		}
	}
	return sum(indicators)
}

// sum adds a slice of integers of any integer type, generalized via
// constraints.Integer (mirrors the teacher's utils/structs generic helper
// style).
func sum[T constraints.Integer](vals []T) T {
	var total T
	for _, v := range vals {
		total += v
	}
	return total
}

// checkLenQ validates that p has exactly n coefficients, each in [0, q), and
// returns ErrInvalidInput (wrapped with a descriptive message) otherwise.
func checkLenQ(p Poly, n int, q uint64) error {
	if len(p) != n {
		return fmt.Errorf("len(p)=%d, want %d: %w", len(p), n, ErrInvalidInput)
	}
	for i, c := range p {
		if c >= q {
			return fmt.Errorf("p[%d]=%d not in [0, %d): %w", i, c, q, ErrInvalidInput)
		}
	}
	return nil
}

// checkBinary validates that p has exactly n coefficients, each in {0, 1}.
func checkBinary(p Poly, n int) error {
	if len(p) != n {
		return fmt.Errorf("len(p)=%d, want %d: %w", len(p), n, ErrInvalidInput)
	}
	for i, c := range p {
		if c > 1 {
			return fmt.Errorf("p[%d]=%d not in {0, 1}: %w", i, c, ErrInvalidInput)
		}
	}
	return nil
}
