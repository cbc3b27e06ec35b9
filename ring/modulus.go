package ring

// Reduce returns the canonical reduction of the signed integer x modulo q,
// i.e. the unique value in [0, q) congruent to x (mod q).
//
// x may be negative, as arises in negacyclic multiplication (the wrap-around
// terms are subtracted) and in key generation (b = -(a*s+e) mod q). The
// reduction satisfies Reduce(a+b, q) == Reduce(Reduce(a, q)+Reduce(b, q), q)
// for all signed a, b.
func Reduce(x int64, q uint64) uint64 {
	r := x % int64(q)
	if r < 0 {
		r += int64(q)
	}
	return uint64(r)
}

// CRed conditionally subtracts q from x once, returning a value in [0, q).
// x must already lie in [0, 2q).
func CRed(x, q uint64) uint64 {
	if x >= q {
		return x - q
	}
	return x
}
