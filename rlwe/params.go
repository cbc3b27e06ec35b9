// Package rlwe implements a textbook Ring Learning-With-Errors public-key
// encryption primitive over R_q = Z_q[x]/(x^n+1): key generation,
// encryption of a binary message polynomial, and decryption. It is a
// demonstrator of the RLWE primitive, not a standardized KEM: it makes no
// IND-CCA, constant-time, or side-channel claims, and implements no NTT.
package rlwe

import (
	"fmt"

	"github.com/NeKroFR/rlwe/ring"
)

// SchemeLiteral is the user-facing, unvalidated description of a Scheme's
// parameters, mirroring the teacher's ParametersLiteral/NewParametersFromLiteral
// convention: a plain struct validated once, at construction, into an
// immutable Parameters/Scheme value.
type SchemeLiteral struct {
	// N is the ring dimension. Must be a power of two.
	N int
	// Q is the coefficient modulus. Must be at least 2.
	Q uint64
	// Sigma is the standard deviation of the error distribution used by
	// every Gaussian sample drawn during KeyGen and Encrypt. Must be > 0.
	Sigma float64
}

// DefaultSchemeLiteral is the parameter set recommended by the
// specification: N=1024, Q=40961, Sigma=3.2, which the reference
// implementation observed to yield a per-bit decryption failure probability
// well below 2^-40.
var DefaultSchemeLiteral = SchemeLiteral{
	N:     1024,
	Q:     40961,
	Sigma: 3.2,
}

// Parameters is the validated, immutable form of a SchemeLiteral, fixed for
// the lifetime of the Scheme it belongs to.
type Parameters struct {
	n     int
	q     uint64
	sigma float64
}

// N returns the ring dimension.
func (p Parameters) N() int { return p.n }

// Q returns the coefficient modulus.
func (p Parameters) Q() uint64 { return p.q }

// Sigma returns the error standard deviation.
func (p Parameters) Sigma() float64 { return p.sigma }

// NewParametersFromLiteral validates lit and returns the corresponding
// immutable Parameters. N must be a positive power of two, Q must be at
// least 2, and Sigma must be strictly positive; any violation is reported
// as ring.ErrInvalidParameter.
func NewParametersFromLiteral(lit SchemeLiteral) (Parameters, error) {
	if lit.N <= 0 || lit.N&(lit.N-1) != 0 {
		return Parameters{}, fmt.Errorf("invalid field N=%d: must be a power of two: %w", lit.N, ring.ErrInvalidParameter)
	}
	if lit.Q < 2 {
		return Parameters{}, fmt.Errorf("invalid field Q=%d: must be >= 2: %w", lit.Q, ring.ErrInvalidParameter)
	}
	if lit.Sigma <= 0 {
		return Parameters{}, fmt.Errorf("invalid field Sigma=%v: must be > 0: %w", lit.Sigma, ring.ErrInvalidParameter)
	}

	return Parameters{n: lit.N, q: lit.Q, sigma: lit.Sigma}, nil
}
