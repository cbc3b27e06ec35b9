package rlwe

import (
	"fmt"

	"github.com/NeKroFR/rlwe/codec"
	"github.com/NeKroFR/rlwe/ring"
)

// Scheme parameterizes the RLWE primitive by (N, Q, Sigma) and exposes
// KeyGen, Encrypt and Decrypt over ring.Ring and ring.Sampler. A Scheme is
// read-only after construction and safe for concurrent use by callers that
// give each concurrent KeyGen/Encrypt call its own *ring.Source (see
// ring.Source's concurrency note).
type Scheme struct {
	params Parameters
	ring   *ring.Ring

	qHalf     uint64 // floor(Q/2), the message scaling factor
	qQuarter  uint64 // floor(Q/4)
	q3Quarter uint64 // floor(3Q/4)
}

// NewScheme creates a Scheme from raw (n, q, sigma) parameters. n must be a
// positive power of two, q must be at least 2, and sigma must be strictly
// positive.
func NewScheme(n int, q uint64, sigma float64) (*Scheme, error) {
	return NewSchemeFromLiteral(SchemeLiteral{N: n, Q: q, Sigma: sigma})
}

// NewSchemeFromLiteral creates a Scheme from a validated SchemeLiteral.
func NewSchemeFromLiteral(lit SchemeLiteral) (*Scheme, error) {
	params, err := NewParametersFromLiteral(lit)
	if err != nil {
		return nil, fmt.Errorf("NewSchemeFromLiteral: %w", err)
	}

	r, err := ring.NewRing(params.n, params.q)
	if err != nil {
		// Parameters were already validated above; this would indicate an
		// inconsistency between rlwe.Parameters and ring.Ring validation.
		return nil, fmt.Errorf("NewSchemeFromLiteral: %w", err)
	}

	return &Scheme{
		params:    params,
		ring:      r,
		qHalf:     params.q / 2,
		qQuarter:  params.q / 4,
		q3Quarter: 3 * params.q / 4,
	}, nil
}

// Parameters returns the Scheme's validated (N, Q, Sigma).
func (s *Scheme) Parameters() Parameters { return s.params }

// uniformSampler and gaussianSampler build the scheme's uniform and Gaussian
// samplers over src. KeyGen uses one of each and Encrypt uses one Gaussian
// sampler; every sampler of a call draws from the same Source in the
// algorithm-defined order.
func (s *Scheme) uniformSampler(src *ring.Source) (*ring.UniformSampler, error) {
	return ring.NewUniformSampler(src, s.params.n, s.params.q)
}

func (s *Scheme) gaussianSampler(src *ring.Source) (*ring.GaussianSampler, error) {
	return ring.NewGaussianSampler(src, s.params.n, s.params.q, s.params.sigma)
}

// KeyGen generates a fresh (PublicKey, PrivateKey) pair, drawing randomness
// from src. It builds the scheme's default uniform and Gaussian samplers
// over src and delegates to KeyGenFromSamplers; see that method for the
// algorithm.
//
// KeyGen is total given a functioning src; a failing src surfaces as
// ring.ErrRandomnessUnavailable.
func (s *Scheme) KeyGen(src *ring.Source) (PublicKey, PrivateKey, error) {
	xu, err := s.uniformSampler(src)
	if err != nil {
		return PublicKey{}, PrivateKey{}, fmt.Errorf("Scheme.KeyGen: %w", err)
	}
	xe, err := s.gaussianSampler(src)
	if err != nil {
		return PublicKey{}, PrivateKey{}, fmt.Errorf("Scheme.KeyGen: %w", err)
	}

	return s.KeyGenFromSamplers(xu, xe)
}

// KeyGenFromSamplers generates a fresh (PublicKey, PrivateKey) pair, drawing
// its randomness from the given samplers rather than from a ring.Source.
// This is the entry point deterministic tests use to inject canned
// samplers and observe the fixed consumption order the scheme relies on;
// xu is consulted for a, xe for both s and e:
//
//  1. a <- xu.Read()                  (uniform in Z_q)
//  2. s <- xe.Read()                  (the PrivateKey)
//  3. e <- xe.Read()
//  4. b <- -(a*s + e) mod Q
func (s *Scheme) KeyGenFromSamplers(xu, xe ring.Sampler) (PublicKey, PrivateKey, error) {
	a, err := xu.Read()
	if err != nil {
		return PublicKey{}, PrivateKey{}, fmt.Errorf("Scheme.KeyGen: %w", err)
	}
	sk, err := xe.Read()
	if err != nil {
		return PublicKey{}, PrivateKey{}, fmt.Errorf("Scheme.KeyGen: %w", err)
	}
	e, err := xe.Read()
	if err != nil {
		return PublicKey{}, PrivateKey{}, fmt.Errorf("Scheme.KeyGen: %w", err)
	}

	as, err := s.ring.MulNegacyclic(a, sk)
	if err != nil {
		return PublicKey{}, PrivateKey{}, fmt.Errorf("Scheme.KeyGen: %w", err)
	}
	asPlusE, err := s.ring.Add(as, e)
	if err != nil {
		return PublicKey{}, PrivateKey{}, fmt.Errorf("Scheme.KeyGen: %w", err)
	}
	b, err := s.ring.Neg(asPlusE)
	if err != nil {
		return PublicKey{}, PrivateKey{}, fmt.Errorf("Scheme.KeyGen: %w", err)
	}

	return PublicKey{A: a, B: b}, PrivateKey{S: sk}, nil
}

// Encrypt encrypts the binary message polynomial m under pk, drawing
// randomness from src. It builds the scheme's default Gaussian sampler over
// src and delegates to EncryptFromSampler; see that method for the
// algorithm. m must have length N and coefficients in {0, 1}.
func (s *Scheme) Encrypt(src *ring.Source, pk PublicKey, m ring.Poly) (Ciphertext, error) {
	xe, err := s.gaussianSampler(src)
	if err != nil {
		return Ciphertext{}, fmt.Errorf("Scheme.Encrypt: %w", err)
	}

	return s.EncryptFromSampler(xe, pk, m)
}

// EncryptFromSampler encrypts m under pk, drawing its randomness from the
// given sampler rather than from a ring.Source. This is the entry point
// deterministic tests use to inject a canned sampler and observe the fixed
// consumption order (r, e1, e2):
//
//  1. r  <- xe.Read()                 (small, not uniform)
//  2. e1 <- xe.Read()
//  3. e2 <- xe.Read()
//  4. mTilde[i] = m[i] * floor(Q/2) mod Q
//  5. c1 = a*r + e1
//  6. c2 = b*r + e2 + mTilde
func (s *Scheme) EncryptFromSampler(xe ring.Sampler, pk PublicKey, m ring.Poly) (Ciphertext, error) {
	if err := s.checkBinaryMessage(m); err != nil {
		return Ciphertext{}, fmt.Errorf("Scheme.Encrypt: %w", err)
	}

	r, err := xe.Read()
	if err != nil {
		return Ciphertext{}, fmt.Errorf("Scheme.Encrypt: %w", err)
	}
	e1, err := xe.Read()
	if err != nil {
		return Ciphertext{}, fmt.Errorf("Scheme.Encrypt: %w", err)
	}
	e2, err := xe.Read()
	if err != nil {
		return Ciphertext{}, fmt.Errorf("Scheme.Encrypt: %w", err)
	}

	mTilde := s.ring.NewPoly()
	for i, bit := range m {
		mTilde[i] = bit * s.qHalf % s.params.q
	}

	ar, err := s.ring.MulNegacyclic(pk.A, r)
	if err != nil {
		return Ciphertext{}, fmt.Errorf("Scheme.Encrypt: %w", err)
	}
	c1, err := s.ring.Add(ar, e1)
	if err != nil {
		return Ciphertext{}, fmt.Errorf("Scheme.Encrypt: %w", err)
	}

	br, err := s.ring.MulNegacyclic(pk.B, r)
	if err != nil {
		return Ciphertext{}, fmt.Errorf("Scheme.Encrypt: %w", err)
	}
	brE2, err := s.ring.Add(br, e2)
	if err != nil {
		return Ciphertext{}, fmt.Errorf("Scheme.Encrypt: %w", err)
	}
	c2, err := s.ring.Add(brE2, mTilde)
	if err != nil {
		return Ciphertext{}, fmt.Errorf("Scheme.Encrypt: %w", err)
	}

	return Ciphertext{C1: c1, C2: c2}, nil
}

// Decrypt recovers a binary message polynomial from ct under sk:
//
//  1. v = c2 + c1*s mod Q
//  2. m'[i] = 1 if floor(Q/4) < v[i] < floor(3Q/4), else 0
//
// Decrypt never errors on ciphertext content: under correct keys it
// recovers the original message with overwhelming probability, but a wrong
// bit pattern from excessive accumulated noise is a probabilistic
// correctness concern, not a thrown error.
func (s *Scheme) Decrypt(sk PrivateKey, ct Ciphertext) (ring.Poly, error) {
	c1s, err := s.ring.MulNegacyclic(ct.C1, sk.S)
	if err != nil {
		return nil, fmt.Errorf("Scheme.Decrypt: %w", err)
	}
	v, err := s.ring.Add(ct.C2, c1s)
	if err != nil {
		return nil, fmt.Errorf("Scheme.Decrypt: %w", err)
	}

	m := s.ring.NewPoly()
	for i, c := range v {
		if c > s.qQuarter && c < s.q3Quarter {
			m[i] = 1
		}
	}
	return m, nil
}

// EncodeMessage encodes str as a length-N binary message polynomial via the
// scheme's MessageCodec.
func (s *Scheme) EncodeMessage(str string) ring.Poly {
	return codec.Encode(str, s.params.n)
}

// DecodeMessage decodes a length-N binary message polynomial back into a
// string via the scheme's MessageCodec.
func (s *Scheme) DecodeMessage(m ring.Poly) string {
	return codec.Decode(m)
}

// checkBinaryMessage validates that m has exactly N coefficients, each in
// {0, 1}.
func (s *Scheme) checkBinaryMessage(m ring.Poly) error {
	if len(m) != s.params.n {
		return fmt.Errorf("len(m)=%d, want %d: %w", len(m), s.params.n, ring.ErrInvalidInput)
	}
	for i, c := range m {
		if c > 1 {
			return fmt.Errorf("m[%d]=%d not in {0, 1}: %w", i, c, ring.ErrInvalidInput)
		}
	}
	return nil
}
