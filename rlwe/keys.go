package rlwe

import "github.com/NeKroFR/rlwe/ring"

// PublicKey is the pair (A, B) of length-N polynomials generated by KeyGen:
// A is uniformly random, B = -(A*S + E) mod Q for the corresponding
// PrivateKey S and a freshly sampled small error E.
type PublicKey struct {
	A ring.Poly
	B ring.Poly
}

// PrivateKey is the length-N polynomial S generated by KeyGen, whose
// coefficients are the reductions modulo Q of small signed Gaussian
// samples.
type PrivateKey struct {
	S ring.Poly
}

// Clone returns a deep copy of the receiver.
func (pk PublicKey) Clone() PublicKey {
	return PublicKey{A: pk.A.Clone(), B: pk.B.Clone()}
}

// Clone returns a deep copy of the receiver.
func (sk PrivateKey) Clone() PrivateKey {
	return PrivateKey{S: sk.S.Clone()}
}
