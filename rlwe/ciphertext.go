package rlwe

import "github.com/NeKroFR/rlwe/ring"

// Ciphertext is the pair (C1, C2) of length-N polynomials produced by
// Encrypt and consumed by Decrypt. A Ciphertext is created fresh by every
// call to Encrypt: no nonce or counter is reused across encryptions.
type Ciphertext struct {
	C1 ring.Poly
	C2 ring.Poly
}

// Clone returns a deep copy of the receiver.
func (ct Ciphertext) Clone() Ciphertext {
	return Ciphertext{C1: ct.C1.Clone(), C2: ct.C2.Clone()}
}
