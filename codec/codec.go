// Package codec implements the bit-level message codec that carries
// arbitrary byte payloads through the RLWE scheme's binary message
// polynomials: conversion between byte strings and LSB-first bit vectors,
// and the scheme-level string encode/decode built on top of it.
package codec

import (
	"strings"
	"unicode/utf8"

	"github.com/NeKroFR/rlwe/ring"
)

// BytesToBits converts data into a slice of bits, LSB-first within each
// byte: for the byte at position k, it emits (b>>0)&1, (b>>1)&1, ...,
// (b>>7)&1 in that order. The returned slice always has length 8*len(data).
func BytesToBits(data []byte) []byte {
	bits := make([]byte, 8*len(data))
	for k, b := range data {
		for i := 0; i < 8; i++ {
			bits[8*k+i] = (b >> i) & 1
		}
	}
	return bits
}

// BitsToBytes groups bits into bytes, LSB-first: 8 consecutive bits starting
// at i*8 pack into byte i as bits[i*8+0]<<0 | ... | bits[i*8+7]<<7. Any
// trailing run of fewer than 8 bits is silently dropped. The returned slice
// has length len(bits)/8 (integer division).
func BitsToBytes(bits []byte) []byte {
	n := len(bits) / 8
	out := make([]byte, n)
	for k := 0; k < n; k++ {
		var b byte
		for i := 0; i < 8; i++ {
			b |= bits[8*k+i] << i
		}
		out[k] = b
	}
	return out
}

// Encode converts s into a length-n binary polynomial: s is encoded as
// UTF-8 bytes, converted to bits via BytesToBits, and copied into a
// zero-initialized length-n vector up to the first min(8*len(bytes), n)
// positions. Excess bits beyond position n are truncated, not an error.
// Encode("") returns the all-zero length-n polynomial.
func Encode(s string, n int) ring.Poly {
	p := ring.NewPoly(n)

	bits := BytesToBits([]byte(s))
	k := len(bits)
	if k > n {
		k = n
	}
	for i := 0; i < k; i++ {
		p[i] = uint64(bits[i])
	}
	return p
}

// Decode converts a length-n binary polynomial back to a string: BitsToBytes
// is applied to p's coefficients (truncated or extended to {0,1} bits),
// the resulting bytes are UTF-8 decoded with invalid sequences ignored, and
// a single trailing run of NUL bytes is stripped. Decode of the all-zero
// polynomial returns the empty string.
func Decode(p ring.Poly) string {
	bits := make([]byte, len(p))
	for i, c := range p {
		bits[i] = byte(c & 1)
	}

	data := BitsToBytes(bits)

	var sb strings.Builder
	for len(data) > 0 {
		r, size := utf8.DecodeRune(data)
		if r != utf8.RuneError || size > 1 {
			sb.WriteRune(r)
		}
		data = data[size:]
	}

	return strings.TrimRight(sb.String(), "\x00")
}
