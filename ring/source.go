package ring

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"
	"io"
)

// Source wraps a uniform random byte stream used by every Sampler. It
// mirrors the teacher's utils/sampling.Source: a thin, swappable wrapper
// around an io.Reader so that keygen and encrypt can be driven from a
// deterministic, injected source in tests while defaulting to a
// cryptographically secure one in production.
//
// A Source is not safe for concurrent use: callers that need to draw from
// multiple goroutines must either serialize access (e.g. with a mutex) or
// give each goroutine its own Source, per the scheme's concurrency model.
type Source struct {
	reader io.Reader
}

// NewSource wraps r as a Source. r is read sequentially and never reset
// between draws: the scheme's security requires independent samples across
// every call within a single KeyGen or Encrypt, and across successive
// calls, so a Source must never be rebuilt from the same seed mid-algorithm.
func NewSource(r io.Reader) *Source {
	return &Source{reader: r}
}

// DefaultSource returns a new Source backed by crypto/rand.Reader, the
// process-wide cryptographically secure default. Each call allocates an
// independent Source value (crypto/rand.Reader itself is safe for
// concurrent use), so callers needing determinism should use NewSource with
// an injected io.Reader instead.
func DefaultSource() *Source {
	return NewSource(rand.Reader)
}

// readFull fills buf from the underlying reader, wrapping any error as
// ErrRandomnessUnavailable.
func (s *Source) readFull(buf []byte) error {
	if _, err := io.ReadFull(s.reader, buf); err != nil {
		return fmt.Errorf("Source: %w: %w", ErrRandomnessUnavailable, err)
	}
	return nil
}

// Uint64 returns a uniformly random uint64 drawn from the source.
func (s *Source) Uint64() (uint64, error) {
	var buf [8]byte
	if err := s.readFull(buf[:]); err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint64(buf[:]), nil
}

// Bit returns a single uniformly random bit (0 or 1).
func (s *Source) Bit() (uint64, error) {
	var buf [1]byte
	if err := s.readFull(buf[:]); err != nil {
		return 0, err
	}
	return uint64(buf[0] & 1), nil
}
