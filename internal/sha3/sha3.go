// Package sha3 implements the legacy Keccak sponge as CryptoNight consumes
// it: a Keccak-256 absorber that exposes the full 1600-bit state rather
// than a truncated digest, plus the bare Keccak-f[1600] permutation.
//
// The standard library and x/crypto only hand out squeezed output, so the
// 200-byte state variants live here.
package sha3

import "encoding/binary"

// rate is the sponge rate for Keccak-256: (1600 - 2*256) / 8 bytes.
const rate = 136

// State is a streaming Keccak-256 absorber. The zero value is ready to
// use. After Sum1600 the State must not be written to again.
type State struct {
	a   [25]uint64
	buf [rate]byte
	n   int
}

// Write absorbs p into the sponge. It never fails; the error is there to
// satisfy io.Writer.
func (s *State) Write(p []byte) (int, error) {
	written := len(p)

	if s.n > 0 {
		c := copy(s.buf[s.n:], p)
		s.n += c
		p = p[c:]
		if s.n == rate {
			s.absorb(s.buf[:])
			s.n = 0
		}
	}
	for len(p) >= rate {
		s.absorb(p[:rate])
		p = p[rate:]
	}
	s.n += copy(s.buf[s.n:], p)

	return written, nil
}

// Sum1600 pads with the original Keccak domain (0x01, not SHA-3's 0x06),
// applies the final permutation and serializes the whole state into out
// as 25 little-endian lanes.
func (s *State) Sum1600(out *[200]byte) {
	s.buf[s.n] = 0x01
	for i := s.n + 1; i < rate; i++ {
		s.buf[i] = 0
	}
	s.buf[rate-1] |= 0x80
	s.absorb(s.buf[:])

	for i, v := range s.a {
		binary.LittleEndian.PutUint64(out[i*8:], v)
	}
}

func (s *State) absorb(block []byte) {
	for i := 0; i < rate/8; i++ {
		s.a[i] ^= binary.LittleEndian.Uint64(block[i*8:])
	}
	keccakF1600(&s.a)
}

// Keccak1600State absorbs data in one shot and writes the resulting
// 200-byte state into st.
func Keccak1600State(st *[200]byte, data []byte) {
	var s State
	s.Write(data)
	s.Sum1600(st)
}

// Keccak1600Permute applies Keccak-f[1600] to st in place, treating it as
// 25 little-endian uint64 lanes.
func Keccak1600Permute(st *[200]byte) {
	var a [25]uint64
	for i := range a {
		a[i] = binary.LittleEndian.Uint64(st[i*8:])
	}
	keccakF1600(&a)
	for i, v := range a {
		binary.LittleEndian.PutUint64(st[i*8:], v)
	}
}
