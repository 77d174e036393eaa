package cryptonight

import (
	"encoding/binary"
	"math/bits"
)

// pair is 16 bytes viewed as two little-endian uint64 lanes. It only
// makes sense for the registers of the memory-hard loop.
type pair [2]uint64

func pairFromBytes(b []byte) pair {
	return pair{
		binary.LittleEndian.Uint64(b),
		binary.LittleEndian.Uint64(b[8:]),
	}
}

func (p pair) bytes() [16]byte {
	var b [16]byte
	binary.LittleEndian.PutUint64(b[:], p[0])
	binary.LittleEndian.PutUint64(b[8:], p[1])
	return b
}

func (p pair) putBytes(b []byte) {
	binary.LittleEndian.PutUint64(b, p[0])
	binary.LittleEndian.PutUint64(b[8:], p[1])
}

func (p pair) add(q pair) pair {
	return pair{p[0] + q[0], p[1] + q[1]}
}

func (p pair) xor(q pair) pair {
	return pair{p[0] ^ q[0], p[1] ^ q[1]}
}

// mul multiplies the low lanes as a 64x64->128 product. The HIGH word
// lands in lane 0 and the LOW word in lane 1, reversed relative to a
// little-endian 128-bit integer. Getting this backwards silently breaks
// the hash on most inputs.
func (p pair) mul(q pair) pair {
	hi, lo := bits.Mul64(p[0], q[0])
	return pair{hi, lo}
}

// offset derives the scratchpad byte offset selected by the low lane:
// low 21 bits, aligned down to a 16-byte block.
func (p pair) offset() int {
	return int(p[0] & 0x1ffff0)
}
