package aes

import "math/bits"

// GF(2^8) log and antilog tables for the Rijndael field, generator 3.
// The S-box is derived from them at init instead of being pasted in as a
// blob, which keeps the affine construction visible and testable.
var (
	logTable     [256]byte
	antilogTable [256]byte
	sbox         [256]byte
)

func init() {
	x := byte(1)
	for i := 0; i < 255; i++ {
		antilogTable[i] = x
		logTable[x] = byte(i)
		x ^= gmul2(x) // multiply by the generator
	}
	for i := range sbox {
		sbox[i] = subByte(byte(i))
	}
}

// gmul2 multiplies by 2 in GF(2^8), branch-free.
func gmul2(a byte) byte {
	return a<<1 ^ byte(int8(a)>>7)&0x1b
}

// inverse returns the multiplicative inverse in GF(2^8). 0 and 1 are
// their own inverses by convention.
func inverse(c byte) byte {
	if c <= 1 {
		return c
	}
	return antilogTable[255-logTable[c]]
}

func subByte(c byte) byte {
	b := inverse(c)
	return b ^ bits.RotateLeft8(b, 1) ^ bits.RotateLeft8(b, 2) ^
		bits.RotateLeft8(b, 3) ^ bits.RotateLeft8(b, 4) ^ 0x63
}

func subBytes(blk []byte) {
	for i, v := range blk[:16] {
		blk[i] = sbox[v]
	}
}

// shiftRowsIndex maps each output byte to its source in the column-major
// block: row r rotates left by r.
var shiftRowsIndex = [16]byte{0, 5, 10, 15, 4, 9, 14, 3, 8, 13, 2, 7, 12, 1, 6, 11}

func shiftRows(blk []byte) {
	var tmp [16]byte
	copy(tmp[:], blk[:16])
	for i, j := range shiftRowsIndex {
		blk[i] = tmp[j]
	}
}

func mixColumn(col []byte) {
	a0, a1, a2, a3 := col[0], col[1], col[2], col[3]
	col[0] = gmul2(a0) ^ gmul2(a1) ^ a1 ^ a2 ^ a3
	col[1] = a0 ^ gmul2(a1) ^ gmul2(a2) ^ a2 ^ a3
	col[2] = a0 ^ a1 ^ gmul2(a2) ^ gmul2(a3) ^ a3
	col[3] = gmul2(a0) ^ a0 ^ a1 ^ a2 ^ gmul2(a3)
}

func mixColumns(blk []byte) {
	for i := 0; i < 16; i += 4 {
		mixColumn(blk[i : i+4])
	}
}

func addRoundKey(blk, key []byte) {
	for i := 0; i < 16; i++ {
		blk[i] ^= key[i]
	}
}

// cnExpandKeyGo expands a 32-byte key into 10 round keys. This is the
// Rijndael 256-bit schedule cut off after 160 bytes; CryptoNight never
// needs the remaining five keys of standard AES-256.
func cnExpandKeyGo(key, rkeys []byte) {
	copy(rkeys[:32], key[:32])

	rcon := byte(1)
	for off := 32; off < 160; off += 4 {
		var w [4]byte
		copy(w[:], rkeys[off-4:off])

		switch {
		case off%32 == 0:
			w[0], w[1], w[2], w[3] = sbox[w[1]], sbox[w[2]], sbox[w[3]], sbox[w[0]]
			w[0] ^= rcon
			rcon = gmul2(rcon)
		case off%32 == 16:
			w[0], w[1], w[2], w[3] = sbox[w[0]], sbox[w[1]], sbox[w[2]], sbox[w[3]]
		}

		for i := 0; i < 4; i++ {
			rkeys[off+i] = rkeys[off-32+i] ^ w[i]
		}
	}
}

func cnRoundsGo(dst, src, rkeys []byte) {
	var blk [16]byte
	copy(blk[:], src[:16])
	for k := 0; k < 160; k += 16 {
		subBytes(blk[:])
		shiftRows(blk[:])
		mixColumns(blk[:])
		addRoundKey(blk[:], rkeys[k:k+16])
	}
	copy(dst[:16], blk[:])
}

func cnSingleRoundGo(dst, src, rkey []byte) {
	var blk [16]byte
	copy(blk[:], src[:16])
	subBytes(blk[:])
	shiftRows(blk[:])
	mixColumns(blk[:])
	addRoundKey(blk[:], rkey[:16])
	copy(dst[:16], blk[:])
}
