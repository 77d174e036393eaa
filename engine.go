package cryptonight

import (
	"github.com/bertptrs/cryptonight-hash/internal/aes"
)

// iterations is the length of the memory-hard loop, as per cns008 sec.4.
const iterations = 524288

// explode fills the scratchpad, as per cns008 sec.3 Scratchpad
// Initialization. The eight working blocks carry over from chunk to
// chunk, so each 128-byte window holds successive encryptions of the
// state's bytes 64..192 under the 10-key schedule of bytes 0..32.
func explode(state *[200]byte, scratchpad []byte) {
	var rkeys [160]byte
	aes.CnExpandKey(state[:32], rkeys[:])

	var blocks [128]byte
	copy(blocks[:], state[64:192])

	for off := 0; off < ScratchpadSize; off += 128 {
		for i := 0; i < 128; i += 16 {
			aes.CnRounds(blocks[i:i+16], blocks[i:i+16], rkeys[:])
		}
		copy(scratchpad[off:off+128], blocks[:])
	}
}

// memhard runs the main mixing loop, as per cns008 sec.4 Memory-Hard
// Loop. Each scratchpad address is recomputed from the register that was
// just updated; both transfers of an iteration read and write the same
// freshly derived cell.
func memhard(state *[200]byte, scratchpad []byte) {
	a := pairFromBytes(state[0:16]).xor(pairFromBytes(state[32:48]))
	b := pairFromBytes(state[16:32]).xor(pairFromBytes(state[48:64]))

	for i := 0; i < iterations; i++ {
		cell := scratchpad[a.offset():][:16]
		key := a.bytes()
		aes.CnSingleRound(cell, cell, key[:])

		c := pairFromBytes(cell)
		c.xor(b).putBytes(cell)
		b = c

		cell = scratchpad[b.offset():][:16]
		d := pairFromBytes(cell)
		t := a.add(b.mul(d))
		t.putBytes(cell)
		// a picks up the cell's previous value, not the one just written.
		a = d.xor(t)
	}
}

// implode folds the scratchpad back into the state, as per cns008 sec.5
// Result Calculation. The running 128-byte register lives in the state's
// bytes 64..192; the scratchpad is only read.
func implode(state *[200]byte, scratchpad []byte) {
	var rkeys [160]byte
	aes.CnExpandKey(state[32:64], rkeys[:])

	final := state[64:192]
	for off := 0; off < ScratchpadSize; off += 128 {
		xorWords(final, final, scratchpad[off:off+128])
		for i := 0; i < 128; i += 16 {
			aes.CnRounds(final[i:i+16], final[i:i+16], rkeys[:])
		}
	}
}
