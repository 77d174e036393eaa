// Package cryptonight implements the original CryptoNight hash function
// as defined in CNS008 at https://cryptonote.org/cns/cns008.txt
//
// The memory-hard core runs over a 2 MiB scratchpad. The scratchpad can
// be allocated per call (Sum), supplied by the caller (SumWith), or
// owned by a reusable Cache.
package cryptonight

import (
	"hash"
	"unsafe"

	"ekyu.moe/cryptonight/groestl"
	"ekyu.moe/cryptonight/jh"
	"github.com/aead/skein"
	"github.com/dchest/blake256"

	"github.com/bertptrs/cryptonight-hash/internal/sha3"
)

const (
	// ScratchpadSize is the exact byte length of the memory-hard
	// working buffer.
	ScratchpadSize = 1 << 21

	// ScratchpadAlign is the required start-address alignment of a
	// caller-supplied scratchpad.
	ScratchpadAlign = 16
)

// Hasher computes one CryptoNight digest incrementally. Input is fed in
// with any number of Write calls; Sum or SumWith finalizes. A Hasher
// must not be used again after it is finalized.
//
// The zero value is ready to use, but New reads better.
type Hasher struct {
	keccak sha3.State
}

// New returns an empty Hasher.
func New() *Hasher {
	return new(Hasher)
}

// Write absorbs p into the hash. It never returns an error; the
// signature satisfies io.Writer.
func (h *Hasher) Write(p []byte) (int, error) {
	return h.keccak.Write(p)
}

// Sum finalizes the hash with a freshly allocated scratchpad. The return
// value is exactly 32 bytes long.
func (h *Hasher) Sum() []byte {
	return h.SumWith(AllocateScratchpad())
}

// SumWith finalizes the hash using the supplied scratchpad. The buffer's
// contents on entry are irrelevant and are fully overwritten, so any
// previous use leaks nothing into the digest. SumWith panics if the
// buffer is not exactly ScratchpadSize bytes or not ScratchpadAlign
// aligned.
func (h *Hasher) SumWith(scratchpad []byte) []byte {
	checkScratchpad(scratchpad)

	var state [200]byte
	h.keccak.Sum1600(&state)

	explode(&state, scratchpad)
	memhard(&state, scratchpad)
	implode(&state, scratchpad)

	sha3.Keccak1600Permute(&state)
	return finalHash(&state)
}

// Sum calculates the CryptoNight digest of data with a scratchpad
// allocated for the call. The return value is exactly 32 bytes long.
//
// Sum is not recommended for a large scale of calls as each one pays for
// a 2 MiB allocation. In such scenario, consider using a Cache or
// SumWith instead.
func Sum(data []byte) []byte {
	return SumWith(data, AllocateScratchpad())
}

// SumWith is like Sum but uses the caller's scratchpad. Ownership of the
// buffer stays with the caller; the same buffer may be handed to any
// number of subsequent calls.
func SumWith(data, scratchpad []byte) []byte {
	h := New()
	h.Write(data)
	return h.SumWith(scratchpad)
}

// AllocateScratchpad returns a buffer suitable for SumWith: exactly
// ScratchpadSize bytes, ScratchpadAlign aligned, contents arbitrary.
func AllocateScratchpad() []byte {
	buf := make([]byte, ScratchpadSize+ScratchpadAlign)
	off := int(-uintptr(unsafe.Pointer(&buf[0])) & (ScratchpadAlign - 1))
	return buf[off : off+ScratchpadSize : off+ScratchpadSize]
}

func checkScratchpad(scratchpad []byte) {
	if len(scratchpad) != ScratchpadSize {
		panic("cryptonight: scratchpad must be exactly 2 MiB")
	}
	if uintptr(unsafe.Pointer(&scratchpad[0]))&(ScratchpadAlign-1) != 0 {
		panic("cryptonight: scratchpad must be 16-byte aligned")
	}
}

// finalHash hashes the whole 200-byte state with the finalist picked by
// its low two bits.
func finalHash(state *[200]byte) []byte {
	var h hash.Hash
	switch state[0] & 0x03 {
	case 0x00:
		h = blake256.New()
	case 0x01:
		h = groestl.New256()
	case 0x02:
		h = jh.New256()
	default:
		h = skein.New256(nil)
	}
	h.Write(state[:])

	return h.Sum(nil)
}

// Cache owns one scratchpad and reuses it across Sum calls.
//
// cache.Sum is not concurrent safe. A Cache only allows at most one Sum
// running. If you intend to call cache.Sum concurrently, you should
// either create multiple Cache instances (recommended for mining apps),
// or use a sync.Pool to manage multiple Cache instances (recommended for
// mining pools).
//
// Example for multiple instances (mining app):
//
//	n := runtime.GOMAXPROCS(0)
//	c := make([]*cryptonight.Cache, n)
//	for i := 0; i < n; i++ {
//		c[i] = new(cryptonight.Cache)
//	}
//
//	// ...
//	for _, v := range c {
//		go func(v *cryptonight.Cache) {
//			for {
//				sum := v.Sum(data)
//				// do something with sum...
//			}
//		}(v)
//	}
//	// ...
//
// Example for sync.Pool (mining pool):
//
//	cachePool := sync.Pool{
//		New: func() interface{} {
//			return new(cryptonight.Cache)
//		},
//	}
//
//	// ...
//	data := <-share // received from some miner
//	cache := cachePool.Get().(*cryptonight.Cache)
//	sum := cache.Sum(data)
//	cachePool.Put(cache) // a Cache is not used after Sum.
//	// do something with sum...
//
// The zero value for Cache is ready to use.
type Cache struct {
	scratchpad []byte
}

// Sum calculates a CryptoNight digest, reusing the Cache's scratchpad.
// The return value is exactly 32 bytes long.
func (c *Cache) Sum(data []byte) []byte {
	if c.scratchpad == nil {
		c.scratchpad = AllocateScratchpad()
	}
	return SumWith(data, c.scratchpad)
}
