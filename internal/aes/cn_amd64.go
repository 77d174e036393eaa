//go:build amd64

package aes

import "golang.org/x/sys/cpu"

// hasAES gates the hardware backend. The assembly itself only needs
// AES-NI and SSE2; SSE4.1 is required alongside so the probe matches the
// feature set the accelerated path is tested on.
var hasAES = cpu.X86.HasAES && cpu.X86.HasSSE41

func init() {
	if !hasAES {
		return
	}
	cnExpandKey = func(key, rkeys []byte) {
		cnExpandKeyAsm(&key[0], &rkeys[0])
	}
	cnRounds = func(dst, src, rkeys []byte) {
		cnRoundsAsm(&dst[0], &src[0], &rkeys[0])
	}
	cnSingleRound = func(dst, src, rkey []byte) {
		cnSingleRoundAsm(&dst[0], &src[0], &rkey[0])
	}
}

//go:noescape
func cnExpandKeyAsm(key, rkeys *byte)

//go:noescape
func cnRoundsAsm(dst, src, rkeys *byte)

//go:noescape
func cnSingleRoundAsm(dst, src, rkey *byte)
