// Package aes implements the AES building blocks of CryptoNight.
//
// Note that this is non-standard AES: the 256-bit key schedule stops
// after 10 round keys, and every round applies MixColumns; there is no
// final MixColumns-free round.
package aes

// The backend is picked once, when the package loads. Hot paths call
// through these without any feature test of their own.
var (
	cnExpandKey   = cnExpandKeyGo
	cnRounds      = cnRoundsGo
	cnSingleRound = cnSingleRoundGo
)

// CnExpandKey expands a 32-byte key into 10 round keys (160 bytes) in
// rkeys.
//
// key must be at least 32 bytes long and rkeys at least 160.
func CnExpandKey(key, rkeys []byte) {
	cnExpandKey(key, rkeys)
}

// CnRounds is (SubBytes, ShiftRows, MixColumns, AddRoundKey) * 10 with
// the keys produced by CnExpandKey. dst and src may alias.
//
// dst and src must be at least 16 bytes long, rkeys at least 160.
func CnRounds(dst, src, rkeys []byte) {
	cnRounds(dst, src, rkeys)
}

// CnSingleRound performs exactly one AES round with a bare 16-byte round
// key. CnSingleRound * 10 is not CnRounds: the schedule is skipped
// entirely. dst and src may alias.
//
// dst, src and rkey must be at least 16 bytes long.
func CnSingleRound(dst, src, rkey []byte) {
	cnSingleRound(dst, src, rkey)
}
