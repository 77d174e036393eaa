package aes

import (
	"bytes"
	"encoding/hex"
	"testing"
)

func TestInverse(t *testing.T) {
	cases := []struct{ in, want byte }{
		{0x00, 0x00},
		{0x01, 0x01},
		{0xca, 0x53},
		{0x53, 0xca},
	}
	for _, c := range cases {
		if got := inverse(c.in); got != c.want {
			t.Errorf("inverse(%#02x) = %#02x, want %#02x", c.in, got, c.want)
		}
	}
}

func TestSBox(t *testing.T) {
	cases := []struct{ in, want byte }{
		{0x00, 0x63},
		{0x01, 0x7c},
		{0xd0, 0x70},
		{0x76, 0x38},
	}
	for _, c := range cases {
		if got := sbox[c.in]; got != c.want {
			t.Errorf("sbox[%#02x] = %#02x, want %#02x", c.in, got, c.want)
		}
	}
}

func TestMixColumn(t *testing.T) {
	col := []byte{0xdb, 0x13, 0x53, 0x45}
	mixColumn(col)
	if want := []byte{0x8e, 0x4d, 0xa1, 0xbc}; !bytes.Equal(col, want) {
		t.Errorf("mixColumn = %x, want %x", col, want)
	}
}

func TestShiftRows(t *testing.T) {
	blk := make([]byte, 16)
	for i := range blk {
		blk[i] = byte(i)
	}
	shiftRows(blk)
	want := []byte{0, 5, 10, 15, 4, 9, 14, 3, 8, 13, 2, 7, 12, 1, 6, 11}
	if !bytes.Equal(blk, want) {
		t.Errorf("shiftRows = %x, want %x", blk, want)
	}
}

// FIPS-197 appendix C.3: the 256-bit key 00 01 .. 1f. CryptoNight uses
// only the first 10 round keys of the standard expansion.
func TestExpandKey(t *testing.T) {
	key := make([]byte, 32)
	for i := range key {
		key[i] = byte(i)
	}

	want, _ := hex.DecodeString(
		"000102030405060708090a0b0c0d0e0f" +
			"101112131415161718191a1b1c1d1e1f" +
			"a573c29fa176c498a97fce93a572c09c" +
			"1651a8cd0244beda1a5da4c10640bade" +
			"ae87dff00ff11b68a68ed5fb03fc1567" +
			"6de1f1486fa54f9275f8eb5373b8518d" +
			"c656827fc9a799176f294cec6cd5598b" +
			"3de23a75524775e727bf9eb45407cf39" +
			"0bdc905fc27b0948ad5245a4c1871c2f" +
			"45f5a66017b2d387300d4d33640a820a")

	rkeys := make([]byte, 160)
	cnExpandKeyGo(key, rkeys)
	if !bytes.Equal(rkeys, want) {
		t.Errorf("cnExpandKeyGo:\n got %x\nwant %x", rkeys, want)
	}
}

func TestRoundsInPlace(t *testing.T) {
	key := make([]byte, 32)
	for i := range key {
		key[i] = byte(i * 3)
	}
	rkeys := make([]byte, 160)
	cnExpandKeyGo(key, rkeys)

	src := make([]byte, 16)
	for i := range src {
		src[i] = byte(0xa5 ^ i)
	}

	dst := make([]byte, 16)
	cnRoundsGo(dst, src, rkeys)

	inPlace := append([]byte(nil), src...)
	cnRoundsGo(inPlace, inPlace, rkeys)
	if !bytes.Equal(dst, inPlace) {
		t.Error("cnRoundsGo with aliased dst/src diverges")
	}

	cnSingleRoundGo(dst, src, rkeys[:16])
	inPlace = append([]byte(nil), src...)
	cnSingleRoundGo(inPlace, inPlace, rkeys[:16])
	if !bytes.Equal(dst, inPlace) {
		t.Error("cnSingleRoundGo with aliased dst/src diverges")
	}
}
