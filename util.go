package cryptonight

// xorWords sets dst = a ^ b byte-wise over len(dst).
func xorWords(dst, a, b []byte) {
	for i := range dst {
		dst[i] = a[i] ^ b[i]
	}
}
