//go:build !amd64

package aes

const hasAES = false
