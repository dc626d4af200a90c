// Package openssl replaces the OpenSSL and BoringSSL comparison helpers.
// CRYPTO_memcmp is constant time in the library; the replacement is not, and
// only its zero/non-zero result is meaningful, as in the library.
package openssl

import (
	"github.com/bradleyjkemp/cmpfuzz/feedback"
	"github.com/bradleyjkemp/cmpfuzz/sonar"
)

// CryptoMemcmp is CRYPTO_memcmp.
func CryptoMemcmp(m1, m2 []byte, n uint) int {
	return CryptoMemcmpAt(feedback.Caller(0), m1, m2, n)
}

func CryptoMemcmpAt(site feedback.Site, m1, m2 []byte, n uint) int {
	return sonar.MemCmp(site, m1, m2, n)
}

// Memcmp is OPENSSL_memcmp.
func Memcmp(m1, m2 []byte, n uint) int {
	return MemcmpAt(feedback.Caller(0), m1, m2, n)
}

func MemcmpAt(site feedback.Site, m1, m2 []byte, n uint) int {
	return sonar.MemCmp(site, m1, m2, n)
}

// Strcasecmp is OPENSSL_strcasecmp.
func Strcasecmp(s1, s2 []byte) int {
	return StrcasecmpAt(feedback.Caller(0), s1, s2)
}

func StrcasecmpAt(site feedback.Site, s1, s2 []byte) int {
	return sonar.StrCaseCmp(site, s1, s2)
}

// Strncasecmp is OPENSSL_strncasecmp.
func Strncasecmp(s1, s2 []byte, n uint) int {
	return StrncasecmpAt(feedback.Caller(0), s1, s2, n)
}

func StrncasecmpAt(site feedback.Site, s1, s2 []byte, n uint) int {
	return sonar.StrNCaseCmp(site, s1, s2, n)
}
