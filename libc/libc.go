// Package libc provides comparison-reporting replacements for the C library's
// string and memory routines. Each function returns exactly what the C routine
// returns; NULL operands are as undefined here as they are there.
//
// Every function F captures its caller as the feedback site. FAt takes the
// site explicitly and is what the build-time interposition pass calls.
package libc

import (
	"github.com/bradleyjkemp/cmpfuzz/feedback"
	"github.com/bradleyjkemp/cmpfuzz/sonar"
)

func Strcmp(s1, s2 []byte) int {
	return StrcmpAt(feedback.Caller(0), s1, s2)
}

func StrcmpAt(site feedback.Site, s1, s2 []byte) int {
	return sonar.StrCmp(site, s1, s2)
}

func Strcasecmp(s1, s2 []byte) int {
	return StrcasecmpAt(feedback.Caller(0), s1, s2)
}

func StrcasecmpAt(site feedback.Site, s1, s2 []byte) int {
	return sonar.StrCaseCmp(site, s1, s2)
}

func Strncmp(s1, s2 []byte, n uint) int {
	return StrncmpAt(feedback.Caller(0), s1, s2, n)
}

func StrncmpAt(site feedback.Site, s1, s2 []byte, n uint) int {
	return sonar.StrNCmp(site, s1, s2, n)
}

func Strncasecmp(s1, s2 []byte, n uint) int {
	return StrncasecmpAt(feedback.Caller(0), s1, s2, n)
}

func StrncasecmpAt(site feedback.Site, s1, s2 []byte, n uint) int {
	return sonar.StrNCaseCmp(site, s1, s2, n)
}

// Strstr returns haystack from the first occurrence of needle on, or nil.
func Strstr(haystack, needle []byte) []byte {
	return StrstrAt(feedback.Caller(0), haystack, needle)
}

func StrstrAt(site feedback.Site, haystack, needle []byte) []byte {
	return sonar.StrStr(site, haystack, needle)
}

// Strcasestr is Strstr ignoring case.
func Strcasestr(haystack, needle []byte) []byte {
	return StrcasestrAt(feedback.Caller(0), haystack, needle)
}

func StrcasestrAt(site feedback.Site, haystack, needle []byte) []byte {
	return sonar.StrCaseStr(site, haystack, needle)
}

func Memcmp(m1, m2 []byte, n uint) int {
	return MemcmpAt(feedback.Caller(0), m1, m2, n)
}

func MemcmpAt(site feedback.Site, m1, m2 []byte, n uint) int {
	return sonar.MemCmp(site, m1, m2, n)
}

// Bcmp is zero when the first n bytes of m1 and m2 are equal and non-zero
// otherwise.
func Bcmp(m1, m2 []byte, n uint) int {
	return BcmpAt(feedback.Caller(0), m1, m2, n)
}

func BcmpAt(site feedback.Site, m1, m2 []byte, n uint) int {
	return sonar.MemCmp(site, m1, m2, n)
}

// Memmem returns haystack from the first occurrence of needle on, or nil.
func Memmem(haystack, needle []byte) []byte {
	return MemmemAt(feedback.Caller(0), haystack, needle)
}

func MemmemAt(site feedback.Site, haystack, needle []byte) []byte {
	return sonar.MemMem(site, haystack, needle)
}

func Strcpy(dst, src []byte) []byte {
	return StrcpyAt(feedback.Caller(0), dst, src)
}

func StrcpyAt(site feedback.Site, dst, src []byte) []byte {
	return sonar.StrCpy(site, dst, src)
}
