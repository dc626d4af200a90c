package sonar

import (
	"github.com/bradleyjkemp/cmpfuzz/cstr"
	"github.com/bradleyjkemp/cmpfuzz/feedback"
)

// StrCmp reports MatchLen(s1, s2) for site and returns strcmp(s1, s2).
func StrCmp(site feedback.Site, s1, s2 []byte) int {
	feedback.Record(site, MatchLen(s1, s2))
	return cstr.Strcmp(s1, s2)
}

// StrCaseCmp reports MatchLenFold(s1, s2) for site and returns strcasecmp(s1, s2).
func StrCaseCmp(site feedback.Site, s1, s2 []byte) int {
	feedback.Record(site, MatchLenFold(s1, s2))
	return cstr.Strcasecmp(s1, s2)
}

// StrNCmp reports MatchLenN(s1, s2, n) for site and returns strncmp(s1, s2, n).
func StrNCmp(site feedback.Site, s1, s2 []byte, n uint) int {
	feedback.Record(site, MatchLenN(s1, s2, n))
	return cstr.Strncmp(s1, s2, n)
}

// StrNCaseCmp reports MatchLenFoldN(s1, s2, n) for site and returns
// strncasecmp(s1, s2, n).
func StrNCaseCmp(site feedback.Site, s1, s2 []byte, n uint) int {
	feedback.Record(site, MatchLenFoldN(s1, s2, n))
	return cstr.Strncasecmp(s1, s2, n)
}

// MemCmp reports MatchLenMem(m1, m2, n) for site and returns memcmp(m1, m2, n).
func MemCmp(site feedback.Site, m1, m2 []byte, n uint) int {
	feedback.Record(site, MatchLenMem(m1, m2, n))
	return cstr.Memcmp(m1, m2, n)
}

// StrCpy copies src into dst as strcpy does and returns dst. A non-empty src
// reports the bit length of its length, so longer strings score higher.
func StrCpy(site feedback.Site, dst, src []byte) []byte {
	if n := cstr.Len(src); uint32(n) != 0 {
		feedback.Record(site, BitLen32(n))
	}
	return cstr.Strcpy(dst, src)
}
