package sonar

import (
	"github.com/bradleyjkemp/cmpfuzz/cstr"
	"github.com/bradleyjkemp/cmpfuzz/feedback"
)

// StrStr slides needle along haystack, reporting a StrNCmp score at each
// offset until one matches, and returns strstr(haystack, needle) as the
// sub-slice of haystack starting at the match, or nil.
func StrStr(site feedback.Site, haystack, needle []byte) []byte {
	n := uint(cstr.Len(needle))
	for i := 0; cstr.At(haystack, i) != 0; i++ {
		if StrNCmp(site, haystack[i:], needle, n) == 0 {
			break
		}
	}
	if i := cstr.Strstr(haystack, needle); i >= 0 {
		return haystack[i:]
	}
	return nil
}

// StrCaseStr slides needle along haystack, reporting a StrNCaseCmp score at
// each offset, and returns the sub-slice of haystack at the first offset that
// compares equal, or nil. The scan itself decides the result, so an empty
// needle matches at the start of a non-empty haystack only.
func StrCaseStr(site feedback.Site, haystack, needle []byte) []byte {
	n := uint(cstr.Len(needle))
	for i := 0; cstr.At(haystack, i) != 0; i++ {
		if StrNCaseCmp(site, haystack[i:], needle, n) == 0 {
			return haystack[i:]
		}
	}
	return nil
}

// MemMem slides needle along haystack, reporting a MemCmp score at each
// offset until one matches, and returns memmem(haystack, needle) as the
// sub-slice of haystack starting at the match, or nil. An empty needle
// matches at the start of haystack without reporting anything.
func MemMem(site feedback.Site, haystack, needle []byte) []byte {
	if len(needle) > len(haystack) {
		return nil
	}
	if len(needle) == 0 {
		return haystack
	}
	n := uint(len(needle))
	for i := 0; i <= len(haystack)-len(needle); i++ {
		if MemCmp(site, haystack[i:], needle, n) == 0 {
			break
		}
	}
	if i := cstr.Memmem(haystack, needle); i >= 0 {
		return haystack[i:]
	}
	return nil
}
