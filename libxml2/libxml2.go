// Package libxml2 replaces libxml2's xmlChar string comparisons. libxml2
// defines results for NULL operands and for identical pointers; those cases
// are answered here without scoring, exactly as the library answers them.
package libxml2

import (
	"github.com/bradleyjkemp/cmpfuzz/cstr"
	"github.com/bradleyjkemp/cmpfuzz/feedback"
	"github.com/bradleyjkemp/cmpfuzz/sonar"
)

// nullOrder returns the result libxml2 gives when s1 and s2 are the same
// string (same reports it) or either is NULL.
func nullOrder(s1, s2 []byte, same bool) (int, bool) {
	switch {
	case same:
		return 0, true
	case s1 == nil:
		return -1, true
	case s2 == nil:
		return 1, true
	}
	return 0, false
}

// Strcmp is xmlStrcmp.
func Strcmp(s1, s2 []byte) int {
	return StrcmpAt(feedback.Caller(0), s1, s2)
}

func StrcmpAt(site feedback.Site, s1, s2 []byte) int {
	if res, ok := nullOrder(s1, s2, cstr.Same(s1, s2)); ok {
		return res
	}
	return sonar.StrCmp(site, s1, s2)
}

// Strncmp is xmlStrncmp. A non-positive n compares equal.
func Strncmp(s1, s2 []byte, n int) int {
	return StrncmpAt(feedback.Caller(0), s1, s2, n)
}

func StrncmpAt(site feedback.Site, s1, s2 []byte, n int) int {
	if n <= 0 {
		return 0
	}
	if res, ok := nullOrder(s1, s2, cstr.SameN(s1, s2, uint(n))); ok {
		return res
	}
	return sonar.StrNCmp(site, s1, s2, uint(n))
}

// StrEqual is xmlStrEqual: 1 if s1 and s2 are equal, 0 otherwise.
func StrEqual(s1, s2 []byte) int {
	return StrEqualAt(feedback.Caller(0), s1, s2)
}

func StrEqualAt(site feedback.Site, s1, s2 []byte) int {
	if cstr.Same(s1, s2) {
		return 1
	}
	if s1 == nil || s2 == nil {
		return 0
	}
	if sonar.StrCmp(site, s1, s2) == 0 {
		return 1
	}
	return 0
}

// Strcasecmp is xmlStrcasecmp.
func Strcasecmp(s1, s2 []byte) int {
	return StrcasecmpAt(feedback.Caller(0), s1, s2)
}

func StrcasecmpAt(site feedback.Site, s1, s2 []byte) int {
	if res, ok := nullOrder(s1, s2, cstr.Same(s1, s2)); ok {
		return res
	}
	return sonar.StrCaseCmp(site, s1, s2)
}

// Strncasecmp is xmlStrncasecmp. A non-positive n compares equal.
func Strncasecmp(s1, s2 []byte, n int) int {
	return StrncasecmpAt(feedback.Caller(0), s1, s2, n)
}

func StrncasecmpAt(site feedback.Site, s1, s2 []byte, n int) int {
	if n <= 0 {
		return 0
	}
	if res, ok := nullOrder(s1, s2, cstr.SameN(s1, s2, uint(n))); ok {
		return res
	}
	return sonar.StrNCaseCmp(site, s1, s2, uint(n))
}

// Strstr is xmlStrstr. A NULL haystack or needle finds nothing.
func Strstr(haystack, needle []byte) []byte {
	return StrstrAt(feedback.Caller(0), haystack, needle)
}

func StrstrAt(site feedback.Site, haystack, needle []byte) []byte {
	if haystack == nil || needle == nil {
		return nil
	}
	return sonar.StrStr(site, haystack, needle)
}

// Strcasestr is xmlStrcasestr. A NULL haystack or needle finds nothing.
func Strcasestr(haystack, needle []byte) []byte {
	return StrcasestrAt(feedback.Caller(0), haystack, needle)
}

func StrcasestrAt(site feedback.Site, haystack, needle []byte) []byte {
	if haystack == nil || needle == nil {
		return nil
	}
	return sonar.StrCaseStr(site, haystack, needle)
}
