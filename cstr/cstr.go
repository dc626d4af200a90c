// Package cstr implements the C library string and memory routines that the
// comparison hooks wrap. These are the authoritative results every hook returns;
// the hooks only ever add feedback on top of them.
//
// A C string is held in a []byte and ends at the first NUL byte or at the end
// of the slice, whichever comes first. A nil slice stands for a NULL pointer.
package cstr

import "bytes"

// At returns s[i], or the terminator if i is past the end of s.
func At(s []byte, i int) byte {
	if i >= len(s) {
		return 0
	}
	return s[i]
}

// Len is strlen.
func Len(s []byte) int {
	if i := bytes.IndexByte(s, 0); i >= 0 {
		return i
	}
	return len(s)
}

// ToLower is tolower in the C locale.
func ToLower(c byte) byte {
	if 'A' <= c && c <= 'Z' {
		return c + 'a' - 'A'
	}
	return c
}

// Strcmp is strcmp.
func Strcmp(s1, s2 []byte) int {
	for i := 0; ; i++ {
		c1, c2 := At(s1, i), At(s2, i)
		if c1 != c2 || c1 == 0 {
			return int(c1) - int(c2)
		}
	}
}

// Strncmp is strncmp.
func Strncmp(s1, s2 []byte, n uint) int {
	for i := uint(0); i < n; i++ {
		c1, c2 := At(s1, int(i)), At(s2, int(i))
		if c1 != c2 || c1 == 0 {
			return int(c1) - int(c2)
		}
	}
	return 0
}

// Strcasecmp is strcasecmp in the C locale.
func Strcasecmp(s1, s2 []byte) int {
	for i := 0; ; i++ {
		c1, c2 := ToLower(At(s1, i)), ToLower(At(s2, i))
		if c1 != c2 || c1 == 0 {
			return int(c1) - int(c2)
		}
	}
}

// Strncasecmp is strncasecmp in the C locale.
func Strncasecmp(s1, s2 []byte, n uint) int {
	for i := uint(0); i < n; i++ {
		c1, c2 := ToLower(At(s1, int(i))), ToLower(At(s2, int(i)))
		if c1 != c2 || c1 == 0 {
			return int(c1) - int(c2)
		}
	}
	return 0
}

// Strstr returns the offset of the first occurrence of needle in haystack,
// or -1. An empty needle matches at offset 0.
func Strstr(haystack, needle []byte) int {
	return bytes.Index(haystack[:Len(haystack)], needle[:Len(needle)])
}

// Strcasestr is Strstr ignoring case.
func Strcasestr(haystack, needle []byte) int {
	h, n := haystack[:Len(haystack)], needle[:Len(needle)]
	for i := 0; i+len(n) <= len(h); i++ {
		if Strncasecmp(h[i:], n, uint(len(n))) == 0 {
			return i
		}
	}
	return -1
}

// Memcmp compares the first n bytes of m1 and m2. It panics if either is
// shorter than n.
func Memcmp(m1, m2 []byte, n uint) int {
	m1, m2 = m1[:n], m2[:n]
	for i := range m1 {
		if m1[i] != m2[i] {
			return int(m1[i]) - int(m2[i])
		}
	}
	return 0
}

// Memmem returns the offset of the first occurrence of needle in haystack,
// or -1.
func Memmem(haystack, needle []byte) int {
	return bytes.Index(haystack, needle)
}

// Strcpy copies src, including its terminator, into dst and returns dst.
// It panics if dst cannot hold the copy.
func Strcpy(dst, src []byte) []byte {
	n := Len(src)
	_ = dst[n]
	copy(dst, src[:n])
	dst[n] = 0
	return dst
}
