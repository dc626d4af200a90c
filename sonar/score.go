// Package sonar scores how far two operands of a string or memory comparison
// agree and reports the score for the comparison's call site, while returning
// the comparison's ordinary result.
//
// A score is the number of leading units the operands share. A shared
// terminator is the end of the data, not agreement, so it is never counted.
package sonar

import (
	"math/bits"

	"github.com/bradleyjkemp/cmpfuzz/cstr"
)

// MatchLen scores s1 against s2 as C strings.
func MatchLen(s1, s2 []byte) uint32 {
	var v uint32
	for i := 0; ; i++ {
		c1, c2 := cstr.At(s1, i), cstr.At(s2, i)
		if c1 != c2 || c1 == 0 {
			return v
		}
		v++
	}
}

// MatchLenFold is MatchLen with both operands folded to lower case. The
// terminator check is on the unfolded bytes.
func MatchLenFold(s1, s2 []byte) uint32 {
	var v uint32
	for i := 0; ; i++ {
		c1, c2 := cstr.At(s1, i), cstr.At(s2, i)
		if cstr.ToLower(c1) != cstr.ToLower(c2) || c1 == 0 || c2 == 0 {
			return v
		}
		v++
	}
}

// MatchLenN is MatchLen looking at no more than n positions.
func MatchLenN(s1, s2 []byte, n uint) uint32 {
	var v uint32
	for i := uint(0); i < n; i++ {
		c1, c2 := cstr.At(s1, int(i)), cstr.At(s2, int(i))
		if c1 != c2 || c1 == 0 {
			break
		}
		v++
	}
	return v
}

// MatchLenFoldN is MatchLenFold looking at no more than n positions.
func MatchLenFoldN(s1, s2 []byte, n uint) uint32 {
	var v uint32
	for i := uint(0); i < n; i++ {
		c1, c2 := cstr.At(s1, int(i)), cstr.At(s2, int(i))
		if cstr.ToLower(c1) != cstr.ToLower(c2) || c1 == 0 || c2 == 0 {
			break
		}
		v++
	}
	return v
}

// MatchLenMem scores the first n bytes of m1 against m2. No byte value ends
// the scan early. It panics if either buffer is shorter than n.
func MatchLenMem(m1, m2 []byte, n uint) uint32 {
	m1, m2 = m1[:n], m2[:n]
	var v uint32
	for i := range m1 {
		if m1[i] != m2[i] {
			break
		}
		v++
	}
	return v
}

// BitLen32 is the number of bits needed to hold n as a 32-bit unsigned value.
// Lengths that do not fit in 32 bits are truncated first, as in the C hooks.
func BitLen32(n int) uint32 {
	return uint32(bits.Len32(uint32(n)))
}
