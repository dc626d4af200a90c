package cstr

import "unsafe"

// Same reports whether s1 and s2 are the same C string: they start at the same
// address and end at the same place. Two nil slices are the same.
func Same(s1, s2 []byte) bool {
	return unsafe.SliceData(s1) == unsafe.SliceData(s2) && Len(s1) == Len(s2)
}

// SameN is Same for the first n bytes: both strings start at the same address
// and agree on where they end within the bound.
func SameN(s1, s2 []byte, n uint) bool {
	if unsafe.SliceData(s1) != unsafe.SliceData(s2) {
		return false
	}
	l1, l2 := uint(Len(s1)), uint(Len(s2))
	if l1 > n {
		l1 = n
	}
	if l2 > n {
		l2 = n
	}
	return l1 == l2
}
