// Package samba replaces Samba's memcmp_const_time and strcsequal.
package samba

import (
	"github.com/bradleyjkemp/cmpfuzz/cstr"
	"github.com/bradleyjkemp/cmpfuzz/feedback"
	"github.com/bradleyjkemp/cmpfuzz/sonar"
)

// MemcmpConstTime is memcmp_const_time.
func MemcmpConstTime(s1, s2 []byte, n uint) int {
	return MemcmpConstTimeAt(feedback.Caller(0), s1, s2, n)
}

func MemcmpConstTimeAt(site feedback.Site, s1, s2 []byte, n uint) int {
	return sonar.MemCmp(site, s1, s2, n)
}

// Strcsequal is strcsequal: case-sensitive equality where a NULL operand is
// only equal to itself.
func Strcsequal(s1, s2 []byte) bool {
	return StrcsequalAt(feedback.Caller(0), s1, s2)
}

func StrcsequalAt(site feedback.Site, s1, s2 []byte) bool {
	if cstr.Same(s1, s2) {
		return true
	}
	if s1 == nil || s2 == nil {
		return false
	}
	return sonar.StrCmp(site, s1, s2) == 0
}
