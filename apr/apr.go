// Package apr replaces the case-insensitive string helpers of Apache httpd
// (ap_cstr_casecmp, ap_cstr_casecmpn, ap_strcasestr) and APR
// (apr_cstr_casecmp, apr_cstr_casecmpn).
package apr

import (
	"github.com/bradleyjkemp/cmpfuzz/feedback"
	"github.com/bradleyjkemp/cmpfuzz/sonar"
)

// ApCstrCasecmp is ap_cstr_casecmp.
func ApCstrCasecmp(s1, s2 []byte) int {
	return ApCstrCasecmpAt(feedback.Caller(0), s1, s2)
}

func ApCstrCasecmpAt(site feedback.Site, s1, s2 []byte) int {
	return sonar.StrCaseCmp(site, s1, s2)
}

// ApCstrCasecmpn is ap_cstr_casecmpn.
func ApCstrCasecmpn(s1, s2 []byte, n uint) int {
	return ApCstrCasecmpnAt(feedback.Caller(0), s1, s2, n)
}

func ApCstrCasecmpnAt(site feedback.Site, s1, s2 []byte, n uint) int {
	return sonar.StrNCaseCmp(site, s1, s2, n)
}

// ApStrcasestr is ap_strcasestr.
func ApStrcasestr(s1, s2 []byte) []byte {
	return ApStrcasestrAt(feedback.Caller(0), s1, s2)
}

func ApStrcasestrAt(site feedback.Site, s1, s2 []byte) []byte {
	return sonar.StrCaseStr(site, s1, s2)
}

// AprCstrCasecmp is apr_cstr_casecmp.
func AprCstrCasecmp(s1, s2 []byte) int {
	return AprCstrCasecmpAt(feedback.Caller(0), s1, s2)
}

func AprCstrCasecmpAt(site feedback.Site, s1, s2 []byte) int {
	return sonar.StrCaseCmp(site, s1, s2)
}

// AprCstrCasecmpn is apr_cstr_casecmpn.
func AprCstrCasecmpn(s1, s2 []byte, n uint) int {
	return AprCstrCasecmpnAt(feedback.Caller(0), s1, s2, n)
}

func AprCstrCasecmpnAt(site feedback.Site, s1, s2 []byte, n uint) int {
	return sonar.StrNCaseCmp(site, s1, s2, n)
}
