// Package intercept is the table of wrapped C library functions: for each one,
// the Go replacement that reports comparison feedback and the original
// semantics it must reproduce. The build-time interposition pass decides
// which calls to redirect from this table.
package intercept

import (
	"github.com/bradleyjkemp/cmpfuzz/apr"
	"github.com/bradleyjkemp/cmpfuzz/cstr"
	"github.com/bradleyjkemp/cmpfuzz/libc"
	"github.com/bradleyjkemp/cmpfuzz/libxml2"
	"github.com/bradleyjkemp/cmpfuzz/openssl"
	"github.com/bradleyjkemp/cmpfuzz/samba"
)

type Library string

const (
	LibC    Library = "libc"
	APR     Library = "apr"
	OpenSSL Library = "openssl"
	LibXML2 Library = "libxml2"
	Samba   Library = "samba"
)

const modulePath = "github.com/bradleyjkemp/cmpfuzz/"

// Symbol describes one wrapped function.
type Symbol struct {
	Library Library
	Name    string // C symbol, e.g. "xmlStrncmp"
	Package string // import path of the Go replacement
	Func    string // Go replacement; Func+"At" takes an explicit site

	Replacement interface{}
	Original    interface{}
}

// SiteFunc is the name of the replacement that takes an explicit site.
func (s Symbol) SiteFunc() string {
	return s.Func + "At"
}

var symbols = []Symbol{
	{LibC, "strcmp", modulePath + "libc", "Strcmp", libc.Strcmp, cstr.Strcmp},
	{LibC, "strcasecmp", modulePath + "libc", "Strcasecmp", libc.Strcasecmp, cstr.Strcasecmp},
	{LibC, "strncmp", modulePath + "libc", "Strncmp", libc.Strncmp, cstr.Strncmp},
	{LibC, "strncasecmp", modulePath + "libc", "Strncasecmp", libc.Strncasecmp, cstr.Strncasecmp},
	{LibC, "strstr", modulePath + "libc", "Strstr", libc.Strstr, cstr.Strstr},
	{LibC, "strcasestr", modulePath + "libc", "Strcasestr", libc.Strcasestr, cstr.Strcasestr},
	{LibC, "memcmp", modulePath + "libc", "Memcmp", libc.Memcmp, cstr.Memcmp},
	{LibC, "bcmp", modulePath + "libc", "Bcmp", libc.Bcmp, cstr.Memcmp},
	{LibC, "memmem", modulePath + "libc", "Memmem", libc.Memmem, cstr.Memmem},
	{LibC, "strcpy", modulePath + "libc", "Strcpy", libc.Strcpy, cstr.Strcpy},

	{APR, "ap_cstr_casecmp", modulePath + "apr", "ApCstrCasecmp", apr.ApCstrCasecmp, cstr.Strcasecmp},
	{APR, "ap_cstr_casecmpn", modulePath + "apr", "ApCstrCasecmpn", apr.ApCstrCasecmpn, cstr.Strncasecmp},
	{APR, "ap_strcasestr", modulePath + "apr", "ApStrcasestr", apr.ApStrcasestr, cstr.Strcasestr},
	{APR, "apr_cstr_casecmp", modulePath + "apr", "AprCstrCasecmp", apr.AprCstrCasecmp, cstr.Strcasecmp},
	{APR, "apr_cstr_casecmpn", modulePath + "apr", "AprCstrCasecmpn", apr.AprCstrCasecmpn, cstr.Strncasecmp},

	{OpenSSL, "CRYPTO_memcmp", modulePath + "openssl", "CryptoMemcmp", openssl.CryptoMemcmp, cstr.Memcmp},
	{OpenSSL, "OPENSSL_memcmp", modulePath + "openssl", "Memcmp", openssl.Memcmp, cstr.Memcmp},
	{OpenSSL, "OPENSSL_strcasecmp", modulePath + "openssl", "Strcasecmp", openssl.Strcasecmp, cstr.Strcasecmp},
	{OpenSSL, "OPENSSL_strncasecmp", modulePath + "openssl", "Strncasecmp", openssl.Strncasecmp, cstr.Strncasecmp},

	{LibXML2, "xmlStrcmp", modulePath + "libxml2", "Strcmp", libxml2.Strcmp, cstr.Strcmp},
	{LibXML2, "xmlStrncmp", modulePath + "libxml2", "Strncmp", libxml2.Strncmp, cstr.Strncmp},
	{LibXML2, "xmlStrEqual", modulePath + "libxml2", "StrEqual", libxml2.StrEqual, cstr.Strcmp},
	{LibXML2, "xmlStrcasecmp", modulePath + "libxml2", "Strcasecmp", libxml2.Strcasecmp, cstr.Strcasecmp},
	{LibXML2, "xmlStrncasecmp", modulePath + "libxml2", "Strncasecmp", libxml2.Strncasecmp, cstr.Strncasecmp},
	{LibXML2, "xmlStrstr", modulePath + "libxml2", "Strstr", libxml2.Strstr, cstr.Strstr},
	{LibXML2, "xmlStrcasestr", modulePath + "libxml2", "Strcasestr", libxml2.Strcasestr, cstr.Strcasestr},

	{Samba, "memcmp_const_time", modulePath + "samba", "MemcmpConstTime", samba.MemcmpConstTime, cstr.Memcmp},
	{Samba, "strcsequal", modulePath + "samba", "Strcsequal", samba.Strcsequal, cstr.Strcmp},
}

var (
	byName = make(map[string]int)
	byFunc = make(map[string]int)
)

func init() {
	for i, s := range symbols {
		if _, dup := byName[s.Name]; dup {
			panic("duplicate intercepted symbol " + s.Name)
		}
		byName[s.Name] = i
		byFunc[s.Package+"."+s.Func] = i
	}
}

// Symbols returns every wrapped function in table order.
func Symbols() []Symbol {
	return append([]Symbol(nil), symbols...)
}

// Lookup finds a wrapped function by its C symbol name.
func Lookup(name string) (Symbol, bool) {
	i, ok := byName[name]
	if !ok {
		return Symbol{}, false
	}
	return symbols[i], true
}

// ByFunc finds a wrapped function by the import path and name of its Go
// replacement.
func ByFunc(pkgPath, fn string) (Symbol, bool) {
	i, ok := byFunc[pkgPath+"."+fn]
	if !ok {
		return Symbol{}, false
	}
	return symbols[i], true
}

// Libraries returns the library families in table order.
func Libraries() []Library {
	return []Library{LibC, APR, OpenSSL, LibXML2, Samba}
}

// IsAdapterPackage reports whether path holds replacements.
func IsAdapterPackage(path string) bool {
	for _, s := range symbols {
		if s.Package == path {
			return true
		}
	}
	return false
}

// Terminated reports whether the function's operands are C strings rather
// than sized buffers.
func (s Symbol) Terminated() bool {
	switch s.Name {
	case "memcmp", "bcmp", "memmem", "CRYPTO_memcmp", "OPENSSL_memcmp", "memcmp_const_time":
		return false
	}
	return true
}
