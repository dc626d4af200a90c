package sonar

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bradleyjkemp/cmpfuzz/cstr"
)

func TestStrStr(t *testing.T) {
	tests := []struct {
		name     string
		haystack string
		needle   string
		offset   int
		scores   []uint32
	}{
		{"found", "xxabc", "abc", 2, []uint32{0, 0, 3}},
		{"partial progress", "abxabc", "abc", 3, []uint32{2, 0, 0, 3}},
		{"not found", "abcd", "xy", -1, []uint32{0, 0, 0, 0}},
		{"stops at NUL", "ab\x00cd", "cd", -1, []uint32{0, 0}},
		{"empty needle", "abc", "", 0, []uint32{0}},
		{"empty haystack", "", "abc", -1, nil},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			rec := record(t)
			haystack := []byte(test.haystack)
			res := StrStr(site, haystack, []byte(test.needle))
			assert.Equal(t, test.offset, offset(haystack, res))
			assert.Equal(t, test.scores, rec.Scores())
		})
	}
}

func TestStrCaseStr(t *testing.T) {
	tests := []struct {
		name     string
		haystack string
		needle   string
		offset   int
		scores   []uint32
	}{
		{"found", "xxABc", "abC", 2, []uint32{0, 0, 3}},
		{"not found", "abcd", "xy", -1, []uint32{0, 0, 0, 0}},
		{"needle runs past haystack", "xab", "abc", -1, []uint32{0, 2, 0}},
		{"empty needle", "abc", "", 0, []uint32{0}},
		{"empty needle and haystack", "", "", -1, nil},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			rec := record(t)
			haystack := []byte(test.haystack)
			res := StrCaseStr(site, haystack, []byte(test.needle))
			assert.Equal(t, test.offset, offset(haystack, res))
			assert.Equal(t, test.scores, rec.Scores())
		})
	}
}

// The scan decides StrCaseStr's result: it is the first offset whose bounded
// case-insensitive score covers the whole needle.
func TestStrCaseStrFirstFullScore(t *testing.T) {
	record(t)
	cases := [][2]string{
		{"HeLLo hello", "hello"},
		{"aaaAb", "ab"},
		{"abababAC", "abac"},
		{"zzz", "z"},
		{"mismatch", "xyz"},
	}
	for _, c := range cases {
		haystack, needle := []byte(c[0]), []byte(c[1])
		want := -1
		for i := 0; i < len(haystack); i++ {
			if MatchLenFoldN(haystack[i:], needle, uint(len(needle))) == uint32(len(needle)) {
				want = i
				break
			}
		}
		assert.Equal(t, want, offset(haystack, StrCaseStr(site, haystack, needle)), "%q in %q", needle, haystack)
		assert.Equal(t, want, cstr.Strcasestr(haystack, needle), "%q in %q", needle, haystack)
	}
}

func TestMemMem(t *testing.T) {
	tests := []struct {
		name     string
		haystack []byte
		needle   []byte
		offset   int
		scores   []uint32
	}{
		{"found", []byte("ab\x00cd"), []byte("\x00c"), 2, []uint32{0, 0, 2}},
		{"partial progress", []byte("abxab"), []byte("abc"), -1, []uint32{2, 0, 0}},
		{"whole haystack", []byte("abc"), []byte("abc"), 0, []uint32{3}},
		{"empty needle", []byte("abc"), nil, 0, nil},
		{"needle longer than haystack", []byte("ab"), []byte("abc"), -1, nil},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			rec := record(t)
			res := MemMem(site, test.haystack, test.needle)
			assert.Equal(t, test.offset, offset(test.haystack, res))
			assert.Equal(t, test.scores, rec.Scores())
		})
	}
}
