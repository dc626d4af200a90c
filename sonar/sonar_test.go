package sonar

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bradleyjkemp/cmpfuzz/cstr"
	"github.com/bradleyjkemp/cmpfuzz/feedback"
)

const site = feedback.Site(0x1234)

func record(t *testing.T) *feedback.Recorder {
	rec := new(feedback.Recorder)
	prev := feedback.SetSink(rec)
	t.Cleanup(func() { feedback.SetSink(prev) })
	return rec
}

func offset(haystack, res []byte) int {
	if res == nil {
		return -1
	}
	return len(haystack) - len(res)
}

func TestMatchLen(t *testing.T) {
	tests := []struct {
		s1, s2 string
		exact  uint32
		fold   uint32
	}{
		{"abc", "abd", 2, 2},
		{"abc", "abc", 3, 3},
		{"ABC", "abc", 0, 3},
		{"", "", 0, 0},
		{"abc", "ab", 2, 2},
		{"ab\x00x", "ab\x00y", 2, 2},
		{"\xffA", "\xffa", 1, 2},
	}
	for _, test := range tests {
		s1, s2 := []byte(test.s1), []byte(test.s2)
		assert.Equal(t, test.exact, MatchLen(s1, s2), "%q %q", s1, s2)
		assert.Equal(t, test.fold, MatchLenFold(s1, s2), "%q %q", s1, s2)
	}
}

func TestMatchLenBounded(t *testing.T) {
	assert.Equal(t, uint32(3), MatchLenN([]byte("hello"), []byte("help"), 3))
	assert.Equal(t, uint32(3), MatchLenN([]byte("hello"), []byte("help"), 10))
	assert.Equal(t, uint32(0), MatchLenN([]byte("hello"), []byte("hello"), 0))
	assert.Equal(t, uint32(2), MatchLenN([]byte("ab"), []byte("ab"), 5))
	assert.Equal(t, uint32(4), MatchLenFoldN([]byte("HeLLo"), []byte("hell"), 4))
	assert.Equal(t, uint32(4), MatchLenFoldN([]byte("HeLLo"), []byte("hell"), 9))
}

func TestMatchLenMem(t *testing.T) {
	a := []byte{1, 2, 3, 4, 5}
	b := []byte{1, 2, 9, 4, 5}
	assert.Equal(t, uint32(2), MatchLenMem(a, b, 5))
	assert.Equal(t, uint32(5), MatchLenMem(a, a, 5))
	z := []byte{0, 0, 0}
	assert.Equal(t, uint32(3), MatchLenMem(z, []byte{0, 0, 0}, 3), "NUL does not stop a region scan")
	assert.Panics(t, func() { MatchLenMem(a, b[:2], 3) })
}

func TestBitLen32(t *testing.T) {
	assert.Equal(t, uint32(0), BitLen32(0))
	assert.Equal(t, uint32(1), BitLen32(1))
	assert.Equal(t, uint32(8), BitLen32(255))
	assert.Equal(t, uint32(9), BitLen32(256))
	assert.Equal(t, uint32(31), BitLen32(1<<30))
}

func TestCompareReports(t *testing.T) {
	rec := record(t)

	assert.Less(t, StrCmp(site, []byte("abc"), []byte("abd")), 0)
	assert.Equal(t, 0, StrCaseCmp(site, []byte("ABC"), []byte("abc")))
	assert.Equal(t, 0, StrNCmp(site, []byte("hello"), []byte("help"), 3))
	assert.Equal(t, 0, StrNCaseCmp(site, []byte("HELlo"), []byte("help"), 3))
	assert.NotEqual(t, 0, MemCmp(site, []byte{1, 2, 3, 4, 5}, []byte{1, 2, 9, 4, 5}, 5))
	assert.Equal(t, 0, MemCmp(site, []byte{1, 2, 3}, []byte{1, 2, 3}, 3))

	assert.Equal(t, []uint32{2, 3, 3, 3, 2, 3}, rec.Scores())
	for _, r := range rec.Reports() {
		assert.Equal(t, site, r.Site)
	}
}

func TestResultIsCanonical(t *testing.T) {
	record(t)
	inputs := []string{"", "a", "A", "ab", "abc", "ABD", "ab\x00c", "\xff", "b"}
	for _, a := range inputs {
		for _, b := range inputs {
			s1, s2 := []byte(a), []byte(b)
			require.Equal(t, cstr.Strcmp(s1, s2), StrCmp(site, s1, s2))
			require.Equal(t, cstr.Strcasecmp(s1, s2), StrCaseCmp(site, s1, s2))
			for n := uint(0); n < 5; n++ {
				require.Equal(t, cstr.Strncmp(s1, s2, n), StrNCmp(site, s1, s2, n))
				require.Equal(t, cstr.Strncasecmp(s1, s2, n), StrNCaseCmp(site, s1, s2, n))
			}
		}
	}
}

func TestStrCpy(t *testing.T) {
	rec := record(t)
	for _, n := range []int{1, 255, 256, 0} {
		src := make([]byte, n+1)
		for i := 0; i < n; i++ {
			src[i] = 'a'
		}
		dst := make([]byte, n+1)
		res := StrCpy(site, dst, src)
		assert.Equal(t, src, res)
	}
	assert.Equal(t, []uint32{1, 8, 9}, rec.Scores(), "empty source reports nothing")
}
