package libxml2

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bradleyjkemp/cmpfuzz/cstr"
	"github.com/bradleyjkemp/cmpfuzz/feedback"
)

func record(t *testing.T) *feedback.Recorder {
	rec := new(feedback.Recorder)
	prev := feedback.SetSink(rec)
	t.Cleanup(func() { feedback.SetSink(prev) })
	return rec
}

func TestNullAndIdentity(t *testing.T) {
	rec := record(t)
	s := []byte("version")
	tests := []struct {
		name string
		res  int
		want int
	}{
		{"strcmp same", Strcmp(s, s), 0},
		{"strcmp both NULL", Strcmp(nil, nil), 0},
		{"strcmp first NULL", Strcmp(nil, s), -1},
		{"strcmp second NULL", Strcmp(s, nil), 1},
		{"strcasecmp same", Strcasecmp(s, s), 0},
		{"strcasecmp first NULL", Strcasecmp(nil, s), -1},
		{"strcasecmp second NULL", Strcasecmp(s, nil), 1},
		{"strncmp same", Strncmp(s, s, 3), 0},
		{"strncmp first NULL", Strncmp(nil, s, 3), -1},
		{"strncmp second NULL", Strncmp(s, nil, 3), 1},
		{"strncasecmp first NULL", Strncasecmp(nil, s, 3), -1},
		{"strncasecmp second NULL", Strncasecmp(s, nil, 3), 1},
		{"strEqual same", StrEqual(s, s), 1},
		{"strEqual both NULL", StrEqual(nil, nil), 1},
		{"strEqual first NULL", StrEqual(nil, s), 0},
		{"strEqual second NULL", StrEqual(s, nil), 0},
	}
	for _, test := range tests {
		assert.Equal(t, test.want, test.res, test.name)
	}
	assert.Empty(t, rec.Reports(), "NULL and identical operands are never scored")
}

func TestNonPositiveBound(t *testing.T) {
	rec := record(t)
	assert.Equal(t, 0, Strncmp([]byte("abc"), []byte("xyz"), 0))
	assert.Equal(t, 0, Strncmp([]byte("abc"), []byte("xyz"), -5))
	assert.Equal(t, 0, Strncasecmp(nil, []byte("xyz"), 0))
	assert.Equal(t, 0, Strncasecmp([]byte("abc"), nil, -1))
	assert.Empty(t, rec.Reports())
}

func TestCompare(t *testing.T) {
	rec := record(t)
	assert.Less(t, Strcmp([]byte("1.0"), []byte("1.1")), 0)
	assert.Equal(t, 0, Strcasecmp([]byte("UTF-8"), []byte("utf-8")))
	assert.Equal(t, 0, Strncmp([]byte("xmlns:a"), []byte("xmlns:b"), 6))
	assert.Greater(t, Strncasecmp([]byte("XMLNS"), []byte("xmlna"), 5), 0)
	assert.Equal(t, 1, StrEqual([]byte("yes"), []byte("yes")))
	assert.Equal(t, 0, StrEqual([]byte("yes"), []byte("no")))
	assert.Equal(t, []uint32{2, 5, 6, 4, 3, 0}, rec.Scores())
}

func TestSearch(t *testing.T) {
	rec := record(t)
	assert.Nil(t, Strstr(nil, []byte("a")))
	assert.Nil(t, Strstr([]byte("a"), nil))
	assert.Nil(t, Strcasestr(nil, []byte("a")))
	assert.Nil(t, Strcasestr([]byte("a"), nil))
	assert.Empty(t, rec.Reports())

	doc := []byte("<?xml encoding='UTF-8'?>")
	assert.Equal(t, []byte("UTF-8'?>"), Strstr(doc, []byte("UTF-8")))
	assert.Equal(t, []byte("UTF-8'?>"), Strcasestr(doc, []byte("utf-8")))
	assert.NotEmpty(t, rec.Reports())
}

func TestSharedBufferPrefix(t *testing.T) {
	rec := record(t)
	buf := []byte("abcde")
	short := buf[:3]
	want := cstr.Strcmp(short, buf)
	require.Less(t, want, 0)

	assert.Equal(t, want, Strcmp(short, buf))
	assert.Equal(t, -want, Strcmp(buf, short))
	assert.Equal(t, 0, StrEqual(short, buf))
	assert.Equal(t, want, Strcasecmp(short, buf))
	assert.Equal(t, want, Strncmp(short, buf, 5))
	assert.Equal(t, want, Strncasecmp(short, buf, 5))
	assert.Equal(t, []uint32{3, 3, 3, 3, 3, 3}, rec.Scores())

	rec.Reset()
	assert.Equal(t, 0, Strncmp(short, buf, 3))
	assert.Equal(t, 0, Strncasecmp(short, buf, 2))
	assert.Empty(t, rec.Reports(), "identical within the bound")
}
