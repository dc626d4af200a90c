package replay

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractCrashLocation(t *testing.T) {
	tests := []struct {
		name string
		out  string
		want string
	}{
		{
			name: "braced arguments",
			out: `panic: found magic

goroutine 7 [running]:
runtime/debug.Stack()
	/usr/local/go/src/runtime/debug/stack.go:24 +0x5e
github.com/bradleyjkemp/cmpfuzz/replay.(*Runner).runFuzzFunc.func1()
	/src/cmpfuzz/replay/runner.go:94 +0x4b
panic({0x5d1f40?, 0x6b7c10?})
	/usr/local/go/src/runtime/panic.go:914 +0x21f
github.com/bradleyjkemp/cmpfuzz/replay.fuzzMagic({0xc000016190, 0x5, 0x5})
	/src/cmpfuzz/replay/runner_test.go:19 +0x85
github.com/bradleyjkemp/cmpfuzz/replay.(*Runner).runFuzzFunc(0xc00007e0f0, {0xc000016190?, 0x5?, 0x5?})
	/src/cmpfuzz/replay/runner.go:98 +0x6c
created by testing.(*T).Run in goroutine 1
	/usr/local/go/src/testing/testing.go:1648 +0x3ad
`,
			want: "/src/cmpfuzz/replay/runner_test.go:19",
		},
		{
			name: "word arguments",
			out: `panic: boom

goroutine 1 [running]:
panic(0x4b6a40, 0xc42000e1e0)
	/usr/lib/go/src/runtime/panic.go:489 +0x2cf
main.fuzz(0xc42000e1c0, 0x3, 0x3, 0x0)
	/home/u/fuzz.go:12 +0x64
main.main()
	/home/u/main.go:5 +0x3f
`,
			want: "/home/u/fuzz.go:12",
		},
		{
			name: "no panic frame",
			out: `goroutine 1 [running]:
main.main()
	/home/u/main.go:5 +0x3f
`,
		},
		{name: "not a dump", out: "boom\n"},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.want, extractCrashLocation([]byte(test.out)))
		})
	}
}
