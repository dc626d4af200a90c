// Copyright 2015 go-fuzz project authors. All rights reserved.
// Use of this source code is governed by Apache 2 LICENSE that can be found in the LICENSE file.

package replay

import (
	"bytes"
	"io/ioutil"
	"regexp"

	"github.com/maruel/panicparse/stack"
)

// frameArgs matches the argument list of a function line in a goroutine dump.
// Newer runtimes print composite arguments as {0x1, 0x2} and mark unsure
// words with '?', neither of which the parser accepts.
var frameArgs = regexp.MustCompile(`(?m)^(\S.*)\([^()]*\)(\r?)$`)

// extractCrashLocation returns the source line of the frame that panicked in
// crash output produced by runFuzzFunc, or "" if the stack cannot be parsed.
func extractCrashLocation(out []byte) string {
	out = frameArgs.ReplaceAll(out, []byte("${1}()${2}"))
	ctx, err := stack.ParseDump(bytes.NewReader(out), ioutil.Discard, false)
	if err != nil || ctx == nil {
		return ""
	}
	for _, gr := range ctx.Goroutines {
		if !gr.First {
			continue
		}
		calls := gr.Stack.Calls
		for i, call := range calls {
			if call.Func.Raw != "panic" && call.Func.Raw != "runtime.gopanic" {
				continue
			}
			if i+1 < len(calls) {
				return calls[i+1].FullSrcLine()
			}
		}
		return ""
	}
	return ""
}
