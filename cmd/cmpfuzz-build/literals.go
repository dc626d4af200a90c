package main

import (
	"bytes"
	"fmt"
	"go/ast"
	"go/token"
	"sort"
	"strconv"
)

// collectLiterals adds the string and char literals found in arg to lits.
// Literals handed to C string functions end at their first NUL.
func collectLiterals(arg ast.Expr, terminated bool, lits map[string]struct{}) {
	ast.Inspect(arg, func(n ast.Node) bool {
		switch nn := n.(type) {
		case *ast.FuncLit:
			return false
		case *ast.BasicLit:
			var lit string
			switch nn.Kind {
			case token.STRING:
				v, err := strconv.Unquote(nn.Value)
				if err != nil {
					return false
				}
				lit = v
			case token.CHAR:
				v, _, _, err := strconv.UnquoteChar(nn.Value[1:len(nn.Value)-1], '\'')
				if err != nil || v > 0xff {
					return false
				}
				lit = string([]byte{byte(v)})
			default:
				return false
			}
			if terminated {
				if i := bytes.IndexByte([]byte(lit), 0); i >= 0 {
					lit = lit[:i]
				}
			}
			if lit != "" {
				lits[lit] = struct{}{}
			}
			return false
		}
		return true
	})
}

// formatDictionary renders lits as a fuzzer dictionary, one quoted entry per
// line, with non-printable bytes written as \xNN.
func formatDictionary(lits map[string]struct{}) []byte {
	list := make([]string, 0, len(lits))
	for lit := range lits {
		list = append(list, lit)
	}
	sort.Strings(list)

	buf := new(bytes.Buffer)
	for _, lit := range list {
		buf.WriteByte('"')
		for i := 0; i < len(lit); i++ {
			c := lit[i]
			switch {
			case c == '"' || c == '\\':
				buf.WriteByte('\\')
				buf.WriteByte(c)
			case c >= 0x20 && c < 0x7f:
				buf.WriteByte(c)
			default:
				fmt.Fprintf(buf, "\\x%02x", c)
			}
		}
		buf.WriteString("\"\n")
	}
	return buf.Bytes()
}
