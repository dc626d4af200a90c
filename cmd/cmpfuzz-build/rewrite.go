// Copyright 2015 go-fuzz project authors. All rights reserved.
// Use of this source code is governed by Apache 2 LICENSE that can be found in the LICENSE file.

package main

import (
	"bytes"
	"crypto/sha1"
	"encoding/binary"
	"fmt"
	"go/ast"
	"go/printer"
	"go/token"
	"go/types"
	"log"
	"path"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/bradleyjkemp/cmpfuzz/intercept"
)

// File is one source file being instrumented.
type File struct {
	fset    *token.FileSet
	pkg     string
	astFile *ast.File
	info    *types.Info // nil when only syntax is available
	cfg     *intercept.Config
	lits    map[string]struct{}
	verbose bool
}

// instrument rewrites every enabled hook call F(args) in the file to
// FAt(site, args) and returns the number of rewritten calls.
func (f *File) instrument() int {
	imports := f.adapterImports()
	if len(imports) == 0 {
		return 0
	}
	calls := 0
	ast.Inspect(f.astFile, func(n ast.Node) bool {
		call, ok := n.(*ast.CallExpr)
		if !ok {
			return true
		}
		sel, ok := call.Fun.(*ast.SelectorExpr)
		if !ok {
			return true
		}
		x, ok := sel.X.(*ast.Ident)
		if !ok {
			return true
		}
		pkgPath := f.importPath(x, imports)
		if pkgPath == "" {
			return true
		}
		sym, ok := intercept.ByFunc(pkgPath, sel.Sel.Name)
		if !ok || !f.cfg.Enabled(sym) {
			return true
		}
		site := f.siteID(call.Pos())
		if f.verbose {
			log.Printf("%v: %v -> site %#x", f.fset.Position(call.Pos()), sym.Name, site)
		}
		for _, arg := range call.Args {
			collectLiterals(arg, sym.Terminated(), f.lits)
		}
		sel.Sel = &ast.Ident{NamePos: sel.Sel.NamePos, Name: sym.SiteFunc()}
		siteLit := &ast.BasicLit{
			ValuePos: call.Lparen,
			Kind:     token.INT,
			Value:    fmt.Sprintf("%#x", site),
		}
		call.Args = append([]ast.Expr{siteLit}, call.Args...)
		calls++
		return true
	})
	return calls
}

// adapterImports maps the local names of imported hook packages to their paths.
func (f *File) adapterImports() map[string]string {
	res := make(map[string]string)
	for _, spec := range f.astFile.Imports {
		p, err := strconv.Unquote(spec.Path.Value)
		if err != nil || !intercept.IsAdapterPackage(p) {
			continue
		}
		name := path.Base(p)
		if spec.Name != nil {
			name = spec.Name.Name
		}
		if name == "_" || name == "." {
			continue
		}
		res[name] = p
	}
	return res
}

// importPath returns the path of the package x refers to, or "" if x is not a
// reference to an imported hook package.
func (f *File) importPath(x *ast.Ident, imports map[string]string) string {
	if f.info != nil {
		pn, ok := f.info.Uses[x].(*types.PkgName)
		if !ok {
			return ""
		}
		return pn.Imported().Path()
	}
	if x.Obj != nil {
		// Resolved to a local declaration shadowing the import.
		return ""
	}
	return imports[x.Name]
}

// siteID derives a stable, non-zero id for the call expression at pos.
func (f *File) siteID(pos token.Pos) uint32 {
	p := f.fset.Position(pos)
	key := fmt.Sprintf("%v:%v:%v:%v", f.pkg, filepath.Base(p.Filename), p.Line, p.Column)
	hash := sha1.Sum([]byte(key))
	id := binary.LittleEndian.Uint32(hash[:4])
	if id == 0 {
		id = 1
	}
	return id
}

// trimComments keeps only //go: directives; the rewritten AST no longer lines
// up with the original comment positions.
func trimComments(file *ast.File, fset *token.FileSet) []*ast.CommentGroup {
	var comments []*ast.CommentGroup
	for _, group := range file.Comments {
		var list []*ast.Comment
		for _, comment := range group.List {
			if strings.HasPrefix(comment.Text, "//go:") && fset.Position(comment.Slash).Column == 1 {
				list = append(list, comment)
			}
		}
		if list != nil {
			comments = append(comments, &ast.CommentGroup{List: list})
		}
	}
	return comments
}

func (f *File) print() ([]byte, error) {
	f.astFile.Comments = trimComments(f.astFile, f.fset)
	cfg := printer.Config{
		Mode:     printer.SourcePos,
		Tabwidth: 8,
		Indent:   0,
	}
	buf := new(bytes.Buffer)
	if err := cfg.Fprint(buf, f.fset, f.astFile); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
