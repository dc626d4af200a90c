// Copyright 2015 go-fuzz project authors. All rights reserved.
// Use of this source code is governed by Apache 2 LICENSE that can be found in the LICENSE file.

// Command cmpfuzz-build redirects calls to the comparison hooks so that each
// call expression reports under its own build-time site id, and collects the
// literals those calls compare against into a fuzzing dictionary.
package main

import (
	"flag"
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"io/ioutil"
	"log"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/tools/go/packages"

	"github.com/bradleyjkemp/cmpfuzz/intercept"
)

var (
	flagOut    = flag.String("o", "", "directory to write instrumented sources to")
	flagConfig = flag.String("config", "", "YAML file selecting the libraries and symbols to redirect")
	flagDict   = flag.String("dict", "", "write the compared literals to this dictionary file (overrides the config)")
	flagV      = flag.Bool("v", false, "log every redirected call")
)

// basePackagesConfig returns a base golang.org/x/tools/go/packages.Config
// that clients can then modify and use for calls to go/packages.
func basePackagesConfig() *packages.Config {
	cfg := new(packages.Config)
	cfg.Env = os.Environ()
	return cfg
}

func main() {
	flag.Parse()
	c := new(Context)

	if *flagOut == "" {
		c.failf("usage: cmpfuzz-build -o outdir [-config file] [pkg...]")
	}
	patterns := flag.Args()
	if len(patterns) == 0 {
		patterns = []string{"."}
	}

	c.cfg = intercept.DefaultConfig()
	if *flagConfig != "" {
		cfg, err := intercept.LoadConfig(*flagConfig)
		if err != nil {
			c.failf("%v", err)
		}
		c.cfg = cfg
	}
	dict := c.cfg.Dictionary
	if *flagDict != "" {
		dict = *flagDict
	}

	c.loadPkgs(patterns)
	c.lits = make(map[string]struct{})
	c.instrumentPackages()
	if dict != "" {
		c.writeFile(dict, formatDictionary(c.lits))
	}
	log.Printf("redirected %v calls in %v packages, %v literals", c.calls, len(c.targetPackages), len(c.lits))
}

// Context holds state for a cmpfuzz-build run.
type Context struct {
	targetPackages []*packages.Package
	cfg            *intercept.Config

	lits  map[string]struct{}
	calls int
}

// loadPkgs loads, parses, and typechecks the packages to instrument.
func (c *Context) loadPkgs(patterns []string) {
	cfg := basePackagesConfig()
	cfg.Mode = packages.NeedName | packages.NeedFiles | packages.NeedCompiledGoFiles |
		packages.NeedImports | packages.NeedTypes | packages.NeedSyntax | packages.NeedTypesInfo
	// use custom ParseFile in order to get comments
	cfg.ParseFile = func(fset *token.FileSet, filename string, src []byte) (*ast.File, error) {
		return parser.ParseFile(fset, filename, src, parser.ParseComments)
	}
	var err error
	c.targetPackages, err = packages.Load(cfg, patterns...)
	if err != nil {
		c.failf("could not load packages: %v", err)
	}

	// Stop if any package had errors.
	if packages.PrintErrors(c.targetPackages) > 0 {
		c.failf("typechecking of %v failed", strings.Join(patterns, " "))
	}
}

func (c *Context) isIgnored(pkg string) bool {
	return intercept.IsAdapterPackage(pkg) ||
		strings.HasPrefix(pkg, "github.com/bradleyjkemp/cmpfuzz/")
}

func (c *Context) instrumentPackages() {
	for _, pkg := range c.targetPackages {
		if c.isIgnored(pkg.PkgPath) {
			continue
		}
		path := filepath.Join(*flagOut, filepath.FromSlash(pkg.PkgPath))
		c.mkdirAll(path)

		for i, fullName := range pkg.CompiledGoFiles {
			fname := filepath.Base(fullName)
			if !strings.HasSuffix(fullName, ".go") || i >= len(pkg.Syntax) {
				// This is a cgo-generated file.
				// Instrumenting it currently does not work.
				// See https://golang.org/issue/30479.
				continue
			}
			f := &File{
				fset:    pkg.Fset,
				pkg:     pkg.PkgPath,
				astFile: pkg.Syntax[i],
				info:    pkg.TypesInfo,
				cfg:     c.cfg,
				lits:    c.lits,
				verbose: *flagV,
			}
			c.calls += f.instrument()
			out, err := f.print()
			if err != nil {
				c.failf("failed to print %v: %v", fullName, err)
			}
			c.writeFile(filepath.Join(path, fname), out)
		}
		for _, f := range pkg.OtherFiles {
			c.copyFile(f, filepath.Join(path, filepath.Base(f)))
		}
	}
}

func (c *Context) copyFile(src, dst string) {
	contents, err := ioutil.ReadFile(src)
	if err != nil {
		c.failf("copyFile: could not read %v: %v", src, err)
	}
	c.writeFile(dst, contents)
}

func (c *Context) failf(str string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, str+"\n", args...)
	os.Exit(1)
}

func (c *Context) writeFile(name string, data []byte) {
	if err := ioutil.WriteFile(name, data, 0644); err != nil {
		c.failf("failed to write file: %v", err)
	}
}

func (c *Context) mkdirAll(dir string) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		c.failf("failed to create dir: %v", err)
	}
}
