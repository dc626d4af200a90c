// Copyright 2015 go-fuzz project authors. All rights reserved.
// Use of this source code is governed by Apache 2 LICENSE that can be found in the LICENSE file.

package replay

import (
	"flag"
	"fmt"
	"io/ioutil"
	"log"
	"net/http"
	"os/user"
	"path/filepath"
	"sort"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/bradleyjkemp/cmpfuzz/feedback"
)

var (
	flagCorpus = flag.String("corpus", "", "dir with inputs to replay")
	flagHTTP   = flag.String("http", "", "serve feedback metrics on this address")
	flagTable  = flag.Int("table", feedback.DefaultTableSize, "feedback table size")
	flagV      = flag.Int("v", 0, "verbosity level")
	flagFunc   = flag.String("func", "", "which function to replay")
)

// MainFuncs is Main for binaries holding several fuzz functions; -func picks
// one, defaulting to the first by name.
func MainFuncs(funcs map[string]func([]byte) int) {
	flag.Parse()
	name, fn, err := selectFunc(funcs, *flagFunc)
	if err != nil {
		log.Fatalf("%v", err)
	}
	log.Printf("replaying function %s", name)
	Main(fn)
}

func selectFunc(funcs map[string]func([]byte) int, name string) (string, func([]byte) int, error) {
	if len(funcs) == 0 {
		return "", nil, fmt.Errorf("no functions available to replay")
	}
	if name == "" {
		var names []string
		for n := range funcs {
			names = append(names, n)
		}
		sort.Strings(names)
		log.Printf("functions available to replay: %v", names)
		name = names[0]
	}
	fn, ok := funcs[name]
	if !ok {
		return "", nil, fmt.Errorf("function %s not available to replay", name)
	}
	return name, fn, nil
}

// Main replays every file in -corpus through fn and logs the comparison
// progress each one made. Instrumented fuzz binaries call it from main.
func Main(fn func([]byte) int) {
	if !flag.Parsed() {
		flag.Parse()
	}
	if *flagCorpus == "" {
		log.Fatalf("-corpus is not set")
	}
	inputs, err := LoadCorpus(expandHomeDir(*flagCorpus))
	if err != nil {
		log.Fatalf("%v", err)
	}

	table := feedback.NewTable(*flagTable)
	if *flagHTTP != "" {
		reg := prometheus.NewRegistry()
		reg.MustRegister(feedback.NewCollector(table))
		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
		go func() {
			if err := http.ListenAndServe(*flagHTTP, mux); err != nil {
				log.Fatalf("failed to serve metrics: %v", err)
			}
		}()
	}

	r := NewRunner(fn, table)
	for _, input := range inputs {
		res := r.Run(input)
		switch {
		case res.Crashed:
			log.Printf("%v: crashed at %v", res.Name, res.Location)
			if *flagV >= 1 {
				log.Printf("%s", res.Output)
			}
		case res.Improved || *flagV >= 1:
			log.Printf("%v: res=%v sites=%v new=%v progress=%v", res.Name, res.Res, res.Sites, res.NewSites, res.Progress)
		}
	}
	log.Println(r.Stats())
}

// LoadCorpus reads every regular file in dir, ordered by name.
func LoadCorpus(dir string) ([]Input, error) {
	infos, err := ioutil.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read corpus dir: %w", err)
	}
	var inputs []Input
	for _, info := range infos {
		if !info.Mode().IsRegular() {
			continue
		}
		data, err := ioutil.ReadFile(filepath.Join(dir, info.Name()))
		if err != nil {
			return nil, fmt.Errorf("failed to read input %v: %w", strconv.Quote(info.Name()), err)
		}
		inputs = append(inputs, Input{Name: info.Name(), Data: data})
	}
	return inputs, nil
}

// expandHomeDir expands the tilde sign and replaces it
// with current users home directory and returns it.
func expandHomeDir(path string) string {
	if len(path) > 2 && path[:2] == "~/" {
		usr, _ := user.Current()
		path = filepath.Join(usr.HomeDir, path[2:])
	}
	return path
}
