// Copyright 2015 go-fuzz project authors. All rights reserved.
// Use of this source code is governed by Apache 2 LICENSE that can be found in the LICENSE file.

// Package replay runs a fuzz function over a set of inputs with a comparison
// feedback table installed, and reports which inputs made comparison progress.
package replay

import (
	"fmt"
	"runtime/debug"

	"github.com/bradleyjkemp/cmpfuzz/feedback"
)

const MaxInputSize = 1 << 20

type Input struct {
	Name string
	Data []byte
}

type Result struct {
	Name string
	Res  int

	Sites    int    // slots the input reached
	NewSites int    // slots no earlier input reached
	Progress uint64 // sum of score increases while the input ran
	Improved bool   // raised the best score of some slot

	Crashed  bool
	Output   []byte
	Location string // file:line of the panicking frame, when it can be found
}

// Runner owns the feedback table while inputs run.
type Runner struct {
	fuzzFunc func([]byte) int
	table    *feedback.Table

	maxFeedback   []uint32
	execs         uint64
	feedFullness  int
	improvingRuns int
}

func NewRunner(fn func([]byte) int, table *feedback.Table) *Runner {
	return &Runner{
		fuzzFunc:    fn,
		table:       table,
		maxFeedback: make([]uint32, table.Size()),
	}
}

// Run executes one input and folds its feedback into the runner's maximum.
func (r *Runner) Run(input Input) Result {
	data := input.Data
	if len(data) > MaxInputSize {
		data = data[:MaxInputSize]
	}
	res := Result{Name: input.Name}

	r.table.Reset()
	prev := feedback.SetSink(r.table)
	res.Res, res.Output, res.Crashed = r.runFuzzFunc(data)
	feedback.SetSink(prev)

	cur := r.table.Snapshot()
	res.Progress = r.table.Progress()
	res.Sites = r.table.Sites()
	res.NewSites = feedback.NewSites(r.maxFeedback, cur)
	res.Improved = feedback.Improves(r.maxFeedback, cur)
	if res.Improved {
		r.improvingRuns++
	}
	r.feedFullness = feedback.UpdateMax(r.maxFeedback, cur)
	if res.Crashed {
		res.Location = extractCrashLocation(res.Output)
	}
	return res
}

func (r *Runner) runFuzzFunc(input []byte) (result int, output []byte, crashed bool) {
	r.execs++
	defer func() {
		err := recover()
		if err != nil {
			crashed = true
			output = []byte(fmt.Sprintf("panic: %v\n\n%s", err, debug.Stack()))
		}
	}()
	result = r.fuzzFunc(input[0:len(input):len(input)])
	return
}

// Stats summarises every input run so far.
type Stats struct {
	Execs     uint64
	Sites     int // slots with a non-zero best score
	Improving int // runs that raised some slot's best score
}

func (r *Runner) Stats() Stats {
	return Stats{
		Execs:     r.execs,
		Sites:     r.feedFullness,
		Improving: r.improvingRuns,
	}
}

func (s Stats) String() string {
	return fmt.Sprintf("execs: %v, comparison sites: %v, improving inputs: %v", s.Execs, s.Sites, s.Improving)
}
