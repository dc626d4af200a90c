// Copyright 2015 go-fuzz project authors. All rights reserved.
// Use of this source code is governed by Apache 2 LICENSE that can be found in the LICENSE file.

package feedback

import (
	"fmt"
	"sync/atomic"
)

// DefaultTableSize is the number of slots in a table created by NewTable(0).
const DefaultTableSize = 64 << 10

// Table is a Sink holding the best score seen per site since the last Reset.
// Sites share a slot when they are equal modulo the table size.
type Table struct {
	vals     []uint32
	progress atomic.Uint64
}

// NewTable returns a table with size slots, or DefaultTableSize if size is 0.
func NewTable(size int) *Table {
	if size < 0 {
		panic(fmt.Sprintf("bad feedback table size (%v)", size))
	}
	if size == 0 {
		size = DefaultTableSize
	}
	return &Table{vals: make([]uint32, size)}
}

func (t *Table) Size() int {
	return len(t.vals)
}

// Record keeps the maximum of score and the slot's current value. Every
// increase is added to the progress counter.
func (t *Table) Record(site Site, score uint32) {
	slot := &t.vals[uintptr(site)%uintptr(len(t.vals))]
	for {
		prev := atomic.LoadUint32(slot)
		if prev >= score {
			return
		}
		if atomic.CompareAndSwapUint32(slot, prev, score) {
			t.progress.Add(uint64(score - prev))
			return
		}
	}
}

// Progress is the sum of all increases recorded since the last Reset.
func (t *Table) Progress() uint64 {
	return t.progress.Load()
}

// Reset clears the table. It must not race with Record if the caller relies on
// the cleared state, e.g. at the start of a fuzz iteration.
func (t *Table) Reset() {
	for i := range t.vals {
		atomic.StoreUint32(&t.vals[i], 0)
	}
	t.progress.Store(0)
}

// Snapshot returns a copy of the slots.
func (t *Table) Snapshot() []uint32 {
	res := make([]uint32, len(t.vals))
	for i := range t.vals {
		res[i] = atomic.LoadUint32(&t.vals[i])
	}
	return res
}

// Sites returns the number of non-zero slots.
func (t *Table) Sites() int {
	cnt := 0
	for i := range t.vals {
		if atomic.LoadUint32(&t.vals[i]) != 0 {
			cnt++
		}
	}
	return cnt
}

// Max returns the highest score in the table.
func (t *Table) Max() uint32 {
	var best uint32
	for i := range t.vals {
		if v := atomic.LoadUint32(&t.vals[i]); v > best {
			best = v
		}
	}
	return best
}

// Improves reports whether cur has a higher score than base in any slot.
func Improves(base, cur []uint32) bool {
	if len(base) != len(cur) {
		panic(fmt.Sprintf("bad feedback table size (%v, %v)", len(base), len(cur)))
	}
	for i, v := range base {
		if cur[i] > v {
			return true
		}
	}
	return false
}

// UpdateMax raises base to cur slot-wise and returns the number of slots
// that are non-zero afterwards.
func UpdateMax(base, cur []uint32) int {
	if len(base) != len(cur) {
		panic(fmt.Sprintf("bad feedback table size (%v, %v)", len(base), len(cur)))
	}
	cnt := 0
	for i, x := range cur {
		v := base[i]
		if v != 0 || x > 0 {
			cnt++
		}
		if v < x {
			base[i] = x
		}
	}
	return cnt
}

// NewSites returns the number of slots that are zero in base and non-zero in cur.
func NewSites(base, cur []uint32) int {
	cnt := 0
	for i, x := range cur {
		if x != 0 && base[i] == 0 {
			cnt++
		}
	}
	return cnt
}
