package feedback

import "sync"

// Report is one (site, score) pair seen by a Recorder.
type Report struct {
	Site  Site
	Score uint32
}

// Recorder is a Sink that keeps every report in arrival order.
type Recorder struct {
	mu      sync.Mutex
	reports []Report
}

func (r *Recorder) Record(site Site, score uint32) {
	r.mu.Lock()
	r.reports = append(r.reports, Report{site, score})
	r.mu.Unlock()
}

// Reports returns a copy of the reports seen so far.
func (r *Recorder) Reports() []Report {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Report(nil), r.reports...)
}

// Scores returns the scores seen so far, in order.
func (r *Recorder) Scores() []uint32 {
	r.mu.Lock()
	defer r.mu.Unlock()
	var res []uint32
	for _, rep := range r.reports {
		res = append(res, rep.Score)
	}
	return res
}

func (r *Recorder) Reset() {
	r.mu.Lock()
	r.reports = nil
	r.mu.Unlock()
}
