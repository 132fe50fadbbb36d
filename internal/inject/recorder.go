package inject

import "sync"

// Recorder is an Injector that records sequences instead of spawning
// anything. It backs tests and the dispatcher's dry-run mode. The zero
// value is ready to use.
type Recorder struct {
	mu   sync.Mutex
	seqs []Sequence
}

var _ Injector = (*Recorder)(nil)

// Inject appends the sequence to the record.
func (r *Recorder) Inject(seq Sequence) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seqs = append(r.seqs, seq)
}

// Sequences returns the recorded sequences, oldest first.
func (r *Recorder) Sequences() []Sequence {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Sequence(nil), r.seqs...)
}

// Names returns the recorded sequence names, oldest first.
func (r *Recorder) Names() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	names := make([]string, len(r.seqs))
	for i, s := range r.seqs {
		names[i] = s.Name()
	}
	return names
}

// Len returns the number of recorded sequences.
func (r *Recorder) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.seqs)
}

// Reset clears the record.
func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seqs = nil
}
