package result

import (
	"sync"

	"github.com/zan8in/faviquery/pkg/template"
)

// Result keeps favicon entries in the order they were emitted.
type Result struct {
	sync.RWMutex
	entries []*template.Entry
}

func NewResult() *Result {
	return &Result{}
}

func (r *Result) GetEntries() chan *template.Entry {
	r.RLock()

	out := make(chan *template.Entry)

	go func() {
		defer close(out)
		defer r.RUnlock()

		for _, entry := range r.entries {
			out <- entry
		}
	}()

	return out
}

// Entries returns a copy of the stored entries.
func (r *Result) Entries() []*template.Entry {
	r.RLock()
	defer r.RUnlock()

	return append([]*template.Entry(nil), r.entries...)
}

func (r *Result) HasEntries() bool {
	r.RLock()
	defer r.RUnlock()

	return len(r.entries) > 0
}

func (r *Result) Len() int {
	r.RLock()
	defer r.RUnlock()

	return len(r.entries)
}

func (r *Result) AddEntry(entry *template.Entry) {
	r.Lock()
	defer r.Unlock()

	r.entries = append(r.entries, entry)
}

func (r *Result) AddEntrySlice(entries []*template.Entry) {
	r.Lock()
	defer r.Unlock()

	r.entries = append(r.entries, entries...)
}
