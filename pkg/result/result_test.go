package result

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/zan8in/faviquery/pkg/template"
)

func TestResultKeepsOrderAndDuplicates(t *testing.T) {
	r := NewResult()
	assert.False(t, r.HasEntries())

	r.AddEntry(&template.Entry{Hash: "1"})
	r.AddEntrySlice([]*template.Entry{{Hash: "2"}, {Hash: "1"}})

	assert.True(t, r.HasEntries())
	assert.Equal(t, 3, r.Len())

	var hashes []string
	for e := range r.GetEntries() {
		hashes = append(hashes, e.Hash)
	}
	assert.Equal(t, []string{"1", "2", "1"}, hashes)

	entries := r.Entries()
	entries[0] = nil
	assert.NotNil(t, r.Entries()[0])
}
