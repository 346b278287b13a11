package favicon

import (
	"strings"

	"github.com/zan8in/faviquery/pkg/template"
)

// DB maps favicon hashes to the products templates name for them.
type DB struct {
	products map[string][]string
}

func NewDB(entries []*template.Entry) *DB {
	db := &DB{products: make(map[string][]string)}
	for _, e := range entries {
		db.Add(e)
	}
	return db
}

func (db *DB) Add(e *template.Entry) {
	names := db.products[e.Hash]
	if e.HasProduct && e.Product != "" && !contains(names, e.Product) {
		names = append(names, e.Product)
	}
	db.products[e.Hash] = names
}

// Name returns the products known for hash. ok is false when no template
// names a product for it.
func (db *DB) Name(hash string) (string, bool) {
	names := db.products[hash]
	if len(names) == 0 {
		return "", false
	}
	return strings.Join(names, ", "), true
}

func (db *DB) Len() int {
	return len(db.products)
}

func contains(s []string, e string) bool {
	for _, a := range s {
		if a == e {
			return true
		}
	}
	return false
}
