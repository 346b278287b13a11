package favicon

import (
	"fmt"
	"os"
	"strconv"

	"github.com/pkg/errors"
	"github.com/zan8in/faviquery/pkg/template"
	"github.com/zan8in/faviquery/pkg/util/faviconhashutil"
)

// Found is a local favicon matched against the template database.
type Found struct {
	Path string
	Hash string
	Name string
}

func (f *Found) Format() string {
	return fmt.Sprintf("[%s] [%s] %s", f.Hash, f.Name, f.Path)
}

var ErrNotImage = errors.New("content type is not image")

// HashFile returns the shodan favicon hash of a local image file.
func HashFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}

	if !faviconhashutil.IsImage(data) {
		return "", errors.Wrap(ErrNotImage, path)
	}

	return strconv.FormatInt(int64(faviconhashutil.Hash(data)), 10), nil
}

// Lookup hashes the file at path and names it from db. Unknown hashes are
// named by their shodan search URL.
func Lookup(db *DB, path string) (*Found, error) {
	hash, err := HashFile(path)
	if err != nil {
		return nil, err
	}

	found := &Found{Path: path, Hash: hash}
	if name, ok := db.Name(hash); ok {
		found.Name = name
	} else {
		found.Name = template.ShodanURL(hash)
	}

	return found, nil
}
