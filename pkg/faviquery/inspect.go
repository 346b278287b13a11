package faviquery

import (
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/zan8in/faviquery/pkg/template"
	"github.com/zan8in/faviquery/pkg/util/stringutil"
	"github.com/zan8in/gologger"
)

var errInvalidTemplate = errors.New("invalid template")

type inspection struct {
	entries []*template.Entry
	err     error
}

// InspectTemplate reads and parses one template and returns its favicon
// entries. Parse failures wrap errInvalidTemplate.
func InspectTemplate(path string) ([]*template.Entry, error) {
	data, err := readTemplate(path)
	if err != nil {
		return nil, err
	}

	tpl, err := template.Parse(stringutil.ToUTF8(data))
	if err != nil {
		return nil, errors.Wrapf(errInvalidTemplate, "%s: %s", path, err)
	}

	if tpl.Info == nil {
		gologger.Debug().Msgf("%s has no info block\n", path)
		return nil, nil
	}

	return tpl.Entries(path), nil
}

func readTemplate(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return io.ReadAll(f)
}

func IsInvalidTemplate(err error) bool {
	return errors.Is(err, errInvalidTemplate)
}
