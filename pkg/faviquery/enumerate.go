package faviquery

import (
	"io/fs"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/zan8in/faviquery/pkg/util/fileutil"
	"github.com/zan8in/gologger"
)

func DefaultTemplatesPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", errors.Wrap(err, "could not resolve home directory")
	}
	return filepath.Join(home, DefaultTemplatesDir), nil
}

// EnumerateTemplates lists every .yaml file under root in walk order.
// A missing root yields no paths and no error.
func EnumerateTemplates(root string) ([]string, error) {
	if !fileutil.FolderExists(root) {
		gologger.Debug().Msgf("Templates directory %s not found\n", root)
		return nil, nil
	}

	var paths []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		// a bare ".yaml" dotfile has no extension
		if name := d.Name(); name != TemplateExt && filepath.Ext(name) == TemplateExt {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return nil, errors.Wrapf(err, "could not walk %s", root)
	}

	return paths, nil
}
