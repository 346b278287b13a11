package faviquery

import (
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/zan8in/faviquery/pkg/template"
	"github.com/zan8in/faviquery/pkg/util/fileutil"
)

type OutputResult struct {
	Template string `json:"template" csv:"template"`
	Hash     string `json:"hash" csv:"hash"`
	Product  string `json:"product,omitempty" csv:"product"`
	URL      string `json:"url" csv:"url"`

	line string
}

func newOutputResult(entry *template.Entry) *OutputResult {
	return &OutputResult{
		Template: entry.Template,
		Hash:     entry.Hash,
		Product:  entry.Product,
		URL:      entry.URL(),
		line:     entry.Line(),
	}
}

func (r *Runner) WriteOutput() error {
	if !r.Result.HasEntries() || len(r.Options.Output) == 0 {
		return nil
	}

	output := r.Options.Output
	fileType := fileutil.FileExt(output)
	if fileType == fileutil.NOT_FOUND {
		return errUnsupportedOutput
	}

	outputFolder := filepath.Dir(output)
	if !fileutil.FolderExists(outputFolder) {
		if err := os.MkdirAll(outputFolder, 0700); err != nil {
			return errors.Wrap(err, "could not create output folder")
		}
	}

	file, err := os.Create(output)
	if err != nil {
		return err
	}
	defer file.Close()

	var csvutil *csv.Writer
	if fileType == fileutil.FILE_CSV {
		if _, err := file.WriteString("\xEF\xBB\xBF"); err != nil {
			return err
		}
		csvutil = csv.NewWriter(file)
		if err := csvutil.Write([]string{"Hash", "Product", "URL", "Template"}); err != nil {
			return err
		}
	}

	for _, entry := range r.Result.Entries() {
		or := newOutputResult(entry)

		switch fileType {
		case fileutil.FILE_TXT:
			err = fileutil.BufferWriteAppend(file, or.TXT())
		case fileutil.FILE_JSON:
			b, marshallErr := or.JSON()
			if marshallErr != nil {
				return marshallErr
			}
			err = fileutil.BufferWriteAppend(file, string(b)+"\n")
		case fileutil.FILE_CSV:
			err = csvutil.Write(or.CSV())
		}
		if err != nil {
			return err
		}
	}

	if csvutil != nil {
		csvutil.Flush()
		return csvutil.Error()
	}

	return nil
}

func (or *OutputResult) JSON() ([]byte, error) {
	return json.Marshal(or)
}

func (or *OutputResult) TXT() string {
	return or.line + "\n"
}

func (or *OutputResult) CSV() []string {
	return []string{or.Hash, or.Product, or.URL, or.Template}
}
