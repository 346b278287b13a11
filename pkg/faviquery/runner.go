package faviquery

import (
	"fmt"
	"io"
	"os"

	"github.com/remeh/sizedwaitgroup"
	"github.com/zan8in/faviquery/pkg/favicon"
	"github.com/zan8in/faviquery/pkg/logcolor"
	"github.com/zan8in/faviquery/pkg/result"
	"github.com/zan8in/faviquery/pkg/template"
	"github.com/zan8in/gologger"
)

type Runner struct {
	Options *Options
	Result  *result.Result

	wgscan sizedwaitgroup.SizedWaitGroup
	out    io.Writer
}

func NewRunner(options *Options) (*Runner, error) {
	if err := options.validateOptions(); err != nil {
		return nil, err
	}

	runner := &Runner{
		Options: options,
		Result:  result.NewResult(),
		wgscan:  sizedwaitgroup.New(options.Concurrency),
		out:     options.Writer,
	}

	if runner.out == nil {
		runner.out = os.Stdout
	}

	return runner, nil
}

// Run scans the templates, prints one line per favicon entry (or one line
// per looked up favicon) and writes the output file.
func (r *Runner) Run() error {
	scanErr := r.Scan()

	if len(r.Options.Favicon) > 0 && scanErr == nil {
		r.LookupFavicons()
	}

	if err := r.WriteOutput(); err != nil {
		gologger.Error().Msgf("Could not write output %s: %s\n", r.Options.Output, err)
	}

	return scanErr
}

// Scan inspects every template and emits entries in enumeration order.
// Entries of templates before a failing one are emitted before the error
// is returned.
func (r *Runner) Scan() error {
	paths, err := EnumerateTemplates(r.Options.Templates)
	if err != nil {
		return err
	}

	gologger.Info().Msgf("Found %d templates in %s\n", len(paths), r.Options.Templates)

	inspections := make([]inspection, len(paths))
	for i, path := range paths {
		r.wgscan.Add()

		go func(i int, path string) {
			defer r.wgscan.Done()

			entries, err := InspectTemplate(path)
			inspections[i] = inspection{entries: entries, err: err}
		}(i, path)
	}
	r.wgscan.Wait()

	for i, in := range inspections {
		if in.err != nil {
			if r.Options.SkipInvalid && IsInvalidTemplate(in.err) {
				gologger.Error().Msgf("Skipping %s\n", in.err)
				continue
			}
			return in.err
		}

		if len(in.entries) == 0 {
			gologger.Debug().Msgf("%s has no favicon hash query\n", paths[i])
		}

		for _, entry := range in.entries {
			r.emit(entry)
		}
	}

	return nil
}

func (r *Runner) emit(entry *template.Entry) {
	r.Result.AddEntry(entry)

	if len(r.Options.Favicon) > 0 {
		return
	}

	fmt.Fprintln(r.out, r.format(entry))
}

func (r *Runner) format(entry *template.Entry) string {
	if !r.Options.Color {
		return entry.Line()
	}
	if entry.HasProduct {
		return logcolor.LogColor.Hash(entry.Hash) + " " + logcolor.LogColor.Product(entry.Product)
	}
	return logcolor.LogColor.URL(entry.URL())
}

// LookupFavicons hashes the local favicon files and names them from the
// scanned entries.
func (r *Runner) LookupFavicons() {
	db := favicon.NewDB(r.Result.Entries())
	gologger.Info().Msgf("Loaded %d favicon hashes\n", db.Len())

	for _, path := range r.Options.Favicon {
		found, err := favicon.Lookup(db, path)
		if err != nil {
			gologger.Error().Msgf("%s\n", logcolor.LogColor.Failed(err.Error()))
			continue
		}

		fmt.Fprintln(r.out, found.Format())
	}
}
