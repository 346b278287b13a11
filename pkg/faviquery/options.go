package faviquery

import (
	"io"

	"github.com/pkg/errors"
	"github.com/zan8in/faviquery/pkg/util/fileutil"
	"github.com/zan8in/goflags"
	"github.com/zan8in/gologger"
	"github.com/zan8in/gologger/levels"
)

type Options struct {
	Templates string              // Templates is the root of the nuclei-templates clone
	Favicon   goflags.StringSlice // Favicon is a list of local favicon files to look up

	Output  string // Output is the file to write entries to (txt, json or csv)
	Color   bool   // Color colorizes result lines
	Silent  bool   // Silent is the flag to show only results
	Verbose bool

	Concurrency int  // Concurrency is the number of templates parsed at once
	SkipInvalid bool // SkipInvalid skips templates that fail to parse instead of aborting

	Writer io.Writer // Writer receives result lines, stdout when nil
}

func ParseOptions() *Options {
	options := &Options{}

	defaultTemplates, err := DefaultTemplatesPath()
	if err != nil {
		gologger.Debug().Msgf("%s\n", err)
	}

	flagSet := goflags.NewFlagSet()
	flagSet.SetDescription(`Extract favicon hash shodan queries from nuclei templates`)

	flagSet.CreateGroup("input", "Input",
		flagSet.StringVarP(&options.Templates, "templates", "t", defaultTemplates, "nuclei-templates directory"),
		flagSet.StringSliceVarP(&options.Favicon, "favicon", "f", nil, "local favicon files to look up in the templates (comma-separated)", goflags.NormalizedStringSliceOptions),
	)

	flagSet.CreateGroup("output", "Output",
		flagSet.StringVarP(&options.Output, "output", "o", "", "file to write output to (optional), support format: txt,csv,json"),
		flagSet.BoolVar(&options.Color, "color", false, "colorize results"),
		flagSet.BoolVar(&options.Silent, "silent", false, "show results only"),
		flagSet.BoolVarP(&options.Verbose, "verbose", "v", false, "show skipped templates"),
	)

	flagSet.CreateGroup("optimization", "Optimization",
		flagSet.IntVarP(&options.Concurrency, "concurrency", "c", DefaultConcurrency, "number of templates to parse concurrently"),
		flagSet.BoolVar(&options.SkipInvalid, "skip-invalid", false, "skip templates that fail to parse instead of exiting"),
	)

	_ = flagSet.Parse()

	options.configureOutput()

	if !options.Silent {
		ShowBanner()
	}

	if err := options.validateOptions(); err != nil {
		gologger.Fatal().Msgf("Program exiting: %s\n", err)
	}

	return options
}

var (
	errNoTemplates       = errors.New("no templates directory provided")
	errZeroValue         = errors.New("cannot be zero")
	errMutexFlags        = errors.New("incompatible flags specified")
	errUnsupportedOutput = errors.New("unsupported output format")
)

func (options *Options) configureOutput() {
	if options.Silent {
		gologger.DefaultLogger.SetMaxLevel(levels.LevelSilent)
	} else if options.Verbose {
		gologger.DefaultLogger.SetMaxLevel(levels.LevelVerbose)
	}
}

func (options *Options) validateOptions() error {
	if options.Silent && options.Verbose {
		return errors.Wrap(errMutexFlags, "silent and verbose")
	}

	if options.Templates == "" {
		return errNoTemplates
	}

	if options.Concurrency <= 0 {
		return errors.Wrap(errZeroValue, "concurrency")
	}

	if options.Output != "" && fileutil.FileExt(options.Output) == fileutil.NOT_FOUND {
		return errors.Wrap(errUnsupportedOutput, options.Output)
	}

	return nil
}
