package faviquery

import (
	"io"

	"github.com/zan8in/faviquery/pkg/result"
)

// Scanner runs a template scan without printing and keeps the entries.
type Scanner struct {
	options *Options
	Result  *result.Result
}

func NewScanner(options *Options) (*Scanner, error) {
	if options.Templates == "" {
		templates, err := DefaultTemplatesPath()
		if err != nil {
			return nil, err
		}
		options.Templates = templates
	}

	if options.Concurrency <= 0 {
		options.Concurrency = DefaultConcurrency
	}

	if options.Writer == nil {
		options.Writer = io.Discard
	}

	if err := options.validateOptions(); err != nil {
		return nil, err
	}

	scanner := &Scanner{
		options: options,
		Result:  result.NewResult(),
	}

	return scanner, nil
}

func (s *Scanner) Run() error {
	runner, err := NewRunner(s.options)
	if err != nil {
		return err
	}

	err = runner.Scan()
	s.Result.AddEntrySlice(runner.Result.Entries())

	return err
}
