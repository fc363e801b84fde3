package tableau

import (
	"github.com/pkg/errors"

	"github.com/costela/lptrace"
)

type Option func(*Renderer) error

func WithLogger(logger lptrace.Logger) Option {
	return func(r *Renderer) error {
		if logger == nil {
			return errors.New("nil logger")
		}
		r.logger = logger

		return nil
	}
}

// WithFormatter selects the output dialect. The default is a TextFormatter.
func WithFormatter(f Formatter) Option {
	return func(r *Renderer) error {
		if f == nil {
			return errors.New("nil formatter")
		}
		r.formatter = f

		return nil
	}
}
