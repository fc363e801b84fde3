package lptrace

import "github.com/pkg/errors"

type Option func(*Parser) error

func WithLogger(logger Logger) Option {
	return func(p *Parser) error {
		if logger == nil {
			return errors.New("nil logger")
		}
		p.logger = logger

		return nil
	}
}

// WithDirection sets the optimization direction of the parsed programs,
// as it is not part of the text format.
func WithDirection(dir direction) Option {
	return func(p *Parser) error {
		p.direction = dir

		return nil
	}
}

// WithInteger marks the parsed programs as integer problems.
func WithInteger(integer bool) Option {
	return func(p *Parser) error {
		p.integer = integer

		return nil
	}
}
