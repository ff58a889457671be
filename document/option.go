package document

import "log/slog"

// Option represents document option
type Option func(d *Document)

// Options represents document options
type Options []Option

// Apply applies options
func (o Options) Apply(d *Document) {
	for _, opt := range o {
		opt(d)
	}
}

// WithLogger sets document logger
func WithLogger(logger *slog.Logger) Option {
	return func(d *Document) {
		if logger != nil {
			d.logger = logger
		}
	}
}

// WithID sets document identifier
func WithID(id string) Option {
	return func(d *Document) {
		if id != "" {
			d.id = id
		}
	}
}
