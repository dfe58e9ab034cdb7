// Package config: functional configuration for Load and Parse.

package config

// Option mutates parse options.
type Option func(*Options)

// Options configures Load and Parse.
type Options struct {
	// Path is a gjson path selecting the document inside a larger file
	// ("analysis.yields"). Empty means the whole input.
	Path string
}

// DefaultOptions selects the whole input.
func DefaultOptions() Options { return Options{} }

// WithPath selects a sub-document by gjson path.
func WithPath(p string) Option {
	return func(o *Options) { o.Path = p }
}

func gatherOptions(opts ...Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
