// FILE: lixenwraith/items/options.go
package items

// DefaultMaxFileSize caps schema files read by LoadFile.
const DefaultMaxFileSize int64 = 10 * 1024 * 1024

// Option configures registries, catalogs and the schema loader.
type Option func(*options)

type options struct {
	factory     Factory
	format      string // "toml", "yaml", "json" or "auto"
	maxFileSize int64
}

func defaultOptions() options {
	return options{
		factory:     DefaultFactory{},
		format:      "auto",
		maxFileSize: DefaultMaxFileSize,
	}
}

func applyOptions(opts []Option) options {
	o := defaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	return o
}

// WithFactory sets the item parsing hook. A nil factory keeps the default.
func WithFactory(f Factory) Option {
	return func(o *options) {
		if f != nil {
			o.factory = f
		}
	}
}

// WithFormat forces the schema format instead of detecting it.
func WithFormat(format string) Option {
	return func(o *options) { o.format = format }
}

// WithMaxFileSize limits the size of schema files. Zero or less disables the limit.
func WithMaxFileSize(n int64) Option {
	return func(o *options) { o.maxFileSize = n }
}
