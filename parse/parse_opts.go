package parse

type parseOpts struct {
	trace bool
}

type ParseOption func(*parseOpts)

// WithTrace logs tokens and the resulting tree to stderr.
func WithTrace(v bool) ParseOption {
	return func(o *parseOpts) { o.trace = v }
}
