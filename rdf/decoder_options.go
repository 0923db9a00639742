package rdf

import "context"

// Options holds the configurable limits and context for one parse.
type Options struct {
	maxDocumentBytes int64
	maxDepth         int
	ctx              context.Context
}

// Option configures a parse via the functional options pattern.
type Option func(*Options)

// WithMaxDocumentBytes caps the size of the document a parser will
// accept before it starts tokenizing. Zero means unlimited.
func WithMaxDocumentBytes(n int64) Option {
	return func(o *Options) { o.maxDocumentBytes = n }
}

// WithMaxDepth caps how deeply collections and blank-node property
// lists may nest. Zero means unlimited.
func WithMaxDepth(n int) Option {
	return func(o *Options) { o.maxDepth = n }
}

// WithContext attaches a context.Context whose cancellation aborts a
// ParseURL fetch in progress.
func WithContext(ctx context.Context) Option {
	return func(o *Options) { o.ctx = ctx }
}

// DefaultOptions returns the zero-limit configuration: no document size
// cap, no depth cap, context.Background.
func DefaultOptions() Options {
	return Options{ctx: context.Background()}
}

// SafeOptions returns a configuration suitable for parsing untrusted
// input: a 64 MiB document cap and a nesting depth cap of 256.
func SafeOptions() Options {
	return Options{
		maxDocumentBytes: 64 << 20,
		maxDepth:         256,
		ctx:              context.Background(),
	}
}

func resolveOptions(opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.ctx == nil {
		o.ctx = context.Background()
	}
	return o
}
