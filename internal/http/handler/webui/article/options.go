package article

import "net/http"

type Options struct {
	ListLimit        int
	WriteMiddlewares []func(http.Handler) http.Handler
}

type OptionFunc func(opts *Options)

func NewOptions(funcs ...OptionFunc) *Options {
	opts := &Options{
		ListLimit:        10,
		WriteMiddlewares: make([]func(http.Handler) http.Handler, 0),
	}

	for _, fn := range funcs {
		fn(opts)
	}

	return opts
}

func WithListLimit(limit int) OptionFunc {
	return func(opts *Options) {
		opts.ListLimit = limit
	}
}

// WithWriteMiddlewares wraps the article submission handler, e.g. to rate limit it
func WithWriteMiddlewares(middlewares ...func(http.Handler) http.Handler) OptionFunc {
	return func(opts *Options) {
		opts.WriteMiddlewares = middlewares
	}
}
