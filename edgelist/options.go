package edgelist

import "github.com/sirupsen/logrus"

// Option customizes a Builder.
type Option func(*Builder)

// WithConstructor replaces the default core-backed Constructor.
// Panics on nil to surface programmer error early.
func WithConstructor(c Constructor) Option {
	if c == nil {
		panic("edgelist: WithConstructor(nil)")
	}
	return func(b *Builder) { b.constructor = c }
}

// WithDirected sets the directedness flag passed to the Constructor.
// Builders are undirected by default.
func WithDirected(directed bool) Option {
	return func(b *Builder) { b.directed = directed }
}

// WithLogger sets the logger used for progress diagnostics (Debug level).
func WithLogger(log *logrus.Logger) Option {
	return func(b *Builder) {
		if log != nil {
			b.log = log
		}
	}
}
