package solver

import "github.com/go-logr/logr"

// Option configures a Graph, see New.
type Option func(g *Graph)

// WithLogger sets the sink for diagnostic messages: passes are logged at verbosity 1, constraint calls at 2.
func WithLogger(logger logr.Logger) Option {
	return func(g *Graph) {
		g.logger = logger.WithName("solver")
	}
}

// WithMaxIterations bounds the number of passes over the constraints in Solve. Values < 1 are ignored.
func WithMaxIterations(n int) Option {
	return func(g *Graph) {
		if n >= 1 {
			g.maxIterations = n
		}
	}
}
