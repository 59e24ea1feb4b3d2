package typerel

import "github.com/go-logr/logr"

// Option configures a Set of relations, see New.
type Option func(s *Set)

// WithLogger sets the sink for diagnostic messages. Relations log each call at verbosity 1.
// The default discards everything.
func WithLogger(logger logr.Logger) Option {
	return func(s *Set) {
		s.logger = logger.WithName("typerel")
	}
}

// WithStrictCompareDTypes makes BroadcastCompare require both operands to have the same dtype, like
// Broadcast does. It is off by default.
func WithStrictCompareDTypes(strict bool) Option {
	return func(s *Set) {
		s.strictCompareDTypes = strict
	}
}

// WithConcatDTypeCheck makes Concat verify that all tuple fields have the dtype of the first one.
// It is off by default: the output dtype is taken from the first field only.
func WithConcatDTypeCheck(check bool) Option {
	return func(s *Set) {
		s.concatDTypeCheck = check
	}
}
