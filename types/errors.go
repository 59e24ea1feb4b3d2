package types

import (
	"github.com/pkg/errors"
)

// ErrorKind classifies the failures of a type relation.
type ErrorKind int

//go:generate go tool enumer -type=ErrorKind -trimprefix=Kind -output=gen_errorkind_enumer.go errors.go

const (
	// KindNone is returned by KindOf for nil errors or errors not created by a relation.
	KindNone ErrorKind = iota

	// DimensionMismatch: two aligned dimensions are neither equal nor broadcastable, or the non-concatenated
	// dimensions of concatenated tensors differ.
	DimensionMismatch

	// DtypeMismatch: element types differ where they are required to be equal.
	DtypeMismatch

	// NonConstantDimension: a dimension is not a known literal, so the shape algebra cannot proceed.
	NonConstantDimension

	// UnsupportedShapeForm: concat applied to a non-tuple or to a tuple with fewer than 2 fields.
	UnsupportedShapeForm

	// UnsupportedArity: the caller passed the wrong number of type slots. This is a bug in the caller.
	UnsupportedArity

	// IrreconcilableRelation: all slots are resolved, but the relation has no way of checking them.
	IrreconcilableRelation
)

// RelationError is the failure of a type relation: a kind, the name of the relation that failed and the
// offending types, so the caller can build its own diagnostic.
type RelationError struct {
	Kind     ErrorKind
	Relation string
	Types    []Type

	cause error
}

// NewRelationError creates a RelationError of the given kind. The message is formatted with errors.Errorf,
// so it carries a stack trace.
func NewRelationError(kind ErrorKind, relation string, offending []Type, format string, args ...any) *RelationError {
	return &RelationError{
		Kind:     kind,
		Relation: relation,
		Types:    Clone(offending),
		cause:    errors.Errorf(format, args...),
	}
}

// Error implements error.
func (e *RelationError) Error() string {
	if e.Relation == "" {
		return e.cause.Error()
	}
	return e.Relation + ": " + e.cause.Error()
}

// Message returns the error message without the relation name.
func (e *RelationError) Message() string {
	return e.cause.Error()
}

// Unwrap returns the underlying error, with its stack trace.
func (e *RelationError) Unwrap() error {
	return e.cause
}

// WithRelation returns a copy of the error attributed to the given relation, and with the offending types
// appended, if any.
func (e *RelationError) WithRelation(relation string, offending ...Type) *RelationError {
	out := *e
	out.Relation = relation
	if len(offending) > 0 {
		out.Types = append(Clone(e.Types), offending...)
	}
	return &out
}

// KindOf returns the ErrorKind of the first RelationError in err's chain, or KindNone.
func KindOf(err error) ErrorKind {
	var relErr *RelationError
	if errors.As(err, &relErr) {
		return relErr.Kind
	}
	return KindNone
}
