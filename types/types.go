// Package types defines the type values inspected by the type relations: tensors, tuples, functions and
// incomplete (not yet resolved) placeholders.
//
// Type is a closed union: only the variants defined in this package implement it. Callers branch with a type
// switch or with the views AsTensor, AsTuple and IsIncomplete, which never fail.
//
// Type values are immutable by convention: relations never modify a Type they receive, they only build new ones.
package types

import (
	"slices"

	"github.com/gomlx/gopjrt/dtypes"
)

// DType is the element type of a tensor. Relations only compare it for equality, and use Bool as the result
// of comparisons.
type DType = dtypes.DType

// Bool is the element type produced by comparisons.
const Bool = dtypes.Bool

// Type is one of TensorType, TupleType, FuncType or Incomplete.
type Type interface {
	// String renders the type in StableHLO-like notation, see Parse.
	String() string

	isType()
}

// TensorType is a shape (one DimExpr per axis) and an element type.
// A TensorType with no dimensions is a scalar.
type TensorType struct {
	Shape []DimExpr
	DType DType
}

// TupleType is an ordered sequence of types.
type TupleType struct {
	Fields []Type
}

// FuncType is the type of a function. The relations in this module never accept it, it exists so that
// "not applicable" inputs can be represented.
type FuncType struct {
	Params []Type
	Result Type
}

// Incomplete is an unresolved placeholder. ID identifies the solver variable it stands for.
type Incomplete struct {
	ID int
}

func (TensorType) isType() {}
func (TupleType) isType()  {}
func (FuncType) isType()   {}
func (Incomplete) isType() {}

// Tensor creates a TensorType with constant dimensions.
//
// Example:
//
//	t := types.Tensor(dtypes.Float32, 2, 3) // tensor<2x3xf32>
func Tensor(dtype DType, dimensions ...int) TensorType {
	var shape []DimExpr
	for _, dim := range dimensions {
		shape = append(shape, Constant(dim))
	}
	return TensorType{Shape: shape, DType: dtype}
}

// Tuple creates a TupleType with the given fields.
func Tuple(fields ...Type) TupleType {
	return TupleType{Fields: fields}
}

// Rank returns the number of axes of the tensor, 0 for scalars.
func (t TensorType) Rank() int {
	return len(t.Shape)
}

// IsScalar returns whether the tensor has rank 0.
func (t TensorType) IsScalar() bool {
	return len(t.Shape) == 0
}

// Clone returns a TensorType that doesn't share its shape with t.
func (t TensorType) Clone() TensorType {
	return TensorType{Shape: slices.Clone(t.Shape), DType: t.DType}
}

// Len returns the number of fields in the tuple.
func (t TupleType) Len() int {
	return len(t.Fields)
}

// Clone returns a shallow copy of types: the slice is new, the Type values are shared (they are immutable).
func Clone(types []Type) []Type {
	if types == nil {
		return nil
	}
	return slices.Clone(types)
}

// Equal compares two types structurally. Symbolic dimensions are equal if they have the same name, incomplete
// types are equal if they have the same ID.
func Equal(a, b Type) bool {
	switch ta := a.(type) {
	case TensorType:
		tb, ok := b.(TensorType)
		return ok && ta.DType == tb.DType && slices.EqualFunc(ta.Shape, tb.Shape, EqualDims)
	case TupleType:
		tb, ok := b.(TupleType)
		return ok && slices.EqualFunc(ta.Fields, tb.Fields, Equal)
	case FuncType:
		tb, ok := b.(FuncType)
		return ok && slices.EqualFunc(ta.Params, tb.Params, Equal) && Equal(ta.Result, tb.Result)
	case Incomplete:
		tb, ok := b.(Incomplete)
		return ok && ta.ID == tb.ID
	case nil:
		return b == nil
	}
	return false
}

// EqualLists compares two lists of types element by element with Equal.
func EqualLists(a, b []Type) bool {
	return slices.EqualFunc(a, b, Equal)
}
