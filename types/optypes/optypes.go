// Package optypes defines OpType and lists the operators whose types can be related.
package optypes

import (
	"slices"
	"strings"

	"github.com/gomlx/typerel/internal/utils"
)

// OpType is an enum of the operators known to the registry.
type OpType int

//go:generate go tool enumer -type=OpType optypes.go

const (
	Invalid OpType = iota
	Identity

	// Unary elementwise operators.
	Abs
	Ceil
	Cosine
	Exponential
	Floor
	Log
	Logistic
	Negate
	Not
	Rsqrt
	Sign
	Sine
	Sqrt
	Tanh

	// Binary elementwise operators.
	Add
	And
	Divide
	Maximum
	Minimum
	Multiply
	Or
	Power
	Remainder
	Subtract
	Xor

	// Comparisons.
	Equal
	GreaterOrEqual
	GreaterThan
	LessOrEqual
	LessThan
	NotEqual

	Concatenate

	// Last should always be kept the last, it is used as a counter/marker.
	Last
)

// SnakeCase returns the name of the operation in snake case, e.g. "greater_or_equal".
func (op OpType) SnakeCase() string {
	return utils.ToSnakeCase(op.String())
}

// ToStableHLO returns the StableHLO name of the operation, e.g. "stablehlo.add".
func (op OpType) ToStableHLO() string {
	return "stablehlo." + op.SnakeCase()
}

// All returns all valid operation types, in order.
func All() []OpType {
	return slices.DeleteFunc(slices.Clone(OpTypeValues()), func(op OpType) bool {
		return op == Invalid || op == Last
	})
}

// FromName returns the OpType with the given name, accepted in CamelCase ("GreaterThan"), snake case
// ("greater_than") or StableHLO ("stablehlo.greater_than") forms.
func FromName(name string) (OpType, bool) {
	name = strings.ReplaceAll(strings.TrimPrefix(name, "stablehlo."), "_", "")
	op, err := OpTypeString(name)
	if err != nil || op == Invalid || op == Last {
		return Invalid, false
	}
	return op, true
}
