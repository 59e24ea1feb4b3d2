// Package typerel implements type relations for tensor operators: the step functions a type inference solver
// calls to refine the types of an operator's inputs and outputs.
//
// A relation receives a fixed number of type slots, some resolved and some still types.Incomplete, and
// either:
//
//   - refines them: returns a Result with Status Refined and the new types;
//   - defers: returns a Result with Status Deferred and the slots unchanged, meaning there is not enough
//     information yet, and the solver should try again later;
//   - fails: returns a *types.RelationError describing the invalid combination.
//
// The relations provided are:
//
//   - Identity: the output has the same type as the input (unary elementwise operators).
//   - Broadcast: numpy-style broadcasting of two operands with the same dtype (binary elementwise operators).
//   - BroadcastCompare: like Broadcast, but the output is always boolean (comparisons).
//   - Concat: concatenation of a tuple of tensors along axis 0.
//
// Relations are pure and deterministic: they never modify their inputs, and can be called concurrently.
package typerel

import (
	"github.com/go-logr/logr"
	"github.com/gomlx/typerel/types"
)

// Status of a successful relation call.
type Status int

//go:generate go tool enumer -type=Status -output=gen_status_enumer.go typerel.go

const (
	// Deferred means the relation could not refine the types with the information available. The types
	// returned are the same as the inputs.
	Deferred Status = iota

	// Refined means the relation computed new types for (some of) its slots.
	Refined
)

// Result of a relation call that didn't fail.
type Result struct {
	// Types holds one type per slot. It never aliases the slice given to the relation.
	Types []types.Type

	Status Status
}

// Relation is the signature of a type relation.
//
// args holds the current types of the operator's slots: its inputs followed by its output. numArgs is the
// number of inputs declared by the operator; it is informative only.
type Relation func(args []types.Type, numArgs int) (Result, error)

// Set holds the type relations configured with a set of options.
// Its methods are Relation functions and it is safe for concurrent use.
type Set struct {
	logger              logr.Logger
	strictCompareDTypes bool
	concatDTypeCheck    bool
}

// New creates a Set of relations configured with the given options.
// Without options, BroadcastCompare doesn't compare the operands' dtypes and Concat only uses the first
// field's dtype.
func New(options ...Option) *Set {
	s := &Set{logger: logr.Discard()}
	for _, opt := range options {
		opt(s)
	}
	return s
}

var defaultSet = New()

// Identity calls Set.Identity on a Set with default options.
func Identity(args []types.Type, numArgs int) (Result, error) {
	return defaultSet.Identity(args, numArgs)
}

// Broadcast calls Set.Broadcast on a Set with default options.
func Broadcast(args []types.Type, numArgs int) (Result, error) {
	return defaultSet.Broadcast(args, numArgs)
}

// BroadcastCompare calls Set.BroadcastCompare on a Set with default options.
func BroadcastCompare(args []types.Type, numArgs int) (Result, error) {
	return defaultSet.BroadcastCompare(args, numArgs)
}

// Concat calls Set.Concat on a Set with default options.
func Concat(args []types.Type, numArgs int) (Result, error) {
	return defaultSet.Concat(args, numArgs)
}

func refined(args ...types.Type) Result {
	return Result{Types: args, Status: Refined}
}

func deferred(args []types.Type) Result {
	return Result{Types: types.Clone(args), Status: Deferred}
}

// checkArity returns an UnsupportedArity error if the number of slots is not the one the relation expects.
func checkArity(relation string, args []types.Type, expected int) error {
	if len(args) != expected {
		return types.NewRelationError(types.UnsupportedArity, relation, args,
			"expected %d type slots, got %d", expected, len(args))
	}
	return nil
}

// trace logs the outcome of a relation call at verbosity 1.
func (s *Set) trace(relation string, args []types.Type, numArgs int, result Result, err error) {
	logger := s.logger.V(1)
	if !logger.Enabled() {
		return
	}
	if err != nil {
		logger.Info("type relation failed", "relation", relation, "numArgs", numArgs,
			"args", typeStrings(args), "kind", types.KindOf(err).String(), "error", err.Error())
		return
	}
	logger.Info("type relation", "relation", relation, "numArgs", numArgs,
		"args", typeStrings(args), "status", result.Status.String(), "result", typeStrings(result.Types))
}

func typeStrings(list []types.Type) []string {
	out := make([]string, len(list))
	for ii, t := range list {
		if t == nil {
			out[ii] = "<nil>"
			continue
		}
		out[ii] = t.String()
	}
	return out
}
