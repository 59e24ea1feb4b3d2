// Package registry associates operators with the type relation that infers their output type, and with the
// number of inputs they declare.
package registry

import (
	"slices"

	"github.com/gomlx/typerel"
	"github.com/gomlx/typerel/types/optypes"
	"github.com/pkg/errors"
	"golang.org/x/exp/maps"
)

// Entry describes how to relate the types of an operator.
type Entry struct {
	OpType optypes.OpType

	// NumArgs is the number of inputs of the operator. The relation takes one more slot, for the output.
	NumArgs int

	Relation typerel.Relation
}

// Registry maps operators to their Entry. It is not safe to Register concurrently with lookups.
type Registry struct {
	entries map[optypes.OpType]Entry
}

var (
	// UnaryElementwise operators have an output of the same type as their input.
	UnaryElementwise = []optypes.OpType{
		optypes.Identity,
		optypes.Abs,
		optypes.Ceil,
		optypes.Cosine,
		optypes.Exponential,
		optypes.Floor,
		optypes.Log,
		optypes.Logistic,
		optypes.Negate,
		optypes.Not,
		optypes.Rsqrt,
		optypes.Sign,
		optypes.Sine,
		optypes.Sqrt,
		optypes.Tanh,
	}

	// BinaryElementwise operators broadcast their operands, which must have the same dtype.
	BinaryElementwise = []optypes.OpType{
		optypes.Add,
		optypes.And,
		optypes.Divide,
		optypes.Maximum,
		optypes.Minimum,
		optypes.Multiply,
		optypes.Or,
		optypes.Power,
		optypes.Remainder,
		optypes.Subtract,
		optypes.Xor,
	}

	// Comparisons broadcast their operands and output booleans.
	Comparisons = []optypes.OpType{
		optypes.Equal,
		optypes.GreaterOrEqual,
		optypes.GreaterThan,
		optypes.LessOrEqual,
		optypes.LessThan,
		optypes.NotEqual,
	}
)

// New returns a Registry with all known operators, using the relations from set.
// If set is nil, the relations are configured with default options.
func New(set *typerel.Set) *Registry {
	if set == nil {
		set = typerel.New()
	}
	r := &Registry{entries: make(map[optypes.OpType]Entry)}
	for _, op := range UnaryElementwise {
		r.mustRegister(Entry{OpType: op, NumArgs: 1, Relation: set.Identity})
	}
	for _, op := range BinaryElementwise {
		r.mustRegister(Entry{OpType: op, NumArgs: 2, Relation: set.Broadcast})
	}
	for _, op := range Comparisons {
		r.mustRegister(Entry{OpType: op, NumArgs: 2, Relation: set.BroadcastCompare})
	}
	r.mustRegister(Entry{OpType: optypes.Concatenate, NumArgs: 1, Relation: set.Concat})
	return r
}

// Register adds an entry. It fails if the operator is invalid or already registered, or if the entry has no
// relation.
func (r *Registry) Register(entry Entry) error {
	if entry.OpType <= optypes.Invalid || entry.OpType >= optypes.Last {
		return errors.Errorf("cannot register invalid operator %s", entry.OpType)
	}
	if entry.Relation == nil {
		return errors.Errorf("operator %s registered without a relation", entry.OpType)
	}
	if entry.NumArgs < 0 {
		return errors.Errorf("operator %s registered with negative number of arguments %d", entry.OpType, entry.NumArgs)
	}
	if _, found := r.entries[entry.OpType]; found {
		return errors.Errorf("operator %s registered more than once", entry.OpType)
	}
	r.entries[entry.OpType] = entry
	return nil
}

func (r *Registry) mustRegister(entry Entry) {
	if err := r.Register(entry); err != nil {
		panic(err)
	}
}

// Lookup returns the entry for the operator.
func (r *Registry) Lookup(op optypes.OpType) (Entry, bool) {
	entry, found := r.entries[op]
	return entry, found
}

// LookupName returns the entry for the operator with the given name, see optypes.FromName for the accepted
// forms.
func (r *Registry) LookupName(name string) (Entry, error) {
	op, found := optypes.FromName(name)
	if !found {
		return Entry{}, errors.Errorf("unknown operator %q", name)
	}
	entry, found := r.entries[op]
	if !found {
		return Entry{}, errors.Errorf("operator %s has no registered type relation", op)
	}
	return entry, nil
}

// OpTypes returns the registered operators, sorted.
func (r *Registry) OpTypes() []optypes.OpType {
	keys := maps.Keys(r.entries)
	slices.Sort(keys)
	return keys
}
