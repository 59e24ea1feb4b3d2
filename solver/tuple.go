package solver

import (
	"github.com/gomlx/typerel"
	"github.com/gomlx/typerel/types"
)

// TupleRelation relates field slots with a tuple slot (the last one): once all fields are resolved, the tuple
// becomes types.TupleType of the fields. Used to build the input of concatenations.
func TupleRelation(args []types.Type, numArgs int) (typerel.Result, error) {
	if len(args) < 1 {
		return typerel.Result{}, types.NewRelationError(types.UnsupportedArity, "Tuple", args,
			"expected at least 1 type slot, got %d", len(args))
	}
	fields, out := args[:len(args)-1], args[len(args)-1]
	if !types.IsIncomplete(out) {
		return typerel.Result{Types: types.Clone(args), Status: typerel.Deferred}, nil
	}
	for _, field := range fields {
		if !types.IsResolved(field) {
			return typerel.Result{Types: types.Clone(args), Status: typerel.Deferred}, nil
		}
	}
	refined := append(types.Clone(fields), types.Tuple(types.Clone(fields)...))
	return typerel.Result{Types: refined, Status: typerel.Refined}, nil
}
