package typerel

import (
	"github.com/gomlx/typerel/shapeinference"
	"github.com/gomlx/typerel/types"
	"github.com/pkg/errors"
)

// Identity relates an input and an output slot: if the input is a tensor and the output is still incomplete,
// the output becomes the input's type.
//
// Anything else is Deferred, including both slots resolved to different types: Identity doesn't verify.
// The only failure is a wrong number of slots.
func (s *Set) Identity(args []types.Type, numArgs int) (result Result, err error) {
	const name = "Identity"
	defer func() { s.trace(name, args, numArgs, result, err) }()
	if err = checkArity(name, args, 2); err != nil {
		return
	}
	if input, ok := types.AsTensor(args[0]); ok && types.IsIncomplete(args[1]) {
		return refined(input, input), nil
	}
	return deferred(args), nil
}

// Broadcast relates two operands (lhs, rhs) and an output slot. Once both operands are tensors, they must have
// the same dtype (else DtypeMismatch), and the output is the broadcast of their shapes (see
// shapeinference.Broadcast) with that dtype.
//
// If any operand is not a tensor yet, it is Deferred.
func (s *Set) Broadcast(args []types.Type, numArgs int) (result Result, err error) {
	const name = "Broadcast"
	defer func() { s.trace(name, args, numArgs, result, err) }()
	if err = checkArity(name, args, 3); err != nil {
		return
	}
	lhs, rhs, ok := tensorOperands(args)
	if !ok {
		return deferred(args), nil
	}
	if lhs.DType != rhs.DType {
		err = types.NewRelationError(types.DtypeMismatch, name, []types.Type{lhs, rhs},
			"operands must have the same dtype, got %s and %s", lhs, rhs)
		return
	}
	var output types.TensorType
	output, err = shapeinference.Broadcast(lhs.Shape, rhs.Shape, lhs.DType)
	if err != nil {
		err = attribute(err, name, lhs, rhs)
		return
	}
	return refined(lhs, rhs, output), nil
}

// BroadcastCompare is like Broadcast, but the output dtype is always boolean.
//
// Unless the Set was created WithStrictCompareDTypes, the operands' dtypes are not compared.
func (s *Set) BroadcastCompare(args []types.Type, numArgs int) (result Result, err error) {
	const name = "BroadcastCompare"
	defer func() { s.trace(name, args, numArgs, result, err) }()
	if err = checkArity(name, args, 3); err != nil {
		return
	}
	lhs, rhs, ok := tensorOperands(args)
	if !ok {
		return deferred(args), nil
	}
	if s.strictCompareDTypes && lhs.DType != rhs.DType {
		err = types.NewRelationError(types.DtypeMismatch, name, []types.Type{lhs, rhs},
			"compared operands must have the same dtype, got %s and %s", lhs, rhs)
		return
	}
	var output types.TensorType
	output, err = shapeinference.Broadcast(lhs.Shape, rhs.Shape, types.Bool)
	if err != nil {
		err = attribute(err, name, lhs, rhs)
		return
	}
	return refined(lhs, rhs, output), nil
}

// Concat relates a tuple of tensors (input) with their concatenation along axis 0 (output).
//
//   - Both slots incomplete: Deferred.
//   - Output incomplete: the input must be a tuple of at least 2 tensors (else UnsupportedShapeForm), whose
//     dimensions other than the first must match (else DimensionMismatch). The output's first dimension is the
//     sum of the fields' first dimensions, and its dtype is the first field's. If some field is still
//     incomplete, the fields already resolved are checked against each other and it is Deferred.
//   - Output resolved: IrreconcilableRelation, there is no way to derive or verify the input from the output.
func (s *Set) Concat(args []types.Type, numArgs int) (result Result, err error) {
	const name = "Concat"
	defer func() { s.trace(name, args, numArgs, result, err) }()
	if err = checkArity(name, args, 2); err != nil {
		return
	}
	input := args[0]
	switch {
	case types.IsIncomplete(input) && types.IsIncomplete(args[1]):
		return deferred(args), nil
	case !types.IsIncomplete(args[1]):
		err = types.NewRelationError(types.IrreconcilableRelation, name, args,
			"cannot deduce the relationship between the types of concat's input and output")
		return
	}

	tuple, ok := types.AsTuple(input)
	if !ok {
		err = types.NewRelationError(types.UnsupportedShapeForm, name, []types.Type{input},
			"concat requires a tuple argument, got %v", input)
		return
	}
	if tuple.Len() < 2 {
		err = types.NewRelationError(types.UnsupportedShapeForm, name, []types.Type{input},
			"concat requires a tuple of at least 2 tensors, got %v", input)
		return
	}
	known := make([]*types.TensorType, tuple.Len())
	complete := true
	for ii, field := range tuple.Fields {
		if types.IsIncomplete(field) {
			complete = false
			continue
		}
		tensor, ok := types.AsTensor(field)
		if !ok {
			err = types.NewRelationError(types.UnsupportedShapeForm, name, []types.Type{input},
				"concat requires a tuple of tensors, field #%d is %v", ii, field)
			return
		}
		known[ii] = &tensor
	}
	if !complete {
		// Fields already known must agree among themselves.
		if err = shapeinference.CheckConcatenate(known, s.concatDTypeCheck); err != nil {
			err = attribute(err, name, input)
			return
		}
		return deferred(args), nil
	}
	fields := make([]types.TensorType, len(known))
	for ii, field := range known {
		fields[ii] = *field
	}
	var output types.TensorType
	output, err = shapeinference.Concatenate(fields, s.concatDTypeCheck)
	if err != nil {
		err = attribute(err, name, input)
		return
	}
	return refined(input, output), nil
}

// tensorOperands returns the first two slots as tensors, if they both are.
func tensorOperands(args []types.Type) (lhs, rhs types.TensorType, ok bool) {
	lhs, ok = types.AsTensor(args[0])
	if !ok {
		return
	}
	rhs, ok = types.AsTensor(args[1])
	return
}

// attribute sets the relation name and offending types of an error returned by shapeinference.
func attribute(err error, relation string, offending ...types.Type) error {
	var relErr *types.RelationError
	if errors.As(err, &relErr) {
		return relErr.WithRelation(relation, offending...)
	}
	return errors.WithMessage(err, relation)
}
