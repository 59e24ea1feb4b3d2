// Package shapeinference implements the shape algebra used by the type relations: extraction of constant
// dimensions, numpy-style broadcasting of two shapes and concatenation of tensors along their first axis.
//
// Only constant dimensions (types.Constant) are supported: any symbolic dimension found where a value is
// needed fails with a types.NonConstantDimension error.
//
// Errors are *types.RelationError values with no relation name: callers attribute them with
// RelationError.WithRelation.
package shapeinference

import (
	"github.com/gomlx/typerel/types"
)

// AsConstant returns the value of a constant dimension. It fails with types.NonConstantDimension if the
// dimension is symbolic or nil.
func AsConstant(dim types.DimExpr) (int64, error) {
	switch d := dim.(type) {
	case types.Constant:
		return int64(d), nil
	case types.Symbolic:
		return 0, types.NewRelationError(types.NonConstantDimension, "", nil,
			"symbolic dimension %q is not supported, only constant dimensions are", d)
	}
	return 0, types.NewRelationError(types.NonConstantDimension, "", nil, "undefined dimension")
}

// Broadcast returns the tensor type resulting from broadcasting the shapes lhs and rhs, with the given
// output dtype.
//
// Shapes are aligned from their last axis, and the shorter one is padded with 1s on the left. Aligned
// dimensions must either be equal or one of them must be 1, and the output dimension is the largest of the two.
// Two scalars broadcast to a scalar.
//
// outDType is not inspected, it is simply used for the result.
func Broadcast(lhs, rhs []types.DimExpr, outDType types.DType) (output types.TensorType, err error) {
	output.DType = outDType
	if len(lhs) == 0 && len(rhs) == 0 {
		return
	}

	rank := max(len(lhs), len(rhs))
	output.Shape = make([]types.DimExpr, rank)
	for axis := rank - 1; axis >= 0; axis-- {
		var lhsDim, rhsDim int64
		lhsDim, err = paddedDim(lhs, axis, rank)
		if err != nil {
			return types.TensorType{}, err
		}
		rhsDim, err = paddedDim(rhs, axis, rank)
		if err != nil {
			return types.TensorType{}, err
		}
		if lhsDim != rhsDim && lhsDim != 1 && rhsDim != 1 {
			return types.TensorType{}, types.NewRelationError(types.DimensionMismatch, "", nil,
				"dimension mismatch at axis #%d: %d and %d cannot be broadcast", axis, lhsDim, rhsDim)
		}
		output.Shape[axis] = types.Constant(max(lhsDim, rhsDim))
	}
	return
}

// paddedDim returns the dimension of the given axis of shape, once it is left-padded with 1s up to rank.
func paddedDim(shape []types.DimExpr, axis, rank int) (int64, error) {
	padding := rank - len(shape)
	if axis < padding {
		return 1, nil
	}
	return AsConstant(shape[axis-padding])
}

// Concatenate returns the tensor type resulting from concatenating the inputs along axis 0.
//
// There must be at least 2 inputs, none of them scalar. All dimensions but the first (the "suffix") must match
// the ones of inputs[0], and the output's first dimension is the sum of the inputs' first dimensions.
//
// The output dtype is the one of inputs[0]. The other inputs' dtypes are only verified if checkDTypes is set.
func Concatenate(inputs []types.TensorType, checkDTypes bool) (output types.TensorType, err error) {
	known := make([]*types.TensorType, len(inputs))
	for ii := range inputs {
		known[ii] = &inputs[ii]
	}
	return concatenate(known, checkDTypes)
}

// CheckConcatenate verifies the inputs of a concatenation that are already known: nil entries are inputs whose
// type is not known yet, and are skipped. The first known input takes the role of inputs[0] in Concatenate.
//
// It returns the first error Concatenate would report regardless of the types the unknown inputs end up
// having.
func CheckConcatenate(inputs []*types.TensorType, checkDTypes bool) error {
	_, err := concatenate(inputs, checkDTypes)
	return err
}

func concatenate(inputs []*types.TensorType, checkDTypes bool) (output types.TensorType, err error) {
	if len(inputs) < 2 {
		return types.TensorType{}, types.NewRelationError(types.UnsupportedShapeForm, "", nil,
			"concatenation requires at least 2 inputs, got %d", len(inputs))
	}

	// The first known input is the reference.
	ref := -1
	for ii, input := range inputs {
		if input != nil {
			ref = ii
			break
		}
	}
	if ref < 0 {
		return
	}
	first := *inputs[ref]
	if first.IsScalar() {
		return types.TensorType{}, types.NewRelationError(types.UnsupportedShapeForm, "", nil,
			"cannot concatenate scalars, input #%d is %s", ref, first)
	}
	suffix := make([]int64, first.Rank()-1)
	for ii := range suffix {
		suffix[ii], err = AsConstant(first.Shape[ii+1])
		if err != nil {
			return types.TensorType{}, err
		}
	}

	var axisDim int64
	for ii, input := range inputs {
		if input == nil {
			continue
		}
		if checkDTypes && input.DType != first.DType {
			return types.TensorType{}, types.NewRelationError(types.DtypeMismatch, "", nil,
				"mismatched dtypes for concatenation: input #%d is %s, input #%d is %s", ref, first, ii, *input)
		}
		if input.Rank() != first.Rank() {
			return types.TensorType{}, types.NewRelationError(types.DimensionMismatch, "", nil,
				"mismatched ranks for concatenation: input #%d is %s, input #%d is %s", ref, first, ii, *input)
		}
		var dim int64
		dim, err = AsConstant(input.Shape[0])
		if err != nil {
			return types.TensorType{}, err
		}
		axisDim += dim
		for axis := 1; axis < input.Rank(); axis++ {
			dim, err = AsConstant(input.Shape[axis])
			if err != nil {
				return types.TensorType{}, err
			}
			if dim != suffix[axis-1] {
				return types.TensorType{}, types.NewRelationError(types.DimensionMismatch, "", nil,
					"mismatched dimensions for concatenation at axis %d: input #%d has %d, input #%d has %d",
					axis, ref, suffix[axis-1], ii, dim)
			}
		}
	}

	output.DType = first.DType
	output.Shape = make([]types.DimExpr, 0, first.Rank())
	output.Shape = append(output.Shape, types.Constant(axisDim))
	for _, dim := range suffix {
		output.Shape = append(output.Shape, types.Constant(dim))
	}
	return output, nil
}
