package types

import (
	"reflect"

	"github.com/gomlx/gopjrt/dtypes"
	"github.com/pkg/errors"
)

// TensorOf returns the tensor type of a Go literal: a scalar (ints, floats, complex, bool) or a regular
// (possibly nested) slice of scalars. Each slice level contributes one constant dimension.
//
// Example:
//
//	t, _ := types.TensorOf([][]float32{{1, 2, 3}, {4, 5, 6}}) // tensor<2x3xf32>
func TensorOf(value any) (TensorType, error) {
	if value == nil {
		return TensorType{}, errors.New("cannot infer the tensor type of nil")
	}
	var tensor TensorType
	if err := tensorOfRecursive(&tensor, reflect.ValueOf(value), reflect.TypeOf(value)); err != nil {
		return TensorType{}, err
	}
	return tensor, nil
}

func tensorOfRecursive(tensor *TensorType, v reflect.Value, t reflect.Type) error {
	if t.Kind() != reflect.Slice {
		tensor.DType = dtypes.FromGoType(t)
		if tensor.DType == dtypes.InvalidDType {
			return errors.Errorf("cannot convert Go type %q to a tensor element type", t)
		}
		return nil
	}

	t = t.Elem()
	if v.Len() == 0 {
		return errors.Errorf("empty slice %s: inner dimensions can't be inferred", v.Type())
	}
	tensor.Shape = append(tensor.Shape, Constant(v.Len()))
	prefix := tensor.Clone()
	if err := tensorOfRecursive(tensor, v.Index(0), t); err != nil {
		return err
	}

	// Remaining elements must match the first one.
	for ii := 1; ii < v.Len(); ii++ {
		other := prefix.Clone()
		if err := tensorOfRecursive(&other, v.Index(ii), t); err != nil {
			return err
		}
		if !Equal(*tensor, other) {
			return errors.Errorf("irregular slice: element #%d has type %s, but element #0 has type %s", ii, other, *tensor)
		}
	}
	return nil
}
