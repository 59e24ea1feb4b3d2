package main

import (
	"encoding/json"
	"reflect"
	"strings"

	"github.com/gomlx/typerel/internal/utils"
	"github.com/gomlx/typerel/types"
	"github.com/pkg/errors"
)

// parseInput parses an input given on the command line: either a type ("tensor<2x3xf32>") or a JSON literal
// ("[[1, 2, 3], [4, 5, 6]]"), whose numbers take the dtype named by literalDType.
func parseInput(text, literalDType string) (types.Type, error) {
	if !json.Valid([]byte(text)) {
		return types.Parse(text)
	}
	dtype, found := utils.DTypeFromStableHLO(literalDType)
	if !found {
		return nil, errors.Errorf("unknown dtype %q for literals", literalDType)
	}
	var value any
	if err := json.NewDecoder(strings.NewReader(text)).Decode(&value); err != nil {
		return nil, errors.Wrapf(err, "parsing literal %q", text)
	}
	goValue, err := literal(value, dtype.GoType())
	if err != nil {
		return nil, errors.WithMessagef(err, "literal %q", text)
	}
	tensor, err := types.TensorOf(goValue.Interface())
	if err != nil {
		return nil, errors.WithMessagef(err, "literal %q", text)
	}
	return tensor, nil
}

// literal converts a decoded JSON value to a Go value: numbers are converted to numberType, booleans are kept,
// and arrays become slices of the type of their elements, which must all have the same type.
func literal(value any, numberType reflect.Type) (reflect.Value, error) {
	switch v := value.(type) {
	case float64:
		rv := reflect.ValueOf(v)
		if !rv.CanConvert(numberType) {
			return reflect.Value{}, errors.Errorf("cannot convert number %v to %s", v, numberType)
		}
		return rv.Convert(numberType), nil
	case bool:
		return reflect.ValueOf(v), nil
	case []any:
		if len(v) == 0 {
			return reflect.MakeSlice(reflect.SliceOf(numberType), 0, 0), nil
		}
		elems := make([]reflect.Value, len(v))
		for ii, e := range v {
			var err error
			elems[ii], err = literal(e, numberType)
			if err != nil {
				return reflect.Value{}, err
			}
			if elems[ii].Type() != elems[0].Type() {
				return reflect.Value{}, errors.Errorf("irregular literal: element #%d is %s, element #0 is %s",
					ii, elems[ii].Type(), elems[0].Type())
			}
		}
		slice := reflect.MakeSlice(reflect.SliceOf(elems[0].Type()), len(elems), len(elems))
		for ii, e := range elems {
			slice.Index(ii).Set(e)
		}
		return slice, nil
	}
	return reflect.Value{}, errors.Errorf("unsupported value %v in literal: only numbers, booleans and arrays are accepted", value)
}
