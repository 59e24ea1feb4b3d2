package utils

import (
	"fmt"

	"github.com/gomlx/gopjrt/dtypes"
)

var dtypeNames = map[dtypes.DType]string{
	dtypes.F64:        "f64",
	dtypes.F32:        "f32",
	dtypes.F16:        "f16",
	dtypes.BFloat16:   "bf16",
	dtypes.S64:        "i64",
	dtypes.S32:        "i32",
	dtypes.S16:        "i16",
	dtypes.S8:         "i8",
	dtypes.U64:        "ui64",
	dtypes.U32:        "ui32",
	dtypes.U16:        "ui16",
	dtypes.U8:         "ui8",
	dtypes.Bool:       "i1",
	dtypes.Complex64:  "complex<f32>",
	dtypes.Complex128: "complex<f64>",
}

var dtypesByName = func() map[string]dtypes.DType {
	m := make(map[string]dtypes.DType, len(dtypeNames)+1)
	for dtype, name := range dtypeNames {
		m[name] = dtype
	}
	m["bool"] = dtypes.Bool
	return m
}()

// DTypeToStableHLO returns the StableHLO name of the element type, e.g. "f32".
func DTypeToStableHLO(dtype dtypes.DType) string {
	if name, found := dtypeNames[dtype]; found {
		return name
	}
	return fmt.Sprintf("unknown_dtype<%s>", dtype.String())
}

// DTypeFromStableHLO is the inverse of DTypeToStableHLO. It also accepts "bool" for dtypes.Bool.
func DTypeFromStableHLO(name string) (dtypes.DType, bool) {
	dtype, found := dtypesByName[name]
	return dtype, found
}
