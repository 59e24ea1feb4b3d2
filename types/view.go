package types

// AsTensor returns t as a TensorType, if it is one. It never fails: ok is false for any other variant,
// including nil and Incomplete.
func AsTensor(t Type) (tensor TensorType, ok bool) {
	tensor, ok = t.(TensorType)
	return
}

// AsTuple returns t as a TupleType, if it is one.
func AsTuple(t Type) (tuple TupleType, ok bool) {
	tuple, ok = t.(TupleType)
	return
}

// IsIncomplete returns whether t is a placeholder still waiting to be resolved.
func IsIncomplete(t Type) bool {
	_, ok := t.(Incomplete)
	return ok
}

// IsResolved returns whether t is a concrete type: anything but nil or Incomplete.
func IsResolved(t Type) bool {
	return t != nil && !IsIncomplete(t)
}
