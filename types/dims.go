package types

import "strconv"

// DimExpr is the size of one axis of a tensor: either a Constant or a Symbolic dimension.
//
// Only constant dimensions can be used by the shape algebra, symbolic ones are reported as
// NonConstantDimension errors.
type DimExpr interface {
	String() string

	isDimExpr()
}

// Constant is a dimension of known size.
type Constant int64

// Symbolic is a dimension only known by name, e.g. a batch size bound at run time.
type Symbolic struct {
	Name string
}

func (Constant) isDimExpr() {}
func (Symbolic) isDimExpr() {}

// String implements fmt.Stringer.
func (c Constant) String() string {
	return strconv.FormatInt(int64(c), 10)
}

// String implements fmt.Stringer.
func (s Symbolic) String() string {
	if s.Name == "" {
		return "?"
	}
	return s.Name
}

// EqualDims compares two dimension expressions structurally.
func EqualDims(a, b DimExpr) bool {
	switch da := a.(type) {
	case Constant:
		db, ok := b.(Constant)
		return ok && da == db
	case Symbolic:
		db, ok := b.(Symbolic)
		return ok && da.Name == db.Name
	case nil:
		return b == nil
	}
	return false
}
