package typerel

import (
	"strings"
	"sync"
	"testing"

	"github.com/go-logr/logr/funcr"
	"github.com/gomlx/gopjrt/dtypes"
	"github.com/gomlx/typerel/types"
	"github.com/google/go-cmp/cmp"
	"github.com/janpfeifer/must"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Aliases
var (
	Bool = dtypes.Bool
	I32  = dtypes.Int32
	F32  = dtypes.Float32

	T = types.Tensor
)

func incomplete(id int) types.Type {
	return types.Incomplete{ID: id}
}

func list(args ...types.Type) []types.Type {
	return args
}

// requireResult checks the status and types of a relation call.
func requireResult(t *testing.T, result Result, err error, status Status, want ...types.Type) {
	t.Helper()
	require.NoError(t, err)
	require.Equal(t, status, result.Status)
	if diff := cmp.Diff(want, result.Types); diff != "" {
		t.Fatalf("unexpected types (-want +got):\n%s", diff)
	}
}

func requireKind(t *testing.T, err error, kind types.ErrorKind) {
	t.Helper()
	require.Error(t, err)
	require.Equal(t, kind, types.KindOf(err), "error: %v", err)
}

func TestIdentity(t *testing.T) {
	t.Run("propagates input", func(t *testing.T) {
		for _, input := range []types.TensorType{T(F32), T(F32, 2, 3), T(Bool, 1, 1, 7)} {
			result, err := Identity(list(input, incomplete(0)), 1)
			requireResult(t, result, err, Refined, input, input)
		}
	})

	t.Run("no verification when resolved", func(t *testing.T) {
		args := list(T(F32, 2), T(I32, 3))
		result, err := Identity(args, 1)
		requireResult(t, result, err, Deferred, args...)
	})

	t.Run("defers", func(t *testing.T) {
		args := list(incomplete(0), incomplete(1))
		result, err := Identity(args, 1)
		requireResult(t, result, err, Deferred, args...)

		args = list(incomplete(0), T(F32, 2))
		result, err = Identity(args, 1)
		requireResult(t, result, err, Deferred, args...)

		args = list(types.Tuple(T(F32)), incomplete(1))
		result, err = Identity(args, 1)
		requireResult(t, result, err, Deferred, args...)
	})

	t.Run("arity", func(t *testing.T) {
		_, err := Identity(list(T(F32)), 1)
		requireKind(t, err, types.UnsupportedArity)
		_, err = Identity(list(T(F32), incomplete(0), incomplete(1)), 1)
		requireKind(t, err, types.UnsupportedArity)
	})
}

func TestBroadcast(t *testing.T) {
	testCases := []struct {
		name     string
		lhs, rhs types.TensorType
		want     types.TensorType
	}{
		{"scalars", T(F32), T(F32), T(F32)},
		{"1 to 3", T(F32, 3), T(F32, 1), T(F32, 3)},
		{"rank expansion", T(F32, 2, 3), T(F32, 3), T(F32, 2, 3)},
		{"both sides", T(I32, 2, 1, 3), T(I32, 1, 4, 3), T(I32, 2, 4, 3)},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			result, err := Broadcast(list(tc.lhs, tc.rhs, incomplete(0)), 2)
			requireResult(t, result, err, Refined, tc.lhs, tc.rhs, tc.want)
		})
	}

	t.Run("dimension mismatch", func(t *testing.T) {
		_, err := Broadcast(list(T(F32, 4), T(F32, 5), incomplete(0)), 2)
		requireKind(t, err, types.DimensionMismatch)
		var relErr *types.RelationError
		require.ErrorAs(t, err, &relErr)
		assert.Equal(t, "Broadcast", relErr.Relation)
		assert.Len(t, relErr.Types, 2)
		assert.True(t, strings.HasPrefix(err.Error(), "Broadcast: "), "error: %v", err)
	})

	t.Run("dtype mismatch before shapes", func(t *testing.T) {
		_, err := Broadcast(list(T(F32, 2, 3), T(I32, 2, 3), incomplete(0)), 2)
		requireKind(t, err, types.DtypeMismatch)
		// Both dtype and dimensions mismatch: dtype is reported.
		_, err = Broadcast(list(T(F32, 4), T(I32, 5), incomplete(0)), 2)
		requireKind(t, err, types.DtypeMismatch)
	})

	t.Run("symbolic dimension", func(t *testing.T) {
		symbolic := types.TensorType{Shape: []types.DimExpr{types.Symbolic{Name: "N"}}, DType: F32}
		_, err := Broadcast(list(symbolic, T(F32, 1), incomplete(0)), 2)
		requireKind(t, err, types.NonConstantDimension)
	})

	t.Run("defers", func(t *testing.T) {
		for _, args := range [][]types.Type{
			list(T(F32, 2), incomplete(1), incomplete(2)),
			list(incomplete(0), T(F32, 2), incomplete(2)),
			list(incomplete(0), incomplete(1), incomplete(2)),
			list(types.Tuple(T(F32)), T(F32, 2), incomplete(2)),
			list(T(F32, 2), types.FuncType{Params: list(T(F32, 2)), Result: T(F32, 2)}, incomplete(2)),
			list(T(F32, 2), types.Tuple(T(F32, 2)), incomplete(2)),
		} {
			result, err := Broadcast(args, 2)
			requireResult(t, result, err, Deferred, args...)
		}
	})

	t.Run("output is recomputed", func(t *testing.T) {
		result, err := Broadcast(list(T(F32, 2, 3), T(F32, 3), T(F32, 2, 3)), 2)
		requireResult(t, result, err, Refined, T(F32, 2, 3), T(F32, 3), T(F32, 2, 3))
	})

	t.Run("arity", func(t *testing.T) {
		_, err := Broadcast(list(T(F32), T(F32)), 2)
		requireKind(t, err, types.UnsupportedArity)
	})
}

func TestBroadcastCompare(t *testing.T) {
	result, err := BroadcastCompare(list(T(F32, 2, 3), T(F32, 3), incomplete(0)), 2)
	requireResult(t, result, err, Refined, T(F32, 2, 3), T(F32, 3), T(Bool, 2, 3))

	// Dtypes are not compared by default.
	result, err = BroadcastCompare(list(T(F32, 2, 3), T(I32, 3), incomplete(0)), 2)
	requireResult(t, result, err, Refined, T(F32, 2, 3), T(I32, 3), T(Bool, 2, 3))

	// Unless configured to.
	strict := New(WithStrictCompareDTypes(true))
	_, err = strict.BroadcastCompare(list(T(F32, 2, 3), T(I32, 3), incomplete(0)), 2)
	requireKind(t, err, types.DtypeMismatch)
	result, err = strict.BroadcastCompare(list(T(I32, 2, 3), T(I32, 3), incomplete(0)), 2)
	requireResult(t, result, err, Refined, T(I32, 2, 3), T(I32, 3), T(Bool, 2, 3))

	_, err = BroadcastCompare(list(T(F32, 4), T(F32, 5), incomplete(0)), 2)
	requireKind(t, err, types.DimensionMismatch)

	args := list(incomplete(0), T(F32, 3), incomplete(2))
	result, err = BroadcastCompare(args, 2)
	requireResult(t, result, err, Deferred, args...)

	_, err = BroadcastCompare(list(T(F32)), 2)
	requireKind(t, err, types.UnsupportedArity)
}

func TestConcat(t *testing.T) {
	t.Run("axis 0", func(t *testing.T) {
		input := types.Tuple(T(F32, 2, 5), T(F32, 3, 5))
		result, err := Concat(list(input, incomplete(0)), 1)
		requireResult(t, result, err, Refined, input, T(F32, 5, 5))

		input = types.Tuple(T(I32, 1), T(I32, 2), T(I32, 3))
		result, err = Concat(list(input, incomplete(0)), 1)
		requireResult(t, result, err, Refined, input, T(I32, 6))
	})

	t.Run("dtype of first field", func(t *testing.T) {
		input := types.Tuple(T(F32, 2, 5), T(I32, 3, 5))
		result, err := Concat(list(input, incomplete(0)), 1)
		requireResult(t, result, err, Refined, input, T(F32, 5, 5))

		_, err = New(WithConcatDTypeCheck(true)).Concat(list(input, incomplete(0)), 1)
		requireKind(t, err, types.DtypeMismatch)
	})

	t.Run("dimension mismatch", func(t *testing.T) {
		_, err := Concat(list(types.Tuple(T(F32, 2, 5), T(F32, 3, 6)), incomplete(0)), 1)
		requireKind(t, err, types.DimensionMismatch)
		var relErr *types.RelationError
		require.ErrorAs(t, err, &relErr)
		assert.Equal(t, "Concat", relErr.Relation)
	})

	t.Run("unsupported shape forms", func(t *testing.T) {
		_, err := Concat(list(types.Tuple(T(F32, 2, 5)), incomplete(0)), 1)
		requireKind(t, err, types.UnsupportedShapeForm)
		_, err = Concat(list(T(F32, 2, 5), incomplete(0)), 1)
		requireKind(t, err, types.UnsupportedShapeForm)
		assert.Contains(t, err.Error(), "concat requires a tuple argument")
		_, err = Concat(list(types.Tuple(T(F32, 2), types.Tuple()), incomplete(0)), 1)
		requireKind(t, err, types.UnsupportedShapeForm)
		_, err = Concat(list(types.FuncType{Params: list(T(F32, 2)), Result: T(F32, 2)}, incomplete(0)), 1)
		requireKind(t, err, types.UnsupportedShapeForm)
		assert.Contains(t, err.Error(), "concat requires a tuple argument")

		// Too few fields is reported even if they are not resolved yet.
		_, err = Concat(list(types.Tuple(incomplete(3)), incomplete(1)), 1)
		requireKind(t, err, types.UnsupportedShapeForm)
		_, err = Concat(list(types.Tuple(), incomplete(1)), 1)
		requireKind(t, err, types.UnsupportedShapeForm)
		_, err = Concat(list(types.Tuple(T(F32, 2), incomplete(3), types.Tuple()), incomplete(1)), 1)
		requireKind(t, err, types.UnsupportedShapeForm)
	})

	t.Run("mismatch among resolved fields", func(t *testing.T) {
		_, err := Concat(list(types.Tuple(T(F32, 2, 5), T(F32, 3, 6), incomplete(3)), incomplete(1)), 1)
		requireKind(t, err, types.DimensionMismatch)
		_, err = Concat(list(types.Tuple(incomplete(2), T(F32, 2, 5), T(F32, 3)), incomplete(1)), 1)
		requireKind(t, err, types.DimensionMismatch)
		_, err = Concat(list(types.Tuple(incomplete(2), T(F32), T(F32)), incomplete(1)), 1)
		requireKind(t, err, types.UnsupportedShapeForm)

		args := list(types.Tuple(T(F32, 2, 5), T(I32, 3, 5), incomplete(3)), incomplete(1))
		result, err := Concat(args, 1)
		requireResult(t, result, err, Deferred, args...)
		_, err = New(WithConcatDTypeCheck(true)).Concat(args, 1)
		requireKind(t, err, types.DtypeMismatch)
	})

	t.Run("irreconcilable", func(t *testing.T) {
		_, err := Concat(list(types.Tuple(T(F32, 2), T(F32, 3)), types.Tuple(T(F32, 5))), 1)
		requireKind(t, err, types.IrreconcilableRelation)
		_, err = Concat(list(types.Tuple(T(F32, 2), T(F32, 3)), T(F32, 5)), 1)
		requireKind(t, err, types.IrreconcilableRelation)
		_, err = Concat(list(incomplete(0), T(F32, 5)), 1)
		requireKind(t, err, types.IrreconcilableRelation)
	})

	t.Run("defers", func(t *testing.T) {
		args := list(incomplete(0), incomplete(1))
		result, err := Concat(args, 1)
		requireResult(t, result, err, Deferred, args...)

		args = list(types.Tuple(T(F32, 2), incomplete(3)), incomplete(1))
		result, err = Concat(args, 1)
		requireResult(t, result, err, Deferred, args...)

		args = list(types.Tuple(T(F32, 2, 5), incomplete(3), T(F32, 7, 5)), incomplete(1))
		result, err = Concat(args, 1)
		requireResult(t, result, err, Deferred, args...)
	})

	t.Run("arity", func(t *testing.T) {
		_, err := Concat(list(incomplete(0)), 1)
		requireKind(t, err, types.UnsupportedArity)
	})
}

func TestPurity(t *testing.T) {
	set := New()
	testCases := []struct {
		name     string
		relation Relation
		args     []types.Type
	}{
		{"Identity", set.Identity, list(T(F32, 2, 3), incomplete(0))},
		{"Broadcast", set.Broadcast, list(T(F32, 2, 1), T(F32, 4), incomplete(0))},
		{"BroadcastCompare", set.BroadcastCompare, list(T(F32, 2, 1), T(I32, 4), incomplete(0))},
		{"Concat", set.Concat, list(types.Tuple(T(F32, 2, 4), T(F32, 1, 4)), incomplete(0))},
		{"Deferred", set.Broadcast, list(incomplete(0), T(F32, 4), incomplete(2))},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			original := types.Clone(tc.args)
			first := must.M1(tc.relation(tc.args, 1))
			second := must.M1(tc.relation(tc.args, 1))
			if diff := cmp.Diff(first, second); diff != "" {
				t.Errorf("consecutive calls differ (-first +second):\n%s", diff)
			}
			if diff := cmp.Diff(original, tc.args); diff != "" {
				t.Errorf("input modified (-before +after):\n%s", diff)
			}

			// Modifying the result must not change the input.
			first.Types[len(first.Types)-1] = types.Incomplete{ID: 99}
			first.Types[0] = nil
			if diff := cmp.Diff(original, tc.args); diff != "" {
				t.Errorf("result aliases the input (-before +after):\n%s", diff)
			}
		})
	}
}

func TestConcurrentUse(t *testing.T) {
	set := New(WithStrictCompareDTypes(true))
	want := T(Bool, 8, 4, 3)
	var wg sync.WaitGroup
	errs := make([]error, 16)
	for ii := range errs {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 100 {
				result, err := set.BroadcastCompare(list(T(F32, 8, 1, 3), T(F32, 4, 1), incomplete(ii)), 2)
				if err != nil {
					errs[ii] = err
					return
				}
				if !types.Equal(want, result.Types[2]) {
					errs[ii] = assert.AnError
					return
				}
			}
		}()
	}
	wg.Wait()
	for _, err := range errs {
		require.NoError(t, err)
	}
}

func TestLogger(t *testing.T) {
	var lines []string
	logger := funcr.New(func(prefix, args string) {
		lines = append(lines, prefix+" "+args)
	}, funcr.Options{Verbosity: 1})

	set := New(WithLogger(logger))
	_ = must.M1(set.Broadcast(list(T(F32, 2), T(F32, 2), incomplete(0)), 2))
	_, err := set.Concat(list(T(F32, 2), incomplete(0)), 1)
	require.Error(t, err)

	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "typerel")
	assert.Contains(t, lines[0], `"relation"="Broadcast"`)
	assert.Contains(t, lines[0], `"status"="Refined"`)
	assert.Contains(t, lines[1], `"kind"="UnsupportedShapeForm"`)

	// Verbosity 0 logs nothing.
	lines = nil
	quiet := New(WithLogger(funcr.New(func(prefix, args string) {
		lines = append(lines, args)
	}, funcr.Options{})))
	_ = must.M1(quiet.Identity(list(T(F32), incomplete(0)), 1))
	assert.Empty(t, lines)
}

func TestStatus(t *testing.T) {
	assert.Equal(t, "Deferred", Deferred.String())
	assert.Equal(t, "Refined", Refined.String())
	assert.Equal(t, "Status(7)", Status(7).String())
	assert.Equal(t, []Status{Deferred, Refined}, StatusValues())
}
