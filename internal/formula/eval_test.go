package formula

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/gridcalc/internal/cellid"
)

// mapResolver resolves positions from a fixed map.
type mapResolver map[cellid.Position]int64

func (m mapResolver) Value(pos cellid.Position) (int64, bool) {
	v, ok := m[pos]
	return v, ok
}

func run(t *testing.T, src string, r Resolver) (int64, error) {
	t.Helper()
	prog, err := Compile(src)
	require.NoError(t, err)
	return prog.Execute(r)
}

func TestExecute_Values(t *testing.T) {
	testCases := []struct {
		src      string
		expected int64
	}{
		{"3+4", 7},
		{"10-2-3", 5},
		{"2+3*4", 14},
		{"2*3+4", 10},
		{"8/2/2", 2},
		{"7/2", 3},
		{"0-7/2", -3},
		{"1+2*3-4/2", 5},
		{"42", 42},
		{"3 4", 4},
		{"9223372036854775807+1", math.MinInt64},
	}

	for _, tc := range testCases {
		t.Run(tc.src, func(t *testing.T) {
			v, err := run(t, tc.src, nil)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, v)
		})
	}
}

func TestExecute_Errors(t *testing.T) {
	testCases := []struct {
		name     string
		src      string
		expected error
	}{
		{name: "divide by zero", src: "5/0", expected: ErrDivideByZero},
		{name: "divide by a zero cell-free term", src: "5/0*3", expected: ErrDivideByZero},
		{name: "lone operator", src: "+", expected: ErrOutOfStack},
		{name: "trailing operator", src: "5+", expected: ErrOutOfStack},
		{name: "leading minus", src: "-5", expected: ErrOutOfStack},
		{name: "empty program", src: "", expected: ErrOutOfStack},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := run(t, tc.src, nil)
			require.ErrorIs(t, err, tc.expected)
		})
	}
}

func TestExecute_CellReferences(t *testing.T) {
	a1 := cellid.MustParse("A1")
	b2 := cellid.MustParse("B2")

	t.Run("resolved reference", func(t *testing.T) {
		v, err := run(t, "A1+1", mapResolver{a1: 5})
		require.NoError(t, err)
		assert.Equal(t, int64(6), v)
	})

	t.Run("operand order is preserved", func(t *testing.T) {
		v, err := run(t, "A1 - B2", mapResolver{a1: 5, b2: 8})
		require.NoError(t, err)
		assert.Equal(t, int64(-3), v)

		v, err = run(t, "B2 / A1", mapResolver{a1: 2, b2: 8})
		require.NoError(t, err)
		assert.Equal(t, int64(4), v)
	})

	t.Run("unresolved reference", func(t *testing.T) {
		_, err := run(t, "A1+1", mapResolver{})
		require.ErrorIs(t, err, ErrCellNotFound)
		assert.Contains(t, err.Error(), "A1")
	})

	t.Run("reference without a resolver", func(t *testing.T) {
		_, err := run(t, "A1+1", nil)
		require.ErrorIs(t, err, ErrNotImplemented)
	})

	t.Run("resolver func adapter", func(t *testing.T) {
		r := ResolverFunc(func(pos cellid.Position) (int64, bool) { return int64(pos.Col + 1), true })
		v, err := run(t, "B2*3", r)
		require.NoError(t, err)
		assert.Equal(t, int64(6), v)
	})
}

func TestExecute_ConstantsIgnoreGrid(t *testing.T) {
	everything := ResolverFunc(func(cellid.Position) (int64, bool) { return 42, true })
	nothing := mapResolver{}

	for _, src := range []string{"1", "3+4*2", "100/7-3", "6*7/2+1-9"} {
		t.Run(src, func(t *testing.T) {
			want, err := run(t, src, nil)
			require.NoError(t, err)

			got, err := run(t, src, everything)
			require.NoError(t, err)
			assert.Equal(t, want, got)

			got, err = run(t, src, nothing)
			require.NoError(t, err)
			assert.Equal(t, want, got)
		})
	}
}

func TestResult(t *testing.T) {
	assert.False(t, NotExecuted().OK())
	assert.ErrorIs(t, NotExecuted().Err, ErrNotExecuted)

	r := ResultOf(7, nil)
	assert.True(t, r.OK())
	assert.Equal(t, int64(7), r.Value)

	r = ResultOf(7, ErrDivideByZero)
	assert.False(t, r.OK())
	assert.Zero(t, r.Value)
}
