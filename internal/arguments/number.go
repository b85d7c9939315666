package arguments

import (
	"fmt"
	"math"

	"github.com/footprint-tools/brig/internal/dispatchers"
	"github.com/footprint-tools/brig/internal/reader"
	"github.com/footprint-tools/brig/internal/usage"
)

type numeric interface {
	~int | ~int64 | ~float32 | ~float64
}

// Number parses a numeric lexeme and checks it against an inclusive range.
// Out of range values leave the cursor where the number started.
type Number[T numeric] struct {
	kind     string
	min, max T
	floor    T
	ceil     T
	read     func(r *reader.Reader) (T, error)
	tooLow   *usage.Dynamic2Type
	tooHigh  *usage.Dynamic2Type
	examples []string
}

var (
	integerExamples = []string{"0", "123", "-123"}
	decimalExamples = []string{"0", "1.2", ".5", "-1", "-.5", "-1234.56"}
)

func (n *Number[T]) Min() T { return n.min }
func (n *Number[T]) Max() T { return n.max }

func (n *Number[T]) Parse(r *reader.Reader) (any, error) {
	start := r.Cursor()
	v, err := n.read(r)
	if err != nil {
		return nil, err
	}
	if v < n.min {
		r.SetCursor(start)
		return nil, n.tooLow.CreateWithContext(r, v, n.min)
	}
	if v > n.max {
		r.SetCursor(start)
		return nil, n.tooHigh.CreateWithContext(r, v, n.max)
	}
	return v, nil
}

func (n *Number[T]) Examples() []string { return n.examples }

func (n *Number[T]) String() string {
	switch {
	case n.min == n.floor && n.max == n.ceil:
		return n.kind + "()"
	case n.max == n.ceil:
		return fmt.Sprintf("%s(%v)", n.kind, n.min)
	default:
		return fmt.Sprintf("%s(%v, %v)", n.kind, n.min, n.max)
	}
}

// Integer accepts 32-bit integers and yields an int.
func Integer() *Number[int] {
	return IntegerBetween(math.MinInt32, math.MaxInt32)
}

func IntegerMin(lo int) *Number[int] {
	return IntegerBetween(lo, math.MaxInt32)
}

func IntegerBetween(lo, hi int) *Number[int] {
	return &Number[int]{
		kind: "integer", min: lo, max: hi,
		floor: math.MinInt32, ceil: math.MaxInt32,
		read: func(r *reader.Reader) (int, error) {
			v, err := r.ReadInt()
			return int(v), err
		},
		tooLow: usage.IntegerTooLow, tooHigh: usage.IntegerTooHigh,
		examples: integerExamples,
	}
}

func Long() *Number[int64] {
	return LongBetween(math.MinInt64, math.MaxInt64)
}

func LongMin(lo int64) *Number[int64] {
	return LongBetween(lo, math.MaxInt64)
}

func LongBetween(lo, hi int64) *Number[int64] {
	return &Number[int64]{
		kind: "long", min: lo, max: hi,
		floor: math.MinInt64, ceil: math.MaxInt64,
		read:   (*reader.Reader).ReadLong,
		tooLow: usage.LongTooLow, tooHigh: usage.LongTooHigh,
		examples: integerExamples,
	}
}

func Float() *Number[float32] {
	return FloatBetween(-math.MaxFloat32, math.MaxFloat32)
}

func FloatMin(lo float32) *Number[float32] {
	return FloatBetween(lo, math.MaxFloat32)
}

func FloatBetween(lo, hi float32) *Number[float32] {
	return &Number[float32]{
		kind: "float", min: lo, max: hi,
		floor: -math.MaxFloat32, ceil: math.MaxFloat32,
		read:   (*reader.Reader).ReadFloat,
		tooLow: usage.FloatTooLow, tooHigh: usage.FloatTooHigh,
		examples: decimalExamples,
	}
}

func Double() *Number[float64] {
	return DoubleBetween(-math.MaxFloat64, math.MaxFloat64)
}

func DoubleMin(lo float64) *Number[float64] {
	return DoubleBetween(lo, math.MaxFloat64)
}

func DoubleBetween(lo, hi float64) *Number[float64] {
	return &Number[float64]{
		kind: "double", min: lo, max: hi,
		floor: -math.MaxFloat64, ceil: math.MaxFloat64,
		read:   (*reader.Reader).ReadDouble,
		tooLow: usage.DoubleTooLow, tooHigh: usage.DoubleTooHigh,
		examples: decimalExamples,
	}
}

func GetInteger(ctx *dispatchers.Context, name string) (int, error) {
	return dispatchers.ArgumentAs[int](ctx, name)
}

func GetLong(ctx *dispatchers.Context, name string) (int64, error) {
	return dispatchers.ArgumentAs[int64](ctx, name)
}

func GetFloat(ctx *dispatchers.Context, name string) (float32, error) {
	return dispatchers.ArgumentAs[float32](ctx, name)
}

func GetDouble(ctx *dispatchers.Context, name string) (float64, error) {
	return dispatchers.ArgumentAs[float64](ctx, name)
}
