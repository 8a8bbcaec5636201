package steprange

import (
	"errors"
	"fmt"
	"iter"
	"math"
)

// ErrInvalidStep is returned when a Range is built with a zero step.
var ErrInvalidStep = errors.New("step must not be 0")

// 预分配上限，避免超大区间在 Values 中一次性申请内存
const maxPrealloc = 1 << 16

// Range is an immutable arithmetic progression: from, from+step, from+2*step,
// ... up to but not including end. The zero value is an empty Range.
type Range[T Number] struct {
	from T
	end  T
	step T
}

var _ Sequence[int] = Range[int]{}

// New returns the Range [from, end) advancing by step.
//
// It fails with ErrInvalidStep when step is 0. A step whose sign disagrees
// with end-from is not an error; the Range is simply empty.
func New[T Number](from, end, step T) (Range[T], error) {
	if step == 0 {
		return Range[T]{}, ErrInvalidStep
	}
	return Range[T]{from: from, end: end, step: step}, nil
}

// Until returns the Range [0, end) with step 1. A non-positive end gives an
// empty Range.
func Until[T Number](end T) Range[T] {
	return Range[T]{from: 0, end: end, step: 1}
}

// Span returns the Range [from, end) with step 1.
func Span[T Number](from, end T) Range[T] {
	return Range[T]{from: from, end: end, step: 1}
}

// Must returns r, panicking when err is not nil. It is meant for ranges built
// from constants, e.g. Must(New(10, 0, -3)).
func Must[T Number](r Range[T], err error) Range[T] {
	if err != nil {
		panic(err)
	}
	return r
}

func (r Range[T]) Start() T { return r.from }
func (r Range[T]) Stop() T  { return r.end }
func (r Range[T]) Step() T  { return r.step }

// Begin returns a cursor positioned at the first value of the Range.
func (r Range[T]) Begin() Cursor[T] {
	return Cursor[T]{value: r.from, step: r.step}
}

// End returns the sentinel cursor positioned at the exclusive end bound. Its
// value is only meant to be compared against, never consumed.
func (r Range[T]) End() Cursor[T] {
	return Cursor[T]{value: r.end, step: r.step}
}

// All returns an iterator over the values of the Range, in order:
//
//	for v := range r.All() {
//		...
//	}
//
// Every call starts a new traversal. Iteration stops early instead of
// wrapping around when the next value would overflow T.
func (r Range[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		end := r.End()
		for c := r.Begin(); c.NotEqual(end); {
			if !yield(c.Value()) {
				return
			}
			if !c.next() {
				return
			}
		}
	}
}

// Values materializes the Range into a slice. The result is never nil; an
// empty Range gives an empty slice.
func (r Range[T]) Values() []T {
	values := make([]T, 0, r.sizeHint())
	for v := range r.All() {
		values = append(values, v)
	}
	return values
}

// sizeHint is the capacity Values preallocates. Float lengths are only known
// by traversal, so they get no hint.
func (r Range[T]) sizeHint() int {
	if KindOf[T]() == KindFloat {
		return 0
	}
	return min(r.Len(), maxPrealloc)
}

// IsEmpty reports whether the Range visits no values, i.e. from == end or the
// step points away from end.
func (r Range[T]) IsEmpty() bool {
	return r.Begin().Equal(r.End())
}

// Len returns the number of values the Range visits.
//
// For integer types it is max(0, ceil((end-from)/step)), computed without
// traversing, and saturates at math.MaxInt. For floats the values are counted
// by traversal so that rounding matches repeated addition exactly.
func (r Range[T]) Len() int {
	if r.IsEmpty() {
		return 0
	}
	if KindOf[T]() == KindFloat {
		n := 0
		for range r.All() {
			n++
		}
		return n
	}
	c := r.count()
	if c > math.MaxInt {
		return math.MaxInt
	}
	return int(c)
}

// Contains reports whether v is one of the values visited by the Range.
func (r Range[T]) Contains(v T) bool {
	if r.IsEmpty() {
		return false
	}
	if r.step > 0 {
		if v < r.from || v >= r.end {
			return false
		}
	} else if v > r.from || v <= r.end {
		return false
	}
	if KindOf[T]() == KindFloat {
		for x := range r.All() {
			if x == v {
				return true
			}
		}
		return false
	}
	offset, stride := r.distance(v)
	return offset%stride == 0
}

// Last returns the final value visited by the Range and false when the Range
// is empty.
func (r Range[T]) Last() (T, bool) {
	if r.IsEmpty() {
		return 0, false
	}
	if KindOf[T]() == KindFloat {
		var last T
		for v := range r.All() {
			last = v
		}
		return last, true
	}
	n := r.count() - 1
	return T(uint64(r.from) + n*uint64(r.step)), true
}

// count returns the number of values of a non-empty integer Range.
func (r Range[T]) count() uint64 {
	dist, stride := r.distance(r.end)
	return (dist-1)/stride + 1
}

// distance returns |v-from| and |step| as uint64. Both are exact for every
// integer type because the subtraction is done modulo 2^64 and the true
// difference always fits.
func (r Range[T]) distance(v T) (uint64, uint64) {
	if r.step > 0 {
		return uint64(v) - uint64(r.from), uint64(r.step)
	}
	return uint64(r.from) - uint64(v), -uint64(r.step)
}

// String implements fmt.Stringer, e.g. "[0:10:3)".
func (r Range[T]) String() string {
	return fmt.Sprintf("[%v:%v:%v)", r.from, r.end, r.step)
}

// Notation returns the "FROM:END:STEP" form accepted by Parse.
func (r Range[T]) Notation() string {
	return fmt.Sprintf("%v:%v:%v", r.from, r.end, r.step)
}
