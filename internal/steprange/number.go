//go:generate go run github.com/dmarkham/enumer -type=Kind -trimprefix=Kind -transform=kebab
package steprange

import (
	"iter"

	"golang.org/x/exp/constraints"
)

// Number 限定为整型/无符号/浮点数值类型，底层类型相同的自定义类型也满足约束。
type Number interface {
	constraints.Integer | constraints.Float
}

// Sequence is implemented by values describing a finite, ordered run of numbers.
type Sequence[T Number] interface {
	// Contains reports whether v is one of the values the sequence visits.
	Contains(v T) bool
	IsEmpty() bool
	Len() int
	Values() []T
	All() iter.Seq[T]
}

// Kind classifies the arithmetic of a Number type.
type Kind int

const (
	KindInt Kind = iota
	KindUint
	KindFloat
)

// KindOf returns the Kind of T, decided from how T divides and wraps.
func KindOf[T Number]() Kind {
	var zero T
	one := T(1)
	if one/T(2) != zero {
		return KindFloat
	}
	if zero-one > zero {
		return KindUint
	}
	return KindInt
}
