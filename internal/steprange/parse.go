package steprange

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ErrEmptyInput is returned by Parse for a blank range notation.
var ErrEmptyInput = errors.New("empty range")

// Parse parses value and returns the Range it describes.
//
// Supported formats:
//   - END              -> Until(END)
//   - FROM:END         -> Span(FROM, END)
//   - FROM:END:STEP    -> New(FROM, END, STEP)
//
// Spaces are ignored. Each number must be representable by T: floats are only
// accepted for float types, negative numbers only for signed and float types.
// A zero STEP fails with an error wrapping ErrInvalidStep.
//
// Examples:
//
//	Parse[int]("5")        -> [0:5:1)
//	Parse[int]("10:0:-3")  -> [10:0:-3)
//	Parse[float64]("0:1:0.25")
func Parse[T Number](value string) (Range[T], error) {
	s := strings.ReplaceAll(strings.TrimSpace(value), " ", "")
	if s == "" {
		return Range[T]{}, ErrEmptyInput
	}

	parts := strings.Split(s, ":")
	if len(parts) > 3 {
		return Range[T]{}, fmt.Errorf("unrecognized range format: %s", value)
	}
	names := [][]string{
		{"end"},
		{"from", "end"},
		{"from", "end", "step"},
	}[len(parts)-1]

	nums := make([]T, len(parts))
	for i, part := range parts {
		n, err := ParseNumber[T](part)
		if err != nil {
			return Range[T]{}, fmt.Errorf("invalid %s in %q: %w", names[i], value, err)
		}
		nums[i] = n
	}

	switch len(nums) {
	case 1:
		return Until(nums[0]), nil
	case 2:
		return Span(nums[0], nums[1]), nil
	default:
		r, err := New(nums[0], nums[1], nums[2])
		if err != nil {
			return Range[T]{}, fmt.Errorf("invalid range %q: %w", value, err)
		}
		return r, nil
	}
}

// ParseNumber parses tok as a value of T, rejecting numbers T cannot hold.
func ParseNumber[T Number](tok string) (T, error) {
	tok = strings.TrimSpace(tok)
	if tok == "" {
		return 0, fmt.Errorf("empty number")
	}
	switch KindOf[T]() {
	case KindFloat:
		f, err := strconv.ParseFloat(tok, 64)
		if err != nil {
			return 0, err
		}
		v := T(f)
		// float32 溢出会得到 Inf，下溢会得到 0
		if math.IsInf(float64(v), 0) && !math.IsInf(f, 0) || v == 0 && f != 0 {
			return 0, fmt.Errorf("%s out of range", tok)
		}
		return v, nil
	case KindUint:
		u, err := strconv.ParseUint(tok, 10, 64)
		if err != nil {
			return 0, err
		}
		v := T(u)
		if uint64(v) != u {
			return 0, fmt.Errorf("%s out of range", tok)
		}
		return v, nil
	default:
		n, err := strconv.ParseInt(tok, 10, 64)
		if err != nil {
			return 0, err
		}
		v := T(n)
		if int64(v) != n {
			return 0, fmt.Errorf("%s out of range", tok)
		}
		return v, nil
	}
}
