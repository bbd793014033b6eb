// Package vec provides the portable vector-lane layer the matvec kernel is
// written against. Code is expressed once against an abstract vector width;
// the width is chosen at startup from detected CPU capabilities (see
// dispatch.go) and only affects how columns are grouped during accumulation,
// never the numeric contract.
//
// Basic usage:
//
//	a := vec.Load(data1)
//	b := vec.Load(data2)
//	acc := vec.MulAdd(a, b, vec.Zero[float32]())
//	sum := vec.ReduceSum(acc)
package vec

// Floats is a constraint for the native floating-point compute kinds.
type Floats interface {
	~float32 | ~float64
}

// Narrow is a constraint for the 16-bit storage kinds. These are storage
// formats only: arithmetic on them always goes through an explicit widening
// to float32 first.
type Narrow interface {
	BFloat16 | Float16
}

// Element is a constraint for every element kind a matrix or vector may
// store.
type Element interface {
	Floats | Narrow
}

// SignedInts is a constraint for signed integer types.
type SignedInts interface {
	~int8 | ~int16 | ~int32 | ~int64
}

// UnsignedInts is a constraint for unsigned integer types.
type UnsignedInts interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Integers is a constraint for all integer types.
type Integers interface {
	SignedInts | UnsignedInts
}

// Lanes is a constraint for all types that can be stored in SIMD lanes.
type Lanes interface {
	Floats | Integers
}

// Vec is a portable vector handle. In base (scalar-emulation) mode it wraps
// a slice sized to the current lane count.
//
// Vec instances should not be created directly; use Load, Set, or Zero.
type Vec[T Lanes] struct {
	data []T
}

// NumLanes returns the number of lanes (elements) in this vector.
func (v Vec[T]) NumLanes() int {
	return len(v.data)
}

// Data returns the underlying slice representation of the vector.
// This is primarily for testing and should not be used in performance-critical code.
func (v Vec[T]) Data() []T {
	return v.data
}

// Mask represents a per-lane activity set, used with MaskLoad and MaskStore
// for partial (tail) operations.
//
// Mask instances should not be created directly; use TailMask.
type Mask[T Lanes] struct {
	bits []bool
}

// NumLanes returns the number of lanes in this mask.
func (m Mask[T]) NumLanes() int {
	return len(m.bits)
}

// CountTrue returns the number of active lanes in the mask.
func (m Mask[T]) CountTrue() int {
	count := 0
	for _, bit := range m.bits {
		if bit {
			count++
		}
	}
	return count
}

// MantissaBits returns the number of explicit mantissa bits in T's storage
// format: 7 for BFloat16, 10 for Float16, 23 for float32, 52 for float64.
// The tolerance law for validating mixed-precision kernels divides by
// 2^MantissaBits of the narrower operand.
func MantissaBits[T Element]() int {
	var zero T
	switch any(zero).(type) {
	case BFloat16:
		return bfloat16MantissaBits
	case Float16:
		return float16MantissaBits
	case float32:
		return 23
	default:
		return 52
	}
}
