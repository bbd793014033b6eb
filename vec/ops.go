// Copyright 2026 go-matvec Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package vec

// This file provides the pure Go (scalar-emulation) implementations of the
// lane operations. They are the floor behavior: any accelerated variant must
// produce results within the same tolerance law.
//
// Arithmetic on the 16-bit storage kinds is never implicit: the helpers
// widen Float16/BFloat16 to float32, compute, and narrow the result.

// Load creates a vector by loading data from a slice.
func Load[T Lanes](src []T) Vec[T] {
	n := min(len(src), MaxLanes[T]())
	data := make([]T, n)
	copy(data, src[:n])
	return Vec[T]{data: data}
}

// Store writes a vector's data to a slice.
func Store[T Lanes](v Vec[T], dst []T) {
	n := min(len(dst), len(v.data))
	copy(dst[:n], v.data[:n])
}

// Set creates a vector with all lanes set to the same value.
func Set[T Lanes](value T) Vec[T] {
	n := MaxLanes[T]()
	data := make([]T, n)
	for i := range data {
		data[i] = value
	}
	return Vec[T]{data: data}
}

// Zero creates a vector with all lanes set to zero.
func Zero[T Lanes]() Vec[T] {
	n := MaxLanes[T]()
	data := make([]T, n)
	return Vec[T]{data: data}
}

// Add performs element-wise addition.
func Add[T Lanes](a, b Vec[T]) Vec[T] {
	n := min(len(b.data), len(a.data))
	result := make([]T, n)
	for i := 0; i < n; i++ {
		result[i] = addHelper(a.data[i], b.data[i])
	}
	return Vec[T]{data: result}
}

func addHelper[T Lanes](a, b T) T {
	switch av := any(a).(type) {
	case Float16:
		bv := any(b).(Float16)
		return any(Float32ToFloat16(av.Float32() + bv.Float32())).(T)
	case BFloat16:
		bv := any(b).(BFloat16)
		return any(Float32ToBFloat16(av.Float32() + bv.Float32())).(T)
	}
	return a + b
}

// Mul performs element-wise multiplication.
func Mul[T Lanes](a, b Vec[T]) Vec[T] {
	n := min(len(b.data), len(a.data))
	result := make([]T, n)
	for i := 0; i < n; i++ {
		result[i] = mulHelper(a.data[i], b.data[i])
	}
	return Vec[T]{data: result}
}

func mulHelper[T Lanes](a, b T) T {
	switch av := any(a).(type) {
	case Float16:
		bv := any(b).(Float16)
		return any(Float32ToFloat16(av.Float32() * bv.Float32())).(T)
	case BFloat16:
		bv := any(b).(BFloat16)
		return any(Float32ToBFloat16(av.Float32() * bv.Float32())).(T)
	}
	return a * b
}

// MulAdd computes a*b + c per lane.
func MulAdd[T Floats](a, b, c Vec[T]) Vec[T] {
	n := min(len(c.data), min(len(b.data), len(a.data)))
	result := make([]T, n)
	for i := 0; i < n; i++ {
		result[i] = a.data[i]*b.data[i] + c.data[i]
	}
	return Vec[T]{data: result}
}

// ReduceSum sums all lanes.
func ReduceSum[T Lanes](v Vec[T]) T {
	switch data := any(v.data).(type) {
	case []Float16:
		var sum float32
		for _, x := range data {
			sum += x.Float32()
		}
		return any(Float32ToFloat16(sum)).(T)
	case []BFloat16:
		var sum float32
		for _, x := range data {
			sum += x.Float32()
		}
		return any(Float32ToBFloat16(sum)).(T)
	}
	var sum T
	for i := 0; i < len(v.data); i++ {
		sum += v.data[i]
	}
	return sum
}

// MaskLoad loads data from a slice only for lanes where the mask is true.
// Inactive lanes are zero.
func MaskLoad[T Lanes](mask Mask[T], src []T) Vec[T] {
	n := min(len(src), len(mask.bits))
	result := make([]T, len(mask.bits))
	for i := 0; i < n; i++ {
		if mask.bits[i] {
			result[i] = src[i]
		}
	}
	return Vec[T]{data: result}
}

// MaskStore stores vector data to a slice only for lanes where the mask is true.
func MaskStore[T Lanes](mask Mask[T], v Vec[T], dst []T) {
	n := min(len(dst), min(len(v.data), len(mask.bits)))
	for i := 0; i < n; i++ {
		if mask.bits[i] {
			dst[i] = v.data[i]
		}
	}
}
