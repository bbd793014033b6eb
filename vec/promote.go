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

// Widening conversions from the 16-bit storage kinds to float32 vectors.
// A full narrow vector holds twice as many lanes as a float32 vector, so
// the lower/upper pair of promotions together covers one narrow load.
// All promotions are exact; no rounding occurs.

// PromoteBF16ToF32 widens every BFloat16 lane to float32.
func PromoteBF16ToF32(v Vec[BFloat16]) Vec[float32] {
	result := make([]float32, len(v.data))
	for i := range v.data {
		result[i] = BFloat16ToFloat32(v.data[i])
	}
	return Vec[float32]{data: result}
}

// PromoteLowerBF16ToF32 promotes only the lower half of BFloat16 lanes.
// Input: 2N BFloat16 lanes -> Output: N float32 lanes.
func PromoteLowerBF16ToF32(v Vec[BFloat16]) Vec[float32] {
	n := len(v.data) / 2
	result := make([]float32, n)
	for i := 0; i < n; i++ {
		result[i] = BFloat16ToFloat32(v.data[i])
	}
	return Vec[float32]{data: result}
}

// PromoteUpperBF16ToF32 promotes only the upper half of BFloat16 lanes.
// Input: 2N BFloat16 lanes -> Output: N float32 lanes.
func PromoteUpperBF16ToF32(v Vec[BFloat16]) Vec[float32] {
	half := len(v.data) / 2
	n := len(v.data) - half
	result := make([]float32, n)
	for i := 0; i < n; i++ {
		result[i] = BFloat16ToFloat32(v.data[half+i])
	}
	return Vec[float32]{data: result}
}

// PromoteF16ToF32 widens every Float16 lane to float32.
func PromoteF16ToF32(v Vec[Float16]) Vec[float32] {
	result := make([]float32, len(v.data))
	for i := range v.data {
		result[i] = Float16ToFloat32(v.data[i])
	}
	return Vec[float32]{data: result}
}

// PromoteLowerF16ToF32 promotes only the lower half of Float16 lanes.
func PromoteLowerF16ToF32(v Vec[Float16]) Vec[float32] {
	n := len(v.data) / 2
	result := make([]float32, n)
	for i := 0; i < n; i++ {
		result[i] = Float16ToFloat32(v.data[i])
	}
	return Vec[float32]{data: result}
}

// PromoteUpperF16ToF32 promotes only the upper half of Float16 lanes.
func PromoteUpperF16ToF32(v Vec[Float16]) Vec[float32] {
	half := len(v.data) / 2
	n := len(v.data) - half
	result := make([]float32, n)
	for i := 0; i < n; i++ {
		result[i] = Float16ToFloat32(v.data[half+i])
	}
	return Vec[float32]{data: result}
}

// PromoteF32ToF64 widens float32 lanes to float64. Exact.
func PromoteF32ToF64(v Vec[float32]) Vec[float64] {
	result := make([]float64, len(v.data))
	for i := range v.data {
		result[i] = float64(v.data[i])
	}
	return Vec[float64]{data: result}
}
