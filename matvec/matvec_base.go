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

package matvec

import "github.com/ajroetker/go-matvec/vec"

// Row kernels: one dot product per matrix row. Columns are processed in
// lane-width groups with a masked partial step for the tail, so every
// column contributes exactly once whether or not cols is a multiple of the
// vector width. The narrow-storage kernels widen each group to float32
// before multiplying and keep two float32 accumulators, one per promoted
// half of a narrow load.

// baseRowDot computes the dot product of row and v[:len(row)] in T's own
// arithmetic.
func baseRowDot[T vec.Floats](row, v []T) T {
	acc := vec.Zero[T]()
	lanes := acc.NumLanes()

	var c int
	for ; c+lanes <= len(row); c += lanes {
		acc = vec.MulAdd(vec.Load(row[c:]), vec.Load(v[c:]), acc)
	}
	if rem := len(row) - c; rem > 0 {
		mask := vec.TailMask[T](rem)
		acc = vec.MulAdd(vec.MaskLoad(mask, row[c:]), vec.MaskLoad(mask, v[c:]), acc)
	}
	return vec.ReduceSum(acc)
}

// baseRowDotBF16F32 computes the dot product of a BFloat16 row with a
// float32 vector, accumulating in float32. Each full narrow load covers two
// float32 groups via the lower/upper promotions.
func baseRowDotBF16F32(row []vec.BFloat16, v []float32) float32 {
	accLo := vec.Zero[float32]()
	accHi := vec.Zero[float32]()
	nb := vec.MaxLanes[vec.BFloat16]()
	nf := nb / 2

	var c int
	for ; c+nb <= len(row); c += nb {
		mb := vec.Load(row[c:])
		accLo = vec.MulAdd(vec.PromoteLowerBF16ToF32(mb), vec.Load(v[c:]), accLo)
		accHi = vec.MulAdd(vec.PromoteUpperBF16ToF32(mb), vec.Load(v[c+nf:]), accHi)
	}

	sum := vec.ReduceSum(vec.Add(accLo, accHi))
	for ; c < len(row); c++ {
		sum += row[c].Float32() * v[c]
	}
	return sum
}

// baseRowDotBF16 computes the dot product of a BFloat16 row with a
// BFloat16 vector, widening both operands and accumulating in float32.
func baseRowDotBF16(row, v []vec.BFloat16) float32 {
	accLo := vec.Zero[float32]()
	accHi := vec.Zero[float32]()
	nb := vec.MaxLanes[vec.BFloat16]()

	var c int
	for ; c+nb <= len(row); c += nb {
		mb := vec.Load(row[c:])
		vb := vec.Load(v[c:])
		accLo = vec.MulAdd(vec.PromoteLowerBF16ToF32(mb), vec.PromoteLowerBF16ToF32(vb), accLo)
		accHi = vec.MulAdd(vec.PromoteUpperBF16ToF32(mb), vec.PromoteUpperBF16ToF32(vb), accHi)
	}

	sum := vec.ReduceSum(vec.Add(accLo, accHi))
	for ; c < len(row); c++ {
		sum += row[c].Float32() * v[c].Float32()
	}
	return sum
}

// baseRowDotF16 computes the dot product of a Float16 row with a Float16
// vector, widening both operands and accumulating in float32.
func baseRowDotF16(row, v []vec.Float16) float32 {
	accLo := vec.Zero[float32]()
	accHi := vec.Zero[float32]()
	nh := vec.MaxLanes[vec.Float16]()

	var c int
	for ; c+nh <= len(row); c += nh {
		mh := vec.Load(row[c:])
		vh := vec.Load(v[c:])
		accLo = vec.MulAdd(vec.PromoteLowerF16ToF32(mh), vec.PromoteLowerF16ToF32(vh), accLo)
		accHi = vec.MulAdd(vec.PromoteUpperF16ToF32(mh), vec.PromoteUpperF16ToF32(vh), accHi)
	}

	sum := vec.ReduceSum(vec.Add(accLo, accHi))
	for ; c < len(row); c++ {
		sum += row[c].Float32() * v[c].Float32()
	}
	return sum
}
