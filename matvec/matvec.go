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

import (
	"github.com/ajroetker/go-matvec/vec"
	"github.com/ajroetker/go-matvec/workerpool"
)

// forEachRow drives task once per row index through the pool. A nil pool
// computes sequentially on the calling goroutine.
func forEachRow(pool *workerpool.Pool, rows int, task func(r, worker int)) {
	if pool == nil {
		for r := 0; r < rows; r++ {
			task(r, 0)
		}
		return
	}
	pool.Run(0, rows, task)
}

func checkMatVec[MatT, VecT, OutT any](m []MatT, rows, cols int, v []VecT, out []OutT) {
	if rows < 0 || cols < 0 {
		panic("matvec: negative dimension")
	}
	if len(m) < rows*cols {
		panic("matvec: matrix slice too small")
	}
	if len(v) < cols {
		panic("matvec: vector slice too small")
	}
	if len(out) < rows {
		panic("matvec: output slice too small")
	}
}

func checkAdd[T any](add []T, rows int) {
	if len(add) < rows {
		panic("matvec: add slice too small")
	}
}

// MatVec computes the matrix-vector product out = M * v.
//
//   - m: matrix in row-major order with shape [rows, cols]
//   - v: input vector of length cols
//   - out: output vector of length rows (must be pre-allocated)
//   - pool: caller-owned worker pool; nil computes sequentially
//
// Each out[r] is the dot product of row r with v. Panics if any slice is
// shorter than its declared extent.
//
// Example:
//
//	// 2x3 matrix:
//	//   [1 2 3]
//	//   [4 5 6]
//	m := []float32{1, 2, 3, 4, 5, 6}
//	v := []float32{1, 0, 1}
//	out := make([]float32, 2)
//	MatVec(m, 2, 3, v, out, nil)  // out = [4, 10]
func MatVec[T vec.Floats](m []T, rows, cols int, v, out []T, pool *workerpool.Pool) {
	checkMatVec(m, rows, cols, v, out)

	forEachRow(pool, rows, func(r, _ int) {
		out[r] = baseRowDot(m[r*cols:(r+1)*cols], v)
	})
}

// MatVecAdd computes out = M * v + add, where add has length rows and is
// added elementwise after each row's dot product.
func MatVecAdd[T vec.Floats](m []T, rows, cols int, v, add, out []T, pool *workerpool.Pool) {
	checkMatVec(m, rows, cols, v, out)
	checkAdd(add, rows)

	forEachRow(pool, rows, func(r, _ int) {
		out[r] = baseRowDot(m[r*cols:(r+1)*cols], v) + add[r]
	})
}

// MatVecBF16 computes out = M * v for a BFloat16 matrix and a float32
// vector. Matrix elements are widened to float32 per multiply and the
// output is float32.
func MatVecBF16(m []vec.BFloat16, rows, cols int, v []float32, out []float32, pool *workerpool.Pool) {
	checkMatVec(m, rows, cols, v, out)

	forEachRow(pool, rows, func(r, _ int) {
		out[r] = baseRowDotBF16F32(m[r*cols:(r+1)*cols], v)
	})
}

// MatVecAddBF16 computes out = M * v + add for a BFloat16 matrix, float32
// vector and float32 bias.
func MatVecAddBF16(m []vec.BFloat16, rows, cols int, v, add []float32, out []float32, pool *workerpool.Pool) {
	checkMatVec(m, rows, cols, v, out)
	checkAdd(add, rows)

	forEachRow(pool, rows, func(r, _ int) {
		out[r] = baseRowDotBF16F32(m[r*cols:(r+1)*cols], v) + add[r]
	})
}

// MatVecBF16Both computes out = M * v where both the matrix and the vector
// are BFloat16. Both operands are widened to float32 per multiply; the
// accumulator and output are float32.
func MatVecBF16Both(m []vec.BFloat16, rows, cols int, v []vec.BFloat16, out []float32, pool *workerpool.Pool) {
	checkMatVec(m, rows, cols, v, out)

	forEachRow(pool, rows, func(r, _ int) {
		out[r] = baseRowDotBF16(m[r*cols:(r+1)*cols], v)
	})
}

// MatVecAddBF16Both is MatVecBF16Both plus a BFloat16 bias, widened to
// float32 before the addition.
func MatVecAddBF16Both(m []vec.BFloat16, rows, cols int, v, add []vec.BFloat16, out []float32, pool *workerpool.Pool) {
	checkMatVec(m, rows, cols, v, out)
	checkAdd(add, rows)

	forEachRow(pool, rows, func(r, _ int) {
		out[r] = baseRowDotBF16(m[r*cols:(r+1)*cols], v) + add[r].Float32()
	})
}

// MatVecF16 computes out = M * v where both the matrix and the vector are
// Float16. Go has no native half arithmetic, so both operands are widened
// to float32 per multiply; the accumulator and output are float32.
func MatVecF16(m []vec.Float16, rows, cols int, v []vec.Float16, out []float32, pool *workerpool.Pool) {
	checkMatVec(m, rows, cols, v, out)

	forEachRow(pool, rows, func(r, _ int) {
		out[r] = baseRowDotF16(m[r*cols:(r+1)*cols], v)
	})
}

// MatVecAddF16 is MatVecF16 plus a Float16 bias, widened to float32 before
// the addition.
func MatVecAddF16(m []vec.Float16, rows, cols int, v, add []vec.Float16, out []float32, pool *workerpool.Pool) {
	checkMatVec(m, rows, cols, v, out)
	checkAdd(add, rows)

	forEachRow(pool, rows, func(r, _ int) {
		out[r] = baseRowDotF16(m[r*cols:(r+1)*cols], v) + add[r].Float32()
	})
}
