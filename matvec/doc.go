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

// Package matvec provides parallel, precision-mixing matrix-vector
// multiplication: out = M * v, optionally plus a bias vector.
//
// # Operations
//
//   - MatVec / MatVecAdd - native float32 or float64 arithmetic
//   - MatVecBF16 / MatVecAddBF16 - BFloat16 matrix x float32 vector, float32 output
//   - MatVecBF16Both / MatVecAddBF16Both - BFloat16 x BFloat16, float32 output
//   - MatVecF16 / MatVecAddF16 - Float16 x Float16, float32 output
//
// M is rows x cols in row-major order and immutable for the duration of a
// call; v has length cols; the bias (Add variants) has length rows; out has
// length rows. All buffers are caller-owned and may start at arbitrary
// offsets: alignment affects performance only, never results.
//
// # Precision policy
//
// Narrow (16-bit) operands are widened losslessly before every multiply and
// the dot product accumulates in float32, so narrow x narrow combinations
// never lose precision catastrophically. Native float32/float64 pairs
// compute in their own kind. Go has no native half arithmetic, so the
// Float16 x Float16 pair takes the widening path and produces float32.
//
// # Parallel execution
//
// Rows are partitioned across a caller-owned workerpool.Pool in contiguous
// chunks; each row's output slot is written exactly once by one worker, and
// the call blocks until every row is done. Results are independent of the
// worker count: only wall-clock time varies. A nil pool (or a pool with
// zero workers) computes sequentially on the calling goroutine.
//
// # Failure semantics
//
// This is a precondition-contract interface, not a validating service:
// undersized buffers are caller bugs and panic immediately. There is no
// runtime-recoverable error path inside the kernel.
//
// # Example
//
//	// 2x4 matrix:
//	//   [1 2 3 4]
//	//   [5 6 7 8]
//	m := []float32{1, 2, 3, 4, 5, 6, 7, 8}
//	v := []float32{1, 2, 3, 4}
//	add := []float32{1, 2}
//	out := make([]float32, 2)
//
//	pool := workerpool.New(runtime.GOMAXPROCS(0))
//	defer pool.Close()
//
//	matvec.MatVecAdd(m, 2, 4, v, add, out, pool)
//	// out = [31, 72]
package matvec
