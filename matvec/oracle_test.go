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
	"fmt"
	"testing"

	"github.com/ajroetker/go-matvec/internal/testutil"
	"github.com/ajroetker/go-matvec/vec"
	"github.com/ajroetker/go-matvec/workerpool"
)

// Validation grid: shapes exercising row-heavy, column-heavy and
// non-lane-multiple extents, crossed with worker counts including the
// sequential degenerate cases. The specific worker counts carry no
// semantic meaning.
var oracleShapes = []struct{ rows, cols int }{
	{192, 256},
	{40, 512},
	{1024, 50},
}

var oracleWorkers = []int{0, 1, 13, 16}

func withPools(t *testing.T, fn func(t *testing.T, pool *workerpool.Pool)) {
	t.Helper()
	for _, workers := range oracleWorkers {
		t.Run(fmt.Sprintf("workers=%d", workers), func(t *testing.T) {
			pool := workerpool.New(workers)
			defer pool.Close()
			fn(t, pool)
		})
	}
}

func makeBF16(n int) []vec.BFloat16 {
	buf := make([]vec.BFloat16, n)
	testutil.FillMod16BF16(buf)
	return buf
}

// checkOracle runs one shape through both entry-point variants for the
// native kinds and compares every row against the sequential reference
// within the tolerance law. All buffers start at deliberately misaligned
// offsets.
func checkOracle[T vec.Floats](t *testing.T, kind string, rows, cols int, pool *workerpool.Pool) {
	t.Helper()
	lanes := vec.MaxLanes[T]()
	bits := vec.MantissaBits[T]()

	m := testutil.MisalignedBuf[T](rows*cols, lanes)
	v := testutil.MisalignedBuf[T](cols, lanes)
	add := testutil.MisalignedBuf[T](rows, lanes)
	testutil.FillMod16(m)
	testutil.FillMod16(v)
	testutil.FillMod16(add)

	expected := make([]T, rows)
	actual := make([]T, rows)

	testutil.RefMatVecAdd(m, rows, cols, v, nil, expected)
	MatVec(m, rows, cols, v, actual, pool)
	testutil.AssertAllClose(t, kind, kind, rows, cols, expected, actual, bits, bits)

	testutil.RefMatVecAdd(m, rows, cols, v, add, expected)
	MatVecAdd(m, rows, cols, v, add, actual, pool)
	testutil.AssertAllClose(t, kind, kind, rows, cols, expected, actual, bits, bits)
}

func TestOracleFloat32(t *testing.T) {
	withPools(t, func(t *testing.T, pool *workerpool.Pool) {
		for _, s := range oracleShapes {
			checkOracle[float32](t, "f32", s.rows, s.cols, pool)
		}
		checkOracle[float32](t, "f32", 1536, 1536, pool)
	})
}

func TestOracleFloat64(t *testing.T) {
	withPools(t, func(t *testing.T, pool *workerpool.Pool) {
		for _, s := range oracleShapes {
			checkOracle[float64](t, "f64", s.rows, s.cols, pool)
		}
		checkOracle[float64](t, "f64", 1536, 1536, pool)
	})
}

func TestOracleBF16F32(t *testing.T) {
	lanes := vec.MaxLanes[vec.BFloat16]()
	matBits := vec.MantissaBits[vec.BFloat16]()
	vecBits := vec.MantissaBits[float32]()

	withPools(t, func(t *testing.T, pool *workerpool.Pool) {
		for _, s := range oracleShapes {
			rows, cols := s.rows, s.cols

			m := testutil.MisalignedBuf[vec.BFloat16](rows*cols, lanes)
			v := testutil.MisalignedBuf[float32](cols, lanes)
			add := testutil.MisalignedBuf[float32](rows, lanes)
			testutil.FillMod16BF16(m)
			testutil.FillMod16(v)
			testutil.FillMod16(add)

			expected := make([]float32, rows)
			actual := make([]float32, rows)

			testutil.RefMatVecAddBF16(m, rows, cols, v, nil, expected)
			MatVecBF16(m, rows, cols, v, actual, pool)
			testutil.AssertAllClose(t, "bf16", "f32", rows, cols, expected, actual, matBits, vecBits)

			testutil.RefMatVecAddBF16(m, rows, cols, v, add, expected)
			MatVecAddBF16(m, rows, cols, v, add, actual, pool)
			testutil.AssertAllClose(t, "bf16", "f32", rows, cols, expected, actual, matBits, vecBits)
		}
	})
}

func TestOracleBF16Both(t *testing.T) {
	lanes := vec.MaxLanes[vec.BFloat16]()
	bits := vec.MantissaBits[vec.BFloat16]()

	withPools(t, func(t *testing.T, pool *workerpool.Pool) {
		for _, s := range oracleShapes {
			rows, cols := s.rows, s.cols

			m := testutil.MisalignedBuf[vec.BFloat16](rows*cols, lanes)
			v := testutil.MisalignedBuf[vec.BFloat16](cols, lanes)
			add := testutil.MisalignedBuf[vec.BFloat16](rows, lanes)
			testutil.FillMod16BF16(m)
			testutil.FillMod16BF16(v)
			testutil.FillMod16BF16(add)

			expected := make([]float32, rows)
			actual := make([]float32, rows)

			testutil.RefMatVecAddBF16Both(m, rows, cols, v, nil, expected)
			MatVecBF16Both(m, rows, cols, v, actual, pool)
			testutil.AssertAllClose(t, "bf16", "bf16", rows, cols, expected, actual, bits, bits)

			testutil.RefMatVecAddBF16Both(m, rows, cols, v, add, expected)
			MatVecAddBF16Both(m, rows, cols, v, add, actual, pool)
			testutil.AssertAllClose(t, "bf16", "bf16", rows, cols, expected, actual, bits, bits)
		}
	})
}

func TestOracleF16(t *testing.T) {
	lanes := vec.MaxLanes[vec.Float16]()
	bits := vec.MantissaBits[vec.Float16]()

	withPools(t, func(t *testing.T, pool *workerpool.Pool) {
		for _, s := range oracleShapes {
			rows, cols := s.rows, s.cols

			m := testutil.MisalignedBuf[vec.Float16](rows*cols, lanes)
			v := testutil.MisalignedBuf[vec.Float16](cols, lanes)
			add := testutil.MisalignedBuf[vec.Float16](rows, lanes)
			testutil.FillMod16F16(m)
			testutil.FillMod16F16(v)
			testutil.FillMod16F16(add)

			expected := make([]float32, rows)
			actual := make([]float32, rows)

			testutil.RefMatVecAddF16(m, rows, cols, v, nil, expected)
			MatVecF16(m, rows, cols, v, actual, pool)
			testutil.AssertAllClose(t, "f16", "f16", rows, cols, expected, actual, bits, bits)

			testutil.RefMatVecAddF16(m, rows, cols, v, add, expected)
			MatVecAddF16(m, rows, cols, v, add, actual, pool)
			testutil.AssertAllClose(t, "f16", "f16", rows, cols, expected, actual, bits, bits)
		}
	})
}

// Worker count must not change results: compare every worker count's
// output against the zero-worker (sequential) output.
func TestWorkerCountInvariance(t *testing.T) {
	rows, cols := 192, 256
	bits := vec.MantissaBits[float32]()

	m := make([]float32, rows*cols)
	v := make([]float32, cols)
	testutil.FillMod16(m)
	testutil.FillMod16(v)

	baseline := make([]float32, rows)
	MatVec(m, rows, cols, v, baseline, workerpool.New(0))

	for _, workers := range oracleWorkers[1:] {
		pool := workerpool.New(workers)
		out := make([]float32, rows)
		MatVec(m, rows, cols, v, out, pool)
		pool.Close()

		testutil.AssertAllClose(t, "f32", "f32", rows, cols, baseline, out, bits, bits)
	}
}

// Shifting buffer starts by a non-lane-multiple offset must not change
// results beyond tolerance.
func TestAlignmentInvariance(t *testing.T) {
	rows, cols := 40, 512
	lanes := vec.MaxLanes[float32]()
	bits := vec.MantissaBits[float32]()

	aligned := make([]float32, rows*cols)
	testutil.FillMod16(aligned)
	vAligned := make([]float32, cols)
	testutil.FillMod16(vAligned)

	m := testutil.MisalignedBuf[float32](rows*cols, lanes)
	v := testutil.MisalignedBuf[float32](cols, lanes)
	copy(m, aligned)
	copy(v, vAligned)

	want := make([]float32, rows)
	got := make([]float32, rows)
	MatVec(aligned, rows, cols, vAligned, want, nil)
	MatVec(m, rows, cols, v, got, nil)

	testutil.AssertAllClose(t, "f32", "f32", rows, cols, want, got, bits, bits)
}

// Every column must contribute exactly once when cols is not a multiple of
// the lane count.
func TestTailCorrectness(t *testing.T) {
	lanes := vec.MaxLanes[float32]()
	rows := 7

	for _, cols := range []int{1, lanes - 1, lanes, lanes + 1, 2*lanes + 3} {
		if cols < 1 {
			continue
		}
		t.Run(fmt.Sprintf("cols=%d", cols), func(t *testing.T) {
			// All-ones inputs: each row's dot product equals cols, so a
			// dropped or duplicated column is directly visible.
			m := make([]float32, rows*cols)
			v := make([]float32, cols)
			for i := range m {
				m[i] = 1
			}
			for i := range v {
				v[i] = 1
			}

			out := make([]float32, rows)
			MatVec(m, rows, cols, v, out, nil)

			for r, got := range out {
				if got != float32(cols) {
					t.Errorf("row %d: got %v, want %v", r, got, float32(cols))
				}
			}
		})
	}
}

// Tail correctness for the narrow kernels, which use a scalar upcast tail.
func TestTailCorrectnessBF16(t *testing.T) {
	lanes := vec.MaxLanes[vec.BFloat16]()
	rows := 3

	for _, cols := range []int{1, lanes - 1, lanes + 1} {
		m := make([]vec.BFloat16, rows*cols)
		v := make([]float32, cols)
		for i := range m {
			m[i] = vec.BFloat16One
		}
		for i := range v {
			v[i] = 1
		}

		out := make([]float32, rows)
		MatVecBF16(m, rows, cols, v, out, nil)

		for r, got := range out {
			if got != float32(cols) {
				t.Errorf("cols=%d row %d: got %v, want %v", cols, r, got, float32(cols))
			}
		}
	}
}

// The mixed-precision scenario from the contract: a BFloat16 matrix times a
// float32 vector must match the reference computed by upcasting every
// matrix element to float32 before multiplying, within a tolerance scaled
// by the bf16 mantissa width.
func TestMixedPrecisionScenario(t *testing.T) {
	rows, cols := 16, 33
	m := makeBF16(rows * cols)
	v := make([]float32, cols)
	for i := range v {
		v[i] = 0.5 * float32(i%9)
	}

	expected := make([]float32, rows)
	for r := 0; r < rows; r++ {
		var dot float32
		for c := 0; c < cols; c++ {
			dot += m[r*cols+c].Float32() * v[c]
		}
		expected[r] = dot
	}

	actual := make([]float32, rows)
	MatVecBF16(m, rows, cols, v, actual, nil)

	testutil.AssertAllClose(t, "bf16", "f32", rows, cols, expected, actual,
		vec.MantissaBits[vec.BFloat16](), vec.MantissaBits[float32]())
}
