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

// Package testutil holds the correctness oracle for the matvec kernel: a
// sequential, non-vectorized reference computation per precision pairing,
// the relative-tolerance law that defines acceptance, and test-data
// helpers. It is validation-only and never part of the production path.
package testutil

import (
	"math"
	"testing"

	"github.com/ajroetker/go-matvec/vec"
)

// toleranceFactor bounds the divergence introduced by differing summation
// order between the sequential reference and the vectorized/parallel
// kernel. The value is empirical, carried from upstream validation; treat
// it as tunable, not a proven bound.
const toleranceFactor = 20

// Tolerance returns the acceptance half-width for an expected value:
//
//	|expected| * 20 / 2^min(matBits, vecBits)
//
// where matBits and vecBits are the explicit mantissa widths of the two
// operand kinds (vec.MantissaBits).
func Tolerance(expected float64, matBits, vecBits int) float64 {
	return math.Abs(expected) * toleranceFactor / float64(uint64(1)<<uint(min(matBits, vecBits)))
}

// AssertClose accepts actual iff expected-tol <= actual <= expected+tol.
// On violation it reports the operand kinds, dimensions, failing row index,
// expected, actual, and tolerance.
func AssertClose(t *testing.T, matKind, vecKind string, rows, cols, row int, expected, actual float64, matBits, vecBits int) {
	t.Helper()
	tol := Tolerance(expected, matBits, vecBits)
	if !(expected-tol <= actual && actual <= expected+tol) {
		t.Errorf("%s/%s %dx%d: mismatch at row %d: expected %g, actual %g; tol %g",
			matKind, vecKind, rows, cols, row, expected, actual, tol)
	}
}

// AssertAllClose applies AssertClose to every output row.
func AssertAllClose[T vec.Floats](t *testing.T, matKind, vecKind string, rows, cols int, expected, actual []T, matBits, vecBits int) {
	t.Helper()
	for r := 0; r < rows; r++ {
		AssertClose(t, matKind, vecKind, rows, cols, r, float64(expected[r]), float64(actual[r]), matBits, vecBits)
	}
}

// RefMatVecAdd is the sequential reference for the native kinds:
// out[r] = sum_c m[r,c]*v[c], plus add[r] when add is non-nil. A nil add is
// the no-bias mode, not a zero bias.
func RefMatVecAdd[T vec.Floats](m []T, rows, cols int, v, add, out []T) {
	for r := 0; r < rows; r++ {
		var dot T
		for c := 0; c < cols; c++ {
			dot += m[r*cols+c] * v[c]
		}
		out[r] = dot
		if add != nil {
			out[r] += add[r]
		}
	}
}

// RefMatVecAddBF16 is the sequential reference for a BFloat16 matrix and
// float32 vector: every matrix element is widened to float32 before the
// multiply and the accumulator is float32.
func RefMatVecAddBF16(m []vec.BFloat16, rows, cols int, v, add, out []float32) {
	for r := 0; r < rows; r++ {
		var dot float32
		for c := 0; c < cols; c++ {
			dot += m[r*cols+c].Float32() * v[c]
		}
		out[r] = dot
		if add != nil {
			out[r] += add[r]
		}
	}
}

// RefMatVecAddBF16Both is the sequential reference for BFloat16 matrix and
// vector; both operands widen to float32, as does the bias.
func RefMatVecAddBF16Both(m []vec.BFloat16, rows, cols int, v, add []vec.BFloat16, out []float32) {
	for r := 0; r < rows; r++ {
		var dot float32
		for c := 0; c < cols; c++ {
			dot += m[r*cols+c].Float32() * v[c].Float32()
		}
		out[r] = dot
		if add != nil {
			out[r] += add[r].Float32()
		}
	}
}

// RefMatVecAddF16 is the sequential reference for Float16 matrix and
// vector; both operands widen to float32, as does the bias.
func RefMatVecAddF16(m []vec.Float16, rows, cols int, v, add []vec.Float16, out []float32) {
	for r := 0; r < rows; r++ {
		var dot float32
		for c := 0; c < cols; c++ {
			dot += m[r*cols+c].Float32() * v[c].Float32()
		}
		out[r] = dot
		if add != nil {
			out[r] += add[r].Float32()
		}
	}
}

// FillMod16 fills dst with index & 0xF. Values 0..15 are exactly
// representable in every supported kind, so reference sums stay within the
// tolerance law even after long accumulations.
func FillMod16[T vec.Floats](dst []T) {
	for i := range dst {
		dst[i] = T(i & 0xF)
	}
}

// FillMod16BF16 fills dst with index & 0xF as BFloat16.
func FillMod16BF16(dst []vec.BFloat16) {
	for i := range dst {
		dst[i] = vec.NewBFloat16(float32(i & 0xF))
	}
}

// FillMod16F16 fills dst with index & 0xF as Float16.
func FillMod16F16(dst []vec.Float16) {
	for i := range dst {
		dst[i] = vec.NewFloat16(float32(i & 0xF))
	}
}

// Misalign returns the deliberate element offset used to start test buffers
// off natural vector alignment.
func Misalign(lanes int) int {
	return 3 * lanes / 5
}

// MisalignedBuf allocates n elements preceded by a misalignment pad of
// Misalign(lanes) elements and returns the shifted window.
func MisalignedBuf[T any](n, lanes int) []T {
	pad := Misalign(lanes)
	buf := make([]T, pad+n)
	return buf[pad : pad+n]
}
