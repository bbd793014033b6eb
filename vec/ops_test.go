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

import "testing"

func TestLoadStore(t *testing.T) {
	lanes := MaxLanes[float32]()
	src := make([]float32, lanes+3)
	for i := range src {
		src[i] = float32(i + 1)
	}

	v := Load(src)
	if v.NumLanes() != lanes {
		t.Fatalf("Load: got %d lanes, want %d", v.NumLanes(), lanes)
	}

	dst := make([]float32, lanes)
	Store(v, dst)
	for i := range dst {
		if dst[i] != src[i] {
			t.Errorf("Store[%d] = %v, want %v", i, dst[i], src[i])
		}
	}
}

func TestLoadShort(t *testing.T) {
	src := []float32{1, 2}
	v := Load(src)
	if v.NumLanes() != min(2, MaxLanes[float32]()) {
		t.Errorf("Load of short slice: got %d lanes", v.NumLanes())
	}
}

func TestZeroSet(t *testing.T) {
	z := Zero[float64]()
	for i, x := range z.Data() {
		if x != 0 {
			t.Errorf("Zero lane %d = %v", i, x)
		}
	}

	s := Set(float64(2.5))
	for i, x := range s.Data() {
		if x != 2.5 {
			t.Errorf("Set lane %d = %v", i, x)
		}
	}
}

func TestAddMul(t *testing.T) {
	lanes := MaxLanes[float32]()
	a := make([]float32, lanes)
	b := make([]float32, lanes)
	for i := range a {
		a[i] = float32(i)
		b[i] = 2
	}

	sum := Add(Load(a), Load(b))
	for i, x := range sum.Data() {
		if x != float32(i)+2 {
			t.Errorf("Add lane %d = %v, want %v", i, x, float32(i)+2)
		}
	}

	prod := Mul(Load(a), Load(b))
	for i, x := range prod.Data() {
		if x != float32(i)*2 {
			t.Errorf("Mul lane %d = %v, want %v", i, x, float32(i)*2)
		}
	}
}

func TestMulAdd(t *testing.T) {
	lanes := MaxLanes[float64]()
	a := make([]float64, lanes)
	b := make([]float64, lanes)
	c := make([]float64, lanes)
	for i := range a {
		a[i] = float64(i)
		b[i] = 3
		c[i] = 1
	}

	r := MulAdd(Load(a), Load(b), Load(c))
	for i, x := range r.Data() {
		want := float64(i)*3 + 1
		if x != want {
			t.Errorf("MulAdd lane %d = %v, want %v", i, x, want)
		}
	}
}

func TestReduceSum(t *testing.T) {
	lanes := MaxLanes[float32]()
	src := make([]float32, lanes)
	var want float32
	for i := range src {
		src[i] = float32(i + 1)
		want += float32(i + 1)
	}

	if got := ReduceSum(Load(src)); got != want {
		t.Errorf("ReduceSum = %v, want %v", got, want)
	}
}

// Narrow arithmetic must widen explicitly rather than operate on bit
// patterns.
func TestAddBFloat16WidensBeforeArithmetic(t *testing.T) {
	lanes := MaxLanes[BFloat16]()
	a := make([]BFloat16, lanes)
	b := make([]BFloat16, lanes)
	for i := range a {
		a[i] = NewBFloat16(1.5)
		b[i] = NewBFloat16(2.25)
	}

	sum := Add(Load(a), Load(b))
	for i, x := range sum.Data() {
		if x.Float32() != 3.75 {
			t.Errorf("Add lane %d = %v, want 3.75", i, x.Float32())
		}
	}
}

func TestReduceSumFloat16(t *testing.T) {
	lanes := MaxLanes[Float16]()
	src := make([]Float16, lanes)
	var want float32
	for i := range src {
		src[i] = NewFloat16(float32(i & 0x3))
		want += float32(i & 0x3)
	}

	got := ReduceSum(Load(src))
	if got.Float32() != want {
		t.Errorf("ReduceSum = %v, want %v", got.Float32(), want)
	}
}

func TestTailMaskLoad(t *testing.T) {
	lanes := MaxLanes[float32]()
	src := make([]float32, lanes)
	for i := range src {
		src[i] = float32(i + 1)
	}

	for count := 0; count <= lanes; count++ {
		mask := TailMask[float32](count)
		if mask.CountTrue() != count {
			t.Fatalf("TailMask(%d): CountTrue = %d", count, mask.CountTrue())
		}

		v := MaskLoad(mask, src)
		if v.NumLanes() != lanes {
			t.Fatalf("MaskLoad: got %d lanes, want %d", v.NumLanes(), lanes)
		}
		for i, x := range v.Data() {
			want := float32(0)
			if i < count {
				want = src[i]
			}
			if x != want {
				t.Errorf("MaskLoad count=%d lane %d = %v, want %v", count, i, x, want)
			}
		}
	}
}

func TestTailMaskClamps(t *testing.T) {
	lanes := MaxLanes[float32]()
	if got := TailMask[float32](-1).CountTrue(); got != 0 {
		t.Errorf("TailMask(-1).CountTrue() = %d, want 0", got)
	}
	if got := TailMask[float32](lanes + 5).CountTrue(); got != lanes {
		t.Errorf("TailMask(lanes+5).CountTrue() = %d, want %d", got, lanes)
	}
}

func TestMaskStore(t *testing.T) {
	lanes := MaxLanes[float32]()
	src := make([]float32, lanes)
	for i := range src {
		src[i] = float32(i + 1)
	}
	dst := make([]float32, lanes)

	half := lanes / 2
	MaskStore(TailMask[float32](half), Load(src), dst)
	for i := range dst {
		want := float32(0)
		if i < half {
			want = src[i]
		}
		if dst[i] != want {
			t.Errorf("MaskStore lane %d = %v, want %v", i, dst[i], want)
		}
	}
}
