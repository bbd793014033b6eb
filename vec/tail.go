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

// TailMask creates a mask with the first 'count' lanes active.
// This handles the tail (remainder) of an array when its length is not a
// multiple of the vector width: a masked load contributes every remaining
// element exactly once, with inactive lanes reading as zero.
//
// Example:
//
//	remaining := len(data) % vec.MaxLanes[float32]()
//	if remaining > 0 {
//	    mask := vec.TailMask[float32](remaining)
//	    v := vec.MaskLoad(mask, data[len(data)-remaining:])
//	    // ... process tail
//	}
func TailMask[T Lanes](count int) Mask[T] {
	maxLanes := MaxLanes[T]()
	if count < 0 {
		count = 0
	}
	if count > maxLanes {
		count = maxLanes
	}

	bits := make([]bool, maxLanes)
	for i := 0; i < count; i++ {
		bits[i] = true
	}
	return Mask[T]{bits: bits}
}
