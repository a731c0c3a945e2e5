package tensor

import (
	"encoding/binary"
	"math"
)

// ReadF32 and WriteF32 access the f32 element at logical index (b,f,y,x)
// within m's memory, honoring m's layout (format, pitches, padding). They
// are the element-level primitive the reference interpreter (package
// diagnostics) builds on; a real device backend instead compiles a kernel
// that addresses memory the same way from device-side code.
func ReadF32(m *Memory, b, f, y, x int) float32 {
	buf := m.Lock()
	defer m.Unlock()
	off := ElementOffset(m.layout, b, f, y, x) * 4
	return math.Float32frombits(binary.LittleEndian.Uint32(buf[off : off+4]))
}

func WriteF32(m *Memory, b, f, y, x int, v float32) {
	buf := m.Lock()
	defer m.Unlock()
	off := ElementOffset(m.layout, b, f, y, x) * 4
	binary.LittleEndian.PutUint32(buf[off:off+4], math.Float32bits(v))
}
