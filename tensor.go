package floris

// tensor5 is a contiguous row-major buffer for a [D,S,T,G,G]-shaped
// quantity: wind directions, wind speeds, turbines, and a G×G per-turbine
// sampling grid, addressed by a single flat index rather than nested
// slices.
type tensor5 struct {
	d, s, t, g int
	data       []float64
}

func newTensor5(d, s, t, g int) *tensor5 {
	return &tensor5{d: d, s: s, t: t, g: g, data: make([]float64, d*s*t*g*g)}
}

// offset returns the flat-buffer index of (di, si, ti, 0, 0); the caller
// adds gi*g+gj for a specific grid point.
func (ten *tensor5) offset(di, si, ti int) int {
	return ((di*ten.s+si)*ten.t + ti) * ten.g * ten.g
}

// turbinePoints returns the G*G contiguous slice of sample points
// belonging to turbine ti under (di, si).
func (ten *tensor5) turbinePoints(di, si, ti int) []float64 {
	o := ten.offset(di, si, ti)
	return ten.data[o : o+ten.g*ten.g]
}

func (ten *tensor5) at(di, si, ti, gi, gj int) float64 {
	return ten.data[ten.offset(di, si, ti)+gi*ten.g+gj]
}

func (ten *tensor5) set(di, si, ti, gi, gj int, v float64) {
	ten.data[ten.offset(di, si, ti)+gi*ten.g+gj] = v
}

// tensor3 is a contiguous [D,S,T] buffer used for the public, unsorted
// result tensors.
type tensor3 struct {
	d, s, t int
	data    []float64
}

func newTensor3(d, s, t int) *tensor3 {
	return &tensor3{d: d, s: s, t: t, data: make([]float64, d*s*t)}
}

func (ten *tensor3) index(di, si, ti int) int {
	return (di*ten.s+si)*ten.t + ti
}

func (ten *tensor3) at(di, si, ti int) float64 {
	return ten.data[ten.index(di, si, ti)]
}

func (ten *tensor3) set(di, si, ti int, v float64) {
	ten.data[ten.index(di, si, ti)] = v
}

// Tensor3 is the public read-only view of a [D,S,T] result array.
type Tensor3 struct {
	D, S, T int
	Data    []float64
}

func (t *Tensor3) At(di, si, ti int) float64 {
	return t.Data[(di*t.S+si)*t.T+ti]
}

func publicTensor3(ten *tensor3) *Tensor3 {
	return &Tensor3{D: ten.d, S: ten.s, T: ten.t, Data: ten.data}
}
