package grid

import "github.com/RoaringBitmap/roaring/v2"

// Mask selects which navigation positions are matched. Disabled positions
// receive the matcher's placeholder without invoking it.
//
// Enabled positions are kept in a roaring bitmap over flat indices; sparse
// region-of-interest masks on large scans stay cheap.
//
// Mask is not safe for concurrent mutation; build it before the run.
type Mask struct {
	shape Shape
	bm    *roaring.Bitmap
}

// NewMask creates a mask with every position disabled.
func NewMask(shape Shape) *Mask {
	return &Mask{shape: shape, bm: roaring.New()}
}

// NewMaskAllEnabled creates a mask with every position enabled.
func NewMaskAllEnabled(shape Shape) *Mask {
	m := NewMask(shape)
	m.bm.AddRange(0, uint64(shape.Size()))
	return m
}

// Shape returns the mask's navigation shape.
func (m *Mask) Shape() Shape {
	return m.shape
}

// Enable marks the position at row r, column c for matching.
func (m *Mask) Enable(r, c int) {
	m.bm.Add(uint32(m.shape.Index(r, c)))
}

// Disable excludes the position at row r, column c from matching.
func (m *Mask) Disable(r, c int) {
	m.bm.Remove(uint32(m.shape.Index(r, c)))
}

// Enabled reports whether the position at row r, column c is matched.
func (m *Mask) Enabled(r, c int) bool {
	return m.bm.Contains(uint32(m.shape.Index(r, c)))
}

// EnabledIndex reports whether the flat position index i is matched.
func (m *Mask) EnabledIndex(i int) bool {
	return m.bm.Contains(uint32(i))
}

// EnabledCount returns the number of positions that will be matched.
func (m *Mask) EnabledCount() int {
	return int(m.bm.GetCardinality())
}
