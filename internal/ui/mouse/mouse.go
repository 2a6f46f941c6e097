// Package mouse provides hit testing for clickable screen regions.
package mouse

import tea "github.com/charmbracelet/bubbletea"

// Rect is a screen rectangle in cell coordinates.
// The right and bottom edges are exclusive.
type Rect struct {
	X, Y, W, H int
}

// Contains reports whether the point lies inside the rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Region is a named rectangle registered during rendering.
type Region struct {
	ID   string
	Rect Rect
	Data any
}

// HitMap holds the regions of the last rendered frame.
// Regions added later sit on top of earlier ones.
type HitMap struct {
	regions []Region
}

// NewHitMap creates an empty hit map.
func NewHitMap() *HitMap {
	return &HitMap{}
}

// Add registers a region.
func (hm *HitMap) Add(id string, r Rect, data any) {
	hm.regions = append(hm.regions, Region{ID: id, Rect: r, Data: data})
}

// AddRect registers a region from raw coordinates.
func (hm *HitMap) AddRect(id string, x, y, w, h int, data any) {
	hm.Add(id, Rect{X: x, Y: y, W: w, H: h}, data)
}

// Test returns the topmost region containing the point, or nil.
func (hm *HitMap) Test(x, y int) *Region {
	for i := len(hm.regions) - 1; i >= 0; i-- {
		if hm.regions[i].Rect.Contains(x, y) {
			r := hm.regions[i]
			return &r
		}
	}
	return nil
}

// Clear removes all regions.
func (hm *HitMap) Clear() {
	hm.regions = hm.regions[:0]
}

// Len returns the number of registered regions.
func (hm *HitMap) Len() int {
	return len(hm.regions)
}

// Regions returns a copy of the registered regions, bottom first.
func (hm *HitMap) Regions() []Region {
	out := make([]Region, len(hm.regions))
	copy(out, hm.regions)
	return out
}

// IsLeftPress reports whether msg is a left button press.
func IsLeftPress(msg tea.MouseMsg) bool {
	return msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft
}
