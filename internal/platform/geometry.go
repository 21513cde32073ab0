package platform

// Rect describes a rectangular region in screen coordinates.
type Rect struct {
	X      int `yaml:"x" json:"x"`
	Y      int `yaml:"y" json:"y"`
	Width  int `yaml:"width" json:"width"`
	Height int `yaml:"height" json:"height"`
}

// RectFromEdges builds a Rect from left/top/right/bottom edges.
func RectFromEdges(left, top, right, bottom int) Rect {
	return Rect{X: left, Y: top, Width: right - left, Height: bottom - top}
}

func (r Rect) Left() int   { return r.X }
func (r Rect) Top() int    { return r.Y }
func (r Rect) Right() int  { return r.X + r.Width }
func (r Rect) Bottom() int { return r.Y + r.Height }

// Degenerate reports whether r cannot be used as a window rectangle: it has
// no area, or a zero right or bottom edge (the value an unset rectangle
// reports).
func (r Rect) Degenerate() bool {
	return r.Width <= 0 || r.Height <= 0 || r.Right() == 0 || r.Bottom() == 0
}

// Contains reports whether the point lies inside r.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Center returns the centre point of r.
func (r Rect) Center() (int, int) {
	return r.X + r.Width/2, r.Y + r.Height/2
}

// Intersect returns the overlap of r and o; the zero Rect when they do not
// overlap.
func (r Rect) Intersect(o Rect) Rect {
	x1 := max(r.X, o.X)
	y1 := max(r.Y, o.Y)
	x2 := min(r.Right(), o.Right())
	y2 := min(r.Bottom(), o.Bottom())
	if x2 <= x1 || y2 <= y1 {
		return Rect{}
	}
	return Rect{X: x1, Y: y1, Width: x2 - x1, Height: y2 - y1}
}

// Area returns Width*Height, or 0 for empty rectangles.
func (r Rect) Area() int {
	if r.Width <= 0 || r.Height <= 0 {
		return 0
	}
	return r.Width * r.Height
}

// NearestDisplay picks the display containing the centre of win, falling
// back to the display with the largest overlap and finally to the first
// display. ok is false only when displays is empty.
func NearestDisplay(displays []Display, win Rect) (Display, bool) {
	if len(displays) == 0 {
		return Display{}, false
	}

	cx, cy := win.Center()
	for _, d := range displays {
		if d.Bounds.Contains(cx, cy) {
			return d, true
		}
	}

	best := -1
	bestArea := 0
	for i, d := range displays {
		if area := d.Bounds.Intersect(win).Area(); area > bestArea {
			best = i
			bestArea = area
		}
	}
	if best >= 0 {
		return displays[best], true
	}
	return displays[0], true
}
