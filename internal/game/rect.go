package game

// Rect is an axis-aligned box in screen pixels, top-left origin.
type Rect struct {
	X, Y, W, H int
}

// RectAround returns a w×h rect centred on (cx, cy).
func RectAround(cx, cy, w, h int) Rect {
	return Rect{X: cx - w/2, Y: cy - h/2, W: w, H: h}
}

func (r Rect) Left() int   { return r.X }
func (r Rect) Right() int  { return r.X + r.W }
func (r Rect) Top() int    { return r.Y }
func (r Rect) Bottom() int { return r.Y + r.H }

// Intersects reports whether the two rects share any area.
// Touching edges do not count.
func (r Rect) Intersects(o Rect) bool {
	return r.X < o.Right() && o.X < r.Right() &&
		r.Y < o.Bottom() && o.Y < r.Bottom()
}
