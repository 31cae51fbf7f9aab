package physics

// Category is a collision category bitmask.
type Category uint32

const (
	CategoryBird   Category = 1 << 0
	CategoryGround Category = 1 << 1
	CategoryTiki   Category = 1 << 2
	CategoryScore  Category = 1 << 3
)

// Rect is an axis-aligned box given by its centre and size.
type Rect struct {
	X, Y float64
	W, H float64
}

func (r Rect) MinX() float64 { return r.X - r.W/2 }
func (r Rect) MaxX() float64 { return r.X + r.W/2 }
func (r Rect) MinY() float64 { return r.Y - r.H/2 }
func (r Rect) MaxY() float64 { return r.Y + r.H/2 }

// Overlaps reports whether r and s share a non-empty area. Touching edges
// do not overlap.
func (r Rect) Overlaps(s Rect) bool {
	if r.W <= 0 || r.H <= 0 || s.W <= 0 || s.H <= 0 {
		return false
	}
	return r.MinX() < s.MaxX() && s.MinX() < r.MaxX() &&
		r.MinY() < s.MaxY() && s.MinY() < r.MaxY()
}

// Inset shrinks r by dx on each horizontal side and dy on each vertical side.
func (r Rect) Inset(dx, dy float64) Rect {
	r.W -= 2 * dx
	r.H -= 2 * dy
	return r
}

// Body is a static collision shape. ID is opaque to this package.
type Body struct {
	ID          int
	Rect        Rect
	Category    Category
	ContactMask Category
}

func (b Body) contactsWith(o Body) bool {
	return b.Category&o.ContactMask != 0 || o.Category&b.ContactMask != 0
}

// Contacts returns the bodies a overlaps and is set to report contacts with.
func Contacts(a Body, bodies []Body) []Body {
	var hits []Body
	for _, b := range bodies {
		if !a.contactsWith(b) {
			continue
		}
		if a.Rect.Overlaps(b.Rect) {
			hits = append(hits, b)
		}
	}
	return hits
}
