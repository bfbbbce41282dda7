package sim

// Point is an integer pixel coordinate.
type Point struct {
	X, Y int
}

// Add returns p translated by d.
func (p Point) Add(d Point) Point {
	return Point{X: p.X + d.X, Y: p.Y + d.Y}
}

// Scale returns p with both components multiplied by k.
func (p Point) Scale(k int) Point {
	return Point{X: p.X * k, Y: p.Y * k}
}

// Rect is an axis-aligned box. X/Y is the top-left corner.
type Rect struct {
	X, Y, W, H int
}

// RectAt returns a size×size square with its top-left corner at p.
func RectAt(p Point, size int) Rect {
	return Rect{X: p.X, Y: p.Y, W: size, H: size}
}

// Empty reports whether r has no area.
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// Intersects reports strict overlap. Boxes that only share an edge do not
// intersect, and an empty box never intersects anything.
func (r Rect) Intersects(o Rect) bool {
	if r.Empty() || o.Empty() {
		return false
	}
	return r.X < o.X+o.W && o.X < r.X+r.W &&
		r.Y < o.Y+o.H && o.Y < r.Y+r.H
}

// Contains reports whether p lies inside r (right/bottom edges exclusive).
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X < r.X+r.W && p.Y >= r.Y && p.Y < r.Y+r.H
}

// Center returns the integer centre of r.
func (r Rect) Center() Point {
	return Point{X: r.X + r.W/2, Y: r.Y + r.H/2}
}

// Direction is one of the four cardinal headings.
type Direction int

const (
	DirNone Direction = iota
	DirUp
	DirDown
	DirLeft
	DirRight
)

// Cardinals lists the four headings in the order the AI samples them.
var Cardinals = [4]Direction{DirUp, DirDown, DirLeft, DirRight}

// Vector returns the unit step for d.
func (d Direction) Vector() Point {
	switch d {
	case DirUp:
		return Point{0, -1}
	case DirDown:
		return Point{0, 1}
	case DirLeft:
		return Point{-1, 0}
	case DirRight:
		return Point{1, 0}
	default:
		return Point{}
	}
}

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "none"
	}
}

// DirectionOf returns the cardinal heading of delta. The dominant axis wins;
// a zero delta yields DirNone.
func DirectionOf(delta Point) Direction {
	ax, ay := abs(delta.X), abs(delta.Y)
	switch {
	case ax == 0 && ay == 0:
		return DirNone
	case ax >= ay && delta.X > 0:
		return DirRight
	case ax >= ay:
		return DirLeft
	case delta.Y > 0:
		return DirDown
	default:
		return DirUp
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
