// Package world holds the lattice geometry shared by the game: headings,
// positions and the random lattice sampler.
package world

import "math"

// Position is a point on the play field. The origin is the field center and +Y is up.
type Position struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Offset returns p moved by dx, dy cells of the given size.
func (p Position) Offset(dx, dy int, cellSize float64) Position {
	return Position{X: p.X + float64(dx)*cellSize, Y: p.Y + float64(dy)*cellSize}
}

// Aligned reports whether both components are exact multiples of cellSize.
func (p Position) Aligned(cellSize float64) bool {
	return IsAligned(p.X, cellSize) && IsAligned(p.Y, cellSize)
}

// IsAligned reports whether v is an exact integer multiple of cellSize.
func IsAligned(v, cellSize float64) bool {
	if cellSize <= 0 {
		return false
	}
	n := v / cellSize
	return n == math.Trunc(n)
}

// Lattice is one axis of the play field.
type Lattice struct {
	CellSize   float64
	HalfExtent float64
}

// Cells returns how many whole cells fit between the origin and the edge.
func (l Lattice) Cells() int {
	return int(math.Floor(l.HalfExtent / l.CellSize))
}

// Snap maps a uniform draw in [0,1) to a lattice coordinate.
// The draw is scaled to [-R, R] with R = HalfExtent/CellSize and rounded to the
// nearest cell. The cell index is clamped to the whole cells inside the field so
// a non-integer R can never round past the edge.
func (l Lattice) Snap(draw float64) float64 {
	r := l.HalfExtent / l.CellSize
	n := math.Round(draw*r*2 - r)
	limit := float64(l.Cells())
	if n > limit {
		n = limit
	} else if n < -limit {
		n = -limit
	}
	// avoid -0 so printed coordinates stay clean
	return n*l.CellSize + 0
}

// Field describes the rectangular play field centered on the origin.
type Field struct {
	Width    float64
	Height   float64
	CellSize float64
}

// Horizontal returns the X axis lattice
func (f Field) Horizontal() Lattice {
	return Lattice{CellSize: f.CellSize, HalfExtent: f.Width / 2}
}

// Vertical returns the Y axis lattice
func (f Field) Vertical() Lattice {
	return Lattice{CellSize: f.CellSize, HalfExtent: f.Height / 2}
}

// Contains reports whether p lies within the field bounds.
func (f Field) Contains(p Position) bool {
	return math.Abs(p.X) <= f.Width/2 && math.Abs(p.Y) <= f.Height/2
}

// RandSource produces uniform draws in [0,1). *rand.Rand satisfies it.
type RandSource interface {
	Float64() float64
}

// Sampler draws lattice-aligned coordinates inside a field.
type Sampler struct {
	field Field
	rng   RandSource
}

// NewSampler creates a sampler over field using rng for every draw.
func NewSampler(field Field, rng RandSource) *Sampler {
	return &Sampler{field: field, rng: rng}
}

// Sample takes one draw and snaps it onto l.
func (s *Sampler) Sample(l Lattice) float64 {
	return l.Snap(s.rng.Float64())
}

// Position samples X then Y.
func (s *Sampler) Position() Position {
	x := s.Sample(s.field.Horizontal())
	y := s.Sample(s.field.Vertical())
	return Position{X: x, Y: y}
}
