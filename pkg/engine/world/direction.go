package world

// Heading represents a direction of travel on the lattice
type Heading int

// Heading constants
const (
	Up Heading = iota
	Down
	Left
	Right
)

// AllHeadings returns all valid headings for iteration
func AllHeadings() []Heading {
	return []Heading{Up, Down, Left, Right}
}

// String returns the string representation of a heading
func (h Heading) String() string {
	switch h {
	case Up:
		return "Up"
	case Down:
		return "Down"
	case Left:
		return "Left"
	case Right:
		return "Right"
	default:
		return "Unknown"
	}
}

// IsValid returns true if the heading is one of the four headings
func (h Heading) IsValid() bool {
	return h >= Up && h <= Right
}

// Opposite returns the opposite heading
func (h Heading) Opposite() Heading {
	switch h {
	case Up:
		return Down
	case Down:
		return Up
	case Left:
		return Right
	case Right:
		return Left
	default:
		return h
	}
}

// Delta returns the unit offsets for this heading. +Y is up.
func (h Heading) Delta() (dx, dy int) {
	switch h {
	case Up:
		return 0, 1
	case Down:
		return 0, -1
	case Left:
		return -1, 0
	case Right:
		return 1, 0
	default:
		return 0, 0
	}
}
