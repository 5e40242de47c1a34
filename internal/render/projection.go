package render

import "math"

// Projection maps the track, seen from above, onto terminal cells. Near is
// drawn on Bottom and Far on Top, the track width spans Left to Right.
type Projection struct {
	Top, Bottom int
	Left, Right int
	Near, Far   float32
	HalfWidth   float32
}

// Row returns the terminal row of a scroll distance, and whether it is on
// screen.
func (p Projection) Row(y float32) (int, bool) {
	ratio := float64((y - p.Near) / (p.Far - p.Near))
	row := p.Bottom - int(math.Round(ratio*float64(p.Bottom-p.Top)))
	return row, row >= p.Top && row <= p.Bottom
}

// Column returns the terminal column of a horizontal track position.
func (p Projection) Column(x float32) (int, bool) {
	ratio := float64((x + p.HalfWidth) / (2 * p.HalfWidth))
	col := p.Left + int(math.Round(ratio*float64(p.Right-p.Left)))
	return col, col >= p.Left && col <= p.Right
}
