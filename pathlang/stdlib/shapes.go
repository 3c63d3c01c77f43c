package stdlib

import "math"

// Cmd is one path command produced by a shape generator, ready for
// package eval to drive into the active pathctx.PathContext. Flags names
// the zero-based argument indices that are SVG arc flags and must always
// render as a bare integer.
type Cmd struct {
	Letter string
	Args   []float64
	Flags  map[int]bool
}

func cmd(letter string, args ...float64) Cmd { return Cmd{Letter: letter, Args: args} }

func arcFlagCmd(letter string, args ...float64) Cmd {
	return Cmd{Letter: letter, Args: args, Flags: map[int]bool{3: true, 4: true}}
}

// Circle emits M x-r y A r r 0 1 0 x+r y A r r 0 1 0 x-r y.
func Circle(cx, cy, r float64) []Cmd {
	return []Cmd{
		cmd("M", cx-r, cy),
		arcFlagCmd("A", r, r, 0, 1, 0, cx+r, cy),
		arcFlagCmd("A", r, r, 0, 1, 0, cx-r, cy),
	}
}

// Arc emits a single absolute A command.
func Arc(rx, ry, xRot, largeArc, sweep, x, y float64) []Cmd {
	return []Cmd{arcFlagCmd("A", rx, ry, xRot, largeArc, sweep, x, y)}
}

// Rect emits M x y L x+w y L x+w y+h L x y+h Z.
func Rect(x, y, w, h float64) []Cmd {
	return []Cmd{
		cmd("M", x, y),
		cmd("L", x+w, y),
		cmd("L", x+w, y+h),
		cmd("L", x, y+h),
		cmd("Z"),
	}
}

// RoundRect emits a rectangle with arc-rounded corners, clamping r to at
// most min(w, h) / 2.
func RoundRect(x, y, w, h, r float64) []Cmd {
	maxR := math.Min(w, h) / 2
	if r > maxR {
		r = maxR
	}
	if r < 0 {
		r = 0
	}
	return []Cmd{
		cmd("M", x+r, y),
		cmd("L", x+w-r, y),
		arcFlagCmd("A", r, r, 0, 0, 1, x+w, y+r),
		cmd("L", x+w, y+h-r),
		arcFlagCmd("A", r, r, 0, 0, 1, x+w-r, y+h),
		cmd("L", x+r, y+h),
		arcFlagCmd("A", r, r, 0, 0, 1, x, y+h-r),
		cmd("L", x, y+r),
		arcFlagCmd("A", r, r, 0, 0, 1, x+r, y),
		cmd("Z"),
	}
}

// Polygon emits an M at angle 0 (positive x from center), then n-1 L
// commands equally spaced by 2*pi/n, closed with Z.
func Polygon(cx, cy, r float64, n int) []Cmd {
	if n < 3 {
		n = 3
	}
	cmds := make([]Cmd, 0, n+1)
	for i := 0; i < n; i++ {
		angle := 2 * math.Pi * float64(i) / float64(n)
		x, y := cx+r*math.Cos(angle), cy+r*math.Sin(angle)
		if i == 0 {
			cmds = append(cmds, cmd("M", x, y))
		} else {
			cmds = append(cmds, cmd("L", x, y))
		}
	}
	cmds = append(cmds, cmd("Z"))
	return cmds
}

// Star emits alternating outer/inner points starting with outer at angle
// -pi/2 (topmost).
func Star(cx, cy, rOuter, rInner float64, n int) []Cmd {
	if n < 2 {
		n = 2
	}
	points := n * 2
	cmds := make([]Cmd, 0, points+1)
	for i := 0; i < points; i++ {
		angle := -math.Pi/2 + math.Pi*float64(i)/float64(n)
		radius := rOuter
		if i%2 == 1 {
			radius = rInner
		}
		x, y := cx+radius*math.Cos(angle), cy+radius*math.Sin(angle)
		if i == 0 {
			cmds = append(cmds, cmd("M", x, y))
		} else {
			cmds = append(cmds, cmd("L", x, y))
		}
	}
	cmds = append(cmds, cmd("Z"))
	return cmds
}

// Line emits M x1 y1 L x2 y2.
func Line(x1, y1, x2, y2 float64) []Cmd {
	return []Cmd{cmd("M", x1, y1), cmd("L", x2, y2)}
}

// Quadratic emits M x1 y1 Q cx cy x2 y2.
func Quadratic(x1, y1, cx, cy, x2, y2 float64) []Cmd {
	return []Cmd{cmd("M", x1, y1), cmd("Q", cx, cy, x2, y2)}
}

// Cubic emits M x1 y1 C c1x c1y c2x c2y x2 y2.
func Cubic(x1, y1, c1x, c1y, c2x, c2y, x2, y2 float64) []Cmd {
	return []Cmd{cmd("M", x1, y1), cmd("C", c1x, c1y, c2x, c2y, x2, y2)}
}

// MoveTo emits M x y.
func MoveTo(x, y float64) []Cmd { return []Cmd{cmd("M", x, y)} }

// LineTo emits L x y.
func LineTo(x, y float64) []Cmd { return []Cmd{cmd("L", x, y)} }

// ClosePath emits Z.
func ClosePath() []Cmd { return []Cmd{cmd("Z")} }

// ArcFromPolarOffset computes an absolute arc endpoint from a center,
// radius, and angle (radians), then emits a single A command from the
// implicit current point to that endpoint.
func ArcFromPolarOffset(cx, cy, r, angle, xRot, largeArc, sweep float64) []Cmd {
	x := cx + r*math.Cos(angle)
	y := cy + r*math.Sin(angle)
	return []Cmd{arcFlagCmd("A", r, r, xRot, largeArc, sweep, x, y)}
}
