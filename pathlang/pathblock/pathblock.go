// Package pathblock implements the geometry side of a first-class
// PathBlock value: capturing a relative sub-program's emitted commands,
// precomputing segment lengths for parametric sampling, and answering
// get/tangent/normal/partition/vertices queries.
//
// A PathBlock never imports pathlang/values: it operates purely on
// []CommandRecord and geom.Point so the geometry is independently
// testable, and pathlang/values wraps *PathBlock as one of its value
// kinds.
package pathblock

import (
	"fmt"
	"math"

	"github.com/svgdsl/svgdsl/pathlang/geom"
)

// CommandRecord is one emitted relative path command, as recorded by a
// recording pathctx.PathContext while capturing a PathBlock body.
type CommandRecord struct {
	Letter     string
	Args       []float64
	Start, End geom.Point
}

// SubPathCommand describes one command's position within a PathBlock, for
// the `.subPathCommands` property.
type SubPathCommand struct {
	Command    string
	Args       []float64
	Start, End geom.Point
}

// segment is a precomputed, measured command used for arc-length sampling.
type segment struct {
	rec           CommandRecord
	length        float64
	cumulativeEnd float64 // cumulative length at the end of this segment
}

// PathBlock is the immutable artefact of a `@{ ... }` expression.
type PathBlock struct {
	Tokens          []string
	StartPoint      geom.Point
	EndPoint        geom.Point
	Vertices        []geom.Point
	SubPathCount    int
	SubPathCommands []SubPathCommand
	Length          float64

	segments []segment
}

// Build computes a PathBlock from the recorded command history of a
// capture context whose cursor started at (0,0).
func Build(tokens []string, history []CommandRecord) *PathBlock {
	pb := &PathBlock{
		Tokens:     append([]string(nil), tokens...),
		StartPoint: geom.Point{},
	}
	if len(history) == 0 {
		pb.EndPoint = geom.Point{}
		pb.SubPathCount = 0
		return pb
	}

	pb.EndPoint = history[len(history)-1].End
	pb.Vertices = collectVertices(history)
	pb.SubPathCount = countSubpaths(history)
	pb.SubPathCommands = make([]SubPathCommand, len(history))

	var cumulative float64
	subpathStart := geom.Point{}
	for i, rec := range history {
		pb.SubPathCommands[i] = SubPathCommand{
			Command: rec.Letter, Args: rec.Args, Start: rec.Start, End: rec.End,
		}
		length := segmentLength(rec, subpathStart)
		cumulative += length
		pb.segments = append(pb.segments, segment{rec: rec, length: length, cumulativeEnd: cumulative})
		if rec.Letter == "m" {
			subpathStart = rec.End
		}
	}
	pb.Length = cumulative
	return pb
}

// History reconstructs the relative CommandRecord sequence that produced
// pb, for draw() to replay into an active PathContext.
func (pb *PathBlock) History() []CommandRecord {
	out := make([]CommandRecord, len(pb.SubPathCommands))
	for i, c := range pb.SubPathCommands {
		out[i] = CommandRecord{Letter: c.Command, Args: c.Args, Start: c.Start, End: c.End}
	}
	return out
}

func collectVertices(history []CommandRecord) []geom.Point {
	var verts []geom.Point
	seen := func(p geom.Point) bool {
		for _, v := range verts {
			if v.Equal(p) {
				return true
			}
		}
		return false
	}
	start := history[0].Start
	if !seen(start) {
		verts = append(verts, start)
	}
	for _, rec := range history {
		if !seen(rec.End) {
			verts = append(verts, rec.End)
		}
	}
	return verts
}

func countSubpaths(history []CommandRecord) int {
	count := 1
	for _, rec := range history {
		if rec.Letter == "m" {
			count++
		}
	}
	return count
}

const flattenEpsilonScale = 0.25

// segmentLength returns the arc length contribution of one relative
// command, per spec section 4.10 step 4.
func segmentLength(rec CommandRecord, subpathStart geom.Point) float64 {
	switch rec.Letter {
	case "l":
		return math.Hypot(rec.Args[0], rec.Args[1])
	case "h":
		return math.Abs(rec.Args[0])
	case "v":
		return math.Abs(rec.Args[0])
	case "m":
		return 0
	case "z":
		return rec.Start.Distance(subpathStart)
	case "q":
		p0 := geom.Point{}
		c1 := geom.Point{X: rec.Args[0], Y: rec.Args[1]}
		p2 := geom.Point{X: rec.Args[2], Y: rec.Args[3]}
		return flattenQuadratic(p0, c1, p2)
	case "c":
		p0 := geom.Point{}
		c1 := geom.Point{X: rec.Args[0], Y: rec.Args[1]}
		c2 := geom.Point{X: rec.Args[2], Y: rec.Args[3]}
		p2 := geom.Point{X: rec.Args[4], Y: rec.Args[5]}
		return flattenCubic(p0, c1, c2, p2)
	case "s", "t":
		// smooth variants: Args holds the control/end points already
		// resolved relative to the cursor by the emitter.
		p0 := geom.Point{}
		p2 := geom.Point{X: rec.Args[len(rec.Args)-2], Y: rec.Args[len(rec.Args)-1]}
		return p0.Distance(p2)
	case "a":
		return arcLength(rec.Args)
	default:
		return 0
	}
}

func flattenQuadratic(p0, c1, p2 geom.Point) float64 {
	scale := p0.Distance(p2) + 1
	return flattenQ(p0, c1, p2, scale, 0)
}

func flattenQ(p0, c1, p2 geom.Point, scale float64, depth int) float64 {
	chord := p0.Distance(p2)
	controlPoly := p0.Distance(c1) + c1.Distance(p2)
	if depth > 24 || controlPoly-chord < flattenEpsilonScale*scale*0.01 {
		return chord
	}
	c1l := p0.Midpoint(c1)
	c1r := c1.Midpoint(p2)
	mid := c1l.Midpoint(c1r)
	return flattenQ(p0, c1l, mid, scale, depth+1) + flattenQ(mid, c1r, p2, scale, depth+1)
}

func flattenCubic(p0, c1, c2, p2 geom.Point) float64 {
	scale := p0.Distance(p2) + 1
	return flattenC(p0, c1, c2, p2, scale, 0)
}

func flattenC(p0, c1, c2, p2 geom.Point, scale float64, depth int) float64 {
	chord := p0.Distance(p2)
	controlPoly := p0.Distance(c1) + c1.Distance(c2) + c2.Distance(p2)
	if depth > 24 || controlPoly-chord < flattenEpsilonScale*scale*0.01 {
		return chord
	}
	p01 := p0.Midpoint(c1)
	p12 := c1.Midpoint(c2)
	p23 := c2.Midpoint(p2)
	p012 := p01.Midpoint(p12)
	p123 := p12.Midpoint(p23)
	mid := p012.Midpoint(p123)
	return flattenC(p0, p01, p012, mid, scale, depth+1) + flattenC(mid, p123, p23, p2, scale, depth+1)
}

// arcLength approximates an SVG relative arc command's length per the
// endpoint parameterisation, using |theta| * sqrt((rx^2+ry^2)/2) as an
// acceptable approximation for sampling purposes (spec 4.10 step 4).
func arcLength(args []float64) float64 {
	if len(args) != 7 {
		return 0
	}
	rx, ry := math.Abs(args[0]), math.Abs(args[1])
	dx, dy := args[5], args[6]
	_, _, theta1, dtheta := arcCenter(rx, ry, args[2], args[3] != 0, args[4] != 0, dx, dy)
	_ = theta1
	return math.Abs(dtheta) * math.Sqrt((rx*rx+ry*ry)/2)
}

// arcCenter computes the centre and angular span of an SVG relative arc
// command per the endpoint-to-center parameterisation, with (0,0) as the
// start point and (dx,dy) as the relative end point.
func arcCenter(rx, ry, xRotDeg float64, largeArc, sweep bool, dx, dy float64) (cx, cy, theta1, dtheta float64) {
	if rx == 0 || ry == 0 {
		return 0, 0, 0, math.Atan2(dy, dx)
	}
	phi := xRotDeg * math.Pi / 180
	cosPhi, sinPhi := math.Cos(phi), math.Sin(phi)
	// Endpoint parameterisation relative to the chord midpoint.
	x1, y1 := 0.0, 0.0
	x2, y2 := dx, dy
	mx, my := (x1-x2)/2, (y1-y2)/2
	x1p := cosPhi*mx + sinPhi*my
	y1p := -sinPhi*mx + cosPhi*my

	rxs, rys := rx*rx, ry*ry
	x1ps, y1ps := x1p*x1p, y1p*y1p
	lambda := x1ps/rxs + y1ps/rys
	if lambda > 1 {
		scale := math.Sqrt(lambda)
		rx *= scale
		ry *= scale
		rxs, rys = rx*rx, ry*ry
	}

	num := rxs*rys - rxs*y1ps - rys*x1ps
	den := rxs*y1ps + rys*x1ps
	var coef float64
	if den != 0 && num > 0 {
		coef = math.Sqrt(num / den)
	}
	if largeArc == sweep {
		coef = -coef
	}
	cxp := coef * (rx * y1p / ry)
	cyp := coef * (-ry * x1p / rx)

	cx = cosPhi*cxp - sinPhi*cyp + (x1+x2)/2
	cy = sinPhi*cxp + cosPhi*cyp + (y1+y2)/2

	angle := func(ux, uy, vx, vy float64) float64 {
		dot := ux*vx + uy*vy
		lu := math.Hypot(ux, uy)
		lv := math.Hypot(vx, vy)
		cosA := dot / (lu * lv)
		if cosA > 1 {
			cosA = 1
		}
		if cosA < -1 {
			cosA = -1
		}
		a := math.Acos(cosA)
		if ux*vy-uy*vx < 0 {
			a = -a
		}
		return a
	}

	theta1 = angle(1, 0, (x1p-cxp)/rx, (y1p-cyp)/ry)
	dtheta = angle((x1p-cxp)/rx, (y1p-cyp)/ry, (-x1p-cxp)/rx, (-y1p-cyp)/ry)
	if !sweep && dtheta > 0 {
		dtheta -= 2 * math.Pi
	} else if sweep && dtheta < 0 {
		dtheta += 2 * math.Pi
	}
	return cx, cy, theta1, dtheta
}

// At returns the point at parameter t in [0,1] along the block's path,
// measured by arc length.
func (pb *PathBlock) At(t float64) (geom.Point, error) {
	pt, _, err := pb.sample(t)
	return pt, err
}

// Tangent returns the point and heading angle at parameter t.
func (pb *PathBlock) Tangent(t float64) (geom.Point, float64, error) {
	return pb.sample(t)
}

// Normal returns the point and the tangent angle minus pi/2 at parameter t.
func (pb *PathBlock) Normal(t float64) (geom.Point, float64, error) {
	pt, angle, err := pb.sample(t)
	if err != nil {
		return pt, 0, err
	}
	return pt, angle - math.Pi/2, nil
}

// Sample is an (point, angle) pair returned by Partition.
type Sample struct {
	Point geom.Point
	Angle float64
}

// Partition returns n+1 samples at t = i/n for i in [0, n].
func (pb *PathBlock) Partition(n int) ([]Sample, error) {
	if n < 1 {
		return nil, fmt.Errorf("partition count must be a positive integer, got %d", n)
	}
	out := make([]Sample, n+1)
	for i := 0; i <= n; i++ {
		t := float64(i) / float64(n)
		pt, angle, err := pb.sample(t)
		if err != nil {
			return nil, err
		}
		out[i] = Sample{Point: pt, Angle: angle}
	}
	return out, nil
}

func (pb *PathBlock) sample(t float64) (geom.Point, float64, error) {
	if t < 0 || t > 1 {
		return geom.Point{}, 0, fmt.Errorf("parameter t must be within [0, 1], got %v", t)
	}
	if len(pb.segments) == 0 {
		return pb.StartPoint, 0, nil
	}
	target := t * pb.Length
	var prevCum float64
	cursor := geom.Point{}
	subpathStart := geom.Point{}
	for i, seg := range pb.segments {
		segStart := cursor
		if target <= seg.cumulativeEnd || i == len(pb.segments)-1 {
			localLen := seg.length
			var localT float64
			if localLen > 0 {
				localT = (target - prevCum) / localLen
				if localT < 0 {
					localT = 0
				}
				if localT > 1 {
					localT = 1
				}
			}
			pt, angle := sampleSegment(seg.rec, segStart, subpathStart, localT)
			return pt, angle, nil
		}
		prevCum = seg.cumulativeEnd
		cursor = seg.rec.End
		if seg.rec.Letter == "m" {
			subpathStart = seg.rec.End
		}
	}
	last := pb.segments[len(pb.segments)-1]
	return last.rec.End, 0, nil
}

func sampleSegment(rec CommandRecord, start, subpathStart geom.Point, t float64) (geom.Point, float64) {
	switch rec.Letter {
	case "m":
		return rec.End, 0
	case "l":
		end := start.Add(geom.Point{X: rec.Args[0], Y: rec.Args[1]})
		return start.Lerp(end, t), start.AngleTo(end)
	case "h":
		end := start.Add(geom.Point{X: rec.Args[0]})
		return start.Lerp(end, t), start.AngleTo(end)
	case "v":
		end := start.Add(geom.Point{Y: rec.Args[0]})
		return start.Lerp(end, t), start.AngleTo(end)
	case "z":
		return start.Lerp(subpathStart, t), start.AngleTo(subpathStart)
	case "q":
		c1 := start.Add(geom.Point{X: rec.Args[0], Y: rec.Args[1]})
		p2 := start.Add(geom.Point{X: rec.Args[2], Y: rec.Args[3]})
		return quadPoint(start, c1, p2, t), quadTangentAngle(start, c1, p2, t)
	case "c":
		c1 := start.Add(geom.Point{X: rec.Args[0], Y: rec.Args[1]})
		c2 := start.Add(geom.Point{X: rec.Args[2], Y: rec.Args[3]})
		p2 := start.Add(geom.Point{X: rec.Args[4], Y: rec.Args[5]})
		return cubicPoint(start, c1, c2, p2, t), cubicTangentAngle(start, c1, c2, p2, t)
	case "s", "t":
		end := start.Add(geom.Point{X: rec.Args[len(rec.Args)-2], Y: rec.Args[len(rec.Args)-1]})
		return start.Lerp(end, t), start.AngleTo(end)
	case "a":
		return arcPoint(rec, start, t)
	default:
		return start, 0
	}
}

func quadPoint(p0, c1, p2 geom.Point, t float64) geom.Point {
	u := 1 - t
	x := u*u*p0.X + 2*u*t*c1.X + t*t*p2.X
	y := u*u*p0.Y + 2*u*t*c1.Y + t*t*p2.Y
	return geom.Point{X: x, Y: y}
}

func quadTangentAngle(p0, c1, p2 geom.Point, t float64) float64 {
	u := 1 - t
	dx := 2*u*(c1.X-p0.X) + 2*t*(p2.X-c1.X)
	dy := 2*u*(c1.Y-p0.Y) + 2*t*(p2.Y-c1.Y)
	return math.Atan2(dy, dx)
}

func cubicPoint(p0, c1, c2, p2 geom.Point, t float64) geom.Point {
	u := 1 - t
	x := u*u*u*p0.X + 3*u*u*t*c1.X + 3*u*t*t*c2.X + t*t*t*p2.X
	y := u*u*u*p0.Y + 3*u*u*t*c1.Y + 3*u*t*t*c2.Y + t*t*t*p2.Y
	return geom.Point{X: x, Y: y}
}

func cubicTangentAngle(p0, c1, c2, p2 geom.Point, t float64) float64 {
	u := 1 - t
	dx := 3*u*u*(c1.X-p0.X) + 6*u*t*(c2.X-c1.X) + 3*t*t*(p2.X-c2.X)
	dy := 3*u*u*(c1.Y-p0.Y) + 6*u*t*(c2.Y-c1.Y) + 3*t*t*(p2.Y-c2.Y)
	return math.Atan2(dy, dx)
}

func arcPoint(rec CommandRecord, start geom.Point, t float64) (geom.Point, float64) {
	rx, ry, xRot, largeArc, sweep, dx, dy := rec.Args[0], rec.Args[1], rec.Args[2], rec.Args[3] != 0, rec.Args[4] != 0, rec.Args[5], rec.Args[6]
	cx, cy, theta1, dtheta := arcCenter(math.Abs(rx), math.Abs(ry), xRot, largeArc, sweep, dx, dy)
	theta := theta1 + dtheta*t
	phi := xRot * math.Pi / 180
	localX := math.Abs(rx) * math.Cos(theta)
	localY := math.Abs(ry) * math.Sin(theta)
	// Reconstruct in absolute terms from the start point and local center.
	centerAbs := start.Add(geom.Point{X: cx, Y: cy}.Rotate(phi, geom.Point{}))
	pt := centerAbs.Add(geom.Point{X: localX, Y: localY}.Rotate(phi, geom.Point{}))
	tangentX := -math.Abs(rx) * math.Sin(theta)
	tangentY := math.Abs(ry) * math.Cos(theta)
	tv := geom.Point{X: tangentX, Y: tangentY}.Rotate(phi, geom.Point{})
	angle := math.Atan2(tv.Y, tv.X)
	if dtheta < 0 {
		angle += math.Pi
	}
	return pt, angle
}
