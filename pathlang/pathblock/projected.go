package pathblock

import "github.com/svgdsl/svgdsl/pathlang/geom"

// ProjectedPath anchors a PathBlock's relative geometry at an absolute
// origin, translating query results into absolute coordinates. It is
// produced by draw() (origin = cursor position at draw time) or
// project(x, y) (an explicit origin, no emission).
type ProjectedPath struct {
	Block  *PathBlock
	Origin geom.Point
}

// NewProjectedPath anchors block at origin.
func NewProjectedPath(block *PathBlock, origin geom.Point) *ProjectedPath {
	return &ProjectedPath{Block: block, Origin: origin}
}

// StartPoint returns the absolute start point.
func (p *ProjectedPath) StartPoint() geom.Point { return p.Origin.Add(p.Block.StartPoint) }

// EndPoint returns the absolute end point.
func (p *ProjectedPath) EndPoint() geom.Point { return p.Origin.Add(p.Block.EndPoint) }

// Length returns the underlying block's arc length (translation-invariant).
func (p *ProjectedPath) Length() float64 { return p.Block.Length }

// SubPathCount returns the underlying block's subpath count.
func (p *ProjectedPath) SubPathCount() int { return p.Block.SubPathCount }

// SubPathCommands returns the underlying block's per-command records
// (relative geometry; these are not translated by Origin).
func (p *ProjectedPath) SubPathCommands() []SubPathCommand { return p.Block.SubPathCommands }

// Vertices returns absolute vertex coordinates.
func (p *ProjectedPath) Vertices() []geom.Point {
	out := make([]geom.Point, len(p.Block.Vertices))
	for i, v := range p.Block.Vertices {
		out[i] = p.Origin.Add(v)
	}
	return out
}

// At returns the absolute point at parameter t.
func (p *ProjectedPath) At(t float64) (geom.Point, error) {
	pt, err := p.Block.At(t)
	return p.Origin.Add(pt), err
}

// Tangent returns the absolute point and heading angle at parameter t.
func (p *ProjectedPath) Tangent(t float64) (geom.Point, float64, error) {
	pt, angle, err := p.Block.Tangent(t)
	return p.Origin.Add(pt), angle, err
}

// Normal returns the absolute point and normal angle at parameter t.
func (p *ProjectedPath) Normal(t float64) (geom.Point, float64, error) {
	pt, angle, err := p.Block.Normal(t)
	return p.Origin.Add(pt), angle, err
}

// Partition returns n+1 absolute samples.
func (p *ProjectedPath) Partition(n int) ([]Sample, error) {
	samples, err := p.Block.Partition(n)
	if err != nil {
		return nil, err
	}
	out := make([]Sample, len(samples))
	for i, s := range samples {
		out[i] = Sample{Point: p.Origin.Add(s.Point), Angle: s.Angle}
	}
	return out, nil
}
