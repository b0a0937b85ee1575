// Package shape turns data points into paths: curves interpolating
// points, line generators splitting data into defined segments and
// stack layouts.
//
// Paths are gonum vg.Paths, so they can be stroked on any vg canvas,
// and print as compact SVG path data like "M0,1L2,3".
package shape

import (
	"strconv"
	"strings"

	"gonum.org/v1/plot/vg"
)

// Path is a vg.Path with the drawing vocabulary used by curves.
type Path struct {
	vg.Path
}

func pt(x, y float64) vg.Point { return vg.Point{X: vg.Length(x), Y: vg.Length(y)} }

// MoveTo starts a new subpath at (x,y).
func (p *Path) MoveTo(x, y float64) { p.Move(pt(x, y)) }

// LineTo draws a straight line to (x,y).
func (p *Path) LineTo(x, y float64) { p.Line(pt(x, y)) }

// CubicTo draws a cubic Bézier curve with control points (x1,y1) and
// (x2,y2) ending in (x,y).
func (p *Path) CubicTo(x1, y1, x2, y2, x, y float64) {
	p.CubeTo(pt(x1, y1), pt(x2, y2), pt(x, y))
}

// ClosePath closes the current subpath.
func (p *Path) ClosePath() { p.Close() }

// Command is one drawing operation of a path. Op is one of 'M', 'L',
// 'C' or 'Z'; Points holds the flattened coordinates, control points
// first.
type Command struct {
	Op     byte
	Points []float64
}

// Commands lists the operations of p. Arcs and quadratic curves, which
// curves never produce, are skipped.
func (p *Path) Commands() []Command {
	cmds := make([]Command, 0, len(p.Path))
	for _, c := range p.Path {
		switch c.Type {
		case vg.MoveComp:
			cmds = append(cmds, Command{'M', coords(c.Pos)})
		case vg.LineComp:
			cmds = append(cmds, Command{'L', coords(c.Pos)})
		case vg.CurveComp:
			if len(c.Control) != 2 {
				continue
			}
			cmds = append(cmds, Command{'C', coords(c.Control[0], c.Control[1], c.Pos)})
		case vg.CloseComp:
			cmds = append(cmds, Command{'Z', nil})
		}
	}
	return cmds
}

func coords(points ...vg.Point) []float64 {
	c := make([]float64, 0, 2*len(points))
	for _, p := range points {
		c = append(c, float64(p.X), float64(p.Y))
	}
	return c
}

// String renders p as SVG path data, e.g. "M0,1L2,3C1,1,2,2,3,3Z". A
// subpath closed right after its move gets an explicit line to the
// start point, so a single point renders as "M0,1L0,1Z".
func (p *Path) String() string {
	var (
		b    strings.Builder
		prev Command
	)
	for _, c := range p.Commands() {
		if c.Op == 'Z' && prev.Op == 'M' {
			writeCommand(&b, Command{'L', prev.Points})
		}
		writeCommand(&b, c)
		prev = c
	}
	return b.String()
}

func writeCommand(b *strings.Builder, c Command) {
	b.WriteByte(c.Op)
	for i, v := range c.Points {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.FormatFloat(v, 'f', -1, 64))
	}
}
