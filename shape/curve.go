package shape

// A Context receives the points of one or more line segments and draws
// them into a Path. LineStart and LineEnd bracket each segment.
type Context interface {
	LineStart()
	Point(x, y float64)
	LineEnd()
	Path() *Path
}

// A Curve creates fresh drawing contexts. Curves are stateless
// descriptions; all drawing state lives in the Context.
type Curve interface {
	Context() Context
}

// Linear connects points with straight line segments.
type Linear struct{}

func (Linear) Context() Context { return &linearContext{} }

type linearContext struct {
	path  Path
	state int
}

func (c *linearContext) Path() *Path { return &c.path }

func (c *linearContext) LineStart() { c.state = 0 }

func (c *linearContext) LineEnd() {
	if c.state == 1 {
		c.path.ClosePath()
	}
	c.state = 0
}

func (c *linearContext) Point(x, y float64) {
	switch c.state {
	case 0:
		c.state = 1
		c.path.MoveTo(x, y)
	default:
		c.state = 2
		c.path.LineTo(x, y)
	}
}

// Basis draws a cubic B-spline through the control points. The curve
// starts at the first and ends at the last point but passes through
// none of the others.
type Basis struct{}

func (Basis) Context() Context { return &basisContext{} }

type basisContext struct {
	path           Path
	state          int
	x0, y0, x1, y1 float64
}

func (c *basisContext) Path() *Path { return &c.path }

func (c *basisContext) LineStart() {
	c.state = 0
}

func (c *basisContext) LineEnd() {
	switch c.state {
	case 3:
		c.point(c.x1, c.y1)
		c.path.LineTo(c.x1, c.y1)
	case 2:
		c.path.LineTo(c.x1, c.y1)
	case 1:
		c.path.ClosePath()
	}
	c.state = 0
}

func (c *basisContext) Point(x, y float64) {
	switch c.state {
	case 0:
		c.state = 1
		c.path.MoveTo(x, y)
	case 1:
		c.state = 2
	case 2:
		c.state = 3
		c.path.LineTo((5*c.x0+c.x1)/6, (5*c.y0+c.y1)/6)
		c.point(x, y)
	default:
		c.point(x, y)
	}
	c.x0, c.x1 = c.x1, x
	c.y0, c.y1 = c.y1, y
}

func (c *basisContext) point(x, y float64) {
	c.path.CubicTo(
		(2*c.x0+c.x1)/3, (2*c.y0+c.y1)/3,
		(c.x0+2*c.x1)/3, (c.y0+2*c.y1)/3,
		(c.x0+4*c.x1+x)/6, (c.y0+4*c.y1+y)/6,
	)
}

// Cardinal draws a cardinal spline through all points. Tension 0 gives
// a Catmull-Rom spline, tension 1 straight lines.
type Cardinal struct {
	Tension float64
}

func (c Cardinal) Context() Context { return &cardinalContext{k: (1 - c.Tension) / 6} }

type cardinalContext struct {
	path                   Path
	state                  int
	k                      float64
	x0, y0, x1, y1, x2, y2 float64
}

func (c *cardinalContext) Path() *Path { return &c.path }

func (c *cardinalContext) LineStart() { c.state = 0 }

func (c *cardinalContext) LineEnd() {
	switch c.state {
	case 3:
		c.point(c.x1, c.y1)
	case 2:
		c.path.LineTo(c.x2, c.y2)
	case 1:
		c.path.ClosePath()
	}
	c.state = 0
}

func (c *cardinalContext) Point(x, y float64) {
	switch c.state {
	case 0:
		c.state = 1
		c.path.MoveTo(x, y)
	case 1:
		c.state = 2
		c.x1, c.y1 = x, y
	case 2:
		c.state = 3
		c.point(x, y)
	default:
		c.point(x, y)
	}
	c.x0, c.x1, c.x2 = c.x1, c.x2, x
	c.y0, c.y1, c.y2 = c.y1, c.y2, y
}

func (c *cardinalContext) point(x, y float64) {
	c.path.CubicTo(
		c.x1+c.k*(c.x2-c.x0), c.y1+c.k*(c.y2-c.y0),
		c.x2+c.k*(c.x1-x), c.y2+c.k*(c.y1-y),
		c.x2, c.y2,
	)
}
