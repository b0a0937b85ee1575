package shape

// Natural draws a natural cubic spline: the second derivative is zero
// at both ends and the curve passes through every point.
type Natural struct{}

func (Natural) Context() Context { return &naturalContext{} }

type naturalContext struct {
	path Path
	x, y []float64
}

func (c *naturalContext) Path() *Path { return &c.path }

func (c *naturalContext) LineStart() {
	c.x = c.x[:0]
	c.y = c.y[:0]
}

func (c *naturalContext) Point(x, y float64) {
	c.x = append(c.x, x)
	c.y = append(c.y, y)
}

func (c *naturalContext) LineEnd() {
	n := len(c.x)
	if n == 0 {
		return
	}
	c.path.MoveTo(c.x[0], c.y[0])
	switch {
	case n == 1:
		c.path.ClosePath()
	case n == 2:
		c.path.LineTo(c.x[1], c.y[1])
	default:
		ax, bx := controlPoints(c.x)
		ay, by := controlPoints(c.y)
		for i := 1; i < n; i++ {
			c.path.CubicTo(ax[i-1], ay[i-1], bx[i-1], by[i-1], c.x[i], c.y[i])
		}
	}
	c.x, c.y = c.x[:0], c.y[:0]
}

// controlPoints solves the tridiagonal system for the two inner Bézier
// control points of every segment between the len(x) knots.
func controlPoints(x []float64) (a, b []float64) {
	n := len(x) - 1
	a = make([]float64, n)
	b = make([]float64, n)
	r := make([]float64, n)

	a[0], b[0], r[0] = 0, 2, x[0]+2*x[1]
	for i := 1; i < n-1; i++ {
		a[i], b[i], r[i] = 1, 4, 4*x[i]+2*x[i+1]
	}
	a[n-1], b[n-1], r[n-1] = 2, 7, 8*x[n-1]+x[n]

	for i := 1; i < n; i++ {
		m := a[i] / b[i-1]
		b[i] -= m
		r[i] -= m * r[i-1]
	}
	a[n-1] = r[n-1] / b[n-1]
	for i := n - 2; i >= 0; i-- {
		a[i] = (r[i] - a[i+1]) / b[i]
	}
	b[n-1] = (x[n] + a[n-1]) / 2
	for i := 0; i < n-1; i++ {
		b[i] = 2*x[i+1] - a[i+1]
	}
	return a, b
}

// StepBefore, StepMiddle and StepAfter are the usual positions of the
// vertical edge of a Step curve.
const (
	StepBefore = 0.0
	StepMiddle = 0.5
	StepAfter  = 1.0
)

// Step draws a piecewise constant curve of alternating horizontal and
// vertical lines. T positions the vertical edge between two points: 0
// places it at the earlier point, 1 at the later one.
type Step struct {
	T float64
}

func (s Step) Context() Context { return &stepContext{t: s.T} }

type stepContext struct {
	path  Path
	t     float64
	state int
	x, y  float64
}

func (c *stepContext) Path() *Path { return &c.path }

func (c *stepContext) LineStart() { c.state = 0 }

func (c *stepContext) LineEnd() {
	if 0 < c.t && c.t < 1 && c.state == 2 {
		c.path.LineTo(c.x, c.y)
	}
	if c.state == 1 {
		c.path.ClosePath()
	}
	c.state = 0
}

func (c *stepContext) Point(x, y float64) {
	switch c.state {
	case 0:
		c.state = 1
		c.path.MoveTo(x, y)
	default:
		c.state = 2
		if c.t <= 0 {
			c.path.LineTo(c.x, y)
			c.path.LineTo(x, y)
		} else {
			x1 := c.x*(1-c.t) + x*c.t
			c.path.LineTo(x1, c.y)
			c.path.LineTo(x1, y)
		}
	}
	c.x, c.y = x, y
}
