package imagecloud

import "github.com/go-gl/mathgl/mgl32"

// Point is one opaque pixel of a sampled image. Pos lies in the
// normalized frame (roughly ±Extent on both axes, y up) and Color is rgb
// in [0,1].
type Point struct {
	Pos   mgl32.Vec2
	Color mgl32.Vec3
}

// Cloud is the point set extracted from an uploaded image. A Cloud is
// never modified after Sample returns it, so it can be shared between the
// loader goroutine and the render loop once published.
type Cloud struct {
	// Width and Height of the downscaled raster the points came from
	Width, Height int
	Points        []Point
}

// Len returns the number of points. A nil cloud has no points.
func (c *Cloud) Len() int {
	if c == nil {
		return 0
	}
	return len(c.Points)
}

// Empty reports whether the cloud has no usable points, in which case
// callers fall back to a random planar scatter.
func (c *Cloud) Empty() bool { return c.Len() == 0 }

// Index maps particle index i onto the cloud, wrapping around when there
// are more particles than points. It returns -1 for an empty cloud.
func (c *Cloud) Index(i int) int {
	n := c.Len()
	if n == 0 {
		return -1
	}
	i %= n
	if i < 0 {
		i += n
	}
	return i
}

// At returns the point that particle i maps to. An empty cloud yields the
// zero Point.
func (c *Cloud) At(i int) Point {
	idx := c.Index(i)
	if idx < 0 {
		return Point{}
	}
	return c.Points[idx]
}
