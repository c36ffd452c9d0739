package shape

import (
	"errors"
	"fmt"
	"strings"
)

// Shape identifies one of the particle layouts.
type Shape uint8

const (
	Heart Shape = iota
	Flower
	Saturn
	Star
	Ring
	Cube
	Spiral
	Snowflake
	Torus
	Sphere
	CustomImage

	numShapes
)

// ErrUnknownShape is returned by ParseShape for an unrecognized key.
var ErrUnknownShape = errors.New("unknown shape")

var names = [numShapes]string{
	Heart:       "heart",
	Flower:      "flower",
	Saturn:      "saturn",
	Star:        "star",
	Ring:        "ring",
	Cube:        "cube",
	Spiral:      "spiral",
	Snowflake:   "snowflake",
	Torus:       "torus",
	Sphere:      "sphere",
	CustomImage: "custom-image",
}

// String returns the selection key, e.g. "custom-image".
func (s Shape) String() string {
	if s < numShapes {
		return names[s]
	}
	return fmt.Sprintf("shape(%d)", uint8(s))
}

// Valid reports whether s is a known shape.
func (s Shape) Valid() bool { return s < numShapes }

// ParseShape maps a selection key onto a Shape. Matching ignores case and
// surrounding whitespace.
func ParseShape(key string) (Shape, error) {
	key = strings.ToLower(strings.TrimSpace(key))
	for i, n := range names {
		if n == key {
			return Shape(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownShape, key)
}

// All returns every shape in selection order.
func All() []Shape {
	out := make([]Shape, numShapes)
	for i := range out {
		out[i] = Shape(i)
	}
	return out
}
