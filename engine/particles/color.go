package particles

import (
	"fmt"

	"github.com/1siamBot/particle-gesture/engine/imagecloud"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// ColorModel colours particles from two endpoint colours, either as a
// linear RGB gradient over particle index or as a single flat colour.
type ColorModel struct {
	Start    colorful.Color
	End      colorful.Color
	Gradient bool
}

// ParseColorModel builds a model from "#rrggbb" strings.
func ParseColorModel(start, end string, gradient bool) (ColorModel, error) {
	a, err := colorful.Hex(start)
	if err != nil {
		return ColorModel{}, fmt.Errorf("color1 %q: %w", start, err)
	}
	b, err := colorful.Hex(end)
	if err != nil {
		return ColorModel{}, fmt.Errorf("color2 %q: %w", end, err)
	}
	return ColorModel{Start: a, End: b, Gradient: gradient}, nil
}

// At returns the colour of particle i out of n.
func (m ColorModel) At(i, n int) colorful.Color {
	if !m.Gradient || n <= 0 {
		return m.Start
	}
	return m.Start.BlendRgb(m.End, float64(i)/float64(n))
}

// Fill writes interleaved rgb into dst, one triple per particle.
func (m ColorModel) Fill(dst []float32) {
	n := len(dst) / 3
	for i := 0; i < n; i++ {
		c := m.At(i, n)
		dst[3*i], dst[3*i+1], dst[3*i+2] = float32(c.R), float32(c.G), float32(c.B)
	}
}

// FillFromCloud copies image colours into dst with the same wraparound
// that maps particles onto cloud points. It reports false, leaving dst
// untouched, when the cloud is empty.
func FillFromCloud(dst []float32, cloud *imagecloud.Cloud) bool {
	if cloud.Empty() {
		return false
	}
	n := len(dst) / 3
	for i := 0; i < n; i++ {
		c := cloud.At(i).Color
		dst[3*i], dst[3*i+1], dst[3*i+2] = c[0], c[1], c[2]
	}
	return true
}
