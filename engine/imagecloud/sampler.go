package imagecloud

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"io/fs"
	"os"

	"github.com/go-gl/mathgl/mgl32"
	_ "golang.org/x/image/bmp"
	xdraw "golang.org/x/image/draw"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

const (
	MaxDimension          = 200 // longer side of the sampling raster
	DefaultStride         = 2   // pixels between samples on both axes
	DefaultAlphaThreshold = 128 // pixels must be strictly more opaque than this
	Extent                = 10  // half-size of the normalized frame
)

// ErrNoImage is returned when an upload could not be decoded as an image.
var ErrNoImage = errors.New("imagecloud: no image")

// Options control how an image is turned into a Cloud.
type Options struct {
	Stride         int
	AlphaThreshold uint8
	MaxDimension   int
}

// DefaultOptions returns the sampling parameters used for uploads.
func DefaultOptions() Options {
	return Options{
		Stride:         DefaultStride,
		AlphaThreshold: DefaultAlphaThreshold,
		MaxDimension:   MaxDimension,
	}
}

func (o Options) normalized() Options {
	if o.Stride < 1 {
		o.Stride = DefaultStride
	}
	if o.MaxDimension < 1 {
		o.MaxDimension = MaxDimension
	}
	return o
}

// FitSize shrinks w x h so the longer side is at most limit, keeping the
// aspect ratio. Sizes already within bounds are returned unchanged.
func FitSize(w, h, limit int) (int, int) {
	if w <= 0 || h <= 0 {
		return 0, 0
	}
	if w > h {
		if w > limit {
			h = roundDiv(h*limit, w)
			w = limit
		}
	} else if h > limit {
		w = roundDiv(w*limit, h)
		h = limit
	}
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	return w, h
}

func roundDiv(a, b int) int {
	return (2*a + b) / (2 * b)
}

// Sample downscales img and scans it on the stride grid, keeping every
// pixel whose alpha exceeds the threshold. The result depends only on the
// image contents and the options.
func Sample(img image.Image, opts Options) *Cloud {
	opts = opts.normalized()
	if img == nil {
		return &Cloud{}
	}
	src := img.Bounds()
	w, h := FitSize(src.Dx(), src.Dy(), opts.MaxDimension)
	if w == 0 || h == 0 {
		return &Cloud{}
	}

	raster := image.NewNRGBA(image.Rect(0, 0, w, h))
	if w == src.Dx() && h == src.Dy() {
		xdraw.Draw(raster, raster.Bounds(), img, src.Min, xdraw.Src)
	} else {
		xdraw.BiLinear.Scale(raster, raster.Bounds(), img, src, xdraw.Src, nil)
	}

	cloud := &Cloud{Width: w, Height: h}
	halfW, halfH := float32(w)/2, float32(h)/2
	unitX := float32(w) / (2 * Extent)
	unitY := float32(h) / (2 * Extent)
	for y := 0; y < h; y += opts.Stride {
		for x := 0; x < w; x += opts.Stride {
			off := raster.PixOffset(x, y)
			px := raster.Pix[off : off+4 : off+4]
			if px[3] <= opts.AlphaThreshold {
				continue
			}
			cloud.Points = append(cloud.Points, Point{
				Pos: mgl32.Vec2{
					(float32(x) - halfW) / unitX,
					-(float32(y) - halfH) / unitY,
				},
				Color: mgl32.Vec3{
					float32(px[0]) / 255,
					float32(px[1]) / 255,
					float32(px[2]) / 255,
				},
			})
		}
	}
	return cloud
}

// Decode reads any registered raster format (png, jpeg, gif, bmp, tiff, webp).
func Decode(r io.Reader) (image.Image, string, error) {
	img, format, err := image.Decode(r)
	if err != nil {
		return nil, "", fmt.Errorf("%w: %v", ErrNoImage, err)
	}
	return img, format, nil
}

// Load decodes and samples the image file at path.
func Load(path string, opts Options) (*Cloud, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open image: %w", err)
	}
	defer f.Close()
	return read(f, path, opts)
}

// LoadFS is Load for files exposed through an fs.FS, such as files
// dropped onto the window.
func LoadFS(fsys fs.FS, name string, opts Options) (*Cloud, error) {
	f, err := fsys.Open(name)
	if err != nil {
		return nil, fmt.Errorf("open image: %w", err)
	}
	defer f.Close()
	return read(f, name, opts)
}

// FromBytes samples an image already read into memory.
func FromBytes(data []byte, name string, opts Options) (*Cloud, error) {
	return read(bytes.NewReader(data), name, opts)
}

func read(r io.Reader, name string, opts Options) (*Cloud, error) {
	img, _, err := Decode(r)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", name, err)
	}
	return Sample(img, opts), nil
}
