package imagecloud

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"math"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func solid(w, h int, c color.NRGBA) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}

func TestFitSize(t *testing.T) {
	tests := []struct {
		w, h         int
		wantW, wantH int
	}{
		{100, 50, 100, 50},
		{400, 100, 200, 50},
		{100, 400, 50, 200},
		{200, 200, 200, 200},
		{300, 300, 200, 200},
		{1000, 1, 200, 1},
		{0, 10, 0, 0},
	}
	for _, tt := range tests {
		w, h := FitSize(tt.w, tt.h, MaxDimension)
		if w != tt.wantW || h != tt.wantH {
			t.Errorf("FitSize(%d,%d) = %d,%d, want %d,%d", tt.w, tt.h, w, h, tt.wantW, tt.wantH)
		}
	}
}

func TestSampleTransparentImageIsEmpty(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 10, 10))
	cloud := Sample(img, DefaultOptions())
	if cloud.Len() != 0 {
		t.Fatalf("expected 0 points, got %d", cloud.Len())
	}
	if !cloud.Empty() {
		t.Error("expected Empty() for a fully transparent image")
	}
}

func TestSampleOpaqueGrid(t *testing.T) {
	img := solid(4, 4, color.NRGBA{255, 0, 51, 255})
	cloud := Sample(img, DefaultOptions())
	if cloud.Len() != 4 {
		t.Fatalf("expected 4 points on a stride-2 grid, got %d", cloud.Len())
	}
	first := cloud.Points[0]
	if first.Pos[0] != -Extent || first.Pos[1] != Extent {
		t.Errorf("top-left pixel should map to (-10, 10), got %v", first.Pos)
	}
	last := cloud.Points[3]
	if last.Pos[0] != 0 || last.Pos[1] != 0 {
		t.Errorf("pixel (2,2) should map to the centre, got %v", last.Pos)
	}
	if first.Color[0] != 1 || first.Color[1] != 0 || math.Abs(float64(first.Color[2])-0.2) > 1e-6 {
		t.Errorf("unexpected colour %v", first.Color)
	}
}

func TestSampleAlphaThreshold(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 4, 2))
	img.SetNRGBA(0, 0, color.NRGBA{10, 10, 10, 128})
	img.SetNRGBA(2, 0, color.NRGBA{10, 10, 10, 129})
	cloud := Sample(img, DefaultOptions())
	if cloud.Len() != 1 {
		t.Fatalf("only alpha > 128 should be kept, got %d points", cloud.Len())
	}
}

func TestSampleDownscalesLargeImages(t *testing.T) {
	img := solid(800, 400, color.NRGBA{0, 255, 0, 255})
	cloud := Sample(img, DefaultOptions())
	if cloud.Width != 200 || cloud.Height != 100 {
		t.Fatalf("expected 200x100 raster, got %dx%d", cloud.Width, cloud.Height)
	}
	if cloud.Len() != 100*50 {
		t.Errorf("expected %d points, got %d", 100*50, cloud.Len())
	}
	for _, p := range cloud.Points {
		if p.Pos[0] < -Extent || p.Pos[0] > Extent || p.Pos[1] < -Extent || p.Pos[1] > Extent {
			t.Fatalf("point %v outside normalized frame", p.Pos)
		}
	}
}

func TestSampleIsIdempotent(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 333, 120))
	for y := 0; y < 120; y++ {
		for x := 0; x < 333; x++ {
			img.SetNRGBA(x, y, color.NRGBA{uint8(x), uint8(y), uint8(x ^ y), uint8((x * y) % 256)})
		}
	}
	a := Sample(img, DefaultOptions())
	b := Sample(img, DefaultOptions())
	if !reflect.DeepEqual(a, b) {
		t.Fatal("sampling the same image twice produced different clouds")
	}
}

func TestCloudWraparound(t *testing.T) {
	cloud := &Cloud{Points: make([]Point, 3)}
	for m := 1; m <= 3; m++ {
		c := &Cloud{Points: cloud.Points[:m]}
		for i := -5; i < 50; i++ {
			idx := c.Index(i)
			if idx < 0 || idx >= m {
				t.Fatalf("Index(%d) with size %d = %d", i, m, idx)
			}
		}
	}
	var empty *Cloud
	if empty.Index(7) != -1 {
		t.Error("nil cloud should report -1")
	}
	if (empty.At(7) != Point{}) {
		t.Error("nil cloud should return the zero point")
	}
}

func TestLoadRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, solid(6, 6, color.NRGBA{1, 2, 3, 255})); err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(t.TempDir(), "upload.png")
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		t.Fatal(err)
	}
	cloud, err := Load(path, DefaultOptions())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cloud.Len() != 9 {
		t.Errorf("expected 9 points, got %d", cloud.Len())
	}

	fsCloud, err := LoadFS(os.DirFS(filepath.Dir(path)), "upload.png", DefaultOptions())
	if err != nil {
		t.Fatalf("LoadFS: %v", err)
	}
	if !reflect.DeepEqual(cloud, fsCloud) {
		t.Error("Load and LoadFS disagree")
	}

	memCloud, err := FromBytes(buf.Bytes(), "upload.png", DefaultOptions())
	if err != nil {
		t.Fatalf("FromBytes: %v", err)
	}
	if !reflect.DeepEqual(cloud, memCloud) {
		t.Error("Load and FromBytes disagree")
	}
}

func TestDecodeRejectsGarbage(t *testing.T) {
	_, _, err := Decode(strings.NewReader("definitely not an image"))
	if !errors.Is(err, ErrNoImage) {
		t.Fatalf("expected ErrNoImage, got %v", err)
	}
}
