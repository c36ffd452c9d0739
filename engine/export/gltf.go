// Package export writes particle layouts to glTF point clouds.
package export

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"
)

var ErrEmpty = errors.New("no points to export")

// PointCloud builds a document holding one POINTS primitive. positions
// and colors are interleaved triples; colors may be nil.
func PointCloud(name string, positions, colors []float32) (*gltf.Document, error) {
	n := len(positions) / 3
	if n == 0 {
		return nil, ErrEmpty
	}
	if colors != nil && len(colors) < 3*n {
		return nil, fmt.Errorf("export: %d colours for %d points", len(colors)/3, n)
	}

	pos := make([][3]float32, n)
	for i := range pos {
		pos[i] = [3]float32{positions[3*i], positions[3*i+1], positions[3*i+2]}
	}

	doc := gltf.NewDocument()
	attrs := map[string]int{
		gltf.POSITION: modeler.WritePosition(doc, pos),
	}
	if colors != nil {
		col := make([][3]float32, n)
		for i := range col {
			col[i] = [3]float32{colors[3*i], colors[3*i+1], colors[3*i+2]}
		}
		attrs[gltf.COLOR_0] = modeler.WriteColor(doc, col)
	}

	doc.Meshes = []*gltf.Mesh{{
		Name: name,
		Primitives: []*gltf.Primitive{{
			Attributes: attrs,
			Mode:       gltf.PrimitivePoints,
		}},
	}}
	doc.Nodes = []*gltf.Node{{Name: name, Mesh: gltf.Index(0)}}
	doc.Scenes[0].Nodes = append(doc.Scenes[0].Nodes, 0)
	return doc, nil
}

// WritePoints saves a point cloud to path, binary for .glb and JSON
// otherwise.
func WritePoints(path, name string, positions, colors []float32) error {
	doc, err := PointCloud(name, positions, colors)
	if err != nil {
		return err
	}
	if strings.EqualFold(filepath.Ext(path), ".glb") {
		err = gltf.SaveBinary(doc, path)
	} else {
		err = gltf.Save(doc, path)
	}
	if err != nil {
		return fmt.Errorf("export %s: %w", path, err)
	}
	return nil
}
