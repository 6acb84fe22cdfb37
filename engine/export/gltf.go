package export

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"visage/common"
	"visage/engine/renderable"
	"visage/engine/scene"
)

// glTF component type and buffer target constants, per the glTF 2.0
// specification.
const (
	componentUint32  = 5125
	componentFloat32 = 5126

	targetElementArray = 34963
	targetArrayBuffer  = 34962
)

// generator identifies this writer in exported assets.
const generator = "visage scene exporter"

type gltfScene struct {
	Nodes []int `json:"nodes"`
}

type gltfNode struct {
	Mesh        int        `json:"mesh"`
	Translation [3]float32 `json:"translation"`
}

type gltfPrimitive struct {
	Attributes map[string]int `json:"attributes"`
	Indices    int            `json:"indices"`
	Material   int            `json:"material"`
}

type gltfMesh struct {
	Primitives []gltfPrimitive `json:"primitives"`
}

type gltfBuffer struct {
	URI        string `json:"uri"`
	ByteLength int    `json:"byteLength"`
}

type gltfBufferView struct {
	Buffer     int `json:"buffer"`
	ByteOffset int `json:"byteOffset"`
	ByteLength int `json:"byteLength"`
	Target     int `json:"target"`
}

type gltfAccessor struct {
	BufferView    int       `json:"bufferView"`
	ByteOffset    int       `json:"byteOffset"`
	ComponentType int       `json:"componentType"`
	Type          string    `json:"type"`
	Count         int       `json:"count"`
	Max           []float32 `json:"max,omitempty"`
	Min           []float32 `json:"min,omitempty"`
}

type gltfMaterial struct {
	DoubleSided bool `json:"doubleSided"`
}

type gltfAsset struct {
	Generator string `json:"generator"`
	Version   string `json:"version"`
}

type gltfDocument struct {
	Scenes      []gltfScene      `json:"scenes"`
	Nodes       []gltfNode       `json:"nodes"`
	Meshes      []gltfMesh       `json:"meshes"`
	Buffers     []gltfBuffer     `json:"buffers"`
	BufferViews []gltfBufferView `json:"bufferViews"`
	Accessors   []gltfAccessor   `json:"accessors"`
	Materials   []gltfMaterial   `json:"materials"`
	Asset       gltfAsset        `json:"asset"`
}

// WriteGLTF writes every registered renderable as a glTF 2.0 document with
// embedded geometry. Each renderable becomes one node and one mesh, backed by
// four buffers in a fixed order: indices, positions, colours, normals.
// Geometry is embedded as base64 data URIs, so the document is
// self-contained.
//
// Parameters:
//   - w: the destination
//   - scn: the scene to export
//
// Returns:
//   - error: encode or write failure
func WriteGLTF(w io.Writer, scn *scene.Scene) error {
	doc := gltfDocument{
		Scenes:    []gltfScene{{Nodes: []int{}}},
		Materials: []gltfMaterial{{DoubleSided: true}},
		Asset:     gltfAsset{Generator: generator, Version: "2.0"},
	}

	i := 0
	scn.Each(func(r renderable.Renderable) {
		doc.Scenes[0].Nodes = append(doc.Scenes[0].Nodes, i)
		doc.Nodes = append(doc.Nodes, gltfNode{
			Mesh:        i,
			Translation: [3]float32{r.Offset().X(), r.Offset().Y(), r.Offset().Z()},
		})
		doc.Meshes = append(doc.Meshes, gltfMesh{
			Primitives: []gltfPrimitive{{
				Attributes: map[string]int{
					"POSITION": i*4 + 1,
					"COLOR_0":  i*4 + 2,
					"NORMAL":   i*4 + 3,
				},
				Indices:  i * 4,
				Material: 0,
			}},
		})

		indices := r.Indices()
		positions := r.Positions()
		colors := r.Colors()
		normals := r.Normals()

		for bi, raw := range [][]byte{
			common.SliceToBytes(indices),
			common.SliceToBytes(positions),
			common.SliceToBytes(colors),
			common.SliceToBytes(normals),
		} {
			target := targetArrayBuffer
			if bi == 0 {
				target = targetElementArray
			}
			doc.Buffers = append(doc.Buffers, gltfBuffer{
				URI:        "data:application/octet-stream;base64," + base64.StdEncoding.EncodeToString(raw),
				ByteLength: len(raw),
			})
			doc.BufferViews = append(doc.BufferViews, gltfBufferView{
				Buffer:     i*4 + bi,
				ByteLength: len(raw),
				Target:     target,
			})
		}

		min, max := positionBounds(positions)
		doc.Accessors = append(doc.Accessors,
			gltfAccessor{
				BufferView:    i * 4,
				ComponentType: componentUint32,
				Type:          "SCALAR",
				Count:         len(indices),
			},
			gltfAccessor{
				BufferView:    i*4 + 1,
				ComponentType: componentFloat32,
				Type:          "VEC3",
				Count:         len(positions) / 3,
				Max:           max,
				Min:           min,
			},
			gltfAccessor{
				BufferView:    i*4 + 2,
				ComponentType: componentFloat32,
				Type:          "VEC3",
				Count:         len(colors) / 3,
			},
			gltfAccessor{
				BufferView:    i*4 + 3,
				ComponentType: componentFloat32,
				Type:          "VEC3",
				Count:         len(normals) / 3,
			},
		)
		i++
	})

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("export: failed to encode glTF document: %w", err)
	}
	return nil
}

// SaveGLTF writes the scene to a glTF file, replacing any previous contents.
//
// Parameters:
//   - path: the destination file
//   - scn: the scene to export
//
// Returns:
//   - error: create, encode or write failure
func SaveGLTF(path string, scn *scene.Scene) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("export: failed to create %s: %w", path, err)
	}
	if err := WriteGLTF(f, scn); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("export: failed to write %s: %w", path, err)
	}
	return nil
}

// positionBounds computes per-component minima and maxima over xyz triples,
// required by glTF for position accessors.
func positionBounds(positions []float32) (min, max []float32) {
	if len(positions) < 3 {
		return []float32{0, 0, 0}, []float32{0, 0, 0}
	}
	min = []float32{positions[0], positions[1], positions[2]}
	max = []float32{positions[0], positions[1], positions[2]}
	for i := 3; i+2 < len(positions); i += 3 {
		for c := 0; c < 3; c++ {
			v := positions[i+c]
			if v < min[c] {
				min[c] = v
			}
			if v > max[c] {
				max[c] = v
			}
		}
	}
	return min, max
}
