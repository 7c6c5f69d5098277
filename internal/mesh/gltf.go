package mesh

import (
	"log"
	"sort"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/pkg/errors"
	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"
)

// DefaultColor is given to vertices of meshes that carry no color.
var DefaultColor = mgl32.Vec4{0.8, 0.8, 0.8, 1}

// LoadGLTF reads every named mesh of a glTF (.gltf or .glb) file. The
// primitives of one mesh are merged; primitives without indices are
// skipped.
func LoadGLTF(path string) (map[string]Mesh, error) {
	doc, err := gltf.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open %q", path)
	}
	return meshesFromDocument(doc)
}

func meshesFromDocument(doc *gltf.Document) (map[string]Mesh, error) {
	meshes := make(map[string]Mesh, len(doc.Meshes))
	for i, gm := range doc.Meshes {
		name := gm.Name
		if name == "" {
			return nil, errors.Errorf("mesh %d has no name", i)
		}

		parts := make([]Mesh, 0, len(gm.Primitives))
		for _, primitive := range gm.Primitives {
			if primitive.Indices == nil {
				log.Printf("mesh %q: primitive without indices skipped", name)
				continue
			}
			p, err := readPrimitive(doc, primitive)
			if err != nil {
				return nil, errors.Wrapf(err, "mesh %q", name)
			}
			parts = append(parts, p)
		}

		m := Merge(parts...)
		if err := m.Validate(); err != nil {
			return nil, errors.Wrapf(err, "mesh %q", name)
		}
		meshes[name] = m
	}
	return meshes, nil
}

func readPrimitive(doc *gltf.Document, primitive *gltf.Primitive) (Mesh, error) {
	positionIndex, ok := primitive.Attributes["POSITION"]
	if !ok {
		return Mesh{}, errors.New("primitive has no POSITION attribute")
	}
	positions, err := modeler.ReadPosition(doc, doc.Accessors[positionIndex], nil)
	if err != nil {
		return Mesh{}, errors.Wrap(err, "failed to read positions")
	}
	indices, err := modeler.ReadIndices(doc, doc.Accessors[*primitive.Indices], nil)
	if err != nil {
		return Mesh{}, errors.Wrap(err, "failed to read indices")
	}

	var normals [][3]float32
	if normalIndex, ok := primitive.Attributes["NORMAL"]; ok {
		normals, err = modeler.ReadNormal(doc, doc.Accessors[normalIndex], nil)
		if err != nil {
			return Mesh{}, errors.Wrap(err, "failed to read normals")
		}
	}

	m := Mesh{Indices: indices}
	for i, p := range positions {
		m.Vertices = append(m.Vertices, p[0], p[1], p[2])
		m.Colors = append(m.Colors, DefaultColor[:]...)
		if i < len(normals) {
			m.Normals = append(m.Normals, normals[i][0], normals[i][1], normals[i][2])
		} else {
			m.Normals = append(m.Normals, 0, 1, 0)
		}
	}
	return m, nil
}

// LoadMerged reads a glTF file and merges all of its meshes into one, in
// name order.
func LoadMerged(path string) (Mesh, error) {
	meshes, err := LoadGLTF(path)
	if err != nil {
		return Mesh{}, err
	}
	if len(meshes) == 0 {
		return Mesh{}, errors.Errorf("%q has no meshes", path)
	}
	names := make([]string, 0, len(meshes))
	for name := range meshes {
		names = append(names, name)
	}
	sort.Strings(names)

	parts := make([]Mesh, 0, len(names))
	for _, name := range names {
		parts = append(parts, meshes[name])
	}
	return Merge(parts...), nil
}
