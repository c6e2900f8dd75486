package assets

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"

	"github.com/Faultbox/tideline/internal/engine/model"
)

// DecodeMesh flattens the default scene of doc into a single triangle mesh
// with every node transform baked into the vertices.
func DecodeMesh(doc *gltf.Document) (*model.Mesh, error) {
	mesh := &model.Mesh{}

	var roots []int
	switch {
	case doc.Scene != nil && *doc.Scene < len(doc.Scenes):
		roots = doc.Scenes[*doc.Scene].Nodes
	case len(doc.Scenes) > 0:
		roots = doc.Scenes[0].Nodes
	default:
		// No scene: treat every node as a root.
		for i := range doc.Nodes {
			roots = append(roots, i)
		}
	}

	for _, n := range roots {
		if err := appendNode(doc, mesh, n, mgl32.Ident4(), 0); err != nil {
			return nil, err
		}
	}
	if len(mesh.Vertices) == 0 {
		return nil, fmt.Errorf("no triangle geometry")
	}
	mesh.ComputeBounds()
	return mesh, nil
}

// maxNodeDepth guards against cyclic node graphs in malformed files.
const maxNodeDepth = 64

func appendNode(doc *gltf.Document, mesh *model.Mesh, idx int, parent mgl32.Mat4, depth int) error {
	if idx < 0 || idx >= len(doc.Nodes) {
		return fmt.Errorf("node %d out of range", idx)
	}
	if depth > maxNodeDepth {
		return fmt.Errorf("node hierarchy deeper than %d", maxNodeDepth)
	}
	node := doc.Nodes[idx]
	world := parent.Mul4(NodeMatrix(node))

	if node.Mesh != nil {
		if *node.Mesh >= len(doc.Meshes) {
			return fmt.Errorf("node %d: mesh %d out of range", idx, *node.Mesh)
		}
		for pi, prim := range doc.Meshes[*node.Mesh].Primitives {
			if err := appendPrimitive(doc, mesh, prim, world); err != nil {
				return fmt.Errorf("mesh %d primitive %d: %w", *node.Mesh, pi, err)
			}
		}
	}
	for _, child := range node.Children {
		if err := appendNode(doc, mesh, child, world, depth+1); err != nil {
			return err
		}
	}
	return nil
}

func appendPrimitive(doc *gltf.Document, mesh *model.Mesh, prim *gltf.Primitive, world mgl32.Mat4) error {
	if prim.Mode != gltf.PrimitiveTriangles {
		return nil
	}
	posIdx, ok := prim.Attributes[gltf.POSITION]
	if !ok {
		return nil
	}
	if posIdx >= len(doc.Accessors) {
		return fmt.Errorf("position accessor %d out of range", posIdx)
	}
	positions, err := modeler.ReadPosition(doc, doc.Accessors[posIdx], nil)
	if err != nil {
		return fmt.Errorf("reading positions: %w", err)
	}

	var normals [][3]float32
	if nIdx, ok := prim.Attributes[gltf.NORMAL]; ok && nIdx < len(doc.Accessors) {
		normals, err = modeler.ReadNormal(doc, doc.Accessors[nIdx], nil)
		if err != nil {
			return fmt.Errorf("reading normals: %w", err)
		}
	}

	var indices []uint32
	if prim.Indices != nil {
		if *prim.Indices >= len(doc.Accessors) {
			return fmt.Errorf("index accessor %d out of range", *prim.Indices)
		}
		indices, err = modeler.ReadIndices(doc, doc.Accessors[*prim.Indices], nil)
		if err != nil {
			return fmt.Errorf("reading indices: %w", err)
		}
	} else {
		indices = make([]uint32, len(positions))
		for i := range indices {
			indices[i] = uint32(i)
		}
	}

	normalMat := world.Mat3().Inv().Transpose()
	base := uint32(len(mesh.Vertices))
	for i, p := range positions {
		v := model.Vertex{
			Position: [3]float32(mgl32.TransformCoordinate(mgl32.Vec3(p), world)),
		}
		if i < len(normals) {
			n := normalMat.Mul3x1(mgl32.Vec3(normals[i]))
			if n.Len() > 0 {
				n = n.Normalize()
			}
			v.Normal = [3]float32(n)
		}
		mesh.Vertices = append(mesh.Vertices, v)
	}

	start := len(mesh.Indices)
	for _, ix := range indices {
		if int(ix) >= len(positions) {
			return fmt.Errorf("index %d out of range", ix)
		}
		mesh.Indices = append(mesh.Indices, base+ix)
	}

	if len(normals) < len(positions) {
		flat := model.Mesh{Vertices: mesh.Vertices, Indices: mesh.Indices[start:]}
		flat.ComputeFlatNormals()
	}
	return nil
}

// NodeMatrix returns the local transform of node, from its matrix when set
// and from translation, rotation and scale otherwise.
func NodeMatrix(node *gltf.Node) mgl32.Mat4 {
	var m mgl32.Mat4
	var zero [16]float64
	if node.Matrix != zero && node.Matrix != gltf.DefaultMatrix {
		for i, v := range node.Matrix {
			m[i] = float32(v)
		}
		return m
	}

	t := node.Translation
	r := node.Rotation
	s := node.Scale
	if r == [4]float64{} {
		r = gltf.DefaultRotation
	}
	if s == [3]float64{} {
		s = gltf.DefaultScale
	}

	q := mgl32.Quat{W: float32(r[3]), V: mgl32.Vec3{float32(r[0]), float32(r[1]), float32(r[2])}}
	return mgl32.Translate3D(float32(t[0]), float32(t[1]), float32(t[2])).
		Mul4(q.Normalize().Mat4()).
		Mul4(mgl32.Scale3D(float32(s[0]), float32(s[1]), float32(s[2])))
}

// LoadMesh opens a .gltf or .glb file and decodes its default scene.
func LoadMesh(path string) (*model.Mesh, error) {
	doc, err := gltf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening model: %w", err)
	}
	mesh, err := DecodeMesh(doc)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return mesh, nil
}
