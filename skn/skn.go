// Package skn decodes skinned mesh .skn files (versions 0-4) and exports their geometry.
package skn

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/pkg/errors"

	"github.com/mogaika/skn_to_obj/utils"
)

const (
	SKN_MAGIC = 0x00112233

	MATERIAL_NAME_SIZE = 0x40
	MATERIAL_SIZE      = MATERIAL_NAME_SIZE + 4*4
	OPAQUE_BLOCK_SIZE  = 0x30
	INDEX_SIZE         = 2
	// position(3f) bones(4b) weights(4f) normal(3f) uv(2f)
	VERTEX_SIZE = 3*4 + 4 + 4*4 + 3*4 + 2*4

	// first version with per mesh part1 field and opaque metadata block;
	// same version dropped trailing data
	VERSION_METADATA = 4
)

type Position = mgl32.Vec3
type Normal = mgl32.Vec3
type Weight = mgl32.Vec4
type UV = mgl32.Vec2
type BoneIndex [4]uint8

type Vertex struct {
	Position  Position
	BoneIndex BoneIndex
	Weight    Weight
	Normal    Normal
	UV        UV
}

func (v *Vertex) String() string {
	f := utils.FormatFloat32
	return fmt.Sprintf("{pos: {x: %s, y: %s, z: %s}, bones: {x: %d, y: %d, z: %d, w: %d}, weight: {x: %s, y: %s, z: %s, w: %s}, normal: {x: %s, y: %s, z: %s}, uv: {u: %s, v: %s}}",
		f(v.Position[0]), f(v.Position[1]), f(v.Position[2]),
		v.BoneIndex[0], v.BoneIndex[1], v.BoneIndex[2], v.BoneIndex[3],
		f(v.Weight[0]), f(v.Weight[1]), f(v.Weight[2]), f(v.Weight[3]),
		f(v.Normal[0]), f(v.Normal[1]), f(v.Normal[2]),
		f(v.UV[0]), f(v.UV[1]))
}

// Material is named range of vertices and indices
type Material struct {
	RawName     [MATERIAL_NAME_SIZE]byte
	StartVertex int32
	VertexCount int32
	StartIndex  int32
	IndexCount  int32
}

// Name returns material name without trailing padding
func (m *Material) Name() string {
	return utils.BytesToString(m.RawName[:])
}

type MetaData struct {
	// only for VERSION_METADATA and above
	Part1       *int32
	IndexCount  int32
	VertexCount int32
	// only for VERSION_METADATA and above, meaning unknown
	OpaqueBlock *[OPAQUE_BLOCK_SIZE]byte
}

type SkinContent struct {
	Materials []Material
	MetaData  MetaData
	Indices   []int16
	Vertices  []Vertex
	// raw data after vertices, only for versions 1-3
	Tail []byte
}

type Mesh struct {
	Magic       int32
	Version     uint16
	ObjectCount uint16
	Content     SkinContent
}

func (m *Mesh) HasMaterials() bool {
	return m.Version > 0
}

func (m *Mesh) HasMetaData() bool {
	return m.Version >= VERSION_METADATA
}

func (m *Mesh) HasTail() bool {
	return m.Version > 0 && m.Version < VERSION_METADATA
}

func (m *Mesh) TrianglesCount() int {
	return len(m.Content.Indices) / 3
}

func (m *Mesh) Bounds() utils.Bounds {
	b := utils.EmptyBounds()
	for i := range m.Content.Vertices {
		b = b.Expand(m.Content.Vertices[i].Position)
	}
	return b
}

// MaterialIndices returns part of index buffer used by material
func (m *Mesh) MaterialIndices(iMaterial int) ([]int16, error) {
	if iMaterial < 0 || iMaterial >= len(m.Content.Materials) {
		return nil, errors.Errorf("Material %d out of range [0:%d)", iMaterial, len(m.Content.Materials))
	}
	mat := &m.Content.Materials[iMaterial]
	start := int64(mat.StartIndex)
	end := start + int64(mat.IndexCount)
	if start < 0 || mat.IndexCount < 0 || end > int64(len(m.Content.Indices)) {
		return nil, errors.Errorf("Material %q index range [%d:%d) outside of index buffer of size %d",
			mat.Name(), start, end, len(m.Content.Indices))
	}
	return m.Content.Indices[start:end], nil
}
