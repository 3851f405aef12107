package skn

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/mogaika/skn_to_obj/utils"
)

type MaterialSummary struct {
	Name        string `json:"name" yaml:"name"`
	StartVertex int32  `json:"start_vertex" yaml:"start_vertex"`
	VertexCount int32  `json:"vertex_count" yaml:"vertex_count"`
	StartIndex  int32  `json:"start_index" yaml:"start_index"`
	IndexCount  int32  `json:"index_count" yaml:"index_count"`
}

// Summary is short human readable description of mesh without geometry
type Summary struct {
	Magic          string            `json:"magic" yaml:"magic"`
	Version        uint16            `json:"version" yaml:"version"`
	ObjectCount    uint16            `json:"object_count" yaml:"object_count"`
	Materials      []MaterialSummary `json:"materials" yaml:"materials"`
	Part1          *int32            `json:"part1,omitempty" yaml:"part1,omitempty"`
	HasOpaqueBlock bool              `json:"has_opaque_block" yaml:"has_opaque_block"`
	IndexCount     int32             `json:"index_count" yaml:"index_count"`
	VertexCount    int32             `json:"vertex_count" yaml:"vertex_count"`
	TrianglesCount int               `json:"triangles_count" yaml:"triangles_count"`
	TailSize       int               `json:"tail_size" yaml:"tail_size"`
	Bounds         *utils.Bounds     `json:"bounds,omitempty" yaml:"bounds,omitempty"`
}

func (m *Mesh) Summary() *Summary {
	s := &Summary{
		Magic:          fmt.Sprintf("0x%.8x", uint32(m.Magic)),
		Version:        m.Version,
		ObjectCount:    m.ObjectCount,
		Materials:      make([]MaterialSummary, len(m.Content.Materials)),
		Part1:          m.Content.MetaData.Part1,
		HasOpaqueBlock: m.Content.MetaData.OpaqueBlock != nil,
		IndexCount:     m.Content.MetaData.IndexCount,
		VertexCount:    m.Content.MetaData.VertexCount,
		TrianglesCount: m.TrianglesCount(),
		TailSize:       len(m.Content.Tail),
	}

	for i := range m.Content.Materials {
		mat := &m.Content.Materials[i]
		s.Materials[i] = MaterialSummary{
			Name:        mat.Name(),
			StartVertex: mat.StartVertex,
			VertexCount: mat.VertexCount,
			StartIndex:  mat.StartIndex,
			IndexCount:  mat.IndexCount,
		}
	}

	// empty bounds contain infinities that json cannot encode
	if b := m.Bounds(); !b.IsEmpty() {
		s.Bounds = &b
	}
	return s
}

func (s *Summary) YAML() ([]byte, error) {
	return yaml.Marshal(s)
}
