package skn_test

import (
	"bytes"
	"encoding/binary"

	"github.com/mogaika/skn_to_obj/skn"
)

type testMaterial struct {
	name        string
	startVertex int32
	vertexCount int32
	startIndex  int32
	indexCount  int32
}

type testFile struct {
	magic       int32
	version     uint16
	objectCount uint16
	materials   []testMaterial
	part1       int32
	opaque      [skn.OPAQUE_BLOCK_SIZE]byte
	indices     []int16
	vertices    []skn.Vertex
	tail        []byte
}

type sknBuilder struct {
	bytes.Buffer
}

func (b *sknBuilder) put(v interface{}) *sknBuilder {
	if err := binary.Write(&b.Buffer, binary.LittleEndian, v); err != nil {
		panic(err)
	}
	return b
}

// build serializes file using layout of its version
func (tf *testFile) build() []byte {
	var b sknBuilder
	b.put(tf.magic).put(tf.version).put(tf.objectCount)

	if tf.version > 0 {
		b.put(int32(len(tf.materials)))
		for _, m := range tf.materials {
			var name [skn.MATERIAL_NAME_SIZE]byte
			copy(name[:], m.name)
			b.put(name).put(m.startVertex).put(m.vertexCount).put(m.startIndex).put(m.indexCount)
		}
	}
	if tf.version >= 4 {
		b.put(tf.part1)
	}
	b.put(int32(len(tf.indices))).put(int32(len(tf.vertices)))
	if tf.version >= 4 {
		b.put(tf.opaque)
	}
	b.put(tf.indices)
	for _, v := range tf.vertices {
		b.put(v.Position).put(v.BoneIndex).put(v.Weight).put(v.Normal).put(v.UV)
	}
	if tf.version > 0 && tf.version < 4 {
		b.Write(tf.tail)
	}
	return b.Bytes()
}

func testVertex(i int) skn.Vertex {
	fi := float32(i)
	return skn.Vertex{
		Position:  skn.Position{fi, 1 - 2*fi, 0.5},
		BoneIndex: skn.BoneIndex{uint8(i), 1, 2, 3},
		Weight:    skn.Weight{0.25, 0.25, 0.5, 0},
		Normal:    skn.Normal{0, 1, 0},
		UV:        skn.UV{0.5, fi / 4},
	}
}

func newTestFile(version uint16) *testFile {
	tf := &testFile{
		magic:       skn.SKN_MAGIC,
		version:     version,
		objectCount: 1,
		materials: []testMaterial{
			{name: "Body", startVertex: 0, vertexCount: 3, startIndex: 0, indexCount: 3},
		},
		part1:   7,
		indices: []int16{0, 1, 2},
	}
	for i := range tf.opaque {
		tf.opaque[i] = byte(i + 1)
	}
	for i := 0; i < 3; i++ {
		tf.vertices = append(tf.vertices, testVertex(i))
	}
	tf.tail = []byte{0xde, 0xad, 0xbe, 0xef, 0x00, 0x01}
	return tf
}
