package skn

import (
	"fmt"
	"io"
	"io/ioutil"
	"os"

	"github.com/pkg/errors"

	"github.com/mogaika/skn_to_obj/utils"
)

// InvalidCountError means record count field is negative
type InvalidCountError struct {
	What   string
	Count  int32
	Offset int
}

func (e *InvalidCountError) Error() string {
	return fmt.Sprintf("skn: invalid %s count %d at offset 0x%x", e.What, e.Count, e.Offset)
}

// readCount reads int32 count and checks that count records of recordSize fit into buffer
func readCount(bs *utils.BufStack, what string, recordSize int) (int, error) {
	offset := bs.Pos()
	count, err := bs.ReadLI32()
	if err != nil {
		return 0, errors.Wrapf(err, "%s count", what)
	}
	if count < 0 {
		return 0, &InvalidCountError{What: what, Count: count, Offset: offset}
	}
	if err := bs.Need(int64(count) * int64(recordSize)); err != nil {
		return 0, errors.Wrapf(err, "%d %s", count, what)
	}
	return int(count), nil
}

func (mat *Material) parse(bs *utils.BufStack) error {
	name, err := bs.Read(MATERIAL_NAME_SIZE)
	if err != nil {
		return errors.Wrapf(err, "name")
	}
	copy(mat.RawName[:], name)

	for _, field := range []*int32{&mat.StartVertex, &mat.VertexCount, &mat.StartIndex, &mat.IndexCount} {
		if *field, err = bs.ReadLI32(); err != nil {
			return err
		}
	}
	return nil
}

func (v *Vertex) parse(bs *utils.BufStack) error {
	if err := bs.ReadLFs(&v.Position[0], &v.Position[1], &v.Position[2]); err != nil {
		return errors.Wrapf(err, "position")
	}
	bones, err := bs.Read(len(v.BoneIndex))
	if err != nil {
		return errors.Wrapf(err, "bone index")
	}
	copy(v.BoneIndex[:], bones)
	if err := bs.ReadLFs(&v.Weight[0], &v.Weight[1], &v.Weight[2], &v.Weight[3]); err != nil {
		return errors.Wrapf(err, "weight")
	}
	if err := bs.ReadLFs(&v.Normal[0], &v.Normal[1], &v.Normal[2]); err != nil {
		return errors.Wrapf(err, "normal")
	}
	if err := bs.ReadLFs(&v.UV[0], &v.UV[1]); err != nil {
		return errors.Wrapf(err, "uv")
	}
	return nil
}

func (m *Mesh) parseHeader(bs *utils.BufStack, exlog *utils.Logger) (err error) {
	if m.Magic, err = bs.ReadLI32(); err != nil {
		return errors.Wrapf(err, "magic")
	}
	if m.Version, err = bs.ReadLU16(); err != nil {
		return errors.Wrapf(err, "version")
	}
	if m.ObjectCount, err = bs.ReadLU16(); err != nil {
		return errors.Wrapf(err, "object count")
	}

	exlog.Printf("magic 0x%.8x version %d objects %d", uint32(m.Magic), m.Version, m.ObjectCount)
	if m.Magic != SKN_MAGIC {
		exlog.Printf("  magic differs from 0x%.8x, ignoring", SKN_MAGIC)
	}
	if m.Version > VERSION_METADATA {
		exlog.Printf("  unknown version %d, parsing as version %d", m.Version, VERSION_METADATA)
	}
	return nil
}

func (c *SkinContent) parseMaterials(bs *utils.BufStack, exlog *utils.Logger) error {
	count, err := readCount(bs, "materials", MATERIAL_SIZE)
	if err != nil {
		return err
	}

	c.Materials = make([]Material, count)
	for i := range c.Materials {
		mat := &c.Materials[i]
		if err := mat.parse(bs); err != nil {
			return errors.Wrapf(err, "material %d", i)
		}
		exlog.Printf(" - material %d %q vertices [%d+%d] indices [%d+%d]",
			i, mat.Name(), mat.StartVertex, mat.VertexCount, mat.StartIndex, mat.IndexCount)
	}
	return nil
}

func (c *SkinContent) parseMetaData(bs *utils.BufStack, version uint16, exlog *utils.Logger) error {
	md := &c.MetaData

	if version >= VERSION_METADATA {
		part1, err := bs.ReadLI32()
		if err != nil {
			return errors.Wrapf(err, "part1")
		}
		md.Part1 = &part1
		exlog.Printf("part1 0x%.8x", uint32(part1))
	}

	var err error
	if md.IndexCount, err = bs.ReadLI32(); err != nil {
		return errors.Wrapf(err, "indices count")
	}
	if md.IndexCount < 0 {
		return &InvalidCountError{What: "indices", Count: md.IndexCount, Offset: bs.Pos() - 4}
	}
	if md.VertexCount, err = bs.ReadLI32(); err != nil {
		return errors.Wrapf(err, "vertices count")
	}
	if md.VertexCount < 0 {
		return &InvalidCountError{What: "vertices", Count: md.VertexCount, Offset: bs.Pos() - 4}
	}
	exlog.Printf("indices %d vertices %d", md.IndexCount, md.VertexCount)

	if version >= VERSION_METADATA {
		raw, err := bs.Read(OPAQUE_BLOCK_SIZE)
		if err != nil {
			return errors.Wrapf(err, "metadata block")
		}
		var block [OPAQUE_BLOCK_SIZE]byte
		copy(block[:], raw)
		md.OpaqueBlock = &block
		exlog.Printf("metadata block:\n%v", utils.SDump(raw))
	}
	return nil
}

func (c *SkinContent) parseIndices(bs *utils.BufStack) error {
	count := int(c.MetaData.IndexCount)
	if err := bs.Need(int64(count) * INDEX_SIZE); err != nil {
		return errors.Wrapf(err, "%d indices", count)
	}

	c.Indices = make([]int16, count)
	for i := range c.Indices {
		idx, err := bs.ReadLI16()
		if err != nil {
			return errors.Wrapf(err, "index %d", i)
		}
		c.Indices[i] = idx
	}
	return nil
}

func (c *SkinContent) parseVertices(bs *utils.BufStack) error {
	count := int(c.MetaData.VertexCount)
	if err := bs.Need(int64(count) * VERTEX_SIZE); err != nil {
		return errors.Wrapf(err, "%d vertices", count)
	}

	c.Vertices = make([]Vertex, count)
	for i := range c.Vertices {
		if err := c.Vertices[i].parse(bs); err != nil {
			return errors.Wrapf(err, "vertex %d", i)
		}
	}
	return nil
}

func (m *Mesh) parse(bs *utils.BufStack, exlog *utils.Logger) error {
	if err := m.parseHeader(bs, exlog); err != nil {
		return err
	}

	c := &m.Content
	if m.HasMaterials() {
		if err := c.parseMaterials(bs, exlog); err != nil {
			return err
		}
	} else {
		c.Materials = []Material{}
	}

	if err := c.parseMetaData(bs, m.Version, exlog); err != nil {
		return err
	}
	if err := c.parseIndices(bs); err != nil {
		return err
	}
	if err := c.parseVertices(bs); err != nil {
		return err
	}

	if m.HasTail() {
		tail := bs.ReadRemaining()
		c.Tail = make([]byte, len(tail))
		copy(c.Tail, tail)
		exlog.Printf("tail %d bytes: %s", len(c.Tail), utils.DumpToOneLineString(c.Tail))
	} else if left := bs.Left(); left != 0 {
		exlog.Printf("%d bytes left unparsed at 0x%x", left, bs.Pos())
	}
	return nil
}

// NewFromData decodes whole skn file. Mesh is returned only when every field was read.
func NewFromData(b []byte, exlog *utils.Logger) (*Mesh, error) {
	m := &Mesh{}
	if err := m.parse(utils.NewBufStack("skn", b), exlog); err != nil {
		return nil, err
	}
	return m, nil
}

func Decode(r io.Reader, exlog *utils.Logger) (*Mesh, error) {
	data, err := ioutil.ReadAll(r)
	if err != nil {
		return nil, errors.Wrapf(err, "Failed to read skn")
	}
	return NewFromData(data, exlog)
}

func ReadFile(path string, exlog *utils.Logger) (*Mesh, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "Failed to open %q", path)
	}
	defer f.Close()

	m, err := Decode(f, exlog)
	if err != nil {
		return nil, errors.Wrapf(err, "Failed to decode %q", path)
	}
	return m, nil
}
