package skn_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mogaika/skn_to_obj/skn"
	"github.com/mogaika/skn_to_obj/utils"
)

func TestDecodeVersions(t *testing.T) {
	for _, version := range []uint16{0, 1, 2, 3, 4, 5, 0xffff} {
		tf := newTestFile(version)
		m, err := skn.NewFromData(tf.build(), nil)
		require.NoError(t, err, "version %d", version)

		assert.Equal(t, tf.magic, m.Magic)
		assert.Equal(t, version, m.Version)
		assert.Equal(t, uint16(1), m.ObjectCount)

		c := &m.Content
		assert.Len(t, c.Indices, int(c.MetaData.IndexCount))
		assert.Len(t, c.Vertices, int(c.MetaData.VertexCount))
		assert.Equal(t, tf.indices, c.Indices)
		assert.Equal(t, tf.vertices, c.Vertices)

		if version == 0 {
			assert.Empty(t, c.Materials)
		} else {
			require.Len(t, c.Materials, 1)
			assert.Equal(t, "Body", c.Materials[0].Name())
			assert.Equal(t, int32(3), c.Materials[0].IndexCount)
		}

		if version >= 4 {
			require.NotNil(t, c.MetaData.Part1, "version %d", version)
			assert.Equal(t, int32(7), *c.MetaData.Part1)
			require.NotNil(t, c.MetaData.OpaqueBlock)
			assert.Equal(t, tf.opaque, *c.MetaData.OpaqueBlock)
			assert.Empty(t, c.Tail)
		} else {
			assert.Nil(t, c.MetaData.Part1, "version %d", version)
			assert.Nil(t, c.MetaData.OpaqueBlock, "version %d", version)
		}

		if version > 0 && version < 4 {
			assert.Equal(t, tf.tail, c.Tail, "version %d", version)
		} else {
			assert.Empty(t, c.Tail, "version %d", version)
		}
	}
}

func TestDecodeZeroPart1IsPresent(t *testing.T) {
	tf := newTestFile(4)
	tf.part1 = 0
	m, err := skn.NewFromData(tf.build(), nil)
	require.NoError(t, err)
	require.NotNil(t, m.Content.MetaData.Part1)
	assert.Equal(t, int32(0), *m.Content.MetaData.Part1)
}

func TestDecodeVersion0HasNoMaterialsCount(t *testing.T) {
	var b sknBuilder
	b.put(int32(skn.SKN_MAGIC)).put(uint16(0)).put(uint16(1))
	b.put(int32(3)) // indices count right after header

	_, err := skn.NewFromData(b.Bytes(), nil)
	var te *utils.TruncatedInputError
	require.ErrorAs(t, err, &te)
	// failed on vertices count, not on 3 materials
	assert.Equal(t, 12, te.Offset)
	assert.Equal(t, int64(4), te.Requested)
	assert.Equal(t, 0, te.Available)

	tf := newTestFile(0)
	m, err := skn.NewFromData(tf.build(), nil)
	require.NoError(t, err)
	assert.Equal(t, int32(3), m.Content.MetaData.IndexCount)
	assert.Equal(t, int32(3), m.Content.MetaData.VertexCount)
}

func TestDecodeTailIsEverythingAfterVertices(t *testing.T) {
	tf := newTestFile(2)
	data := tf.build()
	m, err := skn.NewFromData(data, nil)
	require.NoError(t, err)
	assert.Equal(t, data[len(data)-len(tf.tail):], m.Content.Tail)

	tf.tail = nil
	m, err = skn.NewFromData(tf.build(), nil)
	require.NoError(t, err)
	assert.Empty(t, m.Content.Tail)
}

func TestDecodeIgnoresMagic(t *testing.T) {
	tf := newTestFile(4)
	tf.magic = -1
	m, err := skn.NewFromData(tf.build(), nil)
	require.NoError(t, err)
	assert.Equal(t, int32(-1), m.Magic)
}

func TestDecodeTruncated(t *testing.T) {
	for _, version := range []uint16{0, 1, 3, 4, 9} {
		tf := newTestFile(version)
		tf.tail = nil
		data := tf.build()

		for cut := 0; cut < len(data); cut++ {
			m, err := skn.NewFromData(data[:cut], nil)
			var te *utils.TruncatedInputError
			if !assert.ErrorAs(t, err, &te, "version %d cut %d", version, cut) {
				continue
			}
			assert.Nil(t, m)
			assert.LessOrEqual(t, te.Offset, cut)
			assert.Greater(t, te.Requested, int64(te.Available))
		}
	}
}

func TestDecodeNegativeCounts(t *testing.T) {
	var b sknBuilder
	b.put(int32(skn.SKN_MAGIC)).put(uint16(1)).put(uint16(1)).put(int32(-1))
	_, err := skn.NewFromData(b.Bytes(), nil)
	var ce *skn.InvalidCountError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, "materials", ce.What)
	assert.Equal(t, 8, ce.Offset)

	b.Reset()
	b.put(int32(skn.SKN_MAGIC)).put(uint16(0)).put(uint16(1)).put(int32(3)).put(int32(-5))
	_, err = skn.NewFromData(b.Bytes(), nil)
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, "vertices", ce.What)
	assert.Equal(t, int32(-5), ce.Count)
	assert.Equal(t, 12, ce.Offset)
}

func TestDecodeHugeCountFailsBeforeAllocation(t *testing.T) {
	var b sknBuilder
	b.put(int32(skn.SKN_MAGIC)).put(uint16(0)).put(uint16(1)).put(int32(0)).put(int32(0x7fffffff))
	_, err := skn.NewFromData(b.Bytes(), nil)
	var te *utils.TruncatedInputError
	require.ErrorAs(t, err, &te)
	assert.Equal(t, int64(0x7fffffff)*skn.VERTEX_SIZE, te.Requested)
}

func TestMaterialNameTrimsOnlyTrailingZeros(t *testing.T) {
	tf := newTestFile(1)
	tf.materials = []testMaterial{
		{name: "hair"},
		{name: "a\x00b"},
		{name: string(bytes.Repeat([]byte{'x'}, skn.MATERIAL_NAME_SIZE))},
		{name: ""},
	}
	m, err := skn.NewFromData(tf.build(), nil)
	require.NoError(t, err)
	require.Len(t, m.Content.Materials, 4)

	assert.Equal(t, "hair", m.Content.Materials[0].Name())
	assert.Equal(t, "a\x00b", m.Content.Materials[1].Name())
	assert.Len(t, m.Content.Materials[2].Name(), skn.MATERIAL_NAME_SIZE)
	assert.Equal(t, "", m.Content.Materials[3].Name())
}

func TestDecodeLogger(t *testing.T) {
	var log bytes.Buffer
	tf := newTestFile(4)
	tf.magic = 0x1234
	_, err := skn.NewFromData(tf.build(), &utils.Logger{Writer: &log})
	require.NoError(t, err)
	assert.Contains(t, log.String(), "magic differs")
	assert.Contains(t, log.String(), `"Body"`)
}

func TestReadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "model.skn")
	require.NoError(t, os.WriteFile(path, newTestFile(4).build(), 0666))

	m, err := skn.ReadFile(path, nil)
	require.NoError(t, err)
	assert.Len(t, m.Content.Vertices, 3)

	_, err = skn.ReadFile(filepath.Join(dir, "missing.skn"), nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)

	require.NoError(t, os.WriteFile(path, []byte{1, 2}, 0666))
	_, err = skn.ReadFile(path, nil)
	var te *utils.TruncatedInputError
	assert.ErrorAs(t, err, &te)
}

func TestDecodeReader(t *testing.T) {
	m, err := skn.Decode(bytes.NewReader(newTestFile(3).build()), nil)
	require.NoError(t, err)
	assert.Equal(t, uint16(3), m.Version)
}

func TestMaterialIndices(t *testing.T) {
	tf := newTestFile(4)
	tf.indices = []int16{0, 1, 2, 2, 1, 0}
	tf.materials = []testMaterial{
		{name: "a", startIndex: 0, indexCount: 3},
		{name: "b", startIndex: 3, indexCount: 3},
		{name: "broken", startIndex: 3, indexCount: 6},
	}
	m, err := skn.NewFromData(tf.build(), nil)
	require.NoError(t, err)

	idx, err := m.MaterialIndices(1)
	require.NoError(t, err)
	assert.Equal(t, []int16{2, 1, 0}, idx)

	_, err = m.MaterialIndices(2)
	assert.Error(t, err)
	_, err = m.MaterialIndices(3)
	assert.Error(t, err)
}
