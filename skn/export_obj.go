package skn

import (
	"bufio"
	"bytes"
	"fmt"
	"io"

	"github.com/mogaika/skn_to_obj/utils"
)

// ExportObj writes positions, uvs, normals and triangles in wavefront obj format.
// Every vertex has exactly one uv and normal, so faces use same index for all three.
// Trailing indices that do not form full triangle are ignored.
func (m *Mesh) ExportObj(_w io.Writer) error {
	bw := bufio.NewWriter(_w)

	var err error
	w := func(format string, args ...interface{}) {
		if err == nil {
			_, err = fmt.Fprintf(bw, format+"\n", args...)
		}
	}
	f := utils.FormatFloat32

	vertices := m.Content.Vertices
	for i := range vertices {
		p := vertices[i].Position
		w("v %s %s %s", f(p[0]), f(p[1]), f(p[2]))
	}
	for i := range vertices {
		uv := vertices[i].UV
		w("vt %s %s", f(uv[0]), f(uv[1]))
	}
	for i := range vertices {
		n := vertices[i].Normal
		w("vn %s %s %s", f(n[0]), f(n[1]), f(n[2]))
	}

	indices := m.Content.Indices
	for iIndex := 0; iIndex+3 <= len(indices); iIndex += 3 {
		a := int(indices[iIndex]) + 1
		b := int(indices[iIndex+1]) + 1
		c := int(indices[iIndex+2]) + 1
		w("f %d/%d/%d %d/%d/%d %d/%d/%d", a, a, a, b, b, b, c, c, c)
	}

	if err != nil {
		return err
	}
	return bw.Flush()
}

func (m *Mesh) ObjString() string {
	var buf bytes.Buffer
	// bytes.Buffer never fails writing
	m.ExportObj(&buf)
	return buf.String()
}
