package web

import (
	"bytes"
	"log"
	"net/http"

	"github.com/gorilla/websocket"
	"github.com/pkg/errors"

	"github.com/mogaika/skn_to_obj/skn"
	"github.com/mogaika/skn_to_obj/status"
	"github.com/mogaika/skn_to_obj/webutils"
)

const UPLOAD_FORM_KEY = "skn"

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
}

func readMesh(w http.ResponseWriter, r *http.Request) (*skn.Mesh, string, error) {
	data, name, err := webutils.ReadUploadedFile(w, r, UPLOAD_FORM_KEY)
	if err != nil {
		return nil, "", err
	}
	m, err := skn.NewFromData(data, nil)
	if err != nil {
		return nil, name, errors.Wrapf(err, "Failed to decode %q", name)
	}
	return m, name, nil
}

func HandlerConvert(w http.ResponseWriter, r *http.Request) {
	m, name, err := readMesh(w, r)
	if err != nil {
		status.Error("Conversion failed: %v", err)
		webutils.WriteError(w, err)
		return
	}

	status.Info("Writing to %s.obj ...", name)
	var buf bytes.Buffer
	if err := m.ExportObj(&buf); err != nil {
		status.Error("Conversion of %s failed: %v", name, err)
		webutils.WriteError(w, err)
		return
	}
	webutils.WriteFile(w, &buf, name+".obj")
	status.Info("Done %s.obj", name)
}

func HandlerJsonSkn(w http.ResponseWriter, r *http.Request) {
	m, _, err := readMesh(w, r)
	if err != nil {
		webutils.WriteError(w, err)
		return
	}
	webutils.WriteJson(w, m.Summary())
}

func HandlerYamlSkn(w http.ResponseWriter, r *http.Request) {
	m, _, err := readMesh(w, r)
	if err != nil {
		webutils.WriteError(w, err)
		return
	}
	data, err := m.Summary().YAML()
	if err != nil {
		webutils.WriteError(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/yaml")
	webutils.WriteResult(w, data)
}

func HandlerStatus(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("[web] ws upgrade error: %v", err)
		return
	}
	status.NewClient(conn)
}
