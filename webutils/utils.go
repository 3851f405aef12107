package webutils

import (
	"encoding/json"
	"io"
	"io/ioutil"
	"log"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
)

// max size of uploaded file
const MAX_UPLOAD_SIZE = 256 << 20

func WriteFileHeaders(w http.ResponseWriter, name string) {
	w.Header().Set("Content-Type", "application/octet-stream")
	w.Header().Set("Content-Disposition", "attachment; filename=\""+name+"\"")
}

func WriteFile(w http.ResponseWriter, in io.Reader, name string) {
	WriteFileHeaders(w, name)
	if _, err := io.Copy(w, in); err != nil {
		log.Printf("Error when writing file response: %v", err)
	}
}

func WriteJson(w http.ResponseWriter, data interface{}) {
	res, err := json.Marshal(data)
	if err != nil {
		WriteError(w, err)
	} else {
		w.Header().Set("Content-Type", "application/json")
		WriteResult(w, res)
	}
}

// ReadUploadedFile returns content of multipart file formFileKey or whole
// request body when request is not multipart. Name is taken from upload
// file name or "name" query param, without extension.
func ReadUploadedFile(w http.ResponseWriter, r *http.Request, formFileKey string) ([]byte, string, error) {
	if strings.ToUpper(r.Method) != "POST" {
		return nil, "", errors.Errorf("Invalid http method %q", r.Method)
	}

	name := r.URL.Query().Get("name")
	var in io.Reader = http.MaxBytesReader(w, r.Body, MAX_UPLOAD_SIZE)

	if strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
		f, header, err := r.FormFile(formFileKey)
		if err != nil {
			return nil, "", errors.Wrapf(err, "Failed to get file")
		}
		defer f.Close()
		if name == "" {
			name = header.Filename
		}
		in = f
	}

	data, err := ioutil.ReadAll(in)
	if err != nil {
		return nil, "", errors.Wrapf(err, "Failed to read")
	}

	name = filepath.Base(name)
	name = strings.TrimSuffix(name, filepath.Ext(name))
	if name == "" {
		name = "mesh"
	}
	return data, name, nil
}

func WriteResult(w http.ResponseWriter, data []byte) {
	_, err := w.Write(data)
	if err != nil {
		log.Printf("Error when writing response: %v", err)
	}
}

func WriteError(w http.ResponseWriter, err error) {
	type jError struct {
		Error string `json:"error"`
	}
	data, merr := json.Marshal(&jError{Error: err.Error()})
	if merr == nil {
		log.Printf("HERR: %v", string(data))
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		WriteResult(w, data)
	} else {
		log.Printf("Error marshaling error '%v': %v", err, merr)
	}
}
