package main

import (
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"

	"github.com/mogaika/skn_to_obj/skn"
	"github.com/mogaika/skn_to_obj/utils"
)

type converter struct {
	sknPath string
	outDir  string
	name    string
	exlog   *utils.Logger
}

func (c *converter) outPath() string {
	dir := c.outDir
	if dir == "" {
		dir = filepath.Dir(c.sknPath)
	}
	name := c.name
	if name == "" {
		name = filepath.Base(c.sknPath)
		name = strings.TrimSuffix(name, filepath.Ext(name))
	}
	return filepath.Join(dir, name+".obj")
}

func (c *converter) decode() (*skn.Mesh, error) {
	return skn.ReadFile(c.sknPath, c.exlog)
}

// convert decodes skn and writes obj next to it. Returns path of written file.
// Obj file is not created when decoding fails.
func (c *converter) convert() (string, error) {
	m, err := c.decode()
	if err != nil {
		return "", err
	}

	outPath := c.outPath()
	log.Printf("[skn2obj] Writing to %s ...", outPath)

	if err := writeObj(m, outPath); err != nil {
		return "", err
	}

	log.Printf("[skn2obj] Done.")
	return outPath, nil
}

func writeObj(m *skn.Mesh, outPath string) (err error) {
	if err := os.MkdirAll(filepath.Dir(outPath), 0777); err != nil {
		return errors.Wrapf(err, "Failed to create output directory")
	}

	f, err := os.Create(outPath)
	if err != nil {
		return errors.Wrapf(err, "Failed to create %q", outPath)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = errors.Wrapf(cerr, "Failed to close %q", outPath)
		}
	}()

	if err := m.ExportObj(f); err != nil {
		return errors.Wrapf(err, "Failed to write %q", outPath)
	}
	return nil
}
