package config

import (
	"io/ioutil"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// File is optional yaml config, command line flags override its values
type File struct {
	Encoding string `yaml:"encoding"`
	OutDir   string `yaml:"out_dir"`
	Listen   string `yaml:"listen"`
}

func LoadFile(path string) (*File, error) {
	data, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "Cannot read config %q", path)
	}
	return ParseFile(data)
}

func ParseFile(data []byte) (*File, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, errors.Wrapf(err, "Unmarshaling error")
	}
	return &f, nil
}

// Apply sets global settings described by config
func (f *File) Apply() error {
	if f.Encoding != "" {
		if err := SetEncoding(f.Encoding); err != nil {
			return err
		}
	}
	return nil
}
