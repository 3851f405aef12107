package config

import (
	"sync"

	"github.com/pkg/errors"
	"golang.org/x/text/encoding/charmap"
)

// nil means utf-8, which is what skn files produced by the game tools contain
var currentCharMap *charmap.Charmap
var encodingLock sync.RWMutex

const ENCODING_UTF8 = "utf-8"

func SetEncoding(name string) error {
	encodingLock.Lock()
	defer encodingLock.Unlock()

	if name == "" || name == ENCODING_UTF8 {
		currentCharMap = nil
		return nil
	}
	for _, enc := range charmap.All {
		if cm, ok := enc.(*charmap.Charmap); ok {
			if cm.String() == name {
				currentCharMap = cm
				return nil
			}
		}
	}
	return errors.Errorf("Failed to find encoding %q", name)
}

func ListEncodings() []string {
	list := []string{ENCODING_UTF8}
	for _, enc := range charmap.All {
		if cm, ok := enc.(*charmap.Charmap); ok {
			list = append(list, cm.String())
		}
	}
	return list
}

func GetEncoding() *charmap.Charmap {
	encodingLock.RLock()
	defer encodingLock.RUnlock()
	return currentCharMap
}
