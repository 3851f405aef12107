package utils

import (
	"bytes"

	"github.com/mogaika/skn_to_obj/config"

	"golang.org/x/text/transform"
)

// TrimPadding cuts trailing zero bytes of fixed size field.
// Zero bytes in the middle of field are kept.
func TrimPadding(bs []byte) []byte {
	return bytes.TrimRight(bs, "\x00")
}

// BytesToString converts fixed size padded text field to string using
// configured encoding. Without encoding bytes are taken as utf-8.
func BytesToString(bs []byte) string {
	bs = TrimPadding(bs)

	cm := config.GetEncoding()
	if cm == nil {
		return string(bs)
	}

	s, _, err := transform.Bytes(cm.NewDecoder(), bs)
	if err != nil {
		// charmap decoders replace unknown bytes instead of failing
		return string(bs)
	}
	return string(s)
}
