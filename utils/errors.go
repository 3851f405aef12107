package utils

import "fmt"

// TruncatedInputError is returned by BufStack when fewer bytes remain than requested.
type TruncatedInputError struct {
	Kind      string
	Name      string
	Offset    int
	Requested int64
	Available int
}

func (e *TruncatedInputError) Error() string {
	where := e.Kind
	if e.Name != "" {
		where = fmt.Sprintf("%s(%s)", e.Kind, e.Name)
	}
	return fmt.Sprintf("%s: truncated input at offset 0x%x: requested %d bytes, %d available",
		where, e.Offset, e.Requested, e.Available)
}
