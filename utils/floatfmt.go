package utils

import "strconv"

// FormatFloat32 returns shortest decimal form that parses back to the same float32.
// Always uses '.' and never switches to exponent notation, so output does not
// depend on locale and is accepted by every obj reader.
func FormatFloat32(f float32) string {
	return strconv.FormatFloat(float64(f), 'f', -1, 32)
}
