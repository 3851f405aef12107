package utils

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Bounds is axis aligned bounding box
type Bounds struct {
	Min mgl32.Vec3 `json:"min" yaml:"min,flow"`
	Max mgl32.Vec3 `json:"max" yaml:"max,flow"`
}

func EmptyBounds() Bounds {
	inf := float32(math.Inf(1))
	return Bounds{
		Min: mgl32.Vec3{inf, inf, inf},
		Max: mgl32.Vec3{-inf, -inf, -inf},
	}
}

func (b Bounds) IsEmpty() bool {
	return b.Min[0] > b.Max[0] || b.Min[1] > b.Max[1] || b.Min[2] > b.Max[2]
}

func (b Bounds) Expand(p mgl32.Vec3) Bounds {
	for i := range p {
		if p[i] < b.Min[i] {
			b.Min[i] = p[i]
		}
		if p[i] > b.Max[i] {
			b.Max[i] = p[i]
		}
	}
	return b
}
