package render

import (
	"image/color"
	"math"
)

// Material is a flat surface with an sRGB base color.
type Material struct {
	// BaseColor is the sRGB color of the surface, each channel in [0, 1].
	BaseColor [3]float64
	// Metallic is in [0, 1]. Metallic surfaces get no diffuse term.
	Metallic float64
}

// PointLight emits Intensity lumens in all directions up to Range world units.
type PointLight struct {
	Intensity      float64
	Range          float64
	ShadowsEnabled bool
}

// Shade returns the lit color for a surface receiving the given linear light amount.
func (m Material) Shade(light float64) color.RGBA {
	diffuse := 1 - m.Metallic
	var out [3]uint8
	for i, c := range m.BaseColor {
		linear := srgbToLinear(c) * light * diffuse
		out[i] = uint8(math.Round(clamp01(linearToSRGB(linear)) * 255))
	}
	return color.RGBA{R: out[0], G: out[1], B: out[2], A: 255}
}

func srgbToLinear(c float64) float64 {
	if c <= 0.04045 {
		return c / 12.92
	}
	return math.Pow((c+0.055)/1.055, 2.4)
}

func linearToSRGB(c float64) float64 {
	if c <= 0.0031308 {
		return c * 12.92
	}
	return 1.055*math.Pow(c, 1/2.4) - 0.055
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}
