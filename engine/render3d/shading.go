package render3d

import "math"

// ShadingMode selects how a face's polygon is filled and outlined.
type ShadingMode int

const (
	ShadingSolid ShadingMode = iota
	ShadingWireframe
	ShadingTexture
)

func (m ShadingMode) String() string {
	switch m {
	case ShadingSolid:
		return "Solid Shading"
	case ShadingWireframe:
		return "Wireframe View"
	case ShadingTexture:
		return "Texture View"
	}
	return "Unknown"
}

// ColorMode selects the synthetic texture-map transform applied to a face's
// intensity. These are analytic color transforms, not sampled image data.
type ColorMode int

const (
	ColorMapColor ColorMode = iota
	ColorMapNormal
	ColorMapSpecular
	ColorMapMetallic
	ColorMapRoughness
	ColorMapGlossiness
)

func (m ColorMode) String() string {
	switch m {
	case ColorMapColor:
		return "Color Map"
	case ColorMapNormal:
		return "Normal Map"
	case ColorMapSpecular:
		return "Specular Map"
	case ColorMapMetallic:
		return "Metallic Map"
	case ColorMapRoughness:
		return "Roughness Map"
	case ColorMapGlossiness:
		return "Glossiness Map"
	}
	return "Unknown"
}

// ambientFloor is the minimum Lambertian intensity.
const ambientFloor = 0.2

// LightDirection converts the light dial angle into a normalized direction
// with a fixed vertical component.
func LightDirection(angle float64) Vec3 {
	return V3(math.Cos(angle), math.Sin(angle), 0.5).Normalize()
}

// ShadeFace maps a face's base color and computed intensity to its final
// fill color under the selected color mode. Pure: same inputs, same output.
// Intensity arrives already floored at the ambient minimum; channel values
// are clamped to the 8-bit range on the way out.
func ShadeFace(base RGB, intensity float64, mode ColorMode) RGB {
	switch mode {
	case ColorMapNormal:
		// Blue-leaning tint.
		return RGB{
			R: clamp8(100 * intensity),
			G: clamp8(100 * intensity),
			B: clamp8(255 * intensity),
		}
	case ColorMapSpecular:
		return RGB{
			R: clamp8(255 * intensity),
			G: clamp8(255 * intensity),
			B: clamp8(255 * intensity),
		}
	case ColorMapMetallic:
		metallic := (intensity + 0.5) / 2
		return RGB{
			R: clamp8(200 * metallic),
			G: clamp8(200 * metallic),
			B: clamp8(200 * metallic),
		}
	case ColorMapRoughness:
		roughness := 1 - intensity
		return RGB{
			R: clamp8(100 * roughness),
			G: clamp8(100 * roughness),
			B: clamp8(100 * roughness),
		}
	case ColorMapGlossiness:
		// Can exceed full brightness before the clamp.
		glossiness := intensity * 1.5
		return RGB{
			R: clamp8(255 * glossiness),
			G: clamp8(255 * glossiness),
			B: clamp8(255 * glossiness),
		}
	default: // ColorMapColor
		return RGB{
			R: clamp8(float64(base.R) * intensity),
			G: clamp8(float64(base.G) * intensity),
			B: clamp8(float64(base.B) * intensity),
		}
	}
}

func clamp8(v float64) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return uint8(v)
}
