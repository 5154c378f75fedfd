package material

import (
	"github.com/df07/go-pathtracer/pkg/core"
)

// Material describes how a surface scatters and emits light.
//
// Behavior is selected by the mode flags. At most one should be set; when
// none is, the material is Lambertian. Precedence when several are set is
// Emissive, Metal, Dielectric, then the diffuse path (which Isotropic shares).
// A Material is shared by every surface referencing it and must not be
// modified while a render is in progress.
type Material struct {
	Metal      bool
	Dielectric bool
	Isotropic  bool
	Emissive   bool

	Albedo          core.Vec3   // Flat color, used when Texture is nil and by metals
	Texture         ColorSource // Optional albedo texture for diffuse and isotropic
	Fuzz            float64     // Metal roughness in [0, 1]
	RefractionIndex float64     // Dielectric index of refraction
	Emission        ColorSource // Emitted radiance for emissive materials
}

// NewLambertian creates a diffuse material with a solid color
func NewLambertian(albedo core.Vec3) *Material {
	return &Material{Albedo: albedo}
}

// NewTexturedLambertian creates a diffuse material whose albedo comes from a texture
func NewTexturedLambertian(texture ColorSource) *Material {
	return &Material{Texture: texture}
}

// NewMetal creates a metal material. Fuzz is clamped to [0, 1].
func NewMetal(albedo core.Vec3, fuzz float64) *Material {
	return &Material{Metal: true, Albedo: albedo, Fuzz: max(0, min(1, fuzz))}
}

// NewDielectric creates a clear refractive material
func NewDielectric(refractionIndex float64) *Material {
	return &Material{Dielectric: true, RefractionIndex: refractionIndex}
}

// NewIsotropic creates the phase material for participating media
func NewIsotropic(albedo ColorSource) *Material {
	return &Material{Isotropic: true, Texture: albedo}
}

// NewDiffuseLight creates an emissive material with constant radiance
func NewDiffuseLight(emission core.Vec3) *Material {
	return &Material{Emissive: true, Emission: NewSolidColor(emission)}
}

// NewTexturedDiffuseLight creates an emissive material whose radiance comes from a texture
func NewTexturedDiffuseLight(emission ColorSource) *Material {
	return &Material{Emissive: true, Emission: emission}
}

// Scatter computes the attenuation and scattered ray for a hit.
// It returns false when the path terminates at this surface; emissive
// materials never scatter, so a path ends at the first emitter it reaches.
func (m *Material) Scatter(rayIn core.Ray, hit HitRecord, sampler core.Sampler) (ScatterResult, bool) {
	switch {
	case m.Emissive:
		return ScatterResult{}, false
	case m.Metal:
		return m.scatterMetal(rayIn, hit, sampler)
	case m.Dielectric:
		return m.scatterDielectric(rayIn, hit, sampler)
	default:
		return m.scatterDiffuse(hit, sampler)
	}
}

// albedoAt returns the texture value at the hit, or the flat albedo without a texture
func (m *Material) albedoAt(hit HitRecord) core.Vec3 {
	if m.Texture == nil {
		return m.Albedo
	}
	return m.Texture.Evaluate(hit.UV, hit.Point)
}
