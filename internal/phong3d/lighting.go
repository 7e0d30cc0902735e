package phong3d

import "math"

// Lighting shades point with the Phong reflection model: ambient + diffuse + specular.
// eye and normal are unit vectors pointing away from the surface.
func Lighting(m Material, light PointLight, point, eye, normal Tuple) Color {
	effectiveColor := m.Color.Hadamard(light.Intensity)
	lightV := light.Position.Sub(point).Norm()
	ambient := effectiveColor.Mul(m.Ambient())

	// light on the other side of the surface
	lightDotNormal := lightV.Dot(normal)
	if lightDotNormal < 0 {
		return ambient
	}
	diffuse := effectiveColor.Mul(m.Diffuse() * lightDotNormal)

	// reflection pointing away from the eye
	reflectV := Reflect(lightV.Neg(), normal)
	reflectDotEye := reflectV.Dot(eye)
	if reflectDotEye <= 0 {
		return ambient.Add(diffuse)
	}
	specular := light.Intensity.Mul(m.Specular() * math.Pow(reflectDotEye, m.Shininess()))
	return ambient.Add(diffuse).Add(specular)
}
