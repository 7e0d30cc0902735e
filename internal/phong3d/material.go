package phong3d

// Material describes a surface for the Phong model. The reflection
// coefficients are clamped on write: ambient, diffuse and specular to [0,1],
// shininess to [MinShininess, MaxShininess].
type Material struct {
	Color     Color
	ambient   Real
	diffuse   Real
	specular  Real
	shininess Real
}

// DefaultMaterial is white with ambient 0.1, diffuse 0.9, specular 0.9 and shininess 200.
func DefaultMaterial() Material {
	return Material{
		Color:     White,
		ambient:   DefaultAmbient,
		diffuse:   DefaultDiffuse,
		specular:  DefaultSpecular,
		shininess: DefaultShininess,
	}
}

func (m Material) Ambient() Real   { return m.ambient }
func (m Material) Diffuse() Real   { return m.diffuse }
func (m Material) Specular() Real  { return m.specular }
func (m Material) Shininess() Real { return m.shininess }

func (m *Material) SetAmbient(v Real)   { m.ambient = clamp(v, 0, 1) }
func (m *Material) SetDiffuse(v Real)   { m.diffuse = clamp(v, 0, 1) }
func (m *Material) SetSpecular(v Real)  { m.specular = clamp(v, 0, 1) }
func (m *Material) SetShininess(v Real) { m.shininess = clamp(v, MinShininess, MaxShininess) }

func (m Material) Equal(o Material) bool {
	return m.Color.Equal(o.Color) &&
		approxEqual(m.ambient, o.ambient) &&
		approxEqual(m.diffuse, o.diffuse) &&
		approxEqual(m.specular, o.specular) &&
		approxEqual(m.shininess, o.shininess)
}
