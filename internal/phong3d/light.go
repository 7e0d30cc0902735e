package phong3d

// PointLight is a light source without size at Position.
type PointLight struct {
	Position  Tuple
	Intensity Color
}

func NewPointLight(position Tuple, intensity Color) PointLight {
	if !position.IsPoint() {
		fail(ErrMalformedPointLight, "position %+v is not a point", position)
	}
	return PointLight{Position: position, Intensity: intensity}
}
