package phong3d

// Projectile is a point moving with a velocity vector.
type Projectile struct {
	Position Tuple
	Velocity Tuple
}

// Environment pulls every projectile by gravity and wind, both vectors.
type Environment struct {
	Gravity Tuple
	Wind    Tuple
}

func NewProjectile(position, velocity Tuple) Projectile {
	if !position.IsPoint() || !velocity.IsVector() {
		fail(ErrWrongOperandKind, "projectile position %+v, velocity %+v", position, velocity)
	}
	return Projectile{Position: position, Velocity: velocity}
}

func NewEnvironment(gravity, wind Tuple) Environment {
	if !gravity.IsVector() || !wind.IsVector() {
		fail(ErrWrongOperandKind, "environment gravity %+v, wind %+v", gravity, wind)
	}
	return Environment{Gravity: gravity, Wind: wind}
}

// Tick advances the projectile by one time unit.
func Tick(env Environment, p Projectile) Projectile {
	return Projectile{
		Position: p.Position.Add(p.Velocity),
		Velocity: p.Velocity.Add(env.Gravity).Add(env.Wind),
	}
}

// DrawTrajectory plots p until it leaves the positive quadrant. Canvas y grows
// downwards, so heights are flipped. A pixel that is already lit is blended
// with col instead of overwritten. Stops after MaxTicks if the projectile
// never comes down. Returns the number of ticks.
func DrawTrajectory(c *Canvas, p Projectile, env Environment, col Color) int {
	ticks := 0
	for p.Position.Y >= 0 && p.Position.X >= 0 && ticks < MaxTicks {
		x, y := int(p.Position.X), c.Height-int(p.Position.Y)
		if c.Contains(x, y) {
			if cur := c.At(x, y); !cur.Equal(Black) {
				c.Set(x, y, cur.Hadamard(col))
			} else {
				c.Set(x, y, col)
			}
		}
		p = Tick(env, p)
		ticks++
	}
	return ticks
}
