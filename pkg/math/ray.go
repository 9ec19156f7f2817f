package math

// Ray represents a ray with an origin and direction
type Ray struct {
	Origin    Vec3
	Direction Vec3
}

// NewRayTowards creates a ray from origin with a unit direction pointing at target.
// It fails with ErrDegenerateVector when origin and target coincide.
func NewRayTowards(origin, target Vec3) (Ray, error) {
	dir, err := target.Subtract(origin).TryNormalize()
	if err != nil {
		return Ray{}, err
	}
	return Ray{Origin: origin, Direction: dir}, nil
}

// At returns the point at parameter t along the ray
func (r Ray) At(t float64) Vec3 {
	return r.Origin.Add(r.Direction.Multiply(t))
}
