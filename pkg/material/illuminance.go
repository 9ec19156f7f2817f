package material

import (
	"github.com/df07/go-phong-views/pkg/lights"
	"github.com/df07/go-phong-views/pkg/math"
)

// Illuminance reports the irradiance point lights produce on the receiving
// surface, ignoring the observer.
type Illuminance struct{}

// Shade sums E = I0*cos²α/R² over every visible light
func (Illuminance) Shade(sp ShadingPoint, ls []lights.PointLight, visible Visibility, colored bool) math.Vec3 {
	var total math.Vec3
	for _, light := range ls {
		if visible != nil && !visible(light) {
			continue
		}
		total = accumulate(total, light, sp, light.Irradiance(sp.Point, sp.Normal), colored)
	}
	return total
}
