package floris

import (
	"math"

	"github.com/ctessum/geom"
	"gonum.org/v1/gonum/mat"
)

// Farm holds the static turbine layout and the per-(d,s,t) yaw/tilt
// setpoints.
type Farm struct {
	Layout []geom.Point // turbine (x,y) positions, length T

	// Specs holds one *TurbineSpec per turbine position (len == T). A
	// farm where every turbine shares one type simply repeats the same
	// pointer.
	Specs []*TurbineSpec

	// Yaw and Tilt are [D,S,T]-shaped, in degrees.
	Yaw  *tensor3
	Tilt *tensor3
}

func (f *Farm) numTurbines() int { return len(f.Layout) }

// validate checks Farm's invariants: matching slice lengths and yaw
// within [-90, 90] degrees.
func (f *Farm) validate() error {
	var errs ConfigErrors
	t := f.numTurbines()
	if len(f.Specs) != t {
		errs = append(errs, &ConfigError{Field: "farm.turbine_type", Reason: "must have one entry per turbine"})
	}
	if f.Yaw != nil {
		for _, yaw := range f.Yaw.data {
			if yaw < -90 || yaw > 90 {
				errs = append(errs, &ConfigError{Field: "farm.yaw_angles", Reason: "must be within [-90, 90] degrees"})
				break
			}
		}
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// bounds returns the bounding box of the farm's (x,y) layout, used as the
// rotation centre in grid construction.
func (f *Farm) bounds() *geom.Bounds {
	b := geom.NewBounds()
	for _, p := range f.Layout {
		b.Extend(p.Bounds())
	}
	return b
}

func (f *Farm) centroid() geom.Point {
	b := f.bounds()
	return geom.Point{X: (b.Min.X + b.Max.X) / 2, Y: (b.Min.Y + b.Max.Y) / 2}
}

// rotatedLayout returns the farm's (x,y) positions rotated by thetaDeg
// degrees about the farm's bounding-box centroid.
func (f *Farm) rotatedLayout(thetaDeg float64) []geom.Point {
	c := f.centroid()
	theta := thetaDeg * math.Pi / 180
	sinT, cosT := math.Sin(theta), math.Cos(theta)
	rot := mat.NewDense(2, 2, []float64{cosT, -sinT, sinT, cosT})

	out := make([]geom.Point, len(f.Layout))
	var rotated mat.Dense
	for i, p := range f.Layout {
		d := mat.NewDense(2, 1, []float64{p.X - c.X, p.Y - c.Y})
		rotated.Mul(rot, d)
		out[i] = geom.Point{
			X: c.X + rotated.At(0, 0),
			Y: c.Y + rotated.At(1, 0),
		}
	}
	return out
}

func degToRad(deg float64) float64 { return deg * math.Pi / 180 }
