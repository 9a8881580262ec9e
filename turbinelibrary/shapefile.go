package turbinelibrary

import (
	goshp "github.com/jonas-p/go-shp"
)

// LoadLayoutShapefile reads turbine (x,y) positions from a point
// shapefile, populating a farm's layout arrays directly from each point's
// coordinates, in file order.
func LoadLayoutShapefile(path string) (x, y []float64, err error) {
	reader, err := goshp.Open(path)
	if err != nil {
		return nil, nil, err
	}
	defer reader.Close()

	for reader.Next() {
		_, shape := reader.Shape()
		switch p := shape.(type) {
		case *goshp.Point:
			x = append(x, p.X)
			y = append(y, p.Y)
		case *goshp.PointZ:
			x = append(x, p.X)
			y = append(y, p.Y)
		}
	}
	return x, y, nil
}
