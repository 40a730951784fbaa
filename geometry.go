package transitworld

// Point is a GeoJSON position in [longitude, latitude] order.
type Point [2]float64

// Lon returns the longitude component.
func (p Point) Lon() float64 { return p[0] }

// Lat returns the latitude component.
func (p Point) Lat() float64 { return p[1] }

// Polygon is a GeoJSON polygon: an outer ring, optionally followed by holes.
type Polygon [][]Point

// Geometry is a GeoJSON geometry object. The coordinate layout depends on
// the owning entity, so it is fixed by the type parameter: stop locations
// are a single Point, feed and agency coverage areas a Polygon.
type Geometry[C any] struct {
	Type        string `json:"type"`
	Coordinates C      `json:"coordinates"`
}
