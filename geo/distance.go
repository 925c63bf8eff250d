package geo

// KilometersPerDegree approximates the ground distance covered by one
// degree of latitude (and of longitude, ignoring convergence at the poles).
const KilometersPerDegree = 111.0

// Box is a rectangular latitude/longitude filter approximating a radius.
type Box struct {
	MinLatitude  float64
	MaxLatitude  float64
	MinLongitude float64
	MaxLongitude float64
}

// BoundingBox converts a radius in kilometers around a point into degree
// ranges on both axes. The same delta is applied to latitude and longitude.
func BoundingBox(lat, lng, radiusKM float64) Box {
	delta := radiusKM / KilometersPerDegree
	return Box{
		MinLatitude:  lat - delta,
		MaxLatitude:  lat + delta,
		MinLongitude: lng - delta,
		MaxLongitude: lng + delta,
	}
}

// SquaredDistance is the squared planar distance between two points in
// degrees. Good enough for ranking nearby stations; not a geodesic distance.
func SquaredDistance(lat1, lng1, lat2, lng2 float64) float64 {
	dlat := lat1 - lat2
	dlng := lng1 - lng2
	return dlat*dlat + dlng*dlng
}
