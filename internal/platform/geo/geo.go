// Package geo provides the small planar-geometry helpers used for map overlays.
package geo

import "math"

// metersPerDegreeLat is the planar approximation of one degree of latitude.
const metersPerDegreeLat = 111320.0

// CirclePolygon returns n vertices evenly spaced on a circle of radiusM
// meters around (lat, lon), as [lat, lon] pairs.
//
// The meters-to-degrees conversion is planar: 111,320 m per degree of
// latitude, with the longitude step corrected by cos(lat). Precision degrades
// for large radii or near the poles, which is acceptable for the ~50 m
// accuracy rings this is used for.
func CirclePolygon(lat, lon, radiusM float64, n int) [][2]float64 {
	points := make([][2]float64, 0, n)
	for i := 0; i < n; i++ {
		angle := 2 * math.Pi * float64(i) / float64(n)
		dlat := (radiusM / metersPerDegreeLat) * math.Sin(angle)
		dlon := (radiusM / (metersPerDegreeLat * math.Cos(lat*math.Pi/180))) * math.Cos(angle)
		points = append(points, [2]float64{lat + dlat, lon + dlon})
	}
	return points
}

// BoundingCenter returns the arithmetic mean of the given [lat, lon] points.
// Callers must not pass an empty slice; the map view branches to its default
// viewport before calling this.
func BoundingCenter(points [][2]float64) (lat, lon float64) {
	for _, p := range points {
		lat += p[0]
		lon += p[1]
	}
	n := float64(len(points))
	return lat / n, lon / n
}
