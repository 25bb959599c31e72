package recommend

import (
	"math"
	"strings"
)

const (
	earthRadiusKm = 6371.0

	// fallbackDistanceKm is reported when either district has no known
	// centroid. Far enough to read as "not nearby" without dominating.
	fallbackDistanceKm = 150.0
)

// District centroid coordinates. Display only; the proximity sub-score
// works off district equality, not kilometers.
var districtCoords = map[string][2]float64{
	"Chennai":         {13.0827, 80.2707},
	"Coimbatore":      {11.0168, 76.9558},
	"Madurai":         {9.9252, 78.1198},
	"Tiruchirappalli": {10.7905, 78.7047},
	"Salem":           {11.6643, 78.1460},
	"Tirunelveli":     {8.7139, 77.7567},
	"Erode":           {11.3410, 77.7172},
	"Vellore":         {12.9165, 79.1325},
	"Thanjavur":       {10.7867, 79.1378},
}

func lookupDistrict(name string) ([2]float64, bool) {
	trimmed := strings.TrimSpace(name)
	for district, coords := range districtCoords {
		if strings.EqualFold(district, trimmed) {
			return coords, true
		}
	}
	return [2]float64{}, false
}

func haversineKm(lat1, lon1, lat2, lon2 float64) float64 {
	dlat := toRadians(lat2 - lat1)
	dlon := toRadians(lon2 - lon1)

	a := math.Sin(dlat/2)*math.Sin(dlat/2) +
		math.Cos(toRadians(lat1))*math.Cos(toRadians(lat2))*math.Sin(dlon/2)*math.Sin(dlon/2)
	c := 2 * math.Asin(math.Sqrt(a))

	return earthRadiusKm * c
}

func toRadians(deg float64) float64 {
	return deg * math.Pi / 180
}

// districtDistanceKm estimates the distance between two district centroids.
func districtDistanceKm(from, to string) float64 {
	a, okA := lookupDistrict(from)
	b, okB := lookupDistrict(to)
	if !okA || !okB {
		return fallbackDistanceKm
	}
	return haversineKm(a[0], a[1], b[0], b[1])
}
