package util

import (
	"fmt"
	"math"
)

const earthRadiusM = 6371000.0

// HaversineM returns the straight-line distance in meters between two
// lat/lng points.
func HaversineM(lat1, lon1, lat2, lon2 float64) float64 {
	phi1 := lat1 * math.Pi / 180
	phi2 := lat2 * math.Pi / 180
	dphi := (lat2 - lat1) * math.Pi / 180
	dlambda := (lon2 - lon1) * math.Pi / 180

	a := math.Sin(dphi/2)*math.Sin(dphi/2) +
		math.Cos(phi1)*math.Cos(phi2)*math.Sin(dlambda/2)*math.Sin(dlambda/2)
	return 2 * earthRadiusM * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
}

// ETAMinutes converts a distance in kilometers to minutes at the given
// speed, or nil when the speed is not positive.
func ETAMinutes(distanceKm, speedKmh float64) *float64 {
	if speedKmh <= 0 {
		return nil
	}
	m := distanceKm / speedKmh * 60.0
	return &m
}

// FormatMeters renders a distance as "450 m" or "1.20 km".
func FormatMeters(m float64) string {
	if m < 1000 {
		return fmt.Sprintf("%d m", int(math.Round(m)))
	}
	return fmt.Sprintf("%.2f km", m/1000)
}

// FormatMinutes renders an optional ETA as "12 min", or an em dash when
// unknown.
func FormatMinutes(min *float64) string {
	if min == nil {
		return "—"
	}
	return fmt.Sprintf("%d min", int(math.Round(*min)))
}
