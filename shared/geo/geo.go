// Package geo parses caller coordinates and ranks points by great-circle distance.
package geo

import (
	"errors"
	"math"
	"slices"
	"strconv"
	"strings"
)

const EarthRadiusKM = 6371.0

var ErrInvalidLocation = errors.New("invalid location, expected \"longitude,latitude\"")

// Point is a position in degrees, longitude first.
type Point struct {
	Longitude float64 `json:"longitude"`
	Latitude  float64 `json:"latitude"`
}

// ParseLocation parses "lon,lat". Both parts must be finite and in range.
func ParseLocation(raw string) (Point, error) {
	lonRaw, latRaw, ok := strings.Cut(raw, ",")
	if !ok || strings.Contains(latRaw, ",") {
		return Point{}, ErrInvalidLocation
	}

	lon, err := parseCoordinate(lonRaw, 180)
	if err != nil {
		return Point{}, err
	}

	lat, err := parseCoordinate(latRaw, 90)
	if err != nil {
		return Point{}, err
	}

	return Point{Longitude: lon, Latitude: lat}, nil
}

func parseCoordinate(raw string, limit float64) (float64, error) {
	value, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || math.IsNaN(value) || math.IsInf(value, 0) || math.Abs(value) > limit {
		return 0, ErrInvalidLocation
	}

	return value, nil
}

// Distance returns the haversine distance between a and b in kilometres.
func Distance(a, b Point) float64 {
	lat1 := radians(a.Latitude)
	lat2 := radians(b.Latitude)
	dLat := lat2 - lat1
	dLon := radians(b.Longitude - a.Longitude)

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)

	return 2 * EarthRadiusKM * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
}

func radians(deg float64) float64 {
	return deg * math.Pi / 180
}

// Located is anything with a position on the map.
type Located interface {
	Location() Point
}

// Ranked pairs an item with its distance from the query origin.
type Ranked[T any] struct {
	Item       T
	DistanceKM float64
}

// SortByDistance annotates items with their distance from origin and orders
// them nearest first. Ties keep input order. radiusKM <= 0 keeps everything.
func SortByDistance[T Located](origin Point, items []T, radiusKM float64) []Ranked[T] {
	ranked := make([]Ranked[T], 0, len(items))

	for _, item := range items {
		distance := Distance(origin, item.Location())
		if radiusKM > 0 && distance > radiusKM {
			continue
		}

		ranked = append(ranked, Ranked[T]{Item: item, DistanceKM: distance})
	}

	slices.SortStableFunc(ranked, func(a, b Ranked[T]) int {
		switch {
		case a.DistanceKM < b.DistanceKM:
			return -1
		case a.DistanceKM > b.DistanceKM:
			return 1
		default:
			return 0
		}
	})

	return ranked
}
