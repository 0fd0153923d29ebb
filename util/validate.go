package util

import (
	"strconv"

	"github.com/pkg/errors"
)

// ValidateLat validates and normalizes a latitude in decimal degrees.
func ValidateLat(lat string) (float64, error) {
	l, err := strconv.ParseFloat(lat, 64)
	if err != nil {
		return 0, errors.New("Latitude must be in decimal degree format")
	}
	if l < -90 || l > 90 {
		return 0, errors.New("Latitude must be between -90 and 90")
	}
	return l, nil
}

// ValidateLon validates and normalizes a longitude in decimal degrees.
func ValidateLon(lon string) (float64, error) {
	l, err := strconv.ParseFloat(lon, 64)
	if err != nil {
		return 0, errors.New("Longitude must be in decimal degree format")
	}
	if l < -180 || l > 180 {
		return 0, errors.New("Longitude must be between -180 and 180")
	}
	return l, nil
}

// ValidateAlt validates and normalizes an altitude in meters.
func ValidateAlt(alt string) (int, error) {
	a, err := strconv.Atoi(alt)
	if err != nil {
		return 0, errors.New("Altitude must be a positive integer number of meters")
	}
	if a < 0 {
		return 0, errors.New("Altitude must be positive")
	}
	return a, nil
}
