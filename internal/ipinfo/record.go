// Package ipinfo holds the IP metadata record returned by the lookup API
// and persisted as a bookmark.
package ipinfo

import (
	"errors"
	"strconv"
	"strings"
)

var ErrBadLocation = errors.New("malformed location")

// Record is the metadata the lookup API reports for a single address.
// A record is treated as an immutable value once stored; updates replace
// the whole record. Fields absent in the API response stay empty here and
// are substituted with "N/A" at display time only.
type Record struct {
	IP       string `json:"ip"`
	Hostname string `json:"hostname,omitempty"`
	City     string `json:"city,omitempty"`
	Region   string `json:"region,omitempty"`
	Country  string `json:"country,omitempty"`
	Org      string `json:"org,omitempty"`
	Loc      string `json:"loc,omitempty"`
}

// Coordinates is a parsed map position.
type Coordinates struct {
	Lat float64
	Lon float64
}

// Coordinates parses the record's Loc field ("<lat>,<lon>").
// It returns ErrBadLocation when Loc is absent or malformed.
func (r Record) Coordinates() (Coordinates, error) {
	return ParseLoc(r.Loc)
}

// ParseLoc parses a "<lat>,<lon>" pair. Surrounding whitespace around each
// component is tolerated.
func ParseLoc(loc string) (Coordinates, error) {
	if loc == "" {
		return Coordinates{}, ErrBadLocation
	}
	parts := strings.Split(loc, ",")
	if len(parts) != 2 {
		return Coordinates{}, ErrBadLocation
	}
	lat, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return Coordinates{}, ErrBadLocation
	}
	lon, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return Coordinates{}, ErrBadLocation
	}
	return Coordinates{Lat: lat, Lon: lon}, nil
}
