package utils

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/paulmach/orb"
)

const mapsSearchBase = "https://www.google.com/maps/search/?api=1&query="

// Location is the linkified place value stored on a case: what the operator
// reads plus where the map link points.
type Location struct {
	Text string
	URL  string
}

// ValidPoint reports whether p is a usable WGS84 coordinate (lon/lat order,
// as orb points are).
func ValidPoint(p orb.Point) bool {
	return p.Lon() >= -180 && p.Lon() <= 180 && p.Lat() >= -90 && p.Lat() <= 90
}

// FormatPoint renders a point as the "lat, lng" display text operators see,
// trimming trailing zeros.
func FormatPoint(p orb.Point) string {
	return strconv.FormatFloat(p.Lat(), 'f', -1, 64) + ", " +
		strconv.FormatFloat(p.Lon(), 'f', -1, 64)
}

// LinkifyLocation derives the case location from an optional coordinate pair
// and an optional address. Coordinates are authoritative for the link target
// when present; the address (or the formatted coordinates when there is no
// address) is the display text. An address alone becomes a URL-encoded map
// search. Neither yields an empty location.
func LinkifyLocation(point *orb.Point, address string) Location {
	address = strings.TrimSpace(address)

	if point != nil && ValidPoint(*point) {
		text := address
		if text == "" {
			text = FormatPoint(*point)
		}
		query := fmt.Sprintf("%s,%s",
			strconv.FormatFloat(point.Lat(), 'f', -1, 64),
			strconv.FormatFloat(point.Lon(), 'f', -1, 64))
		return Location{Text: text, URL: mapsSearchBase + url.QueryEscape(query)}
	}

	if address != "" {
		return Location{Text: address, URL: mapsSearchBase + url.QueryEscape(address)}
	}

	return Location{}
}
