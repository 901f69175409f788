// Package entity defines the core business entities for the domain layer.
package entity

import "strings"

// Zone is the traffic-light classification of a transaction.
type Zone string

const (
	// ZoneGreen marks essential spending (needs).
	ZoneGreen Zone = "green"
	// ZoneYellow marks discretionary-but-reasonable spending.
	ZoneYellow Zone = "yellow"
	// ZoneRed marks avoidable or impulsive spending.
	ZoneRed Zone = "red"
	// ZoneUncategorized is the sentinel for transactions the user has not
	// classified yet. The classification engine never produces it.
	ZoneUncategorized Zone = "uncategorized"
)

// IsSubstantive reports whether the zone is one of the three classified zones.
func (z Zone) IsSubstantive() bool {
	return z == ZoneGreen || z == ZoneYellow || z == ZoneRed
}

// ParseZone parses a zone string from the API boundary.
func ParseZone(s string) (Zone, bool) {
	switch Zone(strings.ToLower(strings.TrimSpace(s))) {
	case ZoneGreen:
		return ZoneGreen, true
	case ZoneYellow:
		return ZoneYellow, true
	case ZoneRed:
		return ZoneRed, true
	case ZoneUncategorized:
		return ZoneUncategorized, true
	default:
		return "", false
	}
}
