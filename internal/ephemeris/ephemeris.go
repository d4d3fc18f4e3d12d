// Package ephemeris isolates the Swiss Ephemeris behind a small interface so
// the rest of the application never touches cgo directly.
package ephemeris

// Body identifiers, aligned with the Swiss Ephemeris planet numbering.
const (
	Sun      = 0
	Moon     = 1
	Mercury  = 2
	Venus    = 3
	Mars     = 4
	Jupiter  = 5
	Saturn   = 6
	Uranus   = 7
	Neptune  = 8
	Pluto    = 9
	MeanNode = 10
)

// J2000 is the Julian Day of the standard J2000.0 epoch, handy as a known-good
// probe input for readiness checks.
const J2000 = 2451545.0

// PlanetState is the raw ephemeris view of one body at one moment.
type PlanetState struct {
	Longitude float64 // ecliptic longitude in degrees
	Speed     float64 // longitude speed in degrees/day, negative while retrograde
}

// Houses holds the twelve Placidus house cusps plus the two primary angles.
type Houses struct {
	Cusps     [12]float64 // House1..House12 cusp longitudes in degrees
	Ascendant float64
	Midheaven float64
}

// Ephemeris is the astronomical capability the chart engine is built on.
//
// Implementations must be safe for concurrent use from multiple requests;
// every value is a pure function of its inputs.
type Ephemeris interface {
	// PlanetState returns longitude and speed of a body at a Julian Day.
	PlanetState(julianDay float64, body int) (PlanetState, error)

	// PlacidusHouses computes house cusps and angles for a moment and place.
	PlacidusHouses(julianDay, lat, lon float64) (Houses, error)

	// JulianDay converts a Gregorian civil date plus fractional UT hour
	// into the Julian Day time scale.
	JulianDay(year, month, day int, hourUT float64) float64
}
