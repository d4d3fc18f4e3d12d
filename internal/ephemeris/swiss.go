package ephemeris

import (
	"fmt"
	"math"
	"sync"

	"github.com/mshafiee/swephgo"
)

// mu serializes every call into the Swiss Ephemeris C library. The library
// keeps internal static state (open data files, cached segments) and is not
// reentrant, so concurrent requests take turns here.
var mu sync.Mutex

// Swiss is the production Ephemeris backed by the Swiss Ephemeris library.
type Swiss struct{}

var _ Ephemeris = (*Swiss)(nil)

// NewSwiss points the library at the directory holding the ephemeris data
// files and returns the adapter.
func NewSwiss(dataPath string) *Swiss {
	mu.Lock()
	defer mu.Unlock()
	swephgo.SetEphePath([]byte(dataPath))
	return &Swiss{}
}

// PlanetState queries ecliptic longitude and longitude speed for a body.
func (s *Swiss) PlanetState(julianDay float64, body int) (PlanetState, error) {
	mu.Lock()
	defer mu.Unlock()

	xx := make([]float64, 6)
	serr := make([]byte, 256)
	rc := swephgo.CalcUt(julianDay, body, swephgo.SeflgSwieph|swephgo.SeflgSpeed, xx, serr)
	if rc < 0 {
		return PlanetState{}, fmt.Errorf("ephemeris calc failed for body %d at jd %.6f: %s", body, julianDay, cstring(serr))
	}
	return PlanetState{Longitude: xx[0], Speed: xx[3]}, nil
}

// PlacidusHouses computes the twelve Placidus cusps plus ascendant and
// midheaven. Angles the library cannot define (extreme latitudes) come back
// as 0 rather than NaN.
func (s *Swiss) PlacidusHouses(julianDay, lat, lon float64) (Houses, error) {
	mu.Lock()
	defer mu.Unlock()

	// The C API fills cusps[1..12]; index 0 is unused.
	cusps := make([]float64, 13)
	ascmc := make([]float64, 10)
	rc := swephgo.Houses(julianDay, lat, lon, int('P'), cusps, ascmc)
	if rc < 0 {
		return Houses{}, fmt.Errorf("placidus houses failed at jd %.6f lat %.4f lon %.4f", julianDay, lat, lon)
	}

	var h Houses
	copy(h.Cusps[:], cusps[1:13])
	h.Ascendant = finiteOrZero(ascmc[0])
	h.Midheaven = finiteOrZero(ascmc[1])
	return h, nil
}

// JulianDay converts a Gregorian civil date and fractional UT hour to JD.
func (s *Swiss) JulianDay(year, month, day int, hourUT float64) float64 {
	mu.Lock()
	defer mu.Unlock()
	return swephgo.Julday(year, month, day, hourUT, swephgo.SeGregCal)
}

// Close releases the data files held open by the library.
func (s *Swiss) Close() {
	mu.Lock()
	defer mu.Unlock()
	swephgo.Close()
}

func finiteOrZero(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

// cstring trims a NUL-terminated C error buffer to a Go string.
func cstring(b []byte) string {
	for i, c := range b {
		if c == 0 {
			return string(b[:i])
		}
	}
	return string(b)
}
