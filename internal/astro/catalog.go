// Package astro turns raw ephemeris primitives into a structured natal chart:
// sign assignment, retrograde classification, lunar nodes, house cusps and
// inter-planet aspects. All tables here are process-wide read-only constants.
package astro

import (
	"math"

	"github.com/astropulse/astropulse/internal/ephemeris"
)

// Body names a member of the fixed celestial catalog.
type Body string

const (
	Sun     Body = "Sun"
	Moon    Body = "Moon"
	Mercury Body = "Mercury"
	Venus   Body = "Venus"
	Mars    Body = "Mars"
	Jupiter Body = "Jupiter"
	Saturn  Body = "Saturn"
	Uranus  Body = "Uranus"
	Neptune Body = "Neptune"
	Pluto   Body = "Pluto"
)

// Bodies is the catalog in declaration order. This order is also the fixed
// iteration order for aspect pair detection.
var Bodies = []Body{Sun, Moon, Mercury, Venus, Mars, Jupiter, Saturn, Uranus, Neptune, Pluto}

// bodyCodes maps catalog members to their ephemeris identifiers.
var bodyCodes = map[Body]int{
	Sun:     ephemeris.Sun,
	Moon:    ephemeris.Moon,
	Mercury: ephemeris.Mercury,
	Venus:   ephemeris.Venus,
	Mars:    ephemeris.Mars,
	Jupiter: ephemeris.Jupiter,
	Saturn:  ephemeris.Saturn,
	Uranus:  ephemeris.Uranus,
	Neptune: ephemeris.Neptune,
	Pluto:   ephemeris.Pluto,
}

// signs are the twelve zodiac names, 30 degrees each starting at 0° Aries.
var signs = [12]string{
	"Koç", "Boğa", "İkizler", "Yengeç", "Aslan", "Başak",
	"Terazi", "Akrep", "Yay", "Oğlak", "Kova", "Balık",
}

// SignOf returns the zodiac sign for an ecliptic longitude.
//
// The raw (unrounded) longitude must be passed here; degrees are rounded to
// two decimals only for display. Using one consistent rule keeps sign and
// degree from disagreeing right at a cusp boundary.
func SignOf(degree float64) string {
	d := int(math.Floor(degree)) % 360
	if d < 0 {
		d += 360
	}
	return signs[d/30]
}

// round2 rounds to two decimal places, the display precision of every degree
// value in the response.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
