package astro

import (
	"fmt"
	"math"

	"github.com/astropulse/astropulse/internal/ephemeris"
)

// BodyPosition is one catalog body at one moment: display degree, sign and
// motion direction. Recomputed per request, never cached.
type BodyPosition struct {
	Degree     float64 // ecliptic longitude rounded to 2 decimals
	Sign       string
	Retrograde bool
}

// Point is a single chart point (ascendant, midheaven, node) reduced to
// display degree plus sign.
type Point struct {
	Degree float64
	Sign   string
}

// NodePair holds the lunar nodes. South is exactly opposite North, wrapped
// into [0, 360).
type NodePair struct {
	North Point
	South Point
}

// Chart is the full natal computation for one moment and place.
type Chart struct {
	Positions map[Body]BodyPosition
	Houses    [12]float64 // House1..House12 cusp degrees, rounded
	Ascendant Point
	Midheaven Point
	Nodes     NodePair
	Aspects   []Aspect
}

// Engine computes natal charts and transit snapshots on top of an Ephemeris.
// It holds no per-request state and is safe for concurrent use.
type Engine struct {
	eph ephemeris.Ephemeris
}

// NewEngine returns an Engine backed by the given ephemeris.
func NewEngine(eph ephemeris.Ephemeris) *Engine {
	return &Engine{eph: eph}
}

// ComputeChart queries the ephemeris for all ten catalog bodies, the mean
// lunar node and the Placidus houses at the given Julian Day, then derives
// signs, retrograde flags and aspects.
//
// Any ephemeris failure aborts the whole chart; no partial result is
// returned.
func (e *Engine) ComputeChart(julianDay, lat, lon float64) (*Chart, error) {
	positions := make(map[Body]BodyPosition, len(Bodies))
	for _, body := range Bodies {
		st, err := e.eph.PlanetState(julianDay, bodyCodes[body])
		if err != nil {
			return nil, fmt.Errorf("position of %s: %w", body, err)
		}
		positions[body] = BodyPosition{
			Degree:     round2(st.Longitude),
			Sign:       SignOf(st.Longitude),
			Retrograde: st.Speed < 0,
		}
	}

	node, err := e.eph.PlanetState(julianDay, ephemeris.MeanNode)
	if err != nil {
		return nil, fmt.Errorf("mean node: %w", err)
	}
	north := node.Longitude
	south := math.Mod(north+180, 360)

	houses, err := e.eph.PlacidusHouses(julianDay, lat, lon)
	if err != nil {
		return nil, fmt.Errorf("houses: %w", err)
	}

	chart := &Chart{
		Positions: positions,
		Ascendant: Point{Degree: round2(houses.Ascendant), Sign: SignOf(houses.Ascendant)},
		Midheaven: Point{Degree: round2(houses.Midheaven), Sign: SignOf(houses.Midheaven)},
		Nodes: NodePair{
			North: Point{Degree: round2(north), Sign: SignOf(north)},
			South: Point{Degree: round2(south), Sign: SignOf(south)},
		},
		Aspects: DetectAspects(positions),
	}
	for i, cusp := range houses.Cusps {
		chart.Houses[i] = round2(cusp)
	}
	return chart, nil
}
