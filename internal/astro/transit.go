package astro

import "fmt"

// TransitPosition is one body in the transit snapshot. Transits report
// degree and motion only; the sign field exists solely in natal output.
type TransitPosition struct {
	Degree     float64
	Retrograde bool
}

// ComputeTransits runs the same per-body loop as the natal chart for the
// given Julian Day, without houses, nodes or aspects. A pure function of the
// input time.
func (e *Engine) ComputeTransits(julianDay float64) (map[Body]TransitPosition, error) {
	transits := make(map[Body]TransitPosition, len(Bodies))
	for _, body := range Bodies {
		st, err := e.eph.PlanetState(julianDay, bodyCodes[body])
		if err != nil {
			return nil, fmt.Errorf("transit of %s: %w", body, err)
		}
		transits[body] = TransitPosition{
			Degree:     round2(st.Longitude),
			Retrograde: st.Speed < 0,
		}
	}
	return transits, nil
}
