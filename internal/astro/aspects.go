package astro

import "math"

// AspectDef is one canonical aspect: its name, exact angle and orb tolerance.
type AspectDef struct {
	Name  string
	Angle float64
	Orb   float64
}

// Aspects is the canonical aspect table in fixed priority order.
var Aspects = []AspectDef{
	{"Conjunction", 0, 8},
	{"Sextile", 60, 5},
	{"Square", 90, 6},
	{"Trine", 120, 6},
	{"Opposition", 180, 8},
}

// Aspect relates an unordered pair of bodies whose angular separation falls
// within orb of a canonical angle. Orb holds the deviation from exact,
// rounded to two decimals.
type Aspect struct {
	Between [2]Body
	Name    string
	Orb     float64
}

// DetectAspects finds every aspect between every unordered pair of catalog
// bodies, iterating pairs in catalog order.
//
// Matching is deliberately non-exclusive: all canonical aspects whose orbs
// cover the separation are emitted for a pair, in table order. With the
// canonical orbs the windows never overlap, but the behavior is part of the
// contract.
func DetectAspects(positions map[Body]BodyPosition) []Aspect {
	out := make([]Aspect, 0)
	for i := 0; i < len(Bodies); i++ {
		for j := i + 1; j < len(Bodies); j++ {
			a, okA := positions[Bodies[i]]
			b, okB := positions[Bodies[j]]
			if !okA || !okB {
				continue
			}
			angle := separation(a.Degree, b.Degree)
			for _, m := range matchAspects(angle, Aspects) {
				m.Between = [2]Body{Bodies[i], Bodies[j]}
				out = append(out, m)
			}
		}
	}
	return out
}

// separation reduces the difference of two longitudes to the minimal angular
// distance in [0, 180].
func separation(deg1, deg2 float64) float64 {
	angle := math.Abs(deg1 - deg2)
	if angle > 180 {
		angle = 360 - angle
	}
	return angle
}

// matchAspects returns one Aspect per table entry whose orb covers the given
// separation, without the pair filled in.
func matchAspects(angle float64, defs []AspectDef) []Aspect {
	var out []Aspect
	for _, def := range defs {
		if dev := math.Abs(angle - def.Angle); dev <= def.Orb {
			out = append(out, Aspect{Name: def.Name, Orb: round2(dev)})
		}
	}
	return out
}
