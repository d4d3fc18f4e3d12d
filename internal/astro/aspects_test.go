package astro

import "testing"

func TestSeparation_MinimalAngle(t *testing.T) {
	cases := []struct {
		deg1, deg2 float64
		want       float64
	}{
		{10, 350, 20}, // across the 0° wrap, not 340
		{350, 10, 20},
		{0, 180, 180},
		{10, 70, 60},
		{70, 10, 60},
		{359, 1, 2},
		{90, 90, 0},
	}
	for _, c := range cases {
		if got := separation(c.deg1, c.deg2); got != c.want {
			t.Fatalf("separation(%v,%v)=%v, want %v", c.deg1, c.deg2, got, c.want)
		}
	}
}

func TestDetectAspects_SextileSymmetric(t *testing.T) {
	// Same pair twice with swapped degrees; detection must not depend on
	// which body carries which longitude.
	for _, degs := range [][2]float64{{10, 70}, {70, 10}} {
		positions := map[Body]BodyPosition{
			Sun:  {Degree: degs[0]},
			Moon: {Degree: degs[1]},
		}
		got := DetectAspects(positions)
		if len(got) != 1 {
			t.Fatalf("expected 1 aspect, got %d: %+v", len(got), got)
		}
		a := got[0]
		if a.Name != "Sextile" || a.Orb != 0 {
			t.Fatalf("unexpected aspect %+v", a)
		}
		if a.Between != [2]Body{Sun, Moon} {
			t.Fatalf("pair order must follow the catalog, got %v", a.Between)
		}
	}
}

func TestDetectAspects_NoMatch(t *testing.T) {
	// 20° separation is outside every canonical orb.
	positions := map[Body]BodyPosition{
		Sun:  {Degree: 350},
		Moon: {Degree: 10},
	}
	got := DetectAspects(positions)
	if got == nil {
		t.Fatalf("expected empty non-nil slice")
	}
	if len(got) != 0 {
		t.Fatalf("expected no aspects, got %+v", got)
	}
}

func TestDetectAspects_OrbRounding(t *testing.T) {
	positions := map[Body]BodyPosition{
		Sun:  {Degree: 10.0},
		Moon: {Degree: 73.333},
	}
	got := DetectAspects(positions)
	if len(got) != 1 || got[0].Name != "Sextile" {
		t.Fatalf("unexpected aspects %+v", got)
	}
	if got[0].Orb != 3.33 {
		t.Fatalf("orb=%v, want 3.33", got[0].Orb)
	}
}

func TestMatchAspects_NonExclusive(t *testing.T) {
	// With wide orbs two windows can cover one separation; every match is
	// emitted in table order, none suppresses the others.
	defs := []AspectDef{
		{"Conjunction", 0, 40},
		{"Sextile", 60, 30},
		{"Square", 90, 10},
	}
	got := matchAspects(35, defs)
	if len(got) != 2 {
		t.Fatalf("expected 2 matches, got %d: %+v", len(got), got)
	}
	if got[0].Name != "Conjunction" || got[0].Orb != 35 {
		t.Fatalf("unexpected first match %+v", got[0])
	}
	if got[1].Name != "Sextile" || got[1].Orb != 25 {
		t.Fatalf("unexpected second match %+v", got[1])
	}
}

func TestMatchAspects_OrbBoundaryInclusive(t *testing.T) {
	// 68° is 8° past Sextile, outside its 5° orb; 65° sits exactly on the
	// edge and must still match.
	got := matchAspects(68, Aspects)
	if len(got) != 0 {
		t.Fatalf("68° should match nothing, got %+v", got)
	}
	got = matchAspects(65, Aspects)
	if len(got) != 1 || got[0].Name != "Sextile" || got[0].Orb != 5 {
		t.Fatalf("65° should match Sextile at orb 5, got %+v", got)
	}
}

func TestDetectAspects_PairIterationOrder(t *testing.T) {
	// Three bodies in mutual aspect; records must come out ordered by the
	// catalog pair loop (Sun-Moon, Sun-Mercury, Moon-Mercury).
	positions := map[Body]BodyPosition{
		Mercury: {Degree: 240},
		Moon:    {Degree: 120},
		Sun:     {Degree: 0},
	}
	got := DetectAspects(positions)
	if len(got) != 3 {
		t.Fatalf("expected 3 trines, got %d: %+v", len(got), got)
	}
	wantPairs := [][2]Body{{Sun, Moon}, {Sun, Mercury}, {Moon, Mercury}}
	for i, a := range got {
		if a.Name != "Trine" || a.Orb != 0 {
			t.Fatalf("unexpected aspect %+v", a)
		}
		if a.Between != wantPairs[i] {
			t.Fatalf("pair %d = %v, want %v", i, a.Between, wantPairs[i])
		}
	}
}
