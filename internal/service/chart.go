package service

import (
	"context"
	"fmt"
	"time"

	"github.com/astropulse/astropulse/internal/astro"
	"github.com/astropulse/astropulse/internal/domain/dto"
	"github.com/astropulse/astropulse/internal/ephemeris"
	"github.com/astropulse/astropulse/internal/geo"
	"github.com/astropulse/astropulse/internal/logger"
	"github.com/astropulse/astropulse/internal/tz"
)

// birthLayout is the combined birth date + time format accepted by the API.
const birthLayout = "2006-01-02 15:04"

// ChartService computes a full natal chart plus current transits for a birth
// moment and place.
//
// Per request it performs, strictly in order: one geocoding call, one
// timezone call, then the ephemeris queries for the natal chart and the
// transit snapshot. Nothing is cached or retried.
type ChartService interface {
	Calculate(ctx context.Context, req dto.ChartRequest) (*dto.ChartResponse, error)
}

type chartService struct {
	geocoder geo.Geocoder
	timezone tz.Resolver
	engine   *astro.Engine
	eph      ephemeris.Ephemeris
	now      func() time.Time // injectable for tests
}

// NewChartService wires the collaborators into a ChartService.
func NewChartService(geocoder geo.Geocoder, timezone tz.Resolver, eph ephemeris.Ephemeris) ChartService {
	return &chartService{
		geocoder: geocoder,
		timezone: timezone,
		engine:   astro.NewEngine(eph),
		eph:      eph,
		now:      time.Now,
	}
}

// Calculate runs the full pipeline and assembles the response.
//
// Error contract:
//   - geo.ErrNotFound passes through untouched (the boundary answers 400).
//   - ephemeris failures come back wrapped in *EphemerisError.
//   - anything else (unparseable birth datetime) is a plain error.
//
// A failed timezone lookup is not an error: the offset degrades to UTC and
// the chart is computed anyway.
func (s *chartService) Calculate(ctx context.Context, req dto.ChartRequest) (*dto.ChartResponse, error) {
	coords, err := s.geocoder.Resolve(ctx, req.BirthPlace)
	if err != nil {
		return nil, err
	}

	// The birth datetime is naive local time; parse it zone-less (UTC) so
	// the epoch handed to the timezone service does not depend on server
	// configuration.
	birth, err := time.Parse(birthLayout, req.BirthDate+" "+req.BirthTime)
	if err != nil {
		return nil, fmt.Errorf("invalid birth datetime %q %q: %w", req.BirthDate, req.BirthTime, err)
	}

	offset := s.timezone.UTCOffset(ctx, coords.Lat, coords.Lon, birth.Unix())
	if offset.Source == tz.SourceDefaulted {
		logger.L().Warn().
			Str("place", req.BirthPlace).
			Msg("computing chart with defaulted UTC offset")
	}

	// Local birth time minus the offset is UT; from there the Julian Day.
	utcBirth := birth.Add(-time.Duration(offset.Hours * float64(time.Hour)))
	jd := s.julianDay(utcBirth)

	chart, err := s.engine.ComputeChart(jd, coords.Lat, coords.Lon)
	if err != nil {
		return nil, &EphemerisError{Err: err}
	}

	now := s.now().UTC()
	transits, err := s.engine.ComputeTransits(s.julianDay(now))
	if err != nil {
		return nil, &EphemerisError{Err: err}
	}

	return assemble(coords, offset, chart, now, transits), nil
}

func (s *chartService) julianDay(t time.Time) float64 {
	hour := float64(t.Hour()) + float64(t.Minute())/60.0
	return s.eph.JulianDay(t.Year(), int(t.Month()), t.Day(), hour)
}

// assemble merges all computed pieces into the response DTO. Pure formatting,
// no computation beyond it.
func assemble(coords geo.Coordinates, offset tz.Offset, chart *astro.Chart, now time.Time, transits map[astro.Body]astro.TransitPosition) *dto.ChartResponse {
	planets := make(map[string]dto.PlanetPosition, len(chart.Positions))
	for body, pos := range chart.Positions {
		planets[string(body)] = dto.PlanetPosition{
			Degree:     pos.Degree,
			Sign:       pos.Sign,
			Retrograde: retrogradeLabel(pos.Retrograde),
		}
	}

	houses := make(map[string]float64, len(chart.Houses))
	for i, cusp := range chart.Houses {
		houses[fmt.Sprintf("House%d", i+1)] = cusp
	}

	aspects := make([]dto.AspectRecord, 0, len(chart.Aspects))
	for _, a := range chart.Aspects {
		aspects = append(aspects, dto.AspectRecord{
			Between: [2]string{string(a.Between[0]), string(a.Between[1])},
			Aspect:  a.Name,
			Orb:     a.Orb,
		})
	}

	transitOut := make(map[string]dto.TransitPosition, len(transits))
	for body, pos := range transits {
		transitOut[string(body)] = dto.TransitPosition{
			Degree:     pos.Degree,
			Retrograde: retrogradeLabel(pos.Retrograde),
		}
	}

	sun := chart.Positions[astro.Sun]
	moon := chart.Positions[astro.Moon]

	return &dto.ChartResponse{
		Coordinates:   dto.Coordinates{Lat: coords.Lat, Lon: coords.Lon},
		UTCOffsetUsed: fmt.Sprintf("%+.2f", offset.Hours),
		Ascendant:     dto.ChartPoint{Degree: chart.Ascendant.Degree, Sign: chart.Ascendant.Sign},
		Midheaven:     dto.ChartPoint{Degree: chart.Midheaven.Degree, Sign: chart.Midheaven.Sign},
		Sun:           dto.ChartPoint{Degree: sun.Degree, Sign: sun.Sign},
		Moon:          dto.ChartPoint{Degree: moon.Degree, Sign: moon.Sign},
		Planets:       planets,
		Houses:        houses,
		Aspects:       aspects,
		Nodes: dto.Nodes{
			North: dto.ChartPoint{Degree: chart.Nodes.North.Degree, Sign: chart.Nodes.North.Sign},
			South: dto.ChartPoint{Degree: chart.Nodes.South.Degree, Sign: chart.Nodes.South.Sign},
		},
		TransitsDate: now.Format(time.RFC3339),
		Transits:     transitOut,
	}
}

// retrogradeLabel renders the localized retrograde flag used by the API.
func retrogradeLabel(retro bool) string {
	if retro {
		return "Evet"
	}
	return "Hayır"
}
