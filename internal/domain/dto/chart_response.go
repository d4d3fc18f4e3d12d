package dto

// ChartResponse is the full result of POST /calculate-full-astro.
//
// Field names and shapes are the API contract and may not drift from what
// clients already parse, including the localized retrograde strings.
type ChartResponse struct {
	Coordinates   Coordinates                `json:"coordinates"`
	UTCOffsetUsed string                     `json:"utcOffsetUsed" example:"+3.00"`
	Ascendant     ChartPoint                 `json:"ascendant"`
	Midheaven     ChartPoint                 `json:"midheaven"`
	Sun           ChartPoint                 `json:"sun"`
	Moon          ChartPoint                 `json:"moon"`
	Planets       map[string]PlanetPosition  `json:"planets"`
	Houses        map[string]float64         `json:"houses"`
	Aspects       []AspectRecord             `json:"aspects"`
	Nodes         Nodes                      `json:"nodes"`
	TransitsDate  string                     `json:"transitsDate" example:"2025-03-01T12:00:00Z"`
	Transits      map[string]TransitPosition `json:"transits"`
}

// Coordinates is the resolved birth place.
type Coordinates struct {
	Lat float64 `json:"lat" example:"41.0082"`
	Lon float64 `json:"lon" example:"28.9784"`
}

// ChartPoint is a degree/sign pair (ascendant, midheaven, sun, moon, nodes).
type ChartPoint struct {
	Degree float64 `json:"degree" example:"280.21"`
	Sign   string  `json:"sign" example:"Oğlak"`
}

// PlanetPosition is one natal body. Retrograde is the localized
// "Evet"/"Hayır" string, not a boolean.
type PlanetPosition struct {
	Degree     float64 `json:"degree" example:"125.04"`
	Sign       string  `json:"sign" example:"Aslan"`
	Retrograde string  `json:"retrograde" example:"Hayır"`
}

// AspectRecord is one detected aspect between an unordered pair of bodies.
type AspectRecord struct {
	Between [2]string `json:"between"`
	Aspect  string    `json:"aspect" example:"Trine"`
	Orb     float64   `json:"orb" example:"1.25"`
}

// Nodes carries the lunar node pair.
type Nodes struct {
	North ChartPoint `json:"north"`
	South ChartPoint `json:"south"`
}

// TransitPosition is one body in the transit snapshot; transits carry no
// sign field.
type TransitPosition struct {
	Degree     float64 `json:"degree" example:"334.82"`
	Retrograde string  `json:"retrograde" example:"Evet"`
}
