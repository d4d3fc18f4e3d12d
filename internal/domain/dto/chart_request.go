package dto

// ChartRequest is the JSON body of POST /calculate-full-astro.
// All three fields are required; a missing field is a validation error
// answered with MsgMissingInput.
type ChartRequest struct {
	BirthDate  string `json:"birthDate" validate:"required" example:"1990-05-17"`
	BirthTime  string `json:"birthTime" validate:"required" example:"14:30"`
	BirthPlace string `json:"birthPlace" validate:"required" example:"İstanbul"`
}
