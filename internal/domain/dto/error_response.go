package dto

// Localized user-facing error messages. These strings are the API contract.
const (
	MsgMissingInput  = "Eksik bilgi"     // a required request field is absent
	MsgPlaceNotFound = "Konum bulunamadı" // geocoding produced no match
	MsgServerError   = "Sunucu hatası"    // any unexpected failure
)

// ErrorResponse is the JSON error envelope returned by every failure path.
type ErrorResponse struct {
	Message string `json:"error" example:"Sunucu hatası"`
	Detail  string `json:"detail,omitempty" example:"ephemeris calc failed"`
}

// NewErrorResponse builds an envelope, attaching the inner error text as
// detail when present.
func NewErrorResponse(message string, err error) ErrorResponse {
	e := ErrorResponse{Message: message}
	if err != nil {
		e.Detail = err.Error()
	}
	return e
}

// Error implements the error interface so envelopes can travel as errors.
func (e ErrorResponse) Error() string {
	if e.Detail != "" {
		return e.Message + ": " + e.Detail
	}
	return e.Message
}
