package service

// EphemerisError marks a failure inside the astronomical computation itself,
// as opposed to a user-correctable resolution failure. The HTTP boundary maps
// it (like any other unexpected error) to a 500 response.
type EphemerisError struct {
	Err error
}

func (e *EphemerisError) Error() string {
	return "ephemeris computation failed: " + e.Err.Error()
}

func (e *EphemerisError) Unwrap() error {
	return e.Err
}
