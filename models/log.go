package models

import "time"

// LogRecord is a persisted trace of one handled API request.
// Written by the request-logging middleware; the core services never read
// these records back except to serve the /api/logs listing.
type LogRecord struct {
	// LogPK is the internal storage identifier of the row.
	// Not exposed via JSON.
	LogPK int64 `json:"-"`

	// Time is when the request completed.
	Time time.Time `json:"time"`

	// Method is the HTTP method of the request.
	Method string `json:"method"`

	// Port is the local TCP port the server was listening on.
	Port int `json:"port"`

	// Path is the request URL path.
	Path string `json:"path"`

	// Status is the HTTP status code of the response, when known.
	Status int `json:"status,omitempty"`

	// DurationMs is the request handling time in milliseconds.
	DurationMs int64 `json:"duration_ms,omitempty"`

	// Message is an optional free-form note attached by the middleware.
	Message string `json:"message"`
}

// TableName returns the name of the database table
// associated with the LogRecord model.
func (l LogRecord) TableName() string {
	return "logs"
}

// LogFilter narrows a log listing. Zero values mean "no filter".
type LogFilter struct {
	// Method restricts results to a single HTTP method (e.g. "GET").
	Method string

	// Status restricts results to a single response status code.
	Status int

	// Limit caps the number of returned records; 0 applies the server default.
	Limit int
}
