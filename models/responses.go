package models

// ErrorResponse is the uniform JSON error body returned by every endpoint:
//
//	{"id": 400, "message": "Month number must be between 1 and 12."}
//
// The id mirrors the HTTP status code so clients reading only the body can
// still classify the failure.
type ErrorResponse struct {
	ID      int    `json:"id"`
	Message string `json:"message"`
}

// Developer identifies one member of the development team as exposed by the
// /api/about endpoint.
type Developer struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

// AboutResponse is the static developer-info payload served by /api/about.
type AboutResponse struct {
	// Team lists the developers behind the service.
	Team []Developer `json:"team"`

	// Version is the semantic version of the running application.
	Version string `json:"version"`
}
