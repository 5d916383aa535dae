package models

// ErrorResponse is the JSON body of every 4xx and 5xx API response.
type ErrorResponse struct {
	StatusCode int    `json:"statusCode"`
	Message    string `json:"message"`
	Error      string `json:"error"`
}
