package dto

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Error    string `json:"error"`
	Back     string `json:"back,omitempty"`
	Redirect string `json:"redirect,omitempty"`
}
