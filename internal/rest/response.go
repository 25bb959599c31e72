package rest

// ResponseError is the error envelope every handler returns on failure.
type ResponseError struct {
	Message string `json:"message"`
}
