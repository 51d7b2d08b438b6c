package middleware

// ValidationBody is the 400 response shape: the first validation failure's
// message and the field path it refers to.
type ValidationBody struct {
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
}

// MessageBody is the response shape for not-found, unauthorized and
// internal failures.
type MessageBody struct {
	Message string `json:"message"`
}

// LoginBody is the successful login response. The success flag is the
// entire authentication contract; no token or session is issued.
type LoginBody struct {
	Success bool `json:"success"`
}
