package auth

import "civictrack/common"

// LoginPayload is the body of POST /api/auth/login.
type LoginPayload struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Service checks login payloads against a static credential pair. No
// session or token is issued; a success flag is the entire contract.
type Service struct {
	username string
	password string
}

// NewService creates a Service with the given credentials.
func NewService(username, password string) *Service {
	return &Service{username: username, password: password}
}

// Login validates the payload and compares it against the configured
// credentials.
func (s *Service) Login(payload *LoginPayload) error {
	if err := ValidateLogin(payload); err != nil {
		return err
	}
	if payload.Username != s.username || payload.Password != s.password {
		return common.NewUnauthorizedError("Invalid credentials")
	}
	return nil
}

// ValidateLogin checks that both credential fields are present. Credential
// correctness is not checked here.
func ValidateLogin(payload *LoginPayload) error {
	if payload.Username == "" {
		return common.NewValidationError("username is required", "username")
	}
	if payload.Password == "" {
		return common.NewValidationError("password is required", "password")
	}
	return nil
}
