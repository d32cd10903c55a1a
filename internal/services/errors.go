package services

import "errors"

// Sentinel errors returned by services
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidStatus      = errors.New("invalid status")
)
