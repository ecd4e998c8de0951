package util

import "errors"

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailRegistered    = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrGoogleAccountOnly  = errors.New("use Google login for this account")
	ErrGoalNotFound       = errors.New("daily goal not found")
	ErrProblemNotFound    = errors.New("problem not found")
)
