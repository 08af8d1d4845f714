package service

import "errors"

// Server-side errors.
var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrWrongPassword       = errors.New("wrong password")

	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrPasswordHashingFailed   = errors.New("password hashing failed")

	ErrEmptyBatch    = errors.New("empty batch")
	ErrEmptyClientID = errors.New("empty client side id")

	ErrVersionIsNotSpecified = errors.New("version is not specified")
)

// Client-side errors.
var (
	// ErrNotAuthenticated is returned before any network call when no session
	// token is held.
	ErrNotAuthenticated = errors.New("not authenticated")

	// ErrRemoteFailure wraps every transport or status error from the remote
	// store or the chart API.
	ErrRemoteFailure = errors.New("remote call failed")

	ErrNoBirthData      = errors.New("birth data is not set")
	ErrNoPartnerData    = errors.New("partner birth data is not set")
	ErrSeedNotFound     = errors.New("seed not found")
	ErrWisdomNotFound   = errors.New("wisdom note not found")
	ErrEmptyMessage     = errors.New("message is empty")
	ErrEmptyTitle       = errors.New("title is empty")
	ErrAlreadyWatered   = errors.New("seed already watered today")
	ErrEmptyCredentials = errors.New("login and password are required")
)
