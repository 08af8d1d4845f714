// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app holds the message strings the document store writes into
// error response bodies. The server handlers and the client adapter mapping
// share them so a status plus body identifies one failure.
package app

const (
	// MsgInvalidDataProvided is returned when a body cannot be decoded or
	// fails document validation.
	MsgInvalidDataProvided = "invalid data provided"

	// MsgPayloadTooLarge is returned when a body exceeds the server cap.
	MsgPayloadTooLarge = "payload too large"

	// MsgInvalidLoginPassword is returned when the login/password pair does
	// not match an account.
	MsgInvalidLoginPassword = "invalid login/password"

	MsgLoginAlreadyExists = "login already exists"

	MsgInternalServerError = "internal server error"

	// MsgServiceUnavailable is returned for retryable database failures.
	MsgServiceUnavailable = "service temporarily unavailable"

	MsgTokenIsExpiredOrInvalid = "token is expired or invalid"
	MsgNoOwnerIDProvided       = "no owner id provided"

	MsgProfileNotFound = "profile not found"
	MsgEmptyBatch      = "empty batch"
	MsgEmptyClientID   = "empty client side id"

	MsgVersionIsNotSpecified = "version is not specified"
)
