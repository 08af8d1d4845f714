// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the client's transport to its two HTTP peers.
//
// [RemoteStore] talks to the vedicas document store (cmd/server): auth,
// the singular profile and the four owner-scoped collections. [ChartAPI]
// talks to the chart calculation service, which is consumed as an opaque
// JSON API. [NewCachedChartAPI] decorates a ChartAPI with a Redis cache for
// the deterministic chart endpoints.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] regardless of transport.
package adapter

import (
	"context"

	"github.com/MKhiriev/vedicas-garden/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// RemoteStore is the client view of the remote document store. Every call
// after Register or Login carries the bearer token held by the adapter.
type RemoteStore interface {
	// SetToken stores the bearer token attached to authenticated requests.
	SetToken(token string)

	// Token returns the current bearer token or "".
	Token() string

	// Register creates the account and signs in. The token returned in the
	// Authorization header is stored via SetToken.
	Register(ctx context.Context, user models.User) (models.Session, error)

	// Login signs in an existing account.
	Login(ctx context.Context, user models.User) (models.Session, error)

	// GetProfile returns nil without error when the owner has no profile yet.
	GetProfile(ctx context.Context) (*models.Profile, error)
	PutProfile(ctx context.Context, profile models.Profile) (models.UpsertResult, error)

	ListSeeds(ctx context.Context) ([]models.Seed, error)
	SyncSeeds(ctx context.Context, seeds []models.Seed) (models.SyncResult, error)
	DeleteSeed(ctx context.Context, clientSideID string) error

	ListWisdom(ctx context.Context) ([]models.WisdomNote, error)
	SyncWisdom(ctx context.Context, notes []models.WisdomNote) (models.SyncResult, error)
	DeleteWisdom(ctx context.Context, clientSideID string) error

	// ListMessages returns every message when guruID is empty.
	ListMessages(ctx context.Context, guruID string) ([]models.Message, error)
	SyncMessages(ctx context.Context, msgs []models.Message) (models.SyncResult, error)
	ClearMessages(ctx context.Context) (int64, error)

	ListCheckins(ctx context.Context) ([]models.Checkin, error)
	SyncCheckins(ctx context.Context, checkins []models.Checkin) (models.SyncResult, error)
}

// ChartAPI is the chart calculation and interpretation service.
type ChartAPI interface {
	// Chart returns the rashi chart and every divisional chart.
	Chart(ctx context.Context, params models.ChartParams) (*models.ChartResponse, error)

	// BasicChart returns the rashi chart only.
	BasicChart(ctx context.Context, params models.ChartParams) (*models.DivisionalChart, error)

	// Dasha returns the Vimshottari periods and the running maha/antar dasha.
	Dasha(ctx context.Context, params models.ChartParams) (*models.DashaResponse, error)

	// Interpret asks for a reading; structured selects sectioned JSON output.
	Interpret(ctx context.Context, params models.ChartParams, structured bool) (*models.Interpretation, error)

	// Chat sends one message with a history that already carries the full
	// context (system prompt, chart text, persona).
	Chat(ctx context.Context, req models.ChatRequest) (*models.ChatResponse, error)

	// ChatFollowUp asks a question about a chart the service recalculates.
	ChatFollowUp(ctx context.Context, req models.ChatFollowUpRequest) (*models.ChatResponse, error)

	// Synastry compares two to four people.
	Synastry(ctx context.Context, req models.SynastryRequest) (*models.SynastryResponse, error)

	// Alignment returns the panchang for the given moment and place.
	Alignment(ctx context.Context, params models.ChartParams) (*models.AlignmentResponse, error)
}
