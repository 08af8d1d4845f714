// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"slices"
	"time"
)

// Difficulty weights a seed's daily practice.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "Easy"
	DifficultyMedium Difficulty = "Medium"
	DifficultyHard   Difficulty = "Hard"
	DifficultyHeroic Difficulty = "Heroic"
)

// Points returns the score a single watering of this difficulty is worth.
func (d Difficulty) Points() int {
	switch d {
	case DifficultyEasy:
		return 10
	case DifficultyHard:
		return 30
	case DifficultyHeroic:
		return 50
	default:
		return 20
	}
}

// Valid reports whether d is one of the known difficulties.
func (d Difficulty) Valid() bool {
	switch d {
	case DifficultyEasy, DifficultyMedium, DifficultyHard, DifficultyHeroic:
		return true
	}
	return false
}

// DefaultCategory is applied to seeds and wisdom notes offered without one.
const DefaultCategory = "General"

// Seed is a habit the user waters once per day.
//
// CompletedDates holds ISO dates in watering order without duplicates.
// LastCompleted is nil until the first watering.
type Seed struct {
	// ID is the server row id, zero on the client.
	ID           int64  `json:"-"`
	OwnerID      int64  `json:"-"`
	ClientSideID string `json:"client_side_id"`

	Title          string     `json:"title"`
	Category       string     `json:"category"`
	Description    string     `json:"description"`
	Difficulty     Difficulty `json:"difficulty,omitempty"`
	GuruID         string     `json:"guru_id,omitempty"`
	Streak         int        `json:"streak"`
	LastCompleted  *string    `json:"last_completed"`
	CompletedDates []string   `json:"completed_dates"`
	Active         bool       `json:"active"`

	CreatedAt time.Time `json:"created_at,omitzero"`
	UpdatedAt time.Time `json:"updated_at,omitzero"`
}

// Water records a completion on day ("YYYY-MM-DD"). Watering the same day
// twice is a no-op and returns false.
func (s *Seed) Water(day string) bool {
	if slices.Contains(s.CompletedDates, day) {
		return false
	}
	s.CompletedDates = append(s.CompletedDates, day)
	s.Streak++
	d := day
	s.LastCompleted = &d
	return true
}

// WateredOn reports whether the seed has a completion on day.
func (s Seed) WateredOn(day string) bool {
	return slices.Contains(s.CompletedDates, day)
}

// Clone returns a deep copy of s.
func (s Seed) Clone() Seed {
	out := s
	out.CompletedDates = slices.Clone(s.CompletedDates)
	if s.LastCompleted != nil {
		lc := *s.LastCompleted
		out.LastCompleted = &lc
	}
	return out
}

// SeedLog is one local watering event. At most one exists per seed per day.
type SeedLog struct {
	ID           int64     `json:"id"`
	SeedClientID string    `json:"seed_client_id"`
	Date         string    `json:"date"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
}

// SeedLogCompleted is the only status written by the watering flow.
const SeedLogCompleted = "completed"

// GardenStats summarises the garden for one day.
type GardenStats struct {
	Seeds        int `json:"seeds"`
	WateredToday int `json:"watered_today"`
	Points       int `json:"points"`
	BestStreak   int `json:"best_streak"`
}
