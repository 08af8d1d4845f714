// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// BirthData is the birth moment and place as the user entered them.
// Date is "YYYY-MM-DD" and Time is "HH:MM" (24h, local to the birth place).
type BirthData struct {
	Date      string  `json:"date"`
	Time      string  `json:"time"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// IsZero reports whether no birth moment has been entered yet.
func (b *BirthData) IsZero() bool {
	return b == nil || (b.Date == "" && b.Time == "")
}

// ChartParams is the normalised form of [BirthData] sent to the chart API.
type ChartParams struct {
	Year      int     `json:"year"`
	Month     int     `json:"month"`
	Day       int     `json:"day"`
	Hour      int     `json:"hour"`
	Minute    int     `json:"minute"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// ToChartParams splits the date and time strings into numeric parts.
func (b BirthData) ToChartParams() (ChartParams, error) {
	day, err := time.Parse(time.DateOnly, strings.TrimSpace(b.Date))
	if err != nil {
		return ChartParams{}, fmt.Errorf("%w: date %q", ErrInvalidBirthData, b.Date)
	}

	hour, minute, err := parseClock(b.Time)
	if err != nil {
		return ChartParams{}, err
	}

	return ChartParams{
		Year:      day.Year(),
		Month:     int(day.Month()),
		Day:       day.Day(),
		Hour:      hour,
		Minute:    minute,
		Latitude:  b.Latitude,
		Longitude: b.Longitude,
	}, nil
}

func parseClock(s string) (int, int, error) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) < 2 {
		return 0, 0, fmt.Errorf("%w: time %q", ErrInvalidBirthData, s)
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return 0, 0, fmt.Errorf("%w: time %q", ErrInvalidBirthData, s)
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil || minute < 0 || minute > 59 {
		return 0, 0, fmt.Errorf("%w: time %q", ErrInvalidBirthData, s)
	}
	return hour, minute, nil
}

// Profile is the single per-owner record describing the user.
//
// ChartData and DashaData are stored verbatim; the remote store never looks
// inside them.
type Profile struct {
	// ID is the server row id. Clients never send it.
	ID      int64 `json:"-"`
	OwnerID int64 `json:"-"`

	Name               string          `json:"name,omitempty"`
	Gender             string          `json:"gender,omitempty"`
	Profession         string          `json:"profession,omitempty"`
	RelationshipStatus string          `json:"relationship_status,omitempty"`
	BirthPlace         string          `json:"birth_place,omitempty"`
	BirthData          *BirthData      `json:"birth_data,omitempty"`
	ChartData          json.RawMessage `json:"chart_data,omitempty"`
	DashaData          json.RawMessage `json:"dasha_data,omitempty"`

	UpdatedAt time.Time `json:"updated_at,omitzero"`
}

// IsEmpty reports whether the profile carries no user-entered data.
func (p Profile) IsEmpty() bool {
	return p.Name == "" && p.Gender == "" && p.Profession == "" &&
		p.RelationshipStatus == "" && p.BirthPlace == "" && p.BirthData.IsZero() &&
		len(p.ChartData) == 0 && len(p.DashaData) == 0
}

// Merge patches p with every non-empty field of other.
func (p *Profile) Merge(other Profile) {
	if other.Name != "" {
		p.Name = other.Name
	}
	if other.Gender != "" {
		p.Gender = other.Gender
	}
	if other.Profession != "" {
		p.Profession = other.Profession
	}
	if other.RelationshipStatus != "" {
		p.RelationshipStatus = other.RelationshipStatus
	}
	if other.BirthPlace != "" {
		p.BirthPlace = other.BirthPlace
	}
	if !other.BirthData.IsZero() {
		bd := *other.BirthData
		p.BirthData = &bd
	}
	if len(other.ChartData) > 0 {
		p.ChartData = append(json.RawMessage(nil), other.ChartData...)
	}
	if len(other.DashaData) > 0 {
		p.DashaData = append(json.RawMessage(nil), other.DashaData...)
	}
}
