// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
)

// Nakshatra is a lunar mansion with its quarter and ruling planet.
type Nakshatra struct {
	Name string `json:"name"`
	Pada int    `json:"pada"`
	Lord string `json:"lord"`
}

// Ascendant is the rising point of a divisional chart.
type Ascendant struct {
	Longitude float64   `json:"longitude"`
	Sign      string    `json:"sign"`
	SignNum   int       `json:"sign_num"`
	Degree    float64   `json:"degree"`
	Nakshatra Nakshatra `json:"nakshatra"`
}

// PlanetPosition is a planet's placement within one divisional chart.
type PlanetPosition struct {
	Longitude  float64   `json:"longitude"`
	Sign       string    `json:"sign"`
	SignNum    int       `json:"sign_num"`
	Degree     float64   `json:"degree"`
	House      int       `json:"house"`
	Retrograde bool      `json:"retrograde"`
	Dignity    string    `json:"dignity,omitempty"`
	Nakshatra  Nakshatra `json:"nakshatra"`
}

// DivisionalChart is one varga (D1, D9, ...).
type DivisionalChart struct {
	Ascendant *Ascendant                `json:"ascendant,omitempty"`
	Planets   map[string]PlanetPosition `json:"planets"`
	Houses    map[string][]string       `json:"houses,omitempty"`
	Sign      string                    `json:"sign,omitempty"`
}

// ChartResponse holds every divisional chart keyed by its code plus meta.
type ChartResponse struct {
	Charts map[string]DivisionalChart `json:"-"`
	Meta   json.RawMessage            `json:"-"`
}

// Rashi returns the birth chart (D1).
func (c *ChartResponse) Rashi() (DivisionalChart, bool) {
	if c == nil {
		return DivisionalChart{}, false
	}
	d, ok := c.Charts["D1"]
	return d, ok
}

// UnmarshalJSON splits the flat D1..D60 object into Charts and Meta.
func (c *ChartResponse) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	c.Charts = make(map[string]DivisionalChart, len(raw))
	for key, value := range raw {
		if key == "meta" {
			c.Meta = value
			continue
		}
		if !strings.HasPrefix(key, "D") {
			continue
		}
		var d DivisionalChart
		if err := json.Unmarshal(value, &d); err != nil {
			return fmt.Errorf("chart %s: %w", key, err)
		}
		c.Charts[key] = d
	}
	return nil
}

// MarshalJSON writes the flat wire form back.
func (c ChartResponse) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, len(c.Charts)+1)
	for key, d := range c.Charts {
		out[key] = d
	}
	if len(c.Meta) > 0 {
		out["meta"] = c.Meta
	}
	return json.Marshal(out)
}

// DivisionalCodes returns the chart codes present, D1 first then by number.
func (c *ChartResponse) DivisionalCodes() []string {
	codes := make([]string, 0, len(c.Charts))
	for k := range c.Charts {
		codes = append(codes, k)
	}
	sort.Slice(codes, func(i, j int) bool {
		var a, b int
		fmt.Sscanf(codes[i], "D%d", &a)
		fmt.Sscanf(codes[j], "D%d", &b)
		return a < b
	})
	return codes
}

// DashaPeriod is one planetary period.
type DashaPeriod struct {
	Planet string  `json:"planet"`
	Start  string  `json:"start"`
	End    string  `json:"end"`
	Years  float64 `json:"years,omitempty"`
}

// DashaResponse is the Vimshottari dasha timeline.
type DashaResponse struct {
	MoonNakshatra      Nakshatra     `json:"moon_nakshatra"`
	MoonLongitude      float64       `json:"moon_longitude,omitempty"`
	MahaDashas         []DashaPeriod `json:"maha_dashas,omitempty"`
	CurrentMahaDasha   *DashaPeriod  `json:"current_maha_dasha,omitempty"`
	CurrentAntarDasha  *DashaPeriod  `json:"current_antar_dasha,omitempty"`
	CurrentAntarDashas []DashaPeriod `json:"current_antar_dashas,omitempty"`
}

// Interpretation is an LLM reading of a chart or a relationship.
type Interpretation struct {
	Success        bool            `json:"success"`
	Interpretation json.RawMessage `json:"interpretation,omitempty"`
	Reasoning      *string         `json:"reasoning,omitempty"`
	Error          string          `json:"error,omitempty"`
}

// ChatTurn is one history entry sent to the chat endpoint.
type ChatTurn struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

// ChatRequest is the body of POST /api/chat/v2.
type ChatRequest struct {
	Message string     `json:"message"`
	History []ChatTurn `json:"history"`
}

// ChatFollowUpRequest is the body of POST /api/chat. The server recalculates
// the chart from BirthData.
type ChatFollowUpRequest struct {
	BirthData           ChartParams `json:"birth_data"`
	Question            string      `json:"question"`
	ConversationHistory []ChatTurn  `json:"conversation_history,omitempty"`
}

// ChatResponse is the reply of either chat endpoint.
type ChatResponse struct {
	Success   bool    `json:"success"`
	Response  string  `json:"response"`
	Reasoning *string `json:"reasoning,omitempty"`
	Error     string  `json:"error,omitempty"`
}

// SynastryPerson is one participant of a compatibility reading.
type SynastryPerson struct {
	Label     string      `json:"label"`
	BirthData ChartParams `json:"birth_data"`
}

// SynastryRequest is the body of POST /api/synastry.
type SynastryRequest struct {
	People []SynastryPerson `json:"people"`
}

// Bounds on the number of people in one synastry request.
const (
	SynastryMinPeople = 2
	SynastryMaxPeople = 4
)

// SynastryResponse carries the raw aspect tables and an optional reading.
type SynastryResponse struct {
	Success             bool            `json:"success"`
	Synastry            json.RawMessage `json:"synastry,omitempty"`
	Interpretation      json.RawMessage `json:"interpretation,omitempty"`
	Reasoning           *string         `json:"reasoning,omitempty"`
	InterpretationError string          `json:"interpretation_error,omitempty"`
	Error               string          `json:"error,omitempty"`
}

// Tithi is the lunar day.
type Tithi struct {
	Number  int     `json:"number"`
	Name    string  `json:"name"`
	Paksha  string  `json:"paksha,omitempty"`
	Special *string `json:"special,omitempty"`
}

// AlignmentResponse is the daily panchang for a place and moment.
type AlignmentResponse struct {
	Tithi         Tithi           `json:"tithi"`
	MoonNakshatra Nakshatra       `json:"moon_nakshatra"`
	Yoga          json.RawMessage `json:"yoga,omitempty"`
	Karana        json.RawMessage `json:"karana,omitempty"`
	Planets       json.RawMessage `json:"planets,omitempty"`
}
