// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"slices"
)

// SnapshotKey is the fixed key under which the local state is persisted.
const SnapshotKey = "vedicas-storage"

// Snapshot is the full persisted local state tree.
type Snapshot struct {
	Profile           Profile         `json:"profile"`
	SexualOrientation string          `json:"sexual_orientation,omitempty"`
	SelectedGurus     []string        `json:"selected_gurus,omitempty"`
	CompletedIntakes  []string        `json:"completed_intakes,omitempty"`
	Chart             *ChartResponse  `json:"chart,omitempty"`
	Dasha             *DashaResponse  `json:"dasha,omitempty"`
	Partner           *BirthData      `json:"partner,omitempty"`
	Synastry          json.RawMessage `json:"synastry,omitempty"`

	Seeds    []Seed       `json:"seeds"`
	Wisdom   []WisdomNote `json:"wisdom"`
	Messages []Message    `json:"messages"`
	Checkins []Checkin    `json:"checkins"`
}

// Clone returns a deep copy safe to hand outside the state container.
//
// Chart and Dasha are shared: they are replaced wholesale, never mutated.
func (s Snapshot) Clone() Snapshot {
	out := s
	out.Profile.ChartData = slices.Clone(s.Profile.ChartData)
	out.Profile.DashaData = slices.Clone(s.Profile.DashaData)
	if s.Profile.BirthData != nil {
		bd := *s.Profile.BirthData
		out.Profile.BirthData = &bd
	}
	out.SelectedGurus = slices.Clone(s.SelectedGurus)
	out.CompletedIntakes = slices.Clone(s.CompletedIntakes)
	if s.Partner != nil {
		p := *s.Partner
		out.Partner = &p
	}
	out.Synastry = slices.Clone(s.Synastry)

	out.Seeds = make([]Seed, len(s.Seeds))
	for i, seed := range s.Seeds {
		out.Seeds[i] = seed.Clone()
	}
	out.Wisdom = make([]WisdomNote, len(s.Wisdom))
	for i, w := range s.Wisdom {
		out.Wisdom[i] = w.Clone()
	}
	out.Messages = slices.Clone(s.Messages)
	out.Checkins = slices.Clone(s.Checkins)
	return out
}

// MessagesFor returns the conversation with one guru in timestamp order.
func (s Snapshot) MessagesFor(guruID string) []Message {
	var out []Message
	for _, m := range s.Messages {
		if m.GuruID == guruID {
			out = append(out, m)
		}
	}
	slices.SortStableFunc(out, func(a, b Message) int {
		switch {
		case a.Timestamp < b.Timestamp:
			return -1
		case a.Timestamp > b.Timestamp:
			return 1
		}
		return 0
	})
	return out
}

// Session is the locally persisted authentication state.
type Session struct {
	OwnerID int64  `json:"owner_id"`
	Login   string `json:"login"`
	Token   string `json:"-"`
}

// Authenticated reports whether a session token is held.
func (s Session) Authenticated() bool {
	return s.Token != ""
}
