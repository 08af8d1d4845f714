// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/MKhiriev/vedicas-garden/internal/logger"
	"github.com/MKhiriev/vedicas-garden/internal/store"
	"github.com/MKhiriev/vedicas-garden/models"
)

// LocalState is the client's in-memory state tree, persisted as one JSON
// blob in the local kv table after every mutation.
//
// Loading, the last error and the syncing flag are ephemeral and never
// written to disk.
type LocalState struct {
	kv store.KVRepository

	mu   sync.RWMutex
	snap models.Snapshot

	loading bool
	lastErr error
	syncing bool

	logger *logger.Logger
}

func NewLocalState(kv store.KVRepository, logger *logger.Logger) *LocalState {
	return &LocalState{kv: kv, logger: logger}
}

// Init restores the persisted snapshot. A missing blob starts empty.
func (s *LocalState) Init(ctx context.Context) error {
	raw, err := s.kv.Get(ctx, models.SnapshotKey)
	if errors.Is(err, store.ErrKeyNotFound) {
		s.logger.Debug().Msg("no persisted state, starting empty")
		return nil
	}
	if err != nil {
		return fmt.Errorf("error loading local state: %w", err)
	}

	var snap models.Snapshot
	if err = json.Unmarshal(raw, &snap); err != nil {
		return fmt.Errorf("error decoding local state: %w", err)
	}

	s.mu.Lock()
	s.snap = snap
	s.mu.Unlock()
	return nil
}

// Snapshot returns a deep copy of the current state.
func (s *LocalState) Snapshot() models.Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snap.Clone()
}

// Reset clears every field and deletes the persisted blob.
func (s *LocalState) Reset(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.snap = models.Snapshot{}
	s.lastErr = nil
	return s.kv.Delete(ctx, models.SnapshotKey)
}

// update applies fn under the write lock and persists the result. fn
// returning false leaves the state untouched and skips the write.
func (s *LocalState) update(ctx context.Context, fn func(snap *models.Snapshot) bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.snap.Clone()
	if !fn(&next) {
		return nil
	}

	raw, err := json.Marshal(next)
	if err != nil {
		return fmt.Errorf("error encoding local state: %w", err)
	}
	if err = s.kv.Put(ctx, models.SnapshotKey, raw); err != nil {
		return fmt.Errorf("error persisting local state: %w", err)
	}

	s.snap = next
	return nil
}

// UpdateProfile patches the profile with every non-empty field of p.
func (s *LocalState) UpdateProfile(ctx context.Context, p models.Profile) error {
	return s.update(ctx, func(snap *models.Snapshot) bool {
		snap.Profile.Merge(p)
		return true
	})
}

func (s *LocalState) SetSexualOrientation(ctx context.Context, v string) error {
	return s.update(ctx, func(snap *models.Snapshot) bool {
		snap.SexualOrientation = v
		return true
	})
}

// SetChart stores a calculated chart together with the birth data it was
// calculated for. Chart and dasha are mirrored into the profile so the next
// push carries them.
func (s *LocalState) SetChart(ctx context.Context, birth models.BirthData, chart *models.ChartResponse, dasha *models.DashaResponse) error {
	chartRaw, err := marshalOptional(chart)
	if err != nil {
		return fmt.Errorf("error encoding chart: %w", err)
	}
	dashaRaw, err := marshalOptional(dasha)
	if err != nil {
		return fmt.Errorf("error encoding dasha: %w", err)
	}

	return s.update(ctx, func(snap *models.Snapshot) bool {
		bd := birth
		snap.Profile.BirthData = &bd
		snap.Chart = chart
		snap.Dasha = dasha
		snap.Profile.ChartData = chartRaw
		snap.Profile.DashaData = dashaRaw
		return true
	})
}

func (s *LocalState) SetSynastry(ctx context.Context, partner models.BirthData, result json.RawMessage) error {
	return s.update(ctx, func(snap *models.Snapshot) bool {
		p := partner
		snap.Partner = &p
		snap.Synastry = slices.Clone(result)
		return true
	})
}

func (s *LocalState) SetSelectedGurus(ctx context.Context, ids []string) error {
	return s.update(ctx, func(snap *models.Snapshot) bool {
		snap.SelectedGurus = slices.Clone(ids)
		return true
	})
}

// MarkIntakeComplete records guruID once.
func (s *LocalState) MarkIntakeComplete(ctx context.Context, guruID string) error {
	return s.update(ctx, func(snap *models.Snapshot) bool {
		if slices.Contains(snap.CompletedIntakes, guruID) {
			return false
		}
		snap.CompletedIntakes = append(snap.CompletedIntakes, guruID)
		return true
	})
}

// NextIncompleteGuru returns the first selected guru without a finished
// intake.
func (s *LocalState) NextIncompleteGuru() (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, id := range s.snap.SelectedGurus {
		if !slices.Contains(s.snap.CompletedIntakes, id) {
			return id, true
		}
	}
	return "", false
}

// PutSeed inserts seed or replaces the one with the same client id.
func (s *LocalState) PutSeed(ctx context.Context, seed models.Seed) error {
	return s.update(ctx, func(snap *models.Snapshot) bool {
		snap.Seeds = putByID(snap.Seeds, seed.Clone(), func(x models.Seed) string { return x.ClientSideID })
		return true
	})
}

// WaterSeed records a completion on day. changed is false when the seed was
// already watered that day.
func (s *LocalState) WaterSeed(ctx context.Context, clientSideID, day string) (seed models.Seed, changed bool, err error) {
	found := false
	err = s.update(ctx, func(snap *models.Snapshot) bool {
		i := slices.IndexFunc(snap.Seeds, func(x models.Seed) bool { return x.ClientSideID == clientSideID })
		if i < 0 {
			return false
		}
		found = true
		changed = snap.Seeds[i].Water(day)
		seed = snap.Seeds[i].Clone()
		return changed
	})
	if err == nil && !found {
		err = ErrSeedNotFound
	}
	return seed, changed, err
}

// RemoveSeed reports whether a seed was removed.
func (s *LocalState) RemoveSeed(ctx context.Context, clientSideID string) (bool, error) {
	removed := false
	err := s.update(ctx, func(snap *models.Snapshot) bool {
		n := len(snap.Seeds)
		snap.Seeds = slices.DeleteFunc(snap.Seeds, func(x models.Seed) bool { return x.ClientSideID == clientSideID })
		removed = len(snap.Seeds) != n
		return removed
	})
	return removed, err
}

func (s *LocalState) PutWisdom(ctx context.Context, note models.WisdomNote) error {
	return s.update(ctx, func(snap *models.Snapshot) bool {
		snap.Wisdom = putByID(snap.Wisdom, note.Clone(), func(x models.WisdomNote) string { return x.ClientSideID })
		return true
	})
}

func (s *LocalState) RemoveWisdom(ctx context.Context, clientSideID string) (bool, error) {
	removed := false
	err := s.update(ctx, func(snap *models.Snapshot) bool {
		n := len(snap.Wisdom)
		snap.Wisdom = slices.DeleteFunc(snap.Wisdom, func(x models.WisdomNote) bool { return x.ClientSideID == clientSideID })
		removed = len(snap.Wisdom) != n
		return removed
	})
	return removed, err
}

func (s *LocalState) AppendMessage(ctx context.Context, msg models.Message) error {
	return s.update(ctx, func(snap *models.Snapshot) bool {
		snap.Messages = append(snap.Messages, msg)
		return true
	})
}

// ClearMessages drops the conversation with guruID and returns how many
// messages were removed.
func (s *LocalState) ClearMessages(ctx context.Context, guruID string) (int, error) {
	removed := 0
	err := s.update(ctx, func(snap *models.Snapshot) bool {
		n := len(snap.Messages)
		snap.Messages = slices.DeleteFunc(snap.Messages, func(m models.Message) bool { return m.GuruID == guruID })
		removed = n - len(snap.Messages)
		return removed > 0
	})
	return removed, err
}

// PutCheckin upserts by date: a second check-in on the same day keeps the
// first one's client id.
func (s *LocalState) PutCheckin(ctx context.Context, c models.Checkin) (models.Checkin, error) {
	var stored models.Checkin
	err := s.update(ctx, func(snap *models.Snapshot) bool {
		i := slices.IndexFunc(snap.Checkins, func(x models.Checkin) bool { return x.Date == c.Date })
		if i >= 0 {
			c.ClientSideID = snap.Checkins[i].ClientSideID
			c.CreatedAt = snap.Checkins[i].CreatedAt
			snap.Checkins[i] = c
		} else {
			snap.Checkins = append(snap.Checkins, c)
		}
		stored = c
		return true
	})
	return stored, err
}

func (s *LocalState) ReplaceSeeds(ctx context.Context, seeds []models.Seed) error {
	return s.update(ctx, func(snap *models.Snapshot) bool {
		snap.Seeds = slices.Clone(seeds)
		return true
	})
}

func (s *LocalState) ReplaceWisdom(ctx context.Context, notes []models.WisdomNote) error {
	return s.update(ctx, func(snap *models.Snapshot) bool {
		snap.Wisdom = slices.Clone(notes)
		return true
	})
}

func (s *LocalState) ReplaceMessages(ctx context.Context, msgs []models.Message) error {
	return s.update(ctx, func(snap *models.Snapshot) bool {
		snap.Messages = slices.Clone(msgs)
		return true
	})
}

func (s *LocalState) ReplaceCheckins(ctx context.Context, checkins []models.Checkin) error {
	return s.update(ctx, func(snap *models.Snapshot) bool {
		snap.Checkins = slices.Clone(checkins)
		return true
	})
}

// SetChartFromProfile decodes chart and dasha documents stored in a remote
// profile. Undecodable documents are skipped.
func (s *LocalState) SetChartFromProfile(ctx context.Context, p models.Profile) error {
	var chart *models.ChartResponse
	if len(p.ChartData) > 0 {
		c := &models.ChartResponse{}
		if err := json.Unmarshal(p.ChartData, c); err == nil {
			chart = c
		} else {
			s.logger.Debug().Err(err).Msg("remote chart document skipped")
		}
	}
	var dasha *models.DashaResponse
	if len(p.DashaData) > 0 {
		d := &models.DashaResponse{}
		if err := json.Unmarshal(p.DashaData, d); err == nil {
			dasha = d
		} else {
			s.logger.Debug().Err(err).Msg("remote dasha document skipped")
		}
	}
	if chart == nil && dasha == nil {
		return nil
	}

	return s.update(ctx, func(snap *models.Snapshot) bool {
		if chart != nil {
			snap.Chart = chart
		}
		if dasha != nil {
			snap.Dasha = dasha
		}
		return true
	})
}

func (s *LocalState) SetLoading(v bool) {
	s.mu.Lock()
	s.loading = v
	s.mu.Unlock()
}

func (s *LocalState) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

// SetError records the last user-visible failure; nil clears it.
func (s *LocalState) SetError(err error) {
	s.mu.Lock()
	s.lastErr = err
	s.mu.Unlock()
}

func (s *LocalState) LastError() error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastErr
}

func (s *LocalState) SetSyncing(v bool) {
	s.mu.Lock()
	s.syncing = v
	s.mu.Unlock()
}

func (s *LocalState) Syncing() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.syncing
}

func putByID[T any](items []T, item T, id func(T) string) []T {
	key := id(item)
	for i := range items {
		if id(items[i]) == key {
			items[i] = item
			return items
		}
	}
	return append(items, item)
}

func marshalOptional[T any](v *T) (json.RawMessage, error) {
	if v == nil {
		return nil, nil
	}
	return json.Marshal(v)
}
