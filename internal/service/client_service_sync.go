// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/MKhiriev/vedicas-garden/internal/adapter"
	"github.com/MKhiriev/vedicas-garden/internal/logger"
	"github.com/MKhiriev/vedicas-garden/models"
	"golang.org/x/sync/errgroup"
)

// A push splits every collection into requests of at most pushBatchItems
// items and roughly pushBatchBytes of encoded JSON, well below the server's
// request body cap.
const (
	pushBatchItems = 200
	pushBatchBytes = 1 << 20
)

type clientSyncService struct {
	state  *LocalState
	remote adapter.RemoteStore

	mu sync.Mutex
	// pulledFor is the session token the last successful pull ran for.
	pulledFor string

	logger *logger.Logger
}

func NewClientSyncService(state *LocalState, remote adapter.RemoteStore, logger *logger.Logger) ClientSyncService {
	return &clientSyncService{state: state, remote: remote, logger: logger}
}

// remoteSnapshot is what one pull fetched.
type remoteSnapshot struct {
	profile  models.Loadable[*models.Profile]
	seeds    []models.Seed
	wisdom   []models.WisdomNote
	messages []models.Message
	checkins []models.Checkin
}

// Pull implements ClientSyncService.
//
// The five reads run concurrently; any failure aborts the pull before the
// local state is touched. An empty remote collection never clears the local
// one.
func (c *clientSyncService) Pull(ctx context.Context) error {
	token := c.remote.Token()
	if token == "" {
		return ErrNotAuthenticated
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.pulledFor == token {
		c.logger.Debug().Msg("pull already done for this session")
		return nil
	}

	c.state.SetSyncing(true)
	defer c.state.SetSyncing(false)

	remote, err := c.fetch(ctx)
	if err != nil {
		c.logger.Err(err).Msg("pull failed")
		return mapAdapterError(err)
	}

	if err = c.reconcile(ctx, remote); err != nil {
		return fmt.Errorf("error applying pulled data: %w", err)
	}

	c.pulledFor = token
	c.logger.Info().
		Int("seeds", len(remote.seeds)).
		Int("wisdom", len(remote.wisdom)).
		Int("messages", len(remote.messages)).
		Int("checkins", len(remote.checkins)).
		Msg("pull finished")
	return nil
}

func (c *clientSyncService) fetch(ctx context.Context) (remoteSnapshot, error) {
	out := remoteSnapshot{profile: models.Loading[*models.Profile]()}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		p, err := c.remote.GetProfile(gctx)
		if err != nil {
			return fmt.Errorf("profile: %w", err)
		}
		out.profile = models.Loaded(p)
		return nil
	})
	g.Go(func() (err error) {
		out.seeds, err = c.remote.ListSeeds(gctx)
		return wrapStep("seeds", err)
	})
	g.Go(func() (err error) {
		out.wisdom, err = c.remote.ListWisdom(gctx)
		return wrapStep("wisdom", err)
	})
	g.Go(func() (err error) {
		out.messages, err = c.remote.ListMessages(gctx, "")
		return wrapStep("messages", err)
	})
	g.Go(func() (err error) {
		out.checkins, err = c.remote.ListCheckins(gctx)
		return wrapStep("checkins", err)
	})

	return out, g.Wait()
}

func (c *clientSyncService) reconcile(ctx context.Context, remote remoteSnapshot) error {
	profile, loaded := remote.profile.Get()
	if !loaded {
		return nil
	}

	if profile != nil {
		p := *profile
		p.ID, p.OwnerID = 0, 0
		if err := c.state.UpdateProfile(ctx, p); err != nil {
			return err
		}
		if err := c.state.SetChartFromProfile(ctx, p); err != nil {
			return err
		}
	}

	if len(remote.seeds) > 0 {
		if err := c.state.ReplaceSeeds(ctx, localize(remote.seeds, func(s *models.Seed) { s.ID, s.OwnerID = 0, 0 })); err != nil {
			return err
		}
	}
	if len(remote.wisdom) > 0 {
		if err := c.state.ReplaceWisdom(ctx, localize(remote.wisdom, func(w *models.WisdomNote) { w.ID, w.OwnerID = 0, 0 })); err != nil {
			return err
		}
	}
	if len(remote.messages) > 0 {
		if err := c.state.ReplaceMessages(ctx, localize(remote.messages, func(m *models.Message) { m.ID, m.OwnerID = 0, 0 })); err != nil {
			return err
		}
	}
	if len(remote.checkins) > 0 {
		if err := c.state.ReplaceCheckins(ctx, localize(remote.checkins, func(ch *models.Checkin) { ch.ID, ch.OwnerID = 0, 0 })); err != nil {
			return err
		}
	}
	return nil
}

// Push implements ClientSyncService.
//
// The snapshot is read once at call time. Steps run strictly in order and
// the first failure ends the push; nothing is retried or rolled back.
// Concurrent pushes are not deduplicated.
func (c *clientSyncService) Push(ctx context.Context) bool {
	if c.remote.Token() == "" {
		return false
	}

	c.state.SetSyncing(true)
	defer c.state.SetSyncing(false)

	snap := c.state.Snapshot()

	steps := []struct {
		name string
		skip bool
		run  func() error
	}{
		{"profile", snap.Profile.IsEmpty(), func() error {
			_, err := c.remote.PutProfile(ctx, snap.Profile)
			return err
		}},
		{"seeds", len(snap.Seeds) == 0, func() error {
			return syncInBatches(snap.Seeds, func(b []models.Seed) error {
				_, err := c.remote.SyncSeeds(ctx, b)
				return err
			})
		}},
		{"wisdom", len(snap.Wisdom) == 0, func() error {
			return syncInBatches(snap.Wisdom, func(b []models.WisdomNote) error {
				_, err := c.remote.SyncWisdom(ctx, b)
				return err
			})
		}},
		{"messages", len(snap.Messages) == 0, func() error {
			return syncInBatches(snap.Messages, func(b []models.Message) error {
				_, err := c.remote.SyncMessages(ctx, b)
				return err
			})
		}},
		{"checkins", len(snap.Checkins) == 0, func() error {
			return syncInBatches(snap.Checkins, func(b []models.Checkin) error {
				_, err := c.remote.SyncCheckins(ctx, b)
				return err
			})
		}},
	}

	for _, step := range steps {
		if step.skip {
			continue
		}
		if err := step.run(); err != nil {
			err = mapAdapterError(err)
			c.state.SetError(err)
			c.logger.Err(err).Str("step", step.name).Msg("push failed")
			return false
		}
	}

	c.logger.Info().Msg("push finished")
	return true
}

func (c *clientSyncService) ResetPullGuard() {
	c.mu.Lock()
	c.pulledFor = ""
	c.mu.Unlock()
}

// syncInBatches sends items in order, one batch per request, and stops at
// the first failing batch.
func syncInBatches[T any](items []T, send func([]T) error) error {
	for _, batch := range splitBatches(items, pushBatchItems, pushBatchBytes) {
		if err := send(batch); err != nil {
			return err
		}
	}
	return nil
}

// splitBatches cuts items into consecutive runs bounded by maxItems and by
// the summed JSON size maxBytes. An item larger than maxBytes travels alone.
func splitBatches[T any](items []T, maxItems, maxBytes int) [][]T {
	var (
		out   [][]T
		start int
		size  int
	)
	for i, item := range items {
		n := encodedSize(item)
		if i > start && (i-start >= maxItems || size+n > maxBytes) {
			out = append(out, items[start:i:i])
			start, size = i, 0
		}
		size += n
	}
	if start < len(items) {
		out = append(out, items[start:])
	}
	return out
}

func encodedSize(v any) int {
	raw, err := json.Marshal(v)
	if err != nil {
		return 0
	}
	return len(raw) + 1
}

func wrapStep(step string, err error) error {
	if err != nil {
		return fmt.Errorf("%s: %w", step, err)
	}
	return nil
}

// localize strips the server-side identity from remote rows; the client id
// is kept.
func localize[T any](items []T, strip func(*T)) []T {
	out := make([]T, len(items))
	copy(out, items)
	for i := range out {
		strip(&out[i])
	}
	return out
}
