// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// UpsertResult reports what a single upsert did at the remote store.
type UpsertResult struct {
	ID       int64 `json:"id"`
	Inserted bool  `json:"inserted"`
}

// SyncResult summarises one batch sync call. Synced counts every item
// processed.
//
// For seeds, wisdom and checkins Synced equals Inserted+Patched. Messages are
// never patched: existing ones are counted in Skipped.
type SyncResult struct {
	Synced   int `json:"synced"`
	Inserted int `json:"inserted"`
	Patched  int `json:"patched"`
	Skipped  int `json:"skipped,omitempty"`
}

// Add folds one upsert outcome into the result.
func (r *SyncResult) Add(u UpsertResult) {
	r.Synced++
	if u.Inserted {
		r.Inserted++
	} else {
		r.Patched++
	}
}

// Skip records an item that already existed and was left untouched.
func (r *SyncResult) Skip() {
	r.Synced++
	r.Skipped++
}

// SeedsSyncRequest is the body of POST /api/seeds/sync.
type SeedsSyncRequest struct {
	Seeds []Seed `json:"seeds"`
}

// WisdomSyncRequest is the body of POST /api/wisdom/sync.
type WisdomSyncRequest struct {
	Notes []WisdomNote `json:"notes"`
}

// MessagesSyncRequest is the body of POST /api/messages/sync.
type MessagesSyncRequest struct {
	Messages []Message `json:"messages"`
}

// CheckinsSyncRequest is the body of POST /api/checkins/sync.
type CheckinsSyncRequest struct {
	Checkins []Checkin `json:"checkins"`
}

// ClearResult is returned by bulk deletes.
type ClearResult struct {
	Deleted int64 `json:"deleted"`
}
