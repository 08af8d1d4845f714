// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client assembles the local-first client: the SQLite snapshot, the
// remote store and chart API adapters, the client services and the
// background sync job.
//
// Commands that only need the services (login, sync, chart) use
// [App.Services]; the interactive session goes through [App.Run].
package client
