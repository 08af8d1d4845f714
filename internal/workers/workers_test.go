// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/goleak"
)

func blockUntilDone(counter *atomic.Int32) Worker {
	return WorkerFunc(func(ctx context.Context) error {
		<-ctx.Done()
		counter.Add(1)
		return nil
	})
}

func TestWorkers_FirstReturnStopsOthers(t *testing.T) {
	defer goleak.VerifyNone(t)

	var stopped atomic.Int32
	ws := New(
		blockUntilDone(&stopped),
		blockUntilDone(&stopped),
		WorkerFunc(func(context.Context) error { return nil }),
	)

	assert.NoError(t, ws.Run(context.Background()))
	assert.EqualValues(t, 2, stopped.Load())
}

func TestWorkers_ReturnsError(t *testing.T) {
	defer goleak.VerifyNone(t)

	boom := errors.New("boom")
	var stopped atomic.Int32
	ws := New(
		blockUntilDone(&stopped),
		WorkerFunc(func(context.Context) error { return boom }),
	)

	assert.ErrorIs(t, ws.Run(context.Background()), boom)
	assert.EqualValues(t, 1, stopped.Load())
}

func TestWorkers_ParentCancel(t *testing.T) {
	defer goleak.VerifyNone(t)

	var stopped atomic.Int32
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	err := New(blockUntilDone(&stopped), blockUntilDone(&stopped)).Run(ctx)

	assert.NoError(t, err)
	assert.EqualValues(t, 2, stopped.Load())
}

func TestWorkers_Empty(t *testing.T) {
	assert.NoError(t, New().Run(context.Background()))
	assert.NoError(t, (&Workers{}).Run(context.Background()))
}
