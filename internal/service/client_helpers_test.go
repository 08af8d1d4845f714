package service

import (
	"fmt"
	"testing"
	"time"

	"github.com/MKhiriev/vedicas-garden/internal/logger"
	"github.com/MKhiriev/vedicas-garden/internal/mock"
	"github.com/MKhiriev/vedicas-garden/models"
	"go.uber.org/mock/gomock"
)

// testNow is the fixed clock used by client service tests.
var testNow = time.Date(2026, time.March, 14, 9, 30, 0, 0, time.UTC)

const testToday = "2026-03-14"

// sequenceIDs hands out id-1, id-2, ...
type sequenceIDs struct{ n int }

func (s *sequenceIDs) Generate() string {
	s.n++
	return fmt.Sprintf("id-%d", s.n)
}

// newTestState returns an empty state whose kv accepts every write.
func newTestState(t *testing.T, ctrl *gomock.Controller) *LocalState {
	t.Helper()
	kv := mock.NewMockKVRepository(ctrl)
	kv.EXPECT().Put(gomock.Any(), models.SnapshotKey, gomock.Any()).Return(nil).AnyTimes()
	return NewLocalState(kv, logger.Nop())
}

func intPtr(v int) *int { return &v }
