package service

import (
	"context"
	"testing"

	"github.com/MKhiriev/vedicas-garden/internal/config"
	"github.com/MKhiriev/vedicas-garden/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAppInfoService(t *testing.T) {
	svc, err := NewAppInfoService(config.App{Version: "v1.2.3-beta+build.42"}, logger.Nop())
	require.NoError(t, err)
	assert.Equal(t, "v1.2.3-beta+build.42", svc.GetAppVersion(context.Background()))
}

func TestNewAppInfoService_NoVersion(t *testing.T) {
	for _, v := range []string{"", "   "} {
		svc, err := NewAppInfoService(config.App{Version: v}, logger.Nop())
		assert.Nil(t, svc)
		assert.ErrorIs(t, err, ErrVersionIsNotSpecified)
	}
}

func TestNewAppInfoService_TrimsVersion(t *testing.T) {
	svc, err := NewAppInfoService(config.App{Version: " v2 \n"}, logger.Nop())
	require.NoError(t, err)
	assert.Equal(t, "v2", svc.GetAppVersion(context.Background()))
}
