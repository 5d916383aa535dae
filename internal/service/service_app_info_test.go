package service

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/go-calendar/internal/config"
	"github.com/MKhiriev/go-calendar/internal/logger"
	"github.com/MKhiriev/go-calendar/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// NewAppInfoService
// ─────────────────────────────────────────────

func TestNewAppInfoService_Success(t *testing.T) {
	cfg := config.App{Version: "1.0.0"}

	svc, err := NewAppInfoService(cfg, models.NewAppBuildInfo("", "", ""), logger.Nop())

	require.NoError(t, err)
	require.NotNil(t, svc)
}

func TestNewAppInfoService_EmptyVersion_ReturnsError(t *testing.T) {
	cfg := config.App{Version: ""}

	svc, err := NewAppInfoService(cfg, models.NewAppBuildInfo("", "", ""), logger.Nop())

	assert.Nil(t, svc)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrVersionIsNotSpecified))
}

func TestNewAppInfoService_FallsBackToBuildVersion(t *testing.T) {
	buildInfo := models.NewAppBuildInfo("v2.0.0", "2026-01-01", "abc123")

	svc, err := NewAppInfoService(config.App{}, buildInfo, logger.Nop())

	require.NoError(t, err)
	assert.Equal(t, "v2.0.0", svc.GetAppVersion(context.Background()))
}

func TestNewAppInfoService_ConfigVersionWins(t *testing.T) {
	buildInfo := models.NewAppBuildInfo("v2.0.0", "", "")

	svc, err := NewAppInfoService(config.App{Version: "v3.0.0"}, buildInfo, logger.Nop())

	require.NoError(t, err)
	assert.Equal(t, "v3.0.0", svc.GetAppVersion(context.Background()))
}

// ─────────────────────────────────────────────
// GetAppVersion / GetBuildInfo
// ─────────────────────────────────────────────

func TestGetAppVersion_VersionWithSpecialChars(t *testing.T) {
	version := "v1.2.3-beta+build.42"
	svc, err := NewAppInfoService(config.App{Version: version}, models.AppBuildInfo{}, logger.Nop())
	require.NoError(t, err)

	assert.Equal(t, version, svc.GetAppVersion(context.Background()))
}

func TestGetAppVersion_CancelledContext_StillReturnsVersion(t *testing.T) {
	svc, err := NewAppInfoService(config.App{Version: "1.0.0"}, models.AppBuildInfo{}, logger.Nop())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel() // cancel immediately

	assert.Equal(t, "1.0.0", svc.GetAppVersion(ctx))
}

func TestGetBuildInfo(t *testing.T) {
	buildInfo := models.NewAppBuildInfo("v1", "2026-02-02", "deadbeef")
	svc, err := NewAppInfoService(config.App{Version: "1.0.0"}, buildInfo, logger.Nop())
	require.NoError(t, err)

	got := svc.GetBuildInfo(context.Background())
	assert.Equal(t, "deadbeef", got.BuildCommit())
	assert.Equal(t, "2026-02-02", got.BuildDate())
}
