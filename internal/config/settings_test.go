package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-stealth/pkg/losmesh"
)

func TestLoadSettingsDefaults(t *testing.T) {
	s, err := LoadSettings("")
	require.NoError(t, err)

	assert.Equal(t, losmesh.DefaultFanConfig(), s.LOS)
	assert.Equal(t, WalkSpeed, s.Player.Speed)
	assert.Equal(t, RotationRate, s.Player.RotationRate)
	assert.Equal(t, CapsuleRadius, s.Player.CapsuleRadius)
	assert.Equal(t, MinMoveDistance, s.Player.MinMoveDistance)
	assert.Empty(t, s.Level.Path)
	assert.Equal(t, "info", s.Logger.Level)
	assert.Equal(t, DebugAddr, s.Debug.Addr)
}

func TestLoadSettingsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stealth.yaml")
	data := `
los:
  arc_angle: 360
  angle_step: 2
player:
  speed: 300
logger:
  level: debug
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	s, err := LoadSettings(path)
	require.NoError(t, err)

	assert.Equal(t, losmesh.FanConfig{ArcAngle: 360, AngleStep: 2, Radius: losmesh.DefaultRadius}, s.LOS)
	assert.Equal(t, 300.0, s.Player.Speed)
	assert.Equal(t, "debug", s.Logger.Level)
}

func TestLoadSettingsClampsLOS(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stealth.yaml")
	require.NoError(t, os.WriteFile(path, []byte("los:\n  arc_angle: 0\n  angle_step: -3\n  radius: 0\n"), 0o644))

	s, err := LoadSettings(path)
	require.NoError(t, err)
	assert.Equal(t, losmesh.DefaultFanConfig(), s.LOS)
}

func TestLoadSettingsEnvOverride(t *testing.T) {
	t.Setenv("STEALTH_LOS_RADIUS", "750")
	t.Setenv("STEALTH_LEVEL_PATH", "levels/custom.yaml")

	s, err := LoadSettings("")
	require.NoError(t, err)
	assert.Equal(t, 750.0, s.LOS.Radius)
	assert.Equal(t, "levels/custom.yaml", s.Level.Path)
}

func TestLoadSettingsMissingFile(t *testing.T) {
	_, err := LoadSettings(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
