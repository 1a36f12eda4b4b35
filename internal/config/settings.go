// internal/config/settings.go
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"go-stealth/pkg/losmesh"
)

// EnvPrefix prefixes environment overrides, e.g. STEALTH_LOS_RADIUS.
const EnvPrefix = "stealth"

// Settings are the per-run values that may come from a file or the
// environment. Anything left out keeps the defaults below.
type Settings struct {
	LOS    losmesh.FanConfig `mapstructure:"los"`
	Player PlayerSettings    `mapstructure:"player"`
	Level  LevelSettings     `mapstructure:"level"`
	Logger LoggerSettings    `mapstructure:"logger"`
	Debug  DebugSettings     `mapstructure:"debug"`
}

type PlayerSettings struct {
	Speed           float64 `mapstructure:"speed"`
	RotationRate    float64 `mapstructure:"rotation_rate"`
	CapsuleRadius   float64 `mapstructure:"capsule_radius"`
	MinMoveDistance float64 `mapstructure:"min_move_distance"`
}

type LevelSettings struct {
	// Path to a YAML level; empty selects the bundled level.
	Path string `mapstructure:"path"`
}

type LoggerSettings struct {
	Level       string `mapstructure:"level"`
	Development bool   `mapstructure:"development"`
}

type DebugSettings struct {
	Enabled bool   `mapstructure:"enabled"`
	Addr    string `mapstructure:"addr"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("los.arc_angle", losmesh.DefaultArcAngle)
	v.SetDefault("los.angle_step", losmesh.DefaultAngleStep)
	v.SetDefault("los.radius", losmesh.DefaultRadius)

	v.SetDefault("player.speed", WalkSpeed)
	v.SetDefault("player.rotation_rate", RotationRate)
	v.SetDefault("player.capsule_radius", CapsuleRadius)
	v.SetDefault("player.min_move_distance", MinMoveDistance)

	v.SetDefault("level.path", "")

	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.development", true)

	v.SetDefault("debug.enabled", true)
	v.SetDefault("debug.addr", DebugAddr)
}

// NewViper returns a viper instance with defaults and env binding set.
func NewViper() *viper.Viper {
	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// LoadSettings reads path (YAML) when given, applies STEALTH_* overrides and
// normalizes the LOS values.
func LoadSettings(path string) (Settings, error) {
	v := NewViper()
	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return Settings{}, fmt.Errorf("failed to read settings file: %w", err)
		}
	}
	return FromViper(v)
}

// FromViper decodes settings from an already configured viper.
func FromViper(v *viper.Viper) (Settings, error) {
	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return Settings{}, fmt.Errorf("failed to unmarshal settings: %w", err)
	}
	s.LOS = s.LOS.Normalized()
	if s.Player.Speed <= 0 {
		s.Player.Speed = WalkSpeed
	}
	if s.Player.RotationRate <= 0 {
		s.Player.RotationRate = RotationRate
	}
	if s.Player.CapsuleRadius <= 0 {
		s.Player.CapsuleRadius = CapsuleRadius
	}
	if s.Player.MinMoveDistance < 0 {
		s.Player.MinMoveDistance = MinMoveDistance
	}
	return s, nil
}
