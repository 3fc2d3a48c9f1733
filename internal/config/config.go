// Package config loads glaze settings from file, environment and flags
// through Viper, and resolves them into a theme and a logger.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/glaze-ui/glaze/internal/matugen"
	"github.com/glaze-ui/glaze/internal/theme"
)

const (
	KeyLogLevel     = "logging.level"
	KeyLogFormat    = "logging.format"
	KeyWindowWidth  = "window.width"
	KeyWindowHeight = "window.height"
	KeySeed         = "theme.seed"
	KeyMode         = "theme.mode"
	KeyWallpaper    = "theme.wallpaper"
	KeyBackend      = "theme.backend"
	KeyScheme       = "theme.scheme"
	KeyHistoryDir   = "history.dir"
)

// TokenKey is the configuration key of a theme token.
func TokenKey(token string) string {
	return "theme." + token
}

// Load reads configuration from file and environment variables. An empty
// path searches the working directory and the user config directory for
// glaze.yaml; a missing file is not an error in that case.
func Load(configPath string) (*viper.Viper, error) {
	v := viper.New()

	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeyLogFormat, "console")
	v.SetDefault(KeyWindowWidth, 1100)
	v.SetDefault(KeyWindowHeight, 760)
	v.SetDefault(KeySeed, "")
	v.SetDefault(KeyMode, "dark")
	v.SetDefault(KeyWallpaper, "")
	v.SetDefault(KeyBackend, string(BackendAuto))
	v.SetDefault(KeyScheme, matugen.DefaultScheme)
	v.SetDefault(KeyHistoryDir, "")

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("glaze")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
			v.AddConfigPath(filepath.Join(dir, "glaze"))
		}
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", "glaze"))
		}
	}

	// GLAZE_THEME_ACCENT=#4f8cff
	v.SetEnvPrefix("GLAZE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	// Token keys have no defaults, so bind them explicitly for IsSet.
	for _, name := range theme.TokenNames() {
		if err := v.BindEnv(TokenKey(name)); err != nil {
			return nil, fmt.Errorf("binding %s: %w", TokenKey(name), err)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configPath != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	}

	return v, nil
}

// HistoryDir is where generated palettes are recorded: history.dir when
// set, else the glaze directory under the user config directory.
func HistoryDir(v *viper.Viper) (string, error) {
	if dir := v.GetString(KeyHistoryDir); dir != "" {
		return dir, nil
	}
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("locating config dir: %w", err)
	}
	return filepath.Join(base, "glaze"), nil
}
