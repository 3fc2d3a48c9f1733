package config

import (
	"context"
	"errors"
	"fmt"
	"os"
	"reflect"
	"strings"

	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/glaze-ui/glaze/internal/matugen"
	"github.com/glaze-ui/glaze/internal/palette"
	"github.com/glaze-ui/glaze/internal/theme"
)

// Source names where the base palette of a resolved theme came from.
type Source string

const (
	SourceDefault   Source = "default"
	SourceSeed      Source = "seed"
	SourceWallpaper Source = "wallpaper"
)

// Backend names the palette generator.
type Backend string

const (
	BackendAuto    Backend = "auto"
	BackendMatugen Backend = "matugen"
	BackendBuiltin Backend = "builtin"
)

var ErrInvalidBackend = errors.New("invalid palette backend")

// matugenClient runs the external generator.
var matugenClient = matugen.New()

// ResolveBackend returns the generator to use. Auto picks matugen when it
// is installed; asking for matugen explicitly fails when it is not.
func ResolveBackend(v *viper.Viper) (Backend, error) {
	switch b := Backend(strings.ToLower(v.GetString(KeyBackend))); b {
	case "", BackendAuto:
		if matugenClient.Available() {
			return BackendMatugen, nil
		}
		return BackendBuiltin, nil
	case BackendMatugen:
		if !matugenClient.Available() {
			return "", fmt.Errorf("%s: %w", KeyBackend, matugen.ErrNotInstalled)
		}
		return b, nil
	case BackendBuiltin:
		return b, nil
	default:
		return "", fmt.Errorf("%s: %w: %q", KeyBackend, ErrInvalidBackend, b)
	}
}

// Mode returns the configured light/dark mode.
func Mode(v *viper.Viper) (palette.Mode, error) {
	return palette.ParseMode(v.GetString(KeyMode))
}

// Overrides collects the theme.<token> keys that are set. Unset keys stay
// zero so they do not mask the base palette.
func Overrides(v *viper.Viper) theme.Options {
	var o theme.Options
	rv := reflect.ValueOf(&o).Elem()
	rt := rv.Type()
	for i := 0; i < rt.NumField(); i++ {
		name := rt.Field(i).Tag.Get("mapstructure")
		key := TokenKey(name)
		if !v.IsSet(key) {
			continue
		}
		if theme.IsColorToken(name) {
			rv.Field(i).SetString(v.GetString(key))
		} else {
			rv.Field(i).SetInt(int64(v.GetInt(key)))
		}
	}
	return o
}

// BaseOptions picks the base palette: the wallpaper when one is
// configured, else the seed colour, else the built-in defaults. Wallpapers
// and seeds go through the resolved backend.
func BaseOptions(v *viper.Viper) (theme.Options, Source, error) {
	mode, err := Mode(v)
	if err != nil {
		return theme.Options{}, "", err
	}
	wallpaper, seed := v.GetString(KeyWallpaper), v.GetString(KeySeed)
	if wallpaper == "" && seed == "" {
		return theme.Options{}, SourceDefault, nil
	}

	scheme, err := matugen.NormalizeScheme(v.GetString(KeyScheme))
	if err != nil {
		return theme.Options{}, "", fmt.Errorf("%s: %w", KeyScheme, err)
	}
	backend, err := ResolveBackend(v)
	if err != nil {
		return theme.Options{}, "", err
	}

	if wallpaper != "" {
		if backend == BackendMatugen {
			o, err := matugenOptions(matugen.Request{Image: wallpaper, Scheme: scheme, Mode: mode})
			return o, SourceWallpaper, err
		}
		p, err := PaletteFromFile(wallpaper, mode)
		if err != nil {
			return theme.Options{}, "", err
		}
		return theme.PaletteOptions(p), SourceWallpaper, nil
	}

	p, err := palette.Generate(seed, mode)
	if err != nil {
		return theme.Options{}, "", fmt.Errorf("%s: %w", KeySeed, err)
	}
	if backend == BackendMatugen {
		o, err := matugenOptions(matugen.Request{Color: seed, Scheme: scheme, Mode: mode})
		return o, SourceSeed, err
	}
	return theme.PaletteOptions(p), SourceSeed, nil
}

func matugenOptions(r matugen.Request) (theme.Options, error) {
	roles, err := matugenClient.Colors(context.Background(), r)
	if err != nil {
		return theme.Options{}, err
	}
	return matugen.Options(roles, r.Mode)
}

// PaletteFromFile derives a palette from the dominant colour of an image.
func PaletteFromFile(path string, mode palette.Mode) (palette.Palette, error) {
	f, err := os.Open(path)
	if err != nil {
		return palette.Palette{}, fmt.Errorf("opening wallpaper: %w", err)
	}
	defer f.Close()

	p, err := palette.FromImage(f, mode)
	if err != nil {
		return palette.Palette{}, fmt.Errorf("wallpaper %s: %w", path, err)
	}
	return p, nil
}

// ResolveTheme builds the configured theme: base palette first, then the
// per-token overrides on top.
func ResolveTheme(v *viper.Viper, logger *zap.Logger) (theme.Theme, error) {
	base, src, err := BaseOptions(v)
	if err != nil {
		return theme.Theme{}, err
	}
	th, err := theme.New(base.Merge(Overrides(v)))
	if err != nil {
		return theme.Theme{}, err
	}
	if logger != nil {
		backend, _ := ResolveBackend(v)
		scheme, _ := matugen.NormalizeScheme(v.GetString(KeyScheme))
		if src != SourceDefault && backend == BackendBuiltin && scheme != matugen.DefaultScheme {
			logger.Warn("scheme needs the matugen backend; ignoring it", zap.String("scheme", scheme))
		}
		logger.Debug("theme resolved",
			zap.String("source", string(src)),
			zap.String("backend", string(backend)),
			zap.String("accent", theme.CSS(th.Accent)),
		)
	}
	return th, nil
}
