package app

import (
	"fmt"
	"io"
	"sync"

	"gioui.org/x/explorer"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/glaze-ui/glaze/internal/config"
	"github.com/glaze-ui/glaze/internal/palette"
	"github.com/glaze-ui/glaze/internal/storage"
	"github.com/glaze-ui/glaze/internal/theme"
)

// recentLimit caps the palettes offered for replay.
const recentLimit = 10

// App is the state shared between the UI loop and background work. The UI
// loop reads it every frame; goroutines hand results back through the
// mutex-guarded fields and call Invalidate.
type App struct {
	mu sync.Mutex

	Config *viper.Viper
	Logger *zap.Logger

	// Services
	Explorer *explorer.Explorer
	History  *storage.History

	// State
	theme   theme.Theme
	pending *theme.Theme
	status  string
	err     error
	busy    bool
	recent  []storage.HistoryEntry
	// recentVersion changes whenever recent does.
	recentVersion int

	// UI Actions
	Invalidate func()
}

// NewApp resolves the configured theme and opens the palette history. A
// history that cannot be opened is logged and disabled.
func NewApp(v *viper.Viper, logger *zap.Logger) (*App, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	th, err := config.ResolveTheme(v, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve theme: %w", err)
	}
	a := &App{
		Config:     v,
		Logger:     logger,
		theme:      th,
		Invalidate: func() {},
	}

	dir, err := config.HistoryDir(v)
	if err == nil {
		a.History, err = storage.NewHistory(dir)
	}
	if err != nil {
		logger.Warn("palette history disabled", zap.Error(err))
	}
	a.loadRecent()

	return a, nil
}

// Theme returns the active theme.
func (a *App) Theme() theme.Theme {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.theme
}

// SetTheme queues t to become the active theme on the next frame.
func (a *App) SetTheme(t theme.Theme) {
	a.mu.Lock()
	a.pending = &t
	a.mu.Unlock()
	a.Invalidate()
}

// TakeTheme swaps in a queued theme, if any. Called once per frame by the
// UI loop.
func (a *App) TakeTheme() (theme.Theme, bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.pending == nil {
		return theme.Theme{}, false
	}
	a.theme = *a.pending
	a.pending = nil
	return a.theme, true
}

// Status returns the last status line, whether background work is running,
// and the last error.
func (a *App) Status() (string, bool, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.status, a.busy, a.err
}

func (a *App) setStatus(status string, err error, busy bool) {
	a.mu.Lock()
	a.status, a.err, a.busy = status, err, busy
	a.mu.Unlock()
	a.Invalidate()
}

// Recent returns the recorded palettes, newest first, and a version that
// changes whenever the list does.
func (a *App) Recent() ([]storage.HistoryEntry, int) {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.recent, a.recentVersion
}

func (a *App) loadRecent() {
	if a.History == nil {
		return
	}
	entries, err := a.History.Recent(recentLimit)
	if err != nil {
		a.Logger.Warn("reading palette history", zap.Error(err))
		return
	}
	a.mu.Lock()
	a.recent = entries
	a.recentVersion++
	a.mu.Unlock()
}

func (a *App) record(e storage.HistoryEntry) {
	if a.History == nil {
		return
	}
	if _, err := a.History.Add(e); err != nil {
		a.Logger.Warn("recording palette", zap.Error(err))
		return
	}
	a.loadRecent()
}

// ResetTheme queues the theme configured at startup.
func (a *App) ResetTheme() {
	th, err := config.ResolveTheme(a.Config, a.Logger)
	if err != nil {
		a.Logger.Warn("reset theme", zap.Error(err))
		a.setStatus("", err, false)
		return
	}
	a.SetTheme(th)
	a.setStatus("Theme reset", nil, false)
}

// ThemeFromWallpaper derives a theme from the dominant colour of an image.
// It blocks on decoding; the UI calls it from a goroutine.
func (a *App) ThemeFromWallpaper(name string, r io.Reader) {
	a.setStatus("Reading "+name+"...", nil, true)

	mode, err := config.Mode(a.Config)
	if err != nil {
		a.setStatus("", err, false)
		return
	}
	seed, err := palette.DominantColor(r)
	if err != nil {
		a.Logger.Warn("wallpaper decode failed", zap.String("file", name), zap.Error(err))
		a.setStatus("", fmt.Errorf("%s: %w", name, err), false)
		return
	}
	if err := a.applySeed(seed, mode); err != nil {
		a.setStatus("", err, false)
		return
	}

	a.Logger.Info("theme from wallpaper",
		zap.String("file", name),
		zap.String("seed", seed),
		zap.String("mode", string(mode)),
	)
	a.record(storage.HistoryEntry{Source: string(config.SourceWallpaper), Name: name, Seed: seed, Mode: string(mode)})
	a.setStatus("Theme from "+name+" ("+seed+")", nil, false)
}

// ThemeFromSeed regenerates a palette from a recorded seed.
func (a *App) ThemeFromSeed(seed, mode string) {
	m, err := palette.ParseMode(mode)
	if err == nil {
		err = a.applySeed(seed, m)
	}
	if err != nil {
		a.Logger.Warn("theme from seed", zap.String("seed", seed), zap.Error(err))
		a.setStatus("", err, false)
		return
	}
	a.record(storage.HistoryEntry{Source: string(config.SourceSeed), Seed: seed, Mode: string(m)})
	a.setStatus("Theme from "+seed, nil, false)
}

func (a *App) applySeed(seed string, mode palette.Mode) error {
	p, err := palette.Generate(seed, mode)
	if err != nil {
		return err
	}
	th, err := theme.New(theme.PaletteOptions(p).Merge(config.Overrides(a.Config)))
	if err != nil {
		return err
	}
	a.SetTheme(th)
	return nil
}
