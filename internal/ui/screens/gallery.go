package screens

import (
	"errors"
	"image"
	"path/filepath"
	"strings"

	"gioui.org/layout"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/unit"
	"gioui.org/widget"
	"gioui.org/widget/material"
	"gioui.org/x/explorer"
	"go.uber.org/zap"

	"github.com/glaze-ui/glaze/internal/app"
	"github.com/glaze-ui/glaze/internal/storage"
	"github.com/glaze-ui/glaze/internal/stylesheet"
	"github.com/glaze-ui/glaze/internal/theme"
	"github.com/glaze-ui/glaze/internal/ui/icons"
	"github.com/glaze-ui/glaze/internal/ui/widgets"
)

// tokenGroup filters the token table.
type tokenGroup struct {
	Label string
	Match func(theme.Token) bool
}

func prefixes(ps ...string) func(theme.Token) bool {
	return func(tk theme.Token) bool {
		for _, p := range ps {
			if strings.HasPrefix(tk.Name, p) {
				return true
			}
		}
		return false
	}
}

var tokenGroups = []tokenGroup{
	{Label: "All tokens", Match: func(theme.Token) bool { return true }},
	{Label: "Backgrounds", Match: prefixes("bg_", "surface")},
	{Label: "Borders", Match: func(tk theme.Token) bool { return tk.IsColor && prefixes("border", "outline")(tk) }},
	{Label: "Text", Match: prefixes("text_")},
	{Label: "Accents", Match: prefixes("accent", "secondary", "tertiary")},
	{Label: "Status", Match: prefixes("success", "warning", "danger", "info")},
	{Label: "Table", Match: prefixes("table_", "shadow_", "selection_", "hover_", "pressed_")},
	{Label: "Sizes", Match: func(tk theme.Token) bool { return !tk.IsColor }},
}

const (
	tabTokens = iota
	tabStylesheet
)

// GalleryScreen shows the active theme: its tokens in a table, the
// generated style documents, and controls to derive a new palette.
type GalleryScreen struct {
	App      *app.App
	Theme    *widgets.Theme
	Viewport *widgets.Viewport

	Tabs      *widgets.RoundedTabBar
	Table     *widgets.Table
	Group     widgets.ComboBox
	Sheet     widgets.ComboBox
	Recent    widgets.ComboBox
	Wallpaper widget.Clickable
	Reset     widget.Clickable
	Preview   widget.Editor
	list      widget.List

	rows          []theme.Token
	recent        []storage.HistoryEntry
	recentVersion int
	sheetKind     stylesheet.Kind
	sheetTheme    theme.Theme
	sheetValid    bool
}

func NewGalleryScreen(a *app.App, th *widgets.Theme) *GalleryScreen {
	s := &GalleryScreen{
		App:      a,
		Theme:    th,
		Viewport: &widgets.Viewport{},
		Tabs:     widgets.NewRoundedTabBar("Tokens", "Stylesheet"),
		Table: widgets.NewTable(
			widgets.Column{Title: "Token", Weight: 3},
			widgets.Column{Title: "Value", Weight: 2},
			widgets.Column{Title: "Swatch", Width: 96},
		),
	}
	s.Preview.ReadOnly = true
	s.Recent.Placeholder = "Recent palettes"
	s.list.Axis = layout.Vertical
	for _, c := range []*widgets.ComboBox{&s.Group, &s.Sheet, &s.Recent} {
		c.Viewport = s.Viewport
	}

	for _, g := range tokenGroups {
		s.Group.AddItems(g.Label)
	}
	s.Group.SetCurrentIndex(0)
	for _, k := range stylesheet.Kinds {
		s.Sheet.AddItems(string(k))
	}
	s.Sheet.SetCurrentIndex(0)
	s.Group.Changed()
	s.Sheet.Changed()

	s.refresh()
	return s
}

// SetTheme switches to th and refreshes the token values shown.
func (s *GalleryScreen) SetTheme(th *widgets.Theme) {
	s.Theme = th
	s.refresh()
}

// refresh recomputes the visible rows for the selected group.
func (s *GalleryScreen) refresh() {
	g := tokenGroups[max(s.Group.CurrentIndex(), 0)]
	s.rows = s.rows[:0]
	for _, tk := range s.Theme.Tokens() {
		if g.Match(tk) {
			s.rows = append(s.rows, tk)
		}
	}
}

func (s *GalleryScreen) updatePreview() {
	kind := stylesheet.Kinds[max(s.Sheet.CurrentIndex(), 0)]
	if s.sheetValid && kind == s.sheetKind && s.sheetTheme == s.Theme.Theme {
		return
	}
	doc, err := stylesheet.For(kind, s.Theme.Theme)
	if err != nil {
		doc = err.Error()
	}
	s.Preview.SetText(doc)
	s.sheetKind, s.sheetTheme, s.sheetValid = kind, s.Theme.Theme, true
}

// syncRecent reloads the recent palette picker when the history changed.
func (s *GalleryScreen) syncRecent() {
	entries, version := s.App.Recent()
	if version == s.recentVersion {
		return
	}
	s.recentVersion = version
	s.recent = entries
	s.Recent.Clear()
	for _, e := range entries {
		s.Recent.AddItems(e.Label())
	}
	s.Recent.Changed()
}

func (s *GalleryScreen) chooseWallpaper() {
	go func() {
		rc, err := s.App.Explorer.ChooseFile("png", "jpg", "jpeg", "gif", "webp")
		if err != nil {
			if !errors.Is(err, explorer.ErrUserDecline) {
				s.App.Logger.Debug("wallpaper chooser", zap.Error(err))
			}
			return
		}
		defer rc.Close()
		name := "wallpaper"
		if f, ok := rc.(interface{ Name() string }); ok {
			name = filepath.Base(f.Name())
		}
		s.App.ThemeFromWallpaper(name, rc)
	}()
}

func (s *GalleryScreen) Layout(gtx layout.Context) layout.Dimensions {
	th := s.Theme

	if s.Wallpaper.Clicked(gtx) {
		s.chooseWallpaper()
	}
	if s.Reset.Clicked(gtx) {
		go s.App.ResetTheme()
	}
	if s.Group.Changed() {
		s.refresh()
		s.Table.Select(-1)
		s.Table.List.Position = layout.Position{}
	}
	if s.Tabs.Changed() {
		s.App.Logger.Debug("tab selected", zap.String("tab", s.Tabs.Tabs[s.Tabs.Selected()]))
	}
	if s.Table.SelectionChanged() {
		if i := s.Table.Selected(); i >= 0 && i < len(s.rows) {
			s.App.Logger.Debug("token selected", zap.String("token", s.rows[i].Name))
		}
	}
	s.Sheet.Changed()
	s.updatePreview()

	s.syncRecent()
	if s.Recent.Changed() {
		if i := s.Recent.CurrentIndex(); i >= 0 && i < len(s.recent) {
			e := s.recent[i]
			go s.App.ThemeFromSeed(e.Seed, e.Mode)
		}
	}

	status, busy, err := s.App.Status()

	return layout.Flex{Axis: layout.Vertical}.Layout(gtx,
		layout.Rigid(func(gtx layout.Context) layout.Dimensions {
			return layout.Flex{Axis: layout.Horizontal, Alignment: layout.Middle}.Layout(gtx,
				layout.Flexed(1, func(gtx layout.Context) layout.Dimensions {
					return widgets.IconLabel(gtx, th, icons.IconPalette, "Theme tokens", th.TextPrimary, unit.Sp(22))
				}),
				layout.Rigid(func(gtx layout.Context) layout.Dimensions {
					if s.Recent.Len() == 0 {
						return layout.Dimensions{}
					}
					return layout.Inset{Right: th.Spacing}.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
						gtx.Constraints.Max.X = min(gtx.Constraints.Max.X, gtx.Dp(260))
						return s.Recent.Layout(gtx, th)
					})
				}),
				layout.Rigid(func(gtx layout.Context) layout.Dimensions {
					return widgets.SecondaryButton(th, &s.Reset, "Reset").Layout(gtx)
				}),
				layout.Rigid(layout.Spacer{Width: th.Spacing}.Layout),
				layout.Rigid(func(gtx layout.Context) layout.Dimensions {
					label := "Theme from wallpaper"
					if busy {
						label = "Reading..."
					}
					return widgets.IconButton(gtx, th, &s.Wallpaper, icons.IconWallpaper, label)
				}),
			)
		}),
		layout.Rigid(layout.Spacer{Height: th.SpacingLg}.Layout),
		layout.Rigid(func(gtx layout.Context) layout.Dimensions {
			if err != nil {
				return layout.Inset{Bottom: th.Spacing}.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
					return widgets.Banner(gtx, th, widgets.BannerError, err.Error())
				})
			}
			if status != "" {
				tone := widgets.BannerSuccess
				if busy {
					tone = widgets.BannerInfo
				}
				return layout.Inset{Bottom: th.Spacing}.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
					return widgets.Banner(gtx, th, tone, status)
				})
			}
			if s.App.History == nil {
				return layout.Inset{Bottom: th.Spacing}.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
					return widgets.Banner(gtx, th, widgets.BannerWarning, "Palette history is disabled; see the log for details.")
				})
			}
			return layout.Dimensions{}
		}),
		layout.Rigid(func(gtx layout.Context) layout.Dimensions {
			return s.Tabs.Layout(gtx, th)
		}),
		layout.Rigid(func(gtx layout.Context) layout.Dimensions {
			gtx.Constraints.Min.X = gtx.Constraints.Max.X
			return widgets.Divider(gtx, th, th.Border)
		}),
		layout.Rigid(layout.Spacer{Height: th.Spacing}.Layout),
		layout.Flexed(1, func(gtx layout.Context) layout.Dimensions {
			if s.Tabs.Selected() == tabStylesheet {
				return s.layoutPreview(gtx)
			}
			return s.layoutTokens(gtx)
		}),
	)
}

func (s *GalleryScreen) layoutTokens(gtx layout.Context) layout.Dimensions {
	th := s.Theme
	return layout.Flex{Axis: layout.Vertical}.Layout(gtx,
		layout.Rigid(func(gtx layout.Context) layout.Dimensions {
			return s.labelled(gtx, "Group", func(gtx layout.Context) layout.Dimensions {
				gtx.Constraints.Max.X = min(gtx.Constraints.Max.X, gtx.Dp(220))
				return s.Group.Layout(gtx, th)
			})
		}),
		layout.Rigid(layout.Spacer{Height: th.Spacing}.Layout),
		layout.Flexed(1, func(gtx layout.Context) layout.Dimensions {
			if len(s.rows) == 0 {
				return widgets.EmptyState(gtx, th, "No tokens", "This group is empty.")
			}
			return s.Table.Layout(gtx, th, len(s.rows), s.layoutCell)
		}),
	)
}

func (s *GalleryScreen) layoutCell(gtx layout.Context, row, col int) layout.Dimensions {
	th := s.Theme
	tk := s.rows[row]
	switch col {
	case 0:
		return widgets.TextCell(th, tk.Name)(gtx)
	case 1:
		return widgets.TextCell(th, tk.Value())(gtx)
	}
	if !tk.IsColor {
		return layout.Dimensions{}
	}
	size := image.Pt(gtx.Dp(40), gtx.Dp(18))
	r := gtx.Dp(th.BorderRadiusSm)
	rr := clip.RRect{Rect: image.Rectangle{Max: size}, NE: r, NW: r, SE: r, SW: r}
	paint.FillShape(gtx.Ops, tk.Color, rr.Op(gtx.Ops))
	paint.FillShape(gtx.Ops, th.Outline, clip.Stroke{Path: rr.Path(gtx.Ops), Width: float32(gtx.Dp(1))}.Op())
	return layout.Dimensions{Size: size}
}

func (s *GalleryScreen) layoutPreview(gtx layout.Context) layout.Dimensions {
	th := s.Theme
	return layout.Flex{Axis: layout.Vertical}.Layout(gtx,
		layout.Rigid(func(gtx layout.Context) layout.Dimensions {
			return s.labelled(gtx, "Stylesheet", func(gtx layout.Context) layout.Dimensions {
				gtx.Constraints.Max.X = min(gtx.Constraints.Max.X, gtx.Dp(180))
				return s.Sheet.Layout(gtx, th)
			})
		}),
		layout.Rigid(layout.Spacer{Height: th.Spacing}.Layout),
		layout.Flexed(1, func(gtx layout.Context) layout.Dimensions {
			gtx.Constraints.Min = gtx.Constraints.Max
			return widgets.Section(gtx, th, func(gtx layout.Context) layout.Dimensions {
				gtx.Constraints.Min = gtx.Constraints.Max
				return material.List(th.Material, &s.list).Layout(gtx, 1, func(gtx layout.Context, _ int) layout.Dimensions {
					e := material.Editor(th.Material, &s.Preview, "")
					e.Color = th.TextSecondary
					e.TextSize = unit.Sp(12)
					return e.Layout(gtx)
				})
			})
		}),
	)
}

func (s *GalleryScreen) labelled(gtx layout.Context, label string, w layout.Widget) layout.Dimensions {
	th := s.Theme
	return layout.Flex{Axis: layout.Horizontal, Alignment: layout.Middle}.Layout(gtx,
		layout.Rigid(func(gtx layout.Context) layout.Dimensions {
			return widgets.Subtitle(th, label).Layout(gtx)
		}),
		layout.Rigid(layout.Spacer{Width: th.Spacing}.Layout),
		layout.Rigid(w),
	)
}
