package ui

import (
	gioapp "gioui.org/app"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/paint"
	"gioui.org/unit"
	"gioui.org/x/explorer"
	"go.uber.org/zap"

	"github.com/glaze-ui/glaze/internal/app"
	"github.com/glaze-ui/glaze/internal/ui/icons"
	"github.com/glaze-ui/glaze/internal/ui/screens"
	"github.com/glaze-ui/glaze/internal/ui/widgets"
)

// Run drives the gallery window until it is closed.
func Run(w *gioapp.Window, a *app.App) error {
	a.Logger.Debug("gallery loop started")
	a.Explorer = explorer.NewExplorer(w)
	a.Invalidate = w.Invalidate
	th := NewTheme(a.Theme())
	var ops op.Ops

	gallery := screens.NewGalleryScreen(a, th)

	for {
		e := w.Event()
		a.Explorer.ListenEvents(e)
		switch e := e.(type) {
		case gioapp.DestroyEvent:
			return e.Err
		case gioapp.FrameEvent:
			gtx := gioapp.NewContext(&ops, e)

			if next, ok := a.TakeTheme(); ok {
				th = Restyle(th, next)
				gallery.SetTheme(th)
				a.Logger.Debug("theme applied", zap.Int("tokens", len(next.Tokens())))
			}

			paint.Fill(gtx.Ops, th.BgPrimary)
			gallery.Viewport.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
				return layoutWindow(gtx, th, gallery)
			})

			e.Frame(gtx.Ops)
		}
	}
}

func layoutWindow(gtx layout.Context, th *widgets.Theme, gallery *screens.GalleryScreen) layout.Dimensions {
	return layout.UniformInset(th.SpacingSm).Layout(gtx, func(gtx layout.Context) layout.Dimensions {
		return widgets.Border(gtx, th, th.Border, func(gtx layout.Context) layout.Dimensions {
			gtx.Constraints.Min = gtx.Constraints.Max
			return widgets.Card(gtx, th, th.BgPrimary, func(gtx layout.Context) layout.Dimensions {
				return layout.Flex{Axis: layout.Vertical}.Layout(gtx,
					layout.Rigid(func(gtx layout.Context) layout.Dimensions {
						return layout.Inset{Bottom: th.Spacing}.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
							return widgets.IconLabel(gtx, th, icons.IconGlaze, "glaze", th.Accent, unit.Sp(20))
						})
					}),
					layout.Rigid(func(gtx layout.Context) layout.Dimensions {
						gtx.Constraints.Min.X = gtx.Constraints.Max.X
						return widgets.Divider(gtx, th, th.OutlineVariant)
					}),
					layout.Flexed(1, func(gtx layout.Context) layout.Dimensions {
						return layout.Inset{Top: th.SpacingXl}.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
							return widgets.ConstrainMaxWidth(gtx, widgets.DefaultPageMaxWidth, gallery.Layout)
						})
					}),
				)
			})
		})
	})
}
